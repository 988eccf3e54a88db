// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"

	"github.com/spf13/cobra"

	"trello-manager/internal/logger"
	"trello-manager/internal/trello"
)

var closeCmd = &cobra.Command{
	Use:   "close <board> [list] [card]",
	Short: "Close (archive) the board, list or card the patterns resolve to",
	Long: `Closes the most specific entity named by the patterns: a card when
three patterns are given, a list for two, the board itself for one. The
id of the closed entity is printed so it can be reopened later even
though its name no longer resolves.`,
	Example:           "  trel close old-board\n  trel close sprint done\n  trel close sprint todo 'obsolete*'",
	Args:              cobra.RangeArgs(1, 3),
	ValidArgsFunction: boardCompletionFunc,
	Run: func(cmd *cobra.Command, args []string) {
		closeTarget(cmd.Context(), args)
	},
}

var reopenCmd = &cobra.Command{
	Use:   "reopen <id>",
	Short: "Reopen a closed board, list or card by id",
	Long: `Reopens an entity by the id printed when it was closed. Closed
entities cannot be resolved by name patterns, so reopening takes the id
directly. The entity kind is tried in order: card, list, board.`,
	Example: "  trel reopen 5f2c8a1b9d3e",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		id := args[0]

		s := newSpinner(" Reopening...")
		s.Start()
		defer s.Stop()

		if card, err := client.ReopenCard(ctx, id); err == nil {
			s.Stop()
			successColor.Printf("Reopened card %s %s\n", card.Name, dimColor.Sprintf("(%s)", card.ID))
			return
		}
		if list, err := client.ReopenList(ctx, id); err == nil {
			s.Stop()
			successColor.Printf("Reopened list %s %s\n", list.Name, dimColor.Sprintf("(%s)", list.ID))
			return
		}
		board, err := client.ReopenBoard(ctx, id)
		if err != nil {
			s.Stop()
			exitOnError(err)
		}
		s.Stop()
		successColor.Printf("Reopened board %s %s\n", board.Name, dimColor.Sprintf("(%s)", board.ID))
	},
}

// closeTarget resolves the most specific entity named by args and closes
// it. The closed id is always printed: a closed entity no longer shows
// up in name resolution, so the id is the only handle left.
func closeTarget(ctx context.Context, args []string) {
	pattern, err := boardPattern(args[0])
	if err != nil {
		exitOnError(err)
	}

	board, err := resolveBoard(ctx, pattern)
	if err != nil {
		exitOnError(err)
	}

	switch len(args) {
	case 1:
		closedBoard, err := client.CloseBoard(ctx, board.ID)
		if err != nil {
			exitOnError(err)
		}
		reportClosed(trello.KindBoard, closedBoard.Name, closedBoard.ID)

	case 2:
		list, err := resolveList(ctx, board, args[1])
		if err != nil {
			exitOnError(err)
		}
		closedList, err := client.CloseList(ctx, list.ID)
		if err != nil {
			exitOnError(err)
		}
		reportClosed(trello.KindList, closedList.Name, closedList.ID)

	case 3:
		list, err := resolveList(ctx, board, args[1])
		if err != nil {
			exitOnError(err)
		}
		card, err := resolveCard(ctx, list, args[2])
		if err != nil {
			exitOnError(err)
		}
		closedCard, err := client.CloseCard(ctx, card.ID)
		if err != nil {
			exitOnError(err)
		}
		reportClosed(trello.KindCard, closedCard.Name, closedCard.ID)
	}
}

func reportClosed(kind, name, id string) {
	logger.Info("closed entity", "kind", kind, "id", id)
	closedColor.Printf("Closed %s %s ", kind, name)
	identifierColor.Printf("(id: %s)\n", id)
}
