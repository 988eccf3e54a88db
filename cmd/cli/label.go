// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"github.com/spf13/cobra"

	"trello-manager/internal/resolver"
	"trello-manager/internal/trello"
)

var labelRemove bool

var labelCmd = &cobra.Command{
	Use:   "label <board> <list> <card> <label>",
	Short: "Apply or remove a label on a card",
	Long: `Resolves the card and the label (against the board's labels) by name
patterns, then applies the label to the card. With --remove the label is
taken off instead.`,
	Example:           "  trel label sprint todo 'fix*' urgent\n  trel label sprint todo 'fix*' urgent --remove",
	Args:              cobra.ExactArgs(4),
	ValidArgsFunction: boardCompletionFunc,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		board, err := resolveBoard(ctx, args[0])
		if err != nil {
			exitOnError(err)
		}
		list, err := resolveList(ctx, board, args[1])
		if err != nil {
			exitOnError(err)
		}
		card, err := resolveCard(ctx, list, args[2])
		if err != nil {
			exitOnError(err)
		}

		s := newSpinner(" Fetching labels...")
		s.Start()
		labels, err := client.ListLabels(ctx, board.ID)
		s.Stop()
		if err != nil {
			exitOnError(err)
		}

		match, err := resolver.Resolve(args[3], trello.KindLabel, resolver.Entities(labels), matchOptions()).Single()
		if err != nil {
			exitOnError(err)
		}
		label := match.(trello.Label)

		if labelRemove {
			if err := client.RemoveLabel(ctx, card.ID, label.ID); err != nil {
				exitOnError(err)
			}
			successColor.Printf("Removed label %s from card %s\n", label.Name, card.Name)
			return
		}

		if err := client.ApplyLabel(ctx, card.ID, label.ID); err != nil {
			exitOnError(err)
		}
		successColor.Printf("Applied label %s to card %s\n", label.Name, card.Name)
	},
}

func init() {
	labelCmd.Flags().BoolVar(&labelRemove, "remove", false, "remove the label instead of applying it")
}
