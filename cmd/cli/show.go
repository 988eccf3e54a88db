// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"trello-manager/internal/format"
)

var showLabelFilter string

var showCmd = &cobra.Command{
	Use:   "show [board] [list] [card]",
	Short: "Show a board, list or card resolved by name patterns",
	Long: `Shows the entity the given patterns resolve to. With only a board
pattern the whole board is rendered, lists and cards included. Adding a
list pattern narrows the output to that list; adding a card pattern
renders the card with its description.`,
	Example:           "  trel show\n  trel show 'sprint*'\n  trel show sprint todo\n  trel show sprint todo 'fix*'",
	Args:              cobra.MaximumNArgs(3),
	ValidArgsFunction: boardCompletionFunc,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		pattern := ""
		if len(args) > 0 {
			pattern = args[0]
		}
		pattern, err := boardPattern(pattern)
		if err != nil {
			exitOnError(err)
		}

		board, err := resolveBoard(ctx, pattern)
		if err != nil {
			exitOnError(err)
		}

		switch len(args) {
		case 0, 1:
			s := newSpinner(fmt.Sprintf(" Loading %s...", board.Name))
			s.Start()
			err = client.RetrieveNested(ctx, &board)
			s.Stop()
			if err != nil {
				exitOnError(err)
			}
			if showLabelFilter != "" {
				board, err = board.FilterByLabel(showLabelFilter)
				if err != nil {
					exitOnError(err)
				}
			}
			fmt.Println(format.Board(board))

		case 2:
			list, err := resolveList(ctx, board, args[1])
			if err != nil {
				exitOnError(err)
			}
			cards, err := client.ListCards(ctx, list.ID)
			if err != nil {
				exitOnError(err)
			}
			list.Cards = cards
			if showLabelFilter != "" {
				list, err = list.FilterByLabel(showLabelFilter)
				if err != nil {
					exitOnError(err)
				}
			}
			fmt.Println(format.List(list))

		case 3:
			list, err := resolveList(ctx, board, args[1])
			if err != nil {
				exitOnError(err)
			}
			card, err := resolveCard(ctx, list, args[2])
			if err != nil {
				exitOnError(err)
			}
			fmt.Println(format.Card(card))
		}
	},
}

func init() {
	showCmd.Flags().StringVarP(&showLabelFilter, "label", "l", "", "only show cards with a label matching this expression")
}
