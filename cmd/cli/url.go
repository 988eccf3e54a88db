// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var urlCmd = &cobra.Command{
	Use:   "url [board] [list] [card]",
	Short: "Print the shareable URL of a board or card",
	Long: `Resolves the given patterns and prints the entity's URL. Lists have no
URL of their own on Trello; a list pattern is only used to narrow down a
card.`,
	Example:           "  trel url sprint\n  trel url sprint todo 'fix*'",
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
			fmt.Println(board.URL)
		case 2:
			exitOnError(fmt.Errorf("lists have no URL; give a card pattern as well"))
		case 3:
			list, err := resolveList(ctx, board, args[1])
			if err != nil {
				exitOnError(err)
			}
			card, err := resolveCard(ctx, list, args[2])
			if err != nil {
				exitOnError(err)
			}
			fmt.Println(card.URL)
		}
	},
}
