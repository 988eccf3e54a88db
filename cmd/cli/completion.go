// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"github.com/spf13/cobra"

	"trello-manager/internal/resolver"
	"trello-manager/internal/trello"
)

// boardCompletionFunc suggests board names for the first positional
// argument and list names for the second. Card names are not suggested:
// fetching them needs two resolved parents and completion should stay
// fast.
func boardCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	ctx := cmd.Context()

	switch len(args) {
	case 0:
		boards, err := client.ListBoards(ctx)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		names := make([]string, 0, len(boards))
		for _, b := range boards {
			names = append(names, b.Name)
		}
		return names, cobra.ShellCompDirectiveNoFileComp

	case 1:
		// No spinner here: completion output must stay clean.
		boards, err := client.ListBoards(ctx)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		match, err := resolver.Resolve(args[0], trello.KindBoard, resolver.Entities(boards), matchOptions()).Single()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		lists, err := client.ListLists(ctx, match.(trello.Board).ID, false)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		names := make([]string, 0, len(lists))
		for _, l := range lists {
			names = append(names, l.Name)
		}
		return names, cobra.ShellCompDirectiveNoFileComp

	default:
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
}
