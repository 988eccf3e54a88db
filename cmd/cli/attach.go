// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var attachCmd = &cobra.Command{
	Use:               "attach <board> <list> <card> <url>",
	Short:             "Attach a link to a card",
	Example:           "  trel attach sprint todo 'fix*' https://example.com/notes",
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

		s := newSpinner(" Attaching...")
		s.Start()
		attachment, err := client.AttachURL(ctx, card.ID, args[3])
		s.Stop()
		if err != nil {
			exitOnError(err)
		}

		successColor.Printf("Attached %s to card %s ", attachment.URL, card.Name)
		identifierColor.Printf("(id: %s)\n", attachment.ID)
	},
}

var attachmentsCmd = &cobra.Command{
	Use:               "attachments <board> <list> <card>",
	Short:             "List the attachments of a card",
	Example:           "  trel attachments sprint todo 'fix*'",
	Args:              cobra.ExactArgs(3),
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

		s := newSpinner(" Fetching attachments...")
		s.Start()
		attachments, err := client.ListAttachments(ctx, card.ID)
		s.Stop()
		if err != nil {
			exitOnError(err)
		}

		if len(attachments) == 0 {
			fmt.Println("No attachments.")
			return
		}
		for _, a := range attachments {
			fmt.Printf("- %s %s\n", a.Name, dimColor.Sprintf("(%s)", a.URL))
		}
	},
}
