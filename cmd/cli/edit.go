// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"trello-manager/internal/logger"
	"trello-manager/internal/trello"
	"trello-manager/internal/updater"
)

var (
	createName  string
	createDesc  string
	editRetries int
)

var createCmd = &cobra.Command{
	Use:   "create <board> <list>",
	Short: "Create a new card on a list",
	Long: `Creates a card on the list the patterns resolve to. With --name the
card is created directly; otherwise an editor opens with an empty card
buffer (name above the ==== delimiter, description below).`,
	Example:           "  trel create sprint todo --name 'Fix login' --desc 'See issue #42'\n  trel create sprint todo",
	Args:              cobra.ExactArgs(2),
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

		card := trello.Card{Name: createName, Desc: createDesc}
		if card.Name == "" {
			contents, err := editContents(trello.Card{})
			if err != nil {
				exitOnError(err)
			}
			card.Name = contents.Name
			card.Desc = contents.Desc
		}
		if strings.TrimSpace(card.Name) == "" {
			exitOnError(fmt.Errorf("card name must not be empty"))
		}

		retries := retryBound()
		s := newSpinner(" Creating card...")
		s.Start()
		created, err := updater.CreateCard(ctx, client, list.ID, card, retries)
		s.Stop()
		if err != nil {
			exitOnError(err)
		}

		logger.Info("created card", "id", created.ID, "list", list.ID)
		successColor.Printf("Created card %s ", created.Name)
		identifierColor.Printf("(id: %s)\n", created.ID)
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <board> <list> <card>",
	Short: "Edit a card's name and description in your editor",
	Long: `Opens the resolved card in your editor as a text buffer: the name
above the ==== delimiter, the description below. The write back to
Trello detects when the card changed remotely while you were editing,
and retries the read-edit-write cycle against the fresh state up to the
retry bound.`,
	Example:           "  trel edit sprint todo 'fix*'\n  trel edit sprint todo 'fix*' --retries 5",
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

		contents, err := editContents(card)
		if err != nil {
			exitOnError(err)
		}
		if contents.Name == card.Name && contents.Desc == card.Desc {
			fmt.Println("No changes.")
			return
		}

		mutation := func(c trello.Card) trello.Card {
			c.Name = contents.Name
			c.Desc = contents.Desc
			return c
		}

		retries := editRetries
		if retries == 0 {
			retries = retryBound()
		}
		s := newSpinner(" Saving card...")
		s.Start()
		rev, err := updater.UpdateCard(ctx, client, card.ID, mutation, retries)
		s.Stop()
		if err != nil {
			exitOnError(err)
		}

		logger.Info("updated card", "id", rev.Card.ID)
		successColor.Printf("Updated card %s ", rev.Card.Name)
		identifierColor.Printf("(id: %s)\n", rev.Card.ID)
	},
}

func retryBound() int {
	if cfg.MaxRetries > 0 {
		return cfg.MaxRetries
	}
	return updater.DefaultMaxRetries
}

// editContents opens the card as a buffer in the user's editor and
// parses the result when the editor exits.
func editContents(card trello.Card) (trello.CardContents, error) {
	tmp, err := os.CreateTemp("", "trel-card-*.md")
	if err != nil {
		return trello.CardContents{}, fmt.Errorf("failed to create temp buffer: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(trello.RenderCardBuffer(card)); err != nil {
		tmp.Close()
		return trello.CardContents{}, fmt.Errorf("failed to write temp buffer: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return trello.CardContents{}, err
	}

	// The editor value may carry flags ("code --wait"), so split it.
	parts := strings.Fields(cfg.EditorCommand())
	parts = append(parts, tmp.Name())
	editorCmd := exec.Command(parts[0], parts[1:]...)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr
	if err := editorCmd.Run(); err != nil {
		return trello.CardContents{}, fmt.Errorf("editor failed: %w", err)
	}

	data, err := os.ReadFile(tmp.Name())
	if err != nil {
		return trello.CardContents{}, fmt.Errorf("failed to read edited buffer: %w", err)
	}
	return trello.ParseCardBuffer(string(data))
}

func init() {
	createCmd.Flags().StringVarP(&createName, "name", "n", "", "card name (skips the editor)")
	createCmd.Flags().StringVarP(&createDesc, "desc", "d", "", "card description")
	editCmd.Flags().IntVar(&editRetries, "retries", 0, "conflicting write attempts before giving up (default from config)")
}
