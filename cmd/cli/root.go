// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"trello-manager/internal/config"
	"trello-manager/internal/logger"
	"trello-manager/internal/trello"
)

var (
	cfg    config.Config
	client *trello.Client

	statusColor     = color.New(color.FgCyan)
	errorColor      = color.New(color.FgRed)
	successColor    = color.New(color.FgGreen)
	closedColor     = color.New(color.FgYellow)
	identifierColor = color.New(color.FgBlue)
	dimColor        = color.New(color.Faint)
)

var rootCmd = &cobra.Command{
	Use:   "trel",
	Short: "Trello from the command line",
	Long: `A command-line interface for Trello boards, lists and cards.

Boards, lists and cards are addressed by name patterns rather than ids:
matching is case-insensitive and '*' stands for any run of characters.
Credentials live in ~/.config/trel/config.yaml or the TRELLO_API_KEY and
TRELLO_API_TOKEN environment variables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.Init(false)
		if err := config.EnsureConfigDir(); err != nil {
			return fmt.Errorf("failed to ensure config directory: %w", err)
		}
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		client = trello.NewClient(cfg.Host, cfg.Key, cfg.Token)
		return nil
	},
}

func RunCLI() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(boardsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(closeCmd)
	rootCmd.AddCommand(reopenCmd)
	rootCmd.AddCommand(urlCmd)
	rootCmd.AddCommand(labelCmd)
	rootCmd.AddCommand(attachCmd)
	rootCmd.AddCommand(attachmentsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

var boardsCmd = &cobra.Command{
	Use:   "boards",
	Short: "List all open boards",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s := newSpinner(" Fetching boards...")
		s.Start()
		boards, err := client.ListBoards(cmd.Context())
		s.Stop()
		if err != nil {
			exitOnError(err)
		}

		if len(boards) == 0 {
			fmt.Println("No open boards found.")
			return
		}
		for _, b := range boards {
			fmt.Printf("- %s %s\n", b.Name, dimColor.Sprintf("(%s)", b.ID))
		}
	},
}
