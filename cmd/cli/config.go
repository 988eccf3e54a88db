// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"trello-manager/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage trel configuration",
	Long: `Provides subcommands to manage the trel configuration file. This
includes the API credentials, the default board, and pattern matching
behavior.`,
}

var configSetAuthCmd = &cobra.Command{
	Use:   "set-auth <key> <token>",
	Short: "Store the Trello API key and token",
	Long: `Stores the API credential pair in the config file. Generate both at
https://trello.com/app-key. The config file is written user-readable
only; use the TRELLO_API_KEY and TRELLO_API_TOKEN environment variables
instead if you prefer not to store the token on disk.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg.Key = args[0]
		cfg.Token = args[1]
		saveConfigOrDie()
		successColor.Println("Credentials stored.")
	},
}

var configSetBoardCmd = &cobra.Command{
	Use:   "set-default-board <pattern>",
	Short: "Set the board pattern used when a command is not given one",
	Long: `Sets the default board pattern. Commands like 'show' and 'url' fall
back to it when invoked without a board argument. Set it to an empty
string to remove the default.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg.DefaultBoard = args[0]
		saveConfigOrDie()
		if args[0] == "" {
			successColor.Println("Default board removed.")
		} else {
			successColor.Printf("Default board set to: %s\n", identifierColor.Sprint(args[0]))
		}
	},
}

var configSetRetriesCmd = &cobra.Command{
	Use:   "set-retries <n>",
	Short: "Set how many conflicting write attempts are made before giving up",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			errorColor.Fprintln(os.Stderr, "Error: retries must be a positive integer")
			os.Exit(1)
		}
		cfg.MaxRetries = n
		saveConfigOrDie()
		successColor.Printf("Update retries set to %d.\n", n)
	},
}

var configSetEditorCmd = &cobra.Command{
	Use:   "set-editor <command>",
	Short: "Set the editor command used for card buffers",
	Long: `Sets the editor opened for card creation and editing. Overrides
$EDITOR. The value may include flags, e.g. "code --wait". Set it to an
empty string to fall back to $EDITOR.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg.Editor = args[0]
		saveConfigOrDie()
		successColor.Println("Editor updated.")
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the current configuration",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		path, err := config.DefaultConfigPath()
		if err == nil {
			dimColor.Printf("# %s\n", path)
		}

		fmt.Printf("key:           %s\n", maskCredential(cfg.Key))
		fmt.Printf("token:         %s\n", maskCredential(cfg.Token))
		fmt.Printf("default_board: %s\n", orUnset(cfg.DefaultBoard))
		fmt.Printf("editor:        %s\n", cfg.EditorCommand())
		fmt.Printf("wildcard:      %c\n", cfg.WildcardRune())
		fmt.Printf("max_retries:   %d\n", retryBound())
		fmt.Printf("case_sensitive: %t\n", cfg.CaseSensitive)
	},
}

func maskCredential(value string) string {
	if value == "" {
		return orUnset("")
	}
	if len(value) <= 4 {
		return "****"
	}
	return value[:4] + "****"
}

func orUnset(value string) string {
	if value == "" {
		return dimColor.Sprint("(unset)")
	}
	return value
}

func saveConfigOrDie() {
	if err := config.SaveConfig(cfg); err != nil {
		errorColor.Fprintf(os.Stderr, "Error saving configuration: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	configCmd.AddCommand(configSetAuthCmd)
	configCmd.AddCommand(configSetBoardCmd)
	configCmd.AddCommand(configSetRetriesCmd)
	configCmd.AddCommand(configSetEditorCmd)
	configCmd.AddCommand(configGetCmd)
}
