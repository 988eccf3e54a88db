// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"trello-manager/internal/config"
	"trello-manager/internal/logger"
	"trello-manager/internal/trello"
	"trello-manager/internal/ui"
)

// RunTUI initializes and runs the Bubble Tea board browser.
func RunTUI() {
	logger.Init(true)

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if cfg.Key == "" || cfg.Token == "" {
		fmt.Fprintln(os.Stderr, "No API credentials configured. Run 'trel config set-auth <key> <token>' first.")
		os.Exit(1)
	}

	client := trello.NewClient(cfg.Host, cfg.Key, cfg.Token)
	p := tea.NewProgram(ui.InitialModel(client), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
