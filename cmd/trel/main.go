// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"trello-manager/cmd/cli"
	"trello-manager/cmd/tui"
)

func main() {
	// With no arguments the interactive board browser starts; any
	// argument routes to the CLI.
	if len(os.Args) <= 1 {
		tui.RunTUI()
	} else {
		cli.RunCLI()
	}
}
