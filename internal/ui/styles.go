// SPDX-License-Identifier: Apache-2.0

package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	idStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	descMarkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	listTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)

	activeColumnStyle = columnStyle.
				BorderForeground(lipgloss.Color("62"))

	selectedCardStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	footerKeyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	footerSepStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// labelStyles maps Trello label colors onto lipgloss styles for the
// board view.
var labelStyles = map[string]lipgloss.Style{
	"red":    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	"orange": lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	"yellow": lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	"green":  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	"lime":   lipgloss.NewStyle().Foreground(lipgloss.Color("118")),
	"blue":   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	"sky":    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	"purple": lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	"pink":   lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
	"black":  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
}
