// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"trello-manager/internal/trello"
)

func (m model) View() string {
	switch m.currentState {
	case stateLoadingBoards:
		return fmt.Sprintf("\n %s Loading boards...\n", m.spin.View())
	case stateLoadingBoard:
		return fmt.Sprintf("\n %s Loading board...\n", m.spin.View())
	case stateBoardList:
		return m.boardListView()
	case stateBoardView:
		return m.boardView()
	case stateCardDetail:
		return m.cardDetailView()
	case stateError:
		return fmt.Sprintf("\n%s\n\n%s\n",
			errorStyle.Render(fmt.Sprintf("Error: %v", m.err)),
			m.footer(m.keys.Enter, m.keys.Quit))
	}
	return ""
}

func (m model) boardListView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Boards"))
	b.WriteString("\n\n")

	if len(m.boards) == 0 {
		b.WriteString("No open boards.\n")
	}
	for i, board := range m.boards {
		cursor := "  "
		line := board.Name
		if i == m.boardCursor {
			cursor = cursorStyle.Render("> ")
			line = cursorStyle.Render(board.Name)
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, line, idStyle.Render("("+board.ID+")")))
	}

	b.WriteString("\n")
	b.WriteString(m.footer(m.keys.Up, m.keys.Down, m.keys.Enter, m.keys.Refresh, m.keys.Quit))
	return b.String()
}

func (m model) boardView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.board.Name))
	b.WriteString("\n\n")

	columns := make([]string, 0, len(m.board.Lists))
	for i, list := range m.board.Lists {
		var col strings.Builder
		col.WriteString(listTitleStyle.Render(list.Name))
		col.WriteString("\n")
		for j, card := range list.Cards {
			line := cardSummary(card)
			if i == m.listCursor && j == m.cardCursor {
				line = selectedCardStyle.Render(line)
			}
			col.WriteString(line)
			col.WriteString("\n")
		}
		if len(list.Cards) == 0 {
			col.WriteString(idStyle.Render("(empty)"))
			col.WriteString("\n")
		}

		style := columnStyle
		if i == m.listCursor {
			style = activeColumnStyle
		}
		columns = append(columns, style.Render(col.String()))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))

	b.WriteString("\n")
	b.WriteString(m.footer(m.keys.Left, m.keys.Right, m.keys.Up, m.keys.Down, m.keys.Enter, m.keys.Back, m.keys.Refresh, m.keys.Quit))
	return b.String()
}

func (m model) cardDetailView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.card.Name))
	b.WriteString("\n")
	b.WriteString(idStyle.Render(m.card.URL))
	b.WriteString("\n\n")

	if len(m.card.Labels) > 0 {
		badges := make([]string, 0, len(m.card.Labels))
		for _, l := range m.card.Labels {
			badges = append(badges, labelBadge(l.Name, l.Color))
		}
		b.WriteString(strings.Join(badges, " "))
		b.WriteString("\n\n")
	}

	if m.card.Desc != "" {
		b.WriteString(m.card.Desc)
	} else {
		b.WriteString(idStyle.Render("(no description)"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.footer(m.keys.Back, m.keys.Quit))
	return b.String()
}

func cardSummary(card trello.Card) string {
	parts := []string{card.Name}
	if card.Desc != "" {
		parts = append(parts, descMarkStyle.Render("[...]"))
	}
	for _, l := range card.Labels {
		parts = append(parts, labelBadge(l.Name, l.Color))
	}
	return strings.Join(parts, " ")
}

func labelBadge(name, color string) string {
	text := "[" + name + "]"
	if style, ok := labelStyles[color]; ok {
		return style.Render(text)
	}
	return text
}

// footer renders a help line from key bindings, separated by dim pipes.
func (m model) footer(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, footerKeyStyle.Render(h.Key)+footerStyle.Render(" "+h.Desc))
	}
	return footerStyle.Render(strings.Join(parts, footerSepStyle.Render(" | ")))
}
