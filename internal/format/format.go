// SPDX-License-Identifier: Apache-2.0

// Package format renders boards, lists and cards as colored terminal
// text.
package format

import (
	"strings"

	"github.com/fatih/color"

	"trello-manager/internal/trello"
)

var (
	boardTitle = color.New(color.Bold)
	listTitle  = color.New(color.Bold)
	dimmed     = color.New(color.Faint)
)

// labelColors maps Trello label color names to terminal colors. Unknown
// names fall through to an uncolored rendering.
var labelColors = map[string]*color.Color{
	"red":    color.New(color.FgRed),
	"orange": color.New(color.FgHiRed),
	"yellow": color.New(color.FgYellow),
	"green":  color.New(color.FgGreen),
	"lime":   color.New(color.FgHiGreen),
	"blue":   color.New(color.FgBlue),
	"sky":    color.New(color.FgCyan),
	"purple": color.New(color.FgMagenta),
	"pink":   color.New(color.FgHiMagenta),
	"black":  color.New(color.FgHiBlack),
}

// Header underlines text with a run of the given character, matching the
// delimiter style used in card edit buffers.
func Header(text, char string) string {
	width := len(text)
	if width < 3 {
		width = 3
	}
	return text + "\n" + strings.Repeat(char, width)
}

// Label renders a label as its bracketed name in the label's color.
func Label(l trello.Label) string {
	text := "[" + l.Name + "]"
	if c, ok := labelColors[l.Color]; ok {
		return c.Sprint(text)
	}
	return text
}

// Card renders a full card: underlined name, then the description.
func Card(c trello.Card) string {
	return Header(c.Name, "=") + "\n" + c.Desc
}

// cardLine renders a card as a single board-view bullet. A dimmed "[...]"
// marker signals a non-empty description; labels follow in their colors.
func cardLine(c trello.Card) string {
	parts := []string{"*", c.Name}
	if c.Desc != "" {
		parts = append(parts, dimmed.Sprint("[...]"))
	}
	for _, l := range c.Labels {
		parts = append(parts, Label(l))
	}
	return strings.Join(parts, " ")
}

// List renders a list with its cards as bullets.
func List(l trello.List) string {
	lines := []string{listTitle.Sprint(Header(l.Name, "-"))}
	for _, c := range l.Cards {
		lines = append(lines, cardLine(c))
	}
	return strings.Join(lines, "\n")
}

// Board renders a board with every list it carries.
func Board(b trello.Board) string {
	sections := []string{boardTitle.Sprint(Header(b.Name, "="))}
	for _, l := range b.Lists {
		sections = append(sections, "", List(l))
	}
	return strings.Join(sections, "\n")
}
