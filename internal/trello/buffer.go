// SPDX-License-Identifier: Apache-2.0

package trello

import (
	"fmt"
	"strings"
)

// CardContents holds the editable fields recovered from an edit buffer.
type CardContents struct {
	Name string
	Desc string
}

// RenderCardBuffer produces the text handed to the user's editor: the
// card name, a delimiter line of '=', then the description.
func RenderCardBuffer(card Card) string {
	width := len(card.Name)
	if width < 3 {
		width = 3
	}
	return card.Name + "\n" + strings.Repeat("=", width) + "\n" + card.Desc
}

// ParseCardBuffer parses an edited buffer back into card contents. The
// scan is deliberately loose: the name runs until the first line made up
// entirely of '=' characters, so the user never has to resize the
// delimiter when the name grows or shrinks. Everything after the
// delimiter is the description.
func ParseCardBuffer(buffer string) (CardContents, error) {
	lines := strings.Split(buffer, "\n")

	var name []string
	rest := -1
	for i, line := range lines {
		if i > 0 && isDelimiter(line) {
			rest = i + 1
			break
		}
		name = append(name, line)
	}

	if rest < 0 {
		return CardContents{}, fmt.Errorf("card buffer has no name delimiter line ('====')")
	}

	return CardContents{
		Name: strings.Join(name, "\n"),
		Desc: strings.Join(lines[rest:], "\n"),
	}, nil
}

func isDelimiter(line string) bool {
	if line == "" {
		return false
	}
	for _, r := range line {
		if r != '=' {
			return false
		}
	}
	return true
}
