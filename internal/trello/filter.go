// SPDX-License-Identifier: Apache-2.0

package trello

import (
	"fmt"
	"regexp"
)

// FilterByLabel returns a copy of the list keeping only cards with at
// least one label whose name matches the expression. Matching is a
// case-insensitive regular expression test, so plain words work as
// simple substring filters.
func (l List) FilterByLabel(expr string) (List, error) {
	re, err := regexp.Compile("(?i)" + expr)
	if err != nil {
		return List{}, fmt.Errorf("invalid label filter %q: %w", expr, err)
	}

	out := l
	if l.Cards != nil {
		out.Cards = make([]Card, 0, len(l.Cards))
		for _, card := range l.Cards {
			for _, label := range card.Labels {
				if re.MatchString(label.Name) {
					out.Cards = append(out.Cards, card)
					break
				}
			}
		}
	}
	return out, nil
}

// FilterByLabel applies the label filter to every list on the board.
func (b Board) FilterByLabel(expr string) (Board, error) {
	out := b
	if b.Lists != nil {
		out.Lists = make([]List, 0, len(b.Lists))
		for _, list := range b.Lists {
			filtered, err := list.FilterByLabel(expr)
			if err != nil {
				return Board{}, err
			}
			out.Lists = append(out.Lists, filtered)
		}
	}
	return out, nil
}
