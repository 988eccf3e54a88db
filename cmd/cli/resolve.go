// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"

	"trello-manager/internal/resolver"
	"trello-manager/internal/trello"
)

func newSpinner(suffix string) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Color("cyan")
	s.Suffix = suffix
	return s
}

func matchOptions() resolver.Options {
	return resolver.Options{
		CaseSensitive: cfg.CaseSensitive,
		Wildcard:      cfg.WildcardRune(),
	}
}

// boardPattern substitutes the configured default board when the command
// line did not name one.
func boardPattern(pattern string) (string, error) {
	if pattern != "" {
		return pattern, nil
	}
	if cfg.DefaultBoard == "" {
		return "", fmt.Errorf("no board given and no default_board configured")
	}
	return cfg.DefaultBoard, nil
}

// resolveBoard fetches all open boards and resolves the pattern against
// their names.
func resolveBoard(ctx context.Context, pattern string) (trello.Board, error) {
	s := newSpinner(" Fetching boards...")
	s.Start()
	boards, err := client.ListBoards(ctx)
	s.Stop()
	if err != nil {
		return trello.Board{}, err
	}

	match, err := resolver.Resolve(pattern, trello.KindBoard, resolver.Entities(boards), matchOptions()).Single()
	if err != nil {
		return trello.Board{}, err
	}
	return match.(trello.Board), nil
}

func resolveList(ctx context.Context, board trello.Board, pattern string) (trello.List, error) {
	s := newSpinner(fmt.Sprintf(" Fetching lists of %s...", board.Name))
	s.Start()
	lists, err := client.ListLists(ctx, board.ID, false)
	s.Stop()
	if err != nil {
		return trello.List{}, err
	}

	match, err := resolver.Resolve(pattern, trello.KindList, resolver.Entities(lists), matchOptions()).Single()
	if err != nil {
		return trello.List{}, err
	}
	return match.(trello.List), nil
}

func resolveCard(ctx context.Context, list trello.List, pattern string) (trello.Card, error) {
	s := newSpinner(fmt.Sprintf(" Fetching cards of %s...", list.Name))
	s.Start()
	cards, err := client.ListCards(ctx, list.ID)
	s.Stop()
	if err != nil {
		return trello.Card{}, err
	}

	match, err := resolver.Resolve(pattern, trello.KindCard, resolver.Entities(cards), matchOptions()).Single()
	if err != nil {
		return trello.Card{}, err
	}
	return match.(trello.Card), nil
}

// exitOnError reports a failure and exits non-zero. An ambiguous pattern
// gets special treatment: every match is listed with its id so the user
// can refine the pattern or pick by id.
func exitOnError(err error) {
	var ambiguous *trello.AmbiguousError
	if errors.As(err, &ambiguous) {
		errorColor.Fprintf(os.Stderr, "Pattern %q matches more than one %s:\n", ambiguous.Pattern, ambiguous.Kind)
		for _, m := range ambiguous.Matches {
			fmt.Fprintf(os.Stderr, "- %s %s\n", m.EntityName(), dimColor.Sprintf("(%s)", m.EntityID()))
		}
		os.Exit(1)
	}
	errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
