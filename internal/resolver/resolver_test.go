// SPDX-License-Identifier: Apache-2.0

package resolver

import (
	"errors"
	"strings"
	"testing"

	"trello-manager/internal/trello"
)

func boards(names ...string) []trello.Entity {
	bs := make([]trello.Board, len(names))
	for i, name := range names {
		bs[i] = trello.Board{ID: "id-" + name, Name: name}
	}
	return Entities(bs)
}

func matchNames(r MatchResult) []string {
	names := make([]string, len(r.Matches))
	for i, m := range r.Matches {
		names[i] = m.EntityName()
	}
	return names
}

func TestResolvePlainPatterns(t *testing.T) {
	t.Run("exact name returns only equal candidates", func(t *testing.T) {
		candidates := boards("TODO", "TODO Backlog")
		r := Resolve("TODO", trello.KindBoard, candidates, Options{CaseSensitive: true})
		if len(r.Matches) != 1 || r.Matches[0].EntityName() != "TODO" {
			t.Errorf("got %v, want only TODO", matchNames(r))
		}
	})

	t.Run("case folding applies to pattern and candidates", func(t *testing.T) {
		candidates := boards("Sprint Board", "sprint board", "Backlog")
		r := Resolve("sprint", trello.KindBoard, candidates, Options{})
		if len(r.Matches) != 2 {
			t.Fatalf("got %v, want the two sprint boards", matchNames(r))
		}
		for _, name := range matchNames(r) {
			if !strings.Contains(strings.ToLower(name), "sprint") {
				t.Errorf("unexpected match %q", name)
			}
		}
	})

	t.Run("equality tier beats substring tier", func(t *testing.T) {
		candidates := boards("Sprint", "Sprint Board")
		r := Resolve("sprint", trello.KindBoard, candidates, Options{})
		if len(r.Matches) != 1 || r.Matches[0].EntityName() != "Sprint" {
			t.Errorf("got %v, want only the exact Sprint", matchNames(r))
		}
	})

	t.Run("case sensitive matching excludes other casings", func(t *testing.T) {
		candidates := boards("Sprint Board", "sprint board")
		r := Resolve("sprint board", trello.KindBoard, candidates, Options{CaseSensitive: true})
		if len(r.Matches) != 1 || r.Matches[0].EntityName() != "sprint board" {
			t.Errorf("got %v, want only the lowercase board", matchNames(r))
		}
	})
}

func TestResolveWildcards(t *testing.T) {
	candidates := boards("Sprint Board", "Sprint Backlog", "Done")

	t.Run("star matches any run", func(t *testing.T) {
		r := Resolve("sprint*", trello.KindBoard, candidates, Options{})
		if len(r.Matches) != 2 {
			t.Errorf("got %v, want both sprint boards", matchNames(r))
		}
	})

	t.Run("glob is anchored to the whole name", func(t *testing.T) {
		r := Resolve("*Back*", trello.KindBoard, candidates, Options{})
		if len(r.Matches) != 1 || r.Matches[0].EntityName() != "Sprint Backlog" {
			t.Errorf("got %v, want only Sprint Backlog", matchNames(r))
		}
	})

	t.Run("question mark matches a single rune", func(t *testing.T) {
		r := Resolve("d?ne", trello.KindBoard, candidates, Options{})
		if len(r.Matches) != 1 || r.Matches[0].EntityName() != "Done" {
			t.Errorf("got %v, want only Done", matchNames(r))
		}
	})

	t.Run("lone star matches everything", func(t *testing.T) {
		r := Resolve("*", trello.KindBoard, candidates, Options{})
		if len(r.Matches) != 3 {
			t.Errorf("got %v, want all candidates", matchNames(r))
		}
	})

	t.Run("custom wildcard rune", func(t *testing.T) {
		r := Resolve("sprint%", trello.KindBoard, candidates, Options{Wildcard: '%'})
		if len(r.Matches) != 2 {
			t.Errorf("got %v, want both sprint boards", matchNames(r))
		}
	})

	t.Run("non-matching glob finds nothing", func(t *testing.T) {
		r := Resolve("done*extra", trello.KindBoard, candidates, Options{})
		if len(r.Matches) != 0 {
			t.Errorf("got %v, want no matches", matchNames(r))
		}
	})
}

func TestSingle(t *testing.T) {
	candidates := boards("Sprint Board", "Sprint Backlog", "Done")

	t.Run("one match proceeds", func(t *testing.T) {
		entity, err := Resolve("done", trello.KindBoard, candidates, Options{}).Single()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entity.EntityName() != "Done" {
			t.Errorf("got %q, want Done", entity.EntityName())
		}
	})

	t.Run("zero matches is NotFound naming pattern and kind", func(t *testing.T) {
		_, err := Resolve("nonexistent", trello.KindBoard, candidates, Options{}).Single()
		var notFound *trello.NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("got %v, want NotFoundError", err)
		}
		if notFound.Pattern != "nonexistent" || notFound.Kind != trello.KindBoard {
			t.Errorf("error missing context: %+v", notFound)
		}
		if !strings.Contains(err.Error(), "nonexistent") || !strings.Contains(err.Error(), "board") {
			t.Errorf("message should name pattern and kind: %q", err.Error())
		}
	})

	t.Run("many matches is Ambiguous carrying all of them", func(t *testing.T) {
		_, err := Resolve("sprint*", trello.KindBoard, candidates, Options{}).Single()
		var ambiguous *trello.AmbiguousError
		if !errors.As(err, &ambiguous) {
			t.Fatalf("got %v, want AmbiguousError", err)
		}
		if len(ambiguous.Matches) != 2 {
			t.Errorf("got %d matches, want 2", len(ambiguous.Matches))
		}
	})
}

func TestResolveAgainstCards(t *testing.T) {
	cards := []trello.Card{
		{ID: "1", Name: "Fix login"},
		{ID: "2", Name: "fix logout"},
	}
	r := Resolve("fix*", trello.KindCard, Entities(cards), Options{})
	if len(r.Matches) != 2 {
		t.Fatalf("got %v, want both cards", matchNames(r))
	}
	if r.Matches[0].Kind() != trello.KindCard {
		t.Errorf("got kind %q, want card", r.Matches[0].Kind())
	}
}
