// SPDX-License-Identifier: Apache-2.0

package trello

import (
	"strings"
	"testing"
)

func TestParseCardBuffer(t *testing.T) {
	t.Run("name and description", func(t *testing.T) {
		contents, err := ParseCardBuffer("Hello World\n===\nThis is my card")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if contents.Name != "Hello World" {
			t.Errorf("got name %q", contents.Name)
		}
		if contents.Desc != "This is my card" {
			t.Errorf("got desc %q", contents.Desc)
		}
	})

	t.Run("delimiter length does not matter", func(t *testing.T) {
		contents, err := ParseCardBuffer("Short\n=\ndesc")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if contents.Name != "Short" || contents.Desc != "desc" {
			t.Errorf("got %+v", contents)
		}
	})

	t.Run("multiline name runs until the delimiter", func(t *testing.T) {
		contents, err := ParseCardBuffer("First line\nsecond line\n====\ndesc")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if contents.Name != "First line\nsecond line" {
			t.Errorf("got name %q", contents.Name)
		}
	})

	t.Run("multiline description preserved", func(t *testing.T) {
		contents, err := ParseCardBuffer("name\n====\nline one\n\nline two")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if contents.Desc != "line one\n\nline two" {
			t.Errorf("got desc %q", contents.Desc)
		}
	})

	t.Run("empty description", func(t *testing.T) {
		contents, err := ParseCardBuffer("name\n====\n")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if contents.Desc != "" {
			t.Errorf("got desc %q, want empty", contents.Desc)
		}
	})

	t.Run("missing delimiter is an error", func(t *testing.T) {
		_, err := ParseCardBuffer("just a name\nand more text")
		if err == nil {
			t.Fatal("expected an error")
		}
		if !strings.Contains(err.Error(), "delimiter") {
			t.Errorf("error should mention the delimiter: %v", err)
		}
	})

	t.Run("first line is never the delimiter", func(t *testing.T) {
		contents, err := ParseCardBuffer("====\n====\ndesc")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if contents.Name != "====" {
			t.Errorf("got name %q", contents.Name)
		}
	})
}

func TestRenderCardBufferRoundTrip(t *testing.T) {
	card := Card{Name: "Fix login", Desc: "Users cannot log in.\nSee issue #42."}

	contents, err := ParseCardBuffer(RenderCardBuffer(card))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contents.Name != card.Name {
		t.Errorf("got name %q, want %q", contents.Name, card.Name)
	}
	if contents.Desc != card.Desc {
		t.Errorf("got desc %q, want %q", contents.Desc, card.Desc)
	}
}

func TestRenderCardBufferShortName(t *testing.T) {
	// The delimiter keeps a minimum width so a short name still renders
	// a visible line.
	buffer := RenderCardBuffer(Card{Name: "Go"})
	if !strings.Contains(buffer, "\n===\n") {
		t.Errorf("got %q, want a three-char delimiter", buffer)
	}
}
