// SPDX-License-Identifier: Apache-2.0

package trello

import "testing"

func fruitList() List {
	return List{
		ID:   "l1",
		Name: "TODO",
		Cards: []Card{
			{ID: "1", Name: "Orange", Labels: []Label{{ID: "x", Name: "fruit"}}},
			{ID: "2", Name: "Green"},
			{ID: "3", Name: "Carrot", Labels: []Label{{ID: "y", Name: "Vegetable"}}},
		},
	}
}

func TestListFilterByLabel(t *testing.T) {
	t.Run("keeps only cards with a matching label", func(t *testing.T) {
		filtered, err := fruitList().FilterByLabel("fruit")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(filtered.Cards) != 1 || filtered.Cards[0].Name != "Orange" {
			t.Errorf("got %d cards, want only Orange", len(filtered.Cards))
		}
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		filtered, err := fruitList().FilterByLabel("vegetable")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(filtered.Cards) != 1 || filtered.Cards[0].Name != "Carrot" {
			t.Errorf("got %d cards, want only Carrot", len(filtered.Cards))
		}
	})

	t.Run("no matches leaves an empty list", func(t *testing.T) {
		filtered, err := fruitList().FilterByLabel("idontexist")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(filtered.Cards) != 0 {
			t.Errorf("got %d cards, want none", len(filtered.Cards))
		}
	})

	t.Run("invalid expression is an error", func(t *testing.T) {
		_, err := fruitList().FilterByLabel("fru(it")
		if err == nil {
			t.Fatal("expected an error for an invalid regexp")
		}
	})

	t.Run("list metadata survives filtering", func(t *testing.T) {
		filtered, err := fruitList().FilterByLabel("fruit")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if filtered.ID != "l1" || filtered.Name != "TODO" {
			t.Errorf("got %+v, want id and name preserved", filtered)
		}
	})
}

func TestBoardFilterByLabel(t *testing.T) {
	board := Board{
		ID:    "b1",
		Name:  "Sprint",
		Lists: []List{fruitList(), {ID: "l2", Name: "Done"}},
	}

	filtered, err := board.FilterByLabel("fruit")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(filtered.Lists) != 2 {
		t.Fatalf("got %d lists, want both kept", len(filtered.Lists))
	}
	if len(filtered.Lists[0].Cards) != 1 {
		t.Errorf("got %d cards in first list, want 1", len(filtered.Lists[0].Cards))
	}
	if len(filtered.Lists[1].Cards) != 0 {
		t.Errorf("got %d cards in second list, want 0", len(filtered.Lists[1].Cards))
	}
}
