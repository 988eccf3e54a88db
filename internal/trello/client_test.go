// SPDX-License-Identifier: Apache-2.0

package trello

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListBoards(t *testing.T) {
	var gotQuery map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/1/members/me/boards/" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		q := r.URL.Query()
		gotQuery = map[string]string{
			"key":    q.Get("key"),
			"token":  q.Get("token"),
			"filter": q.Get("filter"),
			"fields": q.Get("fields"),
		}
		json.NewEncoder(w).Encode([]Board{
			{ID: "b1", Name: "Sprint Board", URL: "https://trello.com/b/b1"},
		})
	}))
	defer ts.Close()

	client := NewClient(ts.URL, "the-key", "the-token")
	boards, err := client.ListBoards(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(boards) != 1 || boards[0].Name != "Sprint Board" {
		t.Errorf("got %+v", boards)
	}
	if gotQuery["key"] != "the-key" || gotQuery["token"] != "the-token" {
		t.Errorf("credentials not sent: %+v", gotQuery)
	}
	if gotQuery["filter"] != "open" || gotQuery["fields"] == "" {
		t.Errorf("board query missing filter/fields: %+v", gotQuery)
	}
}

func TestGetCardBaseline(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Card{ID: "c1", Name: "A card", DateLastActivity: "2026-08-01T10:00:00Z"})
	}))
	defer ts.Close()

	client := NewClient(ts.URL, "k", "t")
	rev, err := client.GetCard(context.Background(), "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rev.Baseline != "2026-08-01T10:00:00Z" {
		t.Errorf("got baseline %q, want the activity stamp", rev.Baseline)
	}
}

func TestPutCard(t *testing.T) {
	t.Run("clean write goes through", func(t *testing.T) {
		var putSeen bool
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				json.NewEncoder(w).Encode(Card{ID: "c1", Name: "old", DateLastActivity: "t0"})
			case http.MethodPut:
				putSeen = true
				if got := r.URL.Query().Get("name"); got != "new" {
					t.Errorf("got name param %q, want new", got)
				}
				json.NewEncoder(w).Encode(Card{ID: "c1", Name: "new", DateLastActivity: "t1"})
			}
		}))
		defer ts.Close()

		client := NewClient(ts.URL, "k", "t")
		rev := CardRevision{Card: Card{ID: "c1", Name: "new"}, Baseline: "t0"}
		written, err := client.PutCard(context.Background(), rev)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !putSeen {
			t.Fatal("PUT never reached the server")
		}
		if written.Baseline != "t1" {
			t.Errorf("got baseline %q, want the fresh stamp", written.Baseline)
		}
	})

	t.Run("stale baseline is a conflict and never writes", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPut {
				t.Error("PUT must not be sent on a detected conflict")
			}
			json.NewEncoder(w).Encode(Card{ID: "c1", Name: "old", DateLastActivity: "t5"})
		}))
		defer ts.Close()

		client := NewClient(ts.URL, "k", "t")
		rev := CardRevision{Card: Card{ID: "c1", Name: "new"}, Baseline: "t0"}
		_, err := client.PutCard(context.Background(), rev)
		var conflict *ConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("got %v, want ConflictError", err)
		}
		if conflict.CardID != "c1" {
			t.Errorf("conflict should carry the card id, got %q", conflict.CardID)
		}
	})
}

func TestErrorClassification(t *testing.T) {
	cases := []struct {
		name   string
		status int
		want   Category
	}{
		{"unauthorized", http.StatusUnauthorized, CategoryAuth},
		{"forbidden", http.StatusForbidden, CategoryAuth},
		{"missing", http.StatusNotFound, CategoryNotFound},
		{"server failure", http.StatusInternalServerError, CategoryServer},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, tc.name, tc.status)
			}))
			defer ts.Close()

			client := NewClient(ts.URL, "k", "t")
			_, err := client.ListBoards(context.Background())
			var remote *RemoteError
			if !errors.As(err, &remote) {
				t.Fatalf("got %v, want RemoteError", err)
			}
			if remote.Category != tc.want {
				t.Errorf("got category %v, want %v", remote.Category, tc.want)
			}
			if remote.Status != tc.status {
				t.Errorf("got status %d, want %d", remote.Status, tc.status)
			}
		})
	}

	t.Run("malformed body", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer ts.Close()

		client := NewClient(ts.URL, "k", "t")
		_, err := client.ListBoards(context.Background())
		var remote *RemoteError
		if !errors.As(err, &remote) {
			t.Fatalf("got %v, want RemoteError", err)
		}
		if remote.Category != CategoryMalformed {
			t.Errorf("got category %v, want malformed", remote.Category)
		}
	})

	t.Run("unreachable host", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		ts.Close() // refuse connections

		client := NewClient(ts.URL, "k", "t")
		_, err := client.ListBoards(context.Background())
		var remote *RemoteError
		if !errors.As(err, &remote) {
			t.Fatalf("got %v, want RemoteError", err)
		}
		if remote.Category != CategoryNetwork {
			t.Errorf("got category %v, want network", remote.Category)
		}
	})
}

func TestRetrieveNested(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/1/boards/b1/lists":
			json.NewEncoder(w).Encode([]List{
				{ID: "l1", Name: "TODO"},
				{ID: "l2", Name: "Done"},
			})
		case "/1/lists/l1/cards/":
			json.NewEncoder(w).Encode([]Card{{ID: "c1", Name: "A card"}})
		case "/1/lists/l2/cards/":
			json.NewEncoder(w).Encode([]Card{})
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	client := NewClient(ts.URL, "k", "t")
	board := Board{ID: "b1", Name: "Sprint"}
	if err := client.RetrieveNested(context.Background(), &board); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(board.Lists) != 2 {
		t.Fatalf("got %d lists, want 2", len(board.Lists))
	}
	if board.Lists[0].Name != "TODO" || len(board.Lists[0].Cards) != 1 {
		t.Errorf("first list not filled in: %+v", board.Lists[0])
	}
	if len(board.Lists[1].Cards) != 0 {
		t.Errorf("second list should be empty: %+v", board.Lists[1])
	}
}

func TestCreateListAndBoard(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %s", r.Method)
		}
		switch r.URL.Path {
		case "/1/lists/":
			if q := r.URL.Query(); q.Get("idBoard") != "b1" || q.Get("name") != "Doing" {
				t.Errorf("missing list params: %v", q)
			}
			json.NewEncoder(w).Encode(List{ID: "l9", Name: "Doing"})
		case "/1/boards/":
			json.NewEncoder(w).Encode(Board{ID: "b9", Name: "New Board"})
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
		}
	}))
	defer ts.Close()

	client := NewClient(ts.URL, "k", "t")
	list, err := client.CreateList(context.Background(), "b1", "Doing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.ID != "l9" {
		t.Errorf("got %+v", list)
	}
	board, err := client.CreateBoard(context.Background(), "New Board")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if board.ID != "b9" {
		t.Errorf("got %+v", board)
	}
}

func TestCreateCard(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/1/cards/" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("idList") != "l1" || q.Get("name") != "new card" {
			t.Errorf("missing params: %v", q)
		}
		json.NewEncoder(w).Encode(Card{ID: "c9", Name: "new card"})
	}))
	defer ts.Close()

	client := NewClient(ts.URL, "k", "t")
	created, err := client.CreateCard(context.Background(), "l1", Card{Name: "new card"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "c9" {
		t.Errorf("got %+v", created)
	}
}
