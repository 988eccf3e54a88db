// SPDX-License-Identifier: Apache-2.0

// Package api implements the read-only HTTP endpoints behind `trel
// serve`. It exposes the same board/list/card hierarchy the CLI works
// with, resolved by the same patterns.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"trello-manager/internal/resolver"
	"trello-manager/internal/trello"
)

// Server carries the shared client and match options for all handlers.
type Server struct {
	Client *trello.Client
	Opts   resolver.Options
}

// RegisterRoutes attaches all API routes to the router.
func (s *Server) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/boards", s.listBoardsHandler).Methods("GET")
	router.HandleFunc("/api/boards/{board}", s.getBoardHandler).Methods("GET")
	router.HandleFunc("/api/boards/{board}/lists/{list}", s.getListHandler).Methods("GET")
	router.HandleFunc("/api/boards/{board}/lists/{list}/cards/{card}", s.getCardHandler).Methods("GET")
}

type errorBody struct {
	Error   string   `json:"error"`
	Kind    string   `json:"kind,omitempty"`
	Matches []string `json:"matches,omitempty"`
}

func writeJSONResponse(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

// writeError maps resolution and remote errors onto HTTP statuses:
// zero matches -> 404, many matches -> 409 with the candidate names,
// anything else -> 502 from the upstream API.
func writeError(w http.ResponseWriter, err error) {
	var notFound *trello.NotFoundError
	var ambiguous *trello.AmbiguousError

	switch {
	case errors.As(err, &notFound):
		w.WriteHeader(http.StatusNotFound)
		writeJSONResponse(w, errorBody{Error: err.Error(), Kind: notFound.Kind})
	case errors.As(err, &ambiguous):
		names := make([]string, len(ambiguous.Matches))
		for i, m := range ambiguous.Matches {
			names[i] = m.EntityName()
		}
		w.WriteHeader(http.StatusConflict)
		writeJSONResponse(w, errorBody{Error: err.Error(), Kind: ambiguous.Kind, Matches: names})
	default:
		w.WriteHeader(http.StatusBadGateway)
		writeJSONResponse(w, errorBody{Error: err.Error()})
	}
}

func (s *Server) listBoardsHandler(w http.ResponseWriter, r *http.Request) {
	boards, err := s.Client.ListBoards(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSONResponse(w, boards)
}

func (s *Server) resolveBoard(r *http.Request) (trello.Board, error) {
	pattern := mux.Vars(r)["board"]
	boards, err := s.Client.ListBoards(r.Context())
	if err != nil {
		return trello.Board{}, err
	}
	match, err := resolver.Resolve(pattern, trello.KindBoard, resolver.Entities(boards), s.Opts).Single()
	if err != nil {
		return trello.Board{}, err
	}
	return match.(trello.Board), nil
}

func (s *Server) resolveList(r *http.Request, board trello.Board) (trello.List, error) {
	pattern := mux.Vars(r)["list"]
	lists, err := s.Client.ListLists(r.Context(), board.ID, false)
	if err != nil {
		return trello.List{}, err
	}
	match, err := resolver.Resolve(pattern, trello.KindList, resolver.Entities(lists), s.Opts).Single()
	if err != nil {
		return trello.List{}, err
	}
	return match.(trello.List), nil
}

func (s *Server) getBoardHandler(w http.ResponseWriter, r *http.Request) {
	board, err := s.resolveBoard(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.Client.RetrieveNested(r.Context(), &board); err != nil {
		writeError(w, err)
		return
	}
	writeJSONResponse(w, board)
}

func (s *Server) getListHandler(w http.ResponseWriter, r *http.Request) {
	board, err := s.resolveBoard(r)
	if err != nil {
		writeError(w, err)
		return
	}
	list, err := s.resolveList(r, board)
	if err != nil {
		writeError(w, err)
		return
	}
	cards, err := s.Client.ListCards(r.Context(), list.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	list.Cards = cards
	writeJSONResponse(w, list)
}

func (s *Server) getCardHandler(w http.ResponseWriter, r *http.Request) {
	board, err := s.resolveBoard(r)
	if err != nil {
		writeError(w, err)
		return
	}
	list, err := s.resolveList(r, board)
	if err != nil {
		writeError(w, err)
		return
	}
	cards, err := s.Client.ListCards(r.Context(), list.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	match, err := resolver.Resolve(mux.Vars(r)["card"], trello.KindCard, resolver.Entities(cards), s.Opts).Single()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSONResponse(w, match)
}
