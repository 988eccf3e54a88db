// SPDX-License-Identifier: Apache-2.0

// Package ui implements the read-only bubbletea board browser started
// when trel runs without arguments.
package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"trello-manager/internal/trello"
)

type state int

const (
	stateLoadingBoards state = iota
	stateBoardList
	stateLoadingBoard
	stateBoardView
	stateCardDetail
	stateError
)

type model struct {
	client *trello.Client

	currentState state
	boards       []trello.Board
	board        trello.Board // nested copy of the opened board
	boardCursor  int
	listCursor   int
	cardCursor   int
	card         trello.Card

	spin   spinner.Model
	keys   KeyMap
	err    error
	width  int
	height int
}

// --- Messages ---

type boardsLoadedMsg struct {
	boards []trello.Board
}
type boardLoadedMsg struct {
	board trello.Board
}
type errorMsg struct {
	err error
}

// --- Commands ---

func loadBoardsCmd(client *trello.Client) tea.Cmd {
	return func() tea.Msg {
		boards, err := client.ListBoards(context.Background())
		if err != nil {
			return errorMsg{err}
		}
		return boardsLoadedMsg{boards}
	}
}

func loadBoardCmd(client *trello.Client, board trello.Board) tea.Cmd {
	return func() tea.Msg {
		if err := client.RetrieveNested(context.Background(), &board); err != nil {
			return errorMsg{err}
		}
		return boardLoadedMsg{board}
	}
}

// --- Model implementation ---

func InitialModel(client *trello.Client) model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return model{
		client:       client,
		currentState: stateLoadingBoards,
		spin:         s,
		keys:         DefaultKeyMap,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, loadBoardsCmd(m.client))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case boardsLoadedMsg:
		m.boards = msg.boards
		m.boardCursor = 0
		m.currentState = stateBoardList
		return m, nil

	case boardLoadedMsg:
		m.board = msg.board
		m.listCursor = 0
		m.cardCursor = 0
		m.currentState = stateBoardView
		return m, nil

	case errorMsg:
		m.err = msg.err
		m.currentState = stateError
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	switch m.currentState {
	case stateBoardList:
		return m.handleBoardListKey(msg)
	case stateBoardView:
		return m.handleBoardViewKey(msg)
	case stateCardDetail:
		if key.Matches(msg, m.keys.Back, m.keys.Enter) {
			m.currentState = stateBoardView
		}
	case stateError:
		if key.Matches(msg, m.keys.Back, m.keys.Enter) {
			m.err = nil
			m.currentState = stateLoadingBoards
			return m, tea.Batch(m.spin.Tick, loadBoardsCmd(m.client))
		}
	}
	return m, nil
}

func (m model) handleBoardListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.boardCursor > 0 {
			m.boardCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.boardCursor < len(m.boards)-1 {
			m.boardCursor++
		}
	case key.Matches(msg, m.keys.Refresh):
		m.currentState = stateLoadingBoards
		return m, tea.Batch(m.spin.Tick, loadBoardsCmd(m.client))
	case key.Matches(msg, m.keys.Enter):
		if len(m.boards) > 0 {
			m.currentState = stateLoadingBoard
			return m, tea.Batch(m.spin.Tick, loadBoardCmd(m.client, m.boards[m.boardCursor]))
		}
	}
	return m, nil
}

func (m model) handleBoardViewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		if m.listCursor > 0 {
			m.listCursor--
			m.cardCursor = 0
		}
	case key.Matches(msg, m.keys.Right):
		if m.listCursor < len(m.board.Lists)-1 {
			m.listCursor++
			m.cardCursor = 0
		}
	case key.Matches(msg, m.keys.Up):
		if m.cardCursor > 0 {
			m.cardCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if cards := m.currentCards(); m.cardCursor < len(cards)-1 {
			m.cardCursor++
		}
	case key.Matches(msg, m.keys.Refresh):
		m.currentState = stateLoadingBoard
		return m, tea.Batch(m.spin.Tick, loadBoardCmd(m.client, m.board))
	case key.Matches(msg, m.keys.Enter):
		if cards := m.currentCards(); len(cards) > 0 {
			m.card = cards[m.cardCursor]
			m.currentState = stateCardDetail
		}
	case key.Matches(msg, m.keys.Back):
		m.currentState = stateBoardList
	}
	return m, nil
}

func (m model) currentCards() []trello.Card {
	if m.listCursor >= len(m.board.Lists) {
		return nil
	}
	return m.board.Lists[m.listCursor].Cards
}
