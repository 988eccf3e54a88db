// SPDX-License-Identifier: Apache-2.0

// Package trello defines the remote entity model and the HTTP client used
// to talk to the Trello REST API. Entities are immutable snapshots fetched
// per command invocation; nothing is cached between runs.
package trello

// Kind names for the entity hierarchy. These appear in user-facing
// messages ("no board matching ...") and in error values.
const (
	KindBoard      = "board"
	KindList       = "list"
	KindCard       = "card"
	KindLabel      = "label"
	KindAttachment = "attachment"
)

// Entity is any named remote object a pattern can resolve against.
type Entity interface {
	Kind() string
	EntityID() string
	EntityName() string
}

// Label is a colored tag attached to cards.
// https://developers.trello.com/reference/#label-object
type Label struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (l Label) Kind() string       { return KindLabel }
func (l Label) EntityID() string   { return l.ID }
func (l Label) EntityName() string { return l.Name }

// Card is a single card on a list.
// https://developers.trello.com/reference/#card-object
type Card struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Desc             string  `json:"desc"`
	Closed           bool    `json:"closed"`
	URL              string  `json:"url"`
	DateLastActivity string  `json:"dateLastActivity,omitempty"`
	Labels           []Label `json:"labels,omitempty"`
}

func (c Card) Kind() string       { return KindCard }
func (c Card) EntityID() string   { return c.ID }
func (c Card) EntityName() string { return c.Name }

// List is a column of cards on a board.
// https://developers.trello.com/reference/#list-object
type List struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Closed bool   `json:"closed"`
	Cards  []Card `json:"cards,omitempty"`
}

func (l List) Kind() string       { return KindList }
func (l List) EntityID() string   { return l.ID }
func (l List) EntityName() string { return l.Name }

// Board is the top of the hierarchy. Lists is only populated after a
// nested retrieval.
// https://developers.trello.com/reference/#board-object
type Board struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Closed bool   `json:"closed"`
	URL    string `json:"url"`
	Lists  []List `json:"lists,omitempty"`
}

func (b Board) Kind() string       { return KindBoard }
func (b Board) EntityID() string   { return b.ID }
func (b Board) EntityName() string { return b.Name }

// Attachment is a file or link attached to a card.
type Attachment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

func (a Attachment) Kind() string       { return KindAttachment }
func (a Attachment) EntityID() string   { return a.ID }
func (a Attachment) EntityName() string { return a.Name }

// CardRevision is a card snapshot paired with the dateLastActivity value
// observed when it was read. The baseline is the implicit version the
// remote side uses to reject writes against a stale read.
type CardRevision struct {
	Card     Card
	Baseline string
}

// Revision wraps a freshly fetched card as a revision whose baseline is
// the card's own last-activity stamp.
func Revision(c Card) CardRevision {
	return CardRevision{Card: c, Baseline: c.DateLastActivity}
}
