// SPDX-License-Identifier: Apache-2.0

package trello

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

// DefaultHost is used when the config does not override the API host.
const DefaultHost = "https://api.trello.com"

// maxConcurrentFetches bounds the parallel card fetches performed while
// filling in a board's nested content.
const maxConcurrentFetches = 8

// Field selections requested from the API, mirroring what the renderers
// actually display. Keeping these narrow keeps responses small.
var (
	boardFields      = "id,name,closed,url"
	listFields       = "id,name,closed"
	cardFields       = "id,name,desc,labels,closed,url,dateLastActivity"
	labelFields      = "id,name,color"
	attachmentFields = "id,name,url"
)

// Client is a thin wrapper over the Trello REST API. Authentication is
// the key/token query pair appended to every request.
type Client struct {
	host  string
	key   string
	token string
	http  *http.Client
}

func NewClient(host, key, token string) *Client {
	if host == "" {
		host = DefaultHost
	}
	return &Client{
		host:  strings.TrimRight(host, "/"),
		key:   key,
		token: token,
		http:  &http.Client{Timeout: 30 * time.Second},
	}
}

// endpoint builds a full request URL with auth credentials attached.
func (c *Client) endpoint(path string, params url.Values) string {
	if params == nil {
		params = url.Values{}
	}
	params.Set("key", c.key)
	params.Set("token", c.token)
	return c.host + path + "?" + params.Encode()
}

// do performs a request and decodes the JSON response into out (skipped
// when out is nil). Failures are classified into RemoteError categories;
// do never returns a bare transport error.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, out any) error {
	op := fmt.Sprintf("%s %s", method, path)

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, params), nil)
	if err != nil {
		return &RemoteError{Category: CategoryMalformed, Op: op, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &RemoteError{Category: CategoryNetwork, Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &RemoteError{
			Category: categoryForStatus(resp.StatusCode),
			Op:       op,
			Status:   resp.StatusCode,
			Err:      fmt.Errorf("%s", strings.TrimSpace(string(body))),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RemoteError{Category: CategoryMalformed, Op: op, Err: err}
	}
	return nil
}

func categoryForStatus(status int) Category {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return CategoryAuth
	case status == http.StatusNotFound:
		return CategoryNotFound
	default:
		return CategoryServer
	}
}

// ListBoards returns all open boards visible to the authenticated member.
func (c *Client) ListBoards(ctx context.Context) ([]Board, error) {
	params := url.Values{"filter": {"open"}, "fields": {boardFields}}
	var boards []Board
	if err := c.do(ctx, http.MethodGet, "/1/members/me/boards/", params, &boards); err != nil {
		return nil, err
	}
	return boards, nil
}

func (c *Client) GetBoard(ctx context.Context, boardID string) (Board, error) {
	params := url.Values{"fields": {boardFields}}
	var board Board
	err := c.do(ctx, http.MethodGet, "/1/boards/"+boardID, params, &board)
	return board, err
}

// ListLists returns the open lists of a board. When withCards is set the
// open cards of each list are included in the same response.
func (c *Client) ListLists(ctx context.Context, boardID string, withCards bool) ([]List, error) {
	params := url.Values{"fields": {listFields}}
	if withCards {
		params.Set("cards", "open")
		params.Set("card_fields", cardFields)
	}
	var lists []List
	if err := c.do(ctx, http.MethodGet, "/1/boards/"+boardID+"/lists", params, &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

func (c *Client) ListCards(ctx context.Context, listID string) ([]Card, error) {
	params := url.Values{"fields": {cardFields}}
	var cards []Card
	if err := c.do(ctx, http.MethodGet, "/1/lists/"+listID+"/cards/", params, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// GetCard reads a card and returns it as a revision whose baseline is
// the observed dateLastActivity.
func (c *Client) GetCard(ctx context.Context, cardID string) (CardRevision, error) {
	params := url.Values{"fields": {cardFields}}
	var card Card
	if err := c.do(ctx, http.MethodGet, "/1/cards/"+cardID, params, &card); err != nil {
		return CardRevision{}, err
	}
	return Revision(card), nil
}

// RetrieveNested fills in the board's lists and their cards. Cards are
// fetched per list with bounded parallelism.
func (c *Client) RetrieveNested(ctx context.Context, board *Board) error {
	lists, err := c.ListLists(ctx, board.ID, false)
	if err != nil {
		return err
	}

	sem := semaphore.NewWeighted(maxConcurrentFetches)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for i := range lists {
		if err := sem.Acquire(ctx, 1); err != nil {
			return &RemoteError{Category: CategoryNetwork, Op: "retrieve nested", Err: err}
		}
		wg.Add(1)
		go func(l *List) {
			defer wg.Done()
			defer sem.Release(1)
			cards, err := c.ListCards(ctx, l.ID)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			l.Cards = cards
		}(&lists[i])
	}

	wg.Wait()
	if firstErr != nil {
		return firstErr
	}
	board.Lists = lists
	return nil
}

// CreateCard creates a card on the given list and returns the remote copy.
func (c *Client) CreateCard(ctx context.Context, listID string, card Card) (Card, error) {
	params := url.Values{
		"name":   {card.Name},
		"desc":   {card.Desc},
		"idList": {listID},
	}
	var created Card
	err := c.do(ctx, http.MethodPost, "/1/cards/", params, &created)
	return created, err
}

// PutCard writes a card revision back to the remote side. The write is
// rejected with a ConflictError when the card's activity stamp has moved
// past the revision's baseline, meaning another actor touched the card
// between our read and this write.
func (c *Client) PutCard(ctx context.Context, rev CardRevision) (CardRevision, error) {
	current, err := c.GetCard(ctx, rev.Card.ID)
	if err != nil {
		return CardRevision{}, err
	}
	if rev.Baseline != "" && current.Baseline != rev.Baseline {
		return CardRevision{}, &ConflictError{CardID: rev.Card.ID}
	}

	params := url.Values{
		"name":   {rev.Card.Name},
		"desc":   {rev.Card.Desc},
		"closed": {strconv.FormatBool(rev.Card.Closed)},
	}
	var updated Card
	if err := c.do(ctx, http.MethodPut, "/1/cards/"+rev.Card.ID+"/", params, &updated); err != nil {
		return CardRevision{}, err
	}
	return Revision(updated), nil
}

func (c *Client) setCardClosed(ctx context.Context, cardID string, closed bool) (Card, error) {
	params := url.Values{"closed": {strconv.FormatBool(closed)}}
	var card Card
	err := c.do(ctx, http.MethodPut, "/1/cards/"+cardID, params, &card)
	return card, err
}

func (c *Client) CloseCard(ctx context.Context, cardID string) (Card, error) {
	return c.setCardClosed(ctx, cardID, true)
}

func (c *Client) ReopenCard(ctx context.Context, cardID string) (Card, error) {
	return c.setCardClosed(ctx, cardID, false)
}

func (c *Client) setListClosed(ctx context.Context, listID string, closed bool) (List, error) {
	params := url.Values{"closed": {strconv.FormatBool(closed)}}
	var list List
	err := c.do(ctx, http.MethodPut, "/1/lists/"+listID, params, &list)
	return list, err
}

func (c *Client) CloseList(ctx context.Context, listID string) (List, error) {
	return c.setListClosed(ctx, listID, true)
}

func (c *Client) ReopenList(ctx context.Context, listID string) (List, error) {
	return c.setListClosed(ctx, listID, false)
}

func (c *Client) setBoardClosed(ctx context.Context, boardID string, closed bool) (Board, error) {
	params := url.Values{"closed": {strconv.FormatBool(closed)}}
	var board Board
	err := c.do(ctx, http.MethodPut, "/1/boards/"+boardID, params, &board)
	return board, err
}

func (c *Client) CloseBoard(ctx context.Context, boardID string) (Board, error) {
	return c.setBoardClosed(ctx, boardID, true)
}

func (c *Client) ReopenBoard(ctx context.Context, boardID string) (Board, error) {
	return c.setBoardClosed(ctx, boardID, false)
}

func (c *Client) CreateList(ctx context.Context, boardID, name string) (List, error) {
	params := url.Values{"name": {name}, "idBoard": {boardID}}
	var list List
	err := c.do(ctx, http.MethodPost, "/1/lists/", params, &list)
	return list, err
}

func (c *Client) CreateBoard(ctx context.Context, name string) (Board, error) {
	params := url.Values{"name": {name}}
	var board Board
	err := c.do(ctx, http.MethodPost, "/1/boards/", params, &board)
	return board, err
}

func (c *Client) ListLabels(ctx context.Context, boardID string) ([]Label, error) {
	params := url.Values{"fields": {labelFields}}
	var labels []Label
	if err := c.do(ctx, http.MethodGet, "/1/boards/"+boardID+"/labels", params, &labels); err != nil {
		return nil, err
	}
	return labels, nil
}

func (c *Client) ApplyLabel(ctx context.Context, cardID, labelID string) error {
	params := url.Values{"value": {labelID}}
	return c.do(ctx, http.MethodPost, "/1/cards/"+cardID+"/idLabels", params, nil)
}

func (c *Client) RemoveLabel(ctx context.Context, cardID, labelID string) error {
	return c.do(ctx, http.MethodDelete, "/1/cards/"+cardID+"/idLabels/"+labelID, nil, nil)
}

func (c *Client) ListAttachments(ctx context.Context, cardID string) ([]Attachment, error) {
	params := url.Values{"fields": {attachmentFields}}
	var attachments []Attachment
	if err := c.do(ctx, http.MethodGet, "/1/cards/"+cardID+"/attachments", params, &attachments); err != nil {
		return nil, err
	}
	return attachments, nil
}

// AttachURL attaches a link to a card.
func (c *Client) AttachURL(ctx context.Context, cardID, link string) (Attachment, error) {
	params := url.Values{"url": {link}}
	var attachment Attachment
	err := c.do(ctx, http.MethodPost, "/1/cards/"+cardID+"/attachments", params, &attachment)
	return attachment, err
}
