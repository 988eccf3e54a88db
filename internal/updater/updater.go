// SPDX-License-Identifier: Apache-2.0

// Package updater applies card edits as bounded optimistic-concurrency
// retry loops. No lock is ever held on the remote side: a write may be
// rejected when the card changed since it was read, in which case the
// read-apply-write cycle restarts from a fresh read.
package updater

import (
	"context"
	"errors"
	"fmt"

	"trello-manager/internal/trello"
)

// DefaultMaxRetries is the write-attempt bound used when a caller passes
// a non-positive value.
const DefaultMaxRetries = 3

// CardService is the remote surface the updater needs. *trello.Client
// satisfies it; tests inject a mock that rejects a configurable number
// of writes.
type CardService interface {
	GetCard(ctx context.Context, cardID string) (trello.CardRevision, error)
	PutCard(ctx context.Context, rev trello.CardRevision) (trello.CardRevision, error)
	CreateCard(ctx context.Context, listID string, card trello.Card) (trello.Card, error)
}

// Mutation transforms the freshly read card state into the desired state.
// It must be pure: on a conflict it is re-applied to the latest remote
// state, not the one originally read.
type Mutation func(trello.Card) trello.Card

// The update cycle as an explicit state machine:
// read -> apply -> write -> {done | conflict -> read | fatal}.
type updateState int

const (
	stateRead updateState = iota
	stateApply
	stateWrite
)

// UpdateCard runs the read-apply-write cycle for the given card until the
// write lands, a non-conflict error occurs, or maxRetries write attempts
// have been rejected as conflicts. Non-conflict errors abort immediately.
func UpdateCard(ctx context.Context, svc CardService, cardID string, mutate Mutation, maxRetries int) (trello.CardRevision, error) {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}

	var (
		rev       trello.CardRevision
		candidate trello.CardRevision
		attempts  int
	)

	state := stateRead
	for {
		switch state {
		case stateRead:
			fresh, err := svc.GetCard(ctx, cardID)
			if err != nil {
				return trello.CardRevision{}, fmt.Errorf("reading card %s: %w", cardID, err)
			}
			rev = fresh
			state = stateApply

		case stateApply:
			card := mutate(rev.Card)
			card.ID = rev.Card.ID
			candidate = trello.CardRevision{Card: card, Baseline: rev.Baseline}
			state = stateWrite

		case stateWrite:
			attempts++
			written, err := svc.PutCard(ctx, candidate)
			if err == nil {
				return written, nil
			}
			var conflict *trello.ConflictError
			if !errors.As(err, &conflict) {
				return trello.CardRevision{}, err
			}
			if attempts >= maxRetries {
				return trello.CardRevision{}, &trello.ConflictExhaustedError{CardID: cardID, Attempts: attempts}
			}
			state = stateRead
		}
	}
}

// CreateCard creates a card with the same bounded conflict retry as
// UpdateCard. Creation has no baseline to re-read, so a conflicting
// attempt is simply resubmitted.
func CreateCard(ctx context.Context, svc CardService, listID string, card trello.Card, maxRetries int) (trello.Card, error) {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}

	var attempts int
	for {
		attempts++
		created, err := svc.CreateCard(ctx, listID, card)
		if err == nil {
			return created, nil
		}
		var conflict *trello.ConflictError
		if !errors.As(err, &conflict) {
			return trello.Card{}, err
		}
		if attempts >= maxRetries {
			return trello.Card{}, &trello.ConflictExhaustedError{CardID: card.Name, Attempts: attempts}
		}
	}
}
