// SPDX-License-Identifier: Apache-2.0

package trello

import "fmt"

// Category classifies a remote API failure. The category is always named
// in the rendered message so the user can tell an auth problem from a
// network one without reading a stack of wrapped errors.
type Category int

const (
	CategoryNetwork Category = iota
	CategoryAuth
	CategoryNotFound
	CategoryMalformed
	CategoryServer
)

func (c Category) String() string {
	switch c {
	case CategoryNetwork:
		return "network"
	case CategoryAuth:
		return "auth"
	case CategoryNotFound:
		return "not found"
	case CategoryMalformed:
		return "malformed response"
	case CategoryServer:
		return "server"
	default:
		return "unknown"
	}
}

// NotFoundError reports a pattern that matched zero candidates of a kind.
type NotFoundError struct {
	Kind    string
	Pattern string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s matching pattern %q was found", e.Kind, e.Pattern)
}

// AmbiguousError reports a pattern that matched more than one candidate.
// Matches carries every hit so the caller can list them for the user to
// refine the pattern; it is not necessarily fatal.
type AmbiguousError struct {
	Kind    string
	Pattern string
	Matches []Entity
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("pattern %q matches %d %ss", e.Pattern, len(e.Matches), e.Kind)
}

// ConflictError reports an optimistic write rejected because the card
// changed between the read and the write.
type ConflictError struct {
	CardID string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("card %s was modified remotely since it was read", e.CardID)
}

// ConflictExhaustedError reports that every write attempt up to the retry
// bound was rejected as a conflict.
type ConflictExhaustedError struct {
	CardID   string
	Attempts int
}

func (e *ConflictExhaustedError) Error() string {
	return fmt.Sprintf("giving up on card %s after %d conflicting write attempts", e.CardID, e.Attempts)
}

// RemoteError is any non-conflict API failure. It is fatal immediately
// and never retried.
type RemoteError struct {
	Category Category
	Op       string
	Status   int
	Err      error
}

func (e *RemoteError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s error during %s (HTTP %d): %v", e.Category, e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("%s error during %s: %v", e.Category, e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }
