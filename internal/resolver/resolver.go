// SPDX-License-Identifier: Apache-2.0

// Package resolver matches user-supplied name patterns against collections
// of remote entities.
package resolver

import (
	"strings"

	"trello-manager/internal/trello"
)

// Options configures how a pattern is matched against candidate names.
// The zero value gives the documented defaults: case-insensitive, '*' as
// the wildcard rune.
type Options struct {
	// CaseSensitive disables the case folding applied to both pattern
	// and candidate names before comparison.
	CaseSensitive bool

	// Wildcard is the rune standing for an arbitrary run of characters.
	// Zero means '*'. A '?' in the pattern always matches a single rune.
	Wildcard rune
}

func (o Options) wildcard() rune {
	if o.Wildcard == 0 {
		return '*'
	}
	return o.Wildcard
}

// MatchResult is the subset of candidates satisfying a pattern.
// Multiplicity is significant: zero is an error, one proceeds, many needs
// disambiguation by the user.
type MatchResult struct {
	Kind    string
	Pattern string
	Matches []trello.Entity
}

// Resolve matches pattern against the candidates' names.
//
// Patterns containing the wildcard rune are matched as anchored globs
// over the whole name. Plain patterns are matched in two tiers: if any
// candidate name equals the pattern outright, only those candidates are
// returned; otherwise any candidate whose name contains the pattern
// matches. The tiers keep an exact name usable even when it is a prefix
// of a sibling's name.
func Resolve(pattern, kind string, candidates []trello.Entity, opts Options) MatchResult {
	result := MatchResult{Kind: kind, Pattern: pattern}

	fold := func(s string) string {
		if opts.CaseSensitive {
			return s
		}
		return strings.ToLower(s)
	}
	want := fold(pattern)

	if strings.ContainsRune(pattern, opts.wildcard()) || strings.ContainsRune(pattern, '?') {
		glob := normalizeGlob(want, opts.wildcard())
		for _, c := range candidates {
			if matchGlob(glob, fold(c.EntityName())) {
				result.Matches = append(result.Matches, c)
			}
		}
		return result
	}

	var exact, partial []trello.Entity
	for _, c := range candidates {
		name := fold(c.EntityName())
		if name == want {
			exact = append(exact, c)
		} else if strings.Contains(name, want) {
			partial = append(partial, c)
		}
	}
	if len(exact) > 0 {
		result.Matches = exact
	} else {
		result.Matches = partial
	}
	return result
}

// Single reduces the result to its unambiguous entity, or the matching
// NotFoundError / AmbiguousError.
func (r MatchResult) Single() (trello.Entity, error) {
	switch len(r.Matches) {
	case 0:
		return nil, &trello.NotFoundError{Kind: r.Kind, Pattern: r.Pattern}
	case 1:
		return r.Matches[0], nil
	default:
		return nil, &trello.AmbiguousError{Kind: r.Kind, Pattern: r.Pattern, Matches: r.Matches}
	}
}

// Entities adapts a typed slice to the Entity interface for Resolve.
func Entities[E trello.Entity](items []E) []trello.Entity {
	out := make([]trello.Entity, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

// normalizeGlob rewrites a custom wildcard rune to '*' so matchGlob only
// deals with one syntax.
func normalizeGlob(pattern string, wildcard rune) string {
	if wildcard == '*' {
		return pattern
	}
	return strings.ReplaceAll(pattern, string(wildcard), "*")
}

// matchGlob reports whether name matches the glob pattern in full.
// '*' matches any run of characters including the empty run; '?' matches
// exactly one rune.
func matchGlob(pattern, name string) bool {
	p := []rune(pattern)
	n := []rune(name)

	// Iterative glob match with single-star backtracking.
	var pi, ni int
	star, starred := -1, 0
	for ni < len(n) {
		switch {
		case pi < len(p) && p[pi] == '*':
			star, starred = pi, ni
			pi++
		case pi < len(p) && (p[pi] == '?' || p[pi] == n[ni]):
			pi++
			ni++
		case star >= 0:
			starred++
			ni = starred
			pi = star + 1
		default:
			return false
		}
	}
	for pi < len(p) && p[pi] == '*' {
		pi++
	}
	return pi == len(p)
}
