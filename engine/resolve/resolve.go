// Package resolve maps card references from parsed intents to room slots.
package resolve

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nathoo/scoundrel/engine/room"
	"github.com/nathoo/scoundrel/engine/state"
	"github.com/nathoo/scoundrel/types"
)

// AmbiguityError indicates several different cards matched a reference.
type AmbiguityError struct {
	Ref        string
	Candidates []string
}

func (e *AmbiguityError) Error() string {
	return fmt.Sprintf("which %s? (%s)", e.Ref, strings.Join(e.Candidates, ", "))
}

// Unwrap lets callers match the error against types.ErrInvalidIndex.
func (e *AmbiguityError) Unwrap() error { return types.ErrInvalidIndex }

// NotFoundError indicates no card of the wanted kind matched a reference.
type NotFoundError struct {
	Ref  string
	Kind types.Kind
}

func (e *NotFoundError) Error() string {
	if e.Ref == "" || e.Ref == string(e.Kind) {
		return fmt.Sprintf("you don't see a %s here", e.Kind)
	}
	return fmt.Sprintf("you don't see a %s matching %q here", e.Kind, e.Ref)
}

// Unwrap lets callers match the error against types.ErrInvalidIndex.
func (e *NotFoundError) Unwrap() error { return types.ErrInvalidIndex }

// Card resolves ref to a 0-based index into cards.
//
// A number from 1 to room.Capacity is a slot number and is returned as is,
// whatever the card there; the engine checks its kind. Any other reference
// is matched against cards of the wanted kind by name, kind, rank or value.
// An empty reference matches every card of that kind. When several cards
// match but are interchangeable (same kind and value), the first is chosen.
func Card(cards []types.Card, kind types.Kind, ref string, names map[string]string) (int, error) {
	ref = strings.ToLower(strings.TrimSpace(ref))

	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= room.Capacity {
		return n - 1, nil
	}

	var matches []int
	for i, c := range cards {
		if c.Kind != kind {
			continue
		}
		if ref == "" || matchesRef(c, ref, names) {
			matches = append(matches, i)
		}
	}

	switch {
	case len(matches) == 0:
		return -1, &NotFoundError{Ref: ref, Kind: kind}
	case interchangeable(cards, matches):
		return matches[0], nil
	default:
		candidates := make([]string, len(matches))
		for j, i := range matches {
			candidates[j] = fmt.Sprintf("%d: %s", i+1, state.Describe(cards[i], names))
		}
		label := ref
		if label == "" {
			label = string(kind)
		}
		return -1, &AmbiguityError{Ref: label, Candidates: candidates}
	}
}

// matchesRef checks a lowercase reference against a card's name, kind,
// rank and value.
func matchesRef(c types.Card, ref string, names map[string]string) bool {
	name := strings.ToLower(state.CardName(c, names))
	switch ref {
	case name, string(c.Kind), string(c.Kind) + "s", strings.ToLower(c.Rank), strconv.Itoa(c.Value):
		return true
	}
	// Word-based partial match: "troll" matches "cave troll".
	for _, word := range strings.Fields(name) {
		if word == ref {
			return true
		}
	}
	return strings.ToLower(state.Describe(c, names)) == ref
}

func interchangeable(cards []types.Card, idx []int) bool {
	first := cards[idx[0]]
	for _, i := range idx[1:] {
		if cards[i].Value != first.Value {
			return false
		}
	}
	return true
}
