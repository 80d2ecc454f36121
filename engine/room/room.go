// Package room implements the draw pile and active room: dealing, refills,
// fleeing and the low-deck top-up. Functions are pure and never alias
// their inputs.
package room

import (
	"errors"
	"fmt"

	"github.com/nathoo/scoundrel/types"
)

const (
	// Capacity is the number of cards in a full room.
	Capacity = 4
	// LowDeckThreshold is the deck size below which the room is topped up
	// outside of the normal refill.
	LowDeckThreshold = 3
)

var (
	// ErrShortDeck is returned by Deal when there aren't enough cards.
	ErrShortDeck = errors.New("deck too short to deal a room")
	// ErrRoomNotFull rejects a flee from a partially resolved room.
	ErrRoomNotFull = fmt.Errorf("%w: the room is not full", types.ErrIllegalFlee)
	// ErrFledLastRoom rejects fleeing twice in a row.
	ErrFledLastRoom = fmt.Errorf("%w: you fled the previous room", types.ErrIllegalFlee)
)

// Deal splits a shuffled deck into the first room and the draw pile.
func Deal(shuffled []types.Card) (room, deck []types.Card, err error) {
	if len(shuffled) < Capacity {
		return nil, nil, fmt.Errorf("%w: %d cards", ErrShortDeck, len(shuffled))
	}
	room, deck = Refill(nil, shuffled)
	return room, deck, nil
}

// Refill appends cards from the front of deck to leftover until the room is
// full or the deck runs out.
func Refill(leftover, deck []types.Card) (room, rest []types.Card) {
	needed := Capacity - len(leftover)
	if needed < 0 {
		needed = 0
	}
	if needed > len(deck) {
		needed = len(deck)
	}
	room = make([]types.Card, 0, len(leftover)+needed)
	room = append(room, leftover...)
	room = append(room, deck[:needed]...)
	rest = make([]types.Card, len(deck)-needed)
	copy(rest, deck[needed:])
	return room, rest
}

// Flee sends the whole room to the back of the deck and draws a fresh room
// from the front.
func Flee(room, deck []types.Card) (newRoom, newDeck []types.Card) {
	pile := make([]types.Card, 0, len(deck)+len(room))
	pile = append(pile, deck...)
	pile = append(pile, room...)
	return Refill(nil, pile)
}

// CanFlee reports whether the room may be fled.
func CanFlee(room []types.Card, fledLastRoom bool) error {
	if len(room) < Capacity {
		return ErrRoomNotFull
	}
	if fledLastRoom {
		return ErrFledLastRoom
	}
	return nil
}

// NeedsTopUp reports whether the low-deck safeguard should refill the room.
// It never fires on an empty deck.
func NeedsTopUp(room, deck []types.Card) bool {
	return len(deck) > 0 && len(deck) < LowDeckThreshold && len(room) < Capacity
}

// RemoveAt takes the card at index i out of the room.
func RemoveAt(room []types.Card, i int) (types.Card, []types.Card, error) {
	if i < 0 || i >= len(room) {
		return types.Card{}, room, fmt.Errorf("%w: no card in slot %d", types.ErrInvalidIndex, i+1)
	}
	card := room[i]
	rest := make([]types.Card, 0, len(room)-1)
	rest = append(rest, room[:i]...)
	rest = append(rest, room[i+1:]...)
	return card, rest, nil
}
