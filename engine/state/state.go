// Package state constructs game state and answers queries about it.
// Mutation happens in the engine; everything here is read-only or copies.
package state

import (
	"github.com/google/uuid"

	"github.com/nathoo/scoundrel/engine/room"
	"github.com/nathoo/scoundrel/types"
)

// NewState creates a fresh, undealt game state from settings.
func NewState(settings types.Settings) *types.State {
	return &types.State{
		GameID:     uuid.NewString(),
		Seed:       settings.Seed,
		HP:         settings.MaxHP,
		MaxHP:      settings.MaxHP,
		Deck:       []types.Card{},
		Room:       []types.Card{},
		Resolved:   []types.Card{},
		LastAction: types.ActionNone,
		Status:     types.StatusPlaying,
	}
}

// Clone returns a deep copy of s. The engine works on a clone and commits
// it only when an intent succeeds.
func Clone(s *types.State) *types.State {
	c := *s
	c.Deck = cloneCards(s.Deck)
	c.Room = cloneCards(s.Room)
	c.Resolved = cloneCards(s.Resolved)
	c.Weapon = cloneWeapon(s.Weapon)
	return &c
}

// Snapshot returns an immutable view of s.
func Snapshot(s *types.State) types.Snapshot {
	return types.Snapshot{
		GameID:          s.GameID,
		HP:              s.HP,
		MaxHP:           s.MaxHP,
		Room:            cloneCards(s.Room),
		DeckSize:        len(s.Deck),
		Resolved:        len(s.Resolved),
		Weapon:          cloneWeapon(s.Weapon),
		Actions:         s.Turn.Actions,
		FleeAvailable:   FleeAvailable(s),
		PotionAvailable: PotionAvailable(s),
		Status:          s.Status,
		Score:           s.Score,
		LastAction:      s.LastAction,
		LastPotion:      s.LastPotion,
		Message:         s.Message,
	}
}

// InPlay reports whether the game still accepts intents.
func InPlay(s *types.State) bool {
	return s.Status == types.StatusPlaying
}

// FleeAvailable reports whether a flee would currently be accepted.
func FleeAvailable(s *types.State) bool {
	return InPlay(s) && room.CanFlee(s.Room, s.Turn.FledLastRoom) == nil
}

// PotionAvailable reports whether a potion drunk now would heal.
func PotionAvailable(s *types.State) bool {
	return InPlay(s) && !s.Turn.PotionUsed
}

// MonsterTotal sums the values of monsters still in the deck or room.
func MonsterTotal(s *types.State) int {
	total := 0
	for _, pile := range [][]types.Card{s.Deck, s.Room} {
		for _, c := range pile {
			if c.Kind == types.KindMonster {
				total += c.Value
			}
		}
	}
	return total
}

// CardCount returns the number of cards across deck, room and resolved.
func CardCount(s *types.State) int {
	return len(s.Deck) + len(s.Room) + len(s.Resolved)
}

func cloneCards(cards []types.Card) []types.Card {
	if cards == nil {
		return nil
	}
	out := make([]types.Card, len(cards))
	copy(out, cards)
	return out
}

func cloneWeapon(w *types.Weapon) *types.Weapon {
	if w == nil {
		return nil
	}
	c := *w
	c.Slain = cloneCards(w.Slain)
	return &c
}
