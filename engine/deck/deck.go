// Package deck builds the canonical Scoundrel deck and shuffles it.
package deck

import "github.com/nathoo/scoundrel/types"

// Size is the number of cards in a full deck.
const Size = 44

// Intner is the randomness a shuffle needs. *engine.RNG and *rand.Rand
// both satisfy it.
type Intner interface {
	Intn(n int) int
}

var (
	faceRanks   = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}
	numberRanks = faceRanks[:9]
)

// Build enumerates the 44 cards in a fixed order: clubs 2..A, spades 2..A,
// diamonds 2..10, hearts 2..10. IDs increase from 0 in that order.
func Build() []types.Card {
	cards := make([]types.Card, 0, Size)
	add := func(suit types.Suit, ranks []string) {
		for _, r := range ranks {
			cards = append(cards, types.Card{
				ID:    len(cards),
				Suit:  suit,
				Rank:  r,
				Value: RankValue(r),
				Kind:  KindOf(suit),
			})
		}
	}
	add(types.SuitClubs, faceRanks)
	add(types.SuitSpades, faceRanks)
	add(types.SuitDiamonds, numberRanks)
	add(types.SuitHearts, numberRanks)
	return cards
}

// RankValue returns the numeric value of a rank: 2–10 literal, J=11, Q=12,
// K=13, A=14. Unknown ranks return 0.
func RankValue(rank string) int {
	switch rank {
	case "J":
		return 11
	case "Q":
		return 12
	case "K":
		return 13
	case "A":
		return 14
	}
	for i, r := range numberRanks {
		if r == rank {
			return i + 2
		}
	}
	return 0
}

// KindOf returns the kind a suit maps to.
func KindOf(suit types.Suit) types.Kind {
	switch suit {
	case types.SuitDiamonds:
		return types.KindWeapon
	case types.SuitHearts:
		return types.KindPotion
	default:
		return types.KindMonster
	}
}

// Shuffle returns a uniformly random permutation of cards (Fisher–Yates).
// The input slice is not modified.
func Shuffle(cards []types.Card, src Intner) []types.Card {
	out := make([]types.Card, len(cards))
	copy(out, cards)
	for i := len(out) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
