package deck

import (
	"math/rand"
	"testing"

	"github.com/nathoo/scoundrel/types"
)

func TestBuild_Composition(t *testing.T) {
	cards := Build()
	if len(cards) != Size {
		t.Fatalf("expected %d cards, got %d", Size, len(cards))
	}

	counts := map[types.Kind]int{}
	for _, c := range cards {
		counts[c.Kind]++
	}
	if counts[types.KindMonster] != 26 {
		t.Errorf("expected 26 monsters, got %d", counts[types.KindMonster])
	}
	if counts[types.KindWeapon] != 9 {
		t.Errorf("expected 9 weapons, got %d", counts[types.KindWeapon])
	}
	if counts[types.KindPotion] != 9 {
		t.Errorf("expected 9 potions, got %d", counts[types.KindPotion])
	}
}

func TestBuild_IDsStrictlyIncreasing(t *testing.T) {
	cards := Build()
	for i, c := range cards {
		if c.ID != i {
			t.Fatalf("card %d: expected id %d, got %d", i, i, c.ID)
		}
	}
}

func TestBuild_EnumerationOrder(t *testing.T) {
	cards := Build()

	first := cards[0]
	if first.Suit != types.SuitClubs || first.Rank != "2" || first.Value != 2 {
		t.Errorf("expected first card 2 of clubs, got %+v", first)
	}
	if c := cards[12]; c.Suit != types.SuitClubs || c.Rank != "A" || c.Value != 14 {
		t.Errorf("expected card 12 to be ace of clubs, got %+v", c)
	}
	if c := cards[13]; c.Suit != types.SuitSpades || c.Rank != "2" {
		t.Errorf("expected card 13 to be 2 of spades, got %+v", c)
	}
	if c := cards[26]; c.Suit != types.SuitDiamonds || c.Rank != "2" || c.Kind != types.KindWeapon {
		t.Errorf("expected card 26 to be 2 of diamonds, got %+v", c)
	}
	if c := cards[34]; c.Suit != types.SuitDiamonds || c.Rank != "10" {
		t.Errorf("expected card 34 to be 10 of diamonds, got %+v", c)
	}
	if c := cards[43]; c.Suit != types.SuitHearts || c.Rank != "10" || c.Kind != types.KindPotion {
		t.Errorf("expected last card 10 of hearts, got %+v", c)
	}
}

func TestBuild_KindFollowsSuit(t *testing.T) {
	for _, c := range Build() {
		if got := KindOf(c.Suit); got != c.Kind {
			t.Errorf("card %d (%s of %s): kind %s, suit maps to %s", c.ID, c.Rank, c.Suit, c.Kind, got)
		}
		if c.Kind != types.KindMonster && c.Value > 10 {
			t.Errorf("non-monster card %d has face value %d", c.ID, c.Value)
		}
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		suit types.Suit
		want types.Kind
	}{
		{types.SuitClubs, types.KindMonster},
		{types.SuitSpades, types.KindMonster},
		{types.SuitDiamonds, types.KindWeapon},
		{types.SuitHearts, types.KindPotion},
	}
	for _, tt := range tests {
		if got := KindOf(tt.suit); got != tt.want {
			t.Errorf("KindOf(%s) = %s, want %s", tt.suit, got, tt.want)
		}
	}
}

func TestRankValue(t *testing.T) {
	tests := []struct {
		rank string
		want int
	}{
		{"2", 2},
		{"9", 9},
		{"10", 10},
		{"J", 11},
		{"Q", 12},
		{"K", 13},
		{"A", 14},
		{"joker", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := RankValue(tt.rank); got != tt.want {
			t.Errorf("RankValue(%q) = %d, want %d", tt.rank, got, tt.want)
		}
	}
}

func TestShuffle_DoesNotMutateInput(t *testing.T) {
	cards := Build()
	before := make([]types.Card, len(cards))
	copy(before, cards)

	_ = Shuffle(cards, rand.New(rand.NewSource(42)))

	for i := range cards {
		if cards[i] != before[i] {
			t.Fatalf("input mutated at %d: %+v != %+v", i, cards[i], before[i])
		}
	}
}

func TestShuffle_IsPermutation(t *testing.T) {
	shuffled := Shuffle(Build(), rand.New(rand.NewSource(7)))
	if len(shuffled) != Size {
		t.Fatalf("expected %d cards, got %d", Size, len(shuffled))
	}
	seen := map[int]bool{}
	for _, c := range shuffled {
		if seen[c.ID] {
			t.Fatalf("duplicate id %d", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestShuffle_Deterministic(t *testing.T) {
	a := Shuffle(Build(), rand.New(rand.NewSource(99)))
	b := Shuffle(Build(), rand.New(rand.NewSource(99)))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("position %d differs with same seed: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestShuffle_Empty(t *testing.T) {
	if got := Shuffle(nil, rand.New(rand.NewSource(1))); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}
