package room

import (
	"errors"
	"testing"

	"github.com/nathoo/scoundrel/types"
)

// cards builds a pile whose ids are the given numbers.
func cards(ids ...int) []types.Card {
	out := make([]types.Card, len(ids))
	for i, id := range ids {
		out[i] = types.Card{ID: id, Value: id, Kind: types.KindMonster}
	}
	return out
}

func ids(cs []types.Card) []int {
	out := make([]int, len(cs))
	for i, c := range cs {
		out[i] = c.ID
	}
	return out
}

func equalIDs(t *testing.T, label string, got []types.Card, want ...int) {
	t.Helper()
	g := ids(got)
	if len(g) != len(want) {
		t.Fatalf("%s: expected %v, got %v", label, want, g)
	}
	for i := range g {
		if g[i] != want[i] {
			t.Fatalf("%s: expected %v, got %v", label, want, g)
		}
	}
}

func TestDeal(t *testing.T) {
	room, deck, err := Deal(cards(1, 2, 3, 4, 5, 6))
	if err != nil {
		t.Fatalf("Deal failed: %v", err)
	}
	equalIDs(t, "room", room, 1, 2, 3, 4)
	equalIDs(t, "deck", deck, 5, 6)
}

func TestDeal_ShortDeck(t *testing.T) {
	_, _, err := Deal(cards(1, 2, 3))
	if !errors.Is(err, ErrShortDeck) {
		t.Fatalf("expected ErrShortDeck, got %v", err)
	}
}

func TestRefill_LeftoverFirst(t *testing.T) {
	room, deck := Refill(cards(9), cards(1, 2, 3, 4, 5))
	equalIDs(t, "room", room, 9, 1, 2, 3)
	equalIDs(t, "deck", deck, 4, 5)
}

func TestRefill_ShortDeck(t *testing.T) {
	room, deck := Refill(cards(9), cards(1))
	equalIDs(t, "room", room, 9, 1)
	if len(deck) != 0 {
		t.Errorf("expected empty deck, got %v", ids(deck))
	}
}

func TestRefill_EmptyDeck(t *testing.T) {
	room, deck := Refill(cards(9), nil)
	equalIDs(t, "room", room, 9)
	if len(deck) != 0 {
		t.Errorf("expected empty deck, got %v", ids(deck))
	}
}

func TestRefill_DoesNotAliasInput(t *testing.T) {
	leftover := cards(9)
	pile := cards(1, 2, 3, 4, 5)
	room, deck := Refill(leftover, pile)

	room[0].ID = 100
	deck[0].ID = 200
	if leftover[0].ID != 9 {
		t.Error("room aliases leftover")
	}
	if pile[3].ID != 4 {
		t.Error("deck aliases input pile")
	}
}

func TestFlee_RoomGoesToBack(t *testing.T) {
	room, deck := Flee(cards(1, 2, 3, 4), cards(5, 6, 7, 8, 9))
	equalIDs(t, "room", room, 5, 6, 7, 8)
	equalIDs(t, "deck", deck, 9, 1, 2, 3, 4)
}

func TestFlee_EmptyDeckRedrawsSameRoom(t *testing.T) {
	room, deck := Flee(cards(1, 2, 3, 4), nil)
	equalIDs(t, "room", room, 1, 2, 3, 4)
	if len(deck) != 0 {
		t.Errorf("expected empty deck, got %v", ids(deck))
	}
}

func TestCanFlee(t *testing.T) {
	tests := []struct {
		name    string
		room    []types.Card
		fled    bool
		wantErr error
	}{
		{"full room", cards(1, 2, 3, 4), false, nil},
		{"partial room", cards(1, 2, 3), false, ErrRoomNotFull},
		{"fled last room", cards(1, 2, 3, 4), true, ErrFledLastRoom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanFlee(tt.room, tt.fled)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if !errors.Is(err, types.ErrIllegalFlee) {
				t.Fatalf("expected error to wrap ErrIllegalFlee, got %v", err)
			}
		})
	}
}

func TestNeedsTopUp(t *testing.T) {
	tests := []struct {
		name string
		room []types.Card
		deck []types.Card
		want bool
	}{
		{"empty deck never tops up", cards(1), nil, false},
		{"deck of one", cards(1, 2), cards(3), true},
		{"deck of two", cards(1), cards(3, 4), true},
		{"deck of three", cards(1), cards(3, 4, 5), false},
		{"room already full", cards(1, 2, 3, 4), cards(5), false},
	}
	for _, tt := range tests {
		if got := NeedsTopUp(tt.room, tt.deck); got != tt.want {
			t.Errorf("%s: NeedsTopUp = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRemoveAt(t *testing.T) {
	room := cards(1, 2, 3, 4)
	card, rest, err := RemoveAt(room, 1)
	if err != nil {
		t.Fatalf("RemoveAt failed: %v", err)
	}
	if card.ID != 2 {
		t.Errorf("expected card 2, got %d", card.ID)
	}
	equalIDs(t, "rest", rest, 1, 3, 4)
	equalIDs(t, "original", room, 1, 2, 3, 4)
}

func TestRemoveAt_OutOfRange(t *testing.T) {
	for _, i := range []int{-1, 4, 10} {
		_, rest, err := RemoveAt(cards(1, 2, 3, 4), i)
		if !errors.Is(err, types.ErrInvalidIndex) {
			t.Errorf("index %d: expected ErrInvalidIndex, got %v", i, err)
		}
		if len(rest) != 4 {
			t.Errorf("index %d: room should be unchanged, got %v", i, ids(rest))
		}
	}
}
