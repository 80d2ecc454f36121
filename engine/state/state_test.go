package state

import (
	"testing"

	"github.com/nathoo/scoundrel/types"
)

func testSettings() types.Settings {
	return types.Settings{Title: "Test", MaxHP: 20, Seed: 42}
}

func monster(id, value int) types.Card {
	return types.Card{ID: id, Suit: types.SuitClubs, Value: value, Kind: types.KindMonster}
}

func TestNewState_Defaults(t *testing.T) {
	s := NewState(testSettings())

	if s.HP != 20 || s.MaxHP != 20 {
		t.Errorf("expected hp 20/20, got %d/%d", s.HP, s.MaxHP)
	}
	if s.Status != types.StatusPlaying {
		t.Errorf("expected playing, got %s", s.Status)
	}
	if s.LastAction != types.ActionNone {
		t.Errorf("expected no last action, got %s", s.LastAction)
	}
	if s.Weapon != nil {
		t.Error("expected no weapon")
	}
	if s.GameID == "" {
		t.Error("expected a game id")
	}
	if s.Seed != 42 {
		t.Errorf("expected seed 42, got %d", s.Seed)
	}
}

func TestNewState_UniqueGameIDs(t *testing.T) {
	a := NewState(testSettings())
	b := NewState(testSettings())
	if a.GameID == b.GameID {
		t.Errorf("expected distinct game ids, both %q", a.GameID)
	}
}

func TestClone_IsDeep(t *testing.T) {
	s := NewState(testSettings())
	s.Room = []types.Card{monster(1, 5)}
	s.Deck = []types.Card{monster(2, 6)}
	s.Weapon = &types.Weapon{Strength: 5, LastSlain: 8, Slain: []types.Card{monster(3, 8)}}

	c := Clone(s)
	c.Room[0].Value = 99
	c.Deck[0].Value = 99
	c.Weapon.LastSlain = 99
	c.Weapon.Slain[0].Value = 99
	c.HP = 1

	if s.Room[0].Value != 5 || s.Deck[0].Value != 6 {
		t.Error("clone shares card slices with original")
	}
	if s.Weapon.LastSlain != 8 || s.Weapon.Slain[0].Value != 8 {
		t.Error("clone shares weapon with original")
	}
	if s.HP != 20 {
		t.Error("clone shares hp with original")
	}
}

func TestSnapshot_Fields(t *testing.T) {
	s := NewState(testSettings())
	s.Room = []types.Card{monster(1, 2), monster(2, 3), monster(3, 4), monster(4, 5)}
	s.Deck = []types.Card{monster(5, 6)}
	s.Turn.PotionUsed = true

	snap := Snapshot(s)
	if snap.DeckSize != 1 {
		t.Errorf("expected deck size 1, got %d", snap.DeckSize)
	}
	if len(snap.Room) != 4 {
		t.Errorf("expected 4 room cards, got %d", len(snap.Room))
	}
	if !snap.FleeAvailable {
		t.Error("expected flee available from a full room")
	}
	if snap.PotionAvailable {
		t.Error("expected potion unavailable after one was used")
	}

	snap.Room[0].Value = 99
	if s.Room[0].Value != 2 {
		t.Error("snapshot shares room with state")
	}
}

func TestFleeAvailable(t *testing.T) {
	s := NewState(testSettings())
	s.Room = []types.Card{monster(1, 2), monster(2, 3), monster(3, 4)}
	if FleeAvailable(s) {
		t.Error("flee should be unavailable from a partial room")
	}

	s.Room = append(s.Room, monster(4, 5))
	s.Turn.FledLastRoom = true
	if FleeAvailable(s) {
		t.Error("flee should be unavailable right after fleeing")
	}

	s.Turn.FledLastRoom = false
	s.Status = types.StatusLost
	if FleeAvailable(s) {
		t.Error("flee should be unavailable once the game is over")
	}
}

func TestMonsterTotal_IgnoresOtherKinds(t *testing.T) {
	s := NewState(testSettings())
	s.Room = []types.Card{monster(1, 4), {ID: 2, Value: 9, Kind: types.KindPotion}}
	s.Deck = []types.Card{monster(3, 13), {ID: 4, Value: 7, Kind: types.KindWeapon}}
	s.Resolved = []types.Card{monster(5, 14)}

	if got := MonsterTotal(s); got != 17 {
		t.Errorf("expected 17, got %d", got)
	}
}

func TestMonsterName(t *testing.T) {
	tests := []struct {
		rank  string
		value int
		want  string
	}{
		{"2", 2, "Goblin"},
		{"3", 3, "Wolf"},
		{"4", 4, "Wolf"},
		{"5", 5, "Skeleton"},
		{"6", 6, "Skeleton"},
		{"7", 7, "Orc"},
		{"8", 8, "Orc"},
		{"9", 9, "Beast"},
		{"10", 10, "Beast"},
		{"J", 11, "Jack"},
		{"Q", 12, "Queen"},
		{"K", 13, "King"},
		{"A", 14, "Ace"},
	}
	for _, tt := range tests {
		c := types.Card{Rank: tt.rank, Value: tt.value, Kind: types.KindMonster}
		if got := MonsterName(c, nil); got != tt.want {
			t.Errorf("MonsterName(%s) = %q, want %q", tt.rank, got, tt.want)
		}
	}
}

func TestMonsterName_Override(t *testing.T) {
	c := types.Card{Rank: "7", Value: 7, Kind: types.KindMonster}
	got := MonsterName(c, map[string]string{"7": "Troll"})
	if got != "Troll" {
		t.Errorf("expected override Troll, got %q", got)
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		card types.Card
		want string
	}{
		{types.Card{Rank: "7", Value: 7, Kind: types.KindMonster}, "Orc (Power: 7)"},
		{types.Card{Rank: "5", Value: 5, Kind: types.KindWeapon}, "Weapon (Strength: 5)"},
		{types.Card{Rank: "4", Value: 4, Kind: types.KindPotion}, "Potion (Heal: 4)"},
	}
	for _, tt := range tests {
		if got := Describe(tt.card, nil); got != tt.want {
			t.Errorf("Describe = %q, want %q", got, tt.want)
		}
	}
}

func TestDescribeWeapon(t *testing.T) {
	if got := DescribeWeapon(nil, nil); got != "You are fighting bare-handed." {
		t.Errorf("unexpected bare-handed text %q", got)
	}
	w := &types.Weapon{Strength: 5, LastSlain: 8, Slain: []types.Card{{Rank: "8", Value: 8, Kind: types.KindMonster}}}
	want := "Weapon (Strength: 5), last slew a 8. Trophies: Orc (Power: 8)."
	if got := DescribeWeapon(w, nil); got != want {
		t.Errorf("DescribeWeapon = %q, want %q", got, want)
	}
}
