// Package types defines the shared data structures for the Scoundrel engine.
// This package contains only type definitions and sentinel errors, no logic.
package types

import "errors"

// Sentinel errors for rejected intents. Callers match them with errors.Is;
// the engine wraps them with details about the offending slot or room.
var (
	// ErrInvalidIndex means the intent referenced a room slot that doesn't
	// exist or doesn't hold the required kind of card.
	ErrInvalidIndex = errors.New("invalid card")
	// ErrIllegalFlee means the room is not full or the previous room was fled.
	ErrIllegalFlee = errors.New("cannot flee")
	// ErrGameOver means the game has already been won or lost.
	ErrGameOver = errors.New("game is over")
)

// Suit of a playing card.
type Suit string

const (
	SuitClubs    Suit = "clubs"
	SuitSpades   Suit = "spades"
	SuitDiamonds Suit = "diamonds"
	SuitHearts   Suit = "hearts"
)

// Kind is the role a card plays in the dungeon, derived from its suit.
type Kind string

const (
	KindMonster Kind = "monster"
	KindWeapon  Kind = "weapon"
	KindPotion  Kind = "potion"
)

// Card is an immutable playing card.
type Card struct {
	ID    int // unique for the lifetime of a deck
	Suit  Suit
	Rank  string // "2".."10", "J", "Q", "K", "A"
	Value int    // 2..14
	Kind  Kind
}

// Weapon is the equipped weapon and its combat history.
// The game holds a *Weapon; nil means bare hands.
type Weapon struct {
	Card      Card
	Strength  int
	LastSlain int    // value of the last monster killed, 0 when unused
	Slain     []Card // trophies in kill order
}

// Status of a game.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Action records the kind of the last resolved intent.
type Action string

const (
	ActionNone   Action = "none"
	ActionFight  Action = "fight"
	ActionPotion Action = "potion"
	ActionFlee   Action = "flee"
)

// FightMode selects how a monster is fought.
type FightMode string

const (
	FightBareHanded FightMode = "bare"
	FightWeapon     FightMode = "weapon"
)

// TurnState holds the per-room bookkeeping counters.
type TurnState struct {
	Actions      int  // resolved intents against the current room
	PotionUsed   bool // a potion already healed in this room
	FledLastRoom bool // the current room was entered by fleeing
}

// Settings holds the player-configurable game options.
type Settings struct {
	Title        string            `yaml:"title"`
	MaxHP        int               `yaml:"max_hp"`
	Seed         int64             `yaml:"seed"`
	MonsterNames map[string]string `yaml:"monsters"` // rank → display name
}

// State is the complete mutable game state.
type State struct {
	GameID     string
	Seed       int64
	HP         int
	MaxHP      int
	Deck       []Card // front is drawn next
	Room       []Card
	Resolved   []Card // every card that has left play
	Weapon     *Weapon
	Turn       TurnState
	LastAction Action
	LastPotion int // value of the last potion that healed, 0 when none
	Status     Status
	Score      int
	Message    string
	Intents    int // resolved intents since the game began
}

// Snapshot is an immutable copy of the state for presentation.
type Snapshot struct {
	GameID          string
	HP              int
	MaxHP           int
	Room            []Card
	DeckSize        int
	Resolved        int
	Weapon          *Weapon
	Actions         int
	FleeAvailable   bool
	PotionAvailable bool
	Status          Status
	Score           int
	LastAction      Action
	LastPotion      int
	Message         string
}

// Intent is the parsed representation of a player command.
type Intent struct {
	Verb   string
	Object string // optional card reference
	Target string // optional fight mode or argument
}

// Event is emitted while an intent is resolved.
type Event struct {
	Type string
	Data map[string]any
}

// Result is the output of a single intent.
type Result struct {
	Snapshot Snapshot
	Events   []Event
	Output   []string
}
