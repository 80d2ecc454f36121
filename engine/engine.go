// Package engine provides the game session: it owns the state and applies
// one player intent at a time as a single atomic transition, including any
// refill it triggers and the terminal win/loss evaluation.
package engine

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/nathoo/scoundrel/engine/deck"
	"github.com/nathoo/scoundrel/engine/room"
	"github.com/nathoo/scoundrel/engine/state"
	"github.com/nathoo/scoundrel/engine/turn"
	"github.com/nathoo/scoundrel/types"
)

// DefaultMaxHP is used when settings carry no positive max HP.
const DefaultMaxHP = 20

// Engine holds the settings and mutable state of one game session.
// It is not safe for concurrent use.
type Engine struct {
	Settings types.Settings
	State    *types.State
	RNG      *RNG

	log     logrus.FieldLogger
	shuffle func([]types.Card) []types.Card
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for intent tracing.
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Engine) { e.log = l }
}

// WithShuffle replaces the seeded shuffle with fn, which receives the
// canonical deck and returns the draw order.
func WithShuffle(fn func(cards []types.Card) []types.Card) Option {
	return func(e *Engine) { e.shuffle = fn }
}

// New creates an engine and deals the first game.
func New(settings types.Settings, opts ...Option) *Engine {
	if settings.MaxHP <= 0 {
		settings.MaxHP = DefaultMaxHP
	}
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	e := &Engine{Settings: settings, log: discard}
	for _, opt := range opts {
		opt(e)
	}
	e.start(settings.Seed)
	return e
}

// start shuffles a fresh deck from seed and deals the first room.
func (e *Engine) start(seed int64) {
	e.RNG = NewRNG(seed)
	s := state.NewState(e.Settings)
	s.Seed = seed

	cards := deck.Build()
	if e.shuffle != nil {
		cards = e.shuffle(cards)
	} else {
		cards = deck.Shuffle(cards, e.RNG)
	}

	r, d, err := room.Deal(cards)
	if err != nil {
		e.log.WithError(err).Warn("dealing a short deck")
		r, d = room.Refill(nil, cards)
	}
	s.Room, s.Deck = r, d
	s.Message = "You descend into the dungeon."
	e.State = s

	e.log.WithFields(logrus.Fields{
		"game_id": s.GameID,
		"seed":    seed,
		"max_hp":  s.MaxHP,
	}).Info("game started")
}

// Snapshot returns an immutable copy of the current state.
func (e *Engine) Snapshot() types.Snapshot {
	return state.Snapshot(e.State)
}

// NewGame abandons the current game and deals a new one. A positive maxHP
// replaces the configured max HP; otherwise the current setting is kept.
// The new seed is drawn from the current RNG, so a seeded session replays
// identically game after game.
func (e *Engine) NewGame(maxHP int) types.Result {
	if maxHP > 0 {
		e.Settings.MaxHP = maxHP
	}
	e.start(e.RNG.Int63())
	return types.Result{
		Snapshot: e.Snapshot(),
		Events: []types.Event{
			{Type: "game_started", Data: map[string]any{"game_id": e.State.GameID, "max_hp": e.State.MaxHP}},
		},
		Output: []string{e.State.Message},
	}
}

// Fight resolves the monster in room slot index (0-based). With
// FightWeapon the equipped weapon is used if it can take the monster;
// otherwise, or with FightBareHanded, the monster's full value is taken
// as damage. Any other mode is rejected.
func (e *Engine) Fight(index int, mode types.FightMode) (types.Result, error) {
	return e.apply("fight", index, func(t *transition) error {
		if mode != types.FightBareHanded && mode != types.FightWeapon {
			return fmt.Errorf("%w: unknown fight mode %q", types.ErrInvalidIndex, mode)
		}
		monster, err := t.take(index, types.KindMonster)
		if err != nil {
			return err
		}

		o := FightBareHanded(monster)
		if mode == types.FightWeapon {
			o = FightWithWeapon(monster, t.s.Weapon)
		}
		t.s.HP -= o.Damage
		t.s.LastAction = types.ActionFight

		t.message(e.fightMessage(o))
		t.emit("monster_fought", map[string]any{
			"card": monster.ID, "outcome": string(o.Kind), "damage": o.Damage,
		})
		e.endAction(t)
		return nil
	})
}

// Equip wields the weapon in room slot index, discarding any weapon
// already equipped along with its trophies.
func (e *Engine) Equip(index int) (types.Result, error) {
	return e.apply("equip", index, func(t *transition) error {
		card, err := t.take(index, types.KindWeapon)
		if err != nil {
			return err
		}

		name := state.Describe(card, nil)
		if t.s.Weapon != nil {
			t.message(fmt.Sprintf("Equipped %s, discarding your old weapon.", name))
		} else {
			t.message(fmt.Sprintf("Equipped %s.", name))
		}
		t.s.Weapon = Equip(card)
		t.s.LastAction = types.ActionFight

		t.emit("weapon_equipped", map[string]any{"card": card.ID, "strength": card.Value})
		e.endAction(t)
		return nil
	})
}

// DrinkPotion drinks the potion in room slot index. Only the first potion
// in a room heals; later ones are discarded without effect but still count
// as an action.
func (e *Engine) DrinkPotion(index int) (types.Result, error) {
	return e.apply("drink", index, func(t *transition) error {
		potion, err := t.take(index, types.KindPotion)
		if err != nil {
			return err
		}

		name := state.Describe(potion, nil)
		if turn.CanHeal(t.s.Turn) {
			before := t.s.HP
			t.s.HP = min(t.s.MaxHP, t.s.HP+potion.Value)
			t.s.LastPotion = potion.Value
			t.s.LastAction = types.ActionPotion
			turn.MarkPotion(&t.s.Turn)

			t.message(fmt.Sprintf("Drank %s. Healed %d HP.", name, t.s.HP-before))
			t.emit("potion_drunk", map[string]any{"card": potion.ID, "healed": t.s.HP - before})
		} else {
			t.message(fmt.Sprintf("You already drank a potion in this room. %s discarded.", name))
			t.emit("potion_discarded", map[string]any{"card": potion.ID})
		}
		e.endAction(t)
		return nil
	})
}

// Flee buries the whole room at the bottom of the deck and draws a new one.
// The room must be full and the previous room must not have been fled.
func (e *Engine) Flee() (types.Result, error) {
	return e.apply("flee", -1, func(t *transition) error {
		if err := room.CanFlee(t.s.Room, t.s.Turn.FledLastRoom); err != nil {
			return err
		}
		t.s.Room, t.s.Deck = room.Flee(t.s.Room, t.s.Deck)
		turn.OnFlee(&t.s.Turn)
		t.s.LastAction = types.ActionFlee
		t.refilled = true

		t.message("You fled the room. Its cards sink to the bottom of the deck.")
		t.emit("room_fled", map[string]any{"deck": len(t.s.Deck)})
		return nil
	})
}

// transition is one intent being applied to a working copy of the state.
type transition struct {
	s        *types.State
	events   []types.Event
	output   []string
	refilled bool
}

func (t *transition) emit(typ string, data map[string]any) {
	t.events = append(t.events, types.Event{Type: typ, Data: data})
}

func (t *transition) say(line string) {
	t.output = append(t.output, line)
}

// message records line as the description of the intent.
func (t *transition) message(line string) {
	t.s.Message = line
	t.say(line)
}

// take removes the card of the given kind at index from the room and moves
// it to the resolved pile.
func (t *transition) take(index int, kind types.Kind) (types.Card, error) {
	if index >= 0 && index < len(t.s.Room) && t.s.Room[index].Kind != kind {
		return types.Card{}, fmt.Errorf("%w: slot %d holds a %s, not a %s",
			types.ErrInvalidIndex, index+1, t.s.Room[index].Kind, kind)
	}
	card, rest, err := room.RemoveAt(t.s.Room, index)
	if err != nil {
		return types.Card{}, err
	}
	t.s.Room = rest
	t.s.Resolved = append(t.s.Resolved, card)
	return card, nil
}

// apply runs fn against a clone of the state and commits the clone only if
// fn succeeds. Housekeeping and terminal evaluation run before the commit,
// so callers never observe an intermediate state.
func (e *Engine) apply(intent string, index int, fn func(*transition) error) (types.Result, error) {
	fields := logrus.Fields{"game_id": e.State.GameID, "intent": intent, "index": index}

	if !state.InPlay(e.State) {
		return e.reject(fields, types.ErrGameOver)
	}

	t := &transition{s: state.Clone(e.State)}
	if err := fn(t); err != nil {
		return e.reject(fields, err)
	}

	if !t.refilled {
		topUp(t)
	}
	if evaluate(t.s) {
		t.emit("game_"+string(t.s.Status), map[string]any{"score": t.s.Score})
		t.say(terminalMessage(t.s))
	}
	t.s.Intents++
	e.State = t.s

	e.log.WithFields(fields).WithFields(logrus.Fields{
		"hp":     e.State.HP,
		"deck":   len(e.State.Deck),
		"room":   len(e.State.Room),
		"status": e.State.Status,
	}).Debug("intent resolved")

	return types.Result{Snapshot: e.Snapshot(), Events: t.events, Output: t.output}, nil
}

func (e *Engine) reject(fields logrus.Fields, err error) (types.Result, error) {
	e.log.WithFields(fields).WithError(err).Debug("intent rejected")
	return types.Result{Snapshot: e.Snapshot(), Output: []string{sentence(err.Error())}}, err
}

// endAction counts a resolved card and refills the room on the third.
func (e *Engine) endAction(t *transition) {
	if !turn.RecordAction(&t.s.Turn) {
		return
	}
	t.s.Room, t.s.Deck = room.Refill(t.s.Room, t.s.Deck)
	turn.OnRefill(&t.s.Turn)
	t.refilled = true
	if len(t.s.Room) > 0 {
		t.say("You press on into the next room.")
	}
	t.emit("room_refilled", map[string]any{"room": len(t.s.Room), "deck": len(t.s.Deck)})
}

// topUp keeps the room filled once the deck is nearly exhausted. It leaves
// the turn counters alone.
func topUp(t *transition) {
	if !room.NeedsTopUp(t.s.Room, t.s.Deck) {
		return
	}
	t.s.Room, t.s.Deck = room.Refill(t.s.Room, t.s.Deck)
	t.emit("room_topped_up", map[string]any{"room": len(t.s.Room), "deck": len(t.s.Deck)})
}

// evaluate applies the terminal transitions. Loss is checked before win.
// It reports whether the status changed.
func evaluate(s *types.State) bool {
	if s.Status != types.StatusPlaying {
		return false
	}
	if s.HP <= 0 {
		s.Status = types.StatusLost
		s.Score = s.HP - state.MonsterTotal(s)
		return true
	}
	if len(s.Deck) == 0 && len(s.Room) == 0 {
		s.Status = types.StatusWon
		s.Score = winScore(s)
		return true
	}
	return false
}

// winScore is the remaining HP, plus the last potion's value when the game
// ended on a potion drunk at full health.
func winScore(s *types.State) int {
	if s.HP == s.MaxHP && s.LastAction == types.ActionPotion && s.LastPotion > 0 {
		return s.HP + s.LastPotion
	}
	return s.HP
}

func terminalMessage(s *types.State) string {
	if s.Status == types.StatusWon {
		return fmt.Sprintf("You cleared the dungeon! Final score: %d.", s.Score)
	}
	return fmt.Sprintf("You have been slain. Final score: %d.", s.Score)
}

// sentence capitalizes an error message for display.
func sentence(msg string) string {
	if msg == "" {
		return msg
	}
	msg = strings.ToUpper(msg[:1]) + msg[1:]
	if !strings.HasSuffix(msg, ".") {
		msg += "."
	}
	return msg
}
