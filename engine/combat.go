package engine

import (
	"fmt"

	"github.com/nathoo/scoundrel/engine/state"
	"github.com/nathoo/scoundrel/types"
)

// OutcomeKind distinguishes how a fight was actually resolved.
type OutcomeKind string

const (
	OutcomeBareHanded OutcomeKind = "bare"
	OutcomeWeapon     OutcomeKind = "weapon"
	// OutcomeFallback is a weapon fight the weapon could not take, resolved
	// bare-handed instead.
	OutcomeFallback OutcomeKind = "fallback"
)

// Outcome is the result of a single fight.
type Outcome struct {
	Kind    OutcomeKind
	Monster types.Card
	Damage  int
}

// FightBareHanded takes the monster's full value as damage.
func FightBareHanded(monster types.Card) Outcome {
	return Outcome{Kind: OutcomeBareHanded, Monster: monster, Damage: monster.Value}
}

// CanUseWeapon reports whether w may be used against monster: a weapon
// only kills monsters no stronger than the last one it slew.
func CanUseWeapon(monster types.Card, w *types.Weapon) bool {
	if w == nil {
		return false
	}
	return w.LastSlain == 0 || monster.Value <= w.LastSlain
}

// FightWithWeapon fights monster with w. Damage is max(0, value-strength)
// and the weapon records the kill. If the weapon can't be used the fight
// falls back to bare hands and w is left untouched. A nil weapon fights
// bare-handed.
func FightWithWeapon(monster types.Card, w *types.Weapon) Outcome {
	if w == nil {
		return FightBareHanded(monster)
	}
	if !CanUseWeapon(monster, w) {
		return Outcome{Kind: OutcomeFallback, Monster: monster, Damage: monster.Value}
	}
	damage := monster.Value - w.Strength
	if damage < 0 {
		damage = 0
	}
	w.LastSlain = monster.Value
	w.Slain = append(w.Slain, monster)
	return Outcome{Kind: OutcomeWeapon, Monster: monster, Damage: damage}
}

// Equip returns a fresh weapon for card with no kills.
func Equip(card types.Card) *types.Weapon {
	return &types.Weapon{Card: card, Strength: card.Value}
}

// fightMessage renders an outcome for the player.
func (e *Engine) fightMessage(o Outcome) string {
	name := state.Describe(o.Monster, e.Settings.MonsterNames)
	switch o.Kind {
	case OutcomeWeapon:
		return fmt.Sprintf("Fought %s with weapon. Took %d damage.", name, o.Damage)
	case OutcomeFallback:
		return fmt.Sprintf("Your weapon is too dull for %s. Fought bare-handed. Took %d damage.", name, o.Damage)
	default:
		return fmt.Sprintf("Fought %s bare-handed. Took %d damage.", name, o.Damage)
	}
}
