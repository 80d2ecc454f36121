package state

import (
	"fmt"
	"strings"

	"github.com/nathoo/scoundrel/types"
)

// MonsterName returns the display name for a monster. overrides maps a rank
// ("2".."10", "J", "Q", "K", "A") to a custom name and may be nil.
func MonsterName(c types.Card, overrides map[string]string) string {
	if name, ok := overrides[c.Rank]; ok && name != "" {
		return name
	}
	switch c.Rank {
	case "J":
		return "Jack"
	case "Q":
		return "Queen"
	case "K":
		return "King"
	case "A":
		return "Ace"
	}
	switch {
	case c.Value == 2:
		return "Goblin"
	case c.Value <= 4:
		return "Wolf"
	case c.Value <= 6:
		return "Skeleton"
	case c.Value <= 8:
		return "Orc"
	default:
		return "Beast"
	}
}

// CardName returns the short name of a card.
func CardName(c types.Card, overrides map[string]string) string {
	switch c.Kind {
	case types.KindMonster:
		return MonsterName(c, overrides)
	case types.KindWeapon:
		return "Weapon"
	default:
		return "Potion"
	}
}

// Describe returns a card's name with its relevant statistic,
// e.g. "Orc (Power: 7)".
func Describe(c types.Card, overrides map[string]string) string {
	switch c.Kind {
	case types.KindMonster:
		return fmt.Sprintf("%s (Power: %d)", MonsterName(c, overrides), c.Value)
	case types.KindWeapon:
		return fmt.Sprintf("Weapon (Strength: %d)", c.Value)
	default:
		return fmt.Sprintf("Potion (Heal: %d)", c.Value)
	}
}

// DescribeWeapon summarizes the equipped weapon.
func DescribeWeapon(w *types.Weapon, overrides map[string]string) string {
	if w == nil {
		return "You are fighting bare-handed."
	}
	if w.LastSlain == 0 {
		return fmt.Sprintf("Weapon (Strength: %d), unused.", w.Strength)
	}
	trophies := make([]string, len(w.Slain))
	for i, m := range w.Slain {
		trophies[i] = Describe(m, overrides)
	}
	return fmt.Sprintf("Weapon (Strength: %d), last slew a %d. Trophies: %s.",
		w.Strength, w.LastSlain, strings.Join(trophies, ", "))
}
