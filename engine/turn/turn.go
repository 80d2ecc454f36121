// Package turn tracks per-room bookkeeping: the action counter that
// triggers refills and the once-per-room flee and potion restrictions.
package turn

import "github.com/nathoo/scoundrel/types"

// ActionsPerRoom is the number of resolved intents after which the room's
// last card is carried into a freshly drawn room.
const ActionsPerRoom = 3

// RecordAction counts one resolved intent and reports whether the room is
// due for a refill. The caller refills and then calls OnRefill.
func RecordAction(t *types.TurnState) bool {
	t.Actions++
	return t.Actions >= ActionsPerRoom
}

// OnRefill resets the counters for a new room.
func OnRefill(t *types.TurnState) {
	t.Actions = 0
	t.PotionUsed = false
	t.FledLastRoom = false
}

// OnFlee resets the counters for the room drawn by a flee and marks it as
// fled, so the next flee is refused until another refill.
func OnFlee(t *types.TurnState) {
	OnRefill(t)
	t.FledLastRoom = true
}

// CanHeal reports whether a potion drunk now restores HP.
func CanHeal(t types.TurnState) bool {
	return !t.PotionUsed
}

// MarkPotion records that a potion healed in this room.
func MarkPotion(t *types.TurnState) {
	t.PotionUsed = true
}
