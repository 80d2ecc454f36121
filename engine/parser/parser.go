// Package parser converts command strings into Intent structs.
// Intentionally dumb: no NLP, just pattern matching.
package parser

import (
	"strings"

	"github.com/nathoo/scoundrel/types"
)

var verbAliases = map[string]string{
	// Fight
	"f":      "fight",
	"attack": "fight",
	"hit":    "fight",
	"strike": "fight",
	"kill":   "fight",
	"slay":   "fight",
	"battle": "fight",

	// Equip
	"e":     "equip",
	"wield": "equip",
	"arm":   "equip",
	"take":  "equip",
	"grab":  "equip",
	"get":   "equip",

	// Drink
	"d":       "drink",
	"p":       "drink",
	"potion":  "drink",
	"quaff":   "drink",
	"sip":     "drink",
	"swallow": "drink",
	"heal":    "drink",

	// Flee
	"r":      "flee",
	"run":    "flee",
	"escape": "flee",
	"skip":   "flee",
	"avoid":  "flee",
	"leave":  "flee",

	// Look
	"l":    "look",
	"room": "look",
	"view": "look",

	// Weapon status
	"w":         "weapon",
	"i":         "weapon",
	"inv":       "weapon",
	"inventory": "weapon",

	// New game
	"restart": "new",
	"reset":   "new",
}

// fightModes maps words that select how to fight.
var fightModes = map[string]types.FightMode{
	"bare":        types.FightBareHanded,
	"barehanded":  types.FightBareHanded,
	"bare-handed": types.FightBareHanded,
	"hands":       types.FightBareHanded,
	"hand":        types.FightBareHanded,
	"fists":       types.FightBareHanded,
	"fist":        types.FightBareHanded,
	"unarmed":     types.FightBareHanded,
	"b":           types.FightBareHanded,
	"weapon":      types.FightWeapon,
	"blade":       types.FightWeapon,
	"sword":       types.FightWeapon,
	"armed":       types.FightWeapon,
	"w":           types.FightWeapon,
}

var prepositions = map[string]bool{
	"with": true, "using": true, "by": true, "in": true, "from": true,
}

var articles = map[string]bool{
	"the": true, "a": true, "an": true, "my": true, "your": true,
}

// Parse converts a raw command string into an Intent. For fight commands
// the mode ("bare" or "weapon") is lifted into Target wherever it appears.
func Parse(input string) types.Intent {
	input = strings.TrimSpace(input)
	if input == "" {
		return types.Intent{}
	}

	words := strings.Fields(strings.ToLower(input))

	// Handle multi-word verb phrases before general parsing.
	words = expandMultiWordVerbs(words)

	if alias, ok := verbAliases[words[0]]; ok {
		words[0] = alias
	}

	verb := words[0]
	rest := stripArticles(words[1:])

	if verb != "fight" {
		return types.Intent{Verb: verb, Object: strings.Join(rest, " ")}
	}

	var mode types.FightMode
	object := make([]string, 0, len(rest))
	for _, w := range rest {
		if m, ok := fightModes[w]; ok {
			mode = m
			continue
		}
		if prepositions[w] {
			continue
		}
		object = append(object, w)
	}
	return types.Intent{
		Verb:   verb,
		Object: strings.Join(object, " "),
		Target: string(mode),
	}
}

// expandMultiWordVerbs handles "pick up", "run away", "look around" etc.
func expandMultiWordVerbs(words []string) []string {
	if len(words) < 2 {
		return words
	}

	switch words[0] {
	case "pick":
		if words[1] == "up" {
			return append([]string{"equip"}, words[2:]...)
		}
	case "run", "get":
		if words[1] == "away" || words[1] == "out" {
			return append([]string{"flee"}, words[2:]...)
		}
	case "look":
		if words[1] == "around" {
			return []string{"look"}
		}
		if words[1] == "at" && len(words) > 2 && words[2] == "weapon" {
			return []string{"weapon"}
		}
	case "new":
		if words[1] == "game" {
			return append([]string{"new"}, words[2:]...)
		}
	}

	return words
}

// stripArticles removes articles ("the", "a", "an") from the word list.
func stripArticles(words []string) []string {
	result := make([]string, 0, len(words))
	for _, w := range words {
		if !articles[w] {
			result = append(result, w)
		}
	}
	return result
}
