package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nathoo/scoundrel/engine/parser"
	"github.com/nathoo/scoundrel/engine/resolve"
	"github.com/nathoo/scoundrel/engine/state"
	"github.com/nathoo/scoundrel/types"
)

// verbKinds maps card verbs to the kind of card they act on.
var verbKinds = map[string]types.Kind{
	"fight": types.KindMonster,
	"equip": types.KindWeapon,
	"drink": types.KindPotion,
}

// Step processes one player command and returns the result. Rejected
// commands leave the state untouched and explain themselves in Output.
func (e *Engine) Step(input string) types.Result {
	// 1. Parse input.
	intent := parser.Parse(input)

	// 2. Non-card verbs.
	switch intent.Verb {
	case "":
		return e.info("What do you want to do?")
	case "look":
		return e.info(e.DescribeRoom()...)
	case "weapon":
		return e.info(state.DescribeWeapon(e.State.Weapon, e.Settings.MonsterNames))
	case "new":
		maxHP, _ := strconv.Atoi(intent.Object)
		result := e.NewGame(maxHP)
		result.Output = append(result.Output, e.DescribeRoom()...)
		return result
	}

	// 3. Intents.
	var result types.Result
	var err error

	switch intent.Verb {
	case "flee":
		result, err = e.Flee()

	case "fight", "equip", "drink":
		index := -1
		if state.InPlay(e.State) {
			index, err = resolve.Card(e.State.Room, verbKinds[intent.Verb], intent.Object, e.Settings.MonsterNames)
			if err != nil {
				return e.info(sentence(err.Error()))
			}
		}
		switch intent.Verb {
		case "fight":
			result, err = e.Fight(index, e.fightMode(intent.Target))
		case "equip":
			result, err = e.Equip(index)
		default:
			result, err = e.DrinkPotion(index)
		}

	default:
		return e.info(fmt.Sprintf("You can't %s here. Type /help for commands.", intent.Verb))
	}

	// 4. Show the new room after a successful intent.
	if err == nil && state.InPlay(e.State) {
		result.Output = append(result.Output, e.DescribeRoom()...)
	}
	return result
}

// fightMode turns a parsed mode word into a FightMode. Without one the
// equipped weapon is used when there is one.
func (e *Engine) fightMode(word string) types.FightMode {
	switch types.FightMode(word) {
	case types.FightBareHanded, types.FightWeapon:
		return types.FightMode(word)
	}
	if e.State.Weapon != nil {
		return types.FightWeapon
	}
	return types.FightBareHanded
}

// info returns a result that carries output but changes nothing.
func (e *Engine) info(lines ...string) types.Result {
	return types.Result{Snapshot: e.Snapshot(), Output: lines}
}

// DescribeRoom produces the standard room description output.
func (e *Engine) DescribeRoom() []string {
	s := e.State
	if !state.InPlay(s) {
		return []string{terminalMessage(s)}
	}

	var output []string
	if len(s.Room) > 0 {
		cards := make([]string, len(s.Room))
		for i, c := range s.Room {
			cards[i] = fmt.Sprintf("[%d] %s", i+1, state.Describe(c, e.Settings.MonsterNames))
		}
		output = append(output, "You see: "+strings.Join(cards, ", ")+".")
	}

	output = append(output, fmt.Sprintf("HP: %d/%d. Cards in the deck: %d.", s.HP, s.MaxHP, len(s.Deck)))
	output = append(output, state.DescribeWeapon(s.Weapon, e.Settings.MonsterNames))

	var options []string
	if state.FleeAvailable(s) {
		options = append(options, "you may flee this room")
	}
	if !state.PotionAvailable(s) {
		options = append(options, "potions won't heal again until the next room")
	}
	if len(options) > 0 {
		output = append(output, sentence(strings.Join(options, "; ")))
	}
	return output
}
