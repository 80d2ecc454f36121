package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/scoundrel/types"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleNarration = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleYouSee = lipgloss.NewStyle().
			Bold(true)

	styleStats = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	styleHint = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Italic(true)

	styleDamage = lipgloss.NewStyle().
			Foreground(lipgloss.Color("209"))

	styleHeal = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114"))

	styleWin = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)

	styleLoss = lipgloss.NewStyle().
			Foreground(lipgloss.Color("160")).
			Bold(true)

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleTrace = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	styleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(18)

	styleCardSlot = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

// kindColors maps a card kind to its border and title color.
var kindColors = map[types.Kind]lipgloss.Color{
	types.KindMonster: lipgloss.Color("167"),
	types.KindWeapon:  lipgloss.Color("75"),
	types.KindPotion:  lipgloss.Color("114"),
}

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindNarration lineKind = iota
	kindYouSee
	kindStats
	kindHint
	kindDamage
	kindHeal
	kindWin
	kindLoss
	kindSystem
	kindError
	kindTrace
)

// errorPrefixes start the lines the engine produces for rejected commands.
var errorPrefixes = []string{
	"Invalid card",
	"Cannot flee",
	"Game is over",
	"You can't",
	"You don't see",
	"Which ",
}

// classifyLine determines what kind of output line this is.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "[trace]"):
		return kindTrace
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		return kindSystem
	case strings.HasPrefix(line, "You see:"):
		return kindYouSee
	case strings.HasPrefix(line, "HP:"):
		return kindStats
	case strings.HasPrefix(line, "You may flee"),
		strings.HasPrefix(line, "Potions won't"):
		return kindHint
	case strings.HasPrefix(line, "You cleared the dungeon"):
		return kindWin
	case strings.HasPrefix(line, "You have been slain"):
		return kindLoss
	case strings.HasPrefix(line, "Drank "):
		return kindHeal
	case strings.HasPrefix(line, "Fought "),
		strings.HasPrefix(line, "Your weapon is too dull"):
		return kindDamage
	}
	for _, p := range errorPrefixes {
		if strings.HasPrefix(line, p) {
			return kindError
		}
	}
	return kindNarration
}

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindYouSee:
		return styledYouSee(line)
	case kindStats:
		return styleStats.Render(line)
	case kindHint:
		return styleHint.Render(line)
	case kindDamage:
		return styleDamage.Render(line)
	case kindHeal:
		return styleHeal.Render(line)
	case kindWin:
		return styleWin.Render(line)
	case kindLoss:
		return styleLoss.Render(line)
	case kindSystem:
		return styleSystem.Render(line)
	case kindError:
		return styleError.Render(line)
	case kindTrace:
		return styleTrace.Render(line)
	default:
		return styleNarration.Render(line)
	}
}

// styledYouSee renders "You see: card1, card2." with the cards bold.
func styledYouSee(line string) string {
	const prefix = "You see: "
	if !strings.HasPrefix(line, prefix) {
		return styleNarration.Render(line)
	}
	return styleNarration.Render(prefix) + styleYouSee.Render(line[len(prefix):])
}

// styledSystemMsg renders a system message in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}
