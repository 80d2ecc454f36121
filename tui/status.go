package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/scoundrel/engine/state"
	"github.com/nathoo/scoundrel/engine/turn"
	"github.com/nathoo/scoundrel/types"
)

// weaponSummary is the short weapon label for the status bar.
func weaponSummary(w *types.Weapon) string {
	switch {
	case w == nil:
		return "Bare hands"
	case w.LastSlain == 0:
		return fmt.Sprintf("Weapon %d", w.Strength)
	default:
		return fmt.Sprintf("Weapon %d (max %d)", w.Strength, w.LastSlain)
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// renderStatusBar produces a full-width inverted status line showing HP,
// weapon and deck on the left, and the per-room bookkeeping on the right.
func (m Model) renderStatusBar() string {
	snap := m.engine.Snapshot()

	left := fmt.Sprintf(" HP %d/%d | %s | Deck %d",
		snap.HP, snap.MaxHP, weaponSummary(snap.Weapon), snap.DeckSize)

	var right string
	switch snap.Status {
	case types.StatusWon:
		right = fmt.Sprintf("WON | Score %d ", snap.Score)
	case types.StatusLost:
		right = fmt.Sprintf("LOST | Score %d ", snap.Score)
	default:
		right = fmt.Sprintf("Actions %d/%d | Flee %s | Potion %s ",
			snap.Actions, turn.ActionsPerRoom, yesNo(snap.FleeAvailable), yesNo(snap.PotionAvailable))
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}

// renderRoom draws the room as a row of card boxes. It returns "" when the
// room is empty or too wide for the terminal, leaving the narrative listing
// as the only view of the room.
func (m Model) renderRoom() string {
	snap := m.engine.Snapshot()
	if len(snap.Room) == 0 {
		return ""
	}

	boxes := make([]string, len(snap.Room))
	for i, c := range snap.Room {
		boxes[i] = renderCard(i+1, c, m.engine.Settings.MonsterNames)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
	if lipgloss.Width(row) > m.width {
		return ""
	}
	return row
}

// renderCard draws one room slot.
func renderCard(slot int, c types.Card, names map[string]string) string {
	color := kindColors[c.Kind]

	var stat string
	switch c.Kind {
	case types.KindMonster:
		stat = fmt.Sprintf("Power %d", c.Value)
	case types.KindWeapon:
		stat = fmt.Sprintf("Strength %d", c.Value)
	default:
		stat = fmt.Sprintf("Heals %d", c.Value)
	}

	body := strings.Join([]string{
		styleCardSlot.Render(fmt.Sprintf("[%d] %s %s", slot, c.Rank, c.Suit)),
		lipgloss.NewStyle().Foreground(color).Bold(true).Render(state.CardName(c, names)),
		stat,
	}, "\n")
	return styleCard.BorderForeground(color).Render(body)
}
