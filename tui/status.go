package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// locationDisplayName derives a human-readable name from a location ID.
// "crystal_cave" -> "Crystal Cave".
func locationDisplayName(id string) string {
	words := strings.Split(id, "_")
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// renderStatusBar produces a full-width inverted status line showing
// the current location, inventory, and experience.
func (m Model) renderStatusBar() string {
	snap := m.game.GetState()

	left := " " + locationDisplayName(snap.Location)
	if m.conversation != nil {
		left += " | talking to " + strings.ReplaceAll(m.conversation.NPCID, "_", " ")
	}

	right := fmt.Sprintf("XP:%d ", m.game.World().Experience)
	if len(snap.Inventory) > 0 {
		names := make([]string, 0, len(snap.Inventory))
		for _, id := range snap.Inventory {
			names = append(names, strings.ReplaceAll(id, "_", " "))
		}
		candidate := fmt.Sprintf("Inv: %s | XP:%d ", strings.Join(names, ", "), m.game.World().Experience)
		if lipgloss.Width(left)+lipgloss.Width(candidate)+2 < m.width {
			right = candidate
		} else {
			right = fmt.Sprintf("Inv: %d | XP:%d ", len(snap.Inventory), m.game.World().Experience)
		}
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
