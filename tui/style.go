package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleNarrative = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleYouSee = lipgloss.NewStyle().
			Bold(true)

	styleExits = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleDialogue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))

	styleQuest = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114"))

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindNarrative lineKind = iota
	kindYouSee
	kindExits
	kindDialogue
	kindQuest
	kindError
)

// classifyLine determines what kind of output line this is.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "You see:"),
		strings.HasPrefix(line, "Someone is here:"),
		strings.HasPrefix(line, "You are carrying:"):
		return kindYouSee
	case strings.HasPrefix(line, "Exits:"):
		return kindExits
	case strings.HasPrefix(line, "Quest"),
		strings.HasPrefix(line, "New quest:"),
		strings.HasPrefix(line, "Level Up!"),
		strings.HasPrefix(line, "You gain"),
		strings.HasPrefix(line, "You receive"):
		return kindQuest
	case strings.HasPrefix(line, "There is no"),
		strings.HasPrefix(line, "You can't"),
		strings.HasPrefix(line, "You don't have"),
		strings.HasPrefix(line, "I don't understand"):
		return kindError
	case isDialogueLine(line):
		return kindDialogue
	default:
		return kindNarrative
	}
}

// isDialogueLine matches the "name: text" shape conversation replies use.
func isDialogueLine(line string) bool {
	idx := strings.Index(line, ": ")
	if idx <= 0 || idx > 30 {
		return false
	}
	speaker := line[:idx]
	for _, r := range speaker {
		if !(r == ' ' || r == '\'' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')) {
			return false
		}
	}
	return true
}

// styledYouSee renders list lines with the names bold.
func styledYouSee(line string) string {
	idx := strings.Index(line, ": ")
	if idx < 0 {
		return styleNarrative.Render(line)
	}
	return styleNarrative.Render(line[:idx+2]) + styleYouSee.Render(line[idx+2:])
}

// styledSystemMsg renders a system message in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}
