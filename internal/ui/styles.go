package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Common styles for the UI components
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F39C12")).
			MarginTop(1).
			MarginBottom(1)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3498DB"))

	SelectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2ECC71")).
			Bold(true)

	ChallengeStyles = map[string]lipgloss.Style{
		"fc":  lipgloss.NewStyle().Background(lipgloss.Color("#2ECC71")).Padding(0, 1),
		"fts": lipgloss.NewStyle().Background(lipgloss.Color("#F39C12")).Padding(0, 1),
		"fe":  lipgloss.NewStyle().Background(lipgloss.Color("#E74C3C")).Padding(0, 1),
	}
)

// ChallengeBadge renders the challenge kind as a colored badge, falling back
// to plain text for unknown kinds.
func ChallengeBadge(challenge string) string {
	style, ok := ChallengeStyles[challenge]
	if !ok {
		return challenge
	}
	return style.Render(challenge)
}
