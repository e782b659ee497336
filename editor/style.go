package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the Model's rendering.
type Style struct {
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text   lipgloss.Style
	Cursor lipgloss.Style

	StatusBar lipgloss.Style
	StatusMsg lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		StatusBar:     lipgloss.NewStyle().Reverse(true),
		StatusMsg:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}
