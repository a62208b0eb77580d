package tui

import "github.com/charmbracelet/lipgloss"

// LineStyle returns the base style for a list row and the two-column marker
// that precedes it. Highlighted rows carry the highlight background.
func LineStyle(highlighted bool) (lipgloss.Style, string) {
	base := lipgloss.NewStyle()
	if !highlighted {
		return base, "  "
	}
	base = base.Background(ColorHighlight)
	marker := lipgloss.NewStyle().Foreground(ColorCyan).Background(ColorHighlight).Render("▸") + base.Render(" ")
	return base, marker
}
