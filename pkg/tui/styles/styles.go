package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles defines styles for the interactive panel. Kept in its own package so
// components can share them without import cycles.
type Styles struct {
	App   lipgloss.Style
	Title lipgloss.Style

	CredCursor   lipgloss.Style
	CredNormal   lipgloss.Style
	CredDisabled lipgloss.Style

	Loading lipgloss.Style

	SuccessPanel lipgloss.Style
	ErrorPanel   lipgloss.Style

	Footer    lipgloss.Style
	HelpKey   lipgloss.Style
	HelpValue lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() *Styles {
	s := new(Styles)

	s.App = lipgloss.NewStyle().
		Padding(1, 2)
	s.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86"))

	s.CredCursor = lipgloss.NewStyle().
		Foreground(lipgloss.Color("212")).
		Bold(true)
	s.CredNormal = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))
	s.CredDisabled = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	s.Loading = lipgloss.NewStyle().
		Foreground(lipgloss.Color("214"))

	s.SuccessPanel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("42")).
		Foreground(lipgloss.Color("42")).
		Padding(0, 1)
	s.ErrorPanel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("196")).
		Foreground(lipgloss.Color("203")).
		Padding(0, 1)

	s.Footer = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	s.HelpKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	s.HelpValue = lipgloss.NewStyle().
		Foreground(lipgloss.Color("239"))

	return s
}
