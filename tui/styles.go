package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridpath/render"
)

var (
	// Board border
	BoardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62"))

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))

	// Cell colors
	EmptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	WallStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	EndpointStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	VisitedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	PathStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	FrontierStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)
	FoundStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	NotFoundStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// StyleForState returns the style a cell in state s is drawn with.
func StyleForState(s render.State) lipgloss.Style {
	switch s {
	case render.Wall:
		return WallStyle
	case render.Endpoint:
		return EndpointStyle
	case render.Visited:
		return VisitedStyle
	case render.Path:
		return PathStyle
	case render.Frontier:
		return FrontierStyle
	default:
		return EmptyStyle
	}
}
