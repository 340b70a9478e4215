package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Main        lipgloss.Style
	Title       lipgloss.Style
	Input       lipgloss.Style
	InputFocus  lipgloss.Style
	Button      lipgloss.Style
	ButtonFocus lipgloss.Style
	Row         lipgloss.Style
	Cover       lipgloss.Style
	TrackTitle  lipgloss.Style
	Artist      lipgloss.Style
	CoverURL    lipgloss.Style
	SelectionBg lipgloss.Style
	Scroll      lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("250")).
			Padding(0, 1),
		InputFocus: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color("33")).
			MarginBottom(1),
		ButtonFocus: lipgloss.NewStyle().
			Foreground(lipgloss.Color("33")).
			Bold(true).
			MarginBottom(1),
		Row:         lipgloss.NewStyle().MarginBottom(1),
		Cover:       lipgloss.NewStyle().Foreground(lipgloss.Color("99")).MarginRight(1),
		TrackTitle:  lipgloss.NewStyle().Bold(true),
		Artist:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		CoverURL:    lipgloss.NewStyle().Faint(true),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Help:        lipgloss.NewStyle().Faint(true).MarginTop(1),
	}
}
