package views

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/scadasystems/pluto-grid/internal/config"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Header       lipgloss.Style
	Cell         lipgloss.Style
	ActivePage   lipgloss.Style
	InactivePage lipgloss.Style
	Icon         lipgloss.Style
	IconDisabled lipgloss.Style
	Status       lipgloss.Style
	Filter       lipgloss.Style
	Dim          lipgloss.Style
	Help         lipgloss.Style
	Main         lipgloss.Style
}

// NewStyles creates a Styles instance from the configured UI colors
func NewStyles(ui config.UISettings) *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("241")),
		Cell:         lipgloss.NewStyle(),
		ActivePage:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ui.ActiveColor)),
		InactivePage: lipgloss.NewStyle().Foreground(lipgloss.Color(ui.InactiveColor)),
		Icon:         lipgloss.NewStyle().Foreground(lipgloss.Color(ui.IconColor)),
		IconDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color(ui.DisabledColor)),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Dim:    lipgloss.NewStyle().Faint(true),
		Help:   lipgloss.NewStyle().Faint(true),
		Main:   lipgloss.NewStyle().Padding(1, 2),
	}
}
