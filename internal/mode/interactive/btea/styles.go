// ABOUTME: Lipgloss palette and pre-built styles for the MindWeaver TUI
// ABOUTME: Adaptive colors pick light/dark variants; Styles() returns the shared set

package btea

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the adaptive colors everything else derives from.
var palette = struct {
	primary, secondary, muted, accent lipgloss.AdaptiveColor
	success, warning, danger, info    lipgloss.AdaptiveColor
	border, selection                 lipgloss.AdaptiveColor
}{
	primary:   lipgloss.AdaptiveColor{Light: "#4338CA", Dark: "#A5B4FC"},
	secondary: lipgloss.AdaptiveColor{Light: "#7E22CE", Dark: "#D8B4FE"},
	muted:     lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"},
	accent:    lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#67E8F9"},
	success:   lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#86EFAC"},
	warning:   lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FCD34D"},
	danger:    lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#FCA5A5"},
	info:      lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#93C5FD"},
	border:    lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"},
	selection: lipgloss.AdaptiveColor{Light: "#6366F1", Dark: "#818CF8"},
}

// ThemeStyles holds pre-built lipgloss styles for every UI element.
type ThemeStyles struct {
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Muted     lipgloss.Style
	Accent    lipgloss.Style

	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style

	Border    lipgloss.Style
	Selection lipgloss.Style
	Highlight lipgloss.Style

	Header    lipgloss.Style
	NavItem   lipgloss.Style
	NavActive lipgloss.Style

	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardTitle    lipgloss.Style
	Badge        lipgloss.Style

	OverlayBorder lipgloss.Style
	OverlayTitle  lipgloss.Style
	Modal         lipgloss.Style

	Bold lipgloss.Style
	Dim  lipgloss.Style
}

var stylesOnce = sync.OnceValue(buildStyles)

// Styles returns the shared style set. Built once on first use.
func Styles() ThemeStyles {
	return stylesOnce()
}

func buildStyles() ThemeStyles {
	fg := func(c lipgloss.AdaptiveColor) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(palette.border).
		Padding(0, 1)

	return ThemeStyles{
		Primary:   fg(palette.primary),
		Secondary: fg(palette.secondary),
		Muted:     fg(palette.muted),
		Accent:    fg(palette.accent),

		Success: fg(palette.success),
		Warning: fg(palette.warning),
		Error:   fg(palette.danger),
		Info:    fg(palette.info),

		Border:    fg(palette.border),
		Selection: fg(palette.selection).Bold(true),
		Highlight: fg(palette.accent).Bold(true).Underline(true),

		Header:    fg(palette.primary).Bold(true).Padding(0, 1),
		NavItem:   fg(palette.muted).PaddingLeft(2),
		NavActive: fg(palette.selection).Bold(true).PaddingLeft(1).Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(palette.selection),

		Card:         card,
		CardSelected: card.BorderForeground(palette.selection),
		CardTitle:    fg(palette.primary).Bold(true),
		Badge:        fg(palette.secondary).Italic(true),

		OverlayBorder: fg(palette.selection),
		OverlayTitle:  fg(palette.primary).Bold(true),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.selection).
			Padding(0, 1),

		Bold: lipgloss.NewStyle().Bold(true),
		Dim:  lipgloss.NewStyle().Faint(true),
	}
}
