// ABOUTME: Decides the terminal background before BubbleTea's init() sends OSC queries
// ABOUTME: MINDWEAVER_THEME=light|dark|auto; must be imported (with _) before any package that imports bubbletea

package termfix

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ThemeEnv selects the palette variant of the adaptive colors.
const ThemeEnv = "MINDWEAVER_THEME"

func init() {
	if dark, ok := Background(os.Getenv(ThemeEnv)); ok {
		// With an explicit background lipgloss skips the OSC 10/11 query
		// whose late reply would otherwise leak into text inputs.
		lipgloss.SetHasDarkBackground(dark)
	}
}

// Background maps a theme name to a dark-background flag. "auto" reports
// ok=false so lipgloss queries the terminal; anything unrecognized means dark.
//
// This package must NOT import bubbletea (directly or transitively)
// so that Go's init order guarantees init runs first.
func Background(theme string) (dark, ok bool) {
	switch strings.ToLower(strings.TrimSpace(theme)) {
	case "auto":
		return false, false
	case "light":
		return false, true
	default:
		return true, true
	}
}
