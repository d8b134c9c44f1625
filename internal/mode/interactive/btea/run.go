// ABOUTME: Entry point for the Bubble Tea interactive TUI
// ABOUTME: Creates the tea.Program on the alternate screen and blocks until exit

package btea

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the Bubble Tea interactive app. Blocks until the user exits.
func Run(deps AppDeps) error {
	m := NewAppModel(deps)
	defer m.sh.cancel()

	p := tea.NewProgram(
		m,
		tea.WithOutput(os.Stderr),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if app, ok := final.(AppModel); ok {
		app.closeModal()
	}
	if err != nil {
		return fmt.Errorf("bubble tea: %w", err)
	}
	return nil
}
