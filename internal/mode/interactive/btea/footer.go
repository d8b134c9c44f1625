// ABOUTME: FooterModel is a Bubble Tea leaf that renders a two-line status bar
// ABOUTME: Line 1: provider, model, output dir, status; line 2: key hints for the current view

package btea

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/mindweaver/pkg/tui/width"
)

// FooterModel renders a two-line status bar at the bottom of the terminal.
type FooterModel struct {
	provider  string
	model     string
	outputDir string
	status    string
	statusErr bool
	hints     []string
	width     int
}

// NewFooterModel creates an empty FooterModel.
func NewFooterModel() FooterModel {
	return FooterModel{}
}

// Init returns nil; no commands needed for a leaf model.
func (m FooterModel) Init() tea.Cmd {
	return nil
}

// Update tracks the terminal width.
func (m FooterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = ws.Width
	}
	return m, nil
}

// WithProvider returns a FooterModel with the backend name set.
func (m FooterModel) WithProvider(p string) FooterModel {
	m.provider = p
	return m
}

// WithModel returns a FooterModel with the model name set.
func (m FooterModel) WithModel(name string) FooterModel {
	m.model = name
	return m
}

// WithOutputDir returns a FooterModel with the save directory set.
func (m FooterModel) WithOutputDir(dir string) FooterModel {
	m.outputDir = dir
	return m
}

// WithStatus returns a FooterModel showing a transient status message.
func (m FooterModel) WithStatus(msg string, isErr bool) FooterModel {
	m.status = msg
	m.statusErr = isErr
	return m
}

// WithHints returns a FooterModel with the key hints replaced.
func (m FooterModel) WithHints(hints ...string) FooterModel {
	m.hints = hints
	return m
}

// View renders the two-line footer.
func (m FooterModel) View() string {
	s := Styles()

	var parts []string
	if m.provider != "" {
		parts = append(parts, s.Accent.Render(m.provider))
	}
	if m.model != "" {
		parts = append(parts, s.Primary.Render(m.model))
	}
	if m.outputDir != "" {
		parts = append(parts, s.Muted.Render("out: "+m.outputDir))
	}
	if m.status != "" {
		style := s.Success
		if m.statusErr {
			style = s.Error
		}
		parts = append(parts, style.Render(m.status))
	}
	line1 := strings.Join(parts, s.Muted.Render("  "))
	line2 := s.Dim.Render(strings.Join(m.hints, " · "))

	if m.width > 0 {
		if width.VisibleWidth(line1) > m.width {
			line1 = width.TruncateToWidth(line1, m.width)
		}
		if width.VisibleWidth(line2) > m.width {
			line2 = width.TruncateToWidth(line2, m.width)
		}
	}
	return line1 + "\n" + line2
}
