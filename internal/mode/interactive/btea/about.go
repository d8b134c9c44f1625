// ABOUTME: About overlay toggled with "?": describes the platform and its hubs
// ABOUTME: Rendered as a bordered box composited over the current view

package btea

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/mindweaver/internal/catalog"
	"github.com/mauromedda/mindweaver/internal/router"
	"github.com/mauromedda/mindweaver/pkg/tui/width"
)

const aboutWidth = 60

const aboutIntro = "MindWeaver is a unified workspace for AI-assisted creation, " +
	"research, strategy, and cross-domain synthesis. Pick a hub, choose a tool, " +
	"describe what you need, and let the model weave it together."

// AboutModel displays information about the platform.
type AboutModel struct {
	version string
	model   string
}

// NewAboutModel creates the About overlay.
func NewAboutModel(version, model string) AboutModel {
	return AboutModel{version: version, model: model}
}

// Init returns nil; no startup commands needed.
func (m AboutModel) Init() tea.Cmd { return nil }

// Update dismisses the overlay on esc, q, or ?.
func (m AboutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q", "?", "enter":
			return m, func() tea.Msg { return DismissOverlayMsg{} }
		}
	}
	return m, nil
}

// View renders the overlay box.
func (m AboutModel) View() string {
	s := Styles()
	inner := aboutWidth - 4

	var b strings.Builder
	b.WriteString(s.OverlayTitle.Render("About MindWeaver"))
	b.WriteString("\n\n")
	for _, line := range width.WordWrap(aboutIntro, inner) {
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
	for _, hub := range router.Hubs() {
		sec, _ := hub.Catalog()
		n := len(catalog.InSection(sec))
		b.WriteString(s.CardTitle.Render(hub.String()))
		b.WriteString(s.Muted.Render(" · " + pluralTools(n)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	ver := m.version
	if ver == "" {
		ver = "dev"
	}
	meta := "v" + ver
	if m.model != "" {
		meta += " · " + m.model
	}
	b.WriteString(s.Dim.Render(meta))
	b.WriteString("\n")
	b.WriteString(s.Dim.Render("esc to close"))

	return s.Modal.Width(aboutWidth - 2).Render(b.String())
}

func pluralTools(n int) string {
	if n == 1 {
		return "1 tool"
	}
	return strconv.Itoa(n) + " tools"
}
