// ABOUTME: SidebarModel is a Bubble Tea leaf listing the navigable sections
// ABOUTME: The active section is marked; number keys and up/down move between sections

package btea

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/mindweaver/internal/router"
	"github.com/mauromedda/mindweaver/pkg/tui/width"
)

const sidebarWidth = 22

// SidebarModel renders the section list. It only displays the router's
// current section; navigation is applied by the root model.
type SidebarModel struct {
	current router.Section
	focused bool
	height  int
}

// NewSidebarModel creates a sidebar with Dashboard active.
func NewSidebarModel() SidebarModel {
	return SidebarModel{current: router.Dashboard}
}

// Init returns nil; no commands needed.
func (m SidebarModel) Init() tea.Cmd { return nil }

// Update tracks the terminal height.
func (m SidebarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.height = ws.Height
	}
	return m, nil
}

// WithCurrent returns a sidebar marking s as active.
func (m SidebarModel) WithCurrent(s router.Section) SidebarModel {
	m.current = s
	return m
}

// WithFocused returns a sidebar drawn as focused or not.
func (m SidebarModel) WithFocused(f bool) SidebarModel {
	m.focused = f
	return m
}

// View renders one line per section with its shortcut number.
func (m SidebarModel) View() string {
	s := Styles()
	var b strings.Builder

	b.WriteString(s.Header.Render("MindWeaver"))
	b.WriteString("\n\n")

	for i, sec := range router.Sections() {
		label := width.TruncateToWidth(fmt.Sprintf("%d %s", i+1, sec), sidebarWidth-3)
		if sec == m.current {
			style := s.NavActive
			if !m.focused {
				style = style.Bold(false)
			}
			b.WriteString(style.Render(label))
		} else {
			b.WriteString(s.NavItem.Render(label))
		}
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(s.Dim.Render("  ? about"))

	return b.String()
}
