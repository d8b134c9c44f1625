// ABOUTME: Root AppModel wiring sidebar, card grid, footer, tool modals, and the About overlay
// ABOUTME: Owns the view router value; routes keys to the modal or overlay when one is open

package btea

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/mindweaver/internal/catalog"
	"github.com/mauromedda/mindweaver/internal/invocation"
	pilog "github.com/mauromedda/mindweaver/internal/log"
	"github.com/mauromedda/mindweaver/internal/router"
	"github.com/mauromedda/mindweaver/pkg/tui/image"
	"github.com/mauromedda/mindweaver/pkg/tui/width"
)

const (
	maxModalWidth = 110
	footerHeight  = 2
)

// focusArea is the pane receiving navigation keys.
type focusArea int

const (
	focusMain focusArea = iota
	focusSidebar
)

// shared holds state that must survive AppModel value copies.
// ctx is the parent of every generation call and is cancelled on exit.
type shared struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// AppModel is the root Bubble Tea model for the interactive TUI.
type AppModel struct {
	sh   *shared
	deps AppDeps
	md   *MarkdownRenderer

	router        router.Router
	focus         focusArea
	width, height int

	sidebar   SidebarModel
	grid      CardGridModel
	footer    FooterModel
	filter    textinput.Model
	filtering bool

	// Open tool dialog (nil = none).
	modal toolModal

	// About overlay (nil = none).
	overlay tea.Model
}

// NewAppModel creates an AppModel wired with the given dependencies.
func NewAppModel(deps AppDeps) AppModel {
	ctx, cancel := context.WithCancel(context.Background())
	if deps.Previews == nil {
		deps.Previews = image.NewPreviewCache()
	}

	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "filter tools"

	provider := ""
	if deps.Client != nil {
		provider = string(deps.Client.Api())
	}

	m := AppModel{
		sh:      &shared{ctx: ctx, cancel: cancel},
		deps:    deps,
		md:      NewMarkdownRenderer(),
		router:  router.New(),
		width:   80,
		height:  24,
		sidebar: NewSidebarModel(),
		footer: NewFooterModel().
			WithProvider(provider).
			WithModel(deps.Model).
			WithOutputDir(deps.OutputDir),
		filter: filter,
	}
	m.grid = NewCardGridModel(hubCards()).SetFocused(true)
	return m.layout()
}

// Init sets the terminal title.
func (m AppModel) Init() tea.Cmd {
	return tea.SetWindowTitle(m.router.Title())
}

// Update routes messages to the appropriate handler.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		fUpdated, _ := m.footer.Update(msg)
		m.footer = fUpdated.(FooterModel)
		m = m.layout()
		return m.resizeModal()

	case DismissOverlayMsg:
		m.overlay = nil
		return m, nil

	case CloseModalMsg:
		return m.closeModal(), nil

	case ImageSavedMsg:
		if msg.Err != nil {
			m.footer = m.footer.WithStatus("save failed", true)
		} else {
			m.footer = m.footer.WithStatus("saved "+msg.Path, false)
		}
	}

	if m.overlay != nil {
		if _, ok := msg.(tea.KeyMsg); ok {
			updated, cmd := m.overlay.Update(msg)
			m.overlay = updated
			return m, cmd
		}
	}

	if m.modal != nil {
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
			return m.closeModal(), tea.Quit
		}
		updated, cmd := m.modal.Update(msg)
		m.modal = updated.(toolModal)
		return m, cmd
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(key)
	}
	if m.filtering {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		return m, cmd
	}
	return m, nil
}

// --- Key handling ---

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filtering {
		return m.handleFilterKey(msg)
	}

	switch k := msg.String(); k {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "?":
		m.overlay = NewAboutModel(m.deps.Version, m.deps.Model)
		return m, nil

	case "1", "2", "3", "4", "5":
		n, _ := strconv.Atoi(k)
		return m.selectSection(router.Sections()[n-1])

	case "tab":
		if m.focus == focusMain {
			m.focus = focusSidebar
		} else {
			m.focus = focusMain
		}
		return m.applyFocus(), nil

	case "/":
		if m.router.Current() == router.Dashboard {
			return m, nil
		}
		m.filtering = true
		m.focus = focusMain
		m = m.applyFocus()
		cmd := m.filter.Focus()
		return m, cmd

	case "esc":
		if m.grid.Filter() != "" {
			m.filter.SetValue("")
			m.grid = m.grid.SetFilter("")
			return m, nil
		}
		if m.router.Current() != router.Dashboard {
			return m.selectSection(router.Dashboard)
		}
		return m, nil

	case "enter":
		if m.focus == focusSidebar {
			m.focus = focusMain
			return m.applyFocus(), nil
		}
		card, ok := m.grid.Selected()
		if !ok {
			return m, nil
		}
		return m.activate(card)
	}

	if m.focus == focusSidebar {
		switch msg.String() {
		case "up", "k":
			return m.selectSection(m.router.Prev().Current())
		case "down", "j":
			return m.selectSection(m.router.Next().Current())
		}
		return m, nil
	}

	updated, cmd := m.grid.Update(msg)
	m.grid = updated.(CardGridModel)
	return m, cmd
}

func (m AppModel) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.grid = m.grid.SetFilter("")
		return m, nil
	case "enter":
		m.filtering = false
		m.filter.Blur()
		if m.grid.Filter() == "" {
			return m, nil
		}
		if len(m.grid.Visible()) == 1 {
			return m.activate(m.grid.Visible()[0])
		}
		return m, nil
	case "up", "down":
		updated, cmd := m.grid.Update(msg)
		m.grid = updated.(CardGridModel)
		return m, cmd
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != m.grid.Filter() {
		m.grid = m.grid.SetFilter(m.filter.Value())
	}
	return m, cmd
}

// --- Navigation ---

// selectSection replaces the current view. Any open tool is closed.
func (m AppModel) selectSection(s router.Section) (AppModel, tea.Cmd) {
	m = m.closeModal()
	m.router = m.router.Select(s)
	m.sidebar = m.sidebar.WithCurrent(m.router.Current())
	m.filtering = false
	m.filter.Blur()
	m.filter.SetValue("")

	cards := hubCards()
	if sec, ok := m.router.Current().Catalog(); ok {
		cards = toolCards(catalog.InSection(sec))
	}
	m.grid = NewCardGridModel(cards)
	m = m.applyFocus().layout()
	return m, tea.SetWindowTitle(m.router.Title())
}

// activate opens a hub from the dashboard or a tool from a section.
func (m AppModel) activate(card Card) (tea.Model, tea.Cmd) {
	if m.router.Current() == router.Dashboard {
		s, err := router.ParseSection(card.ID)
		if err != nil {
			return m, nil
		}
		m.focus = focusMain
		return m.selectSection(s)
	}
	return m.openTool(card.ID)
}

func (m AppModel) openTool(id string) (tea.Model, tea.Cmd) {
	tool, ok := catalog.Lookup(id)
	if !ok {
		return m, nil
	}
	if m.deps.Client == nil {
		m.footer = m.footer.WithStatus("no generation backend configured", true)
		return m, nil
	}

	opts := m.deps.controllerOptions()
	if tool.Kind == catalog.KindImageEdit {
		ctrl := invocation.NewImageEdit(m.deps.Client, m.deps.Previews, opts...)
		m.modal = NewImageModal(m.sh.ctx, ctrl, m.deps.Previews, m.deps.OutputDir)
	} else {
		ctrl := invocation.NewText(tool, m.deps.Client, opts...)
		m.modal = NewTextModal(m.sh.ctx, ctrl, m.md)
	}
	m.router = m.router.Open(id)
	m.footer = m.footer.WithStatus("", false)
	pilog.Debug("tui: opened %s", id)

	m, sizeCmd := m.resizeModal()
	return m, tea.Batch(sizeCmd, m.modal.Init())
}

// closeModal closes the open tool, cancelling any in-flight call.
func (m AppModel) closeModal() AppModel {
	if m.modal != nil {
		m.modal.Controller().Close()
		pilog.Debug("tui: closed %s", m.modal.Controller().Tool().ID)
	}
	m.modal = nil
	m.router = m.router.Close()
	return m
}

// --- Layout ---

func (m AppModel) modalSize() (int, int) {
	return min(m.width-4, maxModalWidth), max(m.height-4, 8)
}

func (m AppModel) resizeModal() (AppModel, tea.Cmd) {
	if m.modal == nil {
		return m, nil
	}
	w, h := m.modalSize()
	updated, cmd := m.modal.Update(tea.WindowSizeMsg{Width: w, Height: h})
	m.modal = updated.(toolModal)
	return m, cmd
}

func (m AppModel) mainWidth() int {
	return max(m.width-sidebarWidth-2, cardWidth)
}

func (m AppModel) bodyHeight() int {
	return max(m.height-1-footerHeight, 4)
}

func (m AppModel) headingLines() []string {
	cur := m.router.Current()
	if cur == router.Dashboard {
		return []string{
			"Welcome to MindWeaver",
			"Choose a hub to begin. Press ? to learn more.",
		}
	}
	return append([]string{cur.String()}, width.WordWrap(cur.Description(), m.mainWidth())...)
}

func (m AppModel) layout() AppModel {
	gridH := m.bodyHeight() - len(m.headingLines()) - 1
	if m.router.Current() != router.Dashboard {
		gridH-- // filter line
	}
	m.filter.Width = max(m.mainWidth()-4, 10)
	m.grid = m.grid.SetSize(m.mainWidth(), max(gridH, 1))
	return m
}

func (m AppModel) applyFocus() AppModel {
	m.sidebar = m.sidebar.WithFocused(m.focus == focusSidebar)
	m.grid = m.grid.SetFocused(m.focus == focusMain)
	return m
}

func (m AppModel) hints() []string {
	switch {
	case m.filtering:
		return []string{"type to filter", "enter keep", "esc clear"}
	case m.router.Current() == router.Dashboard:
		return []string{"←↑↓→ move", "enter open hub", "1-5 jump", "tab sidebar", "? about", "q quit"}
	default:
		return []string{"←↑↓→ move", "enter open tool", "/ filter", "esc dashboard", "tab sidebar", "q quit"}
	}
}

// View renders the full TUI layout.
func (m AppModel) View() string {
	s := Styles()

	header := s.Header.Render(m.router.Title())

	side := lipgloss.NewStyle().
		Width(sidebarWidth).
		Height(m.bodyHeight()).
		Render(m.sidebar.View())

	var main []string
	for i, l := range m.headingLines() {
		if i == 0 {
			main = append(main, s.CardTitle.Render(l))
		} else {
			main = append(main, s.Muted.Render(l))
		}
	}
	if m.router.Current() != router.Dashboard {
		if m.filtering || m.grid.Filter() != "" {
			main = append(main, m.filter.View())
		} else {
			main = append(main, s.Dim.Render("press / to filter"))
		}
	}
	main = append(main, "", m.grid.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top, side, " ", lipgloss.JoinVertical(lipgloss.Left, main...))
	body = lipgloss.NewStyle().Height(m.bodyHeight()).MaxHeight(m.bodyHeight()).Render(body)

	view := lipgloss.JoinVertical(lipgloss.Left, header, body, m.footer.WithHints(m.hints()...).View())

	switch {
	case m.modal != nil:
		return overlayRender(view, m.modal.View(), m.width, m.height)
	case m.overlay != nil:
		return overlayRender(view, m.overlay.View(), m.width, m.height)
	}
	return view
}

// --- Cards ---

func hubCards() []Card {
	hubs := router.Hubs()
	cards := make([]Card, len(hubs))
	for i, h := range hubs {
		cards[i] = Card{ID: h.ID(), Title: h.String(), Description: h.Description(), Badge: h.Action() + " →"}
	}
	return cards
}

func toolCards(tools []catalog.Tool) []Card {
	cards := make([]Card, len(tools))
	for i, t := range tools {
		badge := "Generate →"
		if t.Kind == catalog.KindImageEdit {
			badge = "Edit image →"
		}
		cards[i] = Card{ID: t.ID, Title: t.Title, Description: t.Description, Badge: badge}
	}
	return cards
}
