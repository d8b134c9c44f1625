// ABOUTME: TextModal drives one text tool: input capture, generation, and markdown result display
// ABOUTME: Wraps an invocation.Controller; the call runs as a tea.Cmd and reports GenerationDoneMsg

package btea

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/mindweaver/internal/invocation"
	pilog "github.com/mauromedda/mindweaver/internal/log"
	"github.com/mauromedda/mindweaver/pkg/tui/width"
)

const inputHeight = 3

// toolModal is the dialog opened for a tool card.
type toolModal interface {
	tea.Model
	Controller() *invocation.Controller
}

// TextModal captures input for a text tool and shows the generated result.
type TextModal struct {
	ctx     context.Context
	ctrl    *invocation.Controller
	md      *MarkdownRenderer
	input   textarea.Model
	spinner spinner.Model
	output  viewport.Model

	// attempt whose result is loaded into output
	shown int

	width  int
	height int
}

var _ toolModal = TextModal{}

// NewTextModal creates a modal bound to ctrl. Calls run under ctx.
func NewTextModal(ctx context.Context, ctrl *invocation.Controller, md *MarkdownRenderer) TextModal {
	tool := ctrl.Tool()

	ta := textarea.New()
	ta.Placeholder = tool.Placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 8000
	ta.SetHeight(inputHeight)
	ta.KeyMap.InsertNewline.SetKeys("alt+enter", "ctrl+j")
	ta.Focus()

	return TextModal{
		ctx:     ctx,
		ctrl:    ctrl,
		md:      md,
		input:   ta,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(Styles().Accent)),
		output:  viewport.New(0, 0),
	}
}

// Controller returns the controller driving this modal.
func (m TextModal) Controller() *invocation.Controller { return m.ctrl }

// Init starts the cursor blink.
func (m TextModal) Init() tea.Cmd { return textarea.Blink }

// Update handles input keys, spinner ticks, and generation results.
func (m TextModal) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height), nil

	case GenerationDoneMsg:
		if msg.Ctrl != m.ctrl {
			return m, nil
		}
		return m.refreshOutput(), nil

	case spinner.TickMsg:
		if m.ctrl.State().Phase != invocation.PhaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, closeModal
		case "enter":
			return m.submit()
		case "pgup", "pgdown", "ctrl+u", "ctrl+d":
			var cmd tea.Cmd
			m.output, cmd = m.output.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.ctrl.SetInput(m.input.Value())
	return m, cmd
}

func (m TextModal) submit() (TextModal, tea.Cmd) {
	call, err := m.ctrl.Submit(m.input.Value())
	switch {
	case errors.Is(err, invocation.ErrBusy):
		return m, nil
	case err != nil:
		pilog.Debug("tui: %s submit rejected: %v", m.ctrl.Tool().ID, err)
		return m.refreshOutput(), nil
	}
	return m.refreshOutput(), tea.Batch(m.spinner.Tick, runCall(m.ctx, m.ctrl, call))
}

// runCall performs the invocation off the Update loop.
func runCall(ctx context.Context, ctrl *invocation.Controller, call invocation.Call) tea.Cmd {
	return func() tea.Msg {
		return GenerationDoneMsg{Ctrl: ctrl, State: call(ctx)}
	}
}

func closeModal() tea.Msg { return CloseModalMsg{} }

func (m TextModal) innerWidth() int {
	return max(m.width-4, 10)
}

func (m TextModal) resize(w, h int) TextModal {
	m.width, m.height = w, h
	m.input.SetWidth(m.innerWidth())
	m.output.Width = m.innerWidth()
	m.output.Height = max(h-m.headerHeight()-inputHeight-5, 3)
	m.shown = 0
	return m.refreshOutput()
}

func (m TextModal) headerLines() []string {
	return width.WordWrap(m.ctrl.Tool().Description, m.innerWidth())
}

func (m TextModal) headerHeight() int {
	return 1 + len(m.headerLines())
}

// refreshOutput loads a new successful result into the viewport.
func (m TextModal) refreshOutput() TextModal {
	st := m.ctrl.State()
	if st.Phase != invocation.PhaseSuccess || st.Result == nil || st.Attempt == m.shown {
		return m
	}
	m.output.SetContent(m.md.Render(st.Result.Text, m.output.Width))
	m.output.GotoTop()
	m.shown = st.Attempt
	return m
}

// View renders the modal body inside a rounded frame.
func (m TextModal) View() string {
	s := Styles()
	tool := m.ctrl.Tool()
	st := m.ctrl.State()

	parts := []string{s.OverlayTitle.Render(tool.Title)}
	for _, l := range m.headerLines() {
		parts = append(parts, s.Muted.Render(l))
	}
	parts = append(parts, "", m.input.View(), "")

	switch st.Phase {
	case invocation.PhaseIdle:
		parts = append(parts, s.Dim.Render("Describe your request and press enter."))
	case invocation.PhaseLoading:
		parts = append(parts, m.spinner.View()+" "+s.Accent.Render("Weaving your result…"))
	case invocation.PhaseError:
		for _, l := range width.WordWrap(st.Err, m.innerWidth()) {
			parts = append(parts, s.Error.Render(l))
		}
	case invocation.PhaseSuccess:
		parts = append(parts, m.output.View())
	}

	hint := "enter generate · alt+enter newline · esc close"
	if st.Phase == invocation.PhaseSuccess {
		hint = "enter regenerate · pgup/pgdn scroll · esc close"
	}
	parts = append(parts, "", s.Dim.Render(hint))

	return s.Modal.Width(max(m.width-2, 12)).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
