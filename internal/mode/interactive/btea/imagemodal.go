// ABOUTME: ImageModal drives the image editor: pick an image, describe the edit, preview and save
// ABOUTME: Source previews come from the shared PreviewCache; results render as half-block art

package btea

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/mindweaver/internal/invocation"
	pilog "github.com/mauromedda/mindweaver/internal/log"
	"github.com/mauromedda/mindweaver/pkg/ai"
	"github.com/mauromedda/mindweaver/pkg/tui/image"
	"github.com/mauromedda/mindweaver/pkg/tui/width"
)

type imageField int

const (
	fieldSource imageField = iota
	fieldPrompt
)

// ImageModal edits one image with a text prompt.
type ImageModal struct {
	ctx       context.Context
	ctrl      *invocation.Controller
	previews  *image.PreviewCache
	outputDir string

	source  textinput.Model
	prompt  textinput.Model
	field   imageField
	spinner spinner.Model

	loading bool   // reading the source image
	notice  string // load or save outcome
	failed  bool

	result      ImageViewModel
	resultShown int // attempt rendered into result

	width  int
	height int
}

var _ toolModal = ImageModal{}

// NewImageModal creates the editor modal bound to ctrl.
func NewImageModal(ctx context.Context, ctrl *invocation.Controller, previews *image.PreviewCache, outputDir string) ImageModal {
	src := textinput.New()
	src.Prompt = "Image: "
	src.Placeholder = "path or https:// URL of a PNG, JPEG, GIF or WebP"
	src.Focus()

	p := textinput.New()
	p.Prompt = "Edit:  "
	p.Placeholder = ctrl.Tool().Placeholder
	p.CharLimit = 2000

	return ImageModal{
		ctx:       ctx,
		ctrl:      ctrl,
		previews:  previews,
		outputDir: outputDir,
		source:    src,
		prompt:    p,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(Styles().Accent)),
	}
}

// Controller returns the controller driving this modal.
func (m ImageModal) Controller() *invocation.Controller { return m.ctrl }

// Init starts the cursor blink.
func (m ImageModal) Init() tea.Cmd { return textinput.Blink }

// Update handles field editing, image loading, generation, and saving.
func (m ImageModal) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.source.Width = max(m.innerWidth()-10, 10)
		m.prompt.Width = max(m.innerWidth()-10, 10)
		m.resultShown = 0
		return m.refreshResult(), nil

	case ImageLoadedMsg:
		if msg.Ctrl != m.ctrl {
			return m, nil
		}
		m.loading = false
		if msg.Err == nil {
			msg.Err = m.ctrl.SelectImage(msg.Asset)
		}
		if msg.Err != nil {
			m.notice, m.failed = msg.Err.Error(), true
			return m, nil
		}
		m.notice, m.failed = "", false
		m.result = ImageViewModel{}
		return m.focus(fieldPrompt), nil

	case GenerationDoneMsg:
		if msg.Ctrl != m.ctrl {
			return m, nil
		}
		return m.refreshResult(), nil

	case ImageSavedMsg:
		if msg.Err != nil {
			m.notice, m.failed = msg.Err.Error(), true
		} else {
			m.notice, m.failed = "Saved "+msg.Path, false
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading && m.ctrl.State().Phase != invocation.PhaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, closeModal
		case "tab", "shift+tab":
			if m.field == fieldSource {
				return m.focus(fieldPrompt), nil
			}
			return m.focus(fieldSource), nil
		case "ctrl+r":
			m.prompt.SetValue(m.ctrl.Suggest())
			m.prompt.CursorEnd()
			return m.focus(fieldPrompt), nil
		case "ctrl+o":
			m.source.SetValue("")
			return m.focus(fieldSource), nil
		case "ctrl+s":
			return m.save()
		case "enter":
			if m.field == fieldSource {
				return m.load()
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	if m.field == fieldSource {
		m.source, cmd = m.source.Update(msg)
	} else {
		m.prompt, cmd = m.prompt.Update(msg)
		m.ctrl.SetInput(m.prompt.Value())
	}
	return m, cmd
}

func (m ImageModal) focus(f imageField) ImageModal {
	m.field = f
	if f == fieldSource {
		m.prompt.Blur()
		m.source.Focus()
	} else {
		m.source.Blur()
		m.prompt.Focus()
	}
	return m
}

func (m ImageModal) load() (ImageModal, tea.Cmd) {
	src := strings.TrimSpace(m.source.Value())
	if src == "" || m.loading {
		return m, nil
	}
	if m.ctrl.State().Phase == invocation.PhaseLoading {
		m.notice, m.failed = "Wait for the current edit to finish.", true
		return m, nil
	}
	m.loading = true
	m.notice = ""
	return m, tea.Batch(m.spinner.Tick, loadImageCmd(m.ctx, m.ctrl, src))
}

// loadImageCmd reads source and shrinks it to the upload limit.
func loadImageCmd(ctx context.Context, ctrl *invocation.Controller, source string) tea.Cmd {
	return func() tea.Msg {
		img, name, err := ai.LoadImage(ctx, source)
		if err != nil {
			return ImageLoadedMsg{Ctrl: ctrl, Err: err}
		}
		data, mime, err := image.Downscale(img.Data, img.MIMEType, image.DefaultMaxDimension)
		if err != nil {
			return ImageLoadedMsg{Ctrl: ctrl, Err: err}
		}
		return ImageLoadedMsg{Ctrl: ctrl, Asset: invocation.Asset{Name: name, MIMEType: mime, Data: data}}
	}
}

func (m ImageModal) submit() (ImageModal, tea.Cmd) {
	call, err := m.ctrl.Submit(m.prompt.Value())
	switch {
	case errors.Is(err, invocation.ErrBusy):
		return m, nil
	case err != nil:
		pilog.Debug("tui: image edit rejected: %v", err)
		return m, nil
	}
	m.notice = ""
	m.result = ImageViewModel{}
	return m, tea.Batch(m.spinner.Tick, runCall(m.ctx, m.ctrl, call))
}

func (m ImageModal) save() (ImageModal, tea.Cmd) {
	st := m.ctrl.State()
	asset, ok := m.ctrl.Asset()
	if st.Phase != invocation.PhaseSuccess || !st.Result.IsImage() || !ok {
		return m, nil
	}
	dir, img := m.outputDir, *st.Result.Image
	return m, func() tea.Msg {
		path, err := ai.SaveEdited(dir, asset.Name, img)
		return ImageSavedMsg{Path: path, Err: err}
	}
}

func (m ImageModal) innerWidth() int {
	return max(m.width-4, 20)
}

// panelSize returns the cell size of each of the two preview panels.
func (m ImageModal) panelSize() (int, int) {
	cols := max((m.innerWidth()-3)/2, 8)
	rows := max(m.height-12, 4)
	return cols, rows
}

func (m ImageModal) refreshResult() ImageModal {
	st := m.ctrl.State()
	if st.Phase != invocation.PhaseSuccess || !st.Result.IsImage() || st.Attempt == m.resultShown {
		return m
	}
	cols, rows := m.panelSize()
	m.result = NewImageViewModel(st.Result.Image.Data, st.Result.Image.MIMEType, cols, rows)
	m.resultShown = st.Attempt
	return m
}

// View renders inputs, the side-by-side previews, and status.
func (m ImageModal) View() string {
	s := Styles()
	st := m.ctrl.State()
	cols, rows := m.panelSize()

	parts := []string{
		s.OverlayTitle.Render(m.ctrl.Tool().Title),
		s.Muted.Render(width.TruncateToWidth(m.ctrl.Tool().Description, m.innerWidth())),
		"",
		m.source.View(),
		m.prompt.View(),
		"",
	}

	original := s.Muted.Render("No image selected")
	if asset, ok := m.ctrl.Asset(); ok {
		lines := m.previews.Lines(asset.PreviewRef, cols, rows)
		if len(lines) > 0 {
			original = strings.Join(lines, "\n")
		}
		original = s.Bold.Render(width.TruncateToWidth(asset.Name, cols)) + "\n" + original
	}

	var edited string
	switch {
	case m.loading:
		edited = m.spinner.View() + " Loading image…"
	case st.Phase == invocation.PhaseLoading:
		edited = m.spinner.View() + " " + s.Accent.Render("Editing…")
	case st.Phase == invocation.PhaseError:
		edited = s.Error.Render(strings.Join(width.WordWrap(st.Err, cols), "\n"))
	case st.Phase == invocation.PhaseSuccess && !m.result.Empty():
		edited = s.Bold.Render("Edited") + "\n" + m.result.View()
	case st.Phase == invocation.PhaseSuccess && st.Result != nil:
		edited = strings.Join(width.WordWrap(st.Result.Text, cols), "\n")
	default:
		edited = s.Muted.Render("Your edited image will appear here")
	}

	panel := lipgloss.NewStyle().Width(cols)
	parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top,
		panel.Render(original), "   ", panel.Render(edited)))

	if m.notice != "" {
		style := s.Success
		if m.failed {
			style = s.Error
		}
		parts = append(parts, "", style.Render(width.TruncateToWidth(m.notice, m.innerWidth())))
	}

	hint := "tab switch field · enter load/edit · ctrl+r inspire me · ctrl+o change image · esc close"
	if st.Phase == invocation.PhaseSuccess {
		hint = "ctrl+s save · " + hint
	}
	parts = append(parts, "", s.Dim.Render(width.TruncateToWidth(hint, m.innerWidth())))

	return s.Modal.Width(max(m.width-2, 22)).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
