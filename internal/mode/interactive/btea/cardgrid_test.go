// ABOUTME: Tests for CardGridModel: column layout, grid navigation, filtering, and scrolling
// ABOUTME: Table-driven key sequences over a fixed six-card grid

package btea

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/mindweaver/pkg/tui/width"
)

var _ tea.Model = CardGridModel{}

func sixCards() []Card {
	titles := []string{"Image Editor", "Video Script", "Music Composer", "Story Writer", "UI Mockup", "3D Model"}
	cards := make([]Card, len(titles))
	for i, title := range titles {
		cards[i] = Card{ID: fmt.Sprintf("c%d", i), Title: title, Description: "Does " + strings.ToLower(title) + " things.", Badge: "Generate →"}
	}
	return cards
}

func TestCardGrid_Columns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		width int
		want  int
	}{
		{0, 1},
		{20, 1},
		{cardWidth, 1},
		{2*cardWidth + cardGap, 2},
		{3*cardWidth + 2*cardGap, 3},
	}
	for _, tt := range tests {
		m := NewCardGridModel(sixCards()).SetSize(tt.width, 40)
		if got := m.columns(); got != tt.want {
			t.Errorf("columns(width=%d) = %d; want %d", tt.width, got, tt.want)
		}
	}
}

func TestCardGrid_Navigation(t *testing.T) {
	t.Parallel()

	// Three columns: rows are [0 1 2] [3 4 5].
	base := NewCardGridModel(sixCards()).SetSize(3*cardWidth+2*cardGap, 40)

	tests := []struct {
		name string
		keys []tea.KeyMsg
		want int
	}{
		{"right", []tea.KeyMsg{{Type: tea.KeyRight}}, 1},
		{"down", []tea.KeyMsg{{Type: tea.KeyDown}}, 3},
		{"down then up", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyUp}}, 0},
		{"left at start", []tea.KeyMsg{{Type: tea.KeyLeft}}, 0},
		{"down past end stays", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}}, 3},
		{"vim keys", []tea.KeyMsg{key("l"), key("l"), key("j")}, 5},
		{"end", []tea.KeyMsg{{Type: tea.KeyEnd}}, 5},
		{"end then home", []tea.KeyMsg{{Type: tea.KeyEnd}, {Type: tea.KeyHome}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := base
			for _, k := range tt.keys {
				updated, _ := m.Update(k)
				m = updated.(CardGridModel)
			}
			if m.selected != tt.want {
				t.Errorf("selected = %d; want %d", m.selected, tt.want)
			}
		})
	}
}

func TestCardGrid_Filter(t *testing.T) {
	t.Parallel()

	m := NewCardGridModel(sixCards())
	m = m.SetFilter("music")

	vis := m.Visible()
	if len(vis) == 0 || vis[0].Title != "Music Composer" {
		t.Fatalf("visible = %+v; want Music Composer first", vis)
	}
	if c, ok := m.Selected(); !ok || c.Title != "Music Composer" {
		t.Errorf("Selected() = %+v, %v", c, ok)
	}

	m = m.SetFilter("")
	if len(m.Visible()) != 6 {
		t.Errorf("clearing the filter should show all cards, got %d", len(m.Visible()))
	}
}

func TestCardGrid_EmptyResult(t *testing.T) {
	t.Parallel()

	m := NewCardGridModel(sixCards()).SetFilter("qqqq")
	if _, ok := m.Selected(); ok {
		t.Error("Selected() should report nothing")
	}
	if !strings.Contains(m.View(), `No tools match "qqqq"`) {
		t.Errorf("View() = %q", m.View())
	}
}

func TestCardGrid_ViewFitsWidthAndScrolls(t *testing.T) {
	t.Parallel()

	w := 2*cardWidth + cardGap
	m := NewCardGridModel(sixCards()).SetSize(w, 7).SetFocused(true)

	view := m.View()
	for _, line := range strings.Split(view, "\n") {
		if got := width.VisibleWidth(line); got > w {
			t.Errorf("line width %d exceeds %d: %q", got, w, line)
		}
	}
	if !strings.Contains(view, "Image Editor") || strings.Contains(view, "UI Mockup") {
		t.Error("only the first row should be visible")
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	view = updated.(CardGridModel).View()
	if !strings.Contains(view, "UI Mockup") || strings.Contains(view, "Image Editor") {
		t.Error("grid should scroll to the selected row")
	}
}
