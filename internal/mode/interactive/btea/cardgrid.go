// ABOUTME: CardGridModel is a Bubble Tea leaf laying out cards in a filterable grid
// ABOUTME: Arrow keys move across columns and rows; fuzzy filter highlights matched title runes

package btea

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/mindweaver/pkg/tui/fuzzy"
	"github.com/mauromedda/mindweaver/pkg/tui/width"
)

const (
	cardWidth      = 36 // outer width including border
	cardGap        = 1
	cardDescLines  = 3
	cardInnerWidth = cardWidth - 4
)

// Card is one entry of a card grid.
type Card struct {
	ID          string
	Title       string
	Description string
	Badge       string
}

// cardSource matches on "title description".
type cardSource []Card

func (s cardSource) String(i int) string { return s[i].Title + " " + s[i].Description }
func (s cardSource) Len() int            { return len(s) }

// CardGridModel renders cards in as many columns as the width allows.
// Implements tea.Model with value semantics.
type CardGridModel struct {
	cards    []Card
	visible  []Card
	matched  [][]int // parallel to visible
	filter   string
	selected int
	width    int
	height   int
	focused  bool
}

// NewCardGridModel creates a grid showing all cards.
func NewCardGridModel(cards []Card) CardGridModel {
	m := CardGridModel{cards: cards}
	m.applyFilter()
	return m
}

// Init returns nil; no commands needed.
func (m CardGridModel) Init() tea.Cmd { return nil }

// Update moves the selection with arrow or vim keys.
func (m CardGridModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || len(m.visible) == 0 {
		return m, nil
	}
	cols := m.columns()
	switch key.String() {
	case "left", "h":
		if m.selected > 0 {
			m.selected--
		}
	case "right", "l":
		if m.selected < len(m.visible)-1 {
			m.selected++
		}
	case "up", "k":
		if m.selected-cols >= 0 {
			m.selected -= cols
		}
	case "down", "j":
		if m.selected+cols < len(m.visible) {
			m.selected += cols
		}
	case "home", "g":
		m.selected = 0
	case "end", "G":
		m.selected = len(m.visible) - 1
	}
	return m, nil
}

// SetSize sets the area the grid may draw into.
func (m CardGridModel) SetSize(w, h int) CardGridModel {
	m.width, m.height = w, h
	return m
}

// SetFocused toggles the selection highlight.
func (m CardGridModel) SetFocused(f bool) CardGridModel {
	m.focused = f
	return m
}

// SetFilter narrows the grid to cards fuzzy-matching f and resets the selection.
func (m CardGridModel) SetFilter(f string) CardGridModel {
	m.filter = f
	m.selected = 0
	m.applyFilter()
	return m
}

// Filter returns the active filter.
func (m CardGridModel) Filter() string { return m.filter }

// Visible returns the cards currently shown.
func (m CardGridModel) Visible() []Card { return m.visible }

// Selected returns the highlighted card.
func (m CardGridModel) Selected() (Card, bool) {
	if len(m.visible) == 0 {
		return Card{}, false
	}
	return m.visible[m.selected], true
}

func (m *CardGridModel) applyFilter() {
	if m.filter == "" {
		m.visible = m.cards
		m.matched = make([][]int, len(m.cards))
		return
	}
	matches := fuzzy.FindFrom(m.filter, cardSource(m.cards))
	m.visible = make([]Card, len(matches))
	m.matched = make([][]int, len(matches))
	for i, match := range matches {
		m.visible[i] = m.cards[match.Index]
		m.matched[i] = match.MatchedIndexes
	}
}

func (m CardGridModel) columns() int {
	if m.width <= 0 {
		return 1
	}
	return max(1, (m.width+cardGap)/(cardWidth+cardGap))
}

// View renders the grid, scrolled so the selected row is visible.
func (m CardGridModel) View() string {
	s := Styles()
	if len(m.visible) == 0 {
		return s.Muted.Render("  No tools match \"" + m.filter + "\".")
	}

	cols := m.columns()
	var rows []string
	for start := 0; start < len(m.visible); start += cols {
		end := min(start+cols, len(m.visible))
		cells := make([]string, 0, (end-start)*2)
		for i := start; i < end; i++ {
			if i > start {
				cells = append(cells, strings.Repeat(" ", cardGap))
			}
			cells = append(cells, m.renderCard(s, i))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	// Every card has the same height, so rows scroll as whole units.
	rowHeight := lipgloss.Height(rows[0])
	fit := len(rows)
	if m.height > 0 {
		fit = max(1, m.height/rowHeight)
	}
	cursorRow := m.selected / cols
	first := max(0, cursorRow-fit+1)
	last := min(len(rows), first+fit)
	return strings.Join(rows[first:last], "\n")
}

func (m CardGridModel) renderCard(s ThemeStyles, i int) string {
	c := m.visible[i]

	title := width.TruncateToWidth(c.Title, cardInnerWidth)
	if len(m.matched[i]) > 0 && title == c.Title {
		title = fuzzy.Highlight(title, m.matched[i], len(c.Title), func(r string) string {
			return s.Highlight.Render(r)
		})
	}

	desc := width.WordWrap(c.Description, cardInnerWidth)
	if len(desc) > cardDescLines {
		desc = desc[:cardDescLines]
		desc[cardDescLines-1] = width.TruncateToWidth(desc[cardDescLines-1]+" …", cardInnerWidth)
	}
	for len(desc) < cardDescLines {
		desc = append(desc, "")
	}

	lines := []string{s.CardTitle.Render(title)}
	for _, d := range desc {
		lines = append(lines, s.Muted.Render(d))
	}
	lines = append(lines, s.Badge.Render(c.Badge))

	style := s.Card
	if m.focused && i == m.selected {
		style = s.CardSelected
	}
	return style.Width(cardWidth - 2).Render(strings.Join(lines, "\n"))
}
