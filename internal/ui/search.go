package ui

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/ptable/internal/state"
)

const (
	searchRow    = 1
	searchLabel  = " Search "
	clearMarker  = "[x] clear"
	clearSpacing = 2
)

func newSearchInput(theme Theme) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "symbol, name or number"
	ti.Prompt = "/ "
	ti.CharLimit = 32
	ti.Width = 24
	applySearchTheme(&ti, theme)
	return ti
}

func applySearchTheme(ti *textinput.Model, theme Theme) {
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Text))
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Faint))
}

// focusSearch hands input to the search field.
func (m *Model) focusSearch() tea.Cmd {
	m.ctrl.SetInput(state.InputSearch)
	return m.search.Focus()
}

// blurSearch returns input to the grid, keeping the term.
func (m *Model) blurSearch() {
	m.search.Blur()
	m.ctrl.SetInput(state.InputGrid)
}

// clearSearch empties the field and focuses it.
func (m *Model) clearSearch() tea.Cmd {
	m.search.SetValue("")
	m.applySearch()
	m.ctrl.ClearSearch()
	return m.search.Focus()
}

// applySearch re-filters the grid with the field's current value.
func (m *Model) applySearch() {
	term := state.NormalizeTerm(m.search.Value())
	if term == m.ctrl.Filter().Term {
		return
	}
	before := m.ctrl.View()
	m.ctrl.ApplySearch(term)
	changed := state.Diff(before, m.ctrl.View())
	log.Printf("search %q: %d visible, %d cells changed", term, m.ctrl.VisibleCount(), len(changed))
}

// handleSearchKey processes keyboard input while the search field has focus.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+f":
		// Already focused; the accelerator is consumed.
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		m.blurSearch()
		return m, nil
	case key.Matches(msg, m.keys.Escape):
		if m.search.Value() != "" {
			return m, m.clearSearch()
		}
		m.blurSearch()
		return m, nil
	case key.Matches(msg, m.keys.ClearSearch):
		return m, m.clearSearch()
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.applySearch()
	return m, cmd
}

// searchPrefix is everything on the search line left of the clear marker.
func (m Model) searchPrefix() string {
	styles := m.theme.Styles()
	label := styles.MutedText
	if m.ctrl.Input() == state.InputSearch {
		label = styles.AccentText.Bold(true)
	}
	return label.Render(searchLabel) + m.search.View()
}

// clearMarkerRect locates the clickable clear marker on screen.
func (m Model) clearMarkerRect() (rect, bool) {
	if !m.ctrl.ClearVisible() {
		return rect{}, false
	}
	return rect{
		x: lipgloss.Width(m.searchPrefix()) + clearSpacing,
		y: searchRow,
		w: lipgloss.Width(clearMarker),
		h: 1,
	}, true
}

// renderSearch renders the search line.
func (m Model) renderSearch() string {
	line := m.searchPrefix()
	if m.ctrl.ClearVisible() {
		styles := m.theme.Styles()
		line += strings.Repeat(" ", clearSpacing) + styles.WarningText.Render(clearMarker)
	}
	return line
}
