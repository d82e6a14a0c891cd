package ui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/ptable/internal/catalog"
	"github.com/five82/ptable/internal/grid"
	"github.com/five82/ptable/internal/state"
)

// categoryOption is one row of the category picker and the legend.
type categoryOption struct {
	tag   catalog.Category
	label string
	count int
}

// buildCategoryOptions counts bound cells per category in display order.
func buildCategoryOptions(cells []grid.Cell) []categoryOption {
	counts := make(map[catalog.Category]int)
	for _, cell := range cells {
		counts[cell.Category()]++
	}
	cats := catalog.Categories()
	out := make([]categoryOption, 0, len(cats))
	for _, c := range cats {
		out = append(out, categoryOption{tag: c, label: catalog.Label(c), count: counts[c]})
	}
	return out
}

// pickerOptions returns the picker rows: All followed by every category.
func (m Model) pickerOptions() []categoryOption {
	out := make([]categoryOption, 0, len(m.categories)+1)
	out = append(out, categoryOption{
		tag:   catalog.CategoryAll,
		label: catalog.Label(catalog.CategoryAll),
		count: len(m.ctrl.Cells()),
	})
	return append(out, m.categories...)
}

// openPicker hands input to the category picker with the cursor on the
// active category.
func (m *Model) openPicker() {
	m.search.Blur()
	m.ctrl.SetInput(state.InputCategoryPicker)
	m.pickerCursor = 0
	for i, opt := range m.pickerOptions() {
		if opt.tag == m.ctrl.Filter().Category {
			m.pickerCursor = i
			break
		}
	}
}

// closePicker returns input to the grid.
func (m *Model) closePicker() {
	m.ctrl.SetInput(state.InputGrid)
}

// setCategory applies a category filter and logs the visibility change.
func (m *Model) setCategory(c catalog.Category) {
	before := m.ctrl.View()
	m.ctrl.ApplyCategory(c)
	changed := state.Diff(before, m.ctrl.View())
	log.Printf("category %s: %d visible, %d cells changed", c, m.ctrl.VisibleCount(), len(changed))
}

// handlePickerKey processes keyboard input while the picker holds focus.
func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	options := m.pickerOptions()
	switch {
	case key.Matches(msg, m.keys.Escape), msg.String() == "c", msg.String() == "q":
		m.closePicker()
	case key.Matches(msg, m.keys.Confirm):
		m.setCategory(options[m.pickerCursor].tag)
		m.closePicker()
	case key.Matches(msg, m.keys.Down):
		if m.pickerCursor < len(options)-1 {
			m.pickerCursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.pickerCursor > 0 {
			m.pickerCursor--
		}
	case msg.String() == "g", msg.String() == "home":
		m.pickerCursor = 0
	case msg.String() == "G", msg.String() == "end":
		m.pickerCursor = len(options) - 1
	}
	return m, nil
}

// renderPickerBox renders the picker overlay box without placement.
func (m Model) renderPickerBox() string {
	styles := m.theme.Styles()
	active := m.ctrl.Filter().Category

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Category"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n")

	for i, opt := range m.pickerOptions() {
		marker := "  "
		if opt.tag == active {
			marker = "● "
		}
		swatch := "  "
		if opt.tag != catalog.CategoryAll {
			swatch = lipgloss.NewStyle().
				Background(lipgloss.Color(styles.CategoryColor(opt.tag))).
				Render("  ")
		}
		row := fmt.Sprintf("%s%s", marker, padRight(opt.label, 24))
		count := fmt.Sprintf("%3d", opt.count)
		if i == m.pickerCursor {
			b.WriteString(styles.Selected.Render(row))
		} else {
			b.WriteString(styles.Text.Render(row))
		}
		b.WriteString(" " + swatch + " ")
		b.WriteString(styles.MutedText.Render(count))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("Enter: Apply  •  Esc: Cancel"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Render(b.String())
}
