package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/ptable/internal/grid"
	"github.com/five82/ptable/internal/state"
)

// renderGrid draws the 10x18 table. Hidden cells keep their place as dimmed
// placeholders so the geometry never shifts.
func (m Model) renderGrid() string {
	styles := m.theme.Styles()
	bg := newFill(m.theme.Background)

	views := m.ctrl.View()
	lines := make([]string, 0, gridHeight())
	for r := 0; r < grid.Rows; r++ {
		if r == breakoutRow {
			for i := 0; i < breakoutGap; i++ {
				lines = append(lines, "")
			}
		}
		top, bottom := bg.row(), bg.row()
		for c := 0; c < grid.Columns; c++ {
			pos, ok := m.boundPos[r*grid.Columns+c]
			if !ok {
				top.skip()
				bottom.skip()
				continue
			}
			upper, lower := m.renderCell(views[pos], styles)
			top.add(upper)
			bottom.add(lower)
		}
		lines = append(lines, top.String(), bottom.String())
	}
	return strings.Join(lines, "\n")
}

// renderCell returns the two lines of one bound cell.
func (m Model) renderCell(v state.CellView, styles Styles) (string, string) {
	el, _ := v.Cell.Element()
	number := center(strconv.Itoa(el.AtomicNumber), cellWidth)
	symbol := center(el.Symbol, cellWidth)

	var style lipgloss.Style
	switch {
	case v.Visible() && v.Focused:
		style = styles.Selected
	case v.Visible():
		style = styles.CategoryStyle(el.Category)
	case v.Focused:
		style = styles.HiddenFocused
	default:
		style = styles.Hidden
	}
	style = style.Width(cellWidth)
	return style.Render(number), style.Bold(true).Render(symbol)
}

// renderLegend lists the category colors below the grid.
func (m Model) renderLegend() string {
	styles := m.theme.Styles()
	bg := newFill(m.theme.Background)
	active := m.ctrl.Filter().Category

	parts := make([]string, 0, len(m.categories))
	for _, c := range m.categories {
		swatch := lipgloss.NewStyle().
			Background(lipgloss.Color(styles.CategoryColor(c.tag))).
			Render("  ")
		label := styles.MutedText
		if c.tag == active {
			label = styles.Text.Bold(true)
		}
		parts = append(parts, swatch+bg.blank(1)+bg.text(c.label, label))
	}

	// Two rows keep the legend inside the grid width.
	half := (len(parts) + 1) / 2
	first := bg.blank(gridLeft) + bg.join(parts[:half], "  ")
	second := bg.blank(gridLeft) + bg.join(parts[half:], "  ")
	return first + "\n" + second
}
