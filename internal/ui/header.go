package ui

import (
	"fmt"

	"github.com/five82/ptable/internal/catalog"
)

// renderHeader renders the top line: logo, match count and active filters.
// It always occupies exactly one screen line.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := newFill(m.theme.Surface)

	total := len(m.ctrl.Cells())
	visible := m.ctrl.VisibleCount()
	filter := m.ctrl.Filter()

	countStyle := styles.Text
	if visible == 0 {
		countStyle = styles.DangerText
	} else if filter.Active() {
		countStyle = styles.WarningText
	}

	parts := []string{
		bg.text("ptable", styles.Logo),
		bg.text(fmt.Sprintf("%d/%d elements", visible, total), countStyle),
		bg.text("Category: "+catalog.Label(filter.Category), styles.MutedText),
	}
	if filter.Term != "" {
		parts = append(parts, bg.text(fmt.Sprintf("Search: %q", filter.Term), styles.AccentText))
	}
	parts = append(parts, bg.text("Theme: "+m.theme.Name, styles.FaintText))

	line := bg.blank(1) + bg.join(parts, " · ")
	return bg.line(line, m.width)
}

// renderStatus renders the line between the search field and the grid.
func (m Model) renderStatus() string {
	styles := m.theme.Styles()
	if m.ctrl.VisibleCount() == 0 {
		return styles.DangerText.Render(" No elements match the current filters")
	}
	if !m.ctrl.Modal().Open && m.status != "" {
		if m.statusErr {
			return styles.DangerText.Render(" " + m.status)
		}
		return styles.SuccessText.Render(" " + m.status)
	}
	return ""
}
