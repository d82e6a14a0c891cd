package ui

import (
	"fmt"
	"log"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/ptable/internal/catalog"
)

const (
	detailWidth = 56
	// border plus horizontal padding on each side
	detailInsetX = 3
	// content columns inside the border and padding
	detailContentWidth = detailWidth - 4
)

// clipboardWrite is swapped out in tests.
var clipboardWrite = clipboard.WriteAll

// clipboardMsg reports the outcome of a copy.
type clipboardMsg struct {
	symbol string
	err    error
}

func copyCmd(el catalog.Element) tea.Cmd {
	summary := el.Summary()
	return func() tea.Msg {
		return clipboardMsg{symbol: el.Symbol, err: clipboardWrite(summary)}
	}
}

// openCell opens the detail overlay for the bound cell at position pos.
func (m *Model) openCell(pos int) {
	m.ctrl.FocusCell(pos)
	if m.ctrl.OpenFocused() {
		m.status = ""
		if el, ok := m.ctrl.Modal().Element(); ok {
			log.Printf("detail open: %s", el.Symbol)
		}
	}
}

// closeDetail hides the overlay and reports why.
func (m *Model) closeDetail(reason string) {
	if !m.ctrl.Modal().Open {
		return
	}
	m.ctrl.Close()
	m.status = ""
	log.Printf("detail close: %s", reason)
}

// handleDetailKey processes keys while the overlay holds focus. Everything
// other than dismiss and copy is swallowed.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Copy):
		el, ok := m.ctrl.Modal().Element()
		if !ok {
			return m, nil
		}
		return m, copyCmd(el)
	case key.Matches(msg, m.keys.Close):
		m.closeDetail(msg.String())
	}
	return m, nil
}

// handleClipboard records the result of a copy in the status line.
func (m Model) handleClipboard(msg clipboardMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		log.Printf("clipboard copy %s failed: %v", msg.symbol, msg.err)
		m.status = "Copy failed: " + msg.err.Error()
		m.statusErr = true
		return m, nil
	}
	m.status = fmt.Sprintf("Copied %s to clipboard", msg.symbol)
	m.statusErr = false
	return m, nil
}

// renderDetailBox renders the overlay box for the open element.
func (m Model) renderDetailBox() string {
	styles := m.theme.Styles()
	el, _ := m.ctrl.Modal().Element()

	var b strings.Builder

	badge := styles.CategoryStyle(el.Category).
		Bold(true).
		Padding(0, 1).
		Render(el.Symbol)
	b.WriteString(badge + "  " + styles.Text.Bold(true).Render(el.Name))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", detailContentWidth)))
	b.WriteString("\n")

	rows := []struct {
		label string
		value string
	}{
		{"Atomic Number: ", fmt.Sprintf("%d", el.AtomicNumber)},
		{"Atomic Mass: ", orDash(el.AtomicMass)},
		{"Category: ", catalog.Label(el.Category)},
		{"Electron Configuration: ", orDash(el.ElectronConfig)},
		{"Phase: ", el.Phase.Title()},
		{"Discovered: ", orDash(el.Discovered)},
	}
	for _, row := range rows {
		b.WriteString(detailRow(row.label, row.value, styles))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.status == "":
	case m.statusErr:
		b.WriteString(styles.DangerText.Render(truncate(m.status, detailContentWidth)))
	default:
		b.WriteString(styles.SuccessText.Render(m.status))
	}
	b.WriteString("\n")

	b.WriteString(closeButton(styles) + "  " + styles.FaintText.Render("y: Copy  •  Esc: Close"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Padding(1, 2).
		Width(detailWidth).
		Render(b.String())
}

// detailRow renders a labelled field. Values too long for one line wrap
// under the value column.
func detailRow(label, value string, styles Styles) string {
	indent := lipgloss.Width(label)
	body := styles.Text.Width(detailContentWidth - indent).Render(value)
	lines := strings.Split(body, "\n")
	pad := strings.Repeat(" ", indent)
	for i := 1; i < len(lines); i++ {
		lines[i] = pad + lines[i]
	}
	return styles.MutedText.Render(label) + strings.Join(lines, "\n")
}

func closeButton(styles Styles) string {
	return styles.Selected.Padding(0, 1).Render("Close")
}

// closeButtonRect locates the Close button of a placed detail box.
func (m Model) closeButtonRect(box rect) rect {
	return rect{
		x: box.x + detailInsetX,
		// border and padding below the last content line
		y: box.y + box.h - 3,
		w: lipgloss.Width(closeButton(m.theme.Styles())),
		h: 1,
	}
}
