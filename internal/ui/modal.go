package ui

import "github.com/charmbracelet/lipgloss"

// rect is a screen region in terminal cells.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// overlayRect returns where placeOverlay puts box on a width x height screen.
func overlayRect(box string, width, height int) rect {
	w := lipgloss.Width(box)
	h := lipgloss.Height(box)
	return rect{
		x: max(width-w, 0) / 2,
		y: max(height-h, 0) / 2,
		w: w,
		h: h,
	}
}

// placeOverlay centers box on the screen. Everything around it is backdrop.
func (m Model) placeOverlay(box string) string {
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
