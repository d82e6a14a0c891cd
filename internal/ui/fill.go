package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// fill paints text onto a solid background. Every segment, including the
// spaces between words, carries the background so no reset code leaves an
// unpainted gap on the line.
type fill struct {
	color lipgloss.Color
	base  lipgloss.Style
}

func newFill(color string) fill {
	c := lipgloss.Color(color)
	return fill{color: c, base: lipgloss.NewStyle().Background(c)}
}

// blank returns n painted spaces.
func (f fill) blank(n int) string {
	if n <= 0 {
		return ""
	}
	return f.base.Render(strings.Repeat(" ", n))
}

// text renders s in style on the fill color.
func (f fill) text(s string, style lipgloss.Style) string {
	if s == "" {
		return ""
	}
	style = style.Background(f.color)
	words := strings.Split(s, " ")
	for i, w := range words {
		if w != "" {
			words[i] = style.Render(w)
		}
	}
	return strings.Join(words, f.blank(1))
}

// join places a painted separator between already rendered parts.
func (f fill) join(parts []string, sep string) string {
	return strings.Join(parts, f.base.Render(sep))
}

// line pads content to exactly width columns on a single screen line.
// Content that does not fit is cut with an ellipsis rather than wrapped,
// so the lines below keep their screen rows.
func (f fill) line(content string, width int) string {
	if width <= 0 {
		return content
	}
	if lipgloss.Width(content) > width {
		content = ansi.Truncate(content, width, "…")
	}
	return f.base.Width(width).MaxHeight(1).Render(content)
}

// cellRow assembles one screen line of grid cells with painted gaps.
type cellRow struct {
	f     fill
	b     strings.Builder
	cells int
}

func (f fill) row() *cellRow {
	r := &cellRow{f: f}
	r.b.WriteString(f.blank(gridLeft))
	return r
}

// add appends a rendered cell.
func (r *cellRow) add(cell string) {
	if r.cells > 0 {
		r.b.WriteString(r.f.blank(cellGap))
	}
	r.b.WriteString(cell)
	r.cells++
}

// skip appends an unbound slot.
func (r *cellRow) skip() {
	r.add(r.f.blank(cellWidth))
}

func (r *cellRow) String() string {
	return r.b.String()
}
