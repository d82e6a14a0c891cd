// Package grid places catalog elements into the fixed 10x18 table layout.
package grid

import (
	"strconv"
	"strings"

	"github.com/five82/ptable/internal/catalog"
)

// Table geometry.
const (
	Columns = 18
	Rows    = 10
	Size    = Rows * Columns
)

// Position maps a (period, group) pair to a linear cell index.
//
// Periods 8 and 9 are the lanthanide and actinide rows: they land on grid rows
// 8 and 9 with group-1 as the column, whatever the group value. Periods 1..7
// require a group in 1..18. Anything else reports false.
func Position(period, group int) (int, bool) {
	switch period {
	case 8:
		return 7*Columns + (group - 1), true
	case 9:
		return 8*Columns + (group - 1), true
	}
	if period >= 1 && period <= 7 && group >= 1 && group <= Columns {
		return (period-1)*Columns + (group - 1), true
	}
	return 0, false
}

// Cell is one of the fixed grid positions. Empty cells have no element.
type Cell struct {
	Index   int
	element *catalog.Element

	symbolKey string
	nameKey   string
	numberKey string
}

// Empty reports whether the cell is unbound.
func (c Cell) Empty() bool {
	return c.element == nil
}

// Element returns the bound record. ok is false for empty cells.
func (c Cell) Element() (catalog.Element, bool) {
	if c.element == nil {
		return catalog.Element{}, false
	}
	return *c.element, true
}

// Row and Col locate the cell in the 10x18 layout.
func (c Cell) Row() int { return c.Index / Columns }
func (c Cell) Col() int { return c.Index % Columns }

// SymbolKey is the lowercase symbol used by search.
func (c Cell) SymbolKey() string { return c.symbolKey }

// NameKey is the lowercase name used by search.
func (c Cell) NameKey() string { return c.nameKey }

// NumberKey is the literal atomic number used by search.
func (c Cell) NumberKey() string { return c.numberKey }

// Category is the tag used by the category filter. Empty cells return "".
func (c Cell) Category() catalog.Category {
	if c.element == nil {
		return ""
	}
	return c.element.Category
}

// Grid is the rendered table: Size cells plus the bound subset in grid order.
type Grid struct {
	cells    [Size]Cell
	bound    []Cell
	unplaced []catalog.Element
}

// Build places every element. Records that cannot be placed are collected in
// Unplaced; a record landing on an occupied index replaces the earlier one.
func Build(elements []catalog.Element) *Grid {
	g := &Grid{}
	for i := range g.cells {
		g.cells[i] = Cell{Index: i}
	}

	for i := range elements {
		el := elements[i]
		idx, ok := Position(el.Position.Period, el.Position.Group)
		if !ok || idx < 0 || idx >= Size {
			g.unplaced = append(g.unplaced, el)
			continue
		}
		g.cells[idx] = Cell{
			Index:     idx,
			element:   &el,
			symbolKey: strings.ToLower(el.Symbol),
			nameKey:   strings.ToLower(el.Name),
			numberKey: strconv.Itoa(el.AtomicNumber),
		}
	}

	for _, c := range g.cells {
		if !c.Empty() {
			g.bound = append(g.bound, c)
		}
	}
	return g
}

// Cell returns the cell at linear index i; out-of-range indexes yield an empty cell.
func (g *Grid) Cell(i int) Cell {
	if i < 0 || i >= Size {
		return Cell{Index: -1}
	}
	return g.cells[i]
}

// Row returns the Columns cells of row r.
func (g *Grid) Row(r int) []Cell {
	if r < 0 || r >= Rows {
		return nil
	}
	out := make([]Cell, Columns)
	copy(out, g.cells[r*Columns:(r+1)*Columns])
	return out
}

// Bound returns the non-empty cells in row-major order.
func (g *Grid) Bound() []Cell {
	out := make([]Cell, len(g.bound))
	copy(out, g.bound)
	return out
}

// BoundIndex returns the position of the cell at grid index i within Bound,
// or -1 when the cell is empty.
func (g *Grid) BoundIndex(i int) int {
	for n, c := range g.bound {
		if c.Index == i {
			return n
		}
	}
	return -1
}

// Unplaced lists records whose position fell outside the table.
func (g *Grid) Unplaced() []catalog.Element {
	out := make([]catalog.Element, len(g.unplaced))
	copy(out, g.unplaced)
	return out
}

// EmptyCount is the number of unbound cells.
func (g *Grid) EmptyCount() int {
	return Size - len(g.bound)
}
