package state

import (
	"github.com/five82/ptable/internal/catalog"
	"github.com/five82/ptable/internal/grid"
)

// InputFocus names the control that currently receives key input.
type InputFocus int

const (
	InputGrid InputFocus = iota
	InputSearch
	InputCategoryPicker
	InputDismiss
)

// CellView is the derived display state of one bound cell.
type CellView struct {
	Cell           grid.Cell
	SearchHidden   bool
	CategoryHidden bool
	Focused        bool
}

// Visible reports whether the cell passes both filters.
func (v CellView) Visible() bool {
	return !v.SearchHidden && !v.CategoryHidden
}

// Controller owns filter, focus, modal and input state for one table.
type Controller struct {
	cells          []grid.Cell
	searchHidden   []bool
	categoryHidden []bool

	filter       Filter
	focus        Focus
	modal        Modal
	input        InputFocus
	inputBefore  InputFocus
	clearVisible bool
}

// New builds a controller over the bound cells of g with no filter applied.
func New(g *grid.Grid) *Controller {
	cells := g.Bound()
	return &Controller{
		cells:          cells,
		searchHidden:   make([]bool, len(cells)),
		categoryHidden: make([]bool, len(cells)),
		filter:         Filter{Category: catalog.CategoryAll},
		focus:          Focus{N: len(cells)},
	}
}

// Cells returns the bound cells in grid order.
func (c *Controller) Cells() []grid.Cell {
	out := make([]grid.Cell, len(c.cells))
	copy(out, c.cells)
	return out
}

// Filter returns the current filter.
func (c *Controller) Filter() Filter { return c.filter }

// Focus returns the keyboard focus.
func (c *Controller) Focus() Focus { return c.focus }

// Modal returns the detail overlay state.
func (c *Controller) Modal() Modal { return c.modal }

// Input returns the control holding key input.
func (c *Controller) Input() InputFocus { return c.input }

// ClearVisible reports whether the "clear search" affordance is shown.
func (c *Controller) ClearVisible() bool { return c.clearVisible }

// ApplySearch normalizes term and recomputes the search flag on every cell.
// The category flag is left alone.
func (c *Controller) ApplySearch(term string) {
	term = NormalizeTerm(term)
	c.filter.Term = term
	c.clearVisible = term != ""
	for i, cell := range c.cells {
		c.searchHidden[i] = !MatchesSearch(cell, term)
	}
}

// ClearSearch empties the term, hides the clear affordance and hands input
// focus to the search field.
func (c *Controller) ClearSearch() {
	c.ApplySearch("")
	c.SetInput(InputSearch)
}

// ApplyCategory recomputes the category flag on every cell. The search flag is
// left alone.
func (c *Controller) ApplyCategory(selected catalog.Category) {
	if selected == "" {
		selected = catalog.CategoryAll
	}
	c.filter.Category = selected
	for i, cell := range c.cells {
		c.categoryHidden[i] = !MatchesCategory(cell, selected)
	}
}

// Open shows el in the detail overlay, moves input to the dismiss control
// and locks background navigation. Opening again replaces the content.
func (c *Controller) Open(el catalog.Element) {
	if !c.modal.Open {
		c.inputBefore = c.input
	}
	c.modal.show(el)
	c.input = InputDismiss
}

// OpenFocused opens the overlay for the focused cell.
func (c *Controller) OpenFocused() bool {
	if len(c.cells) == 0 {
		return false
	}
	el, ok := c.cells[c.focus.Index].Element()
	if !ok {
		return false
	}
	c.Open(el)
	return true
}

// Close hides the overlay and restores the previous input focus. Closing an
// already closed overlay does nothing.
func (c *Controller) Close() {
	if !c.modal.Open {
		return
	}
	c.modal.hide()
	c.input = c.inputBefore
	if c.input == InputDismiss {
		c.input = InputGrid
	}
}

// Resize reacts to a viewport size change: an open overlay is closed. It
// reports whether anything was closed.
func (c *Controller) Resize() bool {
	if !c.modal.Open {
		return false
	}
	c.Close()
	return true
}

// SetInput hands key input to another control. It is ignored while the
// overlay is open.
func (c *Controller) SetInput(f InputFocus) {
	if c.modal.Open {
		return
	}
	if f == InputDismiss {
		f = InputGrid
	}
	c.input = f
}

// NavigationActive reports whether arrow keys move the grid focus.
func (c *Controller) NavigationActive() bool {
	return !c.modal.Open && !c.modal.BackgroundLocked && c.input == InputGrid
}

// Navigate moves the focus one step in dir when navigation is active. It
// reports whether the key was handled.
func (c *Controller) Navigate(dir Direction) bool {
	if !c.NavigationActive() {
		return false
	}
	c.focus = c.focus.Move(dir)
	return true
}

// FocusCell resyncs the focus index after focus moved by other means.
func (c *Controller) FocusCell(i int) {
	c.focus = c.focus.Set(i)
}

// FocusedCell returns the cell under the keyboard focus.
func (c *Controller) FocusedCell() (grid.Cell, bool) {
	if len(c.cells) == 0 {
		return grid.Cell{}, false
	}
	return c.cells[c.focus.Index], true
}

// View derives the per-cell display state in grid order.
func (c *Controller) View() []CellView {
	out := make([]CellView, len(c.cells))
	for i, cell := range c.cells {
		out[i] = CellView{
			Cell:           cell,
			SearchHidden:   c.searchHidden[i],
			CategoryHidden: c.categoryHidden[i],
			Focused:        i == c.focus.Index,
		}
	}
	return out
}

// VisibleCount is the number of cells passing both filters.
func (c *Controller) VisibleCount() int {
	n := 0
	for i := range c.cells {
		if !c.searchHidden[i] && !c.categoryHidden[i] {
			n++
		}
	}
	return n
}

// Diff returns the positions whose visibility differs between prev and next.
// Views of different lengths are compared over the shorter one, and every
// extra position counts as changed.
func Diff(prev, next []CellView) []int {
	var changed []int
	n := min(len(prev), len(next))
	for i := 0; i < n; i++ {
		if prev[i].Visible() != next[i].Visible() {
			changed = append(changed, i)
		}
	}
	for i := n; i < max(len(prev), len(next)); i++ {
		changed = append(changed, i)
	}
	return changed
}
