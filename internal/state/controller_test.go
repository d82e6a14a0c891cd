package state

import (
	"testing"

	"github.com/five82/ptable/internal/catalog"
	"github.com/five82/ptable/internal/grid"
)

func newDefaultController(t *testing.T) *Controller {
	t.Helper()
	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default returned error: %v", err)
	}
	return New(grid.Build(c.Elements()))
}

func visibleSymbols(c *Controller) map[string]bool {
	out := make(map[string]bool)
	for _, v := range c.View() {
		if v.Visible() {
			el, _ := v.Cell.Element()
			out[el.Symbol] = true
		}
	}
	return out
}

func TestApplySearch_EmptyShowsAll(t *testing.T) {
	c := newDefaultController(t)
	c.ApplySearch("iron")
	if c.VisibleCount() == len(c.Cells()) {
		t.Fatalf("search for iron should hide cells")
	}
	if !c.ClearVisible() {
		t.Fatalf("ClearVisible() = false after non-empty search")
	}

	c.ApplySearch("   ")
	if got := c.VisibleCount(); got != 118 {
		t.Fatalf("VisibleCount() = %d after empty search, want 118", got)
	}
	if c.ClearVisible() {
		t.Fatalf("ClearVisible() = true after empty search")
	}
	for _, v := range c.View() {
		if v.SearchHidden {
			t.Fatalf("cell %d still search-hidden", v.Cell.Index)
		}
	}
}

func TestApplySearch_MatchesSymbolNameAndNumber(t *testing.T) {
	c := newDefaultController(t)

	c.ApplySearch("H")
	vis := visibleSymbols(c)
	for _, sym := range []string{"H", "He", "Th", "Hg", "Rh", "Hf"} {
		if !vis[sym] {
			t.Fatalf("search H should match %s", sym)
		}
	}
	if vis["Fe"] {
		t.Fatalf("search H should not match Fe")
	}
	if c.Filter().Term != "h" {
		t.Fatalf("Filter().Term = %q, want normalized h", c.Filter().Term)
	}

	c.ApplySearch("11")
	vis = visibleSymbols(c)
	if !vis["Na"] || !vis["Rg"] || !vis["Ds"] || !vis["Ts"] {
		t.Fatalf("search 11 should match 11, 110, 111, 117: %v", vis)
	}
	if vis["H"] {
		t.Fatalf("search 11 should not match Hydrogen")
	}

	c.ApplySearch("  GOLD ")
	vis = visibleSymbols(c)
	if len(vis) != 1 || !vis["Au"] {
		t.Fatalf("search gold = %v, want only Au", vis)
	}
}

func TestApplyCategory_AllRestores(t *testing.T) {
	c := newDefaultController(t)
	before := c.View()

	c.ApplyCategory(catalog.NobleGas)
	if got := c.VisibleCount(); got != 7 {
		t.Fatalf("VisibleCount() = %d for noble gases, want 7", got)
	}

	c.ApplyCategory(catalog.CategoryAll)
	after := c.View()
	if changed := Diff(before, after); len(changed) != 0 {
		t.Fatalf("Diff after all = %v, want none", changed)
	}
	for _, v := range after {
		if v.CategoryHidden {
			t.Fatalf("cell %d still category-hidden", v.Cell.Index)
		}
	}
}

func TestFilters_AreIndependent(t *testing.T) {
	c := newDefaultController(t)
	c.ApplySearch("ne")
	c.ApplyCategory(catalog.NobleGas)

	vis := visibleSymbols(c)
	if !vis["Ne"] {
		t.Fatalf("Neon matches both filters and should be visible")
	}
	// Manganese matches the search but not the category.
	if vis["Mn"] {
		t.Fatalf("Manganese should be hidden by the category filter")
	}
	// Argon matches the category but not the search.
	if vis["Ar"] {
		t.Fatalf("Argon should be hidden by the search filter")
	}

	// Clearing the category keeps the search flags.
	c.ApplyCategory(catalog.CategoryAll)
	vis = visibleSymbols(c)
	if !vis["Mn"] || vis["Ar"] {
		t.Fatalf("after category all: Mn=%v Ar=%v, want true false", vis["Mn"], vis["Ar"])
	}

	// Clearing the search keeps the category flags.
	c.ApplyCategory(catalog.Halogen)
	c.ApplySearch("")
	if got := c.VisibleCount(); got != 6 {
		t.Fatalf("VisibleCount() = %d for halogens without search, want 6", got)
	}
}

func TestClearSearch_FocusesSearchInput(t *testing.T) {
	c := newDefaultController(t)
	c.ApplySearch("xe")
	c.SetInput(InputGrid)

	c.ClearSearch()
	if c.Filter().Term != "" || c.ClearVisible() {
		t.Fatalf("ClearSearch left term %q clear=%v", c.Filter().Term, c.ClearVisible())
	}
	if c.Input() != InputSearch {
		t.Fatalf("Input() = %v, want InputSearch", c.Input())
	}
	if got := c.VisibleCount(); got != 118 {
		t.Fatalf("VisibleCount() = %d, want 118", got)
	}
}

func TestNavigate_ClampsAtBounds(t *testing.T) {
	c := newDefaultController(t)
	n := len(c.Cells())

	for _, dir := range []Direction{Up, Left} {
		c.FocusCell(0)
		if !c.Navigate(dir) {
			t.Fatalf("Navigate(%v) not handled", dir)
		}
		if got := c.Focus().Index; got != 0 {
			t.Fatalf("Navigate(%v) from 0 = %d, want 0", dir, got)
		}
	}
	for _, dir := range []Direction{Down, Right} {
		c.FocusCell(n - 1)
		c.Navigate(dir)
		if got := c.Focus().Index; got != n-1 {
			t.Fatalf("Navigate(%v) from %d = %d, want %d", dir, n-1, got, n-1)
		}
	}

	c.FocusCell(0)
	c.Navigate(Down)
	if got := c.Focus().Index; got != 18 {
		t.Fatalf("Down from 0 = %d, want 18", got)
	}
	c.Navigate(Right)
	c.Navigate(Left)
	c.Navigate(Left)
	if got := c.Focus().Index; got != 17 {
		t.Fatalf("Right, Left, Left from 18 = %d, want 17", got)
	}
	c.Navigate(Up)
	if got := c.Focus().Index; got != 0 {
		t.Fatalf("Up from 17 = %d, want 0", got)
	}
}

func TestNavigate_InactiveWhileInputOrModalHoldsFocus(t *testing.T) {
	c := newDefaultController(t)
	c.FocusCell(5)

	c.SetInput(InputSearch)
	if c.Navigate(Right) || c.Focus().Index != 5 {
		t.Fatalf("navigation should be inactive while the search field has focus")
	}

	c.SetInput(InputCategoryPicker)
	if c.Navigate(Right) || c.Focus().Index != 5 {
		t.Fatalf("navigation should be inactive while the picker has focus")
	}

	c.SetInput(InputGrid)
	c.OpenFocused()
	if c.Navigate(Right) || c.Focus().Index != 5 {
		t.Fatalf("navigation should be inactive while the overlay is open")
	}

	c.Close()
	if !c.Navigate(Right) || c.Focus().Index != 6 {
		t.Fatalf("navigation should resume after close, index %d", c.Focus().Index)
	}
}

func TestOpen_ReplacesContent(t *testing.T) {
	c := newDefaultController(t)
	cat, _ := catalog.Default()
	h, _ := cat.Lookup("H")
	o, _ := cat.Lookup("O")

	c.Open(h)
	first := c.Modal().Active
	c.Open(o)

	m := c.Modal()
	if !m.Open || !m.BackgroundLocked {
		t.Fatalf("modal = %#v, want open and locked", m)
	}
	if m.Active != first {
		t.Fatalf("Open should reuse the overlay instance")
	}
	el, ok := m.Element()
	if !ok || el.Symbol != "O" {
		t.Fatalf("modal shows %#v, want Oxygen", el)
	}
	if c.Input() != InputDismiss {
		t.Fatalf("Input() = %v, want InputDismiss", c.Input())
	}
}

func TestClose_IdempotentAndRestoresInput(t *testing.T) {
	c := newDefaultController(t)
	c.Close()
	if c.Modal().Open || c.Input() != InputGrid {
		t.Fatalf("Close on closed overlay changed state")
	}

	c.SetInput(InputSearch)
	c.OpenFocused()
	c.Close()
	c.Close()
	if c.Modal().Open || c.Modal().BackgroundLocked {
		t.Fatalf("modal still open after Close")
	}
	if c.Input() != InputSearch {
		t.Fatalf("Input() = %v after close, want InputSearch", c.Input())
	}
	if _, ok := c.Modal().Element(); ok {
		t.Fatalf("Element() should report false when closed")
	}
}

func TestResize(t *testing.T) {
	c := newDefaultController(t)
	if c.Resize() {
		t.Fatalf("Resize while closed reported a close")
	}
	if c.Modal().Open {
		t.Fatalf("Resize while closed opened the overlay")
	}

	c.OpenFocused()
	if !c.Resize() {
		t.Fatalf("Resize while open did not close")
	}
	if c.Modal().Open {
		t.Fatalf("overlay still open after Resize")
	}
}

func TestSetInput_IgnoredWhileOpen(t *testing.T) {
	c := newDefaultController(t)
	c.OpenFocused()
	c.SetInput(InputSearch)
	if c.Input() != InputDismiss {
		t.Fatalf("Input() = %v, want InputDismiss while open", c.Input())
	}
}

func TestView_MarksFocus(t *testing.T) {
	c := newDefaultController(t)
	c.FocusCell(3)
	focused := 0
	for i, v := range c.View() {
		if v.Focused {
			focused++
			if i != 3 {
				t.Fatalf("focused view at %d, want 3", i)
			}
		}
	}
	if focused != 1 {
		t.Fatalf("%d focused views, want 1", focused)
	}
	cell, ok := c.FocusedCell()
	if !ok || cell.Index != c.Cells()[3].Index {
		t.Fatalf("FocusedCell() = %#v, want cells[3]", cell)
	}
}

func TestEmptyGrid(t *testing.T) {
	c := New(grid.Build(nil))
	if c.Navigate(Right) && c.Focus().Index != 0 {
		t.Fatalf("focus moved on empty grid")
	}
	if c.OpenFocused() {
		t.Fatalf("OpenFocused on empty grid returned true")
	}
	if _, ok := c.FocusedCell(); ok {
		t.Fatalf("FocusedCell on empty grid returned ok")
	}
	c.ApplySearch("x")
	if c.VisibleCount() != 0 {
		t.Fatalf("VisibleCount() = %d, want 0", c.VisibleCount())
	}
}
