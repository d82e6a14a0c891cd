package state

import (
	"strings"

	"github.com/five82/ptable/internal/catalog"
	"github.com/five82/ptable/internal/grid"
)

// Filter is the combined search and category selection.
type Filter struct {
	Term     string
	Category catalog.Category
}

// Active reports whether either predicate hides anything.
func (f Filter) Active() bool {
	return f.Term != "" || (f.Category != "" && f.Category != catalog.CategoryAll)
}

// NormalizeTerm lowercases and trims free-text input.
func NormalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// MatchesSearch reports whether a normalized term matches the cell's symbol,
// name or atomic number. An empty term matches everything.
func MatchesSearch(cell grid.Cell, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(cell.SymbolKey(), term) ||
		strings.Contains(cell.NameKey(), term) ||
		strings.Contains(cell.NumberKey(), term)
}

// MatchesCategory reports whether the cell belongs to the selected category.
// catalog.CategoryAll and the empty selection match everything.
func MatchesCategory(cell grid.Cell, selected catalog.Category) bool {
	if selected == "" || selected == catalog.CategoryAll {
		return true
	}
	return cell.Category() == selected
}

// CycleCategory returns the category after current in the filter order
// (All first, then catalog.Categories). step may be negative.
func CycleCategory(current catalog.Category, step int) catalog.Category {
	order := append([]catalog.Category{catalog.CategoryAll}, catalog.Categories()...)
	idx := 0
	for i, c := range order {
		if c == current {
			idx = i
			break
		}
	}
	n := len(order)
	idx = ((idx+step)%n + n) % n
	return order[idx]
}
