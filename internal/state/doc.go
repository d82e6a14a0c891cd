// Package state owns the interactive state of the periodic table.
//
// # Overview
//
// A single Controller holds everything that changes while the table is on
// screen: the filter (search term and selected category), the keyboard focus
// index, the detail overlay and which control currently receives text input.
// The UI calls Controller methods from its Update loop and reads View to draw.
//
// # Core Types
//
// Filter:
//   - Term: normalized search term (lowercase, trimmed)
//   - Category: selected category or catalog.CategoryAll
//
// Focus:
//   - Index into the bound cells in grid order
//   - Move clamps at both ends; Up/Down step by a full row width (18)
//
// Modal:
//   - Open flag plus the element being shown
//   - A single value whose content is replaced on every Open
//
// CellView:
//   - One entry per bound cell with the two visibility flags
//   - Visible() is true only when neither flag is set
//
// # Visibility Model
//
// Search and category filtering are independent. Each sets its own flag on a
// cell and never touches the other flag:
//
//	search term  "ne"      -> SearchHidden   = !MatchesSearch(cell, "ne")
//	category     noble-gas -> CategoryHidden = cell.Category() != noble-gas
//	visible                -> !SearchHidden && !CategoryHidden
//
// Diff compares two views and returns the positions whose visibility changed.
//
// # Input Focus
//
// Keyboard navigation runs only while the grid holds input focus and the
// detail overlay is closed. Opening the overlay moves input focus to its
// dismiss control; closing it restores the focus that was active before.
//
// # Concurrency
//
// There is none. Bubble Tea delivers one message at a time to the model that
// owns the Controller, so no locking is needed.
package state
