package state

import "github.com/five82/ptable/internal/grid"

// Direction is an arrow-key movement.
type Direction int

const (
	Right Direction = iota
	Left
	Down
	Up
)

// Focus tracks the keyboard cursor over the N bound cells.
type Focus struct {
	Index int
	N     int
}

// Move returns the focus after one step in dir. Movement is a flat clamp over
// the bound-cell list: Up and Down step by grid.Columns positions, not by
// visual rows, and never wrap.
func (f Focus) Move(dir Direction) Focus {
	if f.N <= 0 {
		return Focus{}
	}
	last := f.N - 1
	switch dir {
	case Right:
		f.Index = min(f.Index+1, last)
	case Left:
		f.Index = max(f.Index-1, 0)
	case Down:
		f.Index = min(f.Index+grid.Columns, last)
	case Up:
		f.Index = max(f.Index-grid.Columns, 0)
	}
	return f
}

// Set returns the focus moved to i, clamped to the valid range.
func (f Focus) Set(i int) Focus {
	if f.N <= 0 {
		return Focus{}
	}
	f.Index = min(max(i, 0), f.N-1)
	return f
}
