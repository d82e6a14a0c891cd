package ui

import "github.com/five82/ptable/internal/grid"

// Grid geometry in terminal cells.
const (
	gridTop     = 3 // header, search line, status line
	gridLeft    = 1
	cellWidth   = 4
	cellHeight  = 2
	cellGap     = 1
	breakoutRow = 7 // first of the lanthanide/actinide rows
	breakoutGap = 1
)

// rowY returns the screen line of the first line of grid row r.
func rowY(r int) int {
	y := gridTop + r*cellHeight
	if r >= breakoutRow {
		y += breakoutGap
	}
	return y
}

// colX returns the screen column of the first character of grid column c.
func colX(c int) int {
	return gridLeft + c*(cellWidth+cellGap)
}

// gridHeight is the number of screen lines the grid occupies.
func gridHeight() int {
	return rowY(grid.Rows-1) + cellHeight - gridTop
}

// gridWidth is the number of screen columns the grid occupies.
func gridWidth() int {
	return colX(grid.Columns-1) + cellWidth
}

// cellAt maps a screen coordinate onto a grid index.
func cellAt(x, y int) (int, bool) {
	for r := 0; r < grid.Rows; r++ {
		top := rowY(r)
		if y < top || y >= top+cellHeight {
			continue
		}
		for c := 0; c < grid.Columns; c++ {
			left := colX(c)
			if x >= left && x < left+cellWidth {
				return r*grid.Columns + c, true
			}
		}
		return 0, false
	}
	return 0, false
}
