package main

// Grid shape management. The cell matrix is always rowCount rows of
// columnCount raw strings; every structural change goes through
// ReshapeCells so no other code ever observes a ragged matrix. Snapshots
// are immutable, so every function here returns a fresh matrix.

// ReshapeCells builds a matrix of the requested dimensions, copying the
// old value at every (row, columnPosition) present in both shapes and
// filling new positions with the empty string. The copy is position-based:
// removing a middle column shifts the values of later columns.
func ReshapeCells(cells [][]string, rowCount int, columnCount int) [][]string {
	reshaped := make([][]string, rowCount)

	for row := 0; row < rowCount; row++ {
		reshaped[row] = make([]string, columnCount)
		if row >= len(cells) {
			continue
		}
		for col := 0; col < columnCount && col < len(cells[row]); col++ {
			reshaped[row][col] = cells[row][col]
		}
	}

	return reshaped
}

// RemoveCellColumn drops one position from every row.
func RemoveCellColumn(cells [][]string, col int) [][]string {
	reshaped := make([][]string, len(cells))

	for row := range cells {
		reshaped[row] = make([]string, 0, len(cells[row])-1)
		for position, value := range cells[row] {
			if position != col {
				reshaped[row] = append(reshaped[row], value)
			}
		}
	}

	return reshaped
}

// CellAt is the defensive read: out-of-range positions yield the empty
// string, never a panic.
func CellAt(cells [][]string, row int, col int) string {
	if row < 0 || row >= len(cells) {
		return ""
	}
	if col < 0 || col >= len(cells[row]) {
		return ""
	}
	return cells[row][col]
}

// CloneCells deep-copies the matrix so a mutation never writes into a
// snapshot already handed out.
func CloneCells(cells [][]string) [][]string {
	cloned := make([][]string, len(cells))
	for row := range cells {
		cloned[row] = make([]string, len(cells[row]))
		copy(cloned[row], cells[row])
	}
	return cloned
}

// FillDownCells copies the source cell value into each consecutive empty
// cell below it, stopping at the first non-empty cell or the end of the
// matrix. No-op when the source cell is empty. Returns the new matrix and
// how many cells were filled.
func FillDownCells(cells [][]string, row int, col int) ([][]string, int) {
	source := CellAt(cells, row, col)
	if source == "" {
		return cells, 0
	}

	filled := 0
	next := CloneCells(cells)
	for target := row + 1; target < len(next); target++ {
		if next[target][col] != "" {
			break
		}
		next[target][col] = source
		filled++
	}

	if filled == 0 {
		return cells, 0
	}

	return next, filled
}
