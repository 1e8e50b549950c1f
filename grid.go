package mondrian

import "sort"

// Cell is one rectangular region of the grid partition. Cells are derived
// from the current cut lists on every structural change and never mutated in
// place; Index is the row-major linear index row*cols + col.
type Cell struct {
	Rect
	Row   int
	Col   int
	Index int
}

// boundaries returns the partition boundary array for one axis: a sorted
// copy of the cut positions with 0 prepended and the canvas extent appended.
// The input slice is never mutated.
func boundaries(cuts []float64, extent float64) []float64 {
	b := make([]float64, 0, len(cuts)+2)
	b = append(b, 0)
	b = append(b, cuts...)
	b = append(b, extent)
	sort.Float64s(b[1 : len(b)-1])
	return b
}

// ComputeCells partitions a width×height canvas along the given vertical and
// horizontal cut positions and returns every resulting cell in row-major
// order (row index varies slower). The cut lists need not be sorted; copies
// are sorted internally. Empty cut lists degenerate to a single full-canvas
// cell.
func ComputeCells(vcuts, hcuts []float64, width, height float64) []Cell {
	xs := boundaries(vcuts, width)
	ys := boundaries(hcuts, height)
	cols := len(xs) - 1
	rows := len(ys) - 1

	cells := make([]Cell, 0, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cells = append(cells, Cell{
				Rect: Rect{
					X:      xs[col],
					Y:      ys[row],
					Width:  xs[col+1] - xs[col],
					Height: ys[row+1] - ys[row],
				},
				Row:   row,
				Col:   col,
				Index: row*cols + col,
			})
		}
	}
	return cells
}

// intervalIndex returns the index i of the boundary interval [b[i], b[i+1])
// containing v. The last interval is closed on the right so the canvas edge
// itself resolves to the final cell. Values below the first boundary clamp
// to interval 0.
func intervalIndex(b []float64, v float64) int {
	for i := 0; i < len(b)-2; i++ {
		if v >= b[i] && v < b[i+1] {
			return i
		}
	}
	if v < b[0] {
		return 0
	}
	return len(b) - 2
}
