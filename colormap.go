package mondrian

import "math/rand/v2"

// Anchor ties a color to a fixed fractional canvas position. Whichever cell
// currently contains the scaled point receives the color, so anchors define
// the composition semantically, independent of any particular cut list.
type Anchor struct {
	X, Y  float64 // fractional coordinates in [0, 1], clamped on use
	Color Color
}

// BuildColorMap resolves each anchor against the grid defined by the given
// cut lists and returns a cell-index to color mapping. Later anchors
// override earlier ones that resolve to the same cell; callers order anchors
// to encode priority. The mapping is only valid against the exact cut lists
// it was computed from.
func BuildColorMap(anchors []Anchor, vcuts, hcuts []float64, width, height float64) map[int]Color {
	xs := boundaries(vcuts, width)
	ys := boundaries(hcuts, height)
	cols := len(xs) - 1

	colors := make(map[int]Color, len(anchors))
	for _, a := range anchors {
		col := intervalIndex(xs, clamp01(a.X)*width)
		row := intervalIndex(ys, clamp01(a.Y)*height)
		colors[row*cols+col] = a.Color
	}
	return colors
}

// RandomColorMap assigns palette colors to a uniformly shuffled subset of
// cell indices, sized min(len(palette), cellCount). The palette cycles if it
// is shorter than the assignment count (defensive; with the default
// configuration the two are equal). Every call returns a fresh map, so a new
// randomization fully replaces the previous one.
func RandomColorMap(rng *rand.Rand, cellCount int, palette []Color) map[int]Color {
	colors := make(map[int]Color)
	if cellCount <= 0 || len(palette) == 0 {
		return colors
	}

	n := len(palette)
	if cellCount < n {
		n = cellCount
	}
	for i, idx := range rng.Perm(cellCount)[:n] {
		colors[idx] = palette[i%len(palette)]
	}
	return colors
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
