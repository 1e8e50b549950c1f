package mondrian

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// toRGBA converts to 8-bit premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.R * c.A * 255),
		G: uint8(c.G * c.A * 255),
		B: uint8(c.B * c.A * 255),
		A: uint8(c.A * 255),
	}
}

// ColorWhite is the default background color.
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlack is the default grid line color.
var ColorBlack = Color{0, 0, 0, 1}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Mode identifies which phase of the interaction the composition is in.
// Exactly one mode is active at a time; it gates both which color map (if
// any) is drawn and whether the grid lines are static or interpolated.
type Mode uint8

const (
	ModeOriginal      Mode = iota // resting on the original layout, original colors
	ModeRandomized                // resting on randomized lines, randomized colors
	ModeTransitioning             // lines animating back to the original, no color
)

// String returns the mode name for logs and test failures.
func (m Mode) String() string {
	switch m {
	case ModeOriginal:
		return "original"
	case ModeRandomized:
		return "randomized"
	case ModeTransitioning:
		return "transitioning"
	default:
		return "unknown"
	}
}
