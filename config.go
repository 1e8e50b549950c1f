package mondrian

import "github.com/tanema/gween/ease"

// Config describes a composition: the canvas size, the original cut lists
// and anchor colors, the randomization palette, and the visual and timing
// parameters. The zero value is not usable; start from Classic or fill every
// field and rely on withDefaults for the visual/timing ones.
type Config struct {
	Width, Height float64

	// Original layout. The cut list lengths fix the line counts for the
	// life of the composition; randomization always regenerates the same
	// counts.
	VCuts []float64
	HCuts []float64

	// Anchors define the original coloring by position; Palette feeds the
	// randomized coloring.
	Anchors []Anchor
	Palette []Color

	Background Color
	LineColor  Color
	LineWidth  float64

	// Line generation constraints.
	Margin float64 // distance from each canvas edge
	MinGap float64 // minimum separation between lines on one axis

	// Transition back to the original layout.
	Duration float64        // seconds
	Ease     ease.TweenFunc // nil means ease.InOutCubic
}

// Defaults applied by withDefaults for zero-valued fields.
const (
	defaultLineWidth = 4.0
	defaultMargin    = 24.0
	defaultMinGap    = 40.0
	defaultDuration  = 0.8
)

// withDefaults returns a copy of c with zero-valued visual and timing fields
// replaced by defaults.
func (c Config) withDefaults() Config {
	if c.Background == (Color{}) {
		c.Background = ColorWhite
	}
	if c.LineColor == (Color{}) {
		c.LineColor = ColorBlack
	}
	if c.LineWidth == 0 {
		c.LineWidth = defaultLineWidth
	}
	if c.Margin == 0 {
		c.Margin = defaultMargin
	}
	if c.MinGap == 0 {
		c.MinGap = defaultMinGap
	}
	if c.Duration == 0 {
		c.Duration = defaultDuration
	}
	if c.Ease == nil {
		c.Ease = ease.InOutCubic
	}
	return c
}

// The classic palette.
var (
	ClassicRed    = Color{R: 0.776, G: 0.157, B: 0.157, A: 1}
	ClassicBlue   = Color{R: 0.133, G: 0.263, B: 0.604, A: 1}
	ClassicYellow = Color{R: 0.973, G: 0.827, B: 0.196, A: 1}
	ClassicBlack  = Color{R: 0.102, G: 0.102, B: 0.102, A: 1}
	ClassicGray   = Color{R: 0.871, G: 0.859, B: 0.824, A: 1}
)

// Classic returns the built-in 820×600 reference composition: a 5×6 grid
// with five colored regions in the classic De Stijl palette.
func Classic() Config {
	return Config{
		Width:  820,
		Height: 600,
		VCuts:  []float64{90, 320, 360, 560},
		HCuts:  []float64{90, 250, 290, 380, 540},
		Anchors: []Anchor{
			{X: 0.25, Y: 0.28, Color: ClassicRed},
			{X: 0.24, Y: 0.63, Color: ClassicBlue},
			{X: 0.85, Y: 0.95, Color: ClassicYellow},
			{X: 0.05, Y: 0.45, Color: ClassicBlack},
			{X: 0.56, Y: 0.12, Color: ClassicGray},
		},
		Palette: []Color{
			ClassicRed,
			ClassicBlue,
			ClassicYellow,
			ClassicBlack,
			ClassicGray,
		},
	}
}
