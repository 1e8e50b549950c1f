package mondrian

import (
	"fmt"
	"math/rand/v2"

	"github.com/tanema/gween/ease"
)

// transition snapshots the cut lists at the moment of a release event. It is
// consumed by Frame until eased progress reaches 1, at which point the
// authoritative cuts are committed back to the originals exactly.
type transition struct {
	start float64 // release timestamp, seconds
	fromV []float64
	fromH []float64
}

// Composition owns all mutable interaction state: the mode, the
// authoritative cut lists, both color mappings, and the in-flight transition
// snapshot. It is single-threaded: all mutation happens inside a
// pointer event (Randomize, Release) or the per-frame Frame call, which the
// host never runs concurrently.
type Composition struct {
	cfg  Config
	rng  *rand.Rand
	mode Mode

	// Authoritative cut lists for the current resting mode. During a
	// transition these still hold the randomized snapshot; interpolated
	// values live only in the FrameState for one frame.
	vcuts []float64
	hcuts []float64

	// originalColors is computed once against the original cuts and reused
	// every time ModeOriginal renders. randomColors is rebuilt from scratch
	// on every Randomize, atomically with the cuts it is valid against.
	originalColors map[int]Color
	randomColors   map[int]Color

	trans transition
}

// FrameState is everything the renderer needs for one frame: the mode, the
// cut lists to draw (authoritative or interpolated), and the color mapping
// valid against them. Colors is nil while transitioning; no cell is colored
// during the animation. The slices must not be mutated or retained across
// frames.
type FrameState struct {
	Mode   Mode
	VCuts  []float64
	HCuts  []float64
	Colors map[int]Color
}

// New creates a composition resting on cfg's original layout. The original
// color mapping is resolved once here. A nil rng falls back to a
// freshly-seeded source; inject one for deterministic behavior.
func New(cfg Config, rng *rand.Rand) *Composition {
	cfg = cfg.withDefaults()
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Composition{
		cfg:            cfg,
		rng:            rng,
		mode:           ModeOriginal,
		vcuts:          append([]float64(nil), cfg.VCuts...),
		hcuts:          append([]float64(nil), cfg.HCuts...),
		originalColors: BuildColorMap(cfg.Anchors, cfg.VCuts, cfg.HCuts, cfg.Width, cfg.Height),
	}
}

// Config returns the composition's configuration with defaults applied.
func (c *Composition) Config() Config {
	return c.cfg
}

// Mode returns the current interaction mode.
func (c *Composition) Mode() Mode {
	return c.mode
}

// Randomize handles the press event: it generates fresh cut lists at the
// original counts, rebuilds the random color mapping against them in the
// same step, and enters ModeRandomized. Valid from any mode; a repeat press
// simply replaces the previous randomized geometry and colors.
func (c *Composition) Randomize(now float64) {
	c.vcuts = GenerateLines(c.rng, len(c.cfg.VCuts), c.cfg.Width, c.cfg.Margin, c.cfg.MinGap, c.cfg.LineWidth)
	c.hcuts = GenerateLines(c.rng, len(c.cfg.HCuts), c.cfg.Height, c.cfg.Margin, c.cfg.MinGap, c.cfg.LineWidth)
	cellCount := (len(c.vcuts) + 1) * (len(c.hcuts) + 1)
	c.randomColors = RandomColorMap(c.rng, cellCount, c.cfg.Palette)
	c.mode = ModeRandomized
}

// Release handles the release event: it snapshots the current cuts as the
// transition start and enters ModeTransitioning. Releasing while already
// transitioning restarts the animation from the current interpolated
// positions; if that transition has in fact already run its course, the
// composition settles immediately instead of replaying a dead animation.
// Releasing in ModeOriginal is a no-op.
func (c *Composition) Release(now float64) {
	switch c.mode {
	case ModeRandomized:
		c.trans = transition{
			start: now,
			fromV: padToTarget(c.vcuts, c.cfg.VCuts),
			fromH: padToTarget(c.hcuts, c.cfg.HCuts),
		}
		c.mode = ModeTransitioning
	case ModeTransitioning:
		v, h, done := transitionCuts(c.trans, c.cfg.VCuts, c.cfg.HCuts, c.cfg.Duration, c.cfg.Ease, now)
		if done {
			c.settle()
			return
		}
		c.trans = transition{start: now, fromV: v, fromH: h}
	}
}

// padToTarget returns a copy of cuts extended to the target's length with the
// target's trailing values. Degraded generation can leave fewer cuts than the
// original counts; the missing lines simply rest at their original positions
// for the transition instead of failing the length invariant.
func padToTarget(cuts, target []float64) []float64 {
	out := append([]float64(nil), cuts...)
	if len(out) < len(target) {
		out = append(out, target[len(out):]...)
	}
	return out
}

// settle commits the authoritative cuts back to the originals exactly and
// returns to the resting original mode.
func (c *Composition) settle() {
	c.vcuts = append([]float64(nil), c.cfg.VCuts...)
	c.hcuts = append([]float64(nil), c.cfg.HCuts...)
	c.trans = transition{}
	c.mode = ModeOriginal
}

// Frame advances the composition to the given time and returns the state to
// render. While transitioning it computes the eased interpolated cuts for
// this frame only; once progress reaches 1 it commits the authoritative cuts
// to the originals exactly (no floating-point residue) and returns the
// original resting state.
func (c *Composition) Frame(now float64) FrameState {
	if c.mode == ModeTransitioning {
		v, h, done := transitionCuts(c.trans, c.cfg.VCuts, c.cfg.HCuts, c.cfg.Duration, c.cfg.Ease, now)
		if !done {
			return FrameState{Mode: ModeTransitioning, VCuts: v, HCuts: h}
		}
		c.settle()
	}

	colors := c.originalColors
	if c.mode == ModeRandomized {
		colors = c.randomColors
	}
	return FrameState{Mode: c.mode, VCuts: c.vcuts, HCuts: c.hcuts, Colors: colors}
}

// transitionCuts computes the interpolated cut lists for a transition at the
// given time. Pure: the caller decides whether to commit when done reports
// true. Progress past the duration clamps to the targets.
func transitionCuts(tr transition, targetV, targetH []float64, duration float64, fn ease.TweenFunc, now float64) (v, h []float64, done bool) {
	elapsed := now - tr.start
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed >= duration {
		return targetV, targetH, true
	}
	v = interpolateCuts(tr.fromV, targetV, elapsed, duration, fn)
	h = interpolateCuts(tr.fromH, targetH, elapsed, duration, fn)
	return v, h, false
}

// interpolateCuts eases each cut position element-wise from the start
// snapshot toward the target. Unequal lengths indicate a caller bug
// (randomized generation must request the original counts), so this fails
// fast rather than guessing a partial interpolation.
func interpolateCuts(from, to []float64, elapsed, duration float64, fn ease.TweenFunc) []float64 {
	if len(from) != len(to) {
		panic(fmt.Sprintf("mondrian: cut list length mismatch: start %d, target %d", len(from), len(to)))
	}
	out := make([]float64, len(from))
	for i := range from {
		out[i] = float64(fn(float32(elapsed), float32(from[i]), float32(to[i]-from[i]), float32(duration)))
	}
	return out
}
