package mondrian

// Canvas is the drawing surface the renderer targets. Implementations exist
// for ebiten (interactive, see run.go) and fogleman/gg (headless PNG, see
// export.go); tests use an in-memory recorder.
type Canvas interface {
	// Fill floods the whole surface with a color.
	Fill(c Color)
	// FillRect fills an axis-aligned rectangle.
	FillRect(r Rect, c Color)
	// StrokeLine draws a straight line of the given width between two points.
	StrokeLine(x1, y1, x2, y2, width float64, c Color)
}

// Draw renders one frame of the composition. In the resting modes it fills
// every mapped cell with its color and strokes the grid lines on top; while
// transitioning it strokes only the lines over the interpolated boundaries,
// with coloring skipped entirely until the animation commits. Unmapped cells
// stay background.
func Draw(cv Canvas, f FrameState, cfg Config) {
	cv.Fill(cfg.Background)

	if f.Mode != ModeTransitioning {
		for _, cell := range ComputeCells(f.VCuts, f.HCuts, cfg.Width, cfg.Height) {
			if color, ok := f.Colors[cell.Index]; ok {
				cv.FillRect(cell.Rect, color)
			}
		}
	}

	for _, x := range f.VCuts {
		cv.StrokeLine(x, 0, x, cfg.Height, cfg.LineWidth, cfg.LineColor)
	}
	for _, y := range f.HCuts {
		cv.StrokeLine(0, y, cfg.Width, y, cfg.LineWidth, cfg.LineColor)
	}
}

// Draw renders the composition at the given time onto cv, advancing the
// transition as a side effect. Equivalent to Draw(cv, c.Frame(now), c.cfg).
func (c *Composition) Draw(cv Canvas, now float64) {
	Draw(cv, c.Frame(now), c.cfg)
}
