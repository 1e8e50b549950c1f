package mondrian

import (
	"fmt"

	"github.com/fogleman/gg"
)

// ExportPNG renders a single frame of the composition to a PNG file using a
// CPU rasterizer, so it works without a display or GPU.
func ExportPNG(path string, f FrameState, cfg Config) error {
	dc := gg.NewContext(int(cfg.Width), int(cfg.Height))
	Draw(&ggCanvas{dc: dc}, f, cfg)
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}

// ggCanvas implements Canvas on a fogleman/gg drawing context.
type ggCanvas struct {
	dc *gg.Context
}

func (c *ggCanvas) Fill(col Color) {
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	c.dc.Clear()
}

func (c *ggCanvas) FillRect(r Rect, col Color) {
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	c.dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	c.dc.Fill()
}

func (c *ggCanvas) StrokeLine(x1, y1, x2, y2, width float64, col Color) {
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(x1, y1, x2, y2)
	c.dc.Stroke()
}
