package mondrian

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title   string
	ShowFPS bool
}

// Run opens a window sized to the composition's canvas and drives it with
// real input: press anywhere to scatter the grid, release to let it settle
// back. Blocks until the window is closed.
func Run(comp *Composition, cfg RunConfig) error {
	title := cfg.Title
	if title == "" {
		title = "mondrian"
	}
	cc := comp.Config()
	ebiten.SetWindowSize(int(cc.Width), int(cc.Height))
	ebiten.SetWindowTitle(title)
	return ebiten.RunGame(&game{comp: comp, cfg: cfg, start: time.Now()})
}

// game adapts a Composition to the ebiten.Game interface. The clock is
// monotonic seconds since Run started.
type game struct {
	comp   *Composition
	cfg    RunConfig
	start  time.Time
	canvas ebitenCanvas
	touch  []ebiten.TouchID
}

func (g *game) now() float64 {
	return time.Since(g.start).Seconds()
}

func (g *game) Update() error {
	now := g.now()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.comp.Randomize(now)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.comp.Release(now)
	}

	g.touch = inpututil.AppendJustPressedTouchIDs(g.touch[:0])
	if len(g.touch) > 0 {
		g.comp.Randomize(now)
	}
	g.touch = inpututil.AppendJustReleasedTouchIDs(g.touch[:0])
	if len(g.touch) > 0 {
		g.comp.Release(now)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.canvas.target = screen
	g.comp.Draw(&g.canvas, g.now())

	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
			ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cc := g.comp.Config()
	return int(cc.Width), int(cc.Height)
}

// whitePixel is a 1x1 white image scaled via GeoM for solid color fills.
// Created lazily so importing the package never touches the GPU.
var whitePixel *ebiten.Image

func pixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// ebitenCanvas implements Canvas on an ebiten.Image target.
type ebitenCanvas struct {
	target *ebiten.Image
}

func (c *ebitenCanvas) Fill(col Color) {
	c.target.Fill(col.toRGBA())
}

func (c *ebitenCanvas) FillRect(r Rect, col Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleWithColor(col.toRGBA())
	c.target.DrawImage(pixel(), op)
}

func (c *ebitenCanvas) StrokeLine(x1, y1, x2, y2, width float64, col Color) {
	vector.StrokeLine(c.target,
		float32(x1), float32(y1), float32(x2), float32(y2),
		float32(width), col.toRGBA(), false)
}
