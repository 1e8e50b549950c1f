package mondrian

import (
	"reflect"
	"testing"
)

var (
	classicVCuts = []float64{90, 320, 360, 560}
	classicHCuts = []float64{90, 250, 290, 380, 540}
)

func TestBuildColorMapClassicBlueAnchor(t *testing.T) {
	// Anchor (0.24, 0.63) on 820x600 scales to (196.8, 378): column 1 of
	// [0,90,320,360,560,820], row 3 of [0,90,250,290,380,540,600], so it
	// must land in cell 3*5+1 = 16.
	anchors := []Anchor{{X: 0.24, Y: 0.63, Color: ClassicBlue}}

	colors := BuildColorMap(anchors, classicVCuts, classicHCuts, 820, 600)

	if len(colors) != 1 {
		t.Fatalf("got %d entries, want 1", len(colors))
	}
	if got, ok := colors[16]; !ok || got != ClassicBlue {
		t.Errorf("colors[16] = %v (present %v), want %v", got, ok, ClassicBlue)
	}
}

func TestBuildColorMapIdempotent(t *testing.T) {
	cfg := Classic()

	first := BuildColorMap(cfg.Anchors, cfg.VCuts, cfg.HCuts, cfg.Width, cfg.Height)
	second := BuildColorMap(cfg.Anchors, cfg.VCuts, cfg.HCuts, cfg.Width, cfg.Height)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("mappings differ:\n%v\n%v", first, second)
	}
}

func TestBuildColorMapLaterAnchorOverrides(t *testing.T) {
	// Both anchors resolve to the same cell; the second must win.
	anchors := []Anchor{
		{X: 0.2, Y: 0.2, Color: ClassicRed},
		{X: 0.25, Y: 0.25, Color: ClassicYellow},
	}

	colors := BuildColorMap(anchors, []float64{410}, []float64{300}, 820, 600)

	if len(colors) != 1 {
		t.Fatalf("got %d entries, want 1", len(colors))
	}
	if colors[0] != ClassicYellow {
		t.Errorf("colors[0] = %v, want the later anchor's color", colors[0])
	}
}

func TestBuildColorMapClampsFractions(t *testing.T) {
	anchors := []Anchor{
		{X: -0.5, Y: -2, Color: ClassicRed},  // clamps to (0, 0): first cell
		{X: 1.5, Y: 3, Color: ClassicYellow}, // clamps to (1, 1): last cell
	}

	colors := BuildColorMap(anchors, classicVCuts, classicHCuts, 820, 600)

	if colors[0] != ClassicRed {
		t.Errorf("colors[0] = %v, want %v", colors[0], ClassicRed)
	}
	if colors[29] != ClassicYellow {
		t.Errorf("colors[29] = %v, want %v", colors[29], ClassicYellow)
	}
}

func TestBuildColorMapCanvasEdgeInLastCell(t *testing.T) {
	// An anchor exactly at (1, 1) sits on the canvas edge; the last
	// interval is closed on the right so it still resolves to a cell.
	anchors := []Anchor{{X: 1, Y: 1, Color: ClassicBlack}}

	colors := BuildColorMap(anchors, classicVCuts, classicHCuts, 820, 600)

	if colors[29] != ClassicBlack {
		t.Errorf("colors[29] = %v, want %v", colors[29], ClassicBlack)
	}
}

func TestRandomColorMapSize(t *testing.T) {
	palette := Classic().Palette

	colors := RandomColorMap(testRNG(3), 30, palette)

	if len(colors) != len(palette) {
		t.Fatalf("got %d entries, want %d", len(colors), len(palette))
	}
	for idx := range colors {
		if idx < 0 || idx >= 30 {
			t.Errorf("index %d out of cell range", idx)
		}
	}
}

func TestRandomColorMapPaletteLongerThanCells(t *testing.T) {
	palette := Classic().Palette // 5 colors, only 2 cells

	colors := RandomColorMap(testRNG(3), 2, palette)

	if len(colors) != 2 {
		t.Fatalf("got %d entries, want 2", len(colors))
	}
}

func TestRandomColorMapFreshEachCall(t *testing.T) {
	rng := testRNG(9)
	palette := Classic().Palette

	RandomColorMap(rng, 30, palette)
	second := RandomColorMap(rng, 30, palette)

	// A new call never accumulates entries from its predecessor.
	if len(second) != len(palette) {
		t.Errorf("second call has %d entries, want %d", len(second), len(palette))
	}
}

func TestRandomColorMapEmptyInputs(t *testing.T) {
	if got := RandomColorMap(testRNG(1), 0, Classic().Palette); len(got) != 0 {
		t.Errorf("zero cells: got %v", got)
	}
	if got := RandomColorMap(testRNG(1), 30, nil); len(got) != 0 {
		t.Errorf("empty palette: got %v", got)
	}
}
