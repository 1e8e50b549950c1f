package cli

import (
	"fmt"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/phanxgames/mondrian"
)

// fileConfig is the TOML schema for a custom composition. Visual and timing
// fields left out fall back to the library defaults.
//
//	width = 820
//	height = 600
//	vcuts = [90, 320, 360, 560]
//	hcuts = [90, 250, 290, 380, 540]
//	palette = ["#c62828", "#22439a", "#f8d332"]
//
//	[[anchor]]
//	x = 0.24
//	y = 0.63
//	color = "#22439a"
type fileConfig struct {
	Width      float64      `toml:"width"`
	Height     float64      `toml:"height"`
	VCuts      []float64    `toml:"vcuts"`
	HCuts      []float64    `toml:"hcuts"`
	Anchors    []fileAnchor `toml:"anchor"`
	Palette    []string     `toml:"palette"`
	Background string       `toml:"background"`
	LineColor  string       `toml:"line_color"`
	LineWidth  float64      `toml:"line_width"`
	Margin     float64      `toml:"margin"`
	MinGap     float64      `toml:"min_gap"`
	Duration   float64      `toml:"duration"`
}

type fileAnchor struct {
	X     float64 `toml:"x"`
	Y     float64 `toml:"y"`
	Color string  `toml:"color"`
}

// loadConfig reads a TOML composition file. It returns an error for
// unparseable files, missing dimensions, and malformed colors.
func loadConfig(path string) (mondrian.Config, error) {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return mondrian.Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	cfg, err := fc.toConfig()
	if err != nil {
		return mondrian.Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func (fc fileConfig) toConfig() (mondrian.Config, error) {
	if fc.Width <= 0 || fc.Height <= 0 {
		return mondrian.Config{}, fmt.Errorf("width and height must be positive")
	}

	cfg := mondrian.Config{
		Width:     fc.Width,
		Height:    fc.Height,
		VCuts:     fc.VCuts,
		HCuts:     fc.HCuts,
		LineWidth: fc.LineWidth,
		Margin:    fc.Margin,
		MinGap:    fc.MinGap,
		Duration:  fc.Duration,
	}

	for _, fa := range fc.Anchors {
		c, err := parseHexColor(fa.Color)
		if err != nil {
			return mondrian.Config{}, fmt.Errorf("anchor (%v, %v): %w", fa.X, fa.Y, err)
		}
		cfg.Anchors = append(cfg.Anchors, mondrian.Anchor{X: fa.X, Y: fa.Y, Color: c})
	}
	for _, s := range fc.Palette {
		c, err := parseHexColor(s)
		if err != nil {
			return mondrian.Config{}, fmt.Errorf("palette: %w", err)
		}
		cfg.Palette = append(cfg.Palette, c)
	}

	if fc.Background != "" {
		c, err := parseHexColor(fc.Background)
		if err != nil {
			return mondrian.Config{}, fmt.Errorf("background: %w", err)
		}
		cfg.Background = c
	}
	if fc.LineColor != "" {
		c, err := parseHexColor(fc.LineColor)
		if err != nil {
			return mondrian.Config{}, fmt.Errorf("line_color: %w", err)
		}
		cfg.LineColor = c
	}
	return cfg, nil
}

// parseHexColor parses "#rrggbb" or "#rrggbbaa" into a mondrian.Color.
func parseHexColor(s string) (mondrian.Color, error) {
	if len(s) == 0 || s[0] != '#' || (len(s) != 7 && len(s) != 9) {
		return mondrian.Color{}, fmt.Errorf("invalid color %q, want #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 64)
	if err != nil {
		return mondrian.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	a := uint64(255)
	if len(s) == 9 {
		a = v & 0xff
		v >>= 8
	}
	return mondrian.Color{
		R: float64(v>>16&0xff) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v&0xff) / 255,
		A: float64(a) / 255,
	}, nil
}
