package cli

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "composition.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
width = 400
height = 300
vcuts = [100, 200]
hcuts = [150]
line_color = "#1a1a1a"
line_width = 2
duration = 0.5
palette = ["#c62828", "#22439a"]

[[anchor]]
x = 0.25
y = 0.25
color = "#c62828"

[[anchor]]
x = 0.75
y = 0.75
color = "#22439a"
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Width != 400 || cfg.Height != 300 {
		t.Errorf("size = %vx%v, want 400x300", cfg.Width, cfg.Height)
	}
	if len(cfg.VCuts) != 2 || len(cfg.HCuts) != 1 {
		t.Errorf("cuts = %v/%v, want 2/1", cfg.VCuts, cfg.HCuts)
	}
	if len(cfg.Anchors) != 2 || len(cfg.Palette) != 2 {
		t.Errorf("anchors/palette = %d/%d, want 2/2", len(cfg.Anchors), len(cfg.Palette))
	}
	if cfg.Duration != 0.5 || cfg.LineWidth != 2 {
		t.Errorf("duration/line_width = %v/%v", cfg.Duration, cfg.LineWidth)
	}
	if math.Abs(cfg.Anchors[0].Color.R-0.776) > 0.01 {
		t.Errorf("anchor color R = %v, want ~0.776", cfg.Anchors[0].Color.R)
	}
}

func TestLoadConfigRejectsBadInput(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"missing dimensions", `vcuts = [100]`},
		{"negative width", "width = -5\nheight = 300"},
		{"bad anchor color", "width = 400\nheight = 300\n[[anchor]]\nx = 0.5\ny = 0.5\ncolor = \"red\""},
		{"bad palette color", "width = 400\nheight = 300\npalette = [\"#12\"]"},
		{"invalid toml", `width = `},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := loadConfig(writeConfig(t, tc.content)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in      string
		r, g, b float64
		a       float64
		ok      bool
	}{
		{"#ffffff", 1, 1, 1, 1, true},
		{"#000000", 0, 0, 0, 1, true},
		{"#ff000080", 1, 0, 0, 0x80 / 255.0, true},
		{"ffffff", 0, 0, 0, 0, false},
		{"#fff", 0, 0, 0, 0, false},
		{"#zzzzzz", 0, 0, 0, 0, false},
		{"", 0, 0, 0, 0, false},
	}

	for _, tc := range cases {
		c, err := parseHexColor(tc.in)
		if tc.ok != (err == nil) {
			t.Errorf("parseHexColor(%q) error = %v, want ok=%v", tc.in, err, tc.ok)
			continue
		}
		if !tc.ok {
			continue
		}
		if math.Abs(c.R-tc.r) > 1e-9 || math.Abs(c.G-tc.g) > 1e-9 ||
			math.Abs(c.B-tc.b) > 1e-9 || math.Abs(c.A-tc.a) > 1e-9 {
			t.Errorf("parseHexColor(%q) = %+v", tc.in, c)
		}
	}
}
