package mondrian

import (
	"math/rand/v2"
	"testing"
)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func TestGenerateLinesSatisfiesConstraints(t *testing.T) {
	const (
		span      = 820.0
		margin    = 24.0
		gap       = 40.0
		lineWidth = 4.0
	)

	for seed := uint64(1); seed <= 20; seed++ {
		lines := GenerateLines(testRNG(seed), 4, span, margin, gap, lineWidth)
		if len(lines) != 4 {
			t.Fatalf("seed %d: got %d lines, want 4", seed, len(lines))
		}
		for i, v := range lines {
			if v < margin+lineWidth || v > span-margin-lineWidth {
				t.Errorf("seed %d: line %f outside margins", seed, v)
			}
			if i > 0 {
				if v <= lines[i-1] {
					t.Errorf("seed %d: lines not sorted ascending: %v", seed, lines)
				}
				if v-lines[i-1] < gap {
					t.Errorf("seed %d: gap %f below minimum %f", seed, v-lines[i-1], gap)
				}
			}
		}
	}
}

func TestGenerateLinesInfeasibleDegrades(t *testing.T) {
	// 50 lines with a 40-unit gap cannot fit in a 100-unit span; the
	// generator must return a short list promptly rather than loop forever.
	lines := GenerateLines(testRNG(7), 50, 100, 5, 40, 2)
	if len(lines) >= 50 {
		t.Fatalf("expected degraded result, got %d lines", len(lines))
	}
	for i := 1; i < len(lines); i++ {
		if lines[i]-lines[i-1] < 40 {
			t.Errorf("degraded result still violates gap: %v", lines)
		}
	}
}

func TestGenerateLinesZeroCount(t *testing.T) {
	if got := GenerateLines(testRNG(1), 0, 820, 24, 40, 4); len(got) != 0 {
		t.Errorf("count 0: got %v, want empty", got)
	}
	if got := GenerateLines(testRNG(1), -3, 820, 24, 40, 4); len(got) != 0 {
		t.Errorf("negative count: got %v, want empty", got)
	}
}

func TestGenerateLinesSpanTooSmall(t *testing.T) {
	// Margins consume the whole span: no valid candidate range.
	if got := GenerateLines(testRNG(1), 3, 40, 24, 10, 4); len(got) != 0 {
		t.Errorf("got %v, want empty for collapsed range", got)
	}
}
