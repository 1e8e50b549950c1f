package mondrian

import (
	"math"
	"math/rand/v2"
	"sort"
)

// maxLineAttempts bounds the rejection sampling loop in GenerateLines so an
// infeasible request (count too large for the span) degrades rather than
// spins forever.
const maxLineAttempts = 1000

// GenerateLines produces up to count cut positions along a span via
// rejection sampling. Candidates are drawn uniformly from
// [margin+lineWidth, span-margin-lineWidth] and accepted only when at least
// gap away from every previously accepted position. The result is sorted
// ascending and may be shorter than count when the constraints cannot be
// satisfied within the attempt budget; callers must tolerate a short list.
func GenerateLines(rng *rand.Rand, count int, span, margin, gap, lineWidth float64) []float64 {
	lo := margin + lineWidth
	hi := span - margin - lineWidth
	if count <= 0 || hi <= lo {
		return []float64{}
	}
	lines := make([]float64, 0, count)

	for attempts := 0; len(lines) < count && attempts < maxLineAttempts; attempts++ {
		candidate := lo + rng.Float64()*(hi-lo)
		ok := true
		for _, existing := range lines {
			if math.Abs(candidate-existing) < gap {
				ok = false
				break
			}
		}
		if ok {
			lines = append(lines, candidate)
		}
	}

	sort.Float64s(lines)
	return lines
}
