package scoring

import (
	"math"
	"strings"

	"trip_planner/internal/fuzzy"
	"trip_planner/internal/tags"
)

const (
	exactMatch   = 1.0
	partialMatch = 0.5
)

// InterestFit scores the overlap between a place's tags and the user's expanded interests.
func InterestFit(n *tags.Normalizer, placeTags, interests []string) float64 {
	if len(placeTags) == 0 || len(interests) == 0 {
		return 0
	}
	return interestFit(n.NormalizeAll(placeTags), interestPool(n, interests))
}

func interestPool(n *tags.Normalizer, interests []string) map[string]struct{} {
	pool := make(map[string]struct{}, len(interests)*4)
	for _, in := range interests {
		for t := range n.ExpandInterest(in) {
			pool[t] = struct{}{}
		}
	}
	return pool
}

func interestFit(normalized []string, pool map[string]struct{}) float64 {
	if len(normalized) == 0 || len(pool) == 0 {
		return 0
	}
	var matchCount float64
	for _, t := range normalized {
		if _, ok := pool[t]; ok {
			matchCount += exactMatch
			continue
		}
		for p := range pool {
			if strings.Contains(p, t) || strings.Contains(t, p) {
				matchCount += partialMatch
				break
			}
		}
	}
	// sqrt dampens tag-heavy places
	base := matchCount / math.Sqrt(float64(len(normalized)))
	return fuzzy.Clamp01(fuzzy.Trapezoid(base, 0.15, 0.5, 1.0, 1.4))
}
