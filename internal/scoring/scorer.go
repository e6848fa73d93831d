// Package scoring ranks candidate places against a traveller's preferences with a
// weighted fuzzy model: interest, distance and price memberships combined under
// category-dependent weights, then scaled by lodging, traveller-type, thematic and
// seasonal multipliers.
package scoring

import (
	"slices"

	"trip_planner/internal/domain"
	"trip_planner/internal/fuzzy"
	"trip_planner/internal/geo"
	"trip_planner/internal/tags"
)

// Memberships are the three fuzzy inputs of the composite score.
type Memberships struct {
	Interest float64 `json:"interest"`
	Distance float64 `json:"distance"`
	Price    float64 `json:"price"`
}

// Breakdown explains a score. Score is identical to FuzzyScore for the same inputs.
type Breakdown struct {
	PlaceID           string               `json:"placeId"`
	Category          domain.PlaceCategory `json:"category"`
	NormalizedTags    []string             `json:"normalizedTags"`
	DistanceKm        float64              `json:"distanceKm"`
	Memberships       Memberships          `json:"memberships"`
	Weights           Weights              `json:"weights"`
	Priority          domain.Priority      `json:"priority"`
	TravelType        domain.TravelType    `json:"travelType"`
	LodgingPreference string               `json:"lodgingPreference"`
	SeasonMode        domain.SeasonMode    `json:"seasonMode"`
	SeasonalEffects   []string             `json:"seasonalEffects"`
	Multiplier        float64              `json:"multiplier"`
	Score             float64              `json:"score"`
}

// Scorer is stateless apart from its vocabulary and safe for concurrent use.
type Scorer struct {
	tags *tags.Normalizer
}

// NewScorer returns a Scorer over n, or over the built-in vocabulary when n is nil.
func NewScorer(n *tags.Normalizer) *Scorer {
	if n == nil {
		n = tags.Default()
	}
	return &Scorer{tags: n}
}

// Tags exposes the vocabulary the scorer normalizes with.
func (s *Scorer) Tags() *tags.Normalizer { return s.tags }

// FuzzyScore is the composite score of p in [0,1].
func (s *Scorer) FuzzyScore(p domain.Place, prefs domain.Preferences) float64 {
	return s.Explain(p, prefs).Score
}

// InterestFit is the package-level InterestFit over the scorer's vocabulary.
func (s *Scorer) InterestFit(placeTags, interests []string) float64 {
	return InterestFit(s.tags, placeTags, interests)
}

// Decorate returns a scored copy of p carrying category and distance.
func (s *Scorer) Decorate(p domain.Place, prefs domain.Preferences) domain.ScoredPlace {
	b := s.Explain(p, prefs)
	cp := p
	cp.Tags = slices.Clone(p.Tags)
	cp.Activities = slices.Clone(p.Activities)
	return domain.ScoredPlace{Place: cp, Score: b.Score, Category: b.Category, DistanceKm: b.DistanceKm}
}

// Explain scores p and reports every membership, weight and multiplier behind the result.
func (s *Scorer) Explain(p domain.Place, prefs domain.Preferences) Breakdown {
	cat := Classify(p)
	normalized := s.tags.NormalizeAll(p.Tags)
	placeTags := newTagSet(normalized)

	km := DistanceFromStart(p, prefs)
	m := Memberships{
		Interest: interestFit(normalized, interestPool(s.tags, prefs.Interests)),
		Distance: DistanceMembership(km),
		Price:    priceMembership(p, cat, prefs),
	}

	mult := 1.0
	if prefs.WantsLodgingStyle() {
		if placeTags.has(s.tags.NormalizeTag(prefs.LodgingPreference)) {
			mult *= lodgingMatchBoost
		} else {
			mult *= lodgingMissPenalty
		}
	}
	mult *= travelerMultiplier(prefs.TravelType, placeTags)

	rawInterests := make([]string, 0, len(prefs.Interests))
	for _, in := range prefs.Interests {
		rawInterests = append(rawInterests, s.tags.NormalizeTag(in))
	}
	mult *= thematicMultiplier(newTagSet(rawInterests), placeTags)

	seasonMult, effects := seasonMultiplier(prefs.SeasonMode, placeTags)
	mult *= seasonMult

	prio := effectivePriority(prefs.Priority)
	w := weightsFor(cat, prio)
	base := w.Interest*m.Interest + w.Distance*m.Distance + w.Price*m.Price

	return Breakdown{
		PlaceID:           p.ID,
		Category:          cat,
		NormalizedTags:    normalized,
		DistanceKm:        km,
		Memberships:       m,
		Weights:           w,
		Priority:          prio,
		TravelType:        prefs.TravelType,
		LodgingPreference: prefs.LodgingPreference,
		SeasonMode:        prefs.SeasonMode,
		SeasonalEffects:   effects,
		Multiplier:        mult,
		Score:             fuzzy.Clamp01(base * mult),
	}
}

// DistanceFromStart is the straight-line distance from the start city, or 9999 km
// when either side has no usable coordinates.
func DistanceFromStart(p domain.Place, prefs domain.Preferences) float64 {
	start, ok := prefs.StartCity.Coords()
	if !ok || p.Coordinates == nil || p.Coordinates.Lat != p.Coordinates.Lat || p.Coordinates.Lng != p.Coordinates.Lng {
		return missingDistanceKm
	}
	return geo.DistanceKm(start.Lat, start.Lng, p.Coordinates.Lat, p.Coordinates.Lng)
}

// DistanceMembership gives full credit within 15 km and none from 140 km.
func DistanceMembership(km float64) float64 {
	if km <= 15 {
		return 1
	}
	return fuzzy.Trapezoid(km, 0, 15, 60, 140)
}
