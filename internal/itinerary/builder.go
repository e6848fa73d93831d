// Package itinerary ranks scored candidates per category, buckets them into
// recommendation tiers and assembles a day-by-day plan with costs.
package itinerary

import (
	"slices"
	"time"

	"trip_planner/internal/costs"
	"trip_planner/internal/domain"
	"trip_planner/internal/scoring"
)

const (
	// a hotel this good survives a lodging-style filter it does not match
	lodgingOverrideScore = 0.8
	// candidates per slot family (meals, activities)
	slotPool            = 3
	seasonToleranceBias = 0.9
)

// Ranked holds the per-category candidate lists, best first.
type Ranked struct {
	Hotels     []domain.ScoredPlace `json:"hotel"`
	Meals      []domain.ScoredPlace `json:"meal"`
	Activities []domain.ScoredPlace `json:"activity"`
}

type Builder struct {
	scorer *scoring.Scorer
	now    func() time.Time
}

// NewBuilder returns a Builder; now stamps plan generation time (nil means time.Now).
func NewBuilder(s *scoring.Scorer, now func() time.Time) *Builder {
	if s == nil {
		s = scoring.NewScorer(nil)
	}
	if now == nil {
		now = time.Now
	}
	return &Builder{scorer: s, now: now}
}

func (b *Builder) Scorer() *scoring.Scorer { return b.scorer }

// BuildItinerary scores, ranks and assembles a plan in one pass.
func (b *Builder) BuildItinerary(places []domain.Place, prefs domain.Preferences) domain.ItineraryPlan {
	return b.Assemble(b.Rank(b.Score(places, prefs), prefs), prefs)
}

// Score decorates every place with its composite score.
func (b *Builder) Score(places []domain.Place, prefs domain.Preferences) []domain.ScoredPlace {
	out := make([]domain.ScoredPlace, len(places))
	for i, p := range places {
		out[i] = b.scorer.Decorate(p, prefs)
	}
	return out
}

// Rank partitions scored places by category, applies the lodging-style filter and
// the season-tolerance bias, and sorts each list best first.
func (b *Builder) Rank(scored []domain.ScoredPlace, prefs domain.Preferences) Ranked {
	r := Ranked{Hotels: []domain.ScoredPlace{}, Meals: []domain.ScoredPlace{}, Activities: []domain.ScoredPlace{}}
	for _, sp := range scored {
		switch sp.Category {
		case domain.CategoryHotel:
			r.Hotels = append(r.Hotels, sp)
		case domain.CategoryMeal:
			r.Meals = append(r.Meals, sp)
		default:
			r.Activities = append(r.Activities, sp)
		}
	}
	sortByScore(r.Hotels)
	sortByScore(r.Meals)
	sortByScore(r.Activities)

	if prefs.WantsLodgingStyle() {
		r.Hotels = b.filterLodging(r.Hotels, prefs.LodgingPreference)
	}
	r.Activities = b.applySeasonTolerance(r.Activities, prefs)
	return r
}

func (b *Builder) filterLodging(hotels []domain.ScoredPlace, style string) []domain.ScoredPlace {
	n := b.scorer.Tags()
	want := n.NormalizeTag(style)
	kept := make([]domain.ScoredPlace, 0, len(hotels))
	for _, h := range hotels {
		if h.Score >= lodgingOverrideScore || slices.Contains(n.NormalizeAll(h.Tags), want) {
			kept = append(kept, h)
		}
	}
	sortByScore(kept)
	return kept
}

// applySeasonTolerance nudges activities down when the travel season clashes with
// the weather the traveller said they tolerate.
func (b *Builder) applySeasonTolerance(acts []domain.ScoredPlace, prefs domain.Preferences) []domain.ScoredPlace {
	var penalized []string
	switch {
	case prefs.SeasonMode == domain.SeasonRainy && prefs.SeasonTolerance == domain.ToleranceDry:
		penalized = []string{"beach", "park"}
	case prefs.SeasonMode == domain.SeasonDry && prefs.SeasonTolerance == domain.ToleranceWet:
		penalized = []string{"museum", "indoor"}
	default:
		return acts
	}
	n := b.scorer.Tags()
	out := make([]domain.ScoredPlace, len(acts))
	for i, sp := range acts {
		norm := n.NormalizeAll(sp.Tags)
		if slices.ContainsFunc(penalized, func(t string) bool { return slices.Contains(norm, t) }) {
			sp.Score = max(0, sp.Score*seasonToleranceBias)
		}
		out[i] = sp
	}
	sortByScore(out)
	return out
}

// Assemble turns ranked candidates into a plan and derives every cost.
func (b *Builder) Assemble(r Ranked, prefs domain.Preferences) domain.ItineraryPlan {
	nights := prefs.Nights()
	days := nights + 1

	withStay := func(sp domain.ScoredPlace) domain.ScoredPlace {
		sp.NightlyPrice = costs.HotelNightPrice(sp.Place)
		sp.TotalCost = sp.NightlyPrice * float64(nights)
		return sp
	}
	withALaCarte := func(sp domain.ScoredPlace) domain.ScoredPlace {
		sp.ComputedCost = costs.MealALaCartePrice(sp.Place)
		return sp
	}
	withDayUse := func(sp domain.ScoredPlace) domain.ScoredPlace {
		sp.ComputedCost = costs.ActivityCost(sp.Place)
		return sp
	}

	hotelTiers := mapBucket(Bucket(r.Hotels, prefs.Priority), withStay)
	mealTiers := mapBucket(Bucket(r.Meals, prefs.Priority), withALaCarte)
	activityTiers := mapBucket(Bucket(r.Activities, prefs.Priority), withDayUse)

	meta := domain.PlanMeta{Preferences: prefs, Nights: nights, GeneratedAt: b.now().UTC()}
	meta.Interests = slices.Clone(prefs.Interests)

	plan := domain.ItineraryPlan{
		Meta: meta,
		Accommodation: domain.Accommodation{
			Nights:       nights,
			Alternatives: hotelTiers,
		},
		Days: make([]domain.DaySlot, 0, days),
		Alternatives: domain.PlanAlternatives{
			Meal:     mealTiers,
			Activity: activityTiers,
		},
	}
	if len(r.Hotels) > 0 {
		sel := withStay(r.Hotels[0])
		plan.Accommodation.Selected = &sel
	}

	mealPicks := topN(r.Meals, slotPool)
	actPicks := topN(r.Activities, slotPool)
	for i := 0; i < days; i++ {
		d := domain.DaySlot{
			Date:    prefs.StartDate.AddDate(0, 0, i),
			Covered: i < nights,
		}
		for k, m := range domain.MealTypes {
			// meal costs are filled in by RecomputeAllMealCosts below
			*d.Meal(m) = domain.Slot{Selected: pick(mealPicks, k, withALaCarte), Alternatives: mealTiers.Clone()}
		}
		d.Morning = domain.Slot{Selected: pick(actPicks, 0, withDayUse), Alternatives: activityTiers.Clone()}
		d.Afternoon = domain.Slot{Selected: pick(actPicks, 1, withDayUse), Alternatives: activityTiers.Clone()}
		d.Night = domain.Slot{Selected: pick(actPicks, 2, withDayUse), Alternatives: activityTiers.Clone()}
		plan.Days = append(plan.Days, d)
	}

	return RecomputeAllMealCosts(plan)
}

func topN(list []domain.ScoredPlace, n int) []domain.ScoredPlace {
	if len(list) > n {
		return list[:n]
	}
	return list
}

// pick takes the k-th candidate, falling back to the best one.
func pick(top []domain.ScoredPlace, k int, cost func(domain.ScoredPlace) domain.ScoredPlace) *domain.ScoredPlace {
	if len(top) == 0 {
		return nil
	}
	if k >= len(top) {
		k = 0
	}
	sp := cost(top[k])
	return &sp
}
