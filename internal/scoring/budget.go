package scoring

import "trip_planner/internal/domain"

// Share of the daily budget per category, and how many units it is split into.
const (
	hotelShare    = 0.45
	mealShare     = 0.30
	mealsPerDay   = 3.0
	activityShare = 0.25
	activityUnits = 1.5
)

// Benchmarks are per-unit spend ceilings: hotel per night, meal per meal, activity per activity.
type Benchmarks struct {
	Hotel    float64 `json:"hotel"`
	Meal     float64 `json:"meal"`
	Activity float64 `json:"activity"`
}

// For returns the benchmark price for category c.
func (b Benchmarks) For(c domain.PlaceCategory) float64 {
	switch c {
	case domain.CategoryHotel:
		return b.Hotel
	case domain.CategoryMeal:
		return b.Meal
	default:
		return b.Activity
	}
}

// ComputeBudgetBenchmarks splits one total trip budget into per-category ceilings.
func ComputeBudgetBenchmarks(maxBudget float64, days int) Benchmarks {
	if days < 1 {
		days = 1
	}
	daily := maxBudget / float64(days)
	return Benchmarks{
		Hotel:    daily * hotelShare,
		Meal:     daily * mealShare / mealsPerDay,
		Activity: daily * activityShare / activityUnits,
	}
}

// ExtractPrice returns the first present of lodging base, a-la-carte default, day pass; else 0.
func ExtractPrice(p domain.Place) float64 {
	if v, ok := p.LodgingBase(); ok {
		return v
	}
	if v, ok := p.ALaCarte(); ok {
		return v
	}
	if v, ok := p.DayPass(); ok {
		return v
	}
	return 0
}

// PriceMembership is 1 while the price is within the category benchmark and falls
// linearly to 0 at twice the benchmark. Unconstrained budgets and free or
// unpriced places are never penalized.
func PriceMembership(p domain.Place, prefs domain.Preferences) float64 {
	return priceMembership(p, Classify(p), prefs)
}

func priceMembership(p domain.Place, cat domain.PlaceCategory, prefs domain.Preferences) float64 {
	price := ExtractPrice(p)
	if prefs.MaxBudget <= 0 || price <= 0 {
		return 1
	}
	bench := ComputeBudgetBenchmarks(prefs.MaxBudget, prefs.Days()).For(cat)
	if bench <= 0 {
		return 1
	}
	if price <= bench {
		return 1
	}
	fit := 1 - (price-bench)/bench
	if fit < 0 {
		return 0
	}
	return fit
}
