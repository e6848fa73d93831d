package scoring_test

import (
	"math"
	"testing"

	"trip_planner/internal/domain"
	"trip_planner/internal/scoring"
)

func TestComputeBudgetBenchmarks(t *testing.T) {
	b := scoring.ComputeBudgetBenchmarks(9000, 3)
	if math.Abs(b.Hotel-1350) > 1e-9 || math.Abs(b.Meal-300) > 1e-9 || math.Abs(b.Activity-500) > 1e-9 {
		t.Fatalf("unexpected benchmarks: %+v", b)
	}
}

func TestComputeBudgetBenchmarks_ZeroDaysTreatedAsOne(t *testing.T) {
	b := scoring.ComputeBudgetBenchmarks(1000, 0)
	if math.Abs(b.Hotel-450) > 1e-9 {
		t.Fatalf("unexpected hotel benchmark: %v", b.Hotel)
	}
}

func TestExtractPrice_Order(t *testing.T) {
	p := domain.Place{Pricing: &domain.Pricing{
		MealPlan: &domain.MealPlan{ALaCarteDefault: pf(250)},
		DayUse:   &domain.DayUse{DayPassPrice: pf(900)},
	}}
	if got := scoring.ExtractPrice(p); got != 250 {
		t.Fatalf("ExtractPrice = %v, want 250", got)
	}
	if got := scoring.ExtractPrice(domain.Place{}); got != 0 {
		t.Fatalf("ExtractPrice(empty) = %v, want 0", got)
	}
}

// Scenario A: 1000/night against a ~1050 benchmark.
func TestPriceMembership_WithinBenchmark(t *testing.T) {
	prefs := prefsFor(7000, "2025-03-01", "2025-03-03")
	if prefs.Nights() != 2 || prefs.Days() != 3 {
		t.Fatalf("nights/days = %d/%d", prefs.Nights(), prefs.Days())
	}
	if got := scoring.PriceMembership(hotel("h", 1000), prefs); got != 1 {
		t.Fatalf("PriceMembership = %v, want 1", got)
	}
}

// Scenario B: 1000/night against a 315 benchmark clamps at 0.
func TestPriceMembership_FarOverBenchmarkClampsToZero(t *testing.T) {
	prefs := prefsFor(2100, "2025-03-01", "2025-03-03")
	if got := scoring.PriceMembership(hotel("h", 1000), prefs); got != 0 {
		t.Fatalf("PriceMembership = %v, want 0", got)
	}
}

func TestPriceMembership_LinearFalloff(t *testing.T) {
	prefs := prefsFor(9000, "2025-03-01", "2025-03-03") // meal benchmark 300
	meal := domain.Place{Pricing: &domain.Pricing{MealPlan: &domain.MealPlan{ALaCarteDefault: pf(450)}}}
	if got := scoring.PriceMembership(meal, prefs); math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("PriceMembership = %v, want 0.5", got)
	}
}

func TestPriceMembership_Neutral(t *testing.T) {
	if got := scoring.PriceMembership(hotel("h", 5000), prefsFor(0, "2025-03-01", "2025-03-03")); got != 1 {
		t.Fatalf("zero budget: got %v, want 1", got)
	}
	free := domain.Place{Kind: "park"}
	if got := scoring.PriceMembership(free, prefsFor(100, "2025-03-01", "2025-03-03")); got != 1 {
		t.Fatalf("unpriced place: got %v, want 1", got)
	}
}
