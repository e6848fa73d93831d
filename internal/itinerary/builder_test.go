package itinerary_test

import (
	"fmt"
	"math"
	"reflect"
	"testing"
	"time"

	"trip_planner/internal/domain"
	"trip_planner/internal/itinerary"
)

var fixedNow = func() time.Time { return time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC) }

func pf(f float64) *float64 { return &f }

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func prefs(from, to string) domain.Preferences {
	return domain.Preferences{
		StartDate: day(from),
		EndDate:   day(to),
		Interests: []string{"beach", "foodie"},
		Priority:  domain.PriorityBalanced,
	}
}

func bnbHotel(id string, base float64) domain.Place {
	return domain.Place{
		ID: id, Name: id, Kind: "hotel", Tags: []string{"beach"},
		Pricing: &domain.Pricing{
			Lodging:  &domain.LodgingPricing{Base: pf(base)},
			MealPlan: &domain.MealPlan{BreakfastIncluded: true},
		},
	}
}

func restaurant(id string, price float64) domain.Place {
	return domain.Place{
		ID: id, Name: id, Kind: "restaurant", Tags: []string{"foodie"},
		Pricing: &domain.Pricing{MealPlan: &domain.MealPlan{ALaCarteDefault: pf(price)}},
	}
}

func dayTrip(id string, price float64) domain.Place {
	return domain.Place{
		ID: id, Name: id, Kind: "tour", Tags: []string{"beach"},
		Pricing: &domain.Pricing{DayUse: &domain.DayUse{DayPassPrice: pf(price)}},
	}
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func newBuilder() *itinerary.Builder { return itinerary.NewBuilder(nil, fixedNow) }

func TestBuildItinerary_EmptyPools(t *testing.T) {
	plan := newBuilder().BuildItinerary(nil, prefs("2025-06-01", "2025-06-03"))

	if len(plan.Days) != 3 || plan.Meta.Nights != 2 || plan.Accommodation.Nights != 2 {
		t.Fatalf("unexpected shape: days=%d nights=%d", len(plan.Days), plan.Meta.Nights)
	}
	if plan.Accommodation.Selected != nil {
		t.Fatalf("expected no hotel")
	}
	for _, d := range plan.Days {
		if d.Breakfast.Selected != nil || d.Morning.Selected != nil {
			t.Fatalf("expected empty slots on %v", d.Date)
		}
		if d.Dinner.Alternatives.Highly == nil || d.Night.Alternatives.Considerable == nil {
			t.Fatalf("tiers must be empty arrays, not nil")
		}
	}
	if plan.Costs.Total != 0 {
		t.Fatalf("expected zero total, got %v", plan.Costs.Total)
	}
	if !plan.Meta.GeneratedAt.Equal(fixedNow()) {
		t.Fatalf("generatedAt = %v", plan.Meta.GeneratedAt)
	}
}

// Scenario C: same start and end date.
func TestBuildItinerary_ZeroNights(t *testing.T) {
	places := []domain.Place{bnbHotel("h1", 1500), restaurant("r1", 420)}
	plan := newBuilder().BuildItinerary(places, prefs("2025-06-01", "2025-06-01"))

	if len(plan.Days) != 1 {
		t.Fatalf("expected exactly one day, got %d", len(plan.Days))
	}
	if plan.Accommodation.Selected == nil || plan.Accommodation.Selected.ID != "h1" {
		t.Fatalf("expected h1 selected")
	}
	if plan.Accommodation.Selected.TotalCost != 0 {
		t.Fatalf("zero nights must cost nothing, got %v", plan.Accommodation.Selected.TotalCost)
	}
	d := plan.Days[0]
	if d.Covered {
		t.Fatalf("day 0 must not be covered with zero nights")
	}
	for _, s := range []domain.Slot{d.Breakfast, d.Lunch, d.Dinner} {
		if s.Selected == nil || s.Selected.ComputedCost != 420 {
			t.Fatalf("expected full a-la-carte price, got %+v", s.Selected)
		}
	}
}

func TestBuildItinerary_CoverageAndCosts(t *testing.T) {
	places := []domain.Place{bnbHotel("h1", 1000), restaurant("r1", 420), dayTrip("a1", 100)}
	plan := newBuilder().BuildItinerary(places, prefs("2025-06-01", "2025-06-03"))

	if len(plan.Days) != 3 {
		t.Fatalf("days = %d", len(plan.Days))
	}
	wantBreakfast := []float64{0, 0, 420}
	for i, d := range plan.Days {
		if !d.Date.Equal(day("2025-06-01").AddDate(0, 0, i)) {
			t.Fatalf("day %d date = %v", i, d.Date)
		}
		if d.Covered != (i < 2) {
			t.Fatalf("day %d covered = %v", i, d.Covered)
		}
		if got := d.Breakfast.Selected.ComputedCost; got != wantBreakfast[i] {
			t.Fatalf("day %d breakfast = %v, want %v", i, got, wantBreakfast[i])
		}
		if got := d.Lunch.Selected.ComputedCost; got != 420 {
			t.Fatalf("day %d lunch = %v", i, got)
		}
		// one activity fills all three slots
		for _, s := range d.Activities() {
			if s.Selected == nil || s.Selected.ID != "a1" || s.Selected.ComputedCost != 100 {
				t.Fatalf("day %d activity slot = %+v", i, s.Selected)
			}
		}
	}
	if sel := plan.Accommodation.Selected; sel.NightlyPrice != 1000 || sel.TotalCost != 2000 {
		t.Fatalf("hotel projection = %v/%v", sel.NightlyPrice, sel.TotalCost)
	}
	want := domain.CostSummary{Accommodation: 2000, Meals: 2940, Activities: 900, Total: 5840}
	if plan.Costs != want {
		t.Fatalf("costs = %+v, want %+v", plan.Costs, want)
	}
}

// Scenario D: unpriced foodie venue.
func TestBuildItinerary_DefaultMealPrice(t *testing.T) {
	venue := domain.Place{ID: "f1", Name: "Carinderia", Tags: []string{"foodie"}}
	plan := newBuilder().BuildItinerary([]domain.Place{venue}, prefs("2025-06-01", "2025-06-02"))
	if got := plan.Days[0].Dinner.Selected; got == nil || got.ComputedCost != 300 {
		t.Fatalf("expected 300, got %+v", got)
	}
}

func TestBuildItinerary_MealSlotsFromTopThree(t *testing.T) {
	p := prefs("2025-06-01", "2025-06-02")
	places := []domain.Place{restaurant("r1", 100), restaurant("r2", 100), restaurant("r3", 100), restaurant("r4", 100)}
	plan := newBuilder().BuildItinerary(places, p)

	d := plan.Days[0]
	got := []string{d.Breakfast.Selected.ID, d.Lunch.Selected.ID, d.Dinner.Selected.ID}
	// equal scores: ties break on id
	if !reflect.DeepEqual(got, []string{"r1", "r2", "r3"}) {
		t.Fatalf("meal picks = %v", got)
	}
}

func TestBuildItinerary_DoesNotMutateInputs(t *testing.T) {
	places := []domain.Place{bnbHotel("h1", 1000), restaurant("r1", 420)}
	before := fmt.Sprintf("%+v", places)
	p := prefs("2025-06-01", "2025-06-03")
	plan := newBuilder().BuildItinerary(places, p)
	plan.Days[0].Breakfast.Selected.Tags[0] = "changed"
	if fmt.Sprintf("%+v", places) != before {
		t.Fatalf("input places were mutated")
	}
}

func scored(id string, cat domain.PlaceCategory, score float64, tags ...string) domain.ScoredPlace {
	return domain.ScoredPlace{Place: domain.Place{ID: id, Name: id, Tags: tags}, Category: cat, Score: score}
}

func TestBucket_Thresholds(t *testing.T) {
	ranked := []domain.ScoredPlace{
		scored("a", domain.CategoryActivity, 0.75),
		scored("b", domain.CategoryActivity, 0.45),
		scored("c", domain.CategoryActivity, 0.4499),
	}
	b := itinerary.Bucket(ranked, domain.PriorityBalanced)
	if len(b.Highly) != 1 || b.Highly[0].ID != "a" {
		t.Fatalf("highly = %+v", b.Highly)
	}
	if len(b.Considerable) != 1 || b.Considerable[0].ID != "b" {
		t.Fatalf("considerable = %+v", b.Considerable)
	}
}

func TestBucket_Caps(t *testing.T) {
	var ranked []domain.ScoredPlace
	for i := 0; i < 8; i++ {
		ranked = append(ranked, scored(fmt.Sprintf("h%02d", i), domain.CategoryMeal, 0.9-float64(i)*0.01))
	}
	for i := 0; i < 20; i++ {
		ranked = append(ranked, scored(fmt.Sprintf("c%02d", i), domain.CategoryMeal, 0.7-float64(i)*0.01))
	}
	b := itinerary.Bucket(ranked, domain.PriorityBalanced)
	if len(b.Highly) != 5 || len(b.Considerable) != 15 {
		t.Fatalf("caps: highly=%d considerable=%d", len(b.Highly), len(b.Considerable))
	}
	if b.Highly[0].ID != "h00" || b.Highly[4].ID != "h04" || b.Considerable[14].ID != "c14" {
		t.Fatalf("caps must keep the top of the ranking")
	}
}

func TestBucket_PriorityOrdering(t *testing.T) {
	near := scored("near", domain.CategoryActivity, 0.8)
	near.DistanceKm = 3
	far := scored("far", domain.CategoryActivity, 0.95)
	far.DistanceKm = 80
	cheap := scored("cheap", domain.CategoryActivity, 0.85)
	cheap.DistanceKm = 40
	cheap.Pricing = &domain.Pricing{DayUse: &domain.DayUse{DayPassPrice: pf(10)}}
	far.Pricing = &domain.Pricing{DayUse: &domain.DayUse{DayPassPrice: pf(500)}}
	near.Pricing = &domain.Pricing{DayUse: &domain.DayUse{DayPassPrice: pf(200)}}
	ranked := []domain.ScoredPlace{far, cheap, near}

	ids := func(tier []domain.ScoredPlace) []string {
		out := []string{}
		for _, sp := range tier {
			out = append(out, sp.ID)
		}
		return out
	}
	if got := ids(itinerary.Bucket(ranked, domain.PriorityDistance).Highly); !reflect.DeepEqual(got, []string{"near", "cheap", "far"}) {
		t.Fatalf("distance order = %v", got)
	}
	if got := ids(itinerary.Bucket(ranked, domain.PriorityBudget).Highly); !reflect.DeepEqual(got, []string{"cheap", "near", "far"}) {
		t.Fatalf("price order = %v", got)
	}
	if got := ids(itinerary.Bucket(ranked, domain.PriorityInterest).Highly); !reflect.DeepEqual(got, []string{"far", "cheap", "near"}) {
		t.Fatalf("score order = %v", got)
	}
}

func TestRank_LodgingFilterKeepsExcellentAlternatives(t *testing.T) {
	p := prefs("2025-06-01", "2025-06-03")
	p.LodgingPreference = "Resort"
	in := []domain.ScoredPlace{
		scored("match", domain.CategoryHotel, 0.5, "resorts"),
		scored("star", domain.CategoryHotel, 0.8, "boutique"),
		scored("drop", domain.CategoryHotel, 0.79, "hostel"),
	}
	r := newBuilder().Rank(in, p)
	if len(r.Hotels) != 2 || r.Hotels[0].ID != "star" || r.Hotels[1].ID != "match" {
		t.Fatalf("hotels = %+v", r.Hotels)
	}
}

func TestRank_SeasonTolerance(t *testing.T) {
	p := prefs("2025-06-01", "2025-06-03")
	p.SeasonMode = domain.SeasonRainy
	p.SeasonTolerance = domain.ToleranceDry
	in := []domain.ScoredPlace{
		scored("beach", domain.CategoryActivity, 0.8, "beach"),
		scored("museum", domain.CategoryActivity, 0.75, "museum"),
	}
	r := newBuilder().Rank(in, p)
	if r.Activities[0].ID != "museum" || !near(r.Activities[1].Score, 0.72) {
		t.Fatalf("activities = %+v", r.Activities)
	}
	if in[0].Score != 0.8 {
		t.Fatalf("input slice was modified")
	}

	p.SeasonMode, p.SeasonTolerance = domain.SeasonDry, domain.ToleranceWet
	r = newBuilder().Rank(in, p)
	if r.Activities[0].ID != "beach" || !near(r.Activities[1].Score, 0.675) {
		t.Fatalf("activities = %+v", r.Activities)
	}
}

// Scenario E.
func TestRecomputeAllMealCosts_Idempotent(t *testing.T) {
	places := []domain.Place{bnbHotel("h1", 1000), restaurant("r1", 420), restaurant("r2", 380), dayTrip("a1", 100)}
	plan := newBuilder().BuildItinerary(places, prefs("2025-06-01", "2025-06-04"))

	once := itinerary.RecomputeAllMealCosts(plan)
	twice := itinerary.RecomputeAllMealCosts(once)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("recompute is not idempotent")
	}
	if !reflect.DeepEqual(plan, once) {
		t.Fatalf("builder output should already be recomputed")
	}
}

func TestRecomputeAllMealCosts_TiersFollowCoverage(t *testing.T) {
	places := []domain.Place{bnbHotel("h1", 1000), restaurant("r1", 420)}
	plan := newBuilder().BuildItinerary(places, prefs("2025-06-01", "2025-06-02"))

	covered := plan.Days[0].Breakfast.Alternatives
	last := plan.Days[1].Breakfast.Alternatives
	all := append(append([]domain.ScoredPlace{}, covered.Highly...), covered.Considerable...)
	if len(all) == 0 {
		t.Skip("restaurant scored below the considerable cutoff")
	}
	for _, sp := range all {
		if sp.ComputedCost != 0 {
			t.Fatalf("covered breakfast alternative cost = %v", sp.ComputedCost)
		}
	}
	for _, sp := range append(append([]domain.ScoredPlace{}, last.Highly...), last.Considerable...) {
		if sp.ComputedCost != 420 {
			t.Fatalf("uncovered breakfast alternative cost = %v", sp.ComputedCost)
		}
	}
}

func TestSelectAccommodation(t *testing.T) {
	noBreakfast := bnbHotel("h2", 800)
	noBreakfast.Pricing.MealPlan = nil
	places := []domain.Place{bnbHotel("h1", 1000), noBreakfast, restaurant("r1", 420)}
	p := prefs("2025-06-01", "2025-06-03")
	p.Interests = []string{"beach"}
	plan := newBuilder().BuildItinerary(places, p)

	if plan.Accommodation.Selected.ID != "h1" {
		t.Fatalf("equal scores should select h1 first, got %s", plan.Accommodation.Selected.ID)
	}
	if _, ok := plan.Accommodation.Alternatives.Find("h2"); !ok {
		t.Skip("h2 scored below the considerable cutoff")
	}
	swapped, ok := itinerary.SelectAccommodation(plan, "h2")
	if !ok {
		t.Fatalf("expected h2 to be selectable")
	}
	if swapped.Accommodation.Selected.ID != "h2" || swapped.Accommodation.Selected.TotalCost != 1600 {
		t.Fatalf("selected = %+v", swapped.Accommodation.Selected)
	}
	if got := swapped.Days[0].Breakfast.Selected.ComputedCost; got != 420 {
		t.Fatalf("breakfast after swap = %v, want 420", got)
	}
	if got := plan.Days[0].Breakfast.Selected.ComputedCost; got != 0 {
		t.Fatalf("original plan changed: breakfast = %v", got)
	}
	if _, ok := itinerary.SelectAccommodation(plan, "nope"); ok {
		t.Fatalf("unknown hotel must not be selectable")
	}
}
