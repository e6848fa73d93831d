package itinerary

import (
	"trip_planner/internal/costs"
	"trip_planner/internal/domain"
)

// RecomputeAllMealCosts re-derives every meal cost (selected and both tiers) from
// the plan's own selected hotel and day coverage, refreshes the hotel projection
// and cost summary, and returns a new plan. The input is not modified.
func RecomputeAllMealCosts(plan domain.ItineraryPlan) domain.ItineraryPlan {
	out := plan.Clone()
	nights := out.Accommodation.Nights

	var hotel *domain.Place
	if sel := out.Accommodation.Selected; sel != nil {
		sel.NightlyPrice = costs.HotelNightPrice(sel.Place)
		sel.TotalCost = sel.NightlyPrice * float64(nights)
		hotel = &sel.Place
	}

	for i := range out.Days {
		d := &out.Days[i]
		d.Covered = i < nights
		for _, m := range domain.MealTypes {
			slot := d.Meal(m)
			if slot.Selected != nil {
				slot.Selected.ComputedCost = costs.MealCostWithHotel(m, &slot.Selected.Place, hotel, d.Covered)
			}
			slot.Alternatives = mapBucket(slot.Alternatives, func(sp domain.ScoredPlace) domain.ScoredPlace {
				sp.ComputedCost = costs.MealCostWithHotel(m, &sp.Place, hotel, d.Covered)
				return sp
			})
		}
	}

	out.Costs = summarize(out)
	return out
}

func summarize(p domain.ItineraryPlan) domain.CostSummary {
	var s domain.CostSummary
	if p.Accommodation.Selected != nil {
		s.Accommodation = p.Accommodation.Selected.TotalCost
	}
	for _, d := range p.Days {
		for _, m := range []domain.Slot{d.Breakfast, d.Lunch, d.Dinner} {
			if m.Selected != nil {
				s.Meals += m.Selected.ComputedCost
			}
		}
		for _, a := range d.Activities() {
			if a.Selected != nil {
				s.Activities += a.Selected.ComputedCost
			}
		}
	}
	s.Total = s.Accommodation + s.Meals + s.Activities
	return s
}

// SelectAccommodation swaps the selected hotel for the candidate with the given id
// (from either hotel tier) and recomputes costs. It reports false when no such
// candidate exists; the input plan is never modified.
func SelectAccommodation(plan domain.ItineraryPlan, placeID string) (domain.ItineraryPlan, bool) {
	cand, ok := plan.Accommodation.Alternatives.Find(placeID)
	if !ok {
		sel := plan.Accommodation.Selected
		if sel == nil || sel.ID != placeID {
			return plan, false
		}
		cand = *sel
	}
	out := plan.Clone()
	out.Accommodation.Selected = &cand
	return RecomputeAllMealCosts(out), true
}
