package itinerary

import (
	"cmp"
	"slices"

	"trip_planner/internal/costs"
	"trip_planner/internal/domain"
)

const (
	highlyThreshold       = 0.75
	considerableThreshold = 0.45
	highlyCap             = 5
	considerableCap       = 15
)

// byScore orders descending by score; ties break on id, then name.
func byScore(a, b domain.ScoredPlace) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	if c := cmp.Compare(a.ID, b.ID); c != 0 {
		return c
	}
	return cmp.Compare(a.Name, b.Name)
}

func sortByScore(list []domain.ScoredPlace) {
	slices.SortStableFunc(list, byScore)
}

// Bucket splits an already-ranked list into tiers, then orders each tier for the
// given priority. Scores below 0.45 are dropped.
func Bucket(ranked []domain.ScoredPlace, prio domain.Priority) domain.TierBucket {
	out := domain.EmptyBucket()
	for _, sp := range ranked {
		switch {
		case sp.Score >= highlyThreshold:
			if len(out.Highly) < highlyCap {
				out.Highly = append(out.Highly, sp)
			}
		case sp.Score >= considerableThreshold:
			if len(out.Considerable) < considerableCap {
				out.Considerable = append(out.Considerable, sp)
			}
		}
	}
	orderTier(out.Highly, prio)
	orderTier(out.Considerable, prio)
	return out
}

func orderTier(tier []domain.ScoredPlace, prio domain.Priority) {
	switch prio {
	case domain.PriorityDistance:
		slices.SortStableFunc(tier, func(a, b domain.ScoredPlace) int {
			if c := cmp.Compare(a.DistanceKm, b.DistanceKm); c != 0 {
				return c
			}
			return byScore(a, b)
		})
	case domain.PriorityPrice, domain.PriorityBudget:
		slices.SortStableFunc(tier, func(a, b domain.ScoredPlace) int {
			if c := cmp.Compare(idealCost(a), idealCost(b)); c != 0 {
				return c
			}
			return byScore(a, b)
		})
	default:
		sortByScore(tier)
	}
}

// idealCost is the undiscounted unit price used to order tiers by price.
func idealCost(sp domain.ScoredPlace) float64 {
	switch sp.Category {
	case domain.CategoryHotel:
		return costs.HotelNightPrice(sp.Place)
	case domain.CategoryMeal:
		return costs.MealALaCartePrice(sp.Place)
	default:
		return costs.ActivityCost(sp.Place)
	}
}

func mapBucket(b domain.TierBucket, f func(domain.ScoredPlace) domain.ScoredPlace) domain.TierBucket {
	out := domain.EmptyBucket()
	for _, sp := range b.Highly {
		out.Highly = append(out.Highly, f(sp))
	}
	for _, sp := range b.Considerable {
		out.Considerable = append(out.Considerable, f(sp))
	}
	return out
}
