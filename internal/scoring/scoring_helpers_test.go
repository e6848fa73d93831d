package scoring_test

import (
	"time"

	"trip_planner/internal/domain"
)

func pf(f float64) *float64 { return &f }

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func hotel(id string, base float64, tags ...string) domain.Place {
	return domain.Place{
		ID: id, Name: id, Kind: "hotel", Tags: tags,
		Pricing: &domain.Pricing{Lodging: &domain.LodgingPricing{Base: pf(base)}},
	}
}

func prefsFor(budget float64, from, to string) domain.Preferences {
	return domain.Preferences{
		StartDate: day(from),
		EndDate:   day(to),
		MaxBudget: budget,
		Priority:  domain.PriorityBalanced,
	}
}
