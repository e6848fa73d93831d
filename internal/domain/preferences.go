package domain

import (
	"math"
	"time"
)

type Priority string

const (
	PriorityBalanced Priority = "balanced"
	PriorityInterest Priority = "interest"
	PriorityDistance Priority = "distance"
	PriorityPrice    Priority = "price"
	PriorityBudget   Priority = "budget"
)

type TravelType string

const (
	TravelAny    TravelType = "any"
	TravelFamily TravelType = "family"
	TravelGroup  TravelType = "group"
	TravelCouple TravelType = "couple"
)

type SeasonMode string

const (
	SeasonDry   SeasonMode = "dry"
	SeasonRainy SeasonMode = "rainy"
)

// SeasonTolerance is the weather the traveller is comfortable with; "any" disables
// the post-hoc activity bias.
type SeasonTolerance string

const (
	ToleranceAny SeasonTolerance = "any"
	ToleranceDry SeasonTolerance = "dry"
	ToleranceWet SeasonTolerance = "wet"
)

const LodgingAny = "any"

type StartCity struct {
	Label string   `json:"label"`
	Lat   *float64 `json:"lat,omitempty"`
	Lng   *float64 `json:"lng,omitempty"`
}

// Coords returns the start city's coordinates when both are present and finite.
func (c StartCity) Coords() (Coords, bool) {
	if c.Lat == nil || c.Lng == nil || math.IsNaN(*c.Lat) || math.IsNaN(*c.Lng) {
		return Coords{}, false
	}
	return Coords{Lat: *c.Lat, Lng: *c.Lng}, true
}

type Preferences struct {
	StartCity         StartCity       `json:"startCity"`
	StartDate         time.Time       `json:"startDate" validate:"required"`
	EndDate           time.Time       `json:"endDate" validate:"required,gtefield=StartDate"`
	MaxBudget         float64         `json:"maxBudget" validate:"gte=0"`
	Interests         []string        `json:"interests"`
	Priority          Priority        `json:"priority" validate:"omitempty,oneof=balanced interest distance price budget"`
	TravelType        TravelType      `json:"travelType" validate:"omitempty,oneof=any family group couple"`
	LodgingPreference string          `json:"lodgingPreference"`
	SeasonMode        SeasonMode      `json:"seasonMode" validate:"omitempty,oneof=dry rainy"`
	SeasonTolerance   SeasonTolerance `json:"seasonTolerance" validate:"omitempty,oneof=any dry wet"`
}

// Nights is the whole number of days between start and end date, never negative.
func (p Preferences) Nights() int {
	n := int(p.EndDate.Sub(p.StartDate).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}

func (p Preferences) Days() int { return p.Nights() + 1 }

// WantsLodgingStyle reports whether a specific lodging style was requested.
func (p Preferences) WantsLodgingStyle() bool {
	return p.LodgingPreference != "" && p.LodgingPreference != LodgingAny
}
