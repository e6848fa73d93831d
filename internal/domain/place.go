package domain

import "strings"

type Coords struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place is a candidate venue as delivered by the place store. It is read-only input
// for the engine; scoring produces decorated copies (ScoredPlace).
type Place struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Kind        string   `json:"kind"`
	Tags        []string `json:"tags"`
	Coordinates *Coords  `json:"coordinates,omitempty"`
	Pricing     *Pricing `json:"pricing,omitempty"`
	Activities  []string `json:"activities,omitempty"` // display only
}

type Pricing struct {
	Lodging  *LodgingPricing `json:"lodging,omitempty"`
	MealPlan *MealPlan       `json:"mealPlan,omitempty"`
	DayUse   *DayUse         `json:"dayUse,omitempty"`
}

type LodgingPricing struct {
	Base *float64 `json:"base,omitempty"`
}

type MealPlan struct {
	ALaCarteDefault   *float64 `json:"aLaCarteDefault,omitempty"`
	BreakfastIncluded bool     `json:"breakfastIncluded"`
	LunchIncluded     bool     `json:"lunchIncluded"`
	DinnerIncluded    bool     `json:"dinnerIncluded"`
}

type DayUse struct {
	DayPassPrice *float64 `json:"dayPassPrice,omitempty"`
}

type MealType string

const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
)

// MealTypes is the fixed order of meal slots within a day.
var MealTypes = []MealType{Breakfast, Lunch, Dinner}

type PlaceCategory string

const (
	CategoryHotel    PlaceCategory = "hotel"
	CategoryMeal     PlaceCategory = "meal"
	CategoryActivity PlaceCategory = "activity"
)

// ---- pricing accessors (nil-safe) ----

func (p Place) LodgingBase() (float64, bool) {
	if p.Pricing == nil || p.Pricing.Lodging == nil || p.Pricing.Lodging.Base == nil {
		return 0, false
	}
	return *p.Pricing.Lodging.Base, true
}

func (p Place) ALaCarte() (float64, bool) {
	if p.Pricing == nil || p.Pricing.MealPlan == nil || p.Pricing.MealPlan.ALaCarteDefault == nil {
		return 0, false
	}
	return *p.Pricing.MealPlan.ALaCarteDefault, true
}

func (p Place) DayPass() (float64, bool) {
	if p.Pricing == nil || p.Pricing.DayUse == nil || p.Pricing.DayUse.DayPassPrice == nil {
		return 0, false
	}
	return *p.Pricing.DayUse.DayPassPrice, true
}

// MealIncluded reports whether the place's meal plan covers the given meal.
func (p Place) MealIncluded(m MealType) bool {
	if p.Pricing == nil || p.Pricing.MealPlan == nil {
		return false
	}
	mp := p.Pricing.MealPlan
	switch m {
	case Breakfast:
		return mp.BreakfastIncluded
	case Lunch:
		return mp.LunchIncluded
	case Dinner:
		return mp.DinnerIncluded
	}
	return false
}

func (p Place) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(strings.TrimSpace(t), tag) {
			return true
		}
	}
	return false
}
