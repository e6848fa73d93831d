package domain

import (
	"slices"
	"time"
)

// ScoredPlace is a decorated copy of a Place for one scoring pass.
type ScoredPlace struct {
	Place
	Score      float64       `json:"score"`
	Category   PlaceCategory `json:"category"`
	DistanceKm float64       `json:"distanceKm"`

	// lodging
	NightlyPrice float64 `json:"nightlyPrice,omitempty"`
	TotalCost    float64 `json:"totalCost,omitempty"`
	// meals and activities
	ComputedCost float64 `json:"computedCost"`
}

type TierBucket struct {
	Highly       []ScoredPlace `json:"highly"`
	Considerable []ScoredPlace `json:"considerable"`
}

func EmptyBucket() TierBucket {
	return TierBucket{Highly: []ScoredPlace{}, Considerable: []ScoredPlace{}}
}

func (b TierBucket) Clone() TierBucket {
	out := EmptyBucket()
	out.Highly = append(out.Highly, b.Highly...)
	out.Considerable = append(out.Considerable, b.Considerable...)
	return out
}

// Find returns the candidate with the given id from either tier.
func (b TierBucket) Find(id string) (ScoredPlace, bool) {
	for _, tier := range [][]ScoredPlace{b.Highly, b.Considerable} {
		if i := slices.IndexFunc(tier, func(sp ScoredPlace) bool { return sp.ID == id }); i >= 0 {
			return tier[i], true
		}
	}
	return ScoredPlace{}, false
}

type Slot struct {
	Selected     *ScoredPlace `json:"selected"`
	Alternatives TierBucket   `json:"alternatives"`
}

func (s Slot) Clone() Slot {
	out := Slot{Alternatives: s.Alternatives.Clone()}
	if s.Selected != nil {
		sel := *s.Selected
		out.Selected = &sel
	}
	return out
}

type DaySlot struct {
	Date      time.Time `json:"date"`
	Covered   bool      `json:"covered"` // a hotel night starts on this day
	Breakfast Slot      `json:"breakfast"`
	Lunch     Slot      `json:"lunch"`
	Dinner    Slot      `json:"dinner"`
	Morning   Slot      `json:"morning"`
	Afternoon Slot      `json:"afternoon"`
	Night     Slot      `json:"night"`
}

// Meal returns a pointer to the slot for the given meal type.
func (d *DaySlot) Meal(m MealType) *Slot {
	switch m {
	case Breakfast:
		return &d.Breakfast
	case Lunch:
		return &d.Lunch
	default:
		return &d.Dinner
	}
}

func (d DaySlot) Activities() []Slot { return []Slot{d.Morning, d.Afternoon, d.Night} }

func (d DaySlot) Clone() DaySlot {
	return DaySlot{
		Date:      d.Date,
		Covered:   d.Covered,
		Breakfast: d.Breakfast.Clone(),
		Lunch:     d.Lunch.Clone(),
		Dinner:    d.Dinner.Clone(),
		Morning:   d.Morning.Clone(),
		Afternoon: d.Afternoon.Clone(),
		Night:     d.Night.Clone(),
	}
}

type PlanMeta struct {
	Preferences
	Nights      int       `json:"nights"`
	GeneratedAt time.Time `json:"generatedAt"`
}

type Accommodation struct {
	Nights       int          `json:"nights"`
	Selected     *ScoredPlace `json:"selected"`
	Alternatives TierBucket   `json:"alternatives"`
}

type PlanAlternatives struct {
	Meal     TierBucket `json:"meal"`
	Activity TierBucket `json:"activity"`
}

// CostSummary totals the selected items of a plan.
type CostSummary struct {
	Accommodation float64 `json:"accommodation"`
	Meals         float64 `json:"meals"`
	Activities    float64 `json:"activities"`
	Total         float64 `json:"total"`
}

type ItineraryPlan struct {
	Meta          PlanMeta         `json:"meta"`
	Accommodation Accommodation    `json:"accommodation"`
	Days          []DaySlot        `json:"days"`
	Alternatives  PlanAlternatives `json:"alternatives"`
	Costs         CostSummary      `json:"costs"`
}

// Clone returns a deep copy; slots and tiers never alias the receiver.
func (p ItineraryPlan) Clone() ItineraryPlan {
	out := p
	out.Meta.Interests = slices.Clone(p.Meta.Interests)
	out.Accommodation.Alternatives = p.Accommodation.Alternatives.Clone()
	if p.Accommodation.Selected != nil {
		sel := *p.Accommodation.Selected
		out.Accommodation.Selected = &sel
	}
	out.Days = make([]DaySlot, len(p.Days))
	for i, d := range p.Days {
		out.Days[i] = d.Clone()
	}
	out.Alternatives = PlanAlternatives{
		Meal:     p.Alternatives.Meal.Clone(),
		Activity: p.Alternatives.Activity.Clone(),
	}
	return out
}
