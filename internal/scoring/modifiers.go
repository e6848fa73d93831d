package scoring

import "trip_planner/internal/domain"

const (
	lodgingMatchBoost   = 1.4
	lodgingMissPenalty  = 0.85
	travelerTypeBoost   = 1.2
	missingDistanceKm   = 9999.0
	interestPriorityAdj = 1.30
	distancePriorityAdj = 1.25
	pricePriorityAdj    = 1.25
)

// thematicBoost fires when the user listed one of interests and the place carries one of tags.
type thematicBoost struct {
	interests []string
	tags      []string
	factor    float64
}

var thematicBoosts = []thematicBoost{
	{interests: []string{"mountain"}, tags: []string{"mountain"}, factor: 1.12},
	{interests: []string{"nature"}, tags: []string{"nature", "scenic", "hiking", "trekking", "zipline"}, factor: 1.10},
	{interests: []string{"beach"}, tags: []string{"beach"}, factor: 1.12},
	{interests: []string{"eco_resort"}, tags: []string{"eco_resort"}, factor: 1.15},
	{interests: []string{"hotel"}, tags: []string{"hotel"}, factor: 1.08},
	{interests: []string{"family_friendly"}, tags: []string{"family_friendly"}, factor: 1.10},
	{
		interests: []string{"culture", "heritage", "museum", "art_gallery"},
		tags:      []string{"culture", "heritage", "museum", "art_gallery"},
		factor:    1.10,
	},
}

// seasonEffect applies once per place when any of tags is present.
type seasonEffect struct {
	mode   domain.SeasonMode
	tags   []string
	factor float64
	label  string
}

var seasonEffects = []seasonEffect{
	{domain.SeasonDry, []string{"beach", "island", "scenic"}, 1.20, "dry season: beach/island/scenic +20%"},
	{domain.SeasonDry, []string{"mountain", "hiking"}, 1.10, "dry season: mountain/hiking +10%"},
	{domain.SeasonDry, []string{"waterfall", "lake"}, 0.85, "dry season: waterfall/lake -15%"},
	{domain.SeasonRainy, []string{"waterfall", "lake", "forest", "nature"}, 1.18, "rainy season: waterfall/lake/forest/nature +18%"},
	{domain.SeasonRainy, []string{"foodie", "restaurant", "shopping", "museum", "heritage"}, 1.10, "rainy season: indoor-friendly +10%"},
	{domain.SeasonRainy, []string{"beach", "island"}, 0.80, "rainy season: beach/island -20%"},
	{domain.SeasonRainy, []string{"mountain", "hiking", "camping"}, 0.75, "rainy season: mountain/hiking/camping -25%"},
}

type tagSet map[string]struct{}

func newTagSet(ts []string) tagSet {
	s := make(tagSet, len(ts))
	for _, t := range ts {
		s[t] = struct{}{}
	}
	return s
}

func (s tagSet) has(t string) bool { _, ok := s[t]; return ok }

func (s tagSet) any(ts []string) bool {
	for _, t := range ts {
		if s.has(t) {
			return true
		}
	}
	return false
}

func travelerMultiplier(tt domain.TravelType, placeTags tagSet) float64 {
	switch tt {
	case domain.TravelFamily, domain.TravelGroup:
		if placeTags.has("family_friendly") {
			return travelerTypeBoost
		}
	case domain.TravelCouple:
		if placeTags.has("romantic") {
			return travelerTypeBoost
		}
	}
	return 1
}

func thematicMultiplier(interests, placeTags tagSet) float64 {
	m := 1.0
	for _, b := range thematicBoosts {
		if interests.any(b.interests) && placeTags.any(b.tags) {
			m *= b.factor
		}
	}
	return m
}

func seasonMultiplier(mode domain.SeasonMode, placeTags tagSet) (float64, []string) {
	m := 1.0
	effects := []string{}
	for _, e := range seasonEffects {
		if e.mode == mode && placeTags.any(e.tags) {
			m *= e.factor
			effects = append(effects, e.label)
		}
	}
	return m, effects
}

// Weights are the relative importance of each membership; they sum to 1 once normalized.
type Weights struct {
	Interest float64 `json:"interest"`
	Distance float64 `json:"distance"`
	Price    float64 `json:"price"`
}

func baseWeights(c domain.PlaceCategory) Weights {
	if c == domain.CategoryHotel {
		return Weights{Interest: 0.40, Distance: 0.25, Price: 0.35}
	}
	return Weights{Interest: 0.60, Distance: 0.25, Price: 0.15}
}

func effectivePriority(p domain.Priority) domain.Priority {
	switch p {
	case domain.PriorityInterest, domain.PriorityDistance, domain.PriorityPrice, domain.PriorityBudget:
		return p
	}
	return domain.PriorityBalanced
}

func weightsFor(c domain.PlaceCategory, p domain.Priority) Weights {
	w := baseWeights(c)
	switch p {
	case domain.PriorityInterest:
		w.Interest *= interestPriorityAdj
	case domain.PriorityDistance:
		w.Distance *= distancePriorityAdj
	case domain.PriorityPrice, domain.PriorityBudget:
		w.Price *= pricePriorityAdj
	}
	sum := w.Interest + w.Distance + w.Price
	return Weights{Interest: w.Interest / sum, Distance: w.Distance / sum, Price: w.Price / sum}
}
