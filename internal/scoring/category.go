package scoring

import (
	"strings"

	"trip_planner/internal/domain"
)

var lodgingKinds = map[string]struct{}{"hotel": {}, "resort": {}, "inn": {}}

// Classify derives a place's category. Pricing shape wins; kind/tags are the fallback.
func Classify(p domain.Place) domain.PlaceCategory {
	if _, ok := p.LodgingBase(); ok {
		return domain.CategoryHotel
	}
	if _, ok := p.ALaCarte(); ok {
		return domain.CategoryMeal
	}
	if _, ok := p.DayPass(); ok {
		return domain.CategoryActivity
	}

	kind := strings.ToLower(strings.TrimSpace(p.Kind))
	if _, ok := lodgingKinds[kind]; ok {
		return domain.CategoryHotel
	}
	if kind == "restaurant" || p.HasTag("foodie") {
		return domain.CategoryMeal
	}
	return domain.CategoryActivity
}
