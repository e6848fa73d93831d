package app

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"trip_planner/internal/domain"
)

/********** alias registry (single source of truth) **********/

var placeAliases = map[string][]string{
	"id":         {"id", "place_id", "placeId", "uuid"},
	"name":       {"name", "title", "display_name", "displayName"},
	"kind":       {"kind", "type", "category", "place_type"},
	"lat":        {"lat", "latitude", "coordinates.lat", "location.lat", "geo.lat"},
	"lng":        {"lng", "lon", "longitude", "coordinates.lng", "location.lng", "location.lon", "geo.lng"},
	"tags":       {"tags", "labels", "categories", "themes"},
	"activities": {"activities", "things_to_do", "experiences"},
	"status":     {"status", "state", "lifecycle"},
	"archived":   {"archived", "is_archived", "isArchived"},

	"lodging_base": {
		"pricing.lodging.base", "lodging.base", "lodging.basePrice",
		"hotel.pricePerNight", "price_per_night", "nightly_rate",
	},
	"a_la_carte": {
		"pricing.mealPlan.aLaCarteDefault", "mealPlan.aLaCarteDefault",
		"meal.avgPrice", "average_meal_price", "menu.average_price",
	},
	"breakfast": {"pricing.mealPlan.breakfastIncluded", "mealPlan.breakfastIncluded", "meal_plan.breakfast", "breakfast_included"},
	"lunch":     {"pricing.mealPlan.lunchIncluded", "mealPlan.lunchIncluded", "meal_plan.lunch", "lunch_included"},
	"dinner":    {"pricing.mealPlan.dinnerIncluded", "mealPlan.dinnerIncluded", "meal_plan.dinner", "dinner_included"},
	"day_pass":  {"pricing.dayUse.dayPassPrice", "dayUse.dayPassPrice", "day_pass_price", "entrance_fee"},
}

var (
	errArchived    = errors.New("archived")
	errMissingName = errors.New("missing name")
)

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// firstString: first non-empty string (numbers are formatted) for an alias set.
func firstString(m map[string]any, key string) string {
	for _, p := range placeAliases[key] {
		switch v := lookupAny(m, p).(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

// getFloatFlexible: number from an alias set (float64/int/string like "8,0").
func getFloatFlexible(m map[string]any, key string) *float64 {
	for _, k := range placeAliases[key] {
		switch v := lookupAny(m, k).(type) {
		case float64:
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			f := v
			return &f
		case int:
			f := float64(v)
			return &f
		case string:
			s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
			if s == "" {
				continue
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) {
				return &f
			}
		}
	}
	return nil
}

// getBoolFlexible: bool from an alias set (bool, 0/1, "yes"/"true").
func getBoolFlexible(m map[string]any, key string) bool {
	for _, k := range placeAliases[key] {
		switch v := lookupAny(m, k).(type) {
		case bool:
			return v
		case float64:
			return v != 0
		case string:
			switch strings.ToLower(strings.TrimSpace(v)) {
			case "true", "yes", "y", "1", "included":
				return true
			case "false", "no", "n", "0":
				return false
			}
		}
	}
	return false
}

// firstSliceStrings: accept []any with either strings or {name/label/title}.
func firstSliceStrings(m map[string]any, key string) []string {
	for _, k := range placeAliases[key] {
		switch raw := lookupAny(m, k).(type) {
		case string:
			// comma separated
			var out []string
			for _, part := range strings.Split(raw, ",") {
				if t := strings.TrimSpace(part); t != "" {
					out = append(out, t)
				}
			}
			if len(out) > 0 {
				return out
			}
		case []any:
			out := make([]string, 0, len(raw))
			for _, it := range raw {
				switch t := it.(type) {
				case string:
					if t = strings.TrimSpace(t); t != "" {
						out = append(out, t)
					}
				case map[string]any:
					for _, f := range []string{"name", "label", "title"} {
						if s, ok := t[f].(string); ok && s != "" {
							out = append(out, s)
							break
						}
					}
				}
			}
			if len(out) > 0 {
				return out
			}
		}
	}
	return nil
}

/********** place mapper **********/

// mapPlace turns a catalog payload into a Place. fallbackID is used when the
// payload carries no id of its own.
func mapPlace(fallbackID string, p map[string]any) (domain.Place, error) {
	if getBoolFlexible(p, "archived") {
		return domain.Place{}, errArchived
	}
	switch strings.ToLower(firstString(p, "status")) {
	case "archived", "inactive", "closed":
		return domain.Place{}, errArchived
	}

	out := domain.Place{
		ID:         firstString(p, "id"),
		Name:       firstString(p, "name"),
		Kind:       strings.ToLower(firstString(p, "kind")),
		Tags:       firstSliceStrings(p, "tags"),
		Activities: firstSliceStrings(p, "activities"),
	}
	if out.ID == "" {
		out.ID = fallbackID
	}
	if out.Name == "" {
		return domain.Place{}, errMissingName
	}

	// both or nothing
	lat, lng := getFloatFlexible(p, "lat"), getFloatFlexible(p, "lng")
	if lat != nil && lng != nil {
		out.Coordinates = &domain.Coords{Lat: *lat, Lng: *lng}
	}

	out.Pricing = mapPricing(p)
	return out, nil
}

func mapPricing(p map[string]any) *domain.Pricing {
	var pr domain.Pricing
	if v := getFloatFlexible(p, "lodging_base"); v != nil {
		pr.Lodging = &domain.LodgingPricing{Base: v}
	}

	mp := domain.MealPlan{
		ALaCarteDefault:   getFloatFlexible(p, "a_la_carte"),
		BreakfastIncluded: getBoolFlexible(p, "breakfast"),
		LunchIncluded:     getBoolFlexible(p, "lunch"),
		DinnerIncluded:    getBoolFlexible(p, "dinner"),
	}
	if mp.ALaCarteDefault != nil || mp.BreakfastIncluded || mp.LunchIncluded || mp.DinnerIncluded {
		pr.MealPlan = &mp
	}

	if v := getFloatFlexible(p, "day_pass"); v != nil {
		pr.DayUse = &domain.DayUse{DayPassPrice: v}
	}

	if pr.Lodging == nil && pr.MealPlan == nil && pr.DayUse == nil {
		return nil
	}
	return &pr
}
