// Package costs prices the items of an itinerary.
package costs

import "trip_planner/internal/domain"

// DefaultMealPrice is charged for a meal venue without an a-la-carte price.
const DefaultMealPrice = 300.0

// HotelNightPrice is the per-night lodging base, or 0 when unpriced.
func HotelNightPrice(p domain.Place) float64 {
	v, _ := p.LodgingBase()
	return v
}

// MealALaCartePrice is the venue's positive a-la-carte price, else DefaultMealPrice.
func MealALaCartePrice(p domain.Place) float64 {
	if v, ok := p.ALaCarte(); ok && v > 0 {
		return v
	}
	return DefaultMealPrice
}

// DayUsePrice is the day-pass price, or 0 when unpriced.
func DayUsePrice(p domain.Place) float64 {
	v, _ := p.DayPass()
	return v
}

// ActivityCost is what one activity slot costs.
func ActivityCost(p domain.Place) float64 { return DayUsePrice(p) }

// MealCostWithHotel is 0 only when the selected hotel covers this day and its
// meal plan includes this meal; otherwise the venue's a-la-carte price.
func MealCostWithHotel(meal domain.MealType, venue *domain.Place, hotel *domain.Place, covered bool) float64 {
	if venue == nil {
		return 0
	}
	if hotel != nil && covered && hotel.MealIncluded(meal) {
		return 0
	}
	return MealALaCartePrice(*venue)
}
