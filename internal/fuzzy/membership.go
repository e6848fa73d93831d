// Package fuzzy holds the membership functions every score in the engine is built from.
package fuzzy

// Triangular is 0 at and outside [a,c], rises linearly to 1 at b, then falls back to 0 at c.
func Triangular(x, a, b, c float64) float64 {
	switch {
	case x <= a || x >= c:
		return 0
	case x == b:
		return 1
	case x < b:
		return (x - a) / (b - a)
	default:
		return (c - x) / (c - b)
	}
}

// Trapezoid is 0 at and outside [a,d], 1 on [b,c], with linear ramps on [a,b] and [c,d].
func Trapezoid(x, a, b, c, d float64) float64 {
	switch {
	case x <= a || x >= d:
		return 0
	case x >= b && x <= c:
		return 1
	case x < b:
		return (x - a) / (b - a)
	default:
		return (d - x) / (d - c)
	}
}

// Clamp01 bounds v to [0,1]; NaN collapses to 0.
func Clamp01(v float64) float64 {
	if v != v || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
