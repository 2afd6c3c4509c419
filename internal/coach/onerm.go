// Package coach implements the deterministic training-recommendation engine:
// progression rules, one-rep-max estimation, plan generation, periodization,
// hybrid scheduling, and free-text effort interpretation. All functions are
// pure and safe for concurrent use.
package coach

import "math"

// Estimate1RM estimates the one-rep max for a weight/rep pair using the
// Epley relation. A single rep is returned as-is. Callers must validate
// reps >= 1.
func Estimate1RM(weightKg float64, reps int) float64 {
	if reps == 1 {
		return weightKg
	}
	return round1(weightKg * (1 + float64(reps)/30))
}

// round1 rounds to one decimal place.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
