package scheduling

import "math"

// CalculateWage computes a referee's pay for a game: base level wage times
// the game's wage multiplier, rounded half-up to 2 decimal places.
func CalculateWage(levelWage, wageMultiplier float64) float64 {
	return math.Floor(levelWage*wageMultiplier*100+0.5) / 100
}
