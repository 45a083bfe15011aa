package util

import (
	"math"
)

// RoundTo rounds x to the given number of decimal places. NaN and Inf pass through.
func RoundTo(x float64, places int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	pow := math.Pow(10, float64(places))
	return math.Round(x*pow) / pow
}
