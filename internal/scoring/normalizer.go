// Package scoring converts raw model outputs into comparable, display-ready scores.
//
// Scores and percentages are rounded independently to two decimals and are not
// re-normalized afterwards, so a set of percentages may drift from exactly 100.00
// by a few hundredths.
package scoring

import "math"

// Default target range for min-max rescaling of value scores
const (
	DefaultTargetMin = 1.0
	DefaultTargetMax = 10.0
)

// Round2 rounds half away from zero to two decimals
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// PercentageOfSum returns round2(v / sum * 100) for every value.
// When the values sum to zero each entry receives an equal share so the set
// still adds up to 100.
func PercentageOfSum(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}

	total := 0.0
	for _, v := range values {
		total += v
	}

	if total == 0 {
		share := Round2(100 / float64(len(values)))
		for i := range out {
			out[i] = share
		}
		return out
	}

	for i, v := range values {
		out[i] = Round2(v / total * 100)
	}
	return out
}

// MinMaxRescale maps values linearly onto [targetMin, targetMax] using the
// minimum and maximum of the values themselves. If every value is equal the
// result is the midpoint of the target range for all entries.
func MinMaxRescale(values []float64, targetMin, targetMax float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	if hi == lo {
		mid := (targetMin + targetMax) / 2
		for i := range out {
			out[i] = mid
		}
		return out
	}

	scale := (targetMax - targetMin) / (hi - lo)
	for i, v := range values {
		out[i] = targetMin + (v-lo)*scale
	}
	return out
}
