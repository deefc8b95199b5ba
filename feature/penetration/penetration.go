package penetration

import (
	"math"
	"strconv"
	"strings"
)

const (
	speedExp   = 1.43
	massExp    = 0.71
	caliberExp = 1.07
	refSpeed   = 1900.0

	cappedFactor   = 1.0
	uncappedFactor = 0.9
)

// knapPoints maps filler percentage to penalty factor. Sorted by filler.
var knapPoints = []struct{ filler, factor float64 }{
	{0.65, 1.0},
	{1.6, 0.93},
	{2.0, 0.90},
	{3.0, 0.85},
	{4.0, 0.75},
}

// Knap returns the filler penalty for a filler percentage, interpolated linearly between
// breakpoints and clamped to the first/last factor outside them.
func Knap(fillerPercent float64) float64 {
	first, last := knapPoints[0], knapPoints[len(knapPoints)-1]
	if fillerPercent <= first.filler {
		return first.factor
	}
	if fillerPercent >= last.filler {
		return last.factor
	}
	for i := 1; i < len(knapPoints); i++ {
		lo, hi := knapPoints[i-1], knapPoints[i]
		if fillerPercent == hi.filler {
			return hi.factor
		}
		if fillerPercent < hi.filler {
			t := (fillerPercent - lo.filler) / (hi.filler - lo.filler)
			return lo.factor + t*(hi.factor-lo.factor)
		}
	}
	return last.factor
}

// DeMarre computes penetration in mm. mass must be > 0.
func DeMarre(caliberMm, massKg, speedMps, explosiveMassKg float64, capped bool) float64 {
	filler := 100 * explosiveMassKg / massKg

	capFactor := uncappedFactor
	if capped {
		capFactor = cappedFactor
	}

	pen := math.Pow(speedMps, speedExp) * math.Pow(massKg, massExp) /
		(math.Pow(refSpeed, speedExp) * math.Pow(caliberMm/100, caliberExp)) *
		100 * Knap(filler) * capFactor

	return Round(pen, 2)
}

// IsCapped reports whether a bullet type code describes a capped shell (APC, APCBC, SAPCBC).
func IsCapped(bulletType string) bool {
	return strings.Contains(strings.ToLower(bulletType), "apc")
}

// Round rounds v to the given number of decimals, exact halves to even.
// It works on the exact decimal value of v, so 1.125 becomes 1.12 and
// 2.675 (stored as 2.67499...) becomes 2.67.
func Round(v float64, decimals int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', decimals, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// RoundInt rounds v to the nearest integer, exact halves to even.
func RoundInt(v float64) int {
	return int(math.RoundToEven(v))
}
