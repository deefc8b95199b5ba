package penetration_test

import (
	"math"
	"testing"

	"naval-tables/feature/penetration"

	"github.com/stretchr/testify/assert"
)

func TestKnap_Breakpoints(t *testing.T) {
	tests := []struct {
		filler float64
		want   float64
	}{
		{0, 1.0},
		{0.3, 1.0},
		{0.65, 1.0},
		{1.6, 0.93},
		{2.0, 0.90},
		{2.5, 0.875},
		{3.0, 0.85},
		{3.5, 0.80},
		{4.0, 0.75},
		{12, 0.75},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, penetration.Knap(tt.filler), 1e-12, "filler %v", tt.filler)
	}
}

func TestKnap_Continuous(t *testing.T) {
	const eps = 1e-9
	for _, bp := range []float64{0.65, 1.6, 2.0, 3.0, 4.0} {
		below := penetration.Knap(bp - eps)
		at := penetration.Knap(bp)
		above := penetration.Knap(bp + eps)
		assert.InDelta(t, at, below, 1e-6, "left of %v", bp)
		assert.InDelta(t, at, above, 1e-6, "right of %v", bp)
	}
}

func TestKnap_Monotonic(t *testing.T) {
	prev := penetration.Knap(0)
	for p := 0.0; p <= 6; p += 0.05 {
		cur := penetration.Knap(p)
		assert.LessOrEqual(t, cur, prev+1e-12)
		prev = cur
	}
}

func TestDeMarre_Formula(t *testing.T) {
	caliber, mass, speed, explosive := 283.0, 300.0, 800.0, 6.0

	raw := math.Pow(speed, 1.43) * math.Pow(mass, 0.71) /
		(math.Pow(1900, 1.43) * math.Pow(caliber/100, 1.07)) * 100 * 0.90 * 1.0
	want := penetration.Round(raw, 2)

	assert.Equal(t, want, penetration.DeMarre(caliber, mass, speed, explosive, true))
}

func TestDeMarre_Deterministic(t *testing.T) {
	a := penetration.DeMarre(380, 800, 820, 18.8, true)
	b := penetration.DeMarre(380, 800, 820, 18.8, true)
	assert.Equal(t, a, b)
}

func TestDeMarre_CapIncreasesPenetration(t *testing.T) {
	capped := penetration.DeMarre(406, 1225, 768, 18.55, true)
	uncapped := penetration.DeMarre(406, 1225, 768, 18.55, false)
	assert.Greater(t, capped, uncapped)
}

func TestDeMarre_Rounded(t *testing.T) {
	v := penetration.DeMarre(305, 405, 762, 5.2, false)
	assert.Equal(t, v, math.Round(v*100)/100)
}

func TestIsCapped(t *testing.T) {
	assert.True(t, penetration.IsCapped("apcbc_tank"))
	assert.True(t, penetration.IsCapped("apc_tank"))
	assert.True(t, penetration.IsCapped("sapcbc_tank"))
	assert.False(t, penetration.IsCapped("sap_tank"))
	assert.False(t, penetration.IsCapped("he_frag_tank"))
}

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		decimals int
		want     float64
	}{
		{"Whole", 2.0, 2, 2.0},
		{"Down", 1.234, 2, 1.23},
		{"Up", 1.236, 2, 1.24},
		{"Integer", 282.99999, 0, 283.0},
		{"TieToEvenDown", 0.125, 2, 0.12},
		{"TieToEvenUp", 0.375, 2, 0.38},
		{"FillerTie", 0.09 / 8 * 100, 2, 1.12},
		{"BinaryBelowHalf", 2.675, 2, 2.67},
		{"IntegerTie", 762.5, 0, 762.0},
		{"Caliber", 0.38 * 1000, 3, 380.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, penetration.Round(tt.v, tt.decimals))
		})
	}
}

func TestRoundInt(t *testing.T) {
	assert.Equal(t, 762, penetration.RoundInt(762.5))
	assert.Equal(t, 764, penetration.RoundInt(763.5))
	assert.Equal(t, 763, penetration.RoundInt(762.51))
	assert.Equal(t, 380, penetration.RoundInt(0.38*1000))
}
