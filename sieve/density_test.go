package sieve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDensitySmallN(t *testing.T) {
	assert.Zero(t, Density(0, 1.3, GoldenRatio))
	assert.Zero(t, Density(1, 1.3, GoldenRatio))
}

func TestDensityPositive(t *testing.T) {
	for _, n := range []uint64{2, 3, 5, 30, 1000, 1 << 40} {
		d := Density(n, 1.3, GoldenRatio)
		assert.Greater(t, d, 0.0, "n=%d", n)
	}
}

func TestDensityBoostScalesInverse(t *testing.T) {
	base := Density(1000, 1.3, 1.0)
	boosted := Density(1000, 1.3, 2.0)
	assert.InDelta(t, base/2, boosted, 1e-12)
}

func TestDensitySmallestCandidate(t *testing.T) {
	// n = 2 is the smallest input past the n <= 1 cutoff; x = 2/phi is
	// still above 1, so neither clamp fires.
	want := 1 / math.Log(2/GoldenRatio)
	assert.InDelta(t, want, Density(2, 1.0, 1.0), 1e-12)
}

func TestKappaSmallN(t *testing.T) {
	assert.Zero(t, Kappa(0))
	assert.Zero(t, Kappa(1))
}

func TestKappaNonNegative(t *testing.T) {
	for n := uint64(0); n <= 500; n++ {
		assert.GreaterOrEqual(t, Kappa(n), 0.0, "n=%d", n)
	}
}

func TestKappaKnownValues(t *testing.T) {
	e2 := math.E * math.E

	// d(6) = 4 divisors: 1, 2, 3, 6.
	assert.InDelta(t, 4*math.Log(7)/e2, Kappa(6), 1e-12)

	// d(p) = 2 for prime p.
	assert.InDelta(t, 2*math.Log(14)/e2, Kappa(13), 1e-12)

	// Perfect square: d(36) = 9, the root counted once.
	assert.InDelta(t, 9*math.Log(37)/e2, Kappa(36), 1e-12)
}

func TestDivisorCount(t *testing.T) {
	tests := []struct {
		n    uint64
		want uint64
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{4, 3},
		{6, 4},
		{12, 6},
		{36, 9},
		{97, 2},
		{100, 9},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, divisorCount(tt.n), "n=%d", tt.n)
	}
}
