package sieve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frameshift/internal/reference"
	"frameshift/sieve"
)

// differentialRanges are cross-checked against the reference sieve.
var differentialRanges = []struct {
	start, stop uint64
}{
	{1, 100},
	{1, 1000},
	{1, 10000},
	{1000, 2000},
	{10000, 11000},
	{100000, 101000},
	{999000, 1000000},
	{0, 1},
	{2, 2},
	{7919, 7919},
}

func TestCountMatchesReference(t *testing.T) {
	for _, r := range differentialRanges {
		want := reference.Count(r.start, r.stop)
		got := sieve.Count(r.start, r.stop)
		assert.Equal(t, want, got, "range [%d, %d]", r.start, r.stop)
	}
}

func TestGenerateMatchesReference(t *testing.T) {
	for _, r := range differentialRanges {
		want := reference.Primes(r.start, r.stop)
		got, err := sieve.Generate(r.start, r.stop)
		require.NoError(t, err, "range [%d, %d]", r.start, r.stop)
		if len(want) == 0 {
			assert.Empty(t, got, "range [%d, %d]", r.start, r.stop)
			continue
		}
		assert.Equal(t, want, got, "range [%d, %d]", r.start, r.stop)
	}
}

func TestCountAgreesWithGenerate(t *testing.T) {
	for _, r := range differentialRanges {
		primes, err := sieve.Generate(r.start, r.stop)
		require.NoError(t, err)
		assert.Equal(t, uint64(len(primes)), sieve.Count(r.start, r.stop),
			"range [%d, %d]", r.start, r.stop)
	}
}

func TestCountCollapsesInvalidRange(t *testing.T) {
	// Count cannot distinguish failure from an empty range.
	assert.Zero(t, sieve.Count(10, 5))
}

func TestGenerateSurfacesInvalidRange(t *testing.T) {
	primes, err := sieve.Generate(10, 5)
	require.ErrorIs(t, err, sieve.ErrInvalidRange)
	assert.Nil(t, primes)
}

func TestGenerateEmptyRange(t *testing.T) {
	primes, err := sieve.Generate(24, 28)
	require.NoError(t, err)
	assert.Empty(t, primes)
}

// TestResidueFilterShieldsPrimes pins the central invariant of the
// pipeline: every n > 3 coprime to 30 passes the residue check and never
// reaches the density test, so even hostile parameter extremes cannot
// suppress a true prime above 5. The sieve has already removed the
// remaining candidates sharing a factor with 30, so the full output
// matches the reference sieve regardless of tuning.
func TestResidueFilterShieldsPrimes(t *testing.T) {
	extremes := []sieve.Params{
		sieve.DefaultParams().With(0.999, 0, 0.001),
		sieve.DefaultParams().With(0.001, 0, 0.001),
		sieve.DefaultParams().With(1.0, 0, 0.0001),
	}

	want := reference.Count(1, 100000)
	require.Equal(t, uint64(9592), want)

	for _, p := range extremes {
		g, err := sieve.NewGeneratorWithParams(1, 100000, p)
		require.NoError(t, err)

		var count uint64
		for g.Next() != 0 {
			count++
		}
		g.Close()

		assert.Equal(t, want, count, "params %+v", p)
	}
}

func TestGenerateLargeRangeSpotCheck(t *testing.T) {
	primes, err := sieve.Generate(1, 100000)
	require.NoError(t, err)
	require.Len(t, primes, 9592)

	assert.Equal(t, uint64(2), primes[0])
	assert.Equal(t, uint64(99991), primes[len(primes)-1])
}
