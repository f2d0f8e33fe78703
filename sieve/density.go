package sieve

import "math"

// Density estimates the heuristic prime density signal for n:
// 1 / (ln(n/phi) * frameFactor * densityBoost), with the logarithm clamped
// away from zero. Returns 0 for n <= 1; always positive otherwise (for
// positive frameFactor and densityBoost). Used by the sieve engine only as
// a filtering signal, never to enumerate candidates.
func Density(n uint64, frameFactor, densityBoost float64) float64 {
	if n <= 1 {
		return 0
	}

	x := float64(n) / GoldenRatio
	if x <= 1 {
		x = 2
	}

	logX := math.Log(x)
	if logX <= 0 {
		logX = 1
	}

	return 1 / (logX * frameFactor * densityBoost)
}

// Kappa computes the curvature metric d(n) * ln(n+1) / e^2, where d is the
// divisor-counting function. Returns 0 for n <= 1. Exposed as a standalone
// analysis utility; the sieve pipeline does not consume it.
func Kappa(n uint64) float64 {
	if n <= 1 {
		return 0
	}

	d := divisorCount(n)
	return float64(d) * math.Log(float64(n+1)) / eSquared
}

// divisorCount returns d(n) by trial division up to floor(sqrt(n)),
// counting each divisor pair once and the square root once.
func divisorCount(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	if n == 1 {
		return 1
	}

	var count uint64
	sqrtN := uint64(math.Sqrt(float64(n)))

	for i := uint64(1); i <= sqrtN; i++ {
		if n%i == 0 {
			count++
			if i != n/i {
				count++
			}
		}
	}

	return count
}
