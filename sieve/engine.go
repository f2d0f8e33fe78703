package sieve

import "math"

// residueClasses30 lists the residues mod 30 coprime to 30. Every prime
// greater than 5 falls into one of these classes.
var residueClasses30 = [8]uint8{1, 7, 11, 13, 17, 19, 23, 29}

func validResidue(n uint64) bool {
	mod30 := uint8(n % ResidueWheel)
	for _, r := range residueClasses30 {
		if mod30 == r {
			return true
		}
	}
	return false
}

// sieveFrame populates g's buffer for the frame
// [start+frameShift, min(start+frameShift+frameSize, stop)]: a bounded
// sieve of Eratosthenes followed by the residue-class post-filter with the
// density safety net.
func (g *Generator) sieveFrame() {
	frameStart := g.start + g.frameShift
	frameEnd := frameStart + g.frameSize
	if frameEnd > g.stop {
		frameEnd = g.stop
	}

	// Assume all candidates prime initially.
	for i := range g.sieve {
		g.sieve[i] = 1
	}

	if frameStart == 0 {
		g.sieve[0] = 0
	}
	if frameStart <= 1 && frameEnd > 1 {
		g.sieve[1-frameStart] = 0
	}

	sqrtEnd := uint64(math.Sqrt(float64(frameEnd))) + 1

	for p := uint64(2); p <= sqrtEnd; p++ {
		// Skip p if it lies inside the frame and is already composite.
		if p >= frameStart && p < frameEnd && p-frameStart < g.sieveSize && g.sieve[p-frameStart] == 0 {
			continue
		}

		// First multiple of p at or after frameStart.
		multiple := frameStart
		if multiple%p != 0 {
			multiple = frameStart + (p - frameStart%p)
		}

		// Start from p^2 when it exceeds the naive first multiple.
		if p*p >= frameStart && p*p > multiple {
			multiple = p * p
		}

		// Mark multiples, but never p itself.
		for ; multiple <= frameEnd; multiple += p {
			if multiple >= frameStart && multiple != p {
				if idx := multiple - frameStart; idx < g.sieveSize {
					g.sieve[idx] = 0
				}
			}
		}
	}

	// Residue-class post-filter. Candidates coprime to 30 pass untouched;
	// the density test is reached only by n sharing a factor with the
	// wheel, which for n > 3 the sieve has already rejected, so it acts as
	// a safety net rather than a filter on true primes.
	frameFactor := 1 + g.params.CurvatureK*math.Cos(float64(g.frameShift)*math.Pi/GoldenRatio)
	threshold := g.params.CurvatureK * 0.1

	for i := uint64(0); i < g.frameSize && i < g.sieveSize; i++ {
		if g.sieve[i] == 0 {
			continue
		}
		n := frameStart + i

		if n <= 1 {
			g.sieve[i] = 0
			continue
		}
		if n == 2 || n == 3 {
			continue
		}

		if !validResidue(n) {
			if Density(n, frameFactor, g.densityFactor) < threshold {
				g.sieve[i] = 0
			}
		}
	}
}
