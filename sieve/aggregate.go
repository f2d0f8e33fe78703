package sieve

import "math"

// Count returns the number of primes in [start, stop] under the
// process-wide parameters. A failed initialization (invalid range, range
// too large) collapses to 0, indistinguishable from a range without
// primes; callers needing the distinction should use NewGenerator.
func Count(start, stop uint64) uint64 {
	g, err := NewGenerator(start, stop)
	if err != nil {
		return 0
	}
	defer g.Close()

	var count uint64
	for g.Next() != 0 {
		count++
	}
	return count
}

// Generate returns all primes in [start, stop] in increasing order under
// the process-wide parameters. Unlike Count it surfaces initialization
// failures, so an empty result with a nil error really means the range
// holds no primes.
func Generate(start, stop uint64) ([]uint64, error) {
	g, err := NewGenerator(start, stop)
	if err != nil {
		return nil, err
	}
	defer g.Close()

	primes := make([]uint64, 0, estimateCount(start, stop))
	for p := g.Next(); p != 0; p = g.Next() {
		primes = append(primes, p)
	}
	return primes, nil
}

// estimateCount sizes the output by the prime-counting approximation
// span/ln(span) plus slack. Used as an initial capacity only.
func estimateCount(start, stop uint64) uint64 {
	span := stop - start
	logSpan := uint64(math.Log(float64(span + 1)))
	if logSpan == 0 {
		logSpan = 1
	}
	return span/logSpan + 100
}
