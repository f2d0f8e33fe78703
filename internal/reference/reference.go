// Package reference provides a plain, correct sieve of Eratosthenes used
// as the ground-truth oracle by tests and the benchmark harness. It is an
// independent implementation on purpose: the frame shift generator under
// study must never be validated against itself.
//
// Memory is O(stop), so it is meant for test and benchmark ranges, not
// arbitrary 64-bit inputs.
package reference

// sieveTo marks composites up to limit inclusive.
func sieveTo(limit uint64) []bool {
	composite := make([]bool, limit+1)
	for p := uint64(2); p*p <= limit; p++ {
		if composite[p] {
			continue
		}
		for m := p * p; m <= limit; m += p {
			composite[m] = true
		}
	}
	return composite
}

// Primes returns all primes in [start, stop] in increasing order. Returns
// nil when start > stop.
func Primes(start, stop uint64) []uint64 {
	if start > stop {
		return nil
	}

	composite := sieveTo(stop)

	var primes []uint64
	for n := max(start, 2); n <= stop; n++ {
		if !composite[n] {
			primes = append(primes, n)
		}
	}
	return primes
}

// Count returns the number of primes in [start, stop]. Returns 0 when
// start > stop.
func Count(start, stop uint64) uint64 {
	if start > stop {
		return 0
	}

	composite := sieveTo(stop)

	var count uint64
	for n := max(start, 2); n <= stop; n++ {
		if !composite[n] {
			count++
		}
	}
	return count
}
