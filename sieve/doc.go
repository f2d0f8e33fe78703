// Package sieve implements an experimental prime generator based on the
// frame shift residue method: a bounded sieve of Eratosthenes over a single
// frame, followed by residue-class filtering (mod 30) with a golden-ratio
// density heuristic as a safety net.
//
// The method is tunable through three parameters (curvature coefficient,
// frame count hint, density boost) and is intentionally slower than a
// production segmented sieve; it exists to study the heuristic, not to
// outperform classical sieving. The sieve buffer spans the whole query
// range, so memory grows linearly with the range size.
package sieve
