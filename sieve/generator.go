package sieve

import (
	"errors"
	"math"
)

// Errors reported by generator initialization.
var (
	// ErrInvalidRange means start > stop.
	ErrInvalidRange = errors.New("sieve: invalid range: start exceeds stop")

	// ErrOutOfMemory means the sieve buffer for the requested range cannot
	// be allocated. The buffer spans the whole range at one byte per
	// candidate, so very large ranges fail here rather than in the runtime.
	ErrOutOfMemory = errors.New("sieve: range too large for sieve buffer")
)

// maxSieveBytes caps the sieve buffer. Beyond this the allocation cannot
// be addressed as a slice on 64-bit platforms anyway.
const maxSieveBytes = math.MaxInt64 / 2

// Generator produces the primes of a fixed range in increasing order. It
// exclusively owns its sieve buffer; one Generator must not be used from
// multiple goroutines. Create with NewGenerator, release with Close.
type Generator struct {
	start         uint64
	stop          uint64
	frameSize     uint64
	frameShift    uint64
	residueMask   uint64
	densityFactor float64
	frameCount    uint32
	sieve         []byte
	sieveSize     uint64
	pos           uint64
	params        Params
}

// NewGenerator returns a populated Generator over [start, stop] using the
// process-wide parameters (see SetParameters).
func NewGenerator(start, stop uint64) (*Generator, error) {
	return NewGeneratorWithParams(start, stop, CurrentParams())
}

// NewGeneratorWithParams returns a populated Generator over [start, stop]
// using an explicit parameter set, independent of process-wide state.
// Fails with ErrInvalidRange when start > stop and ErrOutOfMemory when the
// range is too large to sieve. The sieve runs synchronously; the returned
// Generator is ready for Next.
func NewGeneratorWithParams(start, stop uint64, p Params) (*Generator, error) {
	if start > stop {
		return nil, ErrInvalidRange
	}

	rangeSize := stop - start + 1
	if rangeSize == 0 || rangeSize > maxSieveBytes {
		// rangeSize wraps to 0 only for the full uint64 domain.
		return nil, ErrOutOfMemory
	}

	g := &Generator{
		start:         start,
		stop:          stop,
		frameSize:     rangeSize, // single frame covering the whole range
		frameShift:    0,
		residueMask:   0xFF, // all residue classes active
		densityFactor: p.DensityBoost,
		frameCount:    1,
		sieve:         make([]byte, rangeSize),
		sieveSize:     rangeSize,
		pos:           0,
		params:        p,
	}

	g.sieveFrame()
	return g, nil
}

// Next returns the next prime in the range, or 0 once the range is
// exhausted. Exhaustion is sticky: further calls keep returning 0.
func (g *Generator) Next() uint64 {
	if g == nil || g.sieve == nil {
		return 0
	}

	frameStart := g.start + g.frameShift

	for g.pos < g.frameSize && frameStart+g.pos <= g.stop {
		if g.sieve[g.pos] != 0 {
			candidate := frameStart + g.pos
			g.pos++

			// Unreachable after frame population, kept as a guard.
			if candidate <= 1 {
				continue
			}

			return candidate
		}
		g.pos++
	}

	return 0
}

// Frame reports the generator's frame geometry (size and shift).
func (g *Generator) Frame() (size, shift uint64) {
	return g.frameSize, g.frameShift
}

// Close releases the sieve buffer and zeroes the Generator. Safe to call
// multiple times; a closed Generator's Next returns 0.
func (g *Generator) Close() {
	if g == nil {
		return
	}
	g.sieve = nil
	*g = Generator{}
}
