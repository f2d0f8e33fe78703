package sieve

import "math"

// minFrameSize is the smallest frame the geometry ever produces.
const minFrameSize = 1024

// FrameSize computes the frame size for a range of rangeSize integers under
// curvature k: sqrt(range)*phi scaled by 1 + k*sin(phi*pi/4), clamped to
// minFrameSize and rounded up to the next multiple of 64. Deterministic and
// pure; a zero range yields the minimum frame.
func FrameSize(rangeSize uint64, k float64) uint64 {
	if rangeSize == 0 {
		return minFrameSize
	}

	base := math.Sqrt(float64(rangeSize)) * GoldenRatio
	factor := 1 + k*math.Sin(GoldenRatio*math.Pi/4)

	size := uint64(base * factor)
	if size < minFrameSize {
		size = minFrameSize
	}

	// Align to a 64-byte boundary.
	return (size + 63) &^ 63
}

// FrameShift computes the pseudo-periodic offset of frame frameIndex under
// curvature k: floor(phi^(i mod 8) * k * 256) masked to 16 bits. The
// single-frame layout pins the shift to frame 0, but the function is part
// of the public contract for multi-frame configurations.
func FrameShift(frameIndex uint32, k float64) uint64 {
	shiftFactor := math.Pow(GoldenRatio, float64(frameIndex%8)) * k
	return uint64(shiftFactor*256) & 0xFFFF
}
