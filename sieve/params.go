package sieve

import (
	"math"
	"sync"
)

// Tuning constants for the frame shift residue method.
const (
	// GoldenRatio is phi, used for frame spacing and density estimation.
	GoldenRatio = 1.6180339887498948482

	// DefaultCurvatureK is the default curvature coefficient.
	DefaultCurvatureK = 0.3

	// MaxFrames is the upper bound for the frame count hint.
	MaxFrames = 32

	// ResidueWheel is the wheel basis for residue-class filtering (2*3*5).
	ResidueWheel = 30
)

var eSquared = math.E * math.E

// Params holds the tunable parameters of the generator. A zero Params is
// not meaningful; start from DefaultParams (or CurrentParams) and derive
// new values through With.
type Params struct {
	// CurvatureK shapes the frame geometry and the density-filter
	// threshold. Valid range (0, 1].
	CurvatureK float64 `json:"curvature_k" yaml:"curvature_k"`

	// FrameCount hints the number of frames, 0 meaning adaptive.
	// Valid range [0, MaxFrames].
	FrameCount uint32 `json:"frame_count" yaml:"frame_count"`

	// DensityBoost scales the heuristic density estimate. Must be
	// strictly positive.
	DensityBoost float64 `json:"density_boost" yaml:"density_boost"`
}

// DefaultParams returns the documented defaults: k = 0.3, adaptive frame
// count, density boost = phi.
func DefaultParams() Params {
	return Params{
		CurvatureK:   DefaultCurvatureK,
		FrameCount:   0,
		DensityBoost: GoldenRatio,
	}
}

// With returns a copy of p with each field updated if and only if the new
// value passes validation. Fields failing validation keep their previous
// value; no error is reported. This best-effort semantic is part of the
// contract: callers probing parameter space never have to unwind a partial
// update.
func (p Params) With(curvatureK float64, frameCount uint32, densityBoost float64) Params {
	if curvatureK > 0 && curvatureK <= 1 {
		p.CurvatureK = curvatureK
	}
	if frameCount <= MaxFrames {
		p.FrameCount = frameCount
	}
	if densityBoost > 0 {
		p.DensityBoost = densityBoost
	}
	return p
}

var (
	paramMu       sync.Mutex
	currentParams = DefaultParams()
)

// SetParameters updates the process-wide parameters observed by subsequent
// NewGenerator calls. Validation follows Params.With: out-of-range values
// are silently ignored, last validated write wins. Safe for concurrent use.
func SetParameters(curvatureK float64, frameCount uint32, densityBoost float64) {
	paramMu.Lock()
	defer paramMu.Unlock()
	currentParams = currentParams.With(curvatureK, frameCount, densityBoost)
}

// CurrentParams returns a copy of the process-wide parameters.
func CurrentParams() Params {
	paramMu.Lock()
	defer paramMu.Unlock()
	return currentParams
}

// ResetParameters restores the process-wide parameters to DefaultParams.
func ResetParameters() {
	paramMu.Lock()
	defer paramMu.Unlock()
	currentParams = DefaultParams()
}
