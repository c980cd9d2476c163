// Package lightcurve provides weighted time-series data structures for
// transit searches.
package lightcurve

import (
	"errors"
	"math"
)

// LightCurve represents a series of flux measurements with per-point
// inverse-variance weights. Timestamps need not be sorted or uniformly
// spaced.
type LightCurve struct {
	Time []float64
	Flux []float64
	Ivar []float64
	Name string
}

// New creates a light curve with unit weight on every observation.
func New(t, y []float64) (*LightCurve, error) {
	ivar := make([]float64, len(y))
	for i := range ivar {
		ivar[i] = 1.0
	}
	return NewWeighted(t, y, ivar)
}

// NewWeighted creates a light curve with explicit inverse-variance weights.
// Weights must be finite and non-negative; a zero weight excludes the point
// from every estimate without changing array lengths.
func NewWeighted(t, y, ivar []float64) (*LightCurve, error) {
	if len(t) == 0 {
		return nil, errors.New("light curve must contain at least one observation")
	}
	if len(t) != len(y) || len(t) != len(ivar) {
		return nil, errors.New("time, flux, and ivar must have the same length")
	}
	for _, w := range ivar {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, errors.New("inverse-variance weights must be finite and non-negative")
		}
	}
	return &LightCurve{Time: t, Flux: y, Ivar: ivar}, nil
}

// FromSigma creates a light curve from per-point flux uncertainties.
// Each sigma must be positive; ivar is 1/sigma².
func FromSigma(t, y, sigma []float64) (*LightCurve, error) {
	if len(sigma) != len(y) {
		return nil, errors.New("time, flux, and sigma must have the same length")
	}
	ivar := make([]float64, len(sigma))
	for i, s := range sigma {
		if s <= 0 || math.IsNaN(s) {
			return nil, errors.New("flux uncertainties must be positive")
		}
		ivar[i] = 1.0 / (s * s)
	}
	return NewWeighted(t, y, ivar)
}

// Len returns the number of observations.
func (lc *LightCurve) Len() int {
	return len(lc.Flux)
}

// Baseline returns the total time span covered by the observations.
func (lc *LightCurve) Baseline() float64 {
	if len(lc.Time) == 0 {
		return 0
	}
	min, max := lc.Time[0], lc.Time[0]
	for _, t := range lc.Time[1:] {
		if t < min {
			min = t
		}
		if t > max {
			max = t
		}
	}
	return max - min
}

// TotalWeight returns the sum of the inverse-variance weights.
func (lc *LightCurve) TotalWeight() float64 {
	sum := 0.0
	for _, w := range lc.Ivar {
		sum += w
	}
	return sum
}

// WeightedMean returns the inverse-variance weighted mean flux.
// Returns NaN when the total weight is zero.
func (lc *LightCurve) WeightedMean() float64 {
	sumY, sumW := 0.0, 0.0
	for i, y := range lc.Flux {
		sumY += y * lc.Ivar[i]
		sumW += lc.Ivar[i]
	}
	if sumW == 0 {
		return math.NaN()
	}
	return sumY / sumW
}

// Fold returns the fractional phase of every observation at the given
// period, each in [0, period).
func (lc *LightCurve) Fold(period float64) []float64 {
	phases := make([]float64, len(lc.Time))
	for i, t := range lc.Time {
		phases[i] = math.Abs(math.Mod(t, period))
	}
	return phases
}

// Copy creates a deep copy of the light curve.
func (lc *LightCurve) Copy() *LightCurve {
	t := make([]float64, len(lc.Time))
	y := make([]float64, len(lc.Flux))
	ivar := make([]float64, len(lc.Ivar))
	copy(t, lc.Time)
	copy(y, lc.Flux)
	copy(ivar, lc.Ivar)
	return &LightCurve{Time: t, Flux: y, Ivar: ivar, Name: lc.Name}
}
