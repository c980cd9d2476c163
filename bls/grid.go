package bls

import (
	"errors"
	"math"
)

// epsilon is the double-precision machine epsilon, used as the floor for
// trial periods, trial durations, and accumulated window weights.
const epsilon = 2.220446049250313e-16

var (
	// ErrInvalidPeriodRange reports a period grid whose minimum is not a
	// usable positive period.
	ErrInvalidPeriodRange = errors.New("bls: minimum trial period must exceed machine epsilon")

	// ErrInvalidDurationRange reports a duration grid that cannot place a
	// transit window inside every trial period.
	ErrInvalidDurationRange = errors.New("bls: trial durations must exceed machine epsilon and must not exceed the minimum trial period")

	// ErrInvalidOversample reports a non-positive oversample factor.
	ErrInvalidOversample = errors.New("bls: oversample must be at least 1")
)

// grid holds the phase binning scheme derived from the trial grids.
// binDuration is the finest resolution at which transit edges can be
// placed; maxBins bounds the bin count over all trial periods.
type grid struct {
	binDuration float64
	oversample  int
	maxBins     int
	durBins     []int // trial durations in bins, each at least 1
}

// newGrid validates the trial grids and derives the shared bin resolution.
func newGrid(periods, durations []float64, oversample int) (*grid, error) {
	if oversample < 1 {
		return nil, ErrInvalidOversample
	}
	if len(periods) == 0 {
		return nil, ErrInvalidPeriodRange
	}
	if len(durations) == 0 {
		return nil, ErrInvalidDurationRange
	}

	minPeriod, maxPeriod := minMax(periods)
	if minPeriod < epsilon {
		return nil, ErrInvalidPeriodRange
	}
	minDuration, maxDuration := minMax(durations)
	if maxDuration > minPeriod || minDuration < epsilon {
		return nil, ErrInvalidDurationRange
	}

	binDuration := minDuration / float64(oversample)
	g := &grid{
		binDuration: binDuration,
		oversample:  oversample,
		maxBins:     int(maxPeriod/binDuration) + oversample,
		durBins:     make([]int, len(durations)),
	}
	for k, d := range durations {
		bins := int(math.Round(d / binDuration))
		if bins < 1 {
			bins = 1
		}
		g.durBins[k] = bins
	}
	return g, nil
}

// nBins returns the number of phase bins at one trial period, including
// the wrap padding. The accumulator arrays hold one extra leading bin as
// the cumulative-sum sentinel.
func (g *grid) nBins(period float64) int {
	return int(period/g.binDuration) + g.oversample
}

func minMax(values []float64) (min, max float64) {
	min, max = values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
