package bls

import (
	"math"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/sartorproj/gobls/lightcurve"
)

// Options controls the periodogram search.
type Options struct {
	Oversample int       // phase bins per minimum trial duration (default: 10)
	Objective  Objective // detection statistic to maximize (default: DepthSNR)
	Workers    int       // parallel workers; <= 0 uses runtime.NumCPU()
}

// DefaultOptions returns the default search configuration.
func DefaultOptions() *Options {
	return &Options{
		Oversample: 10,
		Objective:  DepthSNR,
		Workers:    runtime.NumCPU(),
	}
}

// Compute runs the box least squares search over the given trial period
// and duration grids and returns one Result per trial period, in period
// order. The light curve is read only; trial periods are searched
// independently and in parallel.
//
// The grids are caller-supplied: every trial duration must exceed machine
// epsilon and must not exceed the smallest trial period. On a validation
// error no computation is performed and no results are returned.
func Compute(lc *lightcurve.LightCurve, periods, durations []float64, opts *Options) ([]Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	g, err := newGrid(periods, durations, opts.Oversample)
	if err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	stats := accumulate(lc, workers)

	if workers > len(periods) {
		workers = len(periods)
	}
	scratches := make([]*scratch, workers)
	for w := range scratches {
		scratches[w] = newScratch(g.maxBins)
	}

	// Workers pull trial periods off a shared cursor; each owns one
	// scratch pair and writes only its own period's record.
	results := make([]Result, len(periods))
	var cursor atomic.Int64
	var group errgroup.Group
	for w := 0; w < workers; w++ {
		s := scratches[w]
		group.Go(func() error {
			for {
				p := int(cursor.Add(1)) - 1
				if p >= len(periods) {
					return nil
				}
				results[p] = searchPeriod(lc, periods[p], g, stats, opts.Objective, s)
			}
		})
	}
	_ = group.Wait() // workers never return an error

	return results, nil
}

// searchPeriod slides every trial duration across every phase at one trial
// period and keeps the best-scoring candidate transit.
func searchPeriod(lc *lightcurve.LightCurve, period float64, g *grid, stats sufficientStats, obj Objective, s *scratch) Result {
	binY, binIvar := s.fold(lc, period, g)
	nBins := len(binY) - 1

	best := Result{Period: period, Objective: math.Inf(-1)}
	for _, dur := range g.durBins {
		for n := 0; n+dur <= nBins; n++ {
			yIn := binY[n+dur] - binY[n]
			ivarIn := binIvar[n+dur] - binIvar[n]
			yOut := stats.sumY - yIn
			ivarOut := stats.sumIvar - ivarIn

			// A window with essentially no weight on either side cannot
			// yield a stable depth estimate.
			if ivarIn < epsilon || ivarOut < epsilon {
				continue
			}

			yIn /= ivarIn
			yOut /= ivarOut

			score := obj.score(yIn, yOut, ivarIn, ivarOut, stats)

			// A transit dims the star, so flux increases never win; among
			// dips, a new candidate must strictly beat the stored best.
			if yOut >= yIn && score > best.Objective {
				best.Found = true
				best.Objective = score
				best.Depth, best.DepthErr, best.DepthSNR = snrScore(yIn, yOut, ivarIn, ivarOut)
				best.LogLikelihood = likelihoodScore(yIn, yOut, ivarIn, stats)
				best.Duration = float64(dur) * g.binDuration
				best.Phase = math.Mod(float64(n)*g.binDuration+0.5*best.Duration, period)
			}
		}
	}
	return best
}
