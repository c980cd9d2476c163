package bls

import (
	"golang.org/x/sync/errgroup"

	"github.com/sartorproj/gobls/lightcurve"
)

// sufficientStats holds the weighted aggregates of the full light curve
// shared by every trial period: Σ y²·ivar, Σ y·ivar, and Σ ivar.
type sufficientStats struct {
	sumY2   float64
	sumY    float64
	sumIvar float64
}

func (s *sufficientStats) add(o sufficientStats) {
	s.sumY2 += o.sumY2
	s.sumY += o.sumY
	s.sumIvar += o.sumIvar
}

// accumulate reduces the light curve to its sufficient statistics, one
// partial sum per worker combined by addition. Summation order may differ
// from a serial pass at the level of floating-point rounding.
func accumulate(lc *lightcurve.LightCurve, workers int) sufficientStats {
	n := lc.Len()
	if n == 0 {
		return sufficientStats{}
	}
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers
	parts := make([]sufficientStats, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, n)
		part := &parts[w]
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				tmp := lc.Flux[i] * lc.Ivar[i]
				part.sumY2 += lc.Flux[i] * tmp
				part.sumY += tmp
				part.sumIvar += lc.Ivar[i]
			}
			return nil
		})
	}
	_ = g.Wait() // workers never return an error

	var total sufficientStats
	for _, p := range parts {
		total.add(p)
	}
	return total
}
