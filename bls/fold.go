package bls

import (
	"math"

	"github.com/sartorproj/gobls/lightcurve"
)

// scratch is a worker-private pair of phase accumulators sized for the
// longest trial period. Index 0 stays zero as the cumulative-sum sentinel
// so any windowed sum is a difference of two entries.
type scratch struct {
	binY    []float64
	binIvar []float64
}

func newScratch(maxBins int) *scratch {
	return &scratch{
		binY:    make([]float64, maxBins+1),
		binIvar: make([]float64, maxBins+1),
	}
}

// fold bins the light curve by fractional phase at one trial period and
// returns the two accumulators as cumulative sums over bins [0, nBins].
func (s *scratch) fold(lc *lightcurve.LightCurve, period float64, g *grid) (binY, binIvar []float64) {
	nBins := g.nBins(period)
	binY = s.binY[:nBins+1]
	binIvar = s.binIvar[:nBins+1]
	for i := range binY {
		binY[i] = 0
		binIvar[i] = 0
	}

	for i, t := range lc.Time {
		ind := int(math.Abs(math.Mod(t, period))/g.binDuration) + 1
		binY[ind] += lc.Flux[i] * lc.Ivar[i]
		binIvar[ind] += lc.Ivar[i]
	}

	// Wrap the first oversample bins onto the end of the array so a
	// transit window straddling phase zero stays contiguous.
	for n, ind := 1, nBins-g.oversample; n <= g.oversample; n, ind = n+1, ind+1 {
		binY[ind] = binY[n]
		binIvar[ind] = binIvar[n]
	}

	// Convert to cumulative sums in place; the sum over bins (n, n+dur]
	// is then binY[n+dur] - binY[n].
	for n := 1; n <= nBins; n++ {
		binY[n] += binY[n-1]
		binIvar[n] += binIvar[n-1]
	}
	return binY, binIvar
}
