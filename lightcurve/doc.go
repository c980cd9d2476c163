// Package lightcurve provides the weighted time-series container used by
// the periodogram search.
//
// A LightCurve holds three parallel arrays: timestamps, measured flux, and
// per-point inverse-variance weights. Timestamps may be unsorted and
// unevenly spaced.
//
// # Creating a LightCurve
//
// With unit weights:
//
//	lc, err := lightcurve.New(t, flux)
//
// With explicit weights or uncertainties:
//
//	lc, err := lightcurve.NewWeighted(t, flux, ivar)
//	lc, err := lightcurve.FromSigma(t, flux, sigma)
//
// # Statistics
//
// Basic weighted summaries:
//
//	mean := lc.WeightedMean()
//	span := lc.Baseline()
//	w := lc.TotalWeight()
//
// # Phase Folding
//
// Map each timestamp to its fractional position within one period:
//
//	phases := lc.Fold(period)
package lightcurve
