// Package gobls provides a box least squares (BLS) periodogram for
// detecting periodic transit signals in light curves.
//
// GoBLS searches a grid of trial periods and transit durations for the
// box-shaped dip that best explains a localized depression in a noisy,
// unevenly sampled flux series. For each trial period it phase-folds the
// observations into fine bins, slides every candidate duration across every
// phase using cumulative sums, and reports the best-scoring candidate
// transit together with its physical parameters.
//
// # Quick Start
//
// Search a light curve for a transit:
//
//	lc, _ := lightcurve.New(t, flux)
//	periods := []float64{...}   // trial periods, caller-supplied
//	durations := []float64{0.1, 0.2, 0.3}
//	results, err := bls.Compute(lc, periods, durations, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if i := bls.Best(results); i >= 0 {
//	    fmt.Printf("P=%.4f depth=%.5f snr=%.2f\n",
//	        results[i].Period, results[i].Depth, results[i].DepthSNR)
//	}
//
// Choose the detection statistic with Options:
//
//	opts := bls.DefaultOptions()
//	opts.Objective = bls.LogLikelihood
//	results, _ := bls.Compute(lc, periods, durations, opts)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - bls: the periodogram search and its result records
//   - lightcurve: weighted time-series data structures and utilities
//
// # References
//
//   - Kovács, G., Zucker, S., & Mazeh, T. (2002). A box-fitting algorithm
//     in the search for periodic transits
//   - Winn, J. N. (2010). Transits and Occultations
package gobls
