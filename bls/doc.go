// Package bls implements the box least squares (BLS) transit periodogram.
//
// BLS detects periodic box-shaped dips in a weighted flux series. For each
// trial period the observations are folded into fine phase bins, the bins
// are converted to cumulative sums, and every combination of trial
// duration and phase is scored in constant time per candidate. The
// best-scoring candidate per period is reported with its depth, depth
// uncertainty, depth signal-to-noise, and log likelihood.
//
// # Basic Usage
//
// Run the search with default options:
//
//	results, err := bls.Compute(lc, periods, durations, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Each Result corresponds to one trial period:
//
//	for _, r := range results {
//	    if !r.Found {
//	        continue
//	    }
//	    fmt.Printf("P=%.4f snr=%.2f depth=%.5f\n", r.Period, r.DepthSNR, r.Depth)
//	}
//
// # Objectives
//
// Two detection statistics are available. DepthSNR maximizes the
// signal-to-noise ratio of the estimated depth; LogLikelihood maximizes
// the likelihood of the box model against a constant baseline. Every
// accepted candidate carries both statistics' derived quantities
// regardless of which one drove the selection.
//
// # Resolution
//
// Transit edges are placed on a phase grid of width
// min(durations)/Oversample. Larger Oversample values sharpen the
// resolution at proportional cost in bins scanned per period.
//
// # Concurrency
//
// Trial periods are independent and are distributed across a fixed pool of
// workers, each owning a private scratch buffer. The search is CPU bound,
// synchronous, and runs to completion; results do not depend on the worker
// count beyond floating-point summation order in the shared baseline sums.
package bls
