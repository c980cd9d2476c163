package bls

import "math"

// Objective selects the detection statistic maximized at each trial period.
type Objective int

const (
	// DepthSNR ranks candidate transits by the signal-to-noise ratio of
	// the estimated depth.
	DepthSNR Objective = iota

	// LogLikelihood ranks candidate transits by the log likelihood of the
	// box model against a constant out-of-transit baseline.
	LogLikelihood
)

// String returns the objective name.
func (o Objective) String() string {
	if o == LogLikelihood {
		return "likelihood"
	}
	return "snr"
}

// snrScore estimates the transit depth, its uncertainty, and their ratio
// from the weighted in- and out-of-transit mean fluxes.
func snrScore(yIn, yOut, ivarIn, ivarOut float64) (depth, depthErr, depthSNR float64) {
	depth = yOut - yIn
	depthErr = math.Sqrt(1.0/ivarIn + 1.0/ivarOut)
	return depth, depthErr, depth / depthErr
}

// likelihoodScore computes the log likelihood of a box transit relative to
// the constant baseline implied by the out-of-transit mean.
func likelihoodScore(yIn, yOut, ivarIn float64, s sufficientStats) float64 {
	arg := yIn - yOut
	chi2 := s.sumY2 - 2*yOut*s.sumY
	chi2 += yOut * yOut * s.sumIvar
	chi2 -= arg * arg * ivarIn
	return -0.5 * chi2
}

// score evaluates the selected objective for one candidate window.
func (o Objective) score(yIn, yOut, ivarIn, ivarOut float64, s sufficientStats) float64 {
	if o == LogLikelihood {
		return likelihoodScore(yIn, yOut, ivarIn, s)
	}
	_, _, snr := snrScore(yIn, yOut, ivarIn, ivarOut)
	return snr
}
