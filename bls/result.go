package bls

// Result holds the best candidate transit found at one trial period.
// When Found is false, no duration/phase window at this period carried
// enough weight on both sides of the transit to score; Objective is then
// negative infinity and the remaining fields are zero.
type Result struct {
	Period        float64 // the trial period, in time units
	Objective     float64 // value of the selected detection statistic
	Depth         float64 // out-of-transit mean flux minus in-transit mean flux
	DepthErr      float64 // uncertainty on Depth
	DepthSNR      float64 // Depth / DepthErr
	LogLikelihood float64 // log likelihood of the box model
	Duration      float64 // best-fitting duration, in time units
	Phase         float64 // mid-transit time modulo the period
	Found         bool    // whether any candidate was scored at this period
}

// Best returns the index of the result with the highest objective, or -1
// if no period produced a candidate.
func Best(results []Result) int {
	best := -1
	for i, r := range results {
		if !r.Found {
			continue
		}
		if best < 0 || r.Objective > results[best].Objective {
			best = i
		}
	}
	return best
}
