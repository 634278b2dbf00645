package interpolate

// GapFactor scales the margin into the gap threshold used by run splitting:
// consecutive domain points further apart than GapFactor*margin are treated
// as belonging to separate runs. The value is a heuristic balancing false
// splits against missed gaps, not a derived constant.
const GapFactor = 2.5

// SplitRuns splits a sorted, distinct domain slice into maximal contiguous
// runs, breaking wherever the gap between consecutive points exceeds
// GapFactor*margin. The returned runs are sub-slices of xs.
func SplitRuns(xs []float64, margin float64) [][]float64 {
	if len(xs) == 0 {
		return nil
	}

	var runs [][]float64
	start := 0
	for i := 1; i < len(xs); i++ {
		if xs[i]-xs[i-1] > GapFactor*margin {
			runs = append(runs, xs[start:i])
			start = i
		}
	}
	return append(runs, xs[start:])
}

// FindRun returns the run of xs whose margin-extended half-open interval
// [first-margin, last+margin) contains target. The second return is false
// when no run qualifies; that means the target has no usable coverage and
// must be skipped, not that anything went wrong. An empty xs never matches.
func FindRun(xs []float64, target, margin float64) ([]float64, bool) {
	for _, run := range SplitRuns(xs, margin) {
		first, last := run[0], run[len(run)-1]
		if target >= first-margin && target < last+margin {
			return run, true
		}
	}
	return nil, false
}
