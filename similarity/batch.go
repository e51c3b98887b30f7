package similarity

import "github.com/botirk38/simmetrics/types"

// CompareSet scores every string in set against comparator.
func CompareSet(m types.Metric, set []string, comparator string) []float64 {
	scores := make([]float64, len(set))
	for i, s := range set {
		scores[i] = m.Similarity(s, comparator)
	}
	return scores
}

// CompareSets scores first[i] against second[i] for every index present in
// both sets. The result has the length of the shorter set.
func CompareSets(m types.Metric, first, second []string) []float64 {
	n := min(len(first), len(second))
	scores := make([]float64, n)
	for i := range n {
		scores[i] = m.Similarity(first[i], second[i])
	}
	return scores
}

// Cheapest returns the metric with the lowest estimated cost for the pair
// a, b. Ties keep the earlier metric. It returns nil for an empty list.
func Cheapest(metrics []types.Metric, a, b string) types.Metric {
	var (
		best     types.Metric
		bestCost float64
	)
	for _, m := range metrics {
		if m == nil {
			continue
		}
		if c := m.EstimatedCost(a, b); best == nil || c < bestCost {
			best, bestCost = m, c
		}
	}
	return best
}
