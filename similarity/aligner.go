package similarity

import (
	"fmt"
	"math"

	"github.com/botirk38/simmetrics/costfunc"
)

// Aligner computes Smith-Waterman local alignment scores between sequences
// of comparable elements. It holds no per-call state and is safe for
// concurrent use.
type Aligner[T comparable] struct {
	gapCost float64
	cost    costfunc.CostFunction[T]
}

// NewAligner creates an Aligner charging gapCost per inserted or deleted
// element and scoring substitutions with cost.
func NewAligner[T comparable](gapCost float64, cost costfunc.CostFunction[T]) (*Aligner[T], error) {
	if gapCost < 0 || math.IsNaN(gapCost) {
		return nil, fmt.Errorf("%w: %v", ErrNegativeGapCost, gapCost)
	}
	if cost == nil {
		return nil, ErrNilCostFunction
	}

	return &Aligner[T]{
		gapCost: gapCost,
		cost:    cost,
	}, nil
}

// GapCost returns the per-element gap penalty.
func (a *Aligner[T]) GapCost() float64 {
	return a.gapCost
}

// CostFunction returns the substitution cost function.
func (a *Aligner[T]) CostFunction() costfunc.CostFunction[T] {
	return a.cost
}

// Score returns the best local alignment score between s and t.
//
// If either sequence is empty the length of the other is returned instead
// of 0, matching the long-standing convention of the metric.
func (a *Aligner[T]) Score(s, t []T) float64 {
	n, m := len(s), len(t)
	if n == 0 {
		return float64(m)
	}
	if m == 0 {
		return float64(n)
	}

	// d[i*m+j] is the best score of an alignment ending at s[i], t[j].
	// Cells outside the matrix are treated as 0.
	d := make([]float64, n*m)
	var best float64
	for i := range n {
		for j := range m {
			var up, left, diag float64
			if i > 0 {
				up = d[(i-1)*m+j]
			}
			if j > 0 {
				left = d[i*m+j-1]
			}
			if i > 0 && j > 0 {
				diag = d[(i-1)*m+j-1]
			}

			v := max(0, up-a.gapCost, left-a.gapCost, diag+a.cost.Cost(s, i, t, j))
			d[i*m+j] = v
			if v > best {
				best = v
			}
		}
	}

	return best
}

// MaxScore returns the theoretical maximum score for sequences of length
// n and m, used to normalize Score.
func (a *Aligner[T]) MaxScore(n, m int) float64 {
	return float64(min(n, m)) * max(a.cost.MaxCost(), a.gapCost)
}

// Normalized returns Score scaled into [0, 1] by MaxScore.
// When the maximum is zero (an empty input) it returns 1.
//
// The result only stays within [0, 1] if the cost function never exceeds
// its declared MaxCost.
func (a *Aligner[T]) Normalized(s, t []T) float64 {
	maxScore := a.MaxScore(len(s), len(t))
	if maxScore == 0 {
		return 1
	}
	return a.Score(s, t) / maxScore
}
