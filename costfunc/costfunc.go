// Package costfunc provides substitution cost functions for sequence alignment.
package costfunc

// CostFunction scores aligning element a[i] against element b[j].
//
// Implementations must be pure and deterministic, and Cost must never
// exceed MaxCost: alignment scores are normalized by MaxCost, so an
// understated bound produces similarities above 1.
type CostFunction[T comparable] interface {
	// Cost returns the substitution cost of a[i] against b[j]
	Cost(a []T, i int, b []T, j int) float64

	// MaxCost returns the largest value Cost can return
	MaxCost() float64
}

// MatchMismatch scores equal elements as Match and differing elements as Mismatch.
type MatchMismatch[T comparable] struct {
	Match    float64
	Mismatch float64
}

// Default returns the default substitution cost: +2 on match, -1 on mismatch.
func Default[T comparable]() MatchMismatch[T] {
	return MatchMismatch[T]{Match: 2, Mismatch: -1}
}

// SubCost1Minus2 returns a cost of +1 on match and -2 on mismatch.
func SubCost1Minus2[T comparable]() MatchMismatch[T] {
	return MatchMismatch[T]{Match: 1, Mismatch: -2}
}

// Cost implements CostFunction.
func (c MatchMismatch[T]) Cost(a []T, i int, b []T, j int) float64 {
	if a[i] == b[j] {
		return c.Match
	}
	return c.Mismatch
}

// MaxCost implements CostFunction.
func (c MatchMismatch[T]) MaxCost() float64 {
	return max(c.Match, c.Mismatch)
}

// Func adapts a plain function and its declared maximum into a CostFunction.
type Func[T comparable] struct {
	Fn  func(a, b T) float64
	Max float64
}

// Cost implements CostFunction.
func (f Func[T]) Cost(a []T, i int, b []T, j int) float64 {
	return f.Fn(a[i], b[j])
}

// MaxCost implements CostFunction.
func (f Func[T]) MaxCost() float64 {
	return f.Max
}
