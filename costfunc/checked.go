package costfunc

import "github.com/botirk38/simmetrics/logging"

// Checked wraps a CostFunction and reports every cost above the declared
// maximum. The wrapped cost is returned unchanged.
//
// Intended for debugging custom cost functions; it adds a comparison and
// possibly a log call to every cell of the alignment matrix.
type Checked[T comparable] struct {
	inner  CostFunction[T]
	logger *logging.Logger
}

// NewChecked wraps inner. A nil logger discards reports.
func NewChecked[T comparable](inner CostFunction[T], logger *logging.Logger) *Checked[T] {
	if logger == nil {
		logger = logging.NoopLogger()
	}
	return &Checked[T]{inner: inner, logger: logger}
}

// Cost implements CostFunction.
func (c *Checked[T]) Cost(a []T, i int, b []T, j int) float64 {
	cost := c.inner.Cost(a, i, b, j)
	if maxCost := c.inner.MaxCost(); cost > maxCost {
		c.logger.LogCostBoundViolation(i, j, cost, maxCost)
	}
	return cost
}

// MaxCost implements CostFunction.
func (c *Checked[T]) MaxCost() float64 {
	return c.inner.MaxCost()
}

// Unwrap returns the wrapped cost function.
func (c *Checked[T]) Unwrap() CostFunction[T] {
	return c.inner
}
