package similarity

import "errors"

// Configuration errors returned by metric constructors
var (
	// ErrNegativeGapCost indicates a gap cost below zero
	ErrNegativeGapCost = errors.New("gap cost must be non-negative")

	// ErrNilCostFunction indicates no substitution cost function was given
	ErrNilCostFunction = errors.New("cost function cannot be nil")

	// ErrNilTokenizer indicates no tokenizer was given
	ErrNilTokenizer = errors.New("tokenizer cannot be nil")
)
