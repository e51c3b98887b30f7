package types

// Metric defines the contract every string similarity measure satisfies.
// Implementations are immutable after construction and safe for concurrent use.
type Metric interface {
	// Similarity returns a normalized score in [0, 1], where 1 means identical
	Similarity(a, b string) float64

	// EstimatedCost returns a relative, advisory prediction of how expensive
	// Similarity is for the given pair. It grows with input size.
	EstimatedCost(a, b string) float64

	// Name returns a short human-readable identifier for the metric
	Name() string
}

// UnnormalizedMetric is a Metric that also exposes its raw score.
type UnnormalizedMetric interface {
	Metric

	// UnnormalizedSimilarity returns the raw score before normalization
	UnnormalizedSimilarity(a, b string) float64
}

// Tokenizer splits a string into an ordered sequence of tokens.
// Implementations must be deterministic; tokens are compared by value.
type Tokenizer interface {
	Tokenize(text string) []string
}

// MetricType represents the kind of metric to build
type MetricType string

const (
	MetricSmithWaterman MetricType = "smith_waterman"
	MetricJaccard       MetricType = "jaccard"
)
