// Package similarity provides string similarity metrics: Smith-Waterman local
// alignment over characters and Jaccard overlap over token sets.
package similarity

import "github.com/botirk38/simmetrics/types"

// SimilarityFunc represents a function that computes similarity between two strings.
// It should return a float64 where higher values indicate greater similarity.
type SimilarityFunc func(a, b string) float64

// FuncOf returns the Similarity method of m as a SimilarityFunc.
func FuncOf(m types.Metric) SimilarityFunc {
	return m.Similarity
}
