package similarity

import (
	"github.com/botirk38/simmetrics/tokenizer"
	"github.com/botirk38/simmetrics/types"
)

const jaccardTimingConst = 1.4e-4

// Jaccard measures the overlap of the distinct tokens of two strings:
// |A ∩ B| / |A ∪ B|.
type Jaccard struct {
	tokenizer types.Tokenizer
}

var _ types.Metric = (*Jaccard)(nil)

// NewJaccard creates a Jaccard metric that tokenizes with tok.
func NewJaccard(tok types.Tokenizer) (*Jaccard, error) {
	if tok == nil {
		return nil, ErrNilTokenizer
	}
	return &Jaccard{tokenizer: tok}, nil
}

// NewDefaultJaccard creates a Jaccard metric over whitespace-separated tokens.
func NewDefaultJaccard() *Jaccard {
	return &Jaccard{tokenizer: tokenizer.NewWhitespace()}
}

// Tokenizer returns the tokenizer in use.
func (j *Jaccard) Tokenizer() types.Tokenizer {
	return j.tokenizer
}

// Name implements types.Metric.
func (j *Jaccard) Name() string {
	return "Jaccard"
}

// Similarity returns the Jaccard coefficient of the token sets of a and b.
// Two inputs without any tokens are identical and score 1.
func (j *Jaccard) Similarity(a, b string) float64 {
	common, union := overlap(tokenSet(j.tokenizer.Tokenize(a)), tokenSet(j.tokenizer.Tokenize(b)))
	if union == 0 {
		return 1
	}
	return float64(common) / float64(union)
}

// EstimatedCost implements types.Metric.
func (j *Jaccard) EstimatedCost(a, b string) float64 {
	n := float64(len(j.tokenizer.Tokenize(a)))
	m := float64(len(j.tokenizer.Tokenize(b)))
	return n * m * jaccardTimingConst
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

// overlap returns the number of shared terms and the size of the union,
// with common = |x| + |y| - |x ∪ y|.
func overlap(x, y map[string]struct{}) (common, union int) {
	union = len(x)
	for t := range y {
		if _, ok := x[t]; !ok {
			union++
		}
	}
	return len(x) + len(y) - union, union
}
