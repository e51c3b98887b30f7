// Package tokenizer provides tokenizers for token-based similarity metrics.
package tokenizer

import (
	"strings"

	"golang.org/x/text/cases"
)

// Whitespace splits text on runs of Unicode white space.
type Whitespace struct {
	fold bool
}

// NewWhitespace creates a whitespace tokenizer.
func NewWhitespace() *Whitespace {
	return &Whitespace{}
}

// NewFoldingWhitespace creates a whitespace tokenizer that applies Unicode
// case folding first, so "Straße" and "STRASSE" produce the same token.
func NewFoldingWhitespace() *Whitespace {
	return &Whitespace{fold: true}
}

// Tokenize implements types.Tokenizer.
func (t *Whitespace) Tokenize(text string) []string {
	if t.fold {
		// Casers are stateful, so one is created per call.
		text = cases.Fold().String(text)
	}
	return strings.Fields(text)
}
