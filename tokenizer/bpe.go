package tokenizer

import (
	"fmt"
	"strings"

	"github.com/botirk38/simmetrics/logging"
	"github.com/tiktoken-go/tokenizer"
)

// BPE splits text into byte-pair-encoding pieces using tiktoken.
// Tokens are the decoded string pieces, not the numeric ids, so they can
// be compared across inputs by value.
type BPE struct {
	encoding tokenizer.Codec
	logger   *logging.Logger
}

// NewBPE creates a BPE tokenizer for the given tiktoken encoding.
// An empty encoding selects cl100k_base.
func NewBPE(encoding tokenizer.Encoding, logger *logging.Logger) (*BPE, error) {
	if encoding == "" {
		encoding = tokenizer.Cl100kBase
	}
	if logger == nil {
		logger = logging.NoopLogger()
	}

	enc, err := tokenizer.Get(encoding)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownEncoding, err)
	}

	return &BPE{
		encoding: enc,
		logger:   logger,
	}, nil
}

// Tokenize implements types.Tokenizer.
// If tiktoken cannot encode the text, it falls back to whitespace splitting.
func (t *BPE) Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	_, pieces, err := t.encoding.Encode(text)
	if err != nil {
		t.logger.LogTokenizerFallback("bpe", err)
		return strings.Fields(text)
	}

	return pieces
}

// CountTokens counts the BPE tokens in text.
func (t *BPE) CountTokens(text string) (int, error) {
	if text == "" {
		return 0, nil
	}

	ids, _, err := t.encoding.Encode(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrTokenizerFailed, err)
	}

	return len(ids), nil
}
