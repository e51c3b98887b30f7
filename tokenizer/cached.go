package tokenizer

import (
	"fmt"

	"github.com/botirk38/simmetrics/types"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Cached memoizes another tokenizer's output in an LRU cache.
// It relies on the wrapped tokenizer being deterministic.
//
// Returned slices are shared between callers and must not be modified.
type Cached struct {
	inner types.Tokenizer
	cache *lru.Cache[string, []string]
}

// NewCached wraps inner with an LRU cache holding up to size inputs.
func NewCached(inner types.Tokenizer, size int) (*Cached, error) {
	if inner == nil {
		return nil, ErrNilTokenizer
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCacheSize, size)
	}

	cache, err := lru.New[string, []string](size)
	if err != nil {
		return nil, err
	}

	return &Cached{
		inner: inner,
		cache: cache,
	}, nil
}

// Tokenize implements types.Tokenizer.
func (t *Cached) Tokenize(text string) []string {
	if tokens, ok := t.cache.Get(text); ok {
		return tokens
	}

	tokens := t.inner.Tokenize(text)
	t.cache.Add(text, tokens)
	return tokens
}

// Len returns the number of cached inputs.
func (t *Cached) Len() int {
	return t.cache.Len()
}

// Purge empties the cache.
func (t *Cached) Purge() {
	t.cache.Purge()
}
