package tokenizer

import "errors"

// Common tokenizer errors
var (
	// ErrNilTokenizer indicates a wrapper was given no tokenizer to wrap
	ErrNilTokenizer = errors.New("tokenizer cannot be nil")

	// ErrInvalidCacheSize indicates the token cache size is invalid (<=0)
	ErrInvalidCacheSize = errors.New("token cache size must be positive")

	// ErrUnknownEncoding indicates tiktoken does not know the requested encoding
	ErrUnknownEncoding = errors.New("unknown BPE encoding")

	// ErrTokenizerFailed indicates tokenization failed
	ErrTokenizerFailed = errors.New("tokenization failed")
)
