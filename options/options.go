// Package options provides functional options for configuring simmetrics metrics.
package options

import (
	"errors"
	"fmt"
	"math"

	"github.com/botirk38/simmetrics/costfunc"
	"github.com/botirk38/simmetrics/logging"
	"github.com/botirk38/simmetrics/similarity"
	"github.com/botirk38/simmetrics/tokenizer"
	"github.com/botirk38/simmetrics/types"
	tiktoken "github.com/tiktoken-go/tokenizer"
	"golang.org/x/text/unicode/norm"
)

// Option represents a configuration option for a metric
type Option func(*Config) error

// Config holds the configuration for building a metric.
// Options that do not apply to the metric being built are ignored.
type Config struct {
	// Alignment settings
	GapCost      float64
	CostFunction costfunc.CostFunction[rune]
	CheckBounds  bool
	Normalize    bool
	UnicodeForm  norm.Form

	// Token settings
	Tokenizer      types.Tokenizer
	TokenCacheSize int

	Logger *logging.Logger
}

// NewConfig creates a new configuration with default values
func NewConfig() *Config {
	return &Config{
		GapCost:      similarity.DefaultGapCost,
		CostFunction: costfunc.Default[rune](),
		Tokenizer:    tokenizer.NewWhitespace(),
		Logger:       logging.NoopLogger(),
	}
}

// Apply applies all the given options to the config
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.GapCost < 0 || math.IsNaN(c.GapCost) {
		return fmt.Errorf("%w: %v", similarity.ErrNegativeGapCost, c.GapCost)
	}
	if c.CostFunction == nil {
		return similarity.ErrNilCostFunction
	}
	if c.Tokenizer == nil {
		return similarity.ErrNilTokenizer
	}
	if c.TokenCacheSize < 0 {
		return fmt.Errorf("%w: %d", tokenizer.ErrInvalidCacheSize, c.TokenCacheSize)
	}
	if c.Logger == nil {
		return errors.New("logger cannot be nil")
	}
	return nil
}

// WithGapCost sets the per-element gap penalty for alignment metrics
func WithGapCost(gapCost float64) Option {
	return func(cfg *Config) error {
		if gapCost < 0 || math.IsNaN(gapCost) {
			return fmt.Errorf("%w: %v", similarity.ErrNegativeGapCost, gapCost)
		}
		cfg.GapCost = gapCost
		return nil
	}
}

// WithCostFunction sets the substitution cost function for alignment metrics
func WithCostFunction(cost costfunc.CostFunction[rune]) Option {
	return func(cfg *Config) error {
		if cost == nil {
			return similarity.ErrNilCostFunction
		}
		cfg.CostFunction = cost
		return nil
	}
}

// WithBoundCheck reports substitution costs above the declared maximum
// through the configured logger. Meant for debugging custom cost functions.
func WithBoundCheck() Option {
	return func(cfg *Config) error {
		cfg.CheckBounds = true
		return nil
	}
}

// WithUnicodeNormalization normalizes both inputs of alignment metrics to
// form before scoring.
func WithUnicodeNormalization(form norm.Form) Option {
	return func(cfg *Config) error {
		cfg.Normalize = true
		cfg.UnicodeForm = form
		return nil
	}
}

// WithTokenizer sets the tokenizer for token-based metrics
func WithTokenizer(tok types.Tokenizer) Option {
	return func(cfg *Config) error {
		if tok == nil {
			return similarity.ErrNilTokenizer
		}
		cfg.Tokenizer = tok
		return nil
	}
}

// WithCaseFolding uses a whitespace tokenizer with Unicode case folding
func WithCaseFolding() Option {
	return func(cfg *Config) error {
		cfg.Tokenizer = tokenizer.NewFoldingWhitespace()
		return nil
	}
}

// WithBPETokenizer uses a tiktoken byte-pair-encoding tokenizer.
// An empty encoding selects cl100k_base. Fallback reports go to the logger
// configured so far, so WithLogger should come first.
func WithBPETokenizer(encoding ...tiktoken.Encoding) Option {
	return func(cfg *Config) error {
		var enc tiktoken.Encoding
		if len(encoding) > 0 {
			enc = encoding[0]
		}

		tok, err := tokenizer.NewBPE(enc, cfg.Logger)
		if err != nil {
			return err
		}
		cfg.Tokenizer = tok
		return nil
	}
}

// WithTokenCache memoizes tokenization of up to size distinct inputs
func WithTokenCache(size int) Option {
	return func(cfg *Config) error {
		if size <= 0 {
			return fmt.Errorf("%w: %d", tokenizer.ErrInvalidCacheSize, size)
		}
		cfg.TokenCacheSize = size
		return nil
	}
}

// WithLogger sets the logger
func WithLogger(logger *logging.Logger) Option {
	return func(cfg *Config) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		cfg.Logger = logger
		return nil
	}
}
