// Package simmetrics provides pairwise string similarity metrics that return
// a score in [0, 1].
//
// Two metrics are available: Smith-Waterman local alignment with a pluggable
// substitution cost, and Jaccard overlap of token sets. Both implement
// types.Metric and are safe for concurrent use once built.
//
//	sw, err := simmetrics.NewSmithWaterman(options.WithGapCost(1))
//	score := sw.Similarity("GGTTGACTA", "TGTTACGG")
package simmetrics

import (
	"fmt"

	"github.com/botirk38/simmetrics/costfunc"
	"github.com/botirk38/simmetrics/options"
	"github.com/botirk38/simmetrics/similarity"
	"github.com/botirk38/simmetrics/tokenizer"
	"github.com/botirk38/simmetrics/types"
)

// New creates a metric of the given type with functional options.
func New(metricType types.MetricType, opts ...options.Option) (types.Metric, error) {
	switch metricType {
	case types.MetricSmithWaterman:
		sw, err := NewSmithWaterman(opts...)
		if err != nil {
			return nil, err
		}
		return sw, nil
	case types.MetricJaccard:
		j, err := NewJaccard(opts...)
		if err != nil {
			return nil, err
		}
		return j, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMetric, metricType)
	}
}

// NewSmithWaterman creates a Smith-Waterman metric. Without options it uses a
// gap cost of 0.5 and the +2/-1 substitution cost.
func NewSmithWaterman(opts ...options.Option) (*similarity.SmithWaterman, error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}

	cost := cfg.CostFunction
	if cfg.CheckBounds {
		cost = costfunc.NewChecked(cost, cfg.Logger.WithMetric("SmithWaterman"))
	}

	sw, err := similarity.NewSmithWaterman(cfg.GapCost, cost)
	if err != nil {
		return nil, err
	}
	if cfg.Normalize {
		sw = sw.WithUnicodeForm(cfg.UnicodeForm)
	}

	cfg.Logger.LogMetricCreated(sw.Name(),
		"gap_cost", cfg.GapCost,
		"max_cost", cost.MaxCost(),
		"bound_check", cfg.CheckBounds,
	)
	return sw, nil
}

// NewJaccard creates a Jaccard metric. Without options it tokenizes on
// white space.
func NewJaccard(opts ...options.Option) (*similarity.Jaccard, error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}

	tok := cfg.Tokenizer
	if cfg.TokenCacheSize > 0 {
		tok, err = tokenizer.NewCached(tok, cfg.TokenCacheSize)
		if err != nil {
			return nil, err
		}
	}

	j, err := similarity.NewJaccard(tok)
	if err != nil {
		return nil, err
	}

	cfg.Logger.LogMetricCreated(j.Name(),
		"tokenizer", fmt.Sprintf("%T", cfg.Tokenizer),
		"token_cache", cfg.TokenCacheSize,
	)
	return j, nil
}

func buildConfig(opts []options.Option) (*options.Config, error) {
	cfg := options.NewConfig()

	if err := cfg.Apply(opts...); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
