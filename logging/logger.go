// Package logging provides structured logging for simmetrics components.
package logging

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with simmetrics-specific helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithMetric tags every record with the metric name.
func (l *Logger) WithMetric(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("metric", name),
	}
}

// LogMetricCreated logs a successfully configured metric.
func (l *Logger) LogMetricCreated(name string, attrs ...any) {
	l.Debug("metric configured", append([]any{"metric", name}, attrs...)...)
}

// LogCostBoundViolation logs a cost function returning more than its declared maximum.
// Scores computed with such a function may exceed 1 after normalization.
func (l *Logger) LogCostBoundViolation(i, j int, cost, maxCost float64) {
	l.Warn("substitution cost exceeds declared maximum",
		"i", i,
		"j", j,
		"cost", cost,
		"max_cost", maxCost,
	)
}

// LogTokenizerFallback logs a tokenizer that could not encode its input
// and degraded to whitespace splitting.
func (l *Logger) LogTokenizerFallback(tokenizer string, err error) {
	l.Warn("tokenizer failed, falling back to whitespace splitting",
		"tokenizer", tokenizer,
		"error", err,
	)
}
