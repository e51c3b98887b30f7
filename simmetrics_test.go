package simmetrics

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/botirk38/simmetrics/costfunc"
	"github.com/botirk38/simmetrics/logging"
	"github.com/botirk38/simmetrics/options"
	"github.com/botirk38/simmetrics/similarity"
	"github.com/botirk38/simmetrics/tokenizer"
	"github.com/botirk38/simmetrics/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"
)

func TestNew(t *testing.T) {
	t.Run("smith waterman", func(t *testing.T) {
		m, err := New(types.MetricSmithWaterman)
		require.NoError(t, err)
		assert.Equal(t, "SmithWaterman", m.Name())

		um, ok := m.(types.UnnormalizedMetric)
		require.True(t, ok)
		assert.Equal(t, 9.5, um.UnnormalizedSimilarity("GGTTGACTA", "TGTTACGG"))
	})

	t.Run("jaccard", func(t *testing.T) {
		m, err := New(types.MetricJaccard)
		require.NoError(t, err)
		assert.InDelta(t, 0.6, m.Similarity("a b c d", "a b c e"), 1e-9)
	})

	t.Run("unsupported", func(t *testing.T) {
		m, err := New("levenshtein")
		assert.ErrorIs(t, err, ErrUnsupportedMetric)
		assert.Nil(t, m)
	})

	t.Run("invalid options yield nil interface", func(t *testing.T) {
		m, err := New(types.MetricSmithWaterman, options.WithGapCost(-1))
		assert.ErrorIs(t, err, similarity.ErrNegativeGapCost)
		assert.Nil(t, m)

		m, err = New(types.MetricJaccard, options.WithTokenizer(nil))
		assert.ErrorIs(t, err, similarity.ErrNilTokenizer)
		assert.Nil(t, m)
	})
}

func TestNewSmithWaterman(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		sw, err := NewSmithWaterman()
		require.NoError(t, err)
		assert.Equal(t, 0.5, sw.Aligner().GapCost())
		assert.Equal(t, 1.0, sw.Similarity("", ""))
		assert.Equal(t, 3.0, sw.UnnormalizedSimilarity("", "abc"))
	})

	t.Run("worked example", func(t *testing.T) {
		sw, err := NewSmithWaterman(
			options.WithGapCost(2),
			options.WithCostFunction(costfunc.MatchMismatch[rune]{Match: 3, Mismatch: -3}),
		)
		require.NoError(t, err)
		assert.Equal(t, 13.0, sw.UnnormalizedSimilarity("GGTTGACTA", "TGTTACGG"))
	})

	t.Run("unicode normalization", func(t *testing.T) {
		sw, err := NewSmithWaterman(options.WithUnicodeNormalization(norm.NFC))
		require.NoError(t, err)
		assert.Equal(t, 1.0, sw.Similarity("caf\u00e9", "cafe\u0301"))
	})

	t.Run("bound check logs violations", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewLogger(slog.NewTextHandler(&buf, nil))

		understated := costfunc.Func[rune]{
			Fn: func(a, b rune) float64 {
				if a == b {
					return 4
				}
				return -1
			},
			Max: 2,
		}

		sw, err := NewSmithWaterman(
			options.WithLogger(logger),
			options.WithCostFunction(understated),
			options.WithBoundCheck(),
		)
		require.NoError(t, err)

		// The score is not clamped; the violation is only reported.
		assert.Equal(t, 2.0, sw.Similarity("ab", "ab"))
		assert.Contains(t, buf.String(), "substitution cost exceeds declared maximum")
		assert.Contains(t, buf.String(), "metric=SmithWaterman")
	})

	t.Run("bound check silent for conforming cost", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewLogger(slog.NewTextHandler(&buf, nil))

		sw, err := NewSmithWaterman(options.WithLogger(logger), options.WithBoundCheck())
		require.NoError(t, err)
		sw.Similarity("GGTTGACTA", "TGTTACGG")
		assert.Empty(t, buf.String())
	})
}

func TestNewJaccard(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		j, err := NewJaccard()
		require.NoError(t, err)
		assert.IsType(t, &tokenizer.Whitespace{}, j.Tokenizer())
		assert.Equal(t, 1.0, j.Similarity("", ""))
	})

	t.Run("token cache", func(t *testing.T) {
		j, err := NewJaccard(options.WithCaseFolding(), options.WithTokenCache(16))
		require.NoError(t, err)

		cached, ok := j.Tokenizer().(*tokenizer.Cached)
		require.True(t, ok)

		assert.Equal(t, 1.0, j.Similarity("John Smith", "JOHN SMITH"))
		assert.Equal(t, 1.0, j.Similarity("John Smith", "JOHN SMITH"))
		assert.Equal(t, 2, cached.Len())
	})

	t.Run("bpe tokenizer", func(t *testing.T) {
		j, err := NewJaccard(options.WithBPETokenizer())
		require.NoError(t, err)
		assert.IsType(t, &tokenizer.BPE{}, j.Tokenizer())
		assert.Equal(t, 1.0, j.Similarity("similarity metrics", "similarity metrics"))
	})

	t.Run("logs construction", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		_, err := NewJaccard(options.WithLogger(logger))
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "metric configured")
		assert.Contains(t, buf.String(), "metric=Jaccard")
	})
}

func TestMetricsAreInterchangeable(t *testing.T) {
	sw, err := NewSmithWaterman()
	require.NoError(t, err)
	j, err := NewJaccard()
	require.NoError(t, err)

	for _, m := range []types.Metric{sw, j} {
		t.Run(m.Name(), func(t *testing.T) {
			scores := similarity.CompareSet(m, []string{"John Smith", "Sam J Chapman", ""}, "John Smith")
			require.Len(t, scores, 3)
			assert.Equal(t, 1.0, scores[0])
			for _, s := range scores {
				assert.GreaterOrEqual(t, s, 0.0)
				assert.LessOrEqual(t, s, 1.0)
			}
			assert.GreaterOrEqual(t, m.EstimatedCost("a b c", "a b c"), m.EstimatedCost("a", "a"))
		})
	}
}
