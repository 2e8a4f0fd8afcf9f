package sparsenms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuppressDisjointBoxes(t *testing.T) {
	keep, err := Suppress(
		[][]float64{{0, 0, 1, 1}, {10, 10, 11, 11}},
		[]float64{0.9, 0.8},
		Config{IoUThreshold: 0.1, ScoreThreshold: 0.0},
	)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, keep)
}

func TestSuppressIdenticalBoxes(t *testing.T) {
	keep, err := Suppress(
		[][]float64{{0, 0, 2, 2}, {0, 0, 2, 2}},
		[]float64{0.9, 0.5},
		Config{IoUThreshold: 0.5, ScoreThreshold: 0.0},
	)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, keep)
}

func TestSuppressEmptyInput(t *testing.T) {
	keep, err := Suppress(nil, nil, DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, keep)
}

func TestSuppressReturnsOriginalIndices(t *testing.T) {
	// The middle box falls below the score threshold and is dropped before
	// index construction; surviving indices still refer to the input order.
	keep, err := Suppress(
		[][]float64{{0, 0, 1, 1}, {50, 50, 51, 51}, {100, 100, 101, 101}},
		[]float64{0.9, 0.05, 0.8},
		Config{IoUThreshold: 0.5, ScoreThreshold: 0.1},
	)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, keep)
}

func TestSuppressSortsByScore(t *testing.T) {
	keep, err := Suppress(
		[][]float64{{0, 0, 1, 1}, {10, 0, 11, 1}, {20, 0, 21, 1}},
		[]float64{0.2, 0.9, 0.5},
		DefaultConfig(),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0}, keep)
}

func TestSuppressInvalidGeometry(t *testing.T) {
	_, err := Suppress([][]float64{{2, 2, 1, 1}}, []float64{0.9}, DefaultConfig())
	require.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestSuppressInvalidShape(t *testing.T) {
	_, err := Suppress([][]float64{{0, 0, 1}}, []float64{0.9}, DefaultConfig())
	require.ErrorIs(t, err, ErrInvalidShape)

	_, err = Suppress([][]float64{{0, 0, 1, 1}}, []float64{0.9, 0.1}, DefaultConfig())
	require.ErrorIs(t, err, ErrInvalidShape)
}

func TestSuppressInvalidThreshold(t *testing.T) {
	_, err := Suppress([][]float64{{0, 0, 1, 1}}, []float64{0.9},
		Config{IoUThreshold: 1.5, ScoreThreshold: 0.0})
	require.ErrorIs(t, err, ErrInvalidThreshold)

	_, err = Suppress([][]float64{{0, 0, 1, 1}}, []float64{0.9},
		Config{IoUThreshold: 0.5, ScoreThreshold: -0.2})
	require.ErrorIs(t, err, ErrInvalidThreshold)
}

func TestSuppressNaiveMatchesSuppress(t *testing.T) {
	boxes := [][]float64{
		{0, 0, 10, 10},
		{1, 1, 11, 11},
		{2, 2, 12, 12},
		{100, 100, 110, 110},
		{101, 101, 111, 111},
	}
	scores := []float64{0.9, 0.85, 0.8, 0.95, 0.3}
	cfg := Config{IoUThreshold: 0.4, ScoreThreshold: 0.1}

	sparse, err := Suppress(boxes, scores, cfg)
	require.NoError(t, err)
	naive, err := SuppressNaive(boxes, scores, cfg)
	require.NoError(t, err)
	assert.Equal(t, naive, sparse)
}

func TestDefaultConfigs(t *testing.T) {
	assert.Equal(t, Config{IoUThreshold: 0.5, ScoreThreshold: 0.0}, DefaultConfig())
	assert.Equal(t, Config{IoUThreshold: 0.5, ScoreThreshold: 0.1}, DefaultNaiveConfig())
}
