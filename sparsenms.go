package sparsenms

import (
	"github.com/MeKo-Tech/sparsenms/internal/geometry"
	"github.com/MeKo-Tech/sparsenms/internal/spatial"
	"github.com/MeKo-Tech/sparsenms/internal/suppress"
	"github.com/MeKo-Tech/sparsenms/internal/validate"
)

// Sentinel errors surfaced by Suppress and SuppressNaive. Match with
// errors.Is; the returned errors carry additional context around these.
var (
	ErrInvalidShape     = validate.ErrInvalidShape
	ErrInvalidGeometry  = validate.ErrInvalidGeometry
	ErrInvalidThreshold = validate.ErrInvalidThreshold
)

// Config holds the suppression thresholds. Both must lie in [0, 1].
type Config struct {
	// IoUThreshold is the overlap ratio at which a lower-scored box is
	// suppressed by a kept one. 0 suppresses on any positive overlap; 1
	// suppresses only identical boxes.
	IoUThreshold float64

	// ScoreThreshold drops boxes with score <= threshold before any other
	// work; they are never kept and never suppress others.
	ScoreThreshold float64
}

// DefaultConfig returns the standard thresholds for Suppress.
func DefaultConfig() Config {
	return Config{IoUThreshold: 0.5, ScoreThreshold: 0.0}
}

// DefaultNaiveConfig returns the standard thresholds for SuppressNaive.
func DefaultNaiveConfig() Config {
	return Config{IoUThreshold: 0.5, ScoreThreshold: 0.1}
}

// Suppress runs sparse Non-Maximum Suppression over the given detections.
// Each boxes row is [xMin, yMin, xMax, yMax]; scores is the parallel
// confidence vector. The returned indices refer to the original box ordering
// and are sorted by decreasing score of the kept boxes.
func Suppress(boxes [][]float64, scores []float64, cfg Config) ([]int, error) {
	set, origIdx, setScores, err := prepare(boxes, scores, cfg)
	if err != nil {
		return nil, err
	}
	keep := suppress.Sparse(set, setScores, cfg.IoUThreshold, cfg.ScoreThreshold,
		func(b []geometry.Box) spatial.Index { return spatial.NewRTree(b) })
	return remap(keep, origIdx), nil
}

// SuppressNaive runs the exhaustive O(n²) reference implementation with the
// same contract as Suppress.
func SuppressNaive(boxes [][]float64, scores []float64, cfg Config) ([]int, error) {
	set, origIdx, setScores, err := prepare(boxes, scores, cfg)
	if err != nil {
		return nil, err
	}
	keep := suppress.Naive(set, setScores, cfg.IoUThreshold, cfg.ScoreThreshold)
	return remap(keep, origIdx), nil
}

// prepare validates the input and drops boxes at or below the score
// threshold before any index or area work, returning the filtered boxes and
// scores plus the mapping back to original indices.
func prepare(boxes [][]float64, scores []float64, cfg Config) ([]geometry.Box, []int, []float64, error) {
	if err := validate.Thresholds(cfg.IoUThreshold, cfg.ScoreThreshold); err != nil {
		return nil, nil, nil, err
	}
	set, err := validate.DetectionSet(boxes, scores)
	if err != nil {
		return nil, nil, nil, err
	}

	filtered := make([]geometry.Box, 0, len(set))
	filteredScores := make([]float64, 0, len(set))
	origIdx := make([]int, 0, len(set))
	for i, b := range set {
		if scores[i] > cfg.ScoreThreshold {
			filtered = append(filtered, b)
			filteredScores = append(filteredScores, scores[i])
			origIdx = append(origIdx, i)
		}
	}
	return filtered, origIdx, filteredScores, nil
}

func remap(keep, origIdx []int) []int {
	out := make([]int, len(keep))
	for i, k := range keep {
		out[i] = origIdx[k]
	}
	return out
}
