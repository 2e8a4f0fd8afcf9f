// Package validate performs eager input checking for the suppression API.
// All checks run before any index construction or scoring work, so malformed
// input never reaches the expensive path.
package validate

import (
	"errors"
	"fmt"

	"github.com/MeKo-Tech/sparsenms/internal/geometry"
)

// Sentinel errors for the validation taxonomy. Callers match them with
// errors.Is through the wrapped errors returned below.
var (
	// ErrInvalidShape indicates wrong dimensionality or mismatched lengths.
	ErrInvalidShape = errors.New("invalid shape")
	// ErrInvalidGeometry indicates a degenerate or inverted box.
	ErrInvalidGeometry = errors.New("invalid geometry")
	// ErrInvalidThreshold indicates a threshold outside [0, 1].
	ErrInvalidThreshold = errors.New("invalid threshold")
)

// boxColumns is the required number of coordinates per box row.
const boxColumns = 4

// DetectionSet checks the shape and geometry of a raw detection set and
// normalizes the box rows into a uniform []geometry.Box copy. The input
// slices are never mutated.
func DetectionSet(boxes [][]float64, scores []float64) ([]geometry.Box, error) {
	if len(boxes) != len(scores) {
		return nil, fmt.Errorf("%w: %d boxes but %d scores", ErrInvalidShape, len(boxes), len(scores))
	}
	for i, row := range boxes {
		if len(row) != boxColumns {
			return nil, fmt.Errorf("%w: box %d has %d coordinates, want %d",
				ErrInvalidShape, i, len(row), boxColumns)
		}
	}

	// Normalizing copy plus a single pass over the per-axis deltas; the
	// minimum delta over the whole set must be strictly positive.
	out := make([]geometry.Box, len(boxes))
	for i, row := range boxes {
		b := geometry.Box{MinX: row[0], MinY: row[1], MaxX: row[2], MaxY: row[3]}
		if b.MaxX-b.MinX <= 0 || b.MaxY-b.MinY <= 0 {
			return nil, fmt.Errorf(
				"%w: box %d should be encoded [x1, y1, x2, y2] with x1 < x2 and y1 < y2",
				ErrInvalidGeometry, i)
		}
		out[i] = b
	}
	return out, nil
}

// Thresholds checks that both thresholds lie in [0, 1].
func Thresholds(iouThreshold, scoreThreshold float64) error {
	if iouThreshold < 0.0 || iouThreshold > 1.0 {
		return fmt.Errorf("%w: IoU threshold should be between 0 and 1, received %v",
			ErrInvalidThreshold, iouThreshold)
	}
	if scoreThreshold < 0.0 || scoreThreshold > 1.0 {
		return fmt.Errorf("%w: score threshold should be between 0 and 1, received %v",
			ErrInvalidThreshold, scoreThreshold)
	}
	return nil
}
