// Package detections defines the JSON detection-set format consumed and
// produced by the CLI and server.
package detections

import (
	"encoding/json"
	"fmt"
	"os"
)

// Set is a detection set: parallel box rows and confidence scores. Each box
// row is [xMin, yMin, xMax, yMax].
type Set struct {
	Boxes  [][]float64 `json:"boxes"`
	Scores []float64   `json:"scores"`
}

// Len returns the number of detections.
func (s *Set) Len() int { return len(s.Scores) }

// Select returns the subset of the set at the given indices, in order.
// Indices must be valid for the set.
func (s *Set) Select(indices []int) *Set {
	out := &Set{
		Boxes:  make([][]float64, len(indices)),
		Scores: make([]float64, len(indices)),
	}
	for i, idx := range indices {
		out.Boxes[i] = s.Boxes[idx]
		out.Scores[i] = s.Scores[idx]
	}
	return out
}

// Load reads a detection set from a JSON file.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read detections file: %w", err)
	}
	var set Set
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse detections file %s: %w", path, err)
	}
	return &set, nil
}

// Save writes the detection set to a JSON file.
func (s *Set) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode detections: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write detections file: %w", err)
	}
	return nil
}
