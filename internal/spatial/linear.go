package spatial

import "github.com/MeKo-Tech/sparsenms/internal/geometry"

// Linear is an exhaustive-scan Index. It exists as the correctness oracle for
// other implementations and as a sensible choice for very small box sets,
// where tree construction costs more than it saves.
type Linear struct {
	boxes []geometry.Box
}

// NewLinear builds a linear index over the given boxes.
func NewLinear(boxes []geometry.Box) *Linear {
	return &Linear{boxes: boxes}
}

// QueryIntersections implements Index.
func (l *Linear) QueryIntersections(box geometry.Box, minOverlapArea float64) ([]int, []float64) {
	var indices []int
	var areas []float64
	for i, b := range l.boxes {
		inter := geometry.IntersectionArea(box, b)
		if inter > minOverlapArea {
			indices = append(indices, i)
			areas = append(areas, inter)
		}
	}
	return indices, areas
}

// Len returns the number of indexed boxes.
func (l *Linear) Len() int { return len(l.boxes) }

var _ Index = (*Linear)(nil)
