// Package geometry provides axis-aligned box primitives used by the
// suppression algorithms.
package geometry

import "math"

// Box represents an axis-aligned bounding box in float coordinates.
// Valid boxes satisfy MaxX > MinX and MaxY > MinY; the input validator
// enforces this before any box reaches the hot path.
type Box struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// NewBox constructs a Box from min/max coordinates ensuring ordering.
func NewBox(x1, y1, x2, y2 float64) Box {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return Box{MinX: x1, MinY: y1, MaxX: x2, MaxY: y2}
}

// Width returns the box width.
func (b Box) Width() float64 { return b.MaxX - b.MinX }

// Height returns the box height.
func (b Box) Height() float64 { return b.MaxY - b.MinY }

// Area returns the surface area of the box.
func Area(b Box) float64 {
	return b.Width() * b.Height()
}

// IntersectionArea returns the overlap area of two boxes, or 0 when they
// are disjoint or only touch along an edge.
func IntersectionArea(a, b Box) float64 {
	left := math.Max(a.MinX, b.MinX)
	top := math.Max(a.MinY, b.MinY)
	right := math.Min(a.MaxX, b.MaxX)
	bottom := math.Min(a.MaxY, b.MaxY)

	if left >= right || top >= bottom {
		return 0.0
	}
	return (right - left) * (bottom - top)
}

// IoU computes Intersection over Union for two boxes.
func IoU(a, b Box) float64 {
	inter := IntersectionArea(a, b)
	if inter == 0 {
		return 0.0
	}
	union := Area(a) + Area(b) - inter
	if union <= 0 {
		return 0.0
	}
	return inter / union
}
