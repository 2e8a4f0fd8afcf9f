package spatial

import (
	"github.com/MeKo-Tech/sparsenms/internal/geometry"
	"github.com/tidwall/rtree"
)

// RTree is the default Index implementation, backed by an R-tree.
// The tree prunes to boxes whose rectangles overlap the query; the exact
// intersection area is then computed per candidate, so callers only ever see
// true positive-area intersections.
type RTree struct {
	tree  rtree.RTreeG[int]
	boxes []geometry.Box
}

// NewRTree builds an R-tree index over the given boxes. The boxes slice is
// retained and must not be mutated while the index is in use.
func NewRTree(boxes []geometry.Box) *RTree {
	t := &RTree{boxes: boxes}
	for i, b := range boxes {
		t.tree.Insert([2]float64{b.MinX, b.MinY}, [2]float64{b.MaxX, b.MaxY}, i)
	}
	return t
}

// QueryIntersections implements Index.
func (t *RTree) QueryIntersections(box geometry.Box, minOverlapArea float64) ([]int, []float64) {
	var indices []int
	var areas []float64
	t.tree.Search(
		[2]float64{box.MinX, box.MinY},
		[2]float64{box.MaxX, box.MaxY},
		func(_, _ [2]float64, i int) bool {
			// The tree search also reports edge-touching rectangles;
			// the exact area filter discards those.
			inter := geometry.IntersectionArea(box, t.boxes[i])
			if inter > minOverlapArea {
				indices = append(indices, i)
				areas = append(areas, inter)
			}
			return true
		},
	)
	return indices, areas
}

// Len returns the number of indexed boxes.
func (t *RTree) Len() int { return len(t.boxes) }

// Verify at compile time that *RTree implements Index.
var _ Index = (*RTree)(nil)
