// Package spatial provides range-query structures over a fixed set of boxes.
// Any implementation of Index is substitutable in the sparse suppressor; the
// contract is exhaustiveness, not ordering.
package spatial

import "github.com/MeKo-Tech/sparsenms/internal/geometry"

// Index answers intersection queries over the box set it was built from.
//
// QueryIntersections returns, in unspecified order, the index of every box
// whose intersection area with the query box strictly exceeds minOverlapArea,
// paired with that exact area. Implementations must be exhaustive: a true
// intersection may never be omitted.
type Index interface {
	QueryIntersections(box geometry.Box, minOverlapArea float64) (indices []int, areas []float64)
	Len() int
}
