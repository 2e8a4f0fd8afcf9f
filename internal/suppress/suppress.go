// Package suppress implements Non-Maximum Suppression over validated,
// score-filtered detection sets. Two independent implementations share one
// contract: Sparse prunes candidate pairs through a spatial index, Naive is
// the exhaustive O(n²) reference used as oracle and benchmark baseline.
package suppress

import (
	"sort"

	"github.com/MeKo-Tech/sparsenms/internal/geometry"
	"github.com/MeKo-Tech/sparsenms/internal/mempool"
	"github.com/MeKo-Tech/sparsenms/internal/spatial"
)

// IndexBuilder constructs a spatial index over a box set. Sparse builds the
// index itself so that its lifetime is confined to a single run.
type IndexBuilder func(boxes []geometry.Box) spatial.Index

// processingOrder returns box indices sorted by strictly decreasing score.
// Ties are broken deterministically: equal scores visit the lower index
// first. Both suppressors use this ordering, so their outputs agree even on
// tied scores.
func processingOrder(scores []float64) []int {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})
	return order
}

// Sparse performs Non-Maximum Suppression by only comparing overlapping
// boxes. The spatial index prunes to candidates with positive intersection
// area; boxes it omits have IoU exactly 0 and can never reach a threshold in
// [0, 1], so pruning never changes the result. Every surviving candidate is
// checked with the exact IoU formula.
//
// Inputs must already be validated and filtered to scores > scoreThreshold.
// Returned indices refer to the given (filtered) set, sorted by decreasing
// score of the kept boxes.
func Sparse(boxes []geometry.Box, scores []float64, iouThreshold, scoreThreshold float64, build IndexBuilder) []int {
	n := len(boxes)
	keep := make([]int, 0, n)
	if n == 0 {
		return keep
	}

	index := build(boxes)

	// Compute the areas once and for all.
	areas := mempool.GetFloat64(n)
	defer mempool.PutFloat64(areas)
	for i, b := range boxes {
		areas[i] = geometry.Area(b)
	}

	order := processingOrder(scores)

	// Tracks boxes not yet decided as suppressed or kept. Entries only ever
	// flip true -> false; the mask is owned by this single run.
	toConsider := mempool.GetBool(n)
	defer mempool.PutBool(toConsider)
	for i := range toConsider {
		toConsider[i] = true
	}

	for _, currentIdx := range order {
		if !toConsider[currentIdx] {
			continue
		}

		// order is strictly descending by score, so every remaining index
		// is also below threshold once one is.
		if scores[currentIdx] < scoreThreshold {
			break
		}

		candidates, intersections := index.QueryIntersections(boxes[currentIdx], 0.0)
		for k, queryIdx := range candidates {
			if !toConsider[queryIdx] {
				continue
			}
			inter := intersections[k]
			iou := inter / (areas[currentIdx] + areas[queryIdx] - inter)
			if iou >= iouThreshold {
				toConsider[queryIdx] = false
			}
		}

		keep = append(keep, currentIdx)
		toConsider[currentIdx] = false
	}

	return keep
}

// Naive performs exhaustive O(n²) Non-Maximum Suppression. Same contract and
// same ordering as Sparse; kept as an independent implementation rather than
// a special case of it, since its whole value is being an oracle.
func Naive(boxes []geometry.Box, scores []float64, iouThreshold, scoreThreshold float64) []int {
	n := len(boxes)
	keep := make([]int, 0, n)
	if n == 0 {
		return keep
	}

	areas := mempool.GetFloat64(n)
	defer mempool.PutFloat64(areas)
	for i, b := range boxes {
		areas[i] = geometry.Area(b)
	}

	order := processingOrder(scores)

	suppressed := mempool.GetBool(n)
	defer mempool.PutBool(suppressed)

	for i, currentIdx := range order {
		if suppressed[currentIdx] {
			continue
		}
		if scores[currentIdx] < scoreThreshold {
			break
		}

		keep = append(keep, currentIdx)

		for _, otherIdx := range order[i+1:] {
			if suppressed[otherIdx] {
				continue
			}
			inter := geometry.IntersectionArea(boxes[currentIdx], boxes[otherIdx])
			if inter == 0 {
				continue
			}
			iou := inter / (areas[currentIdx] + areas[otherIdx] - inter)
			if iou >= iouThreshold {
				suppressed[otherIdx] = true
			}
		}
	}

	return keep
}
