// Package sparsenms performs Non-Maximum Suppression on axis-aligned
// bounding-box detections.
//
// The primary entry point, Suppress, removes redundant overlapping boxes by
// visiting candidates in decreasing confidence order and suppressing every
// not-yet-kept box whose IoU with a kept box reaches the configured
// threshold. Overlap candidates are retrieved through a spatial index, so
// only geometrically intersecting pairs are ever compared; on realistic
// detection sets this behaves close to O(n log n) instead of the naive
// O(n²) pairwise scan.
//
// SuppressNaive provides the exhaustive reference implementation with the
// same contract. It exists as a correctness oracle and benchmark baseline.
//
//	keep, err := sparsenms.Suppress(boxes, scores, sparsenms.DefaultConfig())
//
// Boxes are rows of [xMin, yMin, xMax, yMax] with xMax > xMin and
// yMax > yMin. Returned indices refer to the original box ordering and are
// sorted by decreasing score of the kept boxes.
package sparsenms
