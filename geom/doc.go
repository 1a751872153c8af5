// Package geom provides the planar geometry primitives shared by layout
// analysis: points, axis-aligned rectangles, and affine transformation
// matrices.
//
// All coordinates follow the PDF convention: the origin sits at the
// bottom-left of the page and Y grows upward, so [Rect.Y1] is the top edge.
//
// # Rectangles
//
// [Rect] stores the four corner coordinates directly (X0 <= X1, Y0 <= Y1)
// and offers the axis-separated overlap and distance queries the grouping
// algorithms are built from:
//
//	a := geom.NewRect(0, 0, 10, 10)
//	b := geom.NewRect(12, 0, 20, 10)
//	a.HDistance(b) // 2
//	a.VOverlap(b)  // 10
//
// [Empty] returns the degenerate rectangle used to seed running unions; it
// behaves as the identity element of [Rect.Union].
//
// Rect deliberately exposes no ordering and implements no sorting
// interfaces. Layout objects must never be ordered by raw coordinates;
// callers sort with explicit key functions instead.
package geom
