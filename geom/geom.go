package geom

import "math"

// Point represents a 2D point
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Rect represents an axis-aligned rectangle in PDF coordinates (origin at
// the bottom-left, Y growing upward). X0 <= X1 and Y0 <= Y1 for every
// rectangle built through NewRect or Bound.
//
// Rect defines no ordering on purpose: sorting layout objects by raw
// coordinates silently corrupts reading order, so every sort in this module
// goes through an explicit key function instead.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// NewRect creates a rectangle from two corners, normalizing the
// coordinates so that X0 <= X1 and Y0 <= Y1.
func NewRect(x0, y0, x1, y1 float64) Rect {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Empty returns the degenerate rectangle whose corners sit at +Inf/-Inf.
// It unions correctly with any rectangle: the first Union replaces it.
func Empty() Rect {
	return Rect{
		X0: math.Inf(1),
		Y0: math.Inf(1),
		X1: math.Inf(-1),
		Y1: math.Inf(-1),
	}
}

// Bound returns the smallest rectangle containing all given points.
// With no points it returns Empty().
func Bound(points []Point) Rect {
	r := Empty()
	for _, p := range points {
		r.X0 = math.Min(r.X0, p.X)
		r.Y0 = math.Min(r.Y0, p.Y)
		r.X1 = math.Max(r.X1, p.X)
		r.Y1 = math.Max(r.Y1, p.Y)
	}
	return r
}

// Width returns the horizontal extent
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the vertical extent
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Center returns the center point
func (r Rect) Center() Point {
	return Point{
		X: (r.X0 + r.X1) / 2,
		Y: (r.Y0 + r.Y1) / 2,
	}
}

// Area returns the area of the rectangle
func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// IsEmpty returns true if the rectangle has no positive extent in either
// direction
func (r Rect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Contains checks if a point is inside the rectangle
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X0 && p.X <= r.X1 &&
		p.Y >= r.Y0 && p.Y <= r.Y1
}

// Union returns the smallest rectangle containing both r and other
func (r Rect) Union(other Rect) Rect {
	return Rect{
		X0: math.Min(r.X0, other.X0),
		Y0: math.Min(r.Y0, other.Y0),
		X1: math.Max(r.X1, other.X1),
		Y1: math.Max(r.Y1, other.Y1),
	}
}

// Overlaps checks whether r and other share interior area. Rectangles that
// merely touch along an edge or at a corner do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	return r.X0 < other.X1 && other.X0 < r.X1 &&
		r.Y0 < other.Y1 && other.Y0 < r.Y1
}

// HOverlaps checks whether the horizontal extents of r and other overlap
// or touch
func (r Rect) HOverlaps(other Rect) bool {
	return other.X0 <= r.X1 && r.X0 <= other.X1
}

// HOverlap returns the magnitude of horizontal overlap, or 0 when the
// horizontal extents are disjoint or merely touching
func (r Rect) HOverlap(other Rect) float64 {
	if !r.HOverlaps(other) {
		return 0
	}
	return minFloat(math.Abs(r.X0-other.X1), math.Abs(r.X1-other.X0))
}

// HDistance returns the horizontal gap between r and other, or 0 when
// their horizontal extents overlap
func (r Rect) HDistance(other Rect) float64 {
	if r.HOverlaps(other) {
		return 0
	}
	return minFloat(math.Abs(r.X0-other.X1), math.Abs(r.X1-other.X0))
}

// VOverlaps checks whether the vertical extents of r and other overlap
// or touch
func (r Rect) VOverlaps(other Rect) bool {
	return other.Y0 <= r.Y1 && r.Y0 <= other.Y1
}

// VOverlap returns the magnitude of vertical overlap, or 0 when the
// vertical extents are disjoint or merely touching
func (r Rect) VOverlap(other Rect) float64 {
	if !r.VOverlaps(other) {
		return 0
	}
	return minFloat(math.Abs(r.Y0-other.Y1), math.Abs(r.Y1-other.Y0))
}

// VDistance returns the vertical gap between r and other, or 0 when their
// vertical extents overlap
func (r Rect) VDistance(other Rect) float64 {
	if r.VOverlaps(other) {
		return 0
	}
	return minFloat(math.Abs(r.Y0-other.Y1), math.Abs(r.Y1-other.Y0))
}

// Matrix represents a 2D affine transformation matrix
type Matrix [6]float64

// Identity returns an identity matrix
func Identity() Matrix {
	return Matrix{1, 0, 0, 1, 0, 0}
}

// Transform applies the matrix transformation to a point
func (m Matrix) Transform(p Point) Point {
	return Point{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Multiply multiplies two matrices
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		m[0]*other[0] + m[1]*other[2],
		m[0]*other[1] + m[1]*other[3],
		m[2]*other[0] + m[3]*other[2],
		m[2]*other[1] + m[3]*other[3],
		m[4]*other[0] + m[5]*other[2] + other[4],
		m[4]*other[1] + m[5]*other[3] + other[5],
	}
}

// Translate creates a translation matrix
func Translate(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 1, tx, ty}
}

// Scale creates a scaling matrix
func Scale(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// Rotate creates a rotation matrix (angle in radians)
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{cos, sin, -sin, cos, 0, 0}
}

// IsIdentity returns true if the matrix is an identity matrix
func (m Matrix) IsIdentity() bool {
	return m[0] == 1 && m[1] == 0 && m[2] == 0 && m[3] == 1 && m[4] == 0 && m[5] == 0
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
