// Package graphics provides the planar geometry used by the map viewer:
// affine transforms, points and rectangles.
package graphics

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// SingularEpsilon bounds the determinant relative to the magnitude of the
// linear part. Below it the two axes are treated as collapsed. The test is
// independent of the overall scale, so uniform scales of any size invert.
const SingularEpsilon = 1e-12

// Matrix represents a 3x3 affine transformation matrix.
// Only the first two columns are stored since the third is always [0 0 1].
// The matrix is stored as:
//
//	[A B 0]
//	[C D 0]
//	[E F 1]
//
// A point is mapped as x' = A*x + C*y + E, y' = B*x + D*y + F.
//
// Composition order matters. m.Multiply(next) is post-concatenation: the
// result maps a point through m first and then through next. Every
// incremental pan or zoom is composed onto the current transform this
// way; swapping the operands makes gestures accumulate in the wrong space.
type Matrix [6]float64

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{1, 0, 0, 1, 0, 0}
}

// Translate returns a translation matrix.
func Translate(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 1, tx, ty}
}

// Scale returns a scaling matrix about the origin.
func Scale(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// ScaleAt returns a scaling matrix that keeps pivot fixed. It is the
// composition Translate(-pivot), Scale(sx, sy), Translate(pivot).
func ScaleAt(sx, sy float64, pivot Point) Matrix {
	return Translate(-pivot.X, -pivot.Y).
		Multiply(Scale(sx, sy)).
		Multiply(Translate(pivot.X, pivot.Y))
}

// Compose returns the transform that applies existing first and next
// second: Compose(a, b).Apply(p) == b.Apply(a.Apply(p)).
func Compose(existing, next Matrix) Matrix {
	return existing.Multiply(next)
}

// Multiply post-concatenates next onto m. The result applies m first.
func (m Matrix) Multiply(next Matrix) Matrix {
	return Matrix{
		m[0]*next[0] + m[1]*next[2],
		m[0]*next[1] + m[1]*next[3],
		m[2]*next[0] + m[3]*next[2],
		m[2]*next[1] + m[3]*next[3],
		m[4]*next[0] + m[5]*next[2] + next[4],
		m[4]*next[1] + m[5]*next[3] + next[5],
	}
}

// PostConcat replaces m with Compose(m, next).
func (m *Matrix) PostConcat(next Matrix) {
	*m = m.Multiply(next)
}

// Transform applies the matrix to a point given by its coordinates.
func (m Matrix) Transform(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// Apply maps a document-space point to screen space.
func (m Matrix) Apply(p Point) Point {
	x, y := m.Transform(p.X, p.Y)
	return Point{x, y}
}

// TransformVector applies the matrix to a vector (without translation).
func (m Matrix) TransformVector(dx, dy float64) (float64, float64) {
	return m[0]*dx + m[2]*dy, m[1]*dx + m[3]*dy
}

// Determinant returns the determinant of the linear part.
func (m Matrix) Determinant() float64 {
	return m[0]*m[3] - m[1]*m[2]
}

// IsSingular reports whether the matrix cannot be inverted: the
// determinant is zero, not finite, or negligible next to the product of
// the column norms.
func (m Matrix) IsSingular() bool {
	det := m.Determinant()
	if math.IsNaN(det) || math.IsInf(det, 0) || det == 0 {
		return true
	}
	norm := (math.Abs(m[0]) + math.Abs(m[1])) * (math.Abs(m[2]) + math.Abs(m[3]))
	return scalar.EqualWithinAbs(det/norm, 0, SingularEpsilon)
}

// Invert returns the inverse mapping (screen to document).
// It fails with a *SingularTransformError if the determinant is (near) zero.
func (m Matrix) Invert() (Matrix, error) {
	if m.IsSingular() {
		return Matrix{}, &SingularTransformError{Matrix: m, Det: m.Determinant()}
	}
	det := m.Determinant()

	return Matrix{
		m[3] / det,
		-m[1] / det,
		-m[2] / det,
		m[0] / det,
		(m[2]*m[5] - m[3]*m[4]) / det,
		(m[1]*m[4] - m[0]*m[5]) / det,
	}, nil
}

// ScaleX returns the horizontal scaling factor.
func (m Matrix) ScaleX() float64 {
	return math.Hypot(m[0], m[1])
}

// ScaleY returns the vertical scaling factor.
func (m Matrix) ScaleY() float64 {
	return math.Hypot(m[2], m[3])
}

// Translation returns the translation components.
func (m Matrix) Translation() (float64, float64) {
	return m[4], m[5]
}
