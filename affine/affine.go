// seehuhn.de/go/canvas - a 2D rendering library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package affine complements [matrix.Matrix] with the operations needed by
// the canvas.
//
// A matrix {a, b, c, d, e, f} maps a point (x, y) to
// (a*x + c*y + e, b*x + d*y + f).  Use the constructors of the matrix
// package to build transformations.  The composition which applies
// first A and then B is A.Mul(B).
package affine

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// singularThreshold is the largest absolute determinant for which a
// matrix is treated as not invertible.
const singularThreshold = 1e-12

// Invert returns the inverse of m.
// The second return value is false if m is (numerically) singular or if
// the inverse cannot be represented by finite coefficients.  In this case
// the returned matrix is the zero matrix.
func Invert(m matrix.Matrix) (matrix.Matrix, bool) {
	det := m[0]*m[3] - m[1]*m[2]
	if !(math.Abs(det) > singularThreshold) || math.IsInf(det, 0) {
		return matrix.Zero, false
	}
	inv := m.Inv()
	if !IsFinite(inv) {
		return matrix.Zero, false
	}
	return inv, true
}

// IsFinite reports whether all coefficients of m are finite.
func IsFinite(m matrix.Matrix) bool {
	for _, x := range m {
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return false
		}
	}
	return true
}

// Apply maps a single point through m.
func Apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	x, y := m.Apply(p.X, p.Y)
	return vec.Vec2{X: x, Y: y}
}

// MapPoints maps every point of src through m and stores the results in dst.
// The slices may alias.  Only min(len(dst), len(src)) points are mapped.
func MapPoints(m matrix.Matrix, dst, src []vec.Vec2) {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = Apply(m, src[i])
	}
}

// IsAxisAligned reports whether m maps axis-aligned rectangles to
// axis-aligned rectangles, i.e. whether m has no rotation or skew part.
func IsAxisAligned(m matrix.Matrix) bool {
	return m[1] == 0 && m[2] == 0
}

// Equal reports whether all coefficients of a and b differ by at most tol.
func Equal(a, b matrix.Matrix, tol float64) bool {
	for i := range a {
		if !(math.Abs(a[i]-b[i]) <= tol) {
			return false
		}
	}
	return true
}
