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

package affine

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

const tol = 1e-9

func closeTo(a, b vec.Vec2) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

func TestApply(t *testing.T) {
	cases := []struct {
		name string
		m    matrix.Matrix
		in   vec.Vec2
		want vec.Vec2
	}{
		{"identity", matrix.Identity, vec.Vec2{X: 3, Y: 4}, vec.Vec2{X: 3, Y: 4}},
		{"translate", matrix.Translate(2, -1), vec.Vec2{X: 3, Y: 4}, vec.Vec2{X: 5, Y: 3}},
		{"scale", matrix.Scale(2, 3), vec.Vec2{X: 3, Y: 4}, vec.Vec2{X: 6, Y: 12}},
		{"rotate_90", matrix.Rotate(math.Pi / 2), vec.Vec2{X: 1, Y: 0}, vec.Vec2{X: 0, Y: 1}},
		{"scale_then_translate", matrix.Scale(2, 2).Translate(10, 0), vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 12, Y: 2}},
		{"shear", mat(1, 0, 0.5, 1, 0, 0), vec.Vec2{X: 0, Y: 2}, vec.Vec2{X: 1, Y: 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Apply(tc.m, tc.in)
			if !closeTo(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestInvert(t *testing.T) {
	ms := []matrix.Matrix{
		matrix.Identity,
		matrix.Translate(5, -7),
		matrix.Scale(4, 0.5),
		matrix.Rotate(1.2),
		matrix.Scale(3, -2).Rotate(-0.7).Translate(1, 2),
		mat(1, 0, 0.5, 1, 10, 20),
	}
	for i, m := range ms {
		inv, ok := Invert(m)
		if !ok {
			t.Errorf("%d: matrix %v reported as singular", i, m)
			continue
		}
		if got := inv.Mul(m); !Equal(got, matrix.Identity, tol) {
			t.Errorf("%d: M∘M⁻¹ = %v", i, got)
		}
		if got := m.Mul(inv); !Equal(got, matrix.Identity, tol) {
			t.Errorf("%d: M⁻¹∘M = %v", i, got)
		}
	}
}

func TestInvertSingular(t *testing.T) {
	inf := math.Inf(1)
	huge := matrix.Scale(1e200, 1e200)
	cases := []struct {
		name string
		m    matrix.Matrix
	}{
		{"zero", matrix.Zero},
		{"flat", matrix.Scale(0, 1)},
		{"rank_one", mat(1, 2, 2, 4, 5, 6)},
		{"tiny", matrix.Scale(1e-7, 1e-7)},
		{"nan", mat(math.NaN(), 0, 0, 1, 0, 0)},
		{"infinite_det", huge.Mul(huge)},
		{"infinite_translation", mat(1, 0, 0, 1, inf, 0)},
		{"nan_translation", mat(1, 0, 0, 1, 0, math.NaN())},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inv, ok := Invert(tc.m)
			if ok {
				t.Errorf("matrix %v should not be invertible, got inverse %v", tc.m, inv)
			}
			if inv != matrix.Zero {
				t.Errorf("got %v, want the zero matrix", inv)
			}
		})
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(mat(1, 2, 3, 4, -1e300, 1e300)) {
		t.Error("finite matrix reported as non-finite")
	}
	for i := range 6 {
		for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			m := matrix.Identity
			m[i] = x
			if IsFinite(m) {
				t.Errorf("matrix %v reported as finite", m)
			}
		}
	}
}

func TestMapPoints(t *testing.T) {
	m := matrix.Scale(2, 3).Translate(1, 1)
	pts := []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: -1}}
	want := []vec.Vec2{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 1, Y: 4}, {X: -1, Y: -2}}

	MapPoints(m, pts, pts) // in place
	for i := range want {
		if !closeTo(pts[i], want[i]) {
			t.Errorf("point %d: got %v, want %v", i, pts[i], want[i])
		}
	}
}

func TestIsAxisAligned(t *testing.T) {
	if !IsAxisAligned(matrix.Scale(-1, 3).Translate(1, 2)) {
		t.Error("translate+scale should be axis aligned")
	}
	if IsAxisAligned(matrix.Rotate(0.1)) {
		t.Error("rotation should not be axis aligned")
	}
}

func TestEqual(t *testing.T) {
	a := mat(1, 2, 3, 4, 5, 6)
	if !Equal(a, mat(1, 2, 3, 4, 5, 6+1e-10), tol) {
		t.Error("nearly equal matrices reported as different")
	}
	if Equal(a, mat(1, 2, 3, 4, 5, 7), tol) {
		t.Error("different matrices reported as equal")
	}
	if Equal(a, mat(1, 2, 3, 4, 5, math.NaN()), tol) {
		t.Error("NaN coefficient reported as equal")
	}
}

// mat is a test helper which builds a matrix from its coefficients.
func mat(a, b, c, d, e, f float64) matrix.Matrix {
	return matrix.Matrix{a, b, c, d, e, f}
}

// TestCompositionAssociative checks that composing A, B and C gives the
// same transformation regardless of grouping.
func TestCompositionAssociative(t *testing.T) {
	a := matrix.Rotate(0.3).Translate(3, -2)
	b := mat(1, 0.5, -0.25, 2, 7, 1)
	c := matrix.Scale(-1.5, 0.75)

	left := a.Mul(b).Mul(c)
	right := a.Mul(b.Mul(c))
	if !Equal(left, right, tol) {
		t.Errorf("(AB)C = %v, A(BC) = %v", left, right)
	}
}
