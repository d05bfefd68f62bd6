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

package canvas

import "seehuhn.de/go/geom/vec"

// Curves are flattened by recursive de Casteljau subdivision at t = 1/2.
// A piece is replaced by its chord once the control points are close
// enough to the chord that the curve deviates from it by at most the
// flatness tolerance.  All points are in device space: affine maps take
// Bézier curves to Bézier curves, so flattening after the transformation
// gives the tolerance directly in pixels.

// flattenQuadratic flattens a quadratic Bézier and calls emit for each
// line segment.  p0 is the start point, p1 the control point and p2 the
// end point.
func (r *rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	flattenQuadratic(p0, p1, p2, r.flatness, emit)
}

// flattenCubic flattens a cubic Bézier and calls emit for each line
// segment.  p0 is the start point, p1/p2 the control points and p3 the end
// point.
func (r *rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	flattenCubic(p0, p1, p2, p3, r.flatness, emit)
}

func flattenQuadratic(p0, p1, p2 vec.Vec2, tol float64, emit func(from, to vec.Vec2)) {
	subdivideQuadratic(p0, p1, p2, tol*tol, 0, emit)
}

func flattenCubic(p0, p1, p2, p3 vec.Vec2, tol float64, emit func(from, to vec.Vec2)) {
	subdivideCubic(p0, p1, p2, p3, tol*tol, 0, emit)
}

// subdivideQuadratic emits the chord if the quadratic is flat enough, and
// otherwise splits the curve in half.
//
// The largest distance between the curve and its chord is half the
// distance between the control point and the chord midpoint.
func subdivideQuadratic(p0, p1, p2 vec.Vec2, tolSq float64, depth int, emit func(from, to vec.Vec2)) {
	d := p1.Sub(p0.Add(p2).Mul(0.5))
	if depth >= maxSubdivisionDepth || d.Dot(d) <= 4*tolSq {
		emit(p0, p2)
		return
	}

	p01 := p0.Add(p1).Mul(0.5)
	p12 := p1.Add(p2).Mul(0.5)
	mid := p01.Add(p12).Mul(0.5)
	subdivideQuadratic(p0, p01, mid, tolSq, depth+1, emit)
	subdivideQuadratic(mid, p12, p2, tolSq, depth+1, emit)
}

// subdivideCubic emits the chord if the cubic is flat enough, and
// otherwise splits the curve in half.
//
// With u = 3*p1 - 2*p0 - p3 and v = 3*p2 - p0 - 2*p3, the distance between
// the curve and its chord is bounded by
// sqrt(max(ux², vx²) + max(uy², vy²)) / 4.
func subdivideCubic(p0, p1, p2, p3 vec.Vec2, tolSq float64, depth int, emit func(from, to vec.Vec2)) {
	u := p1.Mul(3).Sub(p0.Mul(2)).Sub(p3)
	v := p2.Mul(3).Sub(p0).Sub(p3.Mul(2))
	dev := max(u.X*u.X, v.X*v.X) + max(u.Y*u.Y, v.Y*v.Y)
	if depth >= maxSubdivisionDepth || dev <= 16*tolSq {
		emit(p0, p3)
		return
	}

	p01 := p0.Add(p1).Mul(0.5)
	p12 := p1.Add(p2).Mul(0.5)
	p23 := p2.Add(p3).Mul(0.5)
	p012 := p01.Add(p12).Mul(0.5)
	p123 := p12.Add(p23).Mul(0.5)
	mid := p012.Add(p123).Mul(0.5)
	subdivideCubic(p0, p01, p012, mid, tolSq, depth+1, emit)
	subdivideCubic(mid, p123, p23, p3, tolSq, depth+1, emit)
}
