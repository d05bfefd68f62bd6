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

package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/canvas"
)

// kappa places the control points of a cubic Bézier approximating a
// quarter circle of radius 1.
const kappa = 0.5522847498307936

// roundPen is used for the stroked curves.
var roundPen = canvas.Stroke{
	Width:      4,
	Cap:        graphics.LineCapRound,
	Join:       graphics.LineJoinRound,
	MiterLimit: 10,
}

var curveScenes = []Scene{
	{
		Name:   "quadratic",
		Width:  64,
		Height: 64,
		Draw:   fill(quadratic(10, 50, 32, 10, 54, 50).Close(), green),
	},
	{
		Name:   "quadratic_deep",
		Width:  64,
		Height: 64,
		Draw:   fill(quadratic(10, 50, 32, 5, 54, 50).Close(), green), // control point far from chord
	},
	{
		Name:   "quadratic_s_shape",
		Width:  64,
		Height: 64,
		Draw:   fill(sCurve(10, 32, 54, 32), green),
	},
	{
		Name:   "quadratic_stroked",
		Width:  64,
		Height: 64,
		Draw:   stroke(quadratic(10, 50, 32, 10, 54, 50), roundPen, blue),
	},
	{
		Name:   "cubic",
		Width:  64,
		Height: 64,
		Draw:   fill(cubic(10, 50, 20, 10, 44, 10, 54, 50).Close(), red),
	},
	{
		Name:   "cubic_scurve",
		Width:  64,
		Height: 64,
		Draw:   fill(cubic(10, 50, 10, 10, 54, 54, 54, 14).Close(), red), // S-curve with inflection
	},
	{
		Name:   "cubic_loop",
		Width:  64,
		Height: 64,
		Draw:   fill(cubic(10, 32, 60, 5, 4, 59, 54, 32).Close(), red), // self-intersecting loop
	},
	{
		Name:   "cubic_cusp",
		Width:  64,
		Height: 64,
		Draw:   fill(cubic(10, 50, 54, 10, 10, 10, 54, 50).Close(), red), // control points crossed
	},
	{
		Name:   "cubic_stroked",
		Width:  64,
		Height: 64,
		Draw:   stroke(cubic(10, 50, 20, 10, 44, 10, 54, 50), roundPen, blue),
	},
	{
		Name:   "circle",
		Width:  64,
		Height: 64,
		Draw:   fill(circle(32, 32, 25), orange),
	},
	{
		Name:   "circle_small",
		Width:  64,
		Height: 64,
		Draw:   fill(circle(32, 32, 5), orange),
	},
	{
		Name:   "circle_large",
		Width:  128,
		Height: 128,
		Draw:   fill(circle(64, 64, 100), orange), // larger than the bitmap
	},
	{
		Name:   "ellipse",
		Width:  64,
		Height: 64,
		Draw:   fill(ellipse(32, 32, 28, 14), orange),
	},
	{
		Name:   "arc",
		Width:  64,
		Height: 64,
		Draw:   fill(arc(32, 32, 25, 3), blue), // three quarters of a circle
	},
	{
		Name:   "cubic_degenerate",
		Width:  64,
		Height: 64,
		Draw:   fill(cubic(32, 32, 32, 32, 32, 32, 32, 32).Close(), red), // all control points coincident
	},
}

// quadratic returns an open path consisting of a single quadratic Bézier
// curve.
func quadratic(x1, y1, cx, cy, x2, y2 float64) *path.Data {
	return (&path.Data{}).MoveTo(pt(x1, y1)).QuadTo(pt(cx, cy), pt(x2, y2))
}

// cubic returns an open path consisting of a single cubic Bézier curve.
func cubic(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *path.Data {
	return (&path.Data{}).MoveTo(pt(x1, y1)).CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2))
}

// sCurve joins (x1, y1) and (x2, y2) by two quadratic arcs, bulging up and
// down by 20 units, and closes the shape along the chord.
func sCurve(x1, y1, x2, y2 float64) *path.Data {
	mid := pt((x1+x2)/2, (y1+y2)/2)
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt((x1+mid.X)/2, y1-20), mid).
		QuadTo(pt((mid.X+x2)/2, y2+20), pt(x2, y2)).
		Close()
}

// quadrantDirs lists the unit vectors at the quadrant boundaries, turning
// upwards on screen.  The tangent at boundary q, in the direction of
// increasing q, is quadrantDirs[q+1].
var quadrantDirs = [4]vec.Vec2{{X: 1}, {Y: -1}, {X: -1}, {Y: 1}}

func quadrantDir(q int) vec.Vec2 {
	return quadrantDirs[(q%4+4)%4]
}

// quarterArcs appends n quarter arcs of the ellipse with centre (cx, cy)
// and radii rx, ry to p, starting at quadrant boundary start.  With step
// +1 the arcs turn upwards on screen, with step -1 downwards.  The current
// point of p must be the start point.
func quarterArcs(p *path.Data, cx, cy, rx, ry float64, start, n, step int) *path.Data {
	at := func(v, t vec.Vec2, k float64) vec.Vec2 {
		return pt(cx+rx*(v.X+k*t.X), cy+ry*(v.Y+k*t.Y))
	}

	k := float64(step) * kappa
	q := start
	for range n {
		next := q + step
		p = p.CubeTo(
			at(quadrantDir(q), quadrantDir(q+1), k),
			at(quadrantDir(next), quadrantDir(next+1), -k),
			at(quadrantDir(next), vec.Vec2{}, 0))
		q = next
	}
	return p
}

// ellipse approximates an axis-aligned ellipse by four cubic Bézier curves.
func ellipse(cx, cy, rx, ry float64) *path.Data {
	p := (&path.Data{}).MoveTo(pt(cx+rx, cy))
	return quarterArcs(p, cx, cy, rx, ry, 0, 4, 1).Close()
}

func circle(cx, cy, r float64) *path.Data {
	return ellipse(cx, cy, r, r)
}

// reverseCircle builds the same circle as circle, traversed in the
// opposite direction.
func reverseCircle(cx, cy, r float64) *path.Data {
	p := (&path.Data{}).MoveTo(pt(cx+r, cy))
	return quarterArcs(p, cx, cy, r, r, 0, 4, -1).Close()
}

// arc builds a pie slice covering the given number of quadrants (1-4) of
// a circle, starting at the right and turning upwards on screen.
func arc(cx, cy, r float64, quadrants int) *path.Data {
	p := (&path.Data{}).MoveTo(pt(cx, cy)).LineTo(pt(cx+r, cy))
	return quarterArcs(p, cx, cy, r, r, 0, quadrants, 1).Close()
}
