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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/canvas"
)

var pathScenes = []Scene{
	{
		Name:   "triangle",
		Width:  64,
		Height: 64,
		Draw:   fill(polygon(pt(10, 50), pt(32, 10), pt(54, 50)), green),
	},
	{
		// The subpath is closed implicitly.
		Name:   "triangle_open",
		Width:  64,
		Height: 64,
		Draw: fill((&path.Data{}).
			MoveTo(pt(10, 50)).
			LineTo(pt(32, 10)).
			LineTo(pt(54, 50)), green),
	},
	{
		// Without MoveTo, the path starts at the origin.
		Name:   "no_moveto",
		Width:  64,
		Height: 64,
		Draw: fill((&path.Data{}).
			LineTo(pt(60, 20)).
			LineTo(pt(20, 60)), blue),
	},
	{
		Name:   "star",
		Width:  64,
		Height: 64,
		Draw:   fill(fivePointStar(32, 32, 25), orange),
	},
	{
		Name:   "rectangle",
		Width:  64,
		Height: 64,
		Draw:   fill(rectangle(10, 10, 44, 44), red),
	},
	{
		// The two lobes have winding numbers +1 and -1; both are filled.
		Name:   "bowtie",
		Width:  64,
		Height: 64,
		Draw:   fill(polygon(pt(8, 12), pt(56, 52), pt(56, 12), pt(8, 52)), blue),
	},
	{
		Name:   "transform",
		Width:  64,
		Height: 64,
		Draw: transformed(matrix.Scale(1.5, 0.75).Translate(32, 32),
			fill(fivePointStar(0, 0, 20), red)),
	},
	{
		// Empty paths and paths without area draw nothing.
		Name:   "nodraw",
		Width:  64,
		Height: 64,
		Draw: func(d canvas.Drawer) {
			p := canvas.NewPaint(red)
			d.DrawPath(nil, p)
			d.DrawPath(&path.Data{}, p)
			d.DrawPath((&path.Data{}).MoveTo(pt(10, 10)), p)
			d.DrawPath((&path.Data{}).MoveTo(pt(10, 10)).LineTo(pt(50, 50)), p)
			d.DrawPath((&path.Data{}).MoveTo(pt(10, 30)).LineTo(pt(50, 30)).Close(), p)
		},
	},
}

// fivePointStar builds a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64) *path.Data {
	// five points, connecting every second point
	pts := make([]vec.Vec2, 5)
	for i := range 5 {
		angle := float64(2*i)*2*math.Pi/5 - math.Pi/2
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return polygon(pts...)
}
