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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/canvas"
)

var polyScenes = []Scene{
	{
		Name:   "triangle",
		Width:  64,
		Height: 64,
		Draw: func(d canvas.Drawer) {
			d.DrawConvexPolygon([]vec.Vec2{pt(10, 50), pt(32, 10), pt(54, 50)}, canvas.NewPaint(green))
		},
	},
	{
		Name:   "hexagon",
		Width:  64,
		Height: 64,
		Draw: func(d canvas.Drawer) {
			d.DrawConvexPolygon(regularPolygon(32, 32, 24, 6, 0), canvas.NewPaint(blue))
		},
	},
	{
		// Polygons with many vertices approximate a disk.
		Name:   "disk",
		Width:  64,
		Height: 64,
		Draw: func(d canvas.Drawer) {
			d.DrawConvexPolygon(regularPolygon(32, 32, 27, 90, 0), canvas.NewPaint(orange))
		},
	},
	{
		Name:   "fan",
		Width:  128,
		Height: 128,
		Draw: func(d canvas.Drawer) {
			for i := range 8 {
				d.Save()
				d.Concat(matrix.Translate(64, 64))
				d.Concat(matrix.Rotate(float64(i) * math.Pi / 4))
				d.DrawConvexPolygon([]vec.Vec2{pt(0, 0), pt(50, -10), pt(50, 10)}, canvas.NewPaint(red))
				d.Restore()
			}
		},
	},
	{
		// Fewer than three vertices, and polygons without area, draw
		// nothing.
		Name:   "nodraw",
		Width:  64,
		Height: 64,
		Draw: func(d canvas.Drawer) {
			p := canvas.NewPaint(red)
			d.DrawConvexPolygon(nil, p)
			d.DrawConvexPolygon([]vec.Vec2{pt(10, 10)}, p)
			d.DrawConvexPolygon([]vec.Vec2{pt(10, 10), pt(50, 50)}, p)
			d.DrawConvexPolygon([]vec.Vec2{pt(10, 10), pt(30, 30), pt(50, 50)}, p)
		},
	},
}

// regularPolygon returns the vertices of a regular polygon with n
// vertices, inscribed in the circle of radius r around (cx, cy).
func regularPolygon(cx, cy, r float64, n int, phase float64) []vec.Vec2 {
	pts := make([]vec.Vec2, n)
	for i := range pts {
		s, c := math.Sincos(phase + 2*math.Pi*float64(i)/float64(n))
		pts[i] = pt(cx+r*c, cy+r*s)
	}
	return pts
}
