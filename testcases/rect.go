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

	"seehuhn.de/go/canvas"
)

var rectScenes = []Scene{
	{
		Name:   "basic",
		Width:  64,
		Height: 64,
		Draw: func(d canvas.Drawer) {
			d.DrawRect(box(10, 10, 54, 44), canvas.NewPaint(red))
		},
	},
	{
		// Corners given in the wrong order.
		Name:   "flipped",
		Width:  64,
		Height: 64,
		Draw: func(d canvas.Drawer) {
			d.DrawRect(box(54, 44, 10, 10), canvas.NewPaint(red))
		},
	},
	{
		// Rectangles sharing an edge tile the plane without gaps.
		Name:   "adjacent",
		Width:  64,
		Height: 64,
		Draw: func(d canvas.Drawer) {
			for i := range 4 {
				for j := range 4 {
					x := 8 + 12*float64(i) + 0.3
					y := 8 + 12*float64(j) + 0.7
					d.DrawRect(box(x, y, x+12, y+12), canvas.NewPaint(blue))
				}
			}
		},
	},
	{
		Name:   "clipped",
		Width:  64,
		Height: 64,
		Draw: func(d canvas.Drawer) {
			d.DrawRect(box(-20, 30, 100, 200), canvas.NewPaint(green))
		},
	},
	{
		Name:   "rotated",
		Width:  64,
		Height: 64,
		Draw: transformed(matrix.Rotate(math.Pi/6).Translate(32, 32),
			func(d canvas.Drawer) {
				d.DrawRect(box(-20, -10, 20, 10), canvas.NewPaint(orange))
			}),
	},
	{
		// Degenerate rectangles draw nothing.
		Name:   "nodraw",
		Width:  64,
		Height: 64,
		Draw: func(d canvas.Drawer) {
			p := canvas.NewPaint(red)
			d.DrawRect(box(10, 10, 10, 50), p)
			d.DrawRect(box(10, 20, 50, 20), p)
			d.DrawRect(box(30, 30, 30, 30), p)
			d.DrawRect(box(10.1, 10.1, 10.4, 10.4), p) // contains no pixel centre
			d.DrawRect(box(-30, -30, -10, -10), p)     // outside the bitmap
		},
	},
	{
		// Source-over blending of a translucent colour.
		Name:   "translucent",
		Width:  64,
		Height: 64,
		Draw: func(d canvas.Drawer) {
			d.DrawRect(box(8, 8, 40, 40), canvas.NewPaint(red))
			d.DrawRect(box(24, 24, 56, 56), canvas.NewPaint(glass))
		},
	},
}
