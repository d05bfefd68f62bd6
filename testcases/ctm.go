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
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/canvas"
)

var ctmScenes = []Scene{
	// uniform scaling
	{
		Name:   "scale_2x",
		Width:  128,
		Height: 128,
		Draw:   transformed(matrix.Scale(2, 2).Translate(24, 24), rectBody(0, 0, 20, 20)),
	},
	{
		Name:   "scale_half",
		Width:  64,
		Height: 64,
		Draw:   transformed(matrix.Scale(0.5, 0.5).Translate(12, 12), rectBody(0, 0, 80, 80)),
	},

	// rotation
	{
		Name:   "rotate_45deg",
		Width:  64,
		Height: 64,
		Draw:   transformed(matrix.RotateDeg(45).Translate(32, 32), rectBody(-10, -10, 10, 10)),
	},
	{
		Name:   "rotate_90deg",
		Width:  64,
		Height: 64,
		Draw:   transformed(matrix.RotateDeg(90).Translate(32, 32), rectBody(-15, -10, 15, 10)),
	},
	{
		Name:   "rotate_5deg",
		Width:  64,
		Height: 64,
		Draw:   transformed(matrix.RotateDeg(5).Translate(32, 32), rectBody(-20, -10, 20, 10)),
	},

	// non-uniform scaling
	{
		Name:   "circle_to_ellipse",
		Width:  128,
		Height: 64,
		Draw:   transformed(matrix.Scale(2, 1).Translate(64, 32), fill(circle(0, 0, 15), orange)),
	},

	// shear
	{
		Name:   "shear_horizontal",
		Width:  64,
		Height: 64,
		Draw:   transformed(matrix.Matrix{1, 0, 0.5, 1, 0, 0}.Translate(32, 32), rectBody(-15, -15, 15, 15)),
	},
	{
		Name:   "shear_and_rotate",
		Width:  64,
		Height: 64,
		Draw:   transformed(matrix.Matrix{1, 0, 0.3, 1, 0, 0}.RotateDeg(30).Translate(32, 32), rectBody(-12, -12, 12, 12)),
	},

	// the transformation stack
	{
		// Nested Save/Restore pairs; each level adds a rotation.
		Name:   "nested",
		Width:  128,
		Height: 128,
		Draw: func(d canvas.Drawer) {
			d.Concat(matrix.Translate(64, 64))
			for i := range 6 {
				d.Save()
				d.Concat(matrix.Rotate(float64(i) * math.Pi / 3))
				d.Concat(matrix.Translate(30, 0))
				for j := range 3 {
					d.Save()
					d.Concat(matrix.Rotate(float64(j) * math.Pi / 6))
					d.DrawRect(box(0, -2, 20, 2), canvas.NewPaint(blue))
					d.Restore()
				}
				d.Restore()
			}
			d.DrawConvexPolygon(regularPolygon(0, 0, 10, 8, 0), canvas.NewPaint(red))
		},
	},
	{
		// A singular CTM collapses every shape to a line.
		Name:   "singular",
		Width:  64,
		Height: 64,
		Draw:   transformed(matrix.Matrix{1, 1, 2, 2, 10, 10}, rectBody(0, 0, 20, 20)),
	},

	// strokes under transform
	{
		// Round caps become elliptical in device space.
		Name:   "round_cap_nonuniform",
		Width:  128,
		Height: 64,
		Draw: transformed(matrix.Scale(2, 1).Translate(64, 32),
			stroke(line(-20, 0, 20, 0), canvas.Stroke{
				Width: 8,
				Cap:   graphics.LineCapRound,
				Join:  graphics.LineJoinRound,
			}, green)),
	},
	{
		Name:   "round_join_rotated",
		Width:  64,
		Height: 64,
		Draw: transformed(matrix.RotateDeg(30).Translate(32, 32),
			stroke(cornerCentered(0, 0, math.Pi/3), canvas.Stroke{
				Width: 6,
				Cap:   graphics.LineCapButt,
				Join:  graphics.LineJoinRound,
			}, green)),
	},
}

// rectBody returns a scene body which fills a rectangle using DrawRect.
func rectBody(x1, y1, x2, y2 float64) func(canvas.Drawer) {
	return func(d canvas.Drawer) {
		d.DrawRect(box(x1, y1, x2, y2), canvas.NewPaint(red))
	}
}

// cornerCentered creates a corner path with its apex at (cx, cy).
// The two arms have length 20 and enclose the given angle.
func cornerCentered(cx, cy float64, angle float64) *path.Data {
	const length = 20.0
	halfAngle := angle / 2
	dx := length * math.Sin(halfAngle)
	dy := length * math.Cos(halfAngle)
	return (&path.Data{}).
		MoveTo(pt(cx-dx, cy-dy)).
		LineTo(pt(cx, cy)).
		LineTo(pt(cx+dx, cy-dy))
}
