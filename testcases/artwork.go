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
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/canvas"
)

var artworkScenes = []Scene{
	{
		Name:   "rosette",
		Width:  256,
		Height: 256,
		Draw: func(d canvas.Drawer) {
			DrawSomething(d, 256, 256)
		},
	},
}

// DrawSomething draws a picture which uses most features of the canvas
// into a bitmap of the given size, and returns its title.
func DrawSomething(d canvas.Drawer, width, height int) string {
	w, h := float64(width), float64(height)
	size := min(w, h)

	sky := canvas.NewPaint(canvas.Black)
	sky.Shader = canvas.NewLinearGradient(pt(0, 0), pt(0, h), []canvas.Color{
		{R: 0.05, G: 0.05, B: 0.2, A: 1},
		{R: 0.3, G: 0.1, B: 0.4, A: 1},
		{R: 0.9, G: 0.5, B: 0.3, A: 1},
	}, canvas.TileClamp)
	d.DrawRect(box(0, 0, w, h), sky)

	d.Save()
	d.Concat(matrix.Translate(w/2, h/2))
	d.Concat(matrix.Scale(size/256, size/256))

	// petals
	const petals = 12
	for i := range petals {
		d.Save()
		d.Concat(matrix.Rotate(2 * math.Pi * float64(i) / petals))
		petal := canvas.NewPaint(canvas.Color{R: 1, G: 0.3 + 0.05*float64(i), B: 0.5, A: 0.6})
		d.DrawPath(quadratic(0, 0, 60, -30, 110, 0).QuadTo(pt(60, 30), pt(0, 0)), petal)
		d.Restore()
	}

	// a ring with a hole, outlined
	d.DrawPath(ringShape(0, 0, 40, 24), canvas.NewPaint(orange))
	d.StrokePath(circle(0, 0, 40), canvas.Stroke{
		Width: 3,
		Cap:   graphics.LineCapRound,
		Join:  graphics.LineJoinRound,
	}, canvas.NewPaint(canvas.White))

	// the centre
	d.DrawConvexPolygon(regularPolygon(0, 0, 14, 6, math.Pi/6), canvas.NewPaint(canvas.Color{R: 1, G: 0.9, B: 0.2, A: 1}))

	// punch a star out of the centre
	cut := canvas.NewPaint(canvas.Black)
	cut.Mode = canvas.BlendDstOut
	d.DrawPath(fivePointStar(0, 0, 8), cut)
	d.Restore()

	return "rosette"
}
