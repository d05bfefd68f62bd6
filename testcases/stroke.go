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
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/canvas"
)

var strokeScenes = []Scene{
	{
		Name:   "line_butt",
		Width:  64,
		Height: 64,
		Draw:   stroke(line(10, 32, 54, 32), pen(8, graphics.LineCapButt, graphics.LineJoinMiter), blue),
	},
	{
		Name:   "line_round",
		Width:  64,
		Height: 64,
		Draw:   stroke(line(10, 32, 54, 32), pen(8, graphics.LineCapRound, graphics.LineJoinMiter), blue),
	},
	{
		Name:   "line_square",
		Width:  64,
		Height: 64,
		Draw:   stroke(line(10, 32, 54, 32), pen(8, graphics.LineCapSquare, graphics.LineJoinMiter), blue),
	},
	{
		Name:   "line_diagonal",
		Width:  64,
		Height: 64,
		Draw:   stroke(line(8, 56, 56, 8), pen(5, graphics.LineCapButt, graphics.LineJoinMiter), blue),
	},
	{
		Name:   "corner_miter",
		Width:  64,
		Height: 64,
		Draw:   stroke(corner(10, 50, 32, 14, 54, 50), pen(6, graphics.LineCapButt, graphics.LineJoinMiter), red),
	},
	{
		Name:   "corner_round",
		Width:  64,
		Height: 64,
		Draw:   stroke(corner(10, 50, 32, 14, 54, 50), pen(6, graphics.LineCapButt, graphics.LineJoinRound), red),
	},
	{
		Name:   "corner_bevel",
		Width:  64,
		Height: 64,
		Draw:   stroke(corner(10, 50, 32, 14, 54, 50), pen(6, graphics.LineCapButt, graphics.LineJoinBevel), red),
	},
	{
		// The miter of a sharp corner exceeds the limit and is
		// replaced by a bevel.
		Name:   "corner_sharp",
		Width:  64,
		Height: 64,
		Draw:   stroke(corner(28, 56, 32, 8, 36, 56), pen(6, graphics.LineCapButt, graphics.LineJoinMiter), red),
	},
	{
		Name:   "closed_square",
		Width:  64,
		Height: 64,
		Draw:   stroke(rectangle(14, 14, 50, 50), pen(6, graphics.LineCapButt, graphics.LineJoinMiter), green),
	},
	{
		// Self-overlapping parts of the stroke are painted once.
		Name:   "overlap_translucent",
		Width:  64,
		Height: 64,
		Draw: stroke(polygon(pt(10, 10), pt(54, 54), pt(54, 10), pt(10, 54)),
			pen(6, graphics.LineCapButt, graphics.LineJoinRound), glass),
	},
	{
		// A zero-length subpath with round caps draws a dot.
		Name:   "dot",
		Width:  64,
		Height: 64,
		Draw: stroke((&path.Data{}).MoveTo(pt(32, 32)).LineTo(pt(32, 32)),
			pen(12, graphics.LineCapRound, graphics.LineJoinRound), orange),
	},
	{
		// Strokes without width draw nothing.
		Name:   "nodraw",
		Width:  64,
		Height: 64,
		Draw:   stroke(line(10, 32, 54, 32), pen(0, graphics.LineCapRound, graphics.LineJoinRound), orange),
	},
}

// pen returns a stroke with the given parameters and the default miter limit.
func pen(width float64, lineCap graphics.LineCapStyle, join graphics.LineJoinStyle) canvas.Stroke {
	return canvas.Stroke{Width: width, Cap: lineCap, Join: join, MiterLimit: 10}
}

// line builds a single line segment.
func line(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).MoveTo(pt(x1, y1)).LineTo(pt(x2, y2))
}

// corner builds a path with two line segments meeting at a corner.
func corner(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return line(x1, y1, x2, y2).LineTo(pt(x3, y3))
}
