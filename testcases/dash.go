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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/canvas"
)

var dashScenes = []Scene{
	{
		Name:   "equal",
		Width:  64,
		Height: 64,
		Draw:   stroke(line(5, 32, 59, 32), dashed(4, graphics.LineCapButt, 0, 10, 10), blue),
	},
	{
		// An odd pattern is used twice per period: 5 on, 3 off, 8 on,
		// 5 off, 3 on, 8 off.
		Name:   "odd",
		Width:  64,
		Height: 64,
		Draw:   stroke(line(5, 32, 59, 32), dashed(4, graphics.LineCapButt, 0, 5, 3, 8), blue),
	},
	{
		Name:   "single",
		Width:  64,
		Height: 64,
		Draw:   stroke(line(5, 32, 59, 32), dashed(4, graphics.LineCapButt, 0, 10), blue),
	},
	{
		Name:   "phase",
		Width:  64,
		Height: 64,
		Draw:   stroke(line(5, 32, 59, 32), dashed(4, graphics.LineCapButt, 7, 10, 5), blue),
	},
	{
		Name:   "phase_negative",
		Width:  64,
		Height: 64,
		Draw:   stroke(line(5, 32, 59, 32), dashed(4, graphics.LineCapButt, -4, 10, 5), blue),
	},
	{
		// Zero-length dashes with round caps give a dotted line.
		Name:   "dots_round",
		Width:  64,
		Height: 64,
		Draw:   stroke(line(6, 32, 58, 32), dashed(6, graphics.LineCapRound, 0, 0, 10), orange),
	},
	{
		// Square caps of zero-length dashes follow the direction of the
		// line.
		Name:   "dots_square_diagonal",
		Width:  64,
		Height: 64,
		Draw:   stroke(line(8, 56, 56, 8), dashed(5, graphics.LineCapSquare, 0, 0, 9), orange),
	},
	{
		// Dashes continue around corners, using the line join.
		Name:   "corner",
		Width:  64,
		Height: 64,
		Draw:   stroke(corner(8, 54, 32, 10, 56, 54), dashed(5, graphics.LineCapButt, 0, 30, 6), red),
	},
	{
		// The dash through the start point of a closed path is
		// joined with the first dash.
		Name:   "closed_square",
		Width:  64,
		Height: 64,
		Draw:   stroke(rectangle(12, 12, 52, 52), dashed(4, graphics.LineCapButt, 10, 20, 8), green),
	},
	{
		Name:   "circle",
		Width:  64,
		Height: 64,
		Draw:   stroke(circle(32, 32, 22), dashed(4, graphics.LineCapRound, 0, 8, 6), green),
	},
	{
		// A pattern without positive length draws a solid line.
		Name:   "all_zero",
		Width:  64,
		Height: 64,
		Draw:   stroke(line(5, 32, 59, 32), dashed(4, graphics.LineCapButt, 0, 0, 0), blue),
	},
	{
		// Dash lengths are given in user space.
		Name:   "scaled",
		Width:  64,
		Height: 64,
		Draw: transformed(matrix.Scale(2, 2), stroke((&path.Data{}).MoveTo(pt(3, 16)).LineTo(pt(29, 16)),
			dashed(2, graphics.LineCapButt, 0, 5, 2.5), blue)),
	},
}

// dashed returns a stroke with miter joins and the given dash pattern.
func dashed(width float64, lineCap graphics.LineCapStyle, phase float64, pattern ...float64) canvas.Stroke {
	s := pen(width, lineCap, graphics.LineJoinMiter)
	s.Dash = pattern
	s.DashPhase = phase
	return s
}
