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

	"seehuhn.de/go/canvas"
)

var clearScenes = []Scene{
	{
		Name:   "solid",
		Width:  32,
		Height: 32,
		Draw: func(d canvas.Drawer) {
			d.Clear(blue)
		},
	},
	{
		// Clear ignores the CTM.
		Name:   "ignores_ctm",
		Width:  32,
		Height: 32,
		Draw: func(d canvas.Drawer) {
			d.Concat(matrix.Scale(0.1, 0.1))
			d.Clear(green)
		},
	},
	{
		// A clear after drawing removes the earlier content.
		Name:   "overwrites",
		Width:  32,
		Height: 32,
		Draw: func(d canvas.Drawer) {
			d.DrawRect(box(4, 4, 28, 28), canvas.NewPaint(red))
			d.Clear(canvas.Transparent)
			d.DrawRect(box(8, 8, 12, 12), canvas.NewPaint(orange))
		},
	},
}
