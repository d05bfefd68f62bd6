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
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/canvas"
)

var precisionScenes = append(subpixelScenes(),
	Scene{
		// A line of width 1 centred on a pixel boundary covers one row.
		Name:   "thin_line_y_integer",
		Width:  64,
		Height: 64,
		Draw:   stroke(line(5, 10, 59, 10), pen(1, graphics.LineCapButt, graphics.LineJoinMiter), blue),
	},
	Scene{
		// A line of width 1 centred on a row of pixel centres has its
		// edges on pixel boundaries and covers one row.
		Name:   "thin_line_y_half",
		Width:  64,
		Height: 64,
		Draw:   stroke(line(5, 10.5, 59, 10.5), pen(1, graphics.LineCapButt, graphics.LineJoinMiter), blue),
	},
	Scene{
		// The shape is computed far from the origin and moved back by the
		// CTM.
		Name:   "large_coord_centered",
		Width:  64,
		Height: 64,
		Draw: transformed(matrix.Translate(32-1000, 32-1000),
			rectBody(1000-10, 1000-10, 1000+10, 1000+10)),
	},
	Scene{
		Name:   "small_shape_large_offset",
		Width:  64,
		Height: 64,
		Draw: transformed(matrix.Translate(32-10000, 32-10000), func(d canvas.Drawer) {
			d.DrawConvexPolygon([]vec.Vec2{
				pt(10000-1, 10000-1), pt(10000+1, 10000-1), pt(10000+1, 10000+1), pt(10000-1, 10000+1),
			}, canvas.NewPaint(red))
		}),
	},
	Scene{
		// Coordinates which differ only in the low bits of a float64.
		Name:   "float64_precision",
		Width:  64,
		Height: 64,
		Draw: func(d canvas.Drawer) {
			const delta1 = 0.123456789012345
			const delta2 = 0.123456789012346
			d.DrawRect(box(22+delta1, 22+delta1, 42+delta2, 42+delta2), canvas.NewPaint(red))
		},
	},
)

// subpixelScenes draws a 4×4 rectangle at a range of subpixel offsets,
// once with each of the three fill primitives.
func subpixelScenes() []Scene {
	var res []Scene
	for _, offset := range []float64{0, 0.25, 0.5, 0.75} {
		x1, y1 := 20+offset, 20+offset
		x2, y2 := x1+4, y1+4
		pct := int(offset * 100)
		res = append(res,
			Scene{
				Name:   fmt.Sprintf("subpixel_rect_%02d", pct),
				Width:  64,
				Height: 64,
				Draw:   rectBody(x1, y1, x2, y2),
			},
			Scene{
				Name:   fmt.Sprintf("subpixel_poly_%02d", pct),
				Width:  64,
				Height: 64,
				Draw: func(d canvas.Drawer) {
					d.DrawConvexPolygon([]vec.Vec2{pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2)}, canvas.NewPaint(red))
				},
			},
			Scene{
				Name:   fmt.Sprintf("subpixel_path_%02d", pct),
				Width:  64,
				Height: 64,
				Draw:   fill(rectangle(x1, y1, x2, y2), red),
			},
		)
	}
	return res
}
