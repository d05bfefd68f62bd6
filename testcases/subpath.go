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
)

var subpathScenes = []Scene{
	{
		Name:   "two_triangles",
		Width:  64,
		Height: 64,
		Draw:   fill(twoTriangles(16, 32, 48, 32, 12), green),
	},
	{
		// Overlapping subpaths with the same orientation fill the
		// overlap once.
		Name:   "overlapping_rect",
		Width:  64,
		Height: 64,
		Draw:   fill(join(rectangle(10, 10, 40, 40), rectangle(24, 24, 54, 54)), blue),
	},
	{
		// An inner contour with opposite orientation cuts a hole.
		Name:   "ring",
		Width:  64,
		Height: 64,
		Draw:   fill(ringShape(32, 32, 25, 12), orange),
	},
	{
		// An inner contour with the same orientation does not.
		Name:   "ring_same_direction",
		Width:  64,
		Height: 64,
		Draw:   fill(join(circle(32, 32, 25), circle(32, 32, 12)), orange),
	},
	{
		Name:   "multiple_rings",
		Width:  128,
		Height: 128,
		Draw:   fill(multipleRings(64, 64), red),
	},
	{
		Name:   "many_small_shapes",
		Width:  128,
		Height: 128,
		Draw:   fill(rectangleGrid(8, 8, 128, 128, 3), blue),
	},
}

// twoTriangles builds two separate, disjoint triangles.
func twoTriangles(cx1, cy1, cx2, cy2 float64, size float64) *path.Data {
	return join(
		polygon(pt(cx1, cy1-size), pt(cx1+size, cy1+size), pt(cx1-size, cy1+size)),
		polygon(pt(cx2, cy2-size), pt(cx2+size, cy2+size), pt(cx2-size, cy2+size)),
	)
}

// ringShape builds an annulus from two circles with opposite orientation.
func ringShape(cx, cy, outer, inner float64) *path.Data {
	return join(circle(cx, cy, outer), reverseCircle(cx, cy, inner))
}

// multipleRings builds three concentric rings.
func multipleRings(cx, cy float64) *path.Data {
	var rings []*path.Data
	for _, r := range []float64{56, 40, 24} {
		rings = append(rings, ringShape(cx, cy, r, r-10))
	}
	return join(rings...)
}

// rectangleGrid builds a grid of rectangles.
func rectangleGrid(rows, cols, width, height int, gap float64) *path.Data {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)

	var cells []*path.Data
	for row := range rows {
		for col := range cols {
			x1 := float64(col)*cellW + gap
			y1 := float64(row)*cellH + gap
			x2 := float64(col+1)*cellW - gap
			y2 := float64(row+1)*cellH - gap
			cells = append(cells, rectangle(x1, y1, x2, y2))
		}
	}
	return join(cells...)
}
