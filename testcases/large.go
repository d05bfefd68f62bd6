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

// largeScenes exercise the rasteriser on big bitmaps and with many edges.
var largeScenes = []Scene{
	{
		Name:   "rectangle",
		Width:  512,
		Height: 512,
		Draw:   rectBody(50, 50, 462, 462),
	},
	{
		// The inner square runs in the opposite direction and is left
		// empty.
		Name:   "concentric",
		Width:  512,
		Height: 512,
		Draw:   fill(concentricRectangles(256, 256, 200, 100), blue),
	},
	{
		Name:   "diamond",
		Width:  512,
		Height: 512,
		Draw:   fill(diamond(256, 256, 180), green),
	},
	{
		Name:   "grid",
		Width:  512,
		Height: 512,
		Draw:   fill(rectangleGrid(8, 8, 512, 512, 4), orange),
	},
	{
		// Shape extending outside the bitmap on both sides.
		Name:   "clipped",
		Width:  512,
		Height: 512,
		Draw:   fill(rectangle(-100, 100, 612, 400), red),
	},
}

// concentricRectangles builds two nested squares around (cx, cy) with
// opposite orientation.
func concentricRectangles(cx, cy, outer, inner float64) *path.Data {
	return join(
		rectangle(cx-outer, cy-outer, cx+outer, cy+outer),
		polygon(pt(cx-inner, cy-inner), pt(cx-inner, cy+inner), pt(cx+inner, cy+inner), pt(cx+inner, cy-inner)),
	)
}

// diamond builds a square rotated by 45 degrees, with the given distance
// between the centre and the corners.
func diamond(cx, cy, r float64) *path.Data {
	return polygon(pt(cx, cy-r), pt(cx+r, cy), pt(cx, cy+r), pt(cx-r, cy))
}
