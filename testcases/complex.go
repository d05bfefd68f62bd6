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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"
)

var complexScenes = []Scene{
	{
		Name:   "mixed_lines_curves",
		Width:  64,
		Height: 64,
		Draw:   fill(mixedLinesCurves(), green),
	},
	{
		Name:   "stroked_mixed",
		Width:  64,
		Height: 64,
		Draw:   stroke(mixedLinesCurves(), pen(3, graphics.LineCapRound, graphics.LineJoinRound), green),
	},
	{
		Name:   "glyph_like",
		Width:  64,
		Height: 64,
		Draw:   fill(glyphLikeShape(), blue),
	},
	{
		// Consecutive turns of the spiral overlap when stroked.
		Name:   "spiral_overlap",
		Width:  64,
		Height: 64,
		Draw:   stroke(spiralPath(32, 32, 5, 25, 3), pen(6, graphics.LineCapRound, graphics.LineJoinRound), red),
	},
}

// mixedLinesCurves builds a path combining line segments and Bezier curves.
func mixedLinesCurves() *path.Data {
	return (&path.Data{}).
		MoveTo(pt(10, 50)).
		LineTo(pt(20, 30)).
		QuadTo(pt(32, 10), pt(44, 30)).
		LineTo(pt(54, 50)).
		CubeTo(pt(48, 60), pt(16, 60), pt(10, 50)).
		Close()
}

// glyphLikeShape builds a shape resembling a lowercase 'a': a bowl with a
// counter and a stem on the right.
func glyphLikeShape() *path.Data {
	const cx, cy, r = 32.0, 38.0, 18.0
	stem := (&path.Data{}).
		MoveTo(pt(cx+r, cy)).
		LineTo(pt(cx+r, 10)).
		LineTo(pt(cx+r-6, 10)).
		LineTo(pt(cx+r-6, cy)).
		Close()
	return join(circle(cx, cy, r), stem, reverseCircle(cx, cy, 8))
}

// spiralPath builds an Archimedean spiral from line segments.
func spiralPath(cx, cy, rMin, rMax float64, turns float64) *path.Data {
	steps := max(int(turns*32), 8) // 32 segments per turn
	totalAngle := turns * 2 * math.Pi
	rGrowth := (rMax - rMin) / totalAngle

	p := (&path.Data{}).MoveTo(pt(cx+rMin, cy))
	for i := 1; i <= steps; i++ {
		angle := float64(i) / float64(steps) * totalAngle
		r := rMin + rGrowth*angle
		p = p.LineTo(pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle)))
	}
	return p
}
