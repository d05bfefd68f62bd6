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

// Package testcases contains named drawing scenes for testing the canvas
// against reference images, together with the checker which performs the
// comparison.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/canvas"
)

// Scene is a single drawing test.
type Scene struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Width  int    // bitmap width in pixels
	Height int    // bitmap height in pixels

	// Draw issues the drawing calls of the scene.  The bitmap is
	// transparent black when Draw is called.
	Draw func(d canvas.Drawer)
}

// Some colours used by the scenes.  When comparing against references,
// all colours are replaced by white; see [Coverage].
var (
	red    = canvas.Color{R: 0.9, G: 0.2, B: 0.2, A: 1}
	green  = canvas.Color{R: 0.2, G: 0.7, B: 0.3, A: 1}
	blue   = canvas.Color{R: 0.2, G: 0.3, B: 0.9, A: 1}
	orange = canvas.Color{R: 1, G: 0.6, B: 0.1, A: 1}
	glass  = canvas.Color{R: 0.4, G: 0.8, B: 1, A: 0.5}
)

// fill returns a scene body which fills p with a flat colour.
func fill(p *path.Data, col canvas.Color) func(canvas.Drawer) {
	return func(d canvas.Drawer) {
		d.DrawPath(p, canvas.NewPaint(col))
	}
}

// stroke returns a scene body which strokes p with a flat colour.
func stroke(p *path.Data, s canvas.Stroke, col canvas.Color) func(canvas.Drawer) {
	return func(d canvas.Drawer) {
		d.StrokePath(p, s, canvas.NewPaint(col))
	}
}

// transformed returns a scene body which runs body with m concatenated to
// the CTM.
func transformed(m matrix.Matrix, body func(canvas.Drawer)) func(canvas.Drawer) {
	return func(d canvas.Drawer) {
		d.Save()
		d.Concat(m)
		body(d)
		d.Restore()
	}
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// box is a helper to create a rect.Rect from two corners.
func box(x1, y1, x2, y2 float64) rect.Rect {
	return rect.Rect{LLx: x1, LLy: y1, URx: x2, URy: y2}
}

// rectangle builds a rectangular path.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// polygon builds a closed path through the given vertices.
func polygon(pts ...vec.Vec2) *path.Data {
	p := &path.Data{}
	for i, v := range pts {
		if i == 0 {
			p = p.MoveTo(v)
		} else {
			p = p.LineTo(v)
		}
	}
	return p.Close()
}

// join concatenates paths.
func join(paths ...*path.Data) *path.Data {
	res := &path.Data{}
	for _, p := range paths {
		res.Cmds = append(res.Cmds, p.Cmds...)
		res.Coords = append(res.Coords, p.Coords...)
	}
	return res
}
