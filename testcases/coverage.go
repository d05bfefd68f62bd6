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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/canvas"
)

// Coverage wraps d so that only the geometry of a scene is drawn: every
// paint is replaced by opaque white with BlendSrcOver, and clearing
// always uses opaque black.  The resulting image shows which pixels are
// covered by at least one shape, independent of colours, blend modes and
// shaders.
func Coverage(d canvas.Drawer) canvas.Drawer {
	return coverage{d}
}

type coverage struct {
	canvas.Drawer
}

var ink = canvas.NewPaint(canvas.White)

func (c coverage) Clear(canvas.Color) {
	c.Drawer.Clear(canvas.Black)
}

func (c coverage) DrawRect(r rect.Rect, _ canvas.Paint) {
	c.Drawer.DrawRect(r, ink)
}

func (c coverage) DrawConvexPolygon(pts []vec.Vec2, _ canvas.Paint) {
	c.Drawer.DrawConvexPolygon(pts, ink)
}

func (c coverage) DrawPath(p *path.Data, _ canvas.Paint) {
	c.Drawer.DrawPath(p, ink)
}

func (c coverage) StrokePath(p *path.Data, s canvas.Stroke, _ canvas.Paint) {
	c.Drawer.StrokePath(p, s, ink)
}
