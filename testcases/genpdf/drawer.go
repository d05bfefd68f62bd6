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

package main

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/canvas"
	"seehuhn.de/go/canvas/affine"
)

// pdfDrawer implements canvas.Drawer by writing PDF drawing operators.
//
// The transformation stack is kept on the Go side.  For every drawing
// call the CTM is concatenated to the PDF transformation and removed
// again afterwards, so that the PDF graphics state stays flat.
// Shaders and blend modes are not supported; colours are converted to
// gray.
type pdfDrawer struct {
	page          *document.Page
	width, height float64
	stack         []matrix.Matrix

	background canvas.Color
}

var _ canvas.Drawer = (*pdfDrawer)(nil)

func newPDFDrawer(page *document.Page, width, height int) *pdfDrawer {
	return &pdfDrawer{
		page:       page,
		width:      float64(width),
		height:     float64(height),
		stack:      []matrix.Matrix{matrix.Identity},
		background: canvas.Black,
	}
}

func (d *pdfDrawer) Save() {
	d.stack = append(d.stack, d.stack[len(d.stack)-1])
}

func (d *pdfDrawer) Restore() error {
	if len(d.stack) <= 1 {
		return canvas.ErrRestoreWithoutSave
	}
	d.stack = d.stack[:len(d.stack)-1]
	return nil
}

func (d *pdfDrawer) Concat(m matrix.Matrix) {
	top := &d.stack[len(d.stack)-1]
	*top = m.Mul(*top)
}

func (d *pdfDrawer) Clear(c canvas.Color) {
	d.page.SetFillColor(color.DeviceGray(luma(c)))
	d.page.Rectangle(0, 0, d.width, d.height)
	d.page.Fill()
}

func (d *pdfDrawer) DrawRect(r rect.Rect, p canvas.Paint) {
	if r.LLx == r.URx || r.LLy == r.URy {
		return
	}
	d.page.SetFillColor(color.DeviceGray(luma(p.Color)))
	d.withCTM(func() {
		d.page.Rectangle(r.LLx, r.LLy, r.URx-r.LLx, r.URy-r.LLy)
		d.page.Fill()
	})
}

func (d *pdfDrawer) DrawConvexPolygon(pts []vec.Vec2, p canvas.Paint) {
	if len(pts) < 3 {
		return
	}
	d.page.SetFillColor(color.DeviceGray(luma(p.Color)))
	d.withCTM(func() {
		d.page.MoveTo(pts[0].X, pts[0].Y)
		for _, v := range pts[1:] {
			d.page.LineTo(v.X, v.Y)
		}
		d.page.ClosePath()
		d.page.Fill()
	})
}

func (d *pdfDrawer) DrawPath(p *path.Data, paint canvas.Paint) {
	if p == nil || len(p.Cmds) == 0 {
		return
	}
	d.page.SetFillColor(color.DeviceGray(luma(paint.Color)))
	d.withCTM(func() {
		d.emitPath(p)
		d.page.Fill()
	})
}

func (d *pdfDrawer) StrokePath(p *path.Data, s canvas.Stroke, paint canvas.Paint) {
	if p == nil || len(p.Cmds) == 0 || !(s.Width > 0) {
		return
	}
	miterLimit := s.MiterLimit
	if miterLimit < 1 {
		miterLimit = 10
	}

	// Set stroke parameters before path construction (PDF requirement)
	d.page.SetStrokeColor(color.DeviceGray(luma(paint.Color)))
	d.page.SetLineWidth(s.Width)
	d.page.SetLineCap(s.Cap)
	d.page.SetLineJoin(s.Join)
	d.page.SetMiterLimit(miterLimit)
	if s.IsDashed() {
		d.page.SetLineDash(s.Dash, s.DashPhase)
	} else {
		d.page.SetLineDash(nil, 0)
	}
	d.withCTM(func() {
		d.emitPath(p)
		d.page.Stroke()
	})
}

// withCTM runs draw with the CTM applied to the PDF transformation.
// If the CTM is singular, nothing is drawn.
func (d *pdfDrawer) withCTM(draw func()) {
	ctm := d.stack[len(d.stack)-1]
	inv, ok := affine.Invert(ctm)
	if !ok {
		return
	}
	d.page.Transform(ctm)
	draw()
	d.page.Transform(inv)
}

// emitPath writes the path construction operators for p.
// Quadratic curves are converted to cubic ones, since PDF does not
// support them.
func (d *pdfDrawer) emitPath(p *path.Data) {
	var current, start vec.Vec2
	if p.Cmds[0] != path.CmdMoveTo {
		d.page.MoveTo(0, 0)
	}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = p.Coords[coordIdx]
			start = current
			d.page.MoveTo(current.X, current.Y)
			coordIdx++
		case path.CmdLineTo:
			current = p.Coords[coordIdx]
			d.page.LineTo(current.X, current.Y)
			coordIdx++
		case path.CmdQuadTo:
			c, end := p.Coords[coordIdx], p.Coords[coordIdx+1]
			c1 := current.Add(c.Sub(current).Mul(2.0 / 3))
			c2 := end.Add(c.Sub(end).Mul(2.0 / 3))
			d.page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
			current = end
			coordIdx += 2
		case path.CmdCubeTo:
			c1, c2, end := p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2]
			d.page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
			current = end
			coordIdx += 3
		case path.CmdClose:
			d.page.ClosePath()
			current = start
		}
	}
}

// luma converts a colour to a gray level, using the luminance of the
// colour composited over black.
func luma(c canvas.Color) float64 {
	c = c.Clamp()
	return (0.299*c.R + 0.587*c.G + 0.114*c.B) * c.A
}
