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

// Package canvas implements a software rasteriser for filled 2D shapes.
//
// A [Canvas] draws into an [image.RGBA] bitmap.  Shapes are given in user
// space and mapped to device space by the current transformation matrix
// (CTM), which is kept on a stack manipulated by [Canvas.Save],
// [Canvas.Restore] and [Canvas.Concat].  Coverage is binary: a pixel is
// painted iff its centre lies inside the shape, using the nonzero winding
// rule.  Covered pixels are composited with one of the Porter-Duff
// [BlendMode]s, using either a flat colour or a [Shader].
package canvas

//go:generate go run ./testcases/genpdf

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/canvas/affine"
)

var (
	// ErrInvalidBitmap is returned by [New] if the destination bitmap is
	// missing, empty, or if its pixel buffer is too small for its bounds.
	ErrInvalidBitmap = errors.New("canvas: invalid bitmap")

	// ErrUnsupportedFormat is returned by [New] if the destination is not
	// an *image.RGBA.
	ErrUnsupportedFormat = errors.New("canvas: unsupported bitmap format")

	// ErrRestoreWithoutSave is returned by [Canvas.Restore] if there is no
	// matching call to [Canvas.Save].
	ErrRestoreWithoutSave = errors.New("canvas: restore without matching save")
)

// Drawer is the drawing interface shared by [Canvas] and by the other
// back ends used for testing.
type Drawer interface {
	Save()
	Restore() error
	Concat(m matrix.Matrix)

	Clear(c Color)
	DrawRect(r rect.Rect, p Paint)
	DrawConvexPolygon(pts []vec.Vec2, p Paint)
	DrawPath(p *path.Data, paint Paint)
	StrokePath(p *path.Data, s Stroke, paint Paint)
}

// Canvas draws into an RGBA bitmap.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	dst    *image.RGBA
	width  int
	height int

	// stack holds the saved transformation matrices.  The last entry is the
	// CTM, and the stack is never empty.
	stack []matrix.Matrix

	raster   *rasteriser
	blit     blitter
	flatness float64
	logger   *slog.Logger
}

var _ Drawer = (*Canvas)(nil)

// New returns a canvas which draws into dst.  The initial CTM is the
// identity, so that user space coincides with the pixel grid of dst: the
// pixel dst.Rect.Min occupies the unit square [0,1]×[0,1].
//
// The canvas does not take ownership of dst; the caller must keep the
// bitmap alive and unchanged in size while the canvas is used.
func New(dst draw.Image, opts ...Option) (*Canvas, error) {
	if dst == nil {
		return nil, ErrInvalidBitmap
	}
	img, ok := dst.(*image.RGBA)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedFormat, dst)
	}
	if img == nil {
		return nil, ErrInvalidBitmap
	}

	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: empty bounds %v", ErrInvalidBitmap, img.Rect)
	}
	if img.Stride < 4*w {
		return nil, fmt.Errorf("%w: stride %d too small for width %d", ErrInvalidBitmap, img.Stride, w)
	}
	if len(img.Pix) < (h-1)*img.Stride+4*w {
		return nil, fmt.Errorf("%w: %d bytes too small for %dx%d pixels", ErrInvalidBitmap, len(img.Pix), w, h)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Canvas{
		dst:      img,
		width:    w,
		height:   h,
		stack:    []matrix.Matrix{matrix.Identity},
		raster:   newRasteriser(w, h, o.flatness),
		flatness: o.flatness,
		logger:   o.logger,
	}
	c.blit.dst = img
	c.logger.Debug("canvas created", "width", w, "height", h, "flatness", o.flatness)
	return c, nil
}

// Save pushes a copy of the CTM onto the stack.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.stack[len(c.stack)-1])
}

// Restore pops the CTM, returning to the transformation which was current
// at the matching call to Save.  If there is no matching call to Save, the
// stack is left unchanged and ErrRestoreWithoutSave is returned.
func (c *Canvas) Restore() error {
	if len(c.stack) <= 1 {
		c.logger.Warn("restore without matching save")
		return ErrRestoreWithoutSave
	}
	c.stack = c.stack[:len(c.stack)-1]
	return nil
}

// Depth returns the number of entries on the transformation stack.
// A new canvas has depth 1.
func (c *Canvas) Depth() int {
	return len(c.stack)
}

// CTM returns the current transformation matrix.
func (c *Canvas) CTM() matrix.Matrix {
	return c.stack[len(c.stack)-1]
}

// Concat replaces the CTM by CTM∘m, so that m is applied to user-space
// coordinates before the previous CTM.
func (c *Canvas) Concat(m matrix.Matrix) {
	top := &c.stack[len(c.stack)-1]
	*top = m.Mul(*top)
}

// Translate is a shorthand for c.Concat(matrix.Translate(dx, dy)).
func (c *Canvas) Translate(dx, dy float64) {
	c.Concat(matrix.Translate(dx, dy))
}

// Scale is a shorthand for c.Concat(matrix.Scale(sx, sy)).
func (c *Canvas) Scale(sx, sy float64) {
	c.Concat(matrix.Scale(sx, sy))
}

// Rotate is a shorthand for c.Concat(matrix.Rotate(theta)).
func (c *Canvas) Rotate(theta float64) {
	c.Concat(matrix.Rotate(theta))
}

// Clear sets every pixel of the bitmap to col.  The CTM is ignored.
func (c *Canvas) Clear(col Color) {
	c.blit.setFlat(col.Clamp(), BlendSrc)
	for y := range c.height {
		c.blit.span(y, 0, c.width)
	}
}

// FillRect fills r with a flat colour, using BlendSrcOver.
func (c *Canvas) FillRect(r rect.Rect, col Color) {
	c.DrawRect(r, NewPaint(col))
}

// DrawRect fills the rectangle r, given in user space.
// The corners of r may be given in any order.
func (c *Canvas) DrawRect(r rect.Rect, p Paint) {
	r = rect.Rect{
		LLx: min(r.LLx, r.URx), LLy: min(r.LLy, r.URy),
		URx: max(r.LLx, r.URx), URy: max(r.LLy, r.URy),
	}
	if !(r.URx > r.LLx && r.URy > r.LLy) {
		c.logger.Debug("skipping empty rectangle", "rect", r)
		return
	}

	c.prepare(p)
	c.raster.ctm = c.CTM()
	c.raster.fillRect(r, c.blit.span)
	c.blit.release()
}

// DrawConvexPolygon fills the polygon with the given vertices.  The
// polygon is assumed to be convex; this is not checked.  Polygons with
// fewer than three vertices draw nothing.
func (c *Canvas) DrawConvexPolygon(pts []vec.Vec2, p Paint) {
	if len(pts) < 3 {
		c.logger.Debug("skipping degenerate polygon", "vertices", len(pts))
		return
	}

	c.prepare(p)
	c.raster.ctm = c.CTM()
	c.raster.fillConvex(pts, c.blit.span)
	c.blit.release()
}

// DrawPath fills the path using the nonzero winding rule.  Every subpath
// is closed implicitly.
func (c *Canvas) DrawPath(p *path.Data, paint Paint) {
	if p == nil || len(p.Cmds) == 0 {
		c.logger.Debug("skipping empty path")
		return
	}

	c.prepare(paint)
	c.raster.ctm = c.CTM()
	c.raster.fillPath(p, c.blit.span)
	c.blit.release()
}

// StrokePath paints the area covered by a pen of the given shape moving
// along the path.  Overlapping parts of the stroke are painted once.
func (c *Canvas) StrokePath(p *path.Data, s Stroke, paint Paint) {
	if p == nil || len(p.Cmds) == 0 || !(s.Width > 0) {
		c.logger.Debug("skipping empty stroke", "width", s.Width)
		return
	}

	// Convert the flatness from device pixels to user-space units, using
	// the largest stretch factor of the CTM.
	ctm := c.CTM()
	tol := c.flatness
	if scale := max(math.Hypot(ctm[0], ctm[1]), math.Hypot(ctm[2], ctm[3])); scale > 0 {
		tol /= scale
	}

	outline := StrokeOutline(p, s, tol)
	if len(outline.Cmds) == 0 {
		return
	}
	c.prepare(paint)
	c.raster.ctm = ctm
	c.raster.fillPath(outline, c.blit.span)
	c.blit.release()
}

// prepare sets up the blitter for drawing with p under the current CTM.
func (c *Canvas) prepare(p Paint) {
	col := p.Color.Clamp()
	if p.Shader == nil {
		c.blit.setFlat(col, p.Mode)
		return
	}

	toShader, ok := affine.Invert(p.Shader.Transform().Mul(c.CTM()))
	if !ok {
		c.logger.Warn("shader transform is singular, using paint colour",
			"ctm", c.CTM(), "shader", p.Shader.Transform())
		c.blit.setFlat(col, p.Mode)
		return
	}
	c.blit.setShader(p.Shader, toShader, p.Mode)
}
