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

package canvas

import (
	"image"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/canvas/affine"
)

// blitter composites spans into the destination bitmap.
type blitter struct {
	dst  *image.RGBA
	mode BlendMode

	// src is the premultiplied flat source colour, used if shader is nil.
	src pixel

	// packed is src converted to 8 bits, used if the result does not
	// depend on the destination.
	packed   [4]uint8
	constant bool

	// shader, if non-nil, supplies the source colour.  toShader maps
	// device space to shader space.
	shader   Shader
	toShader matrix.Matrix
}

// setFlat prepares the blitter for a flat source colour.
func (b *blitter) setFlat(c Color, mode BlendMode) {
	b.mode = mode
	b.shader = nil
	b.src = c.premul()

	b.constant = !mode.dependsOnDst(b.src.a)
	if b.constant {
		mode.blend(b.src, pixel{}).store(b.packed[:])
	}
}

// setShader prepares the blitter for sampling the shader s.  toShader must
// map device space to shader space.
func (b *blitter) setShader(s Shader, toShader matrix.Matrix, mode BlendMode) {
	b.mode = mode
	b.shader = s
	b.toShader = toShader
	b.constant = false
}

// release drops the reference to the current shader.  The canvas calls
// it at the end of every draw call.
func (b *blitter) release() {
	b.shader = nil
}

// span composites the pixels [xMin, xMax) of row y.
func (b *blitter) span(y, xMin, xMax int) {
	if b.mode == BlendDst {
		return
	}

	row := b.dst.Pix[b.dst.PixOffset(b.dst.Rect.Min.X+xMin, b.dst.Rect.Min.Y+y):]
	n := xMax - xMin

	switch {
	case b.constant:
		for i := range n {
			copy(row[4*i:4*i+4], b.packed[:])
		}

	case b.shader != nil:
		yc := float64(y) + 0.5
		for i := range n {
			p := affine.Apply(b.toShader, vec.Vec2{X: float64(xMin+i) + 0.5, Y: yc})
			s := b.shader.At(p).premul()
			px := row[4*i : 4*i+4]
			b.mode.blend(s, loadPixel(px)).store(px)
		}

	default:
		for i := range n {
			px := row[4*i : 4*i+4]
			b.mode.blend(b.src, loadPixel(px)).store(px)
		}
	}
}
