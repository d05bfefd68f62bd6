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
	"fmt"
	"image"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Shader computes a colour for every point of the plane.
//
// Colours are evaluated in shader space.  Transform maps shader space to
// user space; at draw time the canvas combines it with the current
// transformation, maps every pixel centre back into shader space and calls
// At.
//
// Shaders must be pure: At must return the same colour every time it is
// called with the same point.
type Shader interface {
	// Transform returns the map from shader space to user space.
	Transform() matrix.Matrix

	// At returns the colour at the point p, given in shader space.
	At(p vec.Vec2) Color
}

// TileMode determines how a shader treats coordinates outside its native
// domain [0, 1].
type TileMode uint8

const (
	// TileClamp repeats the colour at the nearest edge of the domain.
	TileClamp TileMode = iota

	// TileRepeat repeats the domain periodically.
	TileRepeat

	// TileMirror repeats the domain periodically, reflecting every other
	// copy.
	TileMirror
)

func (m TileMode) String() string {
	switch m {
	case TileClamp:
		return "clamp"
	case TileRepeat:
		return "repeat"
	case TileMirror:
		return "mirror"
	default:
		return fmt.Sprintf("TileMode(%d)", int(m))
	}
}

// Apply folds the coordinate t into the unit interval [0, 1].
// NaN is mapped to 0, and so are infinite values for the periodic modes.
func (m TileMode) Apply(t float64) float64 {
	switch m {
	case TileRepeat:
		t -= math.Floor(t)
	case TileMirror:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if math.Mod(period, 2) == 1 {
			t = 1 - t
		}
	default:
		return clamp01(t)
	}
	if math.IsNaN(t) {
		return 0
	}
	return t
}

// ImageShader samples the pixels of an image.
//
// In shader space, the image occupies the unit square [0,1]×[0,1],
// with (0, 0) at the top-left corner of the image.  Colours are taken from
// the nearest pixel, without interpolation.
type ImageShader struct {
	img   *image.RGBA
	local matrix.Matrix
	tile  TileMode
}

// NewImageShader returns a shader which samples img.  The matrix local maps
// the unit square occupied by the image into user space; for example,
// matrix.Scale(w, h) shows a w×h image at its natural size.
//
// The shader keeps a reference to img; the image must not be modified while
// the shader is in use.
func NewImageShader(img *image.RGBA, local matrix.Matrix, tile TileMode) (*ImageShader, error) {
	if img == nil || img.Rect.Empty() {
		return nil, ErrInvalidBitmap
	}
	return &ImageShader{img: img, local: local, tile: tile}, nil
}

// Transform implements the [Shader] interface.
func (s *ImageShader) Transform() matrix.Matrix {
	return s.local
}

// At implements the [Shader] interface.
func (s *ImageShader) At(p vec.Vec2) Color {
	b := s.img.Rect
	w, h := b.Dx(), b.Dy()

	x := min(int(s.tile.Apply(p.X)*float64(w)), w-1)
	y := min(int(s.tile.Apply(p.Y)*float64(h)), h-1)

	i := s.img.PixOffset(b.Min.X+x, b.Min.Y+y)
	return loadPixel(s.img.Pix[i : i+4]).unpremul()
}

// LinearGradient interpolates between colours along a line.
//
// In shader space, the gradient runs along the x-axis: x = 0 gives the
// first colour and x = 1 the last one, with the remaining colours evenly
// spaced in between.
type LinearGradient struct {
	colors []Color
	local  matrix.Matrix
	tile   TileMode
}

// NewLinearGradient returns a gradient which runs from p0 to p1 in user
// space.  If p0 == p1 the shader transformation is singular, and draw
// calls fall back to the paint colour.
func NewLinearGradient(p0, p1 vec.Vec2, colors []Color, tile TileMode) *LinearGradient {
	d := p1.Sub(p0)
	return &LinearGradient{
		colors: slices.Clone(colors),
		local:  matrix.Matrix{d.X, d.Y, -d.Y, d.X, p0.X, p0.Y},
		tile:   tile,
	}
}

// Transform implements the [Shader] interface.
func (g *LinearGradient) Transform() matrix.Matrix {
	return g.local
}

// At implements the [Shader] interface.
func (g *LinearGradient) At(p vec.Vec2) Color {
	n := len(g.colors)
	switch n {
	case 0:
		return Transparent
	case 1:
		return g.colors[0]
	}

	t := g.tile.Apply(p.X) * float64(n-1)
	i := min(int(t), n-2)
	frac := t - float64(i)

	c0, c1 := g.colors[i], g.colors[i+1]
	return Color{
		R: c0.R + (c1.R-c0.R)*frac,
		G: c0.G + (c1.G-c0.G)*frac,
		B: c0.B + (c1.B-c0.B)*frac,
		A: c0.A + (c1.A-c0.A)*frac,
	}
}
