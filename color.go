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
	"image/color"
)

// Color is a colour with non-premultiplied components.
// Components are nominally in the range [0, 1]; values outside this range
// are clamped before the colour is used.
type Color struct {
	R, G, B, A float64
}

// Some commonly used colours.
var (
	Black       = Color{R: 0, G: 0, B: 0, A: 1}
	White       = Color{R: 1, G: 1, B: 1, A: 1}
	Transparent = Color{}
)

// Clamp returns c with all components clamped to [0, 1].
// NaN components are mapped to 0.
func (c Color) Clamp() Color {
	return Color{
		R: clamp01(c.R),
		G: clamp01(c.G),
		B: clamp01(c.B),
		A: clamp01(c.A),
	}
}

// RGBA implements the [color.Color] interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	p := c.premul()
	return to16(p.r), to16(p.g), to16(p.b), to16(p.a)
}

// FromColor converts an arbitrary [color.Color] to a Color.
// A nil argument gives Transparent.
func FromColor(c color.Color) Color {
	switch c := c.(type) {
	case nil:
		return Transparent
	case Color:
		return c
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Transparent
	}
	fa := float64(a)
	return Color{
		R: float64(r) / fa,
		G: float64(g) / fa,
		B: float64(b) / fa,
		A: fa / 0xffff,
	}
}

// pixel is a colour with premultiplied components in [0, 1].
type pixel struct {
	r, g, b, a float64
}

// premul clamps c and converts it to premultiplied form.
func (c Color) premul() pixel {
	c = c.Clamp()
	return pixel{r: c.R * c.A, g: c.G * c.A, b: c.B * c.A, a: c.A}
}

// unpremul converts a premultiplied pixel back to a Color.
func (p pixel) unpremul() Color {
	if p.a <= 0 {
		return Transparent
	}
	return Color{R: p.r / p.a, G: p.g / p.a, B: p.b / p.a, A: p.a}.Clamp()
}

// loadPixel reads a premultiplied 8-bit RGBA pixel.
func loadPixel(s []uint8) pixel {
	return pixel{
		r: float64(s[0]) / 255,
		g: float64(s[1]) / 255,
		b: float64(s[2]) / 255,
		a: float64(s[3]) / 255,
	}
}

// store writes p as a premultiplied 8-bit RGBA pixel.
func (p pixel) store(d []uint8) {
	d[0] = to8(p.r)
	d[1] = to8(p.g)
	d[2] = to8(p.b)
	d[3] = to8(p.a)
}

// to8 clamps v to [0, 1] and rounds it to the nearest 8-bit value.
func to8(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

// to16 clamps v to [0, 1] and rounds it to the nearest 16-bit value.
func to16(v float64) uint32 {
	return uint32(clamp01(v)*0xffff + 0.5)
}

func clamp01(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
