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
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/canvas"
)

// The shader scenes check that shaded paint covers the same pixels as
// flat paint.  The colours are only visible in the exported images.
var shaderScenes = []Scene{
	{
		Name:   "gradient",
		Width:  64,
		Height: 64,
		Draw: shaded(canvas.NewLinearGradient(pt(8, 0), pt(56, 0), rainbow, canvas.TileClamp),
			func(d canvas.Drawer, p canvas.Paint) {
				d.DrawRect(box(4, 8, 60, 56), p)
			}),
	},
	{
		Name:   "gradient_repeat",
		Width:  64,
		Height: 64,
		Draw: shaded(canvas.NewLinearGradient(pt(16, 16), pt(28, 28), rainbow, canvas.TileRepeat),
			func(d canvas.Drawer, p canvas.Paint) {
				d.DrawPath(circle(32, 32, 28), p)
			}),
	},
	{
		Name:   "gradient_mirror",
		Width:  64,
		Height: 64,
		Draw: shaded(canvas.NewLinearGradient(pt(0, 20), pt(0, 30), rainbow, canvas.TileMirror),
			func(d canvas.Drawer, p canvas.Paint) {
				d.DrawConvexPolygon(regularPolygon(32, 32, 28, 5, -math.Pi/2), p)
			}),
	},
	{
		// The shader is given in user space and rotates with the CTM.
		Name:   "gradient_rotated",
		Width:  64,
		Height: 64,
		Draw: transformed(matrix.Rotate(math.Pi/5).Translate(32, 32),
			shaded(canvas.NewLinearGradient(pt(-20, 0), pt(20, 0), rainbow, canvas.TileClamp),
				func(d canvas.Drawer, p canvas.Paint) {
					d.DrawRect(box(-24, -12, 24, 12), p)
				})),
	},
	{
		// A gradient with coincident end points has a singular
		// transformation, and the paint colour is used instead.
		Name:   "gradient_singular",
		Width:  64,
		Height: 64,
		Draw: shaded(canvas.NewLinearGradient(pt(32, 32), pt(32, 32), rainbow, canvas.TileClamp),
			func(d canvas.Drawer, p canvas.Paint) {
				d.DrawRect(box(8, 8, 56, 56), p)
			}),
	},
	{
		// Outside the image, clamping repeats the edge pixels.
		Name:   "image_clamp",
		Width:  64,
		Height: 64,
		Draw: shaded(checkerShader(matrix.Scale(24, 24).Translate(20, 20), canvas.TileClamp),
			func(d canvas.Drawer, p canvas.Paint) {
				d.DrawRect(box(4, 4, 60, 60), p)
			}),
	},
	{
		Name:   "image_repeat",
		Width:  64,
		Height: 64,
		Draw: shaded(checkerShader(matrix.Scale(16, 16), canvas.TileRepeat),
			func(d canvas.Drawer, p canvas.Paint) {
				d.DrawPath(fivePointStar(32, 32, 28), p)
			}),
	},
	{
		Name:   "image_mirror",
		Width:  64,
		Height: 64,
		Draw: shaded(checkerShader(matrix.Matrix{12, 4, -4, 12, 32, 32}, canvas.TileMirror),
			func(d canvas.Drawer, p canvas.Paint) {
				d.DrawPath(circle(32, 32, 28), p)
			}),
	},
}

// rainbow is the colour ramp used by the gradient scenes.
var rainbow = []canvas.Color{red, orange, green, blue}

// shaded returns a scene body which draws with a shaded paint.  The paint
// colour is used if the shader cannot be evaluated.
func shaded(s canvas.Shader, body func(canvas.Drawer, canvas.Paint)) func(canvas.Drawer) {
	return func(d canvas.Drawer) {
		p := canvas.NewPaint(red)
		p.Shader = s
		body(d, p)
	}
}

// checkerShader returns an image shader for a 4×4 checker board with a
// coloured border.
func checkerShader(local matrix.Matrix, tile canvas.TileMode) canvas.Shader {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := range 4 {
		for x := range 4 {
			var c color.Color = color.White
			switch {
			case x == 0 || y == 0:
				c = blue
			case (x+y)%2 == 0:
				c = color.Black
			}
			img.Set(x, y, c)
		}
	}
	s, err := canvas.NewImageShader(img, local, tile)
	if err != nil {
		panic(err) // unreachable: the image is not empty
	}
	return s
}
