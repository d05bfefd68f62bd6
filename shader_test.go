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
	"bytes"
	"errors"
	"image"
	"image/color"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestTileMode(t *testing.T) {
	cases := []struct {
		mode TileMode
		in   float64
		want float64
	}{
		{TileClamp, -5, 0},
		{TileClamp, 0.25, 0.25},
		{TileClamp, 7, 1},
		{TileClamp, math.NaN(), 0},
		{TileRepeat, 0.25, 0.25},
		{TileRepeat, 1.25, 0.25},
		{TileRepeat, -0.25, 0.75},
		{TileRepeat, -3.5, 0.5},
		{TileMirror, 0.25, 0.25},
		{TileMirror, 1.25, 0.75},
		{TileMirror, 2.25, 0.25},
		{TileMirror, -0.25, 0.25},
		{TileMirror, -1.25, 0.75},
		{TileClamp, math.Inf(1), 1},
		{TileRepeat, math.NaN(), 0},
		{TileRepeat, math.Inf(1), 0},
		{TileRepeat, math.Inf(-1), 0},
		{TileRepeat, 1e300, 0},
		{TileMirror, math.NaN(), 0},
		{TileMirror, math.Inf(-1), 0},
	}
	for _, tc := range cases {
		got := tc.mode.Apply(tc.in)
		if math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("%s.Apply(%g) = %g, want %g", tc.mode, tc.in, got, tc.want)
		}
	}
}

// testImage returns an opaque w×h image where every pixel has a different
// colour.
func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, color.RGBA{R: uint8(40 * x), G: uint8(40 * y), B: 200, A: 255})
		}
	}
	return img
}

func TestNewImageShaderInvalid(t *testing.T) {
	if _, err := NewImageShader(nil, matrix.Identity, TileClamp); !errors.Is(err, ErrInvalidBitmap) {
		t.Errorf("nil image: got %v", err)
	}
	empty := image.NewRGBA(image.Rect(3, 3, 3, 7))
	if _, err := NewImageShader(empty, matrix.Identity, TileClamp); !errors.Is(err, ErrInvalidBitmap) {
		t.Errorf("empty image: got %v", err)
	}
}

func TestImageShaderClamp(t *testing.T) {
	s, err := NewImageShader(testImage(4, 4), matrix.Identity, TileClamp)
	if err != nil {
		t.Fatal(err)
	}

	pairs := [][2]vec.Vec2{
		{{X: -5, Y: 0.5}, {X: 0, Y: 0.5}},
		{{X: 0.3, Y: 9}, {X: 0.3, Y: 1}},
		{{X: 2, Y: -2}, {X: 1, Y: 0}},
	}
	for _, p := range pairs {
		if a, b := s.At(p[0]), s.At(p[1]); a != b {
			t.Errorf("At(%v) = %v, At(%v) = %v", p[0], a, p[1], b)
		}
	}
}

func TestImageShaderTiling(t *testing.T) {
	src := testImage(4, 4)
	cases := []struct {
		mode TileMode
		idx  func(i int) int
	}{
		{TileClamp, func(i int) int { return min(i, 3) }},
		{TileRepeat, func(i int) int { return i % 4 }},
		{TileMirror, func(i int) int {
			if i >= 4 {
				return 7 - i
			}
			return i
		}},
	}
	for _, tc := range cases {
		t.Run(tc.mode.String(), func(t *testing.T) {
			s, err := NewImageShader(src, matrix.Scale(4, 4), tc.mode)
			if err != nil {
				t.Fatal(err)
			}
			c, img := newTestCanvas(t, 8, 8)
			c.DrawRect(rect.Rect{LLx: 0, LLy: 0, URx: 8, URy: 8}, Paint{Color: Black, Shader: s})

			for y := range 8 {
				for x := range 8 {
					got := img.RGBAAt(x, y)
					want := src.RGBAAt(tc.idx(x), tc.idx(y))
					if got != want {
						t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
					}
				}
			}
		})
	}
}

// TestImageShaderTransform checks that the shader follows the CTM.
func TestImageShaderTransform(t *testing.T) {
	src := testImage(2, 2)
	s, err := NewImageShader(src, matrix.Scale(2, 2), TileClamp)
	if err != nil {
		t.Fatal(err)
	}

	c, img := newTestCanvas(t, 4, 4)
	c.Scale(2, 2)
	c.DrawRect(rect.Rect{LLx: 0, LLy: 0, URx: 2, URy: 2}, Paint{Shader: s})

	for y := range 4 {
		for x := range 4 {
			if got, want := img.RGBAAt(x, y), src.RGBAAt(x/2, y/2); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestLinearGradient(t *testing.T) {
	g := NewLinearGradient(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 8, Y: 0}, []Color{Black, White}, TileClamp)

	c, img := newTestCanvas(t, 10, 2)
	c.DrawRect(rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 2}, Paint{Shader: g, Mode: BlendSrc})

	var got, want []uint8
	for x := range 10 {
		got = append(got, img.RGBAAt(x, 1).R)
		want = append(want, to8(min((float64(x)+0.5)/8, 1)))
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("gradient (-want +got):\n%s", d)
	}
}

func TestLinearGradientStops(t *testing.T) {
	red := Color{R: 1, A: 1}
	blue := Color{B: 1, A: 1}
	g := NewLinearGradient(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 0, Y: 1}, []Color{red, White, blue}, TileRepeat)

	cases := []struct {
		t    float64
		want Color
	}{
		{0, red},
		{0.5, White},
		{0.75, Color{R: 0.5, G: 0.5, B: 1, A: 1}},
		{1.25, Color{R: 1, G: 0.5, B: 0.5, A: 1}},
	}
	for _, tc := range cases {
		got := g.At(vec.Vec2{X: tc.t, Y: 17})
		if d := cmp.Diff(tc.want, got); d != "" {
			t.Errorf("At(%g) (-want +got):\n%s", tc.t, d)
		}
	}

	if c := NewLinearGradient(vec.Vec2{}, vec.Vec2{X: 1}, nil, TileClamp).At(vec.Vec2{}); c != Transparent {
		t.Errorf("empty gradient: got %v", c)
	}
}

// TestGradientDirection checks that the gradient is perpendicular to the
// line from p0 to p1.
func TestGradientDirection(t *testing.T) {
	g := NewLinearGradient(vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 1, Y: 9}, []Color{Black, White}, TileClamp)

	c, img := newTestCanvas(t, 6, 10)
	c.DrawRect(rect.Rect{LLx: 0, LLy: 0, URx: 6, URy: 10}, Paint{Shader: g})

	for y := range 10 {
		row := img.RGBAAt(0, y)
		for x := 1; x < 6; x++ {
			if px := img.RGBAAt(x, y); px != row {
				t.Errorf("row %d not constant: %v != %v", y, px, row)
			}
		}
		if y > 1 && row.R <= img.RGBAAt(0, y-1).R && y < 9 {
			t.Errorf("row %d: gradient not increasing", y)
		}
	}
}

// TestSingularShader checks that a degenerate shader falls back to the
// paint colour.
func TestSingularShader(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	c, err := New(img, WithLogger(logger))
	if err != nil {
		t.Fatal(err)
	}

	p := vec.Vec2{X: 2, Y: 2}
	g := NewLinearGradient(p, p, []Color{Black, White}, TileClamp)
	col := Color{R: 1, G: 0.5, A: 1}
	c.DrawRect(rect.Rect{LLx: 0, LLy: 0, URx: 4, URy: 4}, Paint{Color: col, Shader: g})

	want := color.RGBA{R: 255, G: 128, B: 0, A: 255}
	for y := range 4 {
		for x := range 4 {
			if got := img.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
	if !strings.Contains(buf.String(), "singular") {
		t.Errorf("missing warning, got %q", buf.String())
	}
}

// TestHugeShaderTransform checks that a shader whose combined transformation
// overflows falls back to the paint colour instead of sampling at
// non-finite coordinates.
func TestHugeShaderTransform(t *testing.T) {
	img := testImage(4, 4)
	for _, mode := range []TileMode{TileClamp, TileRepeat, TileMirror} {
		t.Run(mode.String(), func(t *testing.T) {
			s, err := NewImageShader(img, matrix.Scale(1e200, 1e200), mode)
			if err != nil {
				t.Fatal(err)
			}
			g := NewLinearGradient(vec.Vec2{}, vec.Vec2{X: 1e200}, []Color{Black, White}, mode)

			for name, shader := range map[string]Shader{"image": s, "gradient": g} {
				c, dst := newTestCanvas(t, 4, 4)
				c.Scale(1e200, 1e200)
				col := Color{G: 1, A: 1}
				c.DrawRect(rect.Rect{LLx: 0, LLy: 0, URx: 4e-200, URy: 4e-200}, Paint{Color: col, Shader: shader})

				want := color.RGBA{G: 255, A: 255}
				if got := dst.RGBAAt(1, 1); got != want {
					t.Errorf("%s: pixel (1,1) = %v, want %v", name, got, want)
				}
			}
		})
	}

	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		s, _ := NewImageShader(img, matrix.Identity, TileRepeat)
		if got, want := s.At(vec.Vec2{X: x, Y: x}), s.At(vec.Vec2{}); got != want {
			t.Errorf("At(%g) = %v, want %v", x, got, want)
		}
	}
}

// TestShaderNotRetained checks that the canvas drops its reference to the
// shader once a draw call returns.
func TestShaderNotRetained(t *testing.T) {
	s, err := NewImageShader(testImage(2, 2), matrix.Scale(4, 4), TileRepeat)
	if err != nil {
		t.Fatal(err)
	}
	p := Paint{Color: Black, Shader: s}
	square := rect.Rect{LLx: 1, LLy: 1, URx: 5, URy: 5}

	draws := map[string]func(c *Canvas){
		"rect":    func(c *Canvas) { c.DrawRect(square, p) },
		"polygon": func(c *Canvas) { c.DrawConvexPolygon(rectCorners(square), p) },
		"path":    func(c *Canvas) { c.DrawPath(rectPath(square), p) },
		"stroke":  func(c *Canvas) { c.StrokePath(rectPath(square), NewStroke(2), p) },
	}
	for name, fn := range draws {
		t.Run(name, func(t *testing.T) {
			c, img := newTestCanvas(t, 8, 8)
			fn(c)
			if c.blit.shader != nil {
				t.Error("canvas still references the shader")
			}
			if img.RGBAAt(1, 3).A == 0 {
				t.Error("nothing drawn")
			}
		})
	}
}
