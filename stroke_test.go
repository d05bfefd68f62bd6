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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

func line(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1})
}

func countCovered(rows []string) int {
	n := 0
	for _, row := range rows {
		for _, c := range row {
			if c == '#' {
				n++
			}
		}
	}
	return n
}

func TestStrokeButt(t *testing.T) {
	c, img := newTestCanvas(t, 12, 8)
	c.StrokePath(line(2, 4, 10, 4), NewStroke(2), NewPaint(Black))

	want := []string{
		"............",
		"............",
		"............",
		"..########..",
		"..########..",
		"............",
		"............",
		"............",
	}
	if d := cmp.Diff(want, mask(img)); d != "" {
		t.Errorf("coverage (-want +got):\n%s", d)
	}
}

func TestStrokeSquareCap(t *testing.T) {
	c, img := newTestCanvas(t, 12, 8)
	s := NewStroke(2)
	s.Cap = graphics.LineCapSquare
	c.StrokePath(line(2, 4, 10, 4), s, NewPaint(Black))

	want := []string{
		"............",
		"............",
		"............",
		".##########.",
		".##########.",
		"............",
		"............",
		"............",
	}
	if d := cmp.Diff(want, mask(img)); d != "" {
		t.Errorf("coverage (-want +got):\n%s", d)
	}
}

func TestStrokeDot(t *testing.T) {
	dot := line(5, 5, 5, 5)

	cases := []struct {
		name string
		cap  graphics.LineCapStyle
		want []string
	}{
		{
			name: "butt",
			cap:  graphics.LineCapButt,
			want: []string{
				"..........",
				"..........",
				"..........",
				"..........",
				"..........",
				"..........",
				"..........",
				"..........",
				"..........",
				"..........",
			},
		},
		{
			name: "round",
			cap:  graphics.LineCapRound,
			want: []string{
				"..........",
				"..........",
				"..........",
				"....##....",
				"...####...",
				"...####...",
				"....##....",
				"..........",
				"..........",
				"..........",
			},
		},
		{
			name: "square",
			cap:  graphics.LineCapSquare,
			want: []string{
				"..........",
				"..........",
				"..........",
				"...####...",
				"...####...",
				"...####...",
				"...####...",
				"..........",
				"..........",
				"..........",
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewStroke(4)
			s.Cap = tc.cap
			c, img := newTestCanvas(t, 10, 10)
			c.StrokePath(dot, s, NewPaint(Black))
			if d := cmp.Diff(tc.want, mask(img)); d != "" {
				t.Errorf("coverage (-want +got):\n%s", d)
			}
		})
	}
}

func TestStrokeClosedRect(t *testing.T) {
	want := []string{
		"..........",
		".########.",
		".########.",
		".##....##.",
		".##....##.",
		".##....##.",
		".##....##.",
		".########.",
		".########.",
		"..........",
	}
	for _, join := range []graphics.LineJoinStyle{graphics.LineJoinMiter, graphics.LineJoinRound} {
		s := NewStroke(2)
		s.Join = join
		c, img := newTestCanvas(t, 10, 10)
		c.StrokePath(rectPath(rect.Rect{LLx: 2, LLy: 2, URx: 8, URy: 8}), s, NewPaint(Black))
		if d := cmp.Diff(want, mask(img)); d != "" {
			t.Errorf("join %v: coverage (-want +got):\n%s", join, d)
		}
	}
}

// TestMiterLimit checks that sharp corners fall back to bevel joins once
// the miter length exceeds the limit.
func TestMiterLimit(t *testing.T) {
	corner := (&path.Data{}).
		MoveTo(vec.Vec2{X: 4, Y: 28}).
		LineTo(vec.Vec2{X: 16, Y: 4}).
		LineTo(vec.Vec2{X: 28, Y: 28})

	counts := map[string]int{}
	for name, limit := range map[string]float64{"miter": 10, "bevel": 1.01} {
		s := NewStroke(4)
		s.MiterLimit = limit
		c, img := newTestCanvas(t, 32, 32)
		c.StrokePath(corner, s, NewPaint(Black))
		counts[name] = countCovered(mask(img))
	}
	if counts["miter"] <= counts["bevel"] {
		t.Errorf("miter covers %d pixels, bevel covers %d", counts["miter"], counts["bevel"])
	}
}

// TestStrokeOverlap checks that self-overlapping strokes are painted once.
func TestStrokeOverlap(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 2, Y: 2}).
		LineTo(vec.Vec2{X: 14, Y: 14}).
		LineTo(vec.Vec2{X: 14, Y: 2}).
		LineTo(vec.Vec2{X: 2, Y: 14}).
		LineTo(vec.Vec2{X: 3, Y: 3})
	s := NewStroke(3)
	s.Join = graphics.LineJoinRound
	s.Cap = graphics.LineCapRound

	c, img := newTestCanvas(t, 16, 16)
	c.StrokePath(p, s, NewPaint(Color{G: 1, A: 0.5}))

	covered := 0
	for i := 3; i < len(img.Pix); i += 4 {
		switch img.Pix[i] {
		case 0:
		case to8(0.5):
			covered++
		default:
			t.Fatalf("alpha %d at offset %d", img.Pix[i], i)
		}
	}
	if covered == 0 {
		t.Error("nothing drawn")
	}
}

// TestStrokeTransform checks that the line width is given in user space.
func TestStrokeTransform(t *testing.T) {
	c1, img1 := newTestCanvas(t, 12, 12)
	c1.Concat(matrix.Scale(2, 2))
	c1.StrokePath(line(1, 2, 5, 3), NewStroke(1), NewPaint(Black))

	c2, img2 := newTestCanvas(t, 12, 12)
	c2.StrokePath(line(2, 4, 10, 6), NewStroke(2), NewPaint(Black))

	if d := cmp.Diff(mask(img2), mask(img1)); d != "" {
		t.Errorf("coverage (-device +user):\n%s", d)
	}
}

func TestStrokeOutlineOrientation(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		QuadTo(vec.Vec2{X: 15, Y: 5}, vec.Vec2{X: 10, Y: 10}).
		LineTo(vec.Vec2{X: 0, Y: 10}).
		Close().
		MoveTo(vec.Vec2{X: 20, Y: 20}).
		CubeTo(vec.Vec2{X: 30, Y: 20}, vec.Vec2{X: 20, Y: 30}, vec.Vec2{X: 30, Y: 30})

	for _, join := range []graphics.LineJoinStyle{graphics.LineJoinMiter, graphics.LineJoinRound, graphics.LineJoinBevel} {
		s := NewStroke(1.5)
		s.Join = join
		s.Cap = graphics.LineCapRound
		out := StrokeOutline(p, s, 0.1)
		if len(out.Cmds) == 0 {
			t.Fatal("empty outline")
		}

		var contour []vec.Vec2
		check := func() {
			area := 0.0
			for i, a := range contour {
				b := contour[(i+1)%len(contour)]
				area += a.X*b.Y - b.X*a.Y
			}
			if !(area > 0) {
				t.Errorf("join %v: contour with area %g", join, area)
			}
			contour = contour[:0]
		}
		idx := 0
		for _, cmd := range out.Cmds {
			switch cmd {
			case path.CmdMoveTo, path.CmdLineTo:
				contour = append(contour, out.Coords[idx])
				idx++
			case path.CmdClose:
				check()
			default:
				t.Fatalf("unexpected command %v in outline", cmd)
			}
		}
	}
}

func TestStrokeOutlineEmpty(t *testing.T) {
	cases := []struct {
		name string
		p    *path.Data
		s    Stroke
	}{
		{"nil", nil, NewStroke(1)},
		{"zero_width", line(0, 0, 5, 5), NewStroke(0)},
		{"negative_width", line(0, 0, 5, 5), NewStroke(-2)},
		{"move_only", (&path.Data{}).MoveTo(vec.Vec2{X: 1, Y: 1}), NewStroke(1)},
		{"butt_dot", line(3, 3, 3, 3), NewStroke(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if out := StrokeOutline(tc.p, tc.s, 0); len(out.Cmds) != 0 {
				t.Errorf("got %d commands, want none", len(out.Cmds))
			}
		})
	}
}

func TestDashPattern(t *testing.T) {
	cases := []struct {
		name    string
		pattern []float64
		phase   float64
		want    string
	}{
		{"plain", []float64{4, 2}, 0, "..####..####..####..##.."},
		{"phase", []float64{4, 2}, 3, "..#..####..####..####..."},
		{"negative_phase", []float64{4, 2}, -1, "...####..####..####..#.."},
		{"phase_period", []float64{4, 2}, 12, "..####..####..####..##.."},
		{"odd", []float64{3}, 0, "..###...###...###...##.."},
		{"negative_entry", []float64{-1, 2}, 0, "..####################.."},
		{"all_zero", []float64{0, 0}, 0, "..####################.."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewStroke(2)
			s.Dash = tc.pattern
			s.DashPhase = tc.phase
			c, img := newTestCanvas(t, 24, 8)
			c.StrokePath(line(2, 4, 22, 4), s, NewPaint(Black))

			empty := "........................"
			want := []string{empty, empty, empty, tc.want, tc.want, empty, empty, empty}
			if d := cmp.Diff(want, mask(img)); d != "" {
				t.Errorf("coverage (-want +got):\n%s", d)
			}
		})
	}
}

// TestDashDots checks that zero-length dashes are drawn like zero-length
// subpaths.
func TestDashDots(t *testing.T) {
	for _, lineCap := range []graphics.LineCapStyle{graphics.LineCapButt, graphics.LineCapRound, graphics.LineCapSquare} {
		s := NewStroke(4)
		s.Cap = lineCap

		c1, dot := newTestCanvas(t, 10, 10)
		c1.StrokePath(line(5, 5, 5, 5), s, NewPaint(Black))

		s.Dash = []float64{0, 100}
		c2, dashed := newTestCanvas(t, 10, 10)
		c2.StrokePath(line(5, 5, 9, 5), s, NewPaint(Black))

		if d := cmp.Diff(mask(dot), mask(dashed)); d != "" {
			t.Errorf("cap %v: coverage (-dot +dash):\n%s", lineCap, d)
		}
	}
}

// TestDashClosed checks that on closed subpaths, the last dash is joined
// to the first one.
func TestDashClosed(t *testing.T) {
	square := rectPath(rect.Rect{LLx: 2, LLy: 2, URx: 8, URy: 8})

	s := NewStroke(2)
	s.Dash = []float64{20, 4}
	s.DashPhase = 2
	c, img := newTestCanvas(t, 10, 10)
	c.StrokePath(square, s, NewPaint(Black))

	want := []string{
		"..........",
		".########.",
		".########.",
		".##....##.",
		".......##.",
		".......##.",
		".......##.",
		"..#######.",
		"..#######.",
		"..........",
	}
	if d := cmp.Diff(want, mask(img)); d != "" {
		t.Errorf("coverage (-want +got):\n%s", d)
	}

	// a dash longer than the perimeter gives the solid outline
	s.Dash = []float64{100, 1}
	c1, dashed := newTestCanvas(t, 10, 10)
	c1.StrokePath(square, s, NewPaint(Black))
	c2, solid := newTestCanvas(t, 10, 10)
	c2.StrokePath(square, NewStroke(2), NewPaint(Black))
	if d := cmp.Diff(mask(solid), mask(dashed)); d != "" {
		t.Errorf("long dash (-solid +dashed):\n%s", d)
	}
}

func TestIsDashed(t *testing.T) {
	cases := []struct {
		pattern []float64
		want    bool
	}{
		{nil, false},
		{[]float64{}, false},
		{[]float64{0, 0}, false},
		{[]float64{1}, true},
		{[]float64{0, 1}, true},
		{[]float64{-1, 2}, false},
		{[]float64{math.NaN(), 1}, false},
		{[]float64{math.Inf(1), 1}, false},
	}
	for _, tc := range cases {
		s := NewStroke(1)
		s.Dash = tc.pattern
		if got := s.IsDashed(); got != tc.want {
			t.Errorf("IsDashed(%v) = %t, want %t", tc.pattern, got, tc.want)
		}
	}
}
