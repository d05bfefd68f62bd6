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

package canvas_test

import (
	"errors"
	"image"
	"io/fs"
	"maps"
	"math"
	"path/filepath"
	"slices"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/canvas"
	"seehuhn.de/go/canvas/testcases"
)

// TestAgainstReference compares the coverage of all test scenes with the
// reference images in testdata/reference, which are generated by
// ./testcases/genpdf.  Scenes without a reference image are skipped.
func TestAgainstReference(t *testing.T) {
	refDir := filepath.Join("testdata", "reference")

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, s := range testcases.All[category] {
			name := testcases.FileName(category, s)
			t.Run(name, func(t *testing.T) {
				// load reference image
				ref, w, h, err := testcases.LoadGray(filepath.Join(refDir, name+".png"))
				if errors.Is(err, fs.ErrNotExist) {
					t.Skip("no reference image")
				} else if err != nil {
					t.Fatalf("loading reference: %v", err)
				}
				if w != s.Width || h != s.Height {
					t.Fatalf("reference is %dx%d, want %dx%d", w, h, s.Width, s.Height)
				}

				actual, err := testcases.Render(s)
				if err != nil {
					t.Fatal(err)
				}

				if err := testcases.Compare(ref, actual, w, h); err != nil {
					t.Error(err)
					if derr := testcases.WriteDiffImage("debug", name, ref, actual, w, h); derr != nil {
						t.Logf("writing comparison image: %v", derr)
					}
				}
			})
		}
	}
}

// TestArtwork checks that the example picture can be drawn in colour.
func TestArtwork(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 120, 90))
	c, err := canvas.New(img)
	if err != nil {
		t.Fatal(err)
	}

	title := testcases.DrawSomething(c, 120, 90)
	if title == "" {
		t.Error("empty title")
	}
	if c.Depth() != 1 {
		t.Errorf("unbalanced save/restore: depth %d", c.Depth())
	}

	colours := make(map[[4]uint8]bool)
	for i := 0; i < len(img.Pix); i += 4 {
		colours[[4]uint8(img.Pix[i:i+4])] = true
	}
	if len(colours) < 10 {
		t.Errorf("only %d distinct colours", len(colours))
	}
}

func ExampleCanvas() {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	c, err := canvas.New(img)
	if err != nil {
		panic(err)
	}

	c.Clear(canvas.White)
	c.Save()
	c.Translate(32, 32)
	c.Rotate(0.3)
	var hexagon []vec.Vec2
	for i := range 6 {
		sin, cos := math.Sincos(float64(i) * math.Pi / 3)
		hexagon = append(hexagon, vec.Vec2{X: 20 * cos, Y: 20 * sin})
	}
	c.DrawConvexPolygon(hexagon, canvas.NewPaint(canvas.Black))
	if err := c.Restore(); err != nil {
		panic(err)
	}
}
