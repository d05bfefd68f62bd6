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

// Command export renders every scene with the canvas and writes the
// results as PNG or BMP images, for visual inspection.
// Run from the module root directory.
package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/tdewolff/argp"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"seehuhn.de/go/canvas"
	"seehuhn.de/go/canvas/testcases"
)

// Export holds the command line options.
type Export struct {
	Output   string `short:"o" default:"debug/export" desc:"Output directory"`
	Format   string `short:"f" default:"png" desc:"Image format (png or bmp)"`
	Zoom     int    `short:"z" default:"1" desc:"Magnification factor"`
	Coverage bool   `short:"c" desc:"Draw coverage in white on black instead of colours"`
	Category string `index:"0" desc:"Only export scenes from this category"`
}

func main() {
	root := argp.NewCmd(&Export{}, "Render the test scenes to image files")
	root.Parse()
	root.PrintHelp()
}

// Run implements the command.
func (cmd *Export) Run() error {
	var encode func(io.Writer, image.Image) error
	switch cmd.Format {
	case "png":
		encode = png.Encode
	case "bmp":
		encode = bmp.Encode
	default:
		fmt.Fprintf(os.Stderr, "ERROR: unknown image format %q\n", cmd.Format)
		return argp.ShowUsage
	}
	if cmd.Zoom < 1 {
		fmt.Fprintln(os.Stderr, "ERROR: magnification must be positive")
		return argp.ShowUsage
	}

	if err := os.MkdirAll(cmd.Output, 0755); err != nil {
		return err
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		if cmd.Category != "" && category != cmd.Category {
			continue
		}
		for _, s := range testcases.All[category] {
			name := testcases.FileName(category, s)
			img, err := cmd.render(s)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			fname := filepath.Join(cmd.Output, name+"."+cmd.Format)
			if err := writeImage(fname, img, encode); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
	}
	return nil
}

// render draws a scene and magnifies the result.
func (cmd *Export) render(s testcases.Scene) (image.Image, error) {
	img := image.NewRGBA(image.Rect(0, 0, s.Width, s.Height))
	c, err := canvas.New(img)
	if err != nil {
		return nil, err
	}

	var d canvas.Drawer = c
	if cmd.Coverage {
		d = testcases.Coverage(c)
		d.Clear(canvas.Black)
	}
	s.Draw(d)

	if cmd.Zoom == 1 {
		return img, nil
	}
	// Nearest neighbour scaling keeps the individual pixels visible.
	big := image.NewRGBA(image.Rect(0, 0, s.Width*cmd.Zoom, s.Height*cmd.Zoom))
	draw.NearestNeighbor.Scale(big, big.Bounds(), img, img.Bounds(), draw.Src, nil)
	return big, nil
}

func writeImage(fname string, img image.Image, encode func(io.Writer, image.Image) error) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return encode(f, img)
}
