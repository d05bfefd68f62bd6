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

// Command genpdf generates reference images for the canvas tests.
// It writes the coverage of every scene as a PDF file and renders the PDF
// files to PNGs using Ghostscript.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"github.com/tdewolff/argp"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"

	"seehuhn.de/go/canvas/testcases"
)

// GenPDF holds the command line options.
type GenPDF struct {
	Output string `short:"o" default:"testdata/reference" desc:"Output directory"`
	GS     string `default:"gs" desc:"Ghostscript executable"`
	NoPNG  bool   `desc:"Only write the PDF files"`
}

func main() {
	root := argp.NewCmd(&GenPDF{}, "Generate reference images for the canvas tests")
	root.Parse()
	root.PrintHelp()
}

// Run implements the command.
func (cmd *GenPDF) Run() error {
	if err := os.MkdirAll(cmd.Output, 0755); err != nil {
		return err
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, s := range testcases.All[category] {
			name := testcases.FileName(category, s)
			pdfPath := filepath.Join(cmd.Output, name+".pdf")
			pngPath := filepath.Join(cmd.Output, name+".png")

			if err := generatePDF(s, pdfPath); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			if cmd.NoPNG {
				continue
			}
			if err := cmd.renderPNG(pdfPath, pngPath); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
	}
	return nil
}

func generatePDF(s testcases.Scene, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(s.Width),
		URy: float64(s.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; scenes assume top-left.
	// Apply Y-axis flip.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(s.Height)})

	d := newPDFDrawer(page, s.Width, s.Height)
	cd := testcases.Coverage(d)
	cd.Clear(d.background)
	s.Draw(cd)

	return page.Close()
}

func (cmd *GenPDF) renderPNG(pdfPath, pngPath string) error {
	// Render PDF to PNG using Ghostscript
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	c := exec.Command(
		cmd.GS, "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}
