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
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"log/slog"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"seehuhn.de/go/canvas"
)

// ErrMismatch is returned when a rendered scene differs too much from its
// reference image.
var ErrMismatch = errors.New("image differs from reference")

// Config controls a run of the checker.
type Config struct {
	// RefDir is the directory containing the reference images, named
	// <category>_<name>.png.
	RefDir string

	// DebugDir, if non-empty, is where comparison images for failing
	// scenes are written.
	DebugDir string

	// Verbose causes passing and skipped scenes to be logged, not only
	// failures.
	Verbose bool

	// CrashOnFailure stops the run at the first failing scene.
	CrashOnFailure bool

	// Logger receives the progress messages.  If nil, nothing is logged.
	Logger *slog.Logger
}

// Report summarises a run of the checker.
type Report struct {
	Passed  []string
	Skipped []string // scenes without reference image
	Failed  []Failure
}

// Failure describes a scene which did not match its reference.
type Failure struct {
	Name string
	Err  error
}

// Run renders the coverage of every scene and compares it with the
// reference images.  Scenes without a reference image are skipped.
//
// An error is returned if a scene cannot be rendered or compared, or if
// cfg.CrashOnFailure is set and a scene fails.
func Run(cfg Config) (*Report, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	report := &Report{}
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, s := range All[category] {
			name := FileName(category, s)

			ref, w, h, err := LoadGray(filepath.Join(cfg.RefDir, name+".png"))
			if errors.Is(err, fs.ErrNotExist) {
				report.Skipped = append(report.Skipped, name)
				if cfg.Verbose {
					logger.Info("skipped", "scene", name, "reason", "no reference image")
				}
				continue
			} else if err != nil {
				return report, fmt.Errorf("%s: %w", name, err)
			}
			if w != s.Width || h != s.Height {
				return report, fmt.Errorf("%s: reference is %dx%d, want %dx%d",
					name, w, h, s.Width, s.Height)
			}

			actual, err := Render(s)
			if err != nil {
				return report, fmt.Errorf("%s: %w", name, err)
			}

			err = Compare(ref, actual, w, h)
			if err == nil {
				report.Passed = append(report.Passed, name)
				if cfg.Verbose {
					logger.Info("passed", "scene", name)
				}
				continue
			}

			report.Failed = append(report.Failed, Failure{Name: name, Err: err})
			logger.Error("failed", "scene", name, "error", err)
			if cfg.DebugDir != "" {
				if derr := WriteDiffImage(cfg.DebugDir, name, ref, actual, w, h); derr != nil {
					logger.Warn("cannot write comparison image", "scene", name, "error", derr)
				}
			}
			if cfg.CrashOnFailure {
				return report, fmt.Errorf("%s: %w", name, err)
			}
		}
	}
	return report, nil
}

// Render draws the coverage of a scene, see [Coverage], and returns it as
// a grayscale buffer in row-major order.  Each byte is 0 for uncovered and
// 255 for covered pixels.
func Render(s Scene) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, s.Width, s.Height))
	c, err := canvas.New(img)
	if err != nil {
		return nil, err
	}

	d := Coverage(c)
	d.Clear(canvas.Black)
	s.Draw(d)

	gray := make([]byte, s.Width*s.Height)
	for y := range s.Height {
		row := img.Pix[y*img.Stride:]
		for x := range s.Width {
			gray[y*s.Width+x] = row[4*x]
		}
	}
	return gray, nil
}

// LoadGray reads a PNG file and converts it to a grayscale buffer in
// row-major order.
func LoadGray(path string) (gray []byte, width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	img, err := png.Decode(f)
	if err != nil {
		return nil, 0, 0, err
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	gray = make([]byte, w*h)

	for y := range h {
		for x := range w {
			c := color.GrayModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.Gray)
			gray[y*w+x] = c.Y
		}
	}
	return gray, w, h, nil
}

// Compare checks a rendered grayscale image against its reference.
//
// The reference images are anti-aliased, while the canvas paints every
// pixel either fully or not at all.  The images match if at least 80% of
// the pixels are identical, 95% of the pixels differ by less than 64, and
// 99% of the pixels differ by less than 128.
func Compare(expected, actual []byte, w, h int) error {
	total := w * h
	if total == 0 {
		return nil
	}
	if len(expected) < total || len(actual) < total {
		return fmt.Errorf("buffer too small for %dx%d image", w, h)
	}

	diffs := make([]int, total)
	for i := range total {
		diff := int(expected[i]) - int(actual[i])
		if diff < 0 {
			diff = -diff
		}
		diffs[i] = diff
	}
	slices.Sort(diffs)

	p80 := diffs[int(math.Round(0.80*float64(total-1)))]
	p95 := diffs[int(math.Round(0.95*float64(total-1)))]
	p99 := diffs[int(math.Round(0.99*float64(total-1)))]

	var failures []string
	if p80 > 0 {
		failures = append(failures, fmt.Sprintf("80th percentile diff is %d (want 0)", p80))
	}
	if p95 >= 64 {
		failures = append(failures, fmt.Sprintf("95th percentile diff is %d (want <64)", p95))
	}
	if p99 >= 128 {
		failures = append(failures, fmt.Sprintf("99th percentile diff is %d (want <128)", p99))
	}
	if len(failures) > 0 {
		return fmt.Errorf("%w: %s", ErrMismatch, strings.Join(failures, "; "))
	}
	return nil
}

// WriteDiffImage writes a three-panel comparison image to dir/name.png:
// the rendered image on the left, the difference in the middle (green
// where pixels are missing, red where there are too many), and the
// reference on the right.
func WriteDiffImage(dir, name string, expected, actual []byte, w, h int) (err error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, w*3, h))
	for y := range h {
		for x := range w {
			i := y*w + x

			a := actual[i]
			img.Set(x, y, color.RGBA{R: a, G: a, B: a, A: 255})

			diff := int(expected[i]) - int(actual[i])
			diffColor := color.RGBA{A: 255}
			if diff > 0 {
				diffColor.G = uint8(diff)
			} else if diff < 0 {
				diffColor.R = uint8(-diff)
			}
			img.Set(x+w, y, diffColor)

			e := expected[i]
			img.Set(x+w*2, y, color.RGBA{R: e, G: e, B: e, A: 255})
		}
	}

	f, err := os.Create(filepath.Join(dir, name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
