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

// Command check compares the canvas output for all test scenes with the
// reference images written by genpdf.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/tdewolff/argp"

	"seehuhn.de/go/canvas/testcases"
)

// Check holds the command line options.
type Check struct {
	Verbose bool   `short:"v" desc:"Report passing and skipped scenes"`
	Crash   bool   `short:"x" desc:"Stop at the first failing scene"`
	Debug   string `short:"d" default:"" desc:"Directory for comparison images of failing scenes"`
	RefDir  string `index:"0" default:"testdata/reference" desc:"Directory with reference images"`
}

func main() {
	root := argp.NewCmd(&Check{}, "Compare the canvas output with reference images")
	root.Parse()
	root.PrintHelp()
}

// Run implements the command.
func (cmd *Check) Run() error {
	level := slog.LevelWarn
	if cmd.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	report, err := testcases.Run(testcases.Config{
		RefDir:         cmd.RefDir,
		DebugDir:       cmd.Debug,
		Verbose:        cmd.Verbose,
		CrashOnFailure: cmd.Crash,
		Logger:         logger,
	})
	if report != nil {
		fmt.Printf("%d passed, %d failed, %d skipped\n",
			len(report.Passed), len(report.Failed), len(report.Skipped))
	}
	if err != nil {
		return err
	}
	if len(report.Failed) > 0 {
		return fmt.Errorf("%d scenes differ from their references", len(report.Failed))
	}
	return nil
}
