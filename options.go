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

import "log/slog"

// Option configures a Canvas during creation.
type Option func(*options)

type options struct {
	flatness float64
	logger   *slog.Logger
}

func defaultOptions() options {
	return options{
		flatness: defaultFlatness,
		logger:   Logger(),
	}
}

// WithFlatness sets the curve flattening tolerance in device pixels.
// Non-positive values are ignored.
func WithFlatness(f float64) Option {
	return func(o *options) {
		if f > 0 {
			o.flatness = f
		}
	}
}

// WithLogger sets the logger used by the canvas.  A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
