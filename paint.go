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

// Paint describes how the pixels covered by a shape are coloured.
//
// Paint values are copied into every draw call; the canvas keeps no
// reference to the paint or its shader after the call returns.
type Paint struct {
	// Color is used for every covered pixel if Shader is nil.  If a shader
	// is set, Color is only used as the fallback when the shader cannot be
	// sampled because the current transformation is singular.
	Color Color

	// Mode is the compositing operator.  The zero value is BlendSrcOver.
	Mode BlendMode

	// Shader, if non-nil, supplies a colour for every covered pixel.
	Shader Shader
}

// NewPaint returns a paint which fills with the given colour using
// source-over compositing.
func NewPaint(c Color) Paint {
	return Paint{Color: c}
}
