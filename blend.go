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

import "fmt"

// BlendMode selects the Porter-Duff operator used to combine a source
// colour S with the destination pixel D.  All equations operate on
// premultiplied components; Sa and Da denote the source and destination
// alpha.
//
// The zero value is BlendSrcOver.
type BlendMode uint8

const (
	BlendSrcOver  BlendMode = iota // S + D*(1-Sa)
	BlendSrc                       // S
	BlendClear                     // 0
	BlendDst                       // D
	BlendDstOver                   // S*(1-Da) + D
	BlendSrcIn                     // S*Da
	BlendDstIn                     // D*Sa
	BlendSrcOut                    // S*(1-Da)
	BlendDstOut                    // D*(1-Sa)
	BlendSrcATop                   // S*Da + D*(1-Sa)
	BlendDstATop                   // S*(1-Da) + D*Sa
	BlendXor                       // S*(1-Da) + D*(1-Sa)
)

// String returns the conventional name of the blend mode.
func (m BlendMode) String() string {
	switch m {
	case BlendSrcOver:
		return "src-over"
	case BlendSrc:
		return "src"
	case BlendClear:
		return "clear"
	case BlendDst:
		return "dst"
	case BlendDstOver:
		return "dst-over"
	case BlendSrcIn:
		return "src-in"
	case BlendDstIn:
		return "dst-in"
	case BlendSrcOut:
		return "src-out"
	case BlendDstOut:
		return "dst-out"
	case BlendSrcATop:
		return "src-atop"
	case BlendDstATop:
		return "dst-atop"
	case BlendXor:
		return "xor"
	default:
		return fmt.Sprintf("BlendMode(%d)", int(m))
	}
}

// factors returns the Porter-Duff weights (Fs, Fd) for the given source
// and destination alpha, so that the result is S*Fs + D*Fd.
// Unknown modes behave like BlendSrcOver.
func (m BlendMode) factors(sa, da float64) (fs, fd float64) {
	switch m {
	case BlendSrc:
		return 1, 0
	case BlendClear:
		return 0, 0
	case BlendDst:
		return 0, 1
	case BlendDstOver:
		return 1 - da, 1
	case BlendSrcIn:
		return da, 0
	case BlendDstIn:
		return 0, sa
	case BlendSrcOut:
		return 1 - da, 0
	case BlendDstOut:
		return 0, 1 - sa
	case BlendSrcATop:
		return da, 1 - sa
	case BlendDstATop:
		return 1 - da, sa
	case BlendXor:
		return 1 - da, 1 - sa
	default:
		return 1, 1 - sa
	}
}

// blend combines the premultiplied source s with the destination d.
func (m BlendMode) blend(s, d pixel) pixel {
	fs, fd := m.factors(s.a, d.a)
	return pixel{
		r: s.r*fs + d.r*fd,
		g: s.g*fs + d.g*fd,
		b: s.b*fs + d.b*fd,
		a: s.a*fs + d.a*fd,
	}
}

// dependsOnDst reports whether the result of m, for a source pixel with
// alpha sa, depends on the destination pixel.
func (m BlendMode) dependsOnDst(sa float64) bool {
	switch m {
	case BlendSrc, BlendClear:
		return false
	case BlendSrcOver:
		return sa < 1
	default:
		return true
	}
}
