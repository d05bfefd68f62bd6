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
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke describes the pen used by [Canvas.StrokePath].
type Stroke struct {
	// Width is the line width in user-space units.  Strokes with
	// non-positive width draw nothing.
	Width float64

	// Cap is the style for the end points of open subpaths.
	Cap graphics.LineCapStyle

	// Join is the style for corners.
	Join graphics.LineJoinStyle

	// MiterLimit caps the length of miter joins, relative to the line
	// width.  Values below 1 select the default limit of 10.
	MiterLimit float64

	// Dash gives alternating lengths of dashes and gaps, in user-space
	// units, starting with a dash.  A pattern with an odd number of
	// entries is repeated twice to form one period.  Nil, or a pattern
	// with negative, non-finite or only zero entries, draws a solid line.
	Dash []float64

	// DashPhase is the distance into the dash pattern at which the
	// pattern starts at the beginning of every subpath.
	DashPhase float64
}

// NewStroke returns a stroke with the given width, butt caps and miter
// joins.
func NewStroke(width float64) Stroke {
	return Stroke{
		Width:      width,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,
	}
}

// IsDashed reports whether s has a dash pattern which produces a dashed
// line.
func (s Stroke) IsDashed() bool {
	return dashPeriod(s.Dash) > 0
}

// StrokeOutline returns a path whose nonzero winding fill is the area
// covered when p is stroked with s.  The outline consists of one closed,
// positively oriented contour for every line segment, join and cap, so
// that overlapping pieces never cancel.  Curves and round joins are
// approximated to within tolerance, given in user-space units.  If s has
// a dash pattern, only the dashes are outlined.
//
// All coordinates are in user space.
func StrokeOutline(p *path.Data, s Stroke, tolerance float64) *path.Data {
	st := &stroker{
		Stroke: s,
		hw:     s.Width / 2,
		tol:    tolerance,
		out:    &path.Data{},
	}
	if st.MiterLimit < 1 {
		st.MiterLimit = defaultMiterLimit
	}
	if !(st.tol > 0) {
		st.tol = defaultFlatness
	}
	if p == nil || !(s.Width > 0) {
		return st.out
	}
	st.dashPeriod = dashPeriod(s.Dash)
	st.strokePath(p)
	return st.out
}

// stroker builds stroke outlines.
type stroker struct {
	Stroke
	hw  float64 // half the line width
	tol float64 // flattening tolerance in user space

	out *path.Data

	pts     []vec.Vec2 // vertices of the current subpath, after flattening
	contour []vec.Vec2 // scratch space for addContour

	// dashPeriod is the length of one period of the dash pattern, or 0
	// for solid lines.
	dashPeriod float64
	loop       []vec.Vec2 // closed subpath with the first vertex repeated
	dash       []vec.Vec2 // vertices of the current dash
	firstDash  []vec.Vec2 // first dash of a closed subpath
}

// strokePath walks the path, flattens curves, and strokes every subpath.
func (st *stroker) strokePath(p *path.Data) {
	var current, subpath vec.Vec2
	sawDrawingCmd := false // tracks if we saw LineTo/QuadTo/CubeTo (for degenerate detection)

	addPoint := func(_, to vec.Vec2) {
		last := st.pts[len(st.pts)-1]
		if to.Sub(last).Length() > zeroLengthThreshold {
			st.pts = append(st.pts, to)
		}
	}

	st.pts = append(st.pts[:0], current)
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if sawDrawingCmd {
				st.strokeSubpath(false)
			}
			current = p.Coords[coordIdx]
			subpath = current
			st.pts = append(st.pts[:0], current)
			sawDrawingCmd = false
			coordIdx++

		case path.CmdLineTo:
			addPoint(current, p.Coords[coordIdx])
			current = p.Coords[coordIdx]
			sawDrawingCmd = true
			coordIdx++

		case path.CmdQuadTo:
			flattenQuadratic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], st.tol, addPoint)
			current = p.Coords[coordIdx+1]
			sawDrawingCmd = true
			coordIdx += 2

		case path.CmdCubeTo:
			flattenCubic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2], st.tol, addPoint)
			current = p.Coords[coordIdx+2]
			sawDrawingCmd = true
			coordIdx += 3

		case path.CmdClose:
			if sawDrawingCmd {
				st.strokeSubpath(true)
			}
			current = subpath
			st.pts = append(st.pts[:0], current)
			sawDrawingCmd = false
		}
	}
	if sawDrawingCmd {
		st.strokeSubpath(false)
	}
}

// strokeSubpath adds the outline of the subpath in st.pts.
func (st *stroker) strokeSubpath(closed bool) {
	pts := st.pts
	if closed && len(pts) > 1 && pts[len(pts)-1].Sub(pts[0]).Length() <= zeroLengthThreshold {
		pts = pts[:len(pts)-1]
	}

	if st.dashPeriod > 0 && len(pts) > 1 {
		st.dashPolyline(pts, closed)
		return
	}
	st.strokePolyline(pts, closed)
}

// strokePolyline adds the outline of the polyline through pts.
func (st *stroker) strokePolyline(pts []vec.Vec2, closed bool) {
	if len(pts) == 1 {
		// zero-length subpath: only round and square caps are visible
		st.addDot(pts[0], vec.Vec2{X: 1, Y: 0})
		return
	}

	n := len(pts)
	numSegs := n - 1
	if closed {
		numSegs = n
	}
	for i := range numSegs {
		st.addSegment(pts[i], pts[(i+1)%n])
	}

	if closed {
		for i := range n {
			prev := pts[(i+n-1)%n]
			next := pts[(i+1)%n]
			st.addJoin(pts[i], direction(prev, pts[i]), direction(pts[i], next))
		}
		return
	}

	for i := 1; i < n-1; i++ {
		st.addJoin(pts[i], direction(pts[i-1], pts[i]), direction(pts[i], pts[i+1]))
	}
	st.addCap(pts[0], direction(pts[1], pts[0]))
	st.addCap(pts[n-1], direction(pts[n-2], pts[n-1]))
}

// dashPolyline splits the polyline through pts into dashes and strokes
// each dash as an open polyline.  For closed subpaths, a dash running
// through the start point is joined with the first dash.
func (st *stroker) dashPolyline(pts []vec.Vec2, closed bool) {
	if closed {
		st.loop = append(append(st.loop[:0], pts...), pts[0])
		pts = st.loop
	}

	pattern := st.Dash
	idx, remaining, on := dashStart(pattern, st.DashPhase, st.dashPeriod)
	startsOn := on
	split := false // whether a dash boundary has been passed
	st.firstDash = st.firstDash[:0]

	// finish ends the current dash at the point q.
	finish := func(q, T vec.Vec2) {
		st.dash = append(st.dash, q)
		if closed && startsOn && !split {
			st.firstDash = append(st.firstDash, st.dash...)
		} else {
			st.strokeDash(st.dash, T)
		}
	}

	st.dash = st.dash[:0]
	if on {
		st.dash = append(st.dash, pts[0])
	}
	var T vec.Vec2
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		d := b.Sub(a)
		segLen := d.Length()
		T = d.Mul(1 / segLen)

		pos := 0.0
		for segLen-pos > remaining {
			pos += remaining
			q := a.Add(d.Mul(pos / segLen))
			if on {
				finish(q, T)
				st.dash = st.dash[:0]
			} else {
				st.dash = append(st.dash[:0], q)
			}
			split = true
			on = !on
			idx = (idx + 1) % len(pattern)
			remaining = pattern[idx]
		}
		remaining -= segLen - pos
		if on {
			st.dash = append(st.dash, b)
		}
	}

	switch {
	case closed && !split && on:
		// the whole subpath lies inside a single dash
		st.strokePolyline(pts[:len(pts)-1], true)
	case closed && startsOn && on:
		// the last dash continues into the first one
		st.dash = append(st.dash, st.firstDash[1:]...)
		st.strokeDash(st.dash, T)
	default:
		if on {
			st.strokeDash(st.dash, T)
		}
		if len(st.firstDash) > 0 {
			st.strokeDash(st.firstDash, direction(pts[0], pts[1]))
		}
	}
}

// strokeDash strokes a single dash.  Repeated vertices are removed first.
// A dash of zero length is drawn as a dot, using the tangent T of the
// underlying path to orient square caps.
func (st *stroker) strokeDash(pts []vec.Vec2, T vec.Vec2) {
	if len(pts) == 0 {
		return
	}
	out := pts[:1]
	for _, p := range pts[1:] {
		if p.Sub(out[len(out)-1]).Length() > zeroLengthThreshold {
			out = append(out, p)
		}
	}
	if len(out) == 1 {
		st.addDot(out[0], T)
		return
	}
	st.strokePolyline(out, false)
}

// dashPeriod returns the length of one period of the dash pattern, or 0 if
// the pattern does not describe a valid dashed line.
func dashPeriod(pattern []float64) float64 {
	sum := 0.0
	for _, d := range pattern {
		if !(d >= 0) || math.IsInf(d, 0) {
			return 0
		}
		sum += d
	}
	if len(pattern)%2 == 1 {
		sum *= 2
	}
	if !(sum > 0) || math.IsInf(sum, 0) {
		return 0
	}
	return sum
}

// dashStart returns the state of the dash pattern at the start of a
// subpath: the index of the current pattern entry, the length remaining in
// this entry, and whether the entry is a dash rather than a gap.
func dashStart(pattern []float64, phase, period float64) (idx int, remaining float64, on bool) {
	if math.IsInf(phase, 0) || math.IsNaN(phase) {
		phase = 0
	}
	phase = math.Mod(phase, period)
	if phase < 0 {
		phase += period
	}

	on = true
	for phase > 0 && phase >= pattern[idx] {
		phase -= pattern[idx]
		idx = (idx + 1) % len(pattern)
		on = !on
	}
	return idx, pattern[idx] - phase, on
}

// addDot adds the caps of a zero-length line at P with tangent T.
// Butt caps draw nothing.
func (st *stroker) addDot(P, T vec.Vec2) {
	switch st.Cap {
	case graphics.LineCapRound:
		st.addDisk(P)
	case graphics.LineCapSquare:
		st.addCap(P, T)
		st.addCap(P, T.Mul(-1))
	}
}

// addSegment adds the rectangle covered by the line segment a-b.
func (st *stroker) addSegment(a, b vec.Vec2) {
	nrm := normal(direction(a, b)).Mul(st.hw)
	st.addContour(a.Add(nrm), b.Add(nrm), b.Sub(nrm), a.Sub(nrm))
}

// addJoin adds the join at P, where the tangent changes from T1 to T2.
func (st *stroker) addJoin(P, T1, T2 vec.Vec2) {
	cross := T1.X*T2.Y - T1.Y*T2.X
	cosTheta := T1.Dot(T2)
	if math.Abs(cross) < collinearityThreshold && cosTheta > 0 {
		return // no corner
	}

	if st.Join == graphics.LineJoinRound {
		st.addDisk(P)
		return
	}
	if cross == 0 {
		return // the path doubles back; bevel and miter have no area
	}

	// The outer side of the corner is opposite to the turn direction.
	side := 1.0
	if cross > 0 {
		side = -1
	}
	N1 := normal(T1).Mul(side * st.hw)
	N2 := normal(T2).Mul(side * st.hw)

	if st.Join == graphics.LineJoinMiter {
		// The miter length relative to the line width is 1/cos(θ/2),
		// where θ is the angle between the tangents.
		cosHalf := math.Sqrt((1 + cosTheta) / 2)
		if cosHalf > 0 && 1/cosHalf <= st.MiterLimit {
			tip := P.Add(N1.Add(N2).Mul(1 / (1 + cosTheta)))
			st.addContour(P, P.Add(N1), tip, P.Add(N2))
			return
		}
	}
	st.addContour(P, P.Add(N1), P.Add(N2))
}

// addCap adds a line cap at P.  T is the unit tangent pointing away from
// the line.
func (st *stroker) addCap(P, T vec.Vec2) {
	switch st.Cap {
	case graphics.LineCapRound:
		st.addDisk(P)
	case graphics.LineCapSquare:
		nrm := normal(T).Mul(st.hw)
		ext := T.Mul(st.hw)
		st.addContour(P.Add(nrm), P.Add(nrm).Add(ext), P.Sub(nrm).Add(ext), P.Sub(nrm))
	}
}

// addDisk adds a polygon approximating the disk of radius st.hw around
// center.
func (st *stroker) addDisk(center vec.Vec2) {
	// Choose the number of vertices so that the sagitta of each chord is
	// at most st.tol.
	n := minArcSegments
	if st.tol < st.hw {
		k := math.Ceil(math.Pi / math.Acos(1-st.tol/st.hw))
		n = max(n, int(min(k, maxArcSegments)))
	}

	st.contour = st.contour[:0]
	for i := range n {
		s, c := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		st.contour = append(st.contour, vec.Vec2{X: center.X + st.hw*c, Y: center.Y + st.hw*s})
	}
	st.emitContour()
}

// addContour adds a closed polygon to the outline.
func (st *stroker) addContour(pts ...vec.Vec2) {
	st.contour = append(st.contour[:0], pts...)
	st.emitContour()
}

// emitContour appends st.contour to the outline, reversing it if needed
// so that all contours have positive orientation.  Contours without area
// are dropped.
func (st *stroker) emitContour() {
	pts := st.contour
	area := 0.0
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		area += p.X*q.Y - q.X*p.Y
	}
	if !(math.Abs(area) > 0) {
		return
	}
	if area < 0 {
		slices.Reverse(pts)
	}

	st.out = st.out.MoveTo(pts[0])
	for _, p := range pts[1:] {
		st.out = st.out.LineTo(p)
	}
	st.out = st.out.Close()
}

// direction returns the unit vector pointing from a to b.
func direction(a, b vec.Vec2) vec.Vec2 {
	d := b.Sub(a)
	return d.Mul(1 / d.Length())
}

// normal returns T rotated by 90 degrees.
func normal(T vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -T.Y, Y: T.X}
}

// Stroke parameters and tolerances.
const (
	// defaultMiterLimit is the default miter limit, matching PDF/PostScript.
	// This converts joins to bevels when the interior angle is less than
	// approximately 11.5 degrees.
	defaultMiterLimit = 10.0

	// zeroLengthThreshold is the minimum length for a stroke segment.
	// Segments shorter than this are skipped.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is used to detect nearly collinear segments
	// where no join is needed.
	collinearityThreshold = 1e-6

	// minArcSegments and maxArcSegments bound the number of vertices used
	// for round caps and joins.
	minArcSegments = 8
	maxArcSegments = 1024
)
