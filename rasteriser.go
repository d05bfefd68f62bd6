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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/canvas/affine"
)

// Pixel-centre containment:
//
// A pixel with index i has its centre at i+0.5.  An interval [lo, hi] in
// device coordinates covers the pixel iff
//
//	lo < i+0.5 && i+0.5 <= hi
//
// so that shapes which share a boundary never paint the same pixel twice
// and never leave a gap between them.  The same rule decides which rows an
// edge is active on and which columns a span covers.

// edge represents a non-horizontal line segment in device coordinates.
// The end points are ordered so that y0 < y1.
type edge struct {
	x0, y0 float64 // upper end point
	x1, y1 float64 // lower end point
	dxdy   float64 // (x1-x0)/(y1-y0), precomputed for x-intercept calculation
	dir    int     // +1 if the segment was drawn downwards, -1 if upwards
	seq    int     // insertion order, used to break ties between crossings
}

// crossing is the intersection of an active edge with a scanline.
type crossing struct {
	x   float64
	dir int
	seq int
}

// spanFunc receives the pixels [xMin, xMax) of row y which are inside a
// shape.  Spans are already clipped to the bitmap.
type spanFunc func(y, xMin, xMax int)

// rasteriser converts shapes to horizontal spans of covered pixels.
// Internal buffers grow as needed but never shrink, so that drawing
// reaches a steady state without allocations.
//
// A rasteriser is not safe for concurrent use.
type rasteriser struct {
	// ctm maps user space to device space.
	ctm matrix.Matrix

	// width and height give the clip rectangle [0,width)×[0,height) in
	// device pixels.
	width, height int

	// flatness is the curve flattening tolerance in device pixels.
	flatness float64

	// Internal buffers (reused across calls)
	edges     []edge     // edge list for the current shape (device coordinates)
	active    []int      // indices of active edges
	crossings []crossing // crossings of the active edges with the current row
	corners   []vec.Vec2 // corners of a transformed rectangle

	// Edge collection state (used by resetEdges/addDeviceEdge)
	edgeBBoxFirst bool    // true if no edges added yet
	edgeDevYMin   float64 // vertical extent in device space
	edgeDevYMax   float64
}

func newRasteriser(width, height int, flatness float64) *rasteriser {
	return &rasteriser{
		ctm:      matrix.Identity,
		width:    width,
		height:   height,
		flatness: flatness,
	}
}

// coverStart returns the index of the first pixel whose centre lies
// strictly beyond v, clamped to [0, limit].  The pixels covered by an
// interval [lo, hi] are [coverStart(lo), coverStart(hi)).
func coverStart(v float64, limit int) int {
	if !(v > -0.5) { // also catches NaN
		return 0
	}
	if v >= float64(limit)+0.5 {
		return limit
	}
	return int(math.Floor(v-0.5)) + 1
}

// fillRect fills a rectangle given in user space.
// If the CTM maps the rectangle to an axis-aligned rectangle, the covered
// pixels are computed directly.  Otherwise the transformed rectangle is
// filled as a convex polygon.
func (r *rasteriser) fillRect(rc rect.Rect, emit spanFunc) {
	if !affine.IsAxisAligned(r.ctm) {
		r.corners = append(r.corners[:0],
			vec.Vec2{X: rc.LLx, Y: rc.LLy},
			vec.Vec2{X: rc.URx, Y: rc.LLy},
			vec.Vec2{X: rc.URx, Y: rc.URy},
			vec.Vec2{X: rc.LLx, Y: rc.URy},
		)
		r.fillConvex(r.corners, emit)
		return
	}

	p0 := affine.Apply(r.ctm, vec.Vec2{X: rc.LLx, Y: rc.LLy})
	p1 := affine.Apply(r.ctm, vec.Vec2{X: rc.URx, Y: rc.URy})

	xMin := coverStart(min(p0.X, p1.X), r.width)
	xMax := coverStart(max(p0.X, p1.X), r.width)
	yMin := coverStart(min(p0.Y, p1.Y), r.height)
	yMax := coverStart(max(p0.Y, p1.Y), r.height)
	if xMin >= xMax {
		return
	}
	for y := yMin; y < yMax; y++ {
		emit(y, xMin, xMax)
	}
}

// fillConvex fills a convex polygon given in user space.
// Convexity is not checked.  For a convex polygon every row meets the
// boundary in exactly two places, so the span runs from the leftmost to the
// rightmost crossing; for other polygons this fills the horizontal hull of
// each row.
func (r *rasteriser) fillConvex(pts []vec.Vec2, emit spanFunc) {
	if len(pts) < 3 {
		return
	}

	r.resetEdges()
	prev := affine.Apply(r.ctm, pts[len(pts)-1])
	for _, p := range pts {
		cur := affine.Apply(r.ctm, p)
		r.addDeviceEdge(prev, cur)
		prev = cur
	}

	yMin, yMax, ok := r.rowRange()
	if !ok {
		return // degenerate polygon
	}

	r.scanRows(yMin, yMax, func(y int, xs []crossing) {
		left, right := xs[0].x, xs[0].x
		for _, c := range xs[1:] {
			left = min(left, c.x)
			right = max(right, c.x)
		}
		xMin := coverStart(left, r.width)
		xMax := coverStart(right, r.width)
		if xMin < xMax {
			emit(y, xMin, xMax)
		}
	})
}

// fillPath fills the path using the nonzero winding rule.
// All subpaths are closed implicitly.
func (r *rasteriser) fillPath(p *path.Data, emit spanFunc) {
	r.collectPathEdges(p)

	yMin, yMax, ok := r.rowRange()
	if !ok {
		return // empty or degenerate path
	}

	r.scanRows(yMin, yMax, func(y int, xs []crossing) {
		slices.SortFunc(xs, func(a, b crossing) int {
			if c := cmp.Compare(a.x, b.x); c != 0 {
				return c
			}
			return cmp.Compare(a.seq, b.seq)
		})

		winding := 0
		var left float64
		for _, c := range xs {
			before := winding
			winding += c.dir
			switch {
			case before == 0 && winding != 0:
				left = c.x
			case before != 0 && winding == 0:
				xMin := coverStart(left, r.width)
				xMax := coverStart(c.x, r.width)
				if xMin < xMax {
					emit(y, xMin, xMax)
				}
			}
		}
	})
}

// collectPathEdges walks the path, transforms to device space, flattens
// curves and builds the edge list.
func (r *rasteriser) collectPathEdges(p *path.Data) {
	r.resetEdges()

	// Path state, in device space.  A path which does not start with
	// MoveTo starts at the origin of user space.
	current := affine.Apply(r.ctm, vec.Vec2{})
	subpath := current
	open := false

	closeSubpath := func() {
		if open && current != subpath {
			r.addDeviceEdge(current, subpath)
		}
		current = subpath
		open = false
	}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			closeSubpath()
			current = affine.Apply(r.ctm, p.Coords[coordIdx])
			subpath = current
			coordIdx++

		case path.CmdLineTo:
			next := affine.Apply(r.ctm, p.Coords[coordIdx])
			r.addDeviceEdge(current, next)
			current = next
			open = true
			coordIdx++

		case path.CmdQuadTo:
			c := affine.Apply(r.ctm, p.Coords[coordIdx])
			next := affine.Apply(r.ctm, p.Coords[coordIdx+1])
			r.flattenQuadratic(current, c, next, r.addDeviceEdge)
			current = next
			open = true
			coordIdx += 2

		case path.CmdCubeTo:
			c1 := affine.Apply(r.ctm, p.Coords[coordIdx])
			c2 := affine.Apply(r.ctm, p.Coords[coordIdx+1])
			next := affine.Apply(r.ctm, p.Coords[coordIdx+2])
			r.flattenCubic(current, c1, c2, next, r.addDeviceEdge)
			current = next
			open = true
			coordIdx += 3

		case path.CmdClose:
			closeSubpath()
		}
	}
	closeSubpath()
}

// resetEdges clears the edge list, preserving its capacity.
func (r *rasteriser) resetEdges() {
	r.edges = r.edges[:0]
	r.edgeBBoxFirst = true
}

// addDeviceEdge adds an edge given in device coordinates.
// Horizontal edges never cross a row centre and are skipped.
func (r *rasteriser) addDeviceEdge(p0, p1 vec.Vec2) {
	dy := p1.Y - p0.Y
	if !(math.Abs(dy) >= horizontalEdgeThreshold) { // also catches NaN
		return
	}

	dir := 1
	if dy < 0 {
		p0, p1 = p1, p0
		dir = -1
	}

	r.edges = append(r.edges, edge{
		x0: p0.X, y0: p0.Y,
		x1: p1.X, y1: p1.Y,
		dxdy: (p1.X - p0.X) / (p1.Y - p0.Y),
		dir:  dir,
		seq:  len(r.edges),
	})

	if r.edgeBBoxFirst {
		r.edgeDevYMin = p0.Y
		r.edgeDevYMax = p1.Y
		r.edgeBBoxFirst = false
	} else {
		r.edgeDevYMin = min(r.edgeDevYMin, p0.Y)
		r.edgeDevYMax = max(r.edgeDevYMax, p1.Y)
	}
}

// rowRange returns the rows [yMin, yMax) which may contain covered pixels,
// clamped to the clip rectangle.
func (r *rasteriser) rowRange() (yMin, yMax int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, false
	}
	yMin = coverStart(r.edgeDevYMin, r.height)
	yMax = coverStart(r.edgeDevYMax, r.height)
	return yMin, yMax, yMin < yMax
}

// scanRows walks the rows [yMin, yMax) with an active edge list.
// For every row where at least one edge is active, fn is called with the
// crossings of the active edges with the row centre.  An edge is active on
// row y iff y0 < y+0.5 <= y1.  The crossings slice is only valid for the
// duration of the call, and fn may reorder it.
func (r *rasteriser) scanRows(yMin, yMax int, fn func(y int, xs []crossing)) {
	// Sort edges by upper end point; insertion order is kept for ties.
	slices.SortStableFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})

	r.active = r.active[:0]
	nextEdge := 0

	for y := yMin; y < yMax; y++ {
		yc := float64(y) + 0.5

		// Add edges that start above this row centre
		for nextEdge < len(r.edges) && r.edges[nextEdge].y0 < yc {
			r.active = append(r.active, nextEdge)
			nextEdge++
		}

		r.crossings = r.crossings[:0]
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]

			if e.y1 < yc {
				// Remove from active list (swap with last)
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}

			r.crossings = append(r.crossings, crossing{
				x:   e.x0 + e.dxdy*(yc-e.y0),
				dir: e.dir,
				seq: e.seq,
			})
			i++
		}

		if len(r.crossings) == 0 {
			if nextEdge == len(r.edges) && len(r.active) == 0 {
				return // no edges left
			}
			continue
		}
		fn(y, r.crossings)
	}
}

// Default values for rasteriser parameters.
const (
	// defaultFlatness is the default curve flattening tolerance in device
	// pixels.  Values of 0.25-1.0 are typical; 0.25 is below the threshold
	// of visual perception.
	defaultFlatness = 0.25
)

// Numerical tolerances for the rasteriser.
const (
	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to contribute crossings.  Edges with |y1 - y0| below this threshold
	// are skipped as horizontal.
	horizontalEdgeThreshold = 1e-10

	// maxSubdivisionDepth limits the recursion when flattening curves.
	// A curve is split into at most 2^maxSubdivisionDepth line segments.
	maxSubdivisionDepth = 16
)
