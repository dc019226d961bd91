// seehuhn.de/go/coverage - anti-aliased coverage masks for 2D paths
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

package coverage

import (
	"iter"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// FlattenQuadratic approximates the quadratic Bézier curve with start p0,
// control point p1 and end p2 by line segments.  Each pair yielded by the
// sequence is the start and end of one segment; consecutive segments
// share their end points.  No point of the curve is further than
// tolerance from the polygon.
//
// A non-positive tolerance selects the default of 0.25.  The sequence can
// be iterated any number of times.
func FlattenQuadratic(p0, p1, p2 vec.Vec2, tolerance float64) iter.Seq2[vec.Vec2, vec.Vec2] {
	f := newFlattener(matrix.Identity, tolerance)
	return func(yield func(vec.Vec2, vec.Vec2) bool) {
		f.quad(p0, p1, p2, 0, yield)
	}
}

// FlattenCubic approximates the cubic Bézier curve with start p0, control
// points p1, p2 and end p3 by line segments.  See [FlattenQuadratic] for
// details.
func FlattenCubic(p0, p1, p2, p3 vec.Vec2, tolerance float64) iter.Seq2[vec.Vec2, vec.Vec2] {
	f := newFlattener(matrix.Identity, tolerance)
	return func(yield func(vec.Vec2, vec.Vec2) bool) {
		f.cubic(p0, p1, p2, p3, 0, yield)
	}
}

// flattener subdivides Bézier curves at t=1/2 until every control point
// is within tolerance of the chord.  Distances are measured after
// applying the linear part of a transformation matrix, so that the
// tolerance can be given in device pixels while the curve is in user
// space.
type flattener struct {
	lin  [4]float64
	tol2 float64
}

func newFlattener(m matrix.Matrix, tolerance float64) flattener {
	if !(tolerance > 0) || math.IsInf(tolerance, 0) {
		tolerance = defaultFlatness
	}
	return flattener{
		lin:  [4]float64{m[0], m[1], m[2], m[3]},
		tol2: tolerance * tolerance,
	}
}

func (f *flattener) linear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: f.lin[0]*v.X + f.lin[2]*v.Y,
		Y: f.lin[1]*v.X + f.lin[3]*v.Y,
	}
}

// near reports whether q is within tolerance of the segment from a to b.
func (f *flattener) near(a, b, q vec.Vec2) bool {
	chord := f.linear(b.Sub(a))
	d := f.linear(q.Sub(a))

	l2 := chord.Dot(chord)
	if l2 > 0 {
		t := max(0, min(1, d.Dot(chord)/l2))
		d = d.Sub(chord.Mul(t))
	}
	return d.Dot(d) <= f.tol2
}

func (f *flattener) quad(p0, p1, p2 vec.Vec2, depth int, yield func(vec.Vec2, vec.Vec2) bool) bool {
	if depth >= maxFlattenDepth || f.near(p0, p2, p1) {
		return yield(p0, p2)
	}

	a := midpoint(p0, p1)
	b := midpoint(p1, p2)
	m := midpoint(a, b) // on the curve
	return f.quad(p0, a, m, depth+1, yield) &&
		f.quad(m, b, p2, depth+1, yield)
}

func (f *flattener) cubic(p0, p1, p2, p3 vec.Vec2, depth int, yield func(vec.Vec2, vec.Vec2) bool) bool {
	if depth >= maxFlattenDepth || (f.near(p0, p3, p1) && f.near(p0, p3, p2)) {
		return yield(p0, p3)
	}

	a := midpoint(p0, p1)
	b := midpoint(p1, p2)
	c := midpoint(p2, p3)
	ab := midpoint(a, b)
	bc := midpoint(b, c)
	m := midpoint(ab, bc) // on the curve
	return f.cubic(p0, a, ab, m, depth+1, yield) &&
		f.cubic(m, bc, c, p3, depth+1, yield)
}

func midpoint(a, b vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// flattenPath walks p in absolute coordinates, replacing curves by line
// segments.  The callbacks receive the start of each subpath, each line
// segment, and the end of each subpath (closed says whether CmdClose ended
// it).  Every line segment belongs to the most recent subpath.
func (r *Plotter) flattenPath(p *Path, moveTo func(vec.Vec2), lineTo func(a, b vec.Vec2), end func(closed bool)) {
	f := newFlattener(r.CTM, r.Flatness)
	seg := func(a, b vec.Vec2) bool {
		lineTo(a, b)
		return true
	}

	var current, start vec.Vec2
	open := false
	for cmd, pts := range p.All() {
		switch cmd {
		case CmdMoveTo:
			if open {
				end(false)
			}
			current, start = pts[0], pts[0]
			open = true
			moveTo(start)
		case CmdLineTo:
			lineTo(current, pts[0])
			current = pts[0]
		case CmdQuadTo:
			f.quad(current, pts[0], pts[1], 0, seg)
			current = pts[1]
		case CmdCubicTo:
			f.cubic(current, pts[0], pts[1], pts[2], 0, seg)
			current = pts[2]
		case CmdClose:
			if current != start {
				lineTo(current, start)
			}
			current = start
			open = false
			end(true)
		}
	}
	if open {
		end(false)
	}
}
