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
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// segment is a flattened piece of a stroked path in user space.
// t is the unit tangent, n is t rotated by 90° counter-clockwise.
type segment struct {
	a, b vec.Vec2
	t, n vec.Vec2
}

func (s segment) reversed() segment {
	return segment{a: s.b, b: s.a, t: s.t.Mul(-1), n: s.n.Mul(-1)}
}

// run is a range of segments forming one subpath (or one dash).
type run struct {
	start, end int
	closed     bool
}

// Stroke clears the mask and draws the outline of p with the pen width
// of p.  Corners use r.Join and ends of open subpaths use r.Cap.
//
// A non-positive pen width, and paths without any segment of positive
// length, leave the mask blank.
func (r *Plotter) Stroke(p *Path) *Mask {
	r.mask.Clear()
	r.resetEdges()

	if p == nil {
		return r.mask
	}
	d := p.PenWidth / 2
	if !(d > 0) || math.IsInf(d, 0) {
		return r.mask
	}

	r.collectSegments(p)
	segs, runs := r.segs, r.subpaths
	if period := dashPeriod(r.Dash); period > 0 {
		r.applyDash(period)
		segs, runs = r.dashSegs, r.dashRuns
	}

	r.outline = r.outline[:0]
	r.rings = r.rings[:0]
	for _, sp := range runs {
		r.strokeRun(segs[sp.start:sp.end], sp.closed, d)
	}

	for i, start := range r.rings {
		end := len(r.outline)
		if i+1 < len(r.rings) {
			end = r.rings[i+1]
		}
		ring := r.outline[start:end]
		prev := ring[len(ring)-1]
		for _, pt := range ring {
			r.addEdge(prev, pt)
			prev = pt
		}
	}

	r.rasterize(NonZero)
	return r.mask
}

// collectSegments flattens p into r.segs, grouped by subpath in
// r.subpaths.  Zero-length segments are skipped, and subpaths without
// segments are dropped.
func (r *Plotter) collectSegments(p *Path) {
	r.segs = r.segs[:0]
	r.subpaths = r.subpaths[:0]

	start := 0
	r.flattenPath(p,
		func(vec.Vec2) {
			start = len(r.segs)
		},
		func(a, b vec.Vec2) {
			v := b.Sub(a)
			l := v.Length()
			if !(l > zeroLengthThreshold) || math.IsInf(l, 0) {
				return
			}
			t := v.Mul(1 / l)
			r.segs = append(r.segs, segment{
				a: a, b: b,
				t: t, n: vec.Vec2{X: -t.Y, Y: t.X},
			})
		},
		func(closed bool) {
			if len(r.segs) > start {
				r.subpaths = append(r.subpaths, run{start: start, end: len(r.segs), closed: closed})
			}
		})
}

// strokeRun adds the outline of one subpath to r.outline.
//
// An open subpath becomes a single polygon: the +n side, the end cap, the
// -n side (walked backwards) and the start cap.  A closed subpath becomes
// two rings of opposite orientation.
func (r *Plotter) strokeRun(segs []segment, closed bool, d float64) {
	r.rev = r.rev[:0]
	for i := len(segs) - 1; i >= 0; i-- {
		r.rev = append(r.rev, segs[i].reversed())
	}

	if closed {
		r.beginRing()
		r.side(segs, true, d)
		r.endRing()
		r.beginRing()
		r.side(r.rev, true, d)
		r.endRing()
		return
	}

	r.beginRing()
	r.side(segs, false, d)
	last := segs[len(segs)-1]
	r.addCap(last.b, last.t, last.n, d)
	r.side(r.rev, false, d)
	first := r.rev[len(r.rev)-1]
	r.addCap(first.b, first.t, first.n, d)
	r.endRing()
}

func (r *Plotter) beginRing() {
	r.rings = append(r.rings, len(r.outline))
}

// endRing discards the current ring if it cannot enclose any area.
func (r *Plotter) endRing() {
	k := len(r.rings) - 1
	if len(r.outline)-r.rings[k] < 3 {
		r.outline = r.outline[:r.rings[k]]
		r.rings = r.rings[:k]
	}
}

// side walks along segs at distance d on the +n side.  For closed
// subpaths the corner between the last and the first segment is included
// and the ring is closed implicitly.
func (r *Plotter) side(segs []segment, closed bool, d float64) {
	if !closed {
		r.outline = append(r.outline, segs[0].a.Add(segs[0].n.Mul(d)))
	}
	for i, s := range segs {
		switch {
		case i+1 < len(segs):
			r.corner(s, segs[i+1], d)
		case closed:
			r.corner(s, segs[0], d)
		default:
			r.outline = append(r.outline, s.b.Add(s.n.Mul(d)))
		}
	}
}

// corner connects the offset of s to the offset of next, on the +n side.
func (r *Plotter) corner(s, next segment, d float64) {
	p := s.b
	p1 := p.Add(s.n.Mul(d))
	p2 := p.Add(next.n.Mul(d))
	cos := s.t.Dot(next.t)
	sin := s.t.X*next.t.Y - s.t.Y*next.t.X

	switch {
	case cos < cuspCosineThreshold:
		r.outline = append(r.outline, p1)
		r.addCap(p, s.t, s.n, d)
		r.outline = append(r.outline, p2)
	case math.Abs(sin) < collinearityThreshold:
		r.outline = append(r.outline, p1, p2)
	case sin > 0:
		// Inner corner: pivoting through the vertex keeps the winding
		// number of the covered area positive, even when the offset
		// lines do not intersect.
		r.outline = append(r.outline, p1, p, p2)
	default:
		r.outline = append(r.outline, p1)
		r.addJoin(p, s, next, cos, sin, d)
		r.outline = append(r.outline, p2)
	}
}

// addJoin adds the points strictly between the offsets of s and next at
// an outer corner.
func (r *Plotter) addJoin(p vec.Vec2, s, next segment, cos, sin, d float64) {
	switch r.Join {
	case graphics.LineJoinRound:
		r.addArc(p, d, s.n, math.Atan2(sin, cos))
	case graphics.LineJoinMiter:
		// For a turn by angle α, the miter tip is at distance
		// d/cos(α/2) from the vertex, and cos(α/2) = sqrt((1+cos α)/2).
		half := math.Sqrt((1 + cos) / 2)
		if half == 0 || !(1/half <= r.MiterLimit) {
			return
		}
		bisector := s.n.Add(next.n)
		bisector = bisector.Mul(1 / bisector.Length())
		r.outline = append(r.outline, p.Add(bisector.Mul(d/half)))
	}
}

// addCap adds the points strictly between p+n·d and p-n·d at the end of a
// stroke going in direction t.
func (r *Plotter) addCap(p, t, n vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addArc(p, d, n, -math.Pi)
	case graphics.LineCapSquare:
		ext := p.Add(t.Mul(d))
		r.outline = append(r.outline, ext.Add(n.Mul(d)), ext.Sub(n.Mul(d)))
	}
}

// addArc adds the inner points of a circular arc around center, starting
// in direction dir (a unit vector) and turning by sweep radians
// (positive is counter-clockwise).  The number of points is chosen so that
// the chords stay within r.Flatness of the arc in device space.
func (r *Plotter) addArc(center vec.Vec2, radius float64, dir vec.Vec2, sweep float64) {
	f := newFlattener(r.CTM, r.Flatness)
	devRadius := max(
		f.linear(vec.Vec2{X: radius}).Length(),
		f.linear(vec.Vec2{Y: radius}).Length())
	tol := math.Sqrt(f.tol2)
	if !(devRadius > tol) {
		return
	}

	// A chord spanning angle θ deviates from the circle by r(1-cos(θ/2)).
	step := 2 * math.Acos(1-tol/devRadius)
	n := int(math.Ceil(math.Abs(sweep) / step))
	n = min(max(n, 1), 1<<maxFlattenDepth)

	for i := 1; i < n; i++ {
		sin, cos := math.Sincos(sweep * float64(i) / float64(n))
		v := vec.Vec2{
			X: dir.X*cos - dir.Y*sin,
			Y: dir.X*sin + dir.Y*cos,
		}
		r.outline = append(r.outline, center.Add(v.Mul(radius)))
	}
}
