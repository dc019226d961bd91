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
)

// edge is a line segment in device coordinates.  The winding direction is
// the sign of y1-y0, which is never zero.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
}

func (e *edge) top() float64    { return min(e.y0, e.y1) }
func (e *edge) bottom() float64 { return max(e.y0, e.y1) }

// xAt returns the x coordinate of the (extended) edge at height y.
func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// edgeBox is the device-space bounding box of the collected edges.
type edgeBox struct {
	empty                  bool
	xMin, xMax, yMin, yMax float64
}

func (r *Plotter) resetEdges() {
	r.edges = r.edges[:0]
	r.box = edgeBox{empty: true}
}

// addEdge transforms the segment from a to b to device space and adds it
// to the edge list.  Horizontal segments and segments with non-finite
// coordinates or slope are dropped.
func (r *Plotter) addEdge(a, b vec.Vec2) {
	m := &r.CTM
	x0 := m[0]*a.X + m[2]*a.Y + m[4]
	y0 := m[1]*a.X + m[3]*a.Y + m[5]
	x1 := m[0]*b.X + m[2]*b.Y + m[4]
	y1 := m[1]*b.X + m[3]*b.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold || !isFinite(x0, y0, x1, y1, dy) {
		return
	}
	dxdy := (x1 - x0) / dy
	if math.IsInf(dxdy, 0) {
		// x1-x0 can overflow even when the slope is representable.
		dxdy = x1/dy - x0/dy
	}
	if !isFinite(dxdy) {
		return
	}

	r.edges = append(r.edges, edge{
		x0: x0, y0: y0,
		x1: x1, y1: y1,
		dxdy: dxdy,
	})

	lx, ux := min(x0, x1), max(x0, x1)
	ly, uy := min(y0, y1), max(y0, y1)
	if r.box.empty {
		r.box = edgeBox{xMin: lx, xMax: ux, yMin: ly, yMax: uy}
		return
	}
	r.box.xMin = min(r.box.xMin, lx)
	r.box.xMax = max(r.box.xMax, ux)
	r.box.yMin = min(r.box.yMin, ly)
	r.box.yMax = max(r.box.yMax, uy)
}

// edgeBounds returns the pixel range touched by the edges, clamped to
// the clip rectangle.  The ranges are half-open.  The last return value is
// false if no pixel is touched.
func (r *Plotter) edgeBounds() (xMin, xMax, yMin, yMax int, ok bool) {
	if r.box.empty {
		return 0, 0, 0, 0, false
	}

	xMin = clampFloor(r.box.xMin, r.clip.LLx, r.clip.URx)
	xMax = clampFloor(r.box.xMax, r.clip.LLx, r.clip.URx) + 1
	yMin = clampFloor(r.box.yMin, r.clip.LLy, r.clip.URy)
	yMax = clampFloor(r.box.yMax, r.clip.LLy, r.clip.URy) + 1
	xMax = min(xMax, int(r.clip.URx))
	yMax = min(yMax, int(r.clip.URy))

	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// clampFloor returns floor(v), restricted to [lo, hi].
func clampFloor(v, lo, hi float64) int {
	return int(math.Floor(max(lo, min(hi, v))))
}

func isFinite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
