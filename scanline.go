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
	"cmp"
	"math"
	"slices"

	"github.com/chewxy/math32"
)

// Coverage accumulation:
//
// Every pixel has two accumulators.  cover is the signed vertical extent
// of the edges crossing the pixel; edges going down count positive.
// area is cover weighted by the part of the pixel to the right of the
// edge.  Scanning a row from left to right,
//
//	raw[i] = sum(cover[j], j < i) + area[i]
//
// is the signed area of the shape within pixel i, and the fill rule turns
// raw into a coverage value in [0, 1].

// accumulateEdge adds the part of e within the row [y, y+1) to the cover
// and area buffers, which hold the columns [xMin, xMax).  Contributions
// left of xMin go to column 0, contributions right of the buffer are
// dropped.  The return value reports whether e intersects the row.
func accumulateEdge(e *edge, y int, cover, area []float32, xMin, xMax int) bool {
	top := max(float64(y), e.top())
	bot := min(float64(y+1), e.bottom())
	if bot <= top {
		return false
	}

	sign := 1.0
	if e.y1 < e.y0 {
		sign = -1
	}
	xt := e.xAt(top)
	xb := e.xAt(bot)
	if math.IsNaN(xt) || math.IsNaN(xb) {
		return false
	}

	// Column indices are clamped to [xMin-1, xMax], which keeps the walk
	// short for edges far outside the buffer.
	lo, hi := float64(xMin-1), float64(xMax)
	if math.IsInf(xt, 0) {
		xt = max(lo, min(hi, xt))
	}
	if math.IsInf(xb, 0) {
		xb = max(lo, min(hi, xb))
	}
	ct := int(math.Floor(max(lo, min(hi, xt))))
	cb := int(math.Floor(max(lo, min(hi, xb))))

	if ct == cb {
		deposit(cover, area, ct, sign*(bot-top), (xt+xb)/2, xMin, xMax)
		return true
	}

	step := 1
	if cb < ct {
		step = -1
	}
	dydx := (bot - top) / (xb - xt)
	xPrev, yPrev := xt, top
	for c := ct; ; c += step {
		xNext, yNext := xb, bot
		if c != cb {
			if step > 0 {
				xNext = float64(c + 1)
			} else {
				xNext = float64(c)
			}
			yNext = top + (xNext-xt)*dydx
		}
		deposit(cover, area, c, sign*(yNext-yPrev), (xPrev+xNext)/2, xMin, xMax)
		if c == cb {
			break
		}
		xPrev, yPrev = xNext, yNext
	}
	return true
}

// deposit adds a piece of an edge with signed height dy and mean x
// position xMid, lying in column col.
func deposit(cover, area []float32, col int, dy, xMid float64, xMin, xMax int) {
	switch {
	case col < xMin:
		cover[0] += float32(dy)
		area[0] += float32(dy)
	case col < xMax:
		i := col - xMin
		frac := min(1, max(0, xMid-float64(col)))
		cover[i] += float32(dy)
		area[i] += float32(dy * (1 - frac))
	}
}

// integrateNonZero replaces cover by the coverage values for the nonzero
// winding rule.
func integrateNonZero(cover, area []float32) {
	var carry float32
	for i := range cover {
		raw := carry + area[i]
		carry += cover[i]
		cover[i] = min(math32.Abs(raw), 1)
	}
}

// integrateEvenOdd replaces cover by the coverage values for the even-odd
// rule.
func integrateEvenOdd(cover, area []float32) {
	var carry float32
	for i := range cover {
		raw := carry + area[i]
		carry += cover[i]
		m := math32.Mod(math32.Abs(raw), 2)
		cover[i] = 1 - math32.Abs(1-m)
	}
}

func integrate(rule FillRule, cover, area []float32) {
	if rule == EvenOdd {
		integrateEvenOdd(cover, area)
	} else {
		integrateNonZero(cover, area)
	}
}

// trimZeros returns the part of coverage between the first and last
// non-zero value, together with its offset.  The result is empty if all
// values are zero.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	hi := len(coverage)
	for hi > lo && coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// grow returns buf resized to n elements, all zero.
func grow[T any](buf []T, n int) []T {
	buf = slices.Grow(buf[:0], n)[:n]
	clear(buf)
	return buf
}

// fillSmallPath rasterizes the collected edges using full 2D cover and
// area buffers for the bounding box, so that every edge is visited once.
func (r *Plotter) fillSmallPath(xMin, xMax, yMin, yMax int, rule FillRule) {
	w := xMax - xMin
	h := yMax - yMin
	r.cover = grow(r.cover, w*h)
	r.area = grow(r.area, w*h)
	r.rowTouched = grow(r.rowTouched, h)

	for i := range r.edges {
		e := &r.edges[i]
		y0 := max(int(math.Floor(e.top())), yMin)
		y1 := min(int(math.Floor(e.bottom()))+1, yMax)
		for y := y0; y < y1; y++ {
			row := y - yMin
			k := row * w
			if accumulateEdge(e, y, r.cover[k:k+w], r.area[k:k+w], xMin, xMax) {
				r.rowTouched[row] = true
			}
		}
	}

	for row, touched := range r.rowTouched {
		if !touched {
			continue
		}
		k := row * w
		coverage := r.cover[k : k+w]
		integrate(rule, coverage, r.area[k:k+w])
		if span, off := trimZeros(coverage); len(span) > 0 {
			r.emitRow(yMin+row, xMin+off, span)
		}
	}
}

// fillLargePath rasterizes the collected edges one row at a time, keeping
// a list of the edges which intersect the current row.
func (r *Plotter) fillLargePath(xMin, xMax, yMin, yMax int, rule FillRule) {
	w := xMax - xMin
	r.cover = grow(r.cover, w)
	r.area = grow(r.area, w)

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.top(), b.top())
	})

	r.active = r.active[:0]
	next := 0
	for next < len(r.edges) && r.edges[next].bottom() <= float64(yMin) {
		next++
	}

	for y := yMin; y < yMax; y++ {
		yTop := float64(y)
		yBot := float64(y + 1)

		for next < len(r.edges) && r.edges[next].top() < yBot {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			if next == len(r.edges) {
				break
			}
			continue
		}

		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.bottom() <= yTop {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			if accumulateEdge(e, y, r.cover, r.area, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrate(rule, r.cover, r.area)
		if span, off := trimZeros(r.cover); len(span) > 0 {
			r.emitRow(y, xMin+off, span)
		}
		clear(r.cover)
		clear(r.area)
	}
}
