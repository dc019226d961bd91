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
	"slices"
)

// dashPeriod returns the length of one repetition of the dash pattern.
// Patterns of odd length repeat with on and off swapped, so that their
// period is twice the sum of the entries.  The result is 0 if the pattern
// is empty or invalid, in which case lines are drawn solid.
func dashPeriod(dash []float64) float64 {
	sum := 0.0
	for _, l := range dash {
		if !(l >= 0) || math.IsInf(l, 0) {
			return 0
		}
		sum += l
	}
	if len(dash)%2 == 1 {
		sum *= 2
	}
	return sum
}

// applyDash splits the subpaths in r.segs into dashes, which are stored
// as open runs in r.dashSegs and r.dashRuns.
//
// If a closed subpath starts and ends inside a dash, the first and last
// dash are joined into one.  Dashes of length zero are not drawn.
func (r *Plotter) applyDash(period float64) {
	r.dashSegs = r.dashSegs[:0]
	r.dashRuns = r.dashRuns[:0]

	dash := r.Dash
	length := func(i int) float64 { return dash[i%len(dash)] }

	phase := math.Mod(r.DashPhase, period)
	if phase < 0 {
		phase += period
	}
	if math.IsNaN(phase) {
		phase = 0
	}

	for _, sp := range r.subpaths {
		idx := 0
		left := phase
		for left >= length(idx) {
			left -= length(idx)
			idx++
		}
		remain := length(idx) - left
		on := idx%2 == 0
		startedOn := on
		split := false

		first := len(r.dashRuns)
		runStart := len(r.dashSegs)
		endRun := func() {
			if len(r.dashSegs) > runStart {
				r.dashRuns = append(r.dashRuns, run{start: runStart, end: len(r.dashSegs)})
			}
			runStart = len(r.dashSegs)
		}

		for _, s := range r.segs[sp.start:sp.end] {
			segLen := s.b.Sub(s.a).Length()
			pos := 0.0
			for segLen-pos > remain {
				end := pos + remain
				if on {
					r.addDashPiece(s, pos, end, segLen)
					endRun()
				}
				pos = end
				idx++
				remain = length(idx)
				on = idx%2 == 0
				runStart = len(r.dashSegs)
				split = true
			}
			if on {
				r.addDashPiece(s, pos, segLen, segLen)
			}
			remain -= segLen - pos
		}
		if on {
			endRun()
		}

		if !sp.closed || !startedOn || !on {
			continue
		}
		n := len(r.dashRuns) - first
		switch {
		case !split && n == 1:
			r.dashRuns[first].closed = true
		case n >= 2:
			// The subpath starts and ends inside a dash, so the first
			// dash continues the last one.
			head := r.dashRuns[first]
			r.dashSegs = append(r.dashSegs, r.dashSegs[head.start:head.end]...)
			r.dashRuns[len(r.dashRuns)-1].end = len(r.dashSegs)
			r.dashRuns = slices.Delete(r.dashRuns, first, first+1)
		}
	}
}

// addDashPiece appends the part of s between the distances from and to,
// measured from s.a, to r.dashSegs.
func (r *Plotter) addDashPiece(s segment, from, to, segLen float64) {
	if to-from <= zeroLengthThreshold {
		return
	}
	if from > 0 {
		s.a = s.a.Add(s.b.Sub(s.a).Mul(from / segLen))
	}
	if to < segLen {
		s.b = s.a.Add(s.t.Mul(to - from))
	}
	r.dashSegs = append(r.dashSegs, s)
}
