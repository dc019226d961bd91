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
	"fmt"
	"iter"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

func quadAt(p0, p1, p2 vec.Vec2, t float64) vec.Vec2 {
	s := 1 - t
	return p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
}

func cubicAt(p0, p1, p2, p3 vec.Vec2, t float64) vec.Vec2 {
	s := 1 - t
	return p0.Mul(s * s * s).
		Add(p1.Mul(3 * s * s * t)).
		Add(p2.Mul(3 * s * t * t)).
		Add(p3.Mul(t * t * t))
}

// distToPolyline returns the distance from q to the nearest segment.
func distToPolyline(q vec.Vec2, segs [][2]vec.Vec2) float64 {
	best := math.Inf(1)
	for _, s := range segs {
		a, b := s[0], s[1]
		ab := b.Sub(a)
		t := 0.0
		if l2 := ab.Dot(ab); l2 > 0 {
			t = max(0, min(1, q.Sub(a).Dot(ab)/l2))
		}
		d := q.Sub(a.Add(ab.Mul(t)))
		best = min(best, d.Length())
	}
	return best
}

func segments(seq iter.Seq2[vec.Vec2, vec.Vec2]) [][2]vec.Vec2 {
	var res [][2]vec.Vec2
	for a, b := range seq {
		res = append(res, [2]vec.Vec2{a, b})
	}
	return res
}

func checkChain(t *testing.T, segs [][2]vec.Vec2, start, end vec.Vec2) {
	t.Helper()
	require.NotEmpty(t, segs)
	assert.Equal(t, start, segs[0][0])
	assert.Equal(t, end, segs[len(segs)-1][1])
	for i := 1; i < len(segs); i++ {
		assert.Equal(t, segs[i-1][1], segs[i][0], "segment %d is not connected", i)
	}
}

func TestFlattenQuadratic(t *testing.T) {
	p0 := vec.Vec2{X: 0, Y: 0}
	p1 := vec.Vec2{X: 50, Y: 100}
	p2 := vec.Vec2{X: 100, Y: 0}

	prev := 0
	for _, tol := range []float64{2, 0.5, 0.1, 0.01} {
		t.Run(fmt.Sprintf("tol=%g", tol), func(t *testing.T) {
			segs := segments(FlattenQuadratic(p0, p1, p2, tol))
			checkChain(t, segs, p0, p2)

			for i := 0; i <= 200; i++ {
				q := quadAt(p0, p1, p2, float64(i)/200)
				d := distToPolyline(q, segs)
				if d > tol {
					t.Fatalf("curve point %v is %g away from the polygon", q, d)
				}
			}
			assert.Greater(t, len(segs), prev, "smaller tolerance should give more segments")
			prev = len(segs)
		})
	}
}

func TestFlattenCubic(t *testing.T) {
	cases := [][4]vec.Vec2{
		{{X: 0, Y: 0}, {X: 30, Y: 80}, {X: 70, Y: -80}, {X: 100, Y: 0}}, // S shape
		{{X: 0, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}, {X: 100, Y: 0}}, // loop
		{{X: 0, Y: 0}, {X: 100, Y: 50}, {X: 0, Y: 50}, {X: 100, Y: 0}},   // cusp-like
	}
	for i, c := range cases {
		for _, tol := range []float64{1, 0.25, 0.05} {
			t.Run(fmt.Sprintf("%d/tol=%g", i, tol), func(t *testing.T) {
				segs := segments(FlattenCubic(c[0], c[1], c[2], c[3], tol))
				checkChain(t, segs, c[0], c[3])
				for k := 0; k <= 400; k++ {
					q := cubicAt(c[0], c[1], c[2], c[3], float64(k)/400)
					if d := distToPolyline(q, segs); d > tol {
						t.Fatalf("curve point %v is %g away from the polygon", q, d)
					}
				}
			})
		}
	}
}

func TestFlattenDegenerate(t *testing.T) {
	p := vec.Vec2{X: 3, Y: 4}
	q := vec.Vec2{X: 13, Y: 4}

	// all points equal
	segs := segments(FlattenCubic(p, p, p, p, 0.25))
	assert.Len(t, segs, 1)

	// control points on the chord
	segs = segments(FlattenQuadratic(p, vec.Vec2{X: 8, Y: 4}, q, 0.25))
	assert.Equal(t, [][2]vec.Vec2{{p, q}}, segs)
	segs = segments(FlattenCubic(p, vec.Vec2{X: 5, Y: 4}, vec.Vec2{X: 9, Y: 4}, q, 0.25))
	assert.Equal(t, [][2]vec.Vec2{{p, q}}, segs)
}

func TestFlattenRestartable(t *testing.T) {
	seq := FlattenCubic(
		vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 40},
		vec.Vec2{X: 30, Y: 40}, vec.Vec2{X: 40, Y: 0}, 0.1)

	first := segments(seq)
	second := segments(seq)
	assert.Equal(t, first, second)

	// early exit
	n := 0
	for range seq {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestFlattenDefaultTolerance(t *testing.T) {
	p0 := vec.Vec2{X: 0, Y: 0}
	p1 := vec.Vec2{X: 50, Y: 100}
	p2 := vec.Vec2{X: 100, Y: 0}

	want := segments(FlattenQuadratic(p0, p1, p2, defaultFlatness))
	for _, tol := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		assert.Equal(t, want, segments(FlattenQuadratic(p0, p1, p2, tol)), "tolerance %g", tol)
	}
}

// TestFlattenDeviceTolerance checks that the flattening tolerance is
// measured after the transformation to device space.
func TestFlattenDeviceTolerance(t *testing.T) {
	p0 := vec.Vec2{X: 0, Y: 0}
	p1 := vec.Vec2{X: 5, Y: 10}
	p2 := vec.Vec2{X: 10, Y: 0}

	count := func(m matrix.Matrix) int {
		f := newFlattener(m, 0.25)
		n := 0
		f.quad(p0, p1, p2, 0, func(a, b vec.Vec2) bool {
			n++
			return true
		})
		return n
	}

	small := count(matrix.Identity)
	large := count(matrix.Scale(20, 20))
	assert.Greater(t, large, small)
}
