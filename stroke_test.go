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
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/coverage/testcases"
)

func isBlank(m *Mask) bool {
	return !slices.ContainsFunc(m.Pix(), func(v byte) bool { return v != 0 })
}

func TestStrokeBlank(t *testing.T) {
	line := func(w float64) *Path {
		return NewBuilder().PenWidth(w).MoveTo(10, 10).LineTo(50, 30).Build()
	}
	cases := []struct {
		name string
		path *Path
	}{
		{"nil", nil},
		{"empty", &Path{PenWidth: 2}},
		{"move_only", NewBuilder().PenWidth(4).MoveTo(20, 20).Build()},
		{"zero_length", NewBuilder().PenWidth(4).MoveTo(20, 20).LineTo(20, 20).Close().Build()},
		{"zero_width", line(0)},
		{"negative_width", line(-3)},
		{"nan_width", line(math.NaN())},
		{"inf_width", line(math.Inf(1))},
	}

	p, err := NewPlotter(64, 64)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p.Stroke(line(4))
			if m := p.Stroke(c.path); !isBlank(m) {
				t.Error("mask is not blank")
			}
		})
	}
}

// TestStrokeCaps checks the three cap styles on a horizontal line with
// integer coordinates.
func TestStrokeCaps(t *testing.T) {
	line := NewBuilder().PenWidth(4).MoveTo(10, 20).LineTo(50, 20).Build()

	cases := []struct {
		name     string
		cap      graphics.LineCapStyle
		area     float64
		tol      float64
		left     int // first covered column in row 19
		right    int // last covered column in row 19
		leftFull bool
	}{
		{"butt", graphics.LineCapButt, 160, 0.01, 10, 49, true},
		{"square", graphics.LineCapSquare, 176, 0.01, 8, 51, true},
		{"round", graphics.LineCapRound, 160 + 4*math.Pi, 2, 8, 51, false},
	}

	p, err := NewPlotter(64, 40)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p.Cap = c.cap
			m := p.Stroke(line)

			if area := maskArea(m); math.Abs(area-c.area) > c.tol {
				t.Errorf("area %.2f, want %.2f", area, c.area)
			}
			for y := 18; y < 22; y++ {
				for x := 12; x < 48; x++ {
					if got := m.Value(x, y); got != 255 {
						t.Fatalf("pixel (%d, %d) = %d, want 255", x, y, got)
					}
				}
			}
			for x := range 64 {
				if got := m.Value(x, 17) | m.Value(x, 22); got != 0 {
					t.Fatalf("pixel outside the pen in column %d", x)
				}
			}
			if m.Value(c.left-1, 19) != 0 || m.Value(c.right+1, 19) != 0 {
				t.Errorf("coverage outside columns %d to %d", c.left, c.right)
			}
			if m.Value(c.left, 19) == 0 || m.Value(c.right, 19) == 0 {
				t.Errorf("columns %d and %d not covered", c.left, c.right)
			}
			if full := m.Value(c.left, 19) == 255; full != c.leftFull {
				t.Errorf("column %d: full coverage is %t, want %t", c.left, full, c.leftFull)
			}
		})
	}
}

// TestStrokeClosedSquare checks that a closed subpath has no caps and
// leaves the inside of the outline empty.
func TestStrokeClosedSquare(t *testing.T) {
	square := NewBuilder().PenWidth(4).
		MoveTo(10, 10).LineTo(50, 10).LineTo(50, 50).LineTo(10, 50).Close().
		Build()

	// pixel (8, 8) is the tip of the outer corner
	cases := []struct {
		name       string
		join       graphics.LineJoinStyle
		area       float64
		tol        float64
		cornerLow  uint8
		cornerHigh uint8
	}{
		{"miter", graphics.LineJoinMiter, 44*44 - 36*36, 0.01, 255, 255},
		{"bevel", graphics.LineJoinBevel, 44*44 - 36*36 - 4*2, 0.01, 0, 0},
		{"round", graphics.LineJoinRound, 44*44 - 36*36 - 4*(4-math.Pi), 2.5, 1, 127},
	}

	p, err := NewPlotter(60, 60)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p.Join = c.join
			m := p.Stroke(square)

			if area := maskArea(m); math.Abs(area-c.area) > c.tol {
				t.Errorf("area %.2f, want %.2f", area, c.area)
			}
			if got := m.Value(30, 30); got != 0 {
				t.Errorf("center = %d, want 0", got)
			}
			for _, x := range []int{8, 11, 48, 51} {
				if got := m.Value(x, 30); got != 255 {
					t.Errorf("pixel (%d, 30) = %d, want 255", x, got)
				}
			}
			for _, x := range []int{7, 12, 47, 52} {
				if got := m.Value(x, 30); got != 0 {
					t.Errorf("pixel (%d, 30) = %d, want 0", x, got)
				}
			}
			if got := m.Value(8, 8); got < c.cornerLow || got > c.cornerHigh {
				t.Errorf("corner = %d, want %d to %d", got, c.cornerLow, c.cornerHigh)
			}
		})
	}
}

// TestStrokeJoins compares the tip of a sharp corner for the three join
// styles.
func TestStrokeJoins(t *testing.T) {
	corner := NewBuilder().PenWidth(4).MoveTo(10, 50).LineTo(32, 14).LineTo(54, 50).Build()

	p, err := NewPlotter(64, 64)
	if err != nil {
		t.Fatal(err)
	}
	tip := make(map[graphics.LineJoinStyle]uint8)
	for _, join := range []graphics.LineJoinStyle{graphics.LineJoinMiter, graphics.LineJoinRound, graphics.LineJoinBevel} {
		p.Join = join
		m := p.Stroke(corner)

		// inside the corner, below the vertex
		for _, x := range []int{31, 32} {
			if got := m.Value(x, 15); got != 255 {
				t.Errorf("join %d: pixel (%d, 15) = %d, want 255", join, x, got)
			}
		}
		tip[join] = m.Value(31, 12)
	}

	if tip[graphics.LineJoinMiter] != 255 {
		t.Errorf("miter tip = %d, want 255", tip[graphics.LineJoinMiter])
	}
	if !(tip[graphics.LineJoinBevel] < 64) {
		t.Errorf("bevel tip = %d, want < 64", tip[graphics.LineJoinBevel])
	}
	if !(tip[graphics.LineJoinBevel] < tip[graphics.LineJoinRound] && tip[graphics.LineJoinRound] < 255) {
		t.Errorf("round tip = %d, want between bevel and miter", tip[graphics.LineJoinRound])
	}
}

func TestMiterLimit(t *testing.T) {
	// The corner turns by about 160°, so that the miter is about 5.6 times
	// as long as the pen width.
	sharp := NewBuilder().PenWidth(2).MoveTo(5, 40).LineTo(60, 30).LineTo(5, 20).Build()

	p, err := NewPlotter(80, 60)
	if err != nil {
		t.Fatal(err)
	}
	p.Join = graphics.LineJoinMiter

	p.MiterLimit = 10
	long := maskArea(p.Stroke(sharp))
	p.MiterLimit = 4
	limited := maskArea(p.Stroke(sharp))
	p.Join = graphics.LineJoinBevel
	bevel := maskArea(p.Stroke(sharp))

	if !(long > limited+1) {
		t.Errorf("miter area %.2f, limited miter area %.2f", long, limited)
	}
	if math.Abs(limited-bevel) > 0.01 {
		t.Errorf("limited miter area %.2f differs from bevel area %.2f", limited, bevel)
	}
}

// TestStrokeCusp checks that a path which doubles back on itself is
// covered everywhere, and gets a cap at the turning point.
func TestStrokeCusp(t *testing.T) {
	cusp := NewBuilder().PenWidth(4).MoveTo(10, 20).LineTo(50, 20).LineTo(30, 20).Build()

	p, err := NewPlotter(64, 40)
	if err != nil {
		t.Fatal(err)
	}
	m := p.Stroke(cusp)
	for x := 10; x < 50; x++ {
		if got := m.Value(x, 19); got != 255 {
			t.Fatalf("butt: pixel (%d, 19) = %d, want 255", x, got)
		}
	}
	if got := m.Value(50, 19); got != 0 {
		t.Errorf("butt: pixel (50, 19) = %d, want 0", got)
	}

	p.Cap = graphics.LineCapRound
	m = p.Stroke(cusp)
	if got := m.Value(50, 19); got == 0 {
		t.Error("round: no cap at the cusp")
	}
}

// TestStrokeTransform checks that the pen width is given in user space.
func TestStrokeTransform(t *testing.T) {
	line := NewBuilder().PenWidth(2).MoveTo(2, 10).LineTo(8, 10).Build()

	p, err := NewPlotter(40, 20)
	if err != nil {
		t.Fatal(err)
	}
	p.CTM = matrix.Scale(4, 1)

	m := p.Stroke(line)
	if area := maskArea(m); math.Abs(area-48) > 0.01 {
		t.Errorf("butt: area %.2f, want 48", area)
	}

	// round caps become half ellipses with radii 4 and 1
	p.Cap = graphics.LineCapRound
	m = p.Stroke(line)
	if area := maskArea(m); math.Abs(area-(48+4*math.Pi)) > 1.5 {
		t.Errorf("round: area %.2f, want %.2f", area, 48+4*math.Pi)
	}
}

func TestStrokeFish(t *testing.T) {
	body := FromData(testcases.Fish(), 3)
	eye := FromData(testcases.FishEye(), 2)

	p, err := NewPlotter(128, 128)
	if err != nil {
		t.Fatal(err)
	}
	filled := p.Fill(body, NonZero).Clone()
	outline := p.Stroke(body).Clone()
	eyeMask := p.Stroke(eye)

	if isBlank(outline) || isBlank(eyeMask) {
		t.Fatal("blank stroke")
	}
	// the outline is thinner than the body
	if !(maskArea(outline) < maskArea(filled)) {
		t.Errorf("outline area %.1f, body area %.1f", maskArea(outline), maskArea(filled))
	}
	// the eye crosses at (28, 52)
	if got := eyeMask.Value(27, 51); got != 255 {
		t.Errorf("eye center = %d, want 255", got)
	}
}

func TestDashPeriod(t *testing.T) {
	cases := []struct {
		dash []float64
		want float64
	}{
		{nil, 0},
		{[]float64{}, 0},
		{[]float64{0, 0}, 0},
		{[]float64{5, 5}, 10},
		{[]float64{5}, 10},
		{[]float64{3, 2, 1}, 12},
		{[]float64{0, 8}, 8},
		{[]float64{4, -1}, 0},
		{[]float64{4, math.NaN()}, 0},
		{[]float64{4, math.Inf(1)}, 0},
	}
	for _, c := range cases {
		if got := dashPeriod(c.dash); got != c.want {
			t.Errorf("dashPeriod(%v) = %g, want %g", c.dash, got, c.want)
		}
	}
}

func TestDashRuns(t *testing.T) {
	line := NewBuilder().MoveTo(0, 10).LineTo(40, 10).Build()
	square := NewBuilder().
		MoveTo(10, 10).LineTo(50, 10).LineTo(50, 50).LineTo(10, 50).Close().
		Build()

	cases := []struct {
		name   string
		path   *Path
		dash   []float64
		phase  float64
		runs   int
		closed bool // whether the first run is closed
	}{
		{"equal", line, []float64{5, 5}, 0, 4, false},
		{"single", line, []float64{5}, 0, 4, false},
		{"phase", line, []float64{5, 5}, 5, 4, false},
		{"phase_negative", line, []float64{5, 5}, -5, 4, false},
		{"phase_large", line, []float64{5, 5}, 1005, 4, false},
		{"uneven", line, []float64{10, 5, 5, 5}, 0, 3, false},
		{"zero_length", line, []float64{0, 8}, 0, 0, false},
		{"long_dash", line, []float64{100, 5}, 0, 1, false},
		{"closed_merged", square, []float64{30, 10}, 20, 4, false},
		{"closed_unsplit", square, []float64{1000, 10}, 0, 1, true},
	}

	p, err := NewPlotter(64, 64)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p.Dash = c.dash
			p.DashPhase = c.phase
			p.collectSegments(c.path)
			p.applyDash(dashPeriod(c.dash))

			if len(p.dashRuns) != c.runs {
				t.Fatalf("got %d dashes, want %d", len(p.dashRuns), c.runs)
			}
			if c.runs > 0 && p.dashRuns[0].closed != c.closed {
				t.Errorf("closed = %t, want %t", p.dashRuns[0].closed, c.closed)
			}
			for _, r := range p.dashRuns {
				if r.end <= r.start {
					t.Errorf("empty dash %v", r)
				}
			}
		})
	}
}

func TestDashCoverage(t *testing.T) {
	line := NewBuilder().PenWidth(2).MoveTo(0, 10).LineTo(40, 10).Build()

	cases := []struct {
		name  string
		dash  []float64
		phase float64
		on    []int // covered columns in row 10
		off   []int
	}{
		{"equal", []float64{5, 5}, 0, []int{0, 4, 10, 14, 30, 34}, []int{5, 9, 15, 35, 39}},
		{"phase", []float64{5, 5}, 5, []int{5, 9, 15, 35, 39}, []int{0, 4, 10, 14}},
		{"phase_negative", []float64{5, 5}, -5, []int{5, 9, 15, 35, 39}, []int{0, 4, 10, 14}},
		{"three", []float64{4, 2, 6}, 0, []int{0, 3, 6, 11, 16, 17, 24}, []int{4, 5, 12, 15, 18, 23}},
		{"invalid", []float64{5, -5}, 0, []int{0, 7, 20, 39}, nil},
		{"all_zero", []float64{0, 0}, 0, []int{0, 7, 20, 39}, nil},
	}

	p, err := NewPlotter(48, 20)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p.Dash = c.dash
			p.DashPhase = c.phase
			m := p.Stroke(line)
			for _, x := range c.on {
				if got := m.Value(x, 10); got != 255 {
					t.Errorf("pixel (%d, 10) = %d, want 255", x, got)
				}
			}
			for _, x := range c.off {
				if got := m.Value(x, 10); got != 0 {
					t.Errorf("pixel (%d, 10) = %d, want 0", x, got)
				}
			}
		})
	}
}

// TestDashClosedPath checks that a dash running through the start of a
// closed subpath is joined, rather than capped, at the start point.
func TestDashClosedPath(t *testing.T) {
	square := NewBuilder().PenWidth(4).
		MoveTo(10, 10).LineTo(50, 10).LineTo(50, 50).LineTo(10, 50).Close().
		Build()

	p, err := NewPlotter(60, 60)
	if err != nil {
		t.Fatal(err)
	}
	p.Dash = []float64{30, 10}
	p.DashPhase = 20
	m := p.Stroke(square)
	if got := m.Value(8, 8); got != 255 {
		t.Errorf("start corner = %d, want 255", got)
	}

	// a dash longer than the perimeter gives the solid outline
	solid, err := NewPlotter(60, 60)
	if err != nil {
		t.Fatal(err)
	}
	want := solid.Stroke(square)
	p.Dash = []float64{1000, 10}
	p.DashPhase = 0
	got := p.Stroke(square)
	if !slices.Equal(got.Pix(), want.Pix()) {
		t.Error("long dash differs from solid outline")
	}
}
