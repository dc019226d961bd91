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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
)

var fillCases = []TestCase{
	{
		Name:   "triangle_nonzero",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "triangle_evenodd",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "star_nonzero",
		Path:   star(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "star_evenodd",
		Path:   star(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "rectangle",
		Path:   rectangle(10, 10, 44, 44),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "open_triangle",
		Path:   (&path.Data{}).MoveTo(pt(8, 40)).LineTo(pt(32, 4)).LineTo(pt(56, 40)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "ring_nonzero",
		Path:   ring(32, 32, 26, 12),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "ring_evenodd",
		Path:   ring(32, 32, 26, 12),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "overlap_nonzero",
		Path:   concat(rectangle(8, 8, 40, 40), rectangle(24, 24, 56, 56)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "overlap_evenodd",
		Path:   concat(rectangle(8, 8, 40, 40), rectangle(24, 24, 56, 56)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "subpixel_offset_25",
		Path:   rectangle(10.25, 10.25, 30.25, 30.25),
		Width:  40,
		Height: 40,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "subpixel_offset_50",
		Path:   rectangle(10.5, 10.5, 30.5, 30.5),
		Width:  40,
		Height: 40,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "thin_sliver",
		Path:   rectangle(4, 20.2, 60, 20.4),
		Width:  64,
		Height: 40,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "partly_outside",
		Path:   triangle(-20, 70, 32, -10, 90, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "many_small_shapes",
		Path:   grid(6, 6, 64, 64, 3),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
}

// largeCases have bounding boxes of more than 65536 pixels, so that the
// rasterizer uses the active edge list by default.
var largeCases = []TestCase{
	{
		Name:   "rectangle",
		Path:   rectangle(50, 50, 462, 462),
		Width:  512,
		Height: 512,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "ring_evenodd",
		Path:   ring(256, 256, 200, 100),
		Width:  512,
		Height: 512,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "diamond",
		Path:   (&path.Data{}).MoveTo(pt(256, 70)).LineTo(pt(440, 256)).LineTo(pt(256, 442)).LineTo(pt(72, 256)).Close(),
		Width:  512,
		Height: 512,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "grid",
		Path:   grid(16, 16, 512, 512, 4),
		Width:  512,
		Height: 512,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "clipped",
		Path:   rectangle(-100, 100, 612, 400),
		Width:  512,
		Height: 512,
		Op:     Fill{Rule: NonZero},
	},
}

func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// star builds a self-intersecting five-pointed star.
func star(cx, cy, r float64) *path.Data {
	p := &path.Data{}
	for i := range 5 {
		k := (2 * i) % 5
		angle := float64(k)*2*math.Pi/5 - math.Pi/2
		v := pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
		if i == 0 {
			p = p.MoveTo(v)
		} else {
			p = p.LineTo(v)
		}
	}
	return p.Close()
}

// ring builds two concentric squares with the same orientation.
func ring(cx, cy, outer, inner float64) *path.Data {
	return concat(
		rectangle(cx-outer, cy-outer, cx+outer, cy+outer),
		rectangle(cx-inner, cy-inner, cx+inner, cy+inner))
}

// grid builds rows×cols separate rectangles covering a width×height area.
func grid(rows, cols, width, height int, gap float64) *path.Data {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)

	p := &path.Data{}
	for row := range rows {
		for col := range cols {
			p = concat(p, rectangle(
				float64(col)*cellW+gap, float64(row)*cellH+gap,
				float64(col+1)*cellW-gap, float64(row+1)*cellH-gap))
		}
	}
	return p
}

// concat joins the subpaths of several paths into one path.
func concat(ps ...*path.Data) *path.Data {
	res := &path.Data{}
	for _, p := range ps {
		res.Cmds = append(res.Cmds, p.Cmds...)
		res.Coords = append(res.Coords, p.Coords...)
	}
	return res
}
