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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"
)

var strokeCases = []TestCase{
	{
		Name:   "line_butt",
		Path:   line(10, 32, 54, 32),
		Width:  64,
		Height: 64,
		Op:     Stroke{PenWidth: 8, Cap: graphics.LineCapButt, MiterLimit: 10},
	},
	{
		Name:   "line_round",
		Path:   line(10, 32, 54, 32),
		Width:  64,
		Height: 64,
		Op:     Stroke{PenWidth: 8, Cap: graphics.LineCapRound, MiterLimit: 10},
	},
	{
		Name:   "line_square",
		Path:   line(10, 32, 54, 32),
		Width:  64,
		Height: 64,
		Op:     Stroke{PenWidth: 8, Cap: graphics.LineCapSquare, MiterLimit: 10},
	},
	{
		Name:   "line_diagonal",
		Path:   line(8, 56, 56, 8),
		Width:  64,
		Height: 64,
		Op:     Stroke{PenWidth: 3, Cap: graphics.LineCapButt, MiterLimit: 10},
	},
	{
		Name:   "corner_miter",
		Path:   corner(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Stroke{PenWidth: 6, Join: graphics.LineJoinMiter, MiterLimit: 10},
	},
	{
		Name:   "corner_round",
		Path:   corner(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Stroke{PenWidth: 6, Join: graphics.LineJoinRound, MiterLimit: 10},
	},
	{
		Name:   "corner_bevel",
		Path:   corner(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Stroke{PenWidth: 6, Join: graphics.LineJoinBevel, MiterLimit: 10},
	},
	{
		Name:   "sharp_miter_limited",
		Path:   corner(10, 60, 32, 4, 40, 60),
		Width:  64,
		Height: 64,
		Op:     Stroke{PenWidth: 4, Join: graphics.LineJoinMiter, MiterLimit: 2},
	},
	{
		Name:   "closed_square",
		Path:   rectangle(14, 14, 50, 50),
		Width:  64,
		Height: 64,
		Op:     Stroke{PenWidth: 6, Join: graphics.LineJoinMiter, MiterLimit: 10},
	},
	{
		Name:   "closed_triangle_round",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Stroke{PenWidth: 5, Join: graphics.LineJoinRound, MiterLimit: 10},
	},
	{
		Name:   "cusp",
		Path:   (&path.Data{}).MoveTo(pt(10, 32)).LineTo(pt(50, 32)).LineTo(pt(20, 32)),
		Width:  64,
		Height: 64,
		Op:     Stroke{PenWidth: 6, Cap: graphics.LineCapRound, MiterLimit: 10},
	},
	{
		Name:   "zigzag_thick",
		Path:   zigzag(6, 40, 52, 8, 7),
		Width:  64,
		Height: 64,
		Op:     Stroke{PenWidth: 7, Join: graphics.LineJoinMiter, MiterLimit: 4},
	},
	{
		Name:   "two_subpaths",
		Path:   concat(line(8, 16, 56, 16), line(8, 48, 56, 48)),
		Width:  64,
		Height: 64,
		Op:     Stroke{PenWidth: 4, Cap: graphics.LineCapSquare, MiterLimit: 10},
	},
}

func line(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2))
}

func corner(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3))
}

// zigzag builds an open polyline with n segments, alternating between
// y=top and y=bottom.
func zigzag(x0, bottom, top, step float64, n int) *path.Data {
	p := (&path.Data{}).MoveTo(pt(x0, bottom))
	for i := 1; i <= n; i++ {
		y := bottom
		if i%2 == 1 {
			y = top
		}
		p = p.LineTo(pt(x0+float64(i)*step, y))
	}
	return p
}
