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

// sceneCases are small drawings combining several features.
var sceneCases = []TestCase{
	{
		Name:   "fish_body",
		Path:   Fish(),
		Width:  128,
		Height: 128,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "fish_outline",
		Path:   Fish(),
		Width:  128,
		Height: 128,
		Op:     Stroke{PenWidth: 3, MiterLimit: 10},
	},
	{
		Name:   "fish_eye",
		Path:   FishEye(),
		Width:  128,
		Height: 128,
		Op:     Stroke{PenWidth: 2, MiterLimit: 10},
	},
	{
		Name:   "triangle",
		Path:   triangle(63, 48, 21, 48, 42, 16),
		Width:  84,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "quad_hook",
		Path:   (&path.Data{}).MoveTo(pt(0, 16)).QuadTo(pt(100, 32), pt(0, 48)),
		Width:  64,
		Height: 64,
		Op:     Stroke{PenWidth: 2, MiterLimit: 10},
	},
	{
		Name: "glyph_like",
		Path: concat(
			(&path.Data{}).
				MoveTo(pt(20, 56)).LineTo(pt(32, 8)).LineTo(pt(44, 56)).
				LineTo(pt(38, 56)).LineTo(pt(35, 44)).LineTo(pt(29, 44)).
				LineTo(pt(26, 56)).Close(),
			(&path.Data{}).
				MoveTo(pt(30, 38)).LineTo(pt(34, 38)).LineTo(pt(32, 28)).Close()),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name: "spiral_overlap",
		Path: (&path.Data{}).
			MoveTo(pt(32, 8)).
			CubeTo(pt(60, 8), pt(60, 56), pt(32, 56)).
			CubeTo(pt(12, 56), pt(12, 20), pt(32, 20)).
			CubeTo(pt(46, 20), pt(46, 44), pt(32, 44)),
		Width:  64,
		Height: 64,
		Op:     Stroke{PenWidth: 5, Cap: graphics.LineCapRound, Join: graphics.LineJoinRound, MiterLimit: 10},
	},
}

// Fish returns the outline of a fish, for a 128×128 canvas.
func Fish() *path.Data {
	return (&path.Data{}).
		MoveTo(pt(112, 24)).
		LineTo(pt(80, 48)).
		CubeTo(pt(-16, 0), pt(-16, 128), pt(80, 80)).
		LineTo(pt(112, 104)).
		LineTo(pt(96, 64)).
		Close()
}

// FishEye returns the eye of the fish drawn by [Fish], as two crossing
// strokes.
func FishEye() *path.Data {
	return (&path.Data{}).
		MoveTo(pt(24, 48)).
		LineTo(pt(32, 56)).
		MoveTo(pt(32, 48)).
		LineTo(pt(24, 56))
}
