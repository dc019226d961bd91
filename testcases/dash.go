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

import "seehuhn.de/go/pdf/graphics"

var dashCases = []TestCase{
	{
		Name:   "equal",
		Path:   line(4, 32, 60, 32),
		Width:  64,
		Height: 64,
		Op:     Stroke{PenWidth: 4, MiterLimit: 10, Dash: []float64{8, 8}},
	},
	{
		Name:   "single_element",
		Path:   line(4, 32, 60, 32),
		Width:  64,
		Height: 64,
		Op:     Stroke{PenWidth: 4, MiterLimit: 10, Dash: []float64{6}},
	},
	{
		Name:   "three_element",
		Path:   line(4, 32, 60, 32),
		Width:  64,
		Height: 64,
		Op:     Stroke{PenWidth: 4, MiterLimit: 10, Dash: []float64{10, 4, 2}},
	},
	{
		Name:   "phase",
		Path:   line(4, 32, 60, 32),
		Width:  64,
		Height: 64,
		Op:     Stroke{PenWidth: 4, MiterLimit: 10, Dash: []float64{8, 4}, DashPhase: 5},
	},
	{
		Name:   "phase_negative",
		Path:   line(4, 32, 60, 32),
		Width:  64,
		Height: 64,
		Op:     Stroke{PenWidth: 4, MiterLimit: 10, Dash: []float64{8, 4}, DashPhase: -5},
	},
	{
		Name:   "round_caps",
		Path:   line(8, 32, 56, 32),
		Width:  64,
		Height: 64,
		Op:     Stroke{PenWidth: 6, Cap: graphics.LineCapRound, MiterLimit: 10, Dash: []float64{6, 10}},
	},
	{
		Name:   "zero_length",
		Path:   line(8, 32, 56, 32),
		Width:  64,
		Height: 64,
		Op:     Stroke{PenWidth: 6, Cap: graphics.LineCapRound, MiterLimit: 10, Dash: []float64{0, 8}},
	},
	{
		Name:   "corner_in_dash",
		Path:   corner(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Stroke{PenWidth: 4, Join: graphics.LineJoinRound, MiterLimit: 10, Dash: []float64{30, 6}},
	},
	{
		Name:   "closed_square",
		Path:   rectangle(12, 12, 52, 52),
		Width:  64,
		Height: 64,
		Op:     Stroke{PenWidth: 4, Join: graphics.LineJoinMiter, MiterLimit: 10, Dash: []float64{12, 8}, DashPhase: 6},
	},
	{
		Name:   "closed_circle",
		Path:   circle(32, 32, 22),
		Width:  64,
		Height: 64,
		Op:     Stroke{PenWidth: 3, Cap: graphics.LineCapRound, MiterLimit: 10, Dash: []float64{9, 5}},
	},
}
