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

// Package testcases contains a corpus of paths and drawing operations,
// used to test and benchmark the rasterizer and to generate example job
// files.
//
// The package only depends on the geometry types, so that it can be used
// by the tests of the rasterizer itself.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// TestCase is a single drawing operation on a blank mask.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Path   *path.Data    // geometry in user space
	Width  int           // mask width in pixels
	Height int           // mask height in pixels
	Op     Operation     // fill or stroke
	CTM    matrix.Matrix // user space to device space; zero value means identity
}

// Operation is either [Fill] or [Stroke].
type Operation interface {
	isOperation()
}

// FillRule selects the fill rule of a [Fill] operation.
type FillRule int

// These are the supported fill rules.
const (
	NonZero FillRule = iota
	EvenOdd
)

func (r FillRule) String() string {
	if r == EvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// Fill fills the path.
type Fill struct {
	Rule FillRule
}

func (Fill) isOperation() {}

// Stroke draws the outline of the path.
type Stroke struct {
	PenWidth   float64
	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64
	Dash       []float64
	DashPhase  float64
}

func (Stroke) isOperation() {}

// Transform returns the CTM of the test case, with the zero matrix
// replaced by the identity.
func (tc *TestCase) Transform() matrix.Matrix {
	if tc.CTM == (matrix.Matrix{}) {
		return matrix.Identity
	}
	return tc.CTM
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
