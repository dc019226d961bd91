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

// Package coverage converts 2D vector paths into anti-aliased 8-bit
// coverage masks.
//
// A [Path] is made of straight lines, quadratic and cubic Bézier curves.
// A [Plotter] either fills the path, using the [NonZero] or [EvenOdd]
// rule, or strokes it with the pen width of the path.  The result is a
// [Mask], where each byte gives the fraction of the pixel area covered by
// the shape.  Masks can be written as PGM or PNG images, or used as the
// alpha channel when compositing a colour onto an image.
//
// Coverage is computed exactly (up to curve flattening) from the signed
// area of the path within each pixel, so no super-sampling is used.
package coverage

import (
	"context"
	"log/slog"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Plotter rasterizes paths into a coverage mask.
//
// The Plotter owns the mask and all working buffers.  Buffers grow as
// needed but never shrink, so that a Plotter reused for many paths does
// not allocate in steady state.  The mask returned by [Plotter.Fill] and
// [Plotter.Stroke] is overwritten by the next call; use [Mask.Clone] to
// keep a copy.
//
// A Plotter is not safe for concurrent use.
type Plotter struct {
	// CTM maps user space (path coordinates) to device space (mask
	// pixels).  Must be non-singular.
	CTM matrix.Matrix

	// Flatness is the maximal distance, in device pixels, between a curve
	// and its polygonal approximation.  Non-positive values select 0.25.
	Flatness float64

	// Join is the style used at corners of stroked paths.
	Join graphics.LineJoinStyle

	// Cap is the style used at the ends of open stroked subpaths.
	Cap graphics.LineCapStyle

	// MiterLimit limits the length of miter joins, relative to the pen
	// width.  Longer miters are drawn as bevels.
	MiterLimit float64

	// Dash gives alternating on/off lengths in user-space units.
	// Nil means a solid line.
	Dash []float64

	// DashPhase is the distance into the dash pattern at which each
	// subpath starts.
	DashPhase float64

	width, height int
	clip          rect.Rect

	mask *Mask
	scan *Mask

	// smallPathThreshold is the largest bounding box area (in pixels)
	// which is rasterized with 2D buffers.  Larger paths use an active
	// edge list.
	smallPathThreshold int

	cover      []float32
	area       []float32
	edges      []edge
	active     []int
	rowTouched []bool
	box        edgeBox

	segs     []segment
	subpaths []run
	rev      []segment
	outline  []vec.Vec2
	rings    []int

	dashSegs []segment
	dashRuns []run
}

// NewPlotter returns a Plotter which draws into a width×height mask.
// The CTM is the identity, so that path coordinates are mask pixels with
// y growing downwards.  Strokes use miter joins with miter limit 10 and
// butt caps.
func NewPlotter(width, height int) (*Plotter, error) {
	mask, err := NewMask(width, height)
	if err != nil {
		return nil, err
	}
	scan, err := NewMask(width, 1)
	if err != nil {
		return nil, err
	}
	return &Plotter{
		CTM:        matrix.Identity,
		Flatness:   defaultFlatness,
		Join:       graphics.LineJoinMiter,
		Cap:        graphics.LineCapButt,
		MiterLimit: defaultMiterLimit,

		width:  width,
		height: height,
		clip:   rect.Rect{URx: float64(width), URy: float64(height)},
		mask:   mask,
		scan:   scan,

		smallPathThreshold: smallPathThreshold,
	}, nil
}

// Width returns the width of the mask in pixels.
func (r *Plotter) Width() int { return r.width }

// Height returns the height of the mask in pixels.
func (r *Plotter) Height() int { return r.height }

// Mask returns the mask written by the most recent Fill or Stroke call.
func (r *Plotter) Mask() *Mask { return r.mask }

// Fill clears the mask and fills p using the given rule.  Open subpaths
// are closed implicitly.
//
// Malformed and empty paths leave the mask blank.
func (r *Plotter) Fill(p *Path, rule FillRule) *Mask {
	r.mask.Clear()
	r.resetEdges()

	var start, last vec.Vec2
	r.flattenPath(p,
		func(pt vec.Vec2) {
			start, last = pt, pt
		},
		func(a, b vec.Vec2) {
			r.addEdge(a, b)
			last = b
		},
		func(closed bool) {
			if !closed && last != start {
				r.addEdge(last, start)
			}
		})

	r.rasterize(rule)
	return r.mask
}

// rasterize accumulates the coverage of the collected edges into the mask.
func (r *Plotter) rasterize(rule FillRule) {
	xMin, xMax, yMin, yMax, ok := r.edgeBounds()
	if !ok {
		return
	}

	w := xMax - xMin
	h := yMax - yMin
	small := w*h < r.smallPathThreshold

	log := Logger()
	if log.Enabled(context.Background(), slog.LevelDebug) {
		strategy := "active-edges"
		if small {
			strategy = "buffer"
		}
		log.Debug("rasterize",
			slog.String("rule", rule.String()),
			slog.Int("edges", len(r.edges)),
			slog.String("strategy", strategy),
			slog.Any("bbox", [4]int{xMin, yMin, xMax, yMax}))
	}

	if small {
		r.fillSmallPath(xMin, xMax, yMin, yMax, rule)
	} else {
		r.fillLargePath(xMin, xMax, yMin, yMax, rule)
	}
}

// emitRow converts one row of coverage values, starting at column x, into
// bytes and adds them to row y of the mask.
func (r *Plotter) emitRow(y, x int, coverage []float32) {
	span := r.scan.pix[x : x+len(coverage)]
	for i, c := range coverage {
		span[i] = coverageByte(c)
	}
	if err := r.mask.Accumulate(r.scan, y); err != nil {
		panic(err)
	}
	clear(span)
}

// coverageByte maps coverage in [0, 1] to 0, ..., 255.
func coverageByte(c float32) uint8 {
	v := int(c * 256)
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}

// Default values for the Plotter parameters.
const (
	// defaultFlatness is the curve flattening tolerance in device pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit turns joins with an interior angle below about
	// 11.5 degrees into bevels.
	defaultMiterLimit = 10.0

	// maxFlattenDepth limits curve subdivision to 2^16 segments per curve.
	maxFlattenDepth = 16
)

// Numerical tolerances.
const (
	// horizontalEdgeThreshold is the smallest vertical extent, in device
	// pixels, of an edge which contributes to coverage.
	horizontalEdgeThreshold = 1e-10

	// smallPathThreshold is the default for Plotter.smallPathThreshold.
	smallPathThreshold = 65536

	// zeroLengthThreshold is the length below which stroke segments are
	// skipped.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the |sin| of the turning angle below which
	// two stroke segments need no join.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold detects segments which double back on
	// themselves.  cos(179.2°) ≈ -0.9999
	cuspCosineThreshold = -0.9999
)
