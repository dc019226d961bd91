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
	"errors"
	"fmt"
	"iter"

	"honnef.co/go/curve"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ErrMalformedPath is returned by [Path.Validate].
var ErrMalformedPath = errors.New("coverage: malformed path")

// Command is a path drawing command.
type Command uint8

// These are the supported path commands.
const (
	CmdMoveTo  Command = iota // start a new subpath (1 point)
	CmdLineTo                 // straight line (1 point)
	CmdQuadTo                 // quadratic Bézier (control, end)
	CmdCubicTo                // cubic Bézier (control 1, control 2, end)
	CmdClose                  // line back to the subpath start (no points)
)

// NumPoints returns the number of coordinates consumed by the command.
func (c Command) NumPoints() int {
	switch c {
	case CmdMoveTo, CmdLineTo:
		return 1
	case CmdQuadTo:
		return 2
	case CmdCubicTo:
		return 3
	default:
		return 0
	}
}

func (c Command) String() string {
	switch c {
	case CmdMoveTo:
		return "MoveTo"
	case CmdLineTo:
		return "LineTo"
	case CmdQuadTo:
		return "QuadTo"
	case CmdCubicTo:
		return "CubicTo"
	case CmdClose:
		return "Close"
	default:
		return fmt.Sprintf("Command(%d)", uint8(c))
	}
}

// CoordMode says how the coordinates of a [Path] are to be interpreted.
type CoordMode uint8

const (
	// Absolute coordinates are given in user space.
	Absolute CoordMode = iota

	// Relative coordinates are offsets from the current point at the
	// start of the command.  This applies to all points of a command,
	// including Bézier control points.
	Relative
)

func (m CoordMode) String() string {
	if m == Relative {
		return "relative"
	}
	return "absolute"
}

// Path is a sequence of drawing commands.
//
// The first command must be CmdMoveTo.  CmdClose ends the current subpath
// with a straight line back to its start point, which then becomes the
// current point; drawing commands after CmdClose continue from there.
//
// A Path is not modified by the rasterizer and can be reused for any
// number of Fill and Stroke calls.
type Path struct {
	Cmds   []Command
	Coords []vec.Vec2

	// Mode selects absolute or relative coordinates.
	Mode CoordMode

	// PenWidth is the stroke width in user-space units.
	// It is ignored when filling.
	PenWidth float64
}

// Validate checks that the path starts with CmdMoveTo and that Coords
// holds exactly the points needed by Cmds.
func (p *Path) Validate() error {
	if p == nil || len(p.Cmds) == 0 {
		return nil
	}
	if p.Cmds[0] != CmdMoveTo {
		return fmt.Errorf("path starts with %s: %w", p.Cmds[0], ErrMalformedPath)
	}
	need := 0
	for _, cmd := range p.Cmds {
		if cmd > CmdClose {
			return fmt.Errorf("unknown %s: %w", cmd, ErrMalformedPath)
		}
		need += cmd.NumPoints()
	}
	if need != len(p.Coords) {
		return fmt.Errorf("%d commands need %d points, have %d: %w",
			len(p.Cmds), need, len(p.Coords), ErrMalformedPath)
	}
	return nil
}

// All iterates over the commands of the path with points in absolute
// coordinates.  After CmdClose, a drawing command is preceded by an
// explicit CmdMoveTo to the start of the closed subpath.
//
// An invalid path (see [Path.Validate]) yields no commands.  The slice
// passed to yield is only valid during the call.
func (p *Path) All() iter.Seq2[Command, []vec.Vec2] {
	return func(yield func(Command, []vec.Vec2) bool) {
		if p == nil || p.Validate() != nil {
			return
		}

		var buf [3]vec.Vec2
		var current, start vec.Vec2
		needMove := false
		idx := 0
		for _, cmd := range p.Cmds {
			n := cmd.NumPoints()
			pts := buf[:n]
			copy(pts, p.Coords[idx:idx+n])
			idx += n
			if p.Mode == Relative {
				for i := range pts {
					pts[i] = current.Add(pts[i])
				}
			}

			switch cmd {
			case CmdMoveTo:
				start = pts[0]
				needMove = false
			case CmdClose:
				if needMove {
					continue
				}
				current = start
				needMove = true
				if !yield(cmd, nil) {
					return
				}
				continue
			default:
				if needMove {
					needMove = false
					if !yield(CmdMoveTo, []vec.Vec2{start}) {
						return
					}
				}
			}
			current = pts[n-1]
			if !yield(cmd, pts) {
				return
			}
		}
	}
}

// Bounds returns the bounding box of all points, including Bézier control
// points, in absolute coordinates.  The second return value is false if
// the path has no points.
func (p *Path) Bounds() (rect.Rect, bool) {
	var bbox rect.Rect
	first := true
	for _, pts := range p.All() {
		for _, pt := range pts {
			if first {
				bbox = rect.Rect{LLx: pt.X, LLy: pt.Y, URx: pt.X, URy: pt.Y}
				first = false
				continue
			}
			bbox.LLx = min(bbox.LLx, pt.X)
			bbox.LLy = min(bbox.LLy, pt.Y)
			bbox.URx = max(bbox.URx, pt.X)
			bbox.URy = max(bbox.URy, pt.Y)
		}
	}
	return bbox, !first
}

// FromData converts a path from the seehuhn.de/go/geom/path package.
// The coordinates are copied.
func FromData(d *path.Data, penWidth float64) *Path {
	p := &Path{
		Coords:   append([]vec.Vec2(nil), d.Coords...),
		PenWidth: penWidth,
	}
	for _, cmd := range d.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			p.Cmds = append(p.Cmds, CmdMoveTo)
		case path.CmdLineTo:
			p.Cmds = append(p.Cmds, CmdLineTo)
		case path.CmdQuadTo:
			p.Cmds = append(p.Cmds, CmdQuadTo)
		case path.CmdCubeTo:
			p.Cmds = append(p.Cmds, CmdCubicTo)
		case path.CmdClose:
			p.Cmds = append(p.Cmds, CmdClose)
		}
	}
	return p
}

// FromBezPath converts a path from the honnef.co/go/curve package.
// Elements of unknown kind are skipped.
func FromBezPath(bp curve.BezPath, penWidth float64) *Path {
	p := &Path{PenWidth: penWidth}
	v := func(pt curve.Point) vec.Vec2 { return vec.Vec2{X: pt.X, Y: pt.Y} }
	for _, el := range bp {
		switch el.Kind {
		case curve.MoveToKind:
			p.Cmds = append(p.Cmds, CmdMoveTo)
			p.Coords = append(p.Coords, v(el.P0))
		case curve.LineToKind:
			p.Cmds = append(p.Cmds, CmdLineTo)
			p.Coords = append(p.Coords, v(el.P0))
		case curve.QuadToKind:
			p.Cmds = append(p.Cmds, CmdQuadTo)
			p.Coords = append(p.Coords, v(el.P0), v(el.P1))
		case curve.CubicToKind:
			p.Cmds = append(p.Cmds, CmdCubicTo)
			p.Coords = append(p.Coords, v(el.P0), v(el.P1), v(el.P2))
		case curve.ClosePathKind:
			p.Cmds = append(p.Cmds, CmdClose)
		}
	}
	return p
}

// Builder records a [Path].
//
// Coordinates passed to the builder are interpreted according to the
// current mode, which can be switched at any time.  The path returned by
// Build always uses absolute coordinates.
type Builder struct {
	path     Path
	relative bool
	pen      vec.Vec2
	start    vec.Vec2
}

// NewBuilder returns a builder in absolute mode with pen width 1.
func NewBuilder() *Builder {
	return &Builder{path: Path{PenWidth: 1}}
}

// Absolute switches to absolute coordinates.
func (b *Builder) Absolute() *Builder {
	b.relative = false
	return b
}

// Relative switches to coordinates relative to the pen position.
func (b *Builder) Relative() *Builder {
	b.relative = true
	return b
}

// PenWidth sets the stroke width of the path.
func (b *Builder) PenWidth(w float64) *Builder {
	b.path.PenWidth = w
	return b
}

func (b *Builder) pt(x, y float64) vec.Vec2 {
	if b.relative {
		return vec.Vec2{X: b.pen.X + x, Y: b.pen.Y + y}
	}
	return vec.Vec2{X: x, Y: y}
}

// MoveTo starts a new subpath at (x, y).
func (b *Builder) MoveTo(x, y float64) *Builder {
	p := b.pt(x, y)
	b.path.Cmds = append(b.path.Cmds, CmdMoveTo)
	b.path.Coords = append(b.path.Coords, p)
	b.pen, b.start = p, p
	return b
}

// LineTo adds a straight line to (x, y).
func (b *Builder) LineTo(x, y float64) *Builder {
	p := b.pt(x, y)
	b.path.Cmds = append(b.path.Cmds, CmdLineTo)
	b.path.Coords = append(b.path.Coords, p)
	b.pen = p
	return b
}

// QuadTo adds a quadratic Bézier curve with control point (cx, cy),
// ending at (x, y).
func (b *Builder) QuadTo(cx, cy, x, y float64) *Builder {
	c, p := b.pt(cx, cy), b.pt(x, y)
	b.path.Cmds = append(b.path.Cmds, CmdQuadTo)
	b.path.Coords = append(b.path.Coords, c, p)
	b.pen = p
	return b
}

// CubicTo adds a cubic Bézier curve with control points (c1x, c1y) and
// (c2x, c2y), ending at (x, y).
func (b *Builder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *Builder {
	c1, c2, p := b.pt(c1x, c1y), b.pt(c2x, c2y), b.pt(x, y)
	b.path.Cmds = append(b.path.Cmds, CmdCubicTo)
	b.path.Coords = append(b.path.Coords, c1, c2, p)
	b.pen = p
	return b
}

// Close closes the current subpath.
func (b *Builder) Close() *Builder {
	b.path.Cmds = append(b.path.Cmds, CmdClose)
	b.pen = b.start
	return b
}

// Build returns a copy of the recorded path.
func (b *Builder) Build() *Path {
	return &Path{
		Cmds:     append([]Command(nil), b.path.Cmds...),
		Coords:   append([]vec.Vec2(nil), b.path.Coords...),
		Mode:     Absolute,
		PenWidth: b.path.PenWidth,
	}
}
