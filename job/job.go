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

// Package job reads scene descriptions and renders them to images.
//
// A job file lists the size of the canvas and a sequence of layers.  Each
// layer fills or strokes one path.  Job files can be written in TOML or
// YAML:
//
//	width = 128
//	height = 128
//	output = "fish.png"
//
//	[[layer]]
//	op = "fill"
//	rule = "nonzero"
//	color = "#7f6060"
//	path = [
//	  {cmd = "M", pts = [[112, 24]]},
//	  {cmd = "L", pts = [[80, 48]]},
//	  {cmd = "Z"},
//	]
//
// If no layer has a colour and no background is given, the coverage of
// all layers is added up into a single grayscale mask.  Otherwise the
// layers are painted, in order, onto an RGBA canvas.
package job

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/coverage"
)

// ErrInvalidJob is returned for job files which cannot be rendered.
var ErrInvalidJob = errors.New("job: invalid job")

// maxSide is the largest canvas width or height accepted in a job file.
const maxSide = 1 << 15

// Format is the syntax of a job file.
type Format int

// These are the supported job file formats.
const (
	TOML Format = iota
	YAML
)

func (f Format) String() string {
	if f == YAML {
		return "yaml"
	}
	return "toml"
}

// FormatOf guesses the format of a job file from its name.
func FormatOf(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("%s: unknown job file type: %w", name, ErrInvalidJob)
	}
}

// Job describes a drawing.
type Job struct {
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`

	// Output is the name of the image file to write.  Relative names are
	// interpreted relative to the directory of the job file.
	Output string `toml:"output,omitempty" yaml:"output,omitempty"`

	// Background is an optional hex colour, like "#ffffff".
	Background string `toml:"background,omitempty" yaml:"background,omitempty"`

	// Flatness is the curve flattening tolerance in pixels.
	// Zero selects the default.
	Flatness float64 `toml:"flatness,omitempty" yaml:"flatness,omitempty"`

	Layers []Layer `toml:"layer" yaml:"layer"`

	dir string
}

// Layer is one fill or stroke operation.
type Layer struct {
	Op   string `toml:"op" yaml:"op"`                         // "fill" or "stroke"
	Rule string `toml:"rule,omitempty" yaml:"rule,omitempty"` // "nonzero" or "evenodd"
	Mode string `toml:"mode,omitempty" yaml:"mode,omitempty"` // "absolute" or "relative"

	PenWidth   float64   `toml:"pen_width,omitempty" yaml:"pen_width,omitempty"`
	Join       string    `toml:"join,omitempty" yaml:"join,omitempty"`
	Cap        string    `toml:"cap,omitempty" yaml:"cap,omitempty"`
	MiterLimit float64   `toml:"miter_limit,omitempty" yaml:"miter_limit,omitempty"`
	Dash       []float64 `toml:"dash,omitempty" yaml:"dash,omitempty"`
	DashPhase  float64   `toml:"dash_phase,omitempty" yaml:"dash_phase,omitempty"`

	// Transform is an optional matrix [a b c d e f], mapping the path
	// coordinates to pixels.
	Transform []float64 `toml:"transform,omitempty" yaml:"transform,omitempty"`

	Color   string   `toml:"color,omitempty" yaml:"color,omitempty"`
	Opacity *float64 `toml:"opacity,omitempty" yaml:"opacity,omitempty"`

	Path []Segment `toml:"path" yaml:"path"`
}

// Segment is one path command.  Cmd is one of "M", "L", "Q", "C" and "Z".
type Segment struct {
	Cmd string      `toml:"cmd" yaml:"cmd"`
	Pts [][]float64 `toml:"pts,omitempty" yaml:"pts,omitempty,flow"`
}

// Load reads a job file.  The format is chosen by the file name extension.
func Load(name string) (*Job, error) {
	format, err := FormatOf(name)
	if err != nil {
		return nil, err
	}
	body, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	j, err := Decode(bytes.NewReader(body), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	j.dir = filepath.Dir(name)

	coverage.Logger().Debug("job loaded",
		"file", name,
		"format", format.String(),
		"layers", len(j.Layers))
	return j, nil
}

// Decode reads and validates a job description.  Unknown fields are
// reported as errors.
func Decode(r io.Reader, format Format) (*Job, error) {
	j := &Job{}
	switch format {
	case TOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(j); err != nil {
			return nil, err
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(j); err != nil && err != io.EOF {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("format %d: %w", format, ErrInvalidJob)
	}

	if err := j.Validate(); err != nil {
		return nil, err
	}
	return j, nil
}

// Encode writes the job in the given format.
func (j *Job) Encode(w io.Writer, format Format) error {
	switch format {
	case TOML:
		enc := toml.NewEncoder(w)
		enc.SetArraysMultiline(false)
		return enc.Encode(j)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(j); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("format %d: %w", format, ErrInvalidJob)
	}
}

// OutputPath returns the name of the output file, resolved relative to
// the directory of the job file.
func (j *Job) OutputPath() string {
	if j.Output == "" || filepath.IsAbs(j.Output) {
		return j.Output
	}
	return filepath.Join(j.dir, j.Output)
}

// Validate checks that the job can be rendered.
func (j *Job) Validate() error {
	if j.Width <= 0 || j.Height <= 0 || j.Width > maxSide || j.Height > maxSide {
		return fmt.Errorf("canvas %dx%d: %w", j.Width, j.Height, ErrInvalidJob)
	}
	if _, err := parseColor(j.Background, nil); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	for i := range j.Layers {
		if err := j.Layers[i].validate(); err != nil {
			return fmt.Errorf("layer %d: %w", i, err)
		}
	}
	return nil
}

func (l *Layer) validate() error {
	switch l.Op {
	case "fill", "stroke":
	default:
		return fmt.Errorf("unknown op %q: %w", l.Op, ErrInvalidJob)
	}
	var rule coverage.FillRule
	if err := rule.UnmarshalText([]byte(l.Rule)); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalidJob)
	}
	if _, err := parseJoin(l.Join); err != nil {
		return err
	}
	if _, err := parseCap(l.Cap); err != nil {
		return err
	}
	if len(l.Transform) != 0 && len(l.Transform) != 6 {
		return fmt.Errorf("transform needs 6 entries, got %d: %w", len(l.Transform), ErrInvalidJob)
	}
	if l.Opacity != nil && !(*l.Opacity >= 0 && *l.Opacity <= 1) {
		return fmt.Errorf("opacity %g not in [0, 1]: %w", *l.Opacity, ErrInvalidJob)
	}
	if _, err := parseColor(l.Color, nil); err != nil {
		return err
	}
	_, err := l.BuildPath()
	return err
}

// BuildPath converts the segments of the layer into a path.
func (l *Layer) BuildPath() (*coverage.Path, error) {
	p := &coverage.Path{PenWidth: l.PenWidth}
	switch l.Mode {
	case "", "absolute":
		p.Mode = coverage.Absolute
	case "relative":
		p.Mode = coverage.Relative
	default:
		return nil, fmt.Errorf("unknown mode %q: %w", l.Mode, ErrInvalidJob)
	}

	for i, seg := range l.Path {
		var cmd coverage.Command
		switch seg.Cmd {
		case "M":
			cmd = coverage.CmdMoveTo
		case "L":
			cmd = coverage.CmdLineTo
		case "Q":
			cmd = coverage.CmdQuadTo
		case "C":
			cmd = coverage.CmdCubicTo
		case "Z":
			cmd = coverage.CmdClose
		default:
			return nil, fmt.Errorf("segment %d: unknown command %q: %w", i, seg.Cmd, ErrInvalidJob)
		}
		if len(seg.Pts) != cmd.NumPoints() {
			return nil, fmt.Errorf("segment %d: %s needs %d points, got %d: %w",
				i, cmd, cmd.NumPoints(), len(seg.Pts), ErrInvalidJob)
		}
		p.Cmds = append(p.Cmds, cmd)
		for _, xy := range seg.Pts {
			if len(xy) != 2 {
				return nil, fmt.Errorf("segment %d: point %v is not a pair: %w", i, xy, ErrInvalidJob)
			}
			p.Coords = append(p.Coords, vec.Vec2{X: xy[0], Y: xy[1]})
		}
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("path: %w: %w", err, ErrInvalidJob)
	}
	return p, nil
}

// matrix returns the transformation of the layer.
func (l *Layer) matrix() matrix.Matrix {
	if len(l.Transform) != 6 {
		return matrix.Identity
	}
	var m matrix.Matrix
	copy(m[:], l.Transform)
	return m
}

func parseJoin(s string) (graphics.LineJoinStyle, error) {
	switch s {
	case "", "miter":
		return graphics.LineJoinMiter, nil
	case "round":
		return graphics.LineJoinRound, nil
	case "bevel":
		return graphics.LineJoinBevel, nil
	default:
		return 0, fmt.Errorf("unknown join %q: %w", s, ErrInvalidJob)
	}
}

func parseCap(s string) (graphics.LineCapStyle, error) {
	switch s {
	case "", "butt":
		return graphics.LineCapButt, nil
	case "round":
		return graphics.LineCapRound, nil
	case "square":
		return graphics.LineCapSquare, nil
	default:
		return 0, fmt.Errorf("unknown cap %q: %w", s, ErrInvalidJob)
	}
}

// parseColor parses a hex colour.  The empty string gives def.
func parseColor(s string, def *colorful.Color) (*colorful.Color, error) {
	if s == "" {
		return def, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("colour %q: %w", s, ErrInvalidJob)
	}
	return &c, nil
}
