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

package job

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"seehuhn.de/go/coverage"
	"seehuhn.de/go/coverage/composite"
)

// Colored reports whether the job paints colours, rather than producing a
// plain coverage mask.
func (j *Job) Colored() bool {
	if j.Background != "" {
		return true
	}
	for i := range j.Layers {
		if j.Layers[i].Color != "" || j.Layers[i].Opacity != nil {
			return true
		}
	}
	return false
}

// Render draws all layers of the job.
//
// The result is a *coverage.Mask if the job has no colours, and an
// *image.RGBA otherwise.
func (j *Job) Render() (image.Image, error) {
	if err := j.Validate(); err != nil {
		return nil, err
	}
	p, err := coverage.NewPlotter(j.Width, j.Height)
	if err != nil {
		return nil, err
	}
	p.Flatness = j.Flatness

	log := coverage.Logger()
	if !j.Colored() {
		acc, err := coverage.NewMask(j.Width, j.Height)
		if err != nil {
			return nil, err
		}
		for i := range j.Layers {
			m, err := j.Layers[i].draw(p)
			if err != nil {
				return nil, fmt.Errorf("layer %d: %w", i, err)
			}
			if err := addMask(acc, m); err != nil {
				return nil, fmt.Errorf("layer %d: %w", i, err)
			}
			log.Debug("layer done", "layer", i, "op", j.Layers[i].Op)
		}
		return acc, nil
	}

	bg, _ := parseColor(j.Background, nil)
	var bgColor color.Color
	if bg != nil {
		bgColor = *bg
	}
	canvas := composite.NewCanvas(j.Width, j.Height, bgColor)
	black := colorful.Color{}
	for i := range j.Layers {
		l := &j.Layers[i]
		m, err := l.draw(p)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		c, _ := parseColor(l.Color, &black)
		composite.Over(canvas, m, l.paint(*c), 0, 0)
		log.Debug("layer done", "layer", i, "op", l.Op, "color", c.Hex())
	}
	return canvas, nil
}

// draw renders the layer into the plotter's mask.
func (l *Layer) draw(p *coverage.Plotter) (*coverage.Mask, error) {
	path, err := l.BuildPath()
	if err != nil {
		return nil, err
	}
	p.CTM = l.matrix()

	if l.Op == "fill" {
		var rule coverage.FillRule
		if err := rule.UnmarshalText([]byte(l.Rule)); err != nil {
			return nil, err
		}
		return p.Fill(path, rule), nil
	}

	if p.Join, err = parseJoin(l.Join); err != nil {
		return nil, err
	}
	if p.Cap, err = parseCap(l.Cap); err != nil {
		return nil, err
	}
	p.MiterLimit = l.MiterLimit
	if p.MiterLimit == 0 {
		p.MiterLimit = 10
	}
	p.Dash = l.Dash
	p.DashPhase = l.DashPhase
	return p.Stroke(path), nil
}

// paint returns the colour of the layer, including its opacity.
func (l *Layer) paint(c colorful.Color) color.Color {
	r, g, b := c.RGB255()
	alpha := 1.0
	if l.Opacity != nil {
		alpha = *l.Opacity
	}
	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha*255 + 0.5)}
}

// addMask adds the coverage of m to acc, one row at a time.
func addMask(acc, m *coverage.Mask) error {
	for y := range m.Height() {
		row, err := coverage.WrapMask(m.Row(y), m.Width(), 1)
		if err != nil {
			return err
		}
		if err := acc.Accumulate(row, y); err != nil {
			return err
		}
	}
	return nil
}

// Write encodes img into the named file.  The image format is chosen by
// the file name extension: .pgm, .png, .bmp, .tif or .tiff.
func Write(img image.Image, name string) (err error) {
	encode, err := encoderFor(name)
	if err != nil {
		return err
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	if err := encode(w, img); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}

	coverage.Logger().Info("image written",
		"file", name,
		"width", img.Bounds().Dx(),
		"height", img.Bounds().Dy())
	return nil
}

func encoderFor(name string) (func(io.Writer, image.Image) error, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pgm":
		return writePGM, nil
	case ".png":
		return func(w io.Writer, img image.Image) error {
			return png.Encode(w, grayOf(img))
		}, nil
	case ".bmp":
		return func(w io.Writer, img image.Image) error {
			return bmp.Encode(w, grayOf(img))
		}, nil
	case ".tif", ".tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, grayOf(img), &tiff.Options{Compression: tiff.Deflate})
		}, nil
	default:
		return nil, fmt.Errorf("%s: unknown image file type: %w", name, ErrInvalidJob)
	}
}

// grayOf returns masks as grayscale images, and other images unchanged.
func grayOf(img image.Image) image.Image {
	if m, ok := img.(*coverage.Mask); ok {
		return m.Gray()
	}
	return img
}

// writePGM writes img as a binary graymap.  Colour images are converted
// to gray first.
func writePGM(w io.Writer, img image.Image) error {
	m, ok := img.(*coverage.Mask)
	if !ok {
		b := img.Bounds()
		gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)
		var err error
		m, err = coverage.WrapMask(gray.Pix, b.Dx(), b.Dy())
		if err != nil {
			return err
		}
	}
	return m.WritePGM(w)
}
