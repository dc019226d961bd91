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

// Package composite paints colours through coverage masks.
package composite

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"seehuhn.de/go/coverage"
)

// NewCanvas returns a width×height RGBA image filled with bg.
// A nil background leaves the canvas transparent.
func NewCanvas(width, height int, bg color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if bg != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}
	return img
}

// Over paints the colour c onto dst, using m as the coverage of each
// pixel.  The top-left corner of the mask is placed at (x, y) in dst.
// Parts of the mask outside dst are ignored.
func Over(dst *image.RGBA, m *coverage.Mask, c color.Color, x, y int) {
	offset := image.Pt(x, y)
	r := m.Bounds().Add(offset).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	draw.DrawMask(dst, r, image.NewUniform(c), image.Point{}, m.Alpha(), r.Min.Sub(offset), draw.Over)
}
