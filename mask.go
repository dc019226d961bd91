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
	"image"
	"image/color"
	"math"
)

var (
	// ErrInvalidDimensions is returned when a mask size is negative or
	// when width*height does not fit into an int.
	ErrInvalidDimensions = errors.New("coverage: invalid mask dimensions")

	// ErrOutOfBounds is returned when a write would fall outside the
	// mask buffer.
	ErrOutOfBounds = errors.New("coverage: index out of bounds")

	// ErrDimensionMismatch is returned when a scan row does not match the
	// mask it is accumulated into, or when a borrowed buffer has the
	// wrong length.
	ErrDimensionMismatch = errors.New("coverage: dimension mismatch")
)

// Mask is an 8-bit coverage (alpha) mask.
//
// Pixels are stored row-major, the value of pixel (x, y) is at index
// y*Width()+x.  A value of 0 means "not covered", 255 means "fully
// covered".
//
// The length of the pixel buffer always equals width*height.  None of the
// methods ever reallocate the buffer, so a Mask created by [WrapMask]
// keeps writing into the caller's memory for its whole lifetime.
type Mask struct {
	width  int
	height int
	pix    []byte
}

// NewMask allocates a zero-filled mask.
func NewMask(width, height int) (*Mask, error) {
	n, err := maskSize(width, height)
	if err != nil {
		return nil, err
	}
	return &Mask{
		width:  width,
		height: height,
		pix:    make([]byte, n),
	}, nil
}

// WrapMask returns a mask which uses pix as its pixel buffer.
//
// The caller keeps ownership of pix: the mask reads and writes the slice
// in place, but never frees, grows or replaces it.  The length of pix must
// be exactly width*height.
func WrapMask(pix []byte, width, height int) (*Mask, error) {
	n, err := maskSize(width, height)
	if err != nil {
		return nil, err
	}
	if len(pix) != n {
		return nil, fmt.Errorf("buffer of length %d for %dx%d mask: %w",
			len(pix), width, height, ErrDimensionMismatch)
	}
	return &Mask{
		width:  width,
		height: height,
		pix:    pix[:n:n],
	}, nil
}

// maskSize returns width*height, guarding against negative sizes and
// integer overflow.
func maskSize(width, height int) (int, error) {
	if width < 0 || height < 0 {
		return 0, fmt.Errorf("%dx%d: %w", width, height, ErrInvalidDimensions)
	}
	if width > 0 && height > math.MaxInt/width {
		return 0, fmt.Errorf("%dx%d: %w", width, height, ErrInvalidDimensions)
	}
	return width * height, nil
}

// Width returns the width of the mask in pixels.
func (m *Mask) Width() int { return m.width }

// Height returns the height of the mask in pixels.
func (m *Mask) Height() int { return m.height }

// Pix returns the pixel buffer.  The slice aliases the mask storage.
func (m *Mask) Pix() []byte { return m.pix }

// Row returns the pixels of row y.  The slice aliases the mask storage.
// Row panics if y is outside [0, Height()).
func (m *Mask) Row(y int) []byte {
	if y < 0 || y >= m.height {
		panic(fmt.Sprintf("coverage: row %d out of range [0, %d)", y, m.height))
	}
	start := y * m.width
	return m.pix[start : start+m.width : start+m.width]
}

// Value returns the coverage at (x, y), or 0 outside the mask.
func (m *Mask) Value(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.pix[y*m.width+x]
}

// Clear sets all pixels to 0.
func (m *Mask) Clear() {
	clear(m.pix)
}

// Fill overwrites length consecutive bytes, starting at offset, with v.
func (m *Mask) Fill(offset, length int, v uint8) error {
	if offset < 0 || length < 0 || offset > len(m.pix)-length {
		return fmt.Errorf("fill [%d, %d+%d) in buffer of length %d: %w",
			offset, offset, length, len(m.pix), ErrOutOfBounds)
	}
	seg := m.pix[offset : offset+length]
	for i := range seg {
		seg[i] = v
	}
	return nil
}

// Set sets pixel x of row 0 to v.
//
// This is used for one-row scan buffers, where the row index is implicit.
func (m *Mask) Set(x int, v uint8) error {
	if x < 0 || x >= m.width || len(m.pix) == 0 {
		return fmt.Errorf("set x=%d in mask of width %d: %w", x, m.width, ErrOutOfBounds)
	}
	m.pix[x] = v
	return nil
}

// Accumulate adds the one-row mask scan into row of m.  The addition is
// saturating: values are clamped at 255 and never wrap around.
func (m *Mask) Accumulate(scan *Mask, row int) error {
	if scan.height != 1 || scan.width != m.width {
		return fmt.Errorf("scan row %dx%d into %dx%d mask: %w",
			scan.width, scan.height, m.width, m.height, ErrDimensionMismatch)
	}
	if row < 0 || row >= m.height {
		return fmt.Errorf("row %d in mask of height %d: %w", row, m.height, ErrOutOfBounds)
	}
	addSaturating(m.Row(row), scan.pix)
	return nil
}

// addSaturating adds src to dst element-wise, clamping at 255.
// Both slices must have the same length.
func addSaturating(dst, src []byte) {
	src = src[:len(dst)]
	for i, s := range src {
		if s == 0 {
			continue
		}
		sum := uint16(dst[i]) + uint16(s)
		dst[i] = uint8(min(sum, 255))
	}
}

// Clone returns a deep copy of the mask.  The copy owns its buffer, even
// if m is a borrowed view.
func (m *Mask) Clone() *Mask {
	return &Mask{
		width:  m.width,
		height: m.height,
		pix:    append([]byte(nil), m.pix...),
	}
}

// ColorModel implements the [image.Image] interface.
func (m *Mask) ColorModel() color.Model { return color.AlphaModel }

// Bounds implements the [image.Image] interface.
func (m *Mask) Bounds() image.Rectangle { return image.Rect(0, 0, m.width, m.height) }

// At implements the [image.Image] interface.
func (m *Mask) At(x, y int) color.Color {
	return color.Alpha{A: m.Value(x, y)}
}

// Gray returns a grayscale image which shares the pixel buffer of m.
func (m *Mask) Gray() *image.Gray {
	return &image.Gray{Pix: m.pix, Stride: m.width, Rect: m.Bounds()}
}

// Alpha returns an alpha image which shares the pixel buffer of m.
// This is the fastest way to use the mask with image/draw.
func (m *Mask) Alpha() *image.Alpha {
	return &image.Alpha{Pix: m.pix, Stride: m.width, Rect: m.Bounds()}
}
