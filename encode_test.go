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
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePGM(t *testing.T) {
	m, err := WrapMask([]byte{0, 1, 2, 253, 254, 255}, 3, 2)
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, m.WritePGM(buf))

	want := append([]byte("P5\n3 2\n255\n"), 0, 1, 2, 253, 254, 255)
	assert.Equal(t, want, buf.Bytes())
}

func TestWritePNG(t *testing.T) {
	p, err := NewPlotter(16, 8)
	require.NoError(t, err)
	m := p.Fill(NewBuilder().MoveTo(2, 1).LineTo(14, 2).LineTo(8, 7.5).Close().Build(), NonZero)

	buf := &bytes.Buffer{}
	require.NoError(t, m.WritePNG(buf))

	img, err := png.Decode(buf)
	require.NoError(t, err)
	gray, ok := img.(*image.Gray)
	require.True(t, ok, "decoded %T", img)
	assert.Equal(t, m.Bounds(), gray.Bounds())
	assert.Equal(t, m.Pix(), gray.Pix)
}

func TestWriteFiles(t *testing.T) {
	m, err := WrapMask([]byte{10, 20, 30, 40}, 2, 2)
	require.NoError(t, err)
	dir := t.TempDir()

	pgm := filepath.Join(dir, "mask.pgm")
	require.NoError(t, m.WritePGMFile(pgm))
	body, err := os.ReadFile(pgm)
	require.NoError(t, err)
	assert.Equal(t, "P5\n2 2\n255\n\x0a\x14\x1e\x28", string(body))

	name := filepath.Join(dir, "mask.png")
	require.NoError(t, m.WritePNGFile(name))
	f, err := os.Open(name)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Width)
	assert.Equal(t, 2, cfg.Height)

	err = m.WritePGMFile(filepath.Join(dir, "missing", "mask.pgm"))
	assert.Error(t, err)
}
