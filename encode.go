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
	"bufio"
	"fmt"
	"image/png"
	"io"
	"os"
)

// WritePGM writes the mask as a binary portable graymap (P5).
func (m *Mask) WritePGM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P5\n%d %d\n255\n", m.width, m.height); err != nil {
		return err
	}
	if _, err := bw.Write(m.pix); err != nil {
		return err
	}
	return bw.Flush()
}

// WritePNG writes the mask as an 8-bit grayscale PNG image.
func (m *Mask) WritePNG(w io.Writer) error {
	return png.Encode(w, m.Gray())
}

// WritePGMFile writes the mask to the named file in PGM format.
func (m *Mask) WritePGMFile(name string) error {
	return writeFile(name, m.WritePGM)
}

// WritePNGFile writes the mask to the named file in PNG format.
func (m *Mask) WritePNGFile(name string) error {
	return writeFile(name, m.WritePNG)
}

func writeFile(name string, write func(io.Writer) error) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	if err := write(f); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}
