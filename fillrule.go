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

import "fmt"

// FillRule decides which points are inside a (possibly self-overlapping)
// path.
type FillRule uint8

const (
	// NonZero treats a point as inside if the winding number of the path
	// around the point is non-zero.
	NonZero FillRule = iota

	// EvenOdd treats a point as inside if a ray from the point crosses
	// the path an odd number of times.
	EvenOdd
)

func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return fmt.Sprintf("FillRule(%d)", uint8(r))
	}
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (r FillRule) MarshalText() ([]byte, error) {
	if r > EvenOdd {
		return nil, fmt.Errorf("invalid fill rule %d", uint8(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// An empty string selects NonZero.
func (r *FillRule) UnmarshalText(text []byte) error {
	switch string(text) {
	case "nonzero", "":
		*r = NonZero
	case "evenodd":
		*r = EvenOdd
	default:
		return fmt.Errorf("unknown fill rule %q", text)
	}
	return nil
}
