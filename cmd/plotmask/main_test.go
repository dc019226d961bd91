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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const triangleJob = `
width: 20
height: 10
output: triangle.pgm
layer:
  - op: fill
    path:
      - {cmd: M, pts: [[0, 0]]}
      - {cmd: L, pts: [[20, 0]]}
      - {cmd: L, pts: [[10, 10]]}
      - {cmd: Z}
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "triangle.yaml")
	require.NoError(t, os.WriteFile(good, []byte(triangleJob), 0o644))
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("width: 0\nheight: 3\n"), 0o644))

	out, err := run(t, "check", good)
	require.NoError(t, err)
	assert.Contains(t, out, "20x10, 1 layers")

	_, err = run(t, "check", good, bad)
	assert.Error(t, err)

	_, err = run(t, "check")
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "triangle.yaml")
	require.NoError(t, os.WriteFile(name, []byte(triangleJob), 0o644))

	_, err := run(t, "render", name)
	require.NoError(t, err)
	body, err := os.ReadFile(filepath.Join(dir, "triangle.pgm"))
	require.NoError(t, err)
	assert.Len(t, body, len("P5\n20 10\n255\n")+200)

	override := filepath.Join(dir, "other.png")
	_, err = run(t, "render", "-v", "-o", override, name)
	require.NoError(t, err)
	_, err = os.Stat(override)
	assert.NoError(t, err)

	_, err = run(t, "render", filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
