// Command export writes every test case as a job file, so that the cases
// can be rendered with plotmask or inspected by hand.
// Run from the module root directory.
package main

import (
	"flag"
	"fmt"
	"log"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/coverage/job"
	"seehuhn.de/go/coverage/testcases"
)

func main() {
	dir := flag.String("d", "testdata/jobs", "output directory")
	format := flag.String("f", "toml", "job file format (toml or yaml)")
	flag.Parse()

	ext := "." + *format
	fmtID, err := job.FormatOf(ext)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.MkdirAll(*dir, 0o755); err != nil {
		log.Fatal(err)
	}

	n := 0
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			j := toJob(name, tc)
			if err := writeJob(filepath.Join(*dir, name+ext), j, fmtID); err != nil {
				log.Fatal(err)
			}
			n++
		}
	}
	fmt.Printf("wrote %d job files to %s\n", n, *dir)
}

func writeJob(fname string, j *job.Job, format job.Format) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return j.Encode(f, format)
}

func toJob(name string, tc testcases.TestCase) *job.Job {
	l := job.Layer{Path: pathToSegments(tc.Path)}
	if tc.CTM != [6]float64{} {
		l.Transform = tc.CTM[:]
	}

	switch op := tc.Op.(type) {
	case testcases.Fill:
		l.Op = "fill"
		l.Rule = op.Rule.String()
	case testcases.Stroke:
		l.Op = "stroke"
		l.PenWidth = op.PenWidth
		l.Cap = capNames[op.Cap]
		l.Join = joinNames[op.Join]
		l.MiterLimit = op.MiterLimit
		l.Dash = op.Dash
		l.DashPhase = op.DashPhase
	}

	return &job.Job{
		Width:  tc.Width,
		Height: tc.Height,
		Output: name + ".png",
		Layers: []job.Layer{l},
	}
}

var capNames = map[graphics.LineCapStyle]string{
	graphics.LineCapButt:   "butt",
	graphics.LineCapRound:  "round",
	graphics.LineCapSquare: "square",
}

var joinNames = map[graphics.LineJoinStyle]string{
	graphics.LineJoinMiter: "miter",
	graphics.LineJoinRound: "round",
	graphics.LineJoinBevel: "bevel",
}

func pathToSegments(p *path.Data) []job.Segment {
	var segs []job.Segment
	idx := 0
	for _, cmd := range p.Cmds {
		var seg job.Segment
		n := 0
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd, n = "M", 1
		case path.CmdLineTo:
			seg.Cmd, n = "L", 1
		case path.CmdQuadTo:
			seg.Cmd, n = "Q", 2
		case path.CmdCubeTo:
			seg.Cmd, n = "C", 3
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for _, pt := range p.Coords[idx : idx+n] {
			seg.Pts = append(seg.Pts, []float64{pt.X, pt.Y})
		}
		idx += n
		segs = append(segs, seg)
	}
	return segs
}
