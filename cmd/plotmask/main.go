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

// Plotmask renders job files (TOML or YAML scene descriptions) to images.
//
// Usage:
//
//	plotmask render [-o out.png] [-v] job.toml
//	plotmask check job.toml...
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"seehuhn.de/go/coverage"
	"seehuhn.de/go/coverage/job"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "plotmask",
		Short:         "Render vector paths into anti-aliased coverage masks",
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
			coverage.SetLogger(slog.New(h))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug messages")

	root.AddCommand(newRenderCmd(), newCheckCmd())
	return root
}

func newRenderCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "render [-o output] job-file",
		Short: "Render a job file to an image (.pgm, .png, .bmp, .tif)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := job.Load(args[0])
			if err != nil {
				return err
			}

			out := output
			if out == "" {
				out = j.OutputPath()
			}
			if out == "" {
				return errors.New("no output file given, use -o or set \"output\" in the job file")
			}

			img, err := j.Render()
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			return job.Write(img, out)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (overrides the job file)")
	return cmd
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check job-file...",
		Short: "Validate job files without rendering",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var errs []error
			for _, name := range args {
				j, err := job.Load(name)
				if err != nil {
					errs = append(errs, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %dx%d, %d layers\n",
					name, j.Width, j.Height, len(j.Layers))
			}
			return errors.Join(errs...)
		},
	}
}
