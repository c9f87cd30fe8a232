// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/fmtrc/cmd/fmtrc/opts"
	"github.com/walteh/fmtrc/pkg/fsys"
	"github.com/walteh/fmtrc/pkg/log"
	"github.com/walteh/fmtrc/pkg/manifest"
	"github.com/walteh/fmtrc/pkg/operation"
)

// ProblemsError is returned when a batch finished with files needing
// attention. The summary has already been printed.
type ProblemsError struct {
	Count int
}

func (e *ProblemsError) Error() string {
	return fmt.Sprintf("%d files need attention", e.Count)
}

// NewFormatCmd creates a new format command
func NewFormatCmd(opts *opts.RootOpts) *cobra.Command {
	var (
		write bool
		check bool
		jobs  int
	)

	cmd := &cobra.Command{
		Use:   "format [files...]",
		Short: "Format files with the project configuration",
		Long: `Format runs every file through the format pipeline.
By default the formatted content is printed to stdout.
With --write changed files are rewritten in place.
With --check nothing is written and the command fails when a file would change.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if write && check {
				return errors.New("--write and --check cannot be combined")
			}

			wd, err := opts.WorkingDirectory()
			if err != nil {
				return err
			}

			mode := operation.ModePrint
			switch {
			case write:
				mode = operation.ModeWrite
			case check:
				mode = operation.ModeCheck
			}

			console := opts.Stdout
			if mode == operation.ModePrint {
				console = opts.Stderr
			}
			reporter := log.New(console, *zerolog.Ctx(cmd.Context()))
			ctx := log.NewContext(cmd.Context(), reporter)

			if mode != operation.ModePrint {
				reporter.Header(fmt.Sprintf("%s %d files", mode, len(args)))
			}

			if fs, err := fsys.New(opts.Fs, wd); err == nil {
				if data := manifest.Resolve(ctx, fs, wd); data != nil && !data.Valid {
					reporter.Warningf("%s is not valid JSON, formatting continues without its metadata", data.Path)
				}
			}

			runner := operation.NewRunner(opts.Pipeline(), opts.Fs, operation.Options{
				Mode:       mode,
				Jobs:       jobs,
				CurrentDir: wd,
				ConfigPath: opts.ConfigPath,
				Stdout:     opts.Stdout,
			})

			_, summary, err := runner.Run(ctx, args)
			if err != nil {
				return err
			}

			if mode != operation.ModePrint {
				reporter.PrintSummary(check)
			}

			if n := summary.Problems(check); n > 0 {
				return &ProblemsError{Count: n}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite files in place")
	cmd.Flags().BoolVar(&check, "check", false, "fail when a file is not formatted")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "files formatted concurrently (default: number of CPUs)")

	return cmd
}
