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

package operation

import (
	"context"
	"io"
	"path/filepath"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"

	"github.com/walteh/fmtrc/pkg/fileutil"
	"github.com/walteh/fmtrc/pkg/log"
	"github.com/walteh/fmtrc/pkg/pipeline"
)

// 🎛️ Mode selects what happens with formatted content
type Mode int

const (
	// ModePrint writes formatted content to Options.Stdout
	ModePrint Mode = iota
	// ModeWrite rewrites changed files in place
	ModeWrite
	// ModeCheck only reports files that would change
	ModeCheck
)

func (m Mode) String() string {
	switch m {
	case ModeWrite:
		return "write"
	case ModeCheck:
		return "check"
	default:
		return "print"
	}
}

// 🔌 Formatter runs one request through the pipeline.
// *pipeline.Pipeline implements it.
type Formatter interface {
	Run(ctx context.Context, req pipeline.Request) (pipeline.Outcome, error)
}

var _ Formatter = (*pipeline.Pipeline)(nil)

// WriteFunc stores formatted content and reports whether the file changed
type WriteFunc func(ctx context.Context, path string, content []byte) (bool, error)

// 🔧 Options contains configuration for the runner
type Options struct {
	Mode       Mode
	Jobs       int // values below one mean runtime.NumCPU
	CurrentDir string
	ConfigPath string
	Stdout     io.Writer
	Write      WriteFunc // defaults to fileutil.WriteFormatted
}

// 📄 Result is the outcome for one file of the batch
type Result struct {
	Path    string
	Kind    log.ResultKind
	Content []byte // formatted text, or the original when ignored
	Detail  string
}

// 🏃 Runner executes a batch of format requests
type Runner struct {
	formatter Formatter
	fs        afero.Fs
	opts      Options
}

// 🏗️ NewRunner creates a new runner
func NewRunner(formatter Formatter, fs afero.Fs, opts Options) *Runner {
	if opts.Jobs < 1 {
		opts.Jobs = runtime.NumCPU()
	}
	if opts.Stdout == nil {
		opts.Stdout = io.Discard
	}
	if opts.Write == nil {
		opts.Write = fileutil.WriteFormatted
	}
	return &Runner{formatter: formatter, fs: fs, opts: opts}
}

// 🚀 Run formats files and reports each one through the logger in ctx. In
// print mode the content of every file is written to Stdout in argument
// order once the batch completes. The returned error is set only when ctx
// was cancelled.
func (r *Runner) Run(ctx context.Context, files []string) ([]Result, log.Summary, error) {
	logger := zerolog.Ctx(ctx)
	reporter := log.FromContext(ctx)

	results := make([]Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Jobs)

	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			res := r.runOne(gctx, file)
			results[i] = res
			reporter.LogFileResult(gctx, log.FileResult{
				Path:     res.Path,
				Kind:     res.Kind,
				Detail:   res.Detail,
				Duration: time.Since(start),
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, errors.Errorf("batch cancelled: %w", err)
	}

	summary := log.Summary{}
	for _, res := range results {
		summary[res.Kind]++
	}

	if r.opts.Mode == ModePrint {
		for _, res := range results {
			if res.Content == nil {
				continue
			}
			if _, err := r.opts.Stdout.Write(res.Content); err != nil {
				return nil, nil, errors.Errorf("writing %s to stdout: %w", res.Path, err)
			}
		}
	}

	logger.Debug().
		Str("mode", r.opts.Mode.String()).
		Int("files", len(files)).
		Int("problems", summary.Problems(r.opts.Mode == ModeCheck)).
		Msg("batch done")

	return results, summary, nil
}

func (r *Runner) absolute(file string) string {
	if filepath.IsAbs(file) {
		return filepath.Clean(file)
	}
	return filepath.Join(r.opts.CurrentDir, file)
}

func (r *Runner) runOne(ctx context.Context, file string) Result {
	res := Result{Path: file}
	path := r.absolute(file)

	content, err := afero.ReadFile(r.fs, path)
	if err != nil {
		res.Kind = log.ResultFailed
		res.Detail = err.Error()
		return res
	}

	outcome, err := r.formatter.Run(ctx, pipeline.Request{
		Target:     path,
		Content:    content,
		CurrentDir: r.opts.CurrentDir,
		ConfigPath: r.opts.ConfigPath,
	})
	if err != nil {
		res.Kind = log.ResultFailed
		res.Detail = err.Error()
		return res
	}

	switch o := outcome.(type) {
	case pipeline.Ignored:
		res.Kind = log.ResultIgnored
		res.Detail = o.Reason
		res.Content = content
		return res
	case pipeline.Error:
		res.Kind = log.ResultError
		res.Detail = o.Message
		return res
	case pipeline.Success:
		res.Content = []byte(o.Content)
		return r.apply(ctx, path, content, res)
	default:
		res.Kind = log.ResultFailed
		res.Detail = "unknown outcome " + outcome.Status()
		return res
	}
}

func (r *Runner) apply(ctx context.Context, path string, original []byte, res Result) Result {
	changed := string(original) != string(res.Content)

	switch r.opts.Mode {
	case ModeCheck:
		if changed {
			res.Kind = log.ResultWouldChange
		} else {
			res.Kind = log.ResultUnchanged
		}
	case ModeWrite:
		if !changed {
			res.Kind = log.ResultUnchanged
			return res
		}
		wrote, err := r.opts.Write(ctx, path, res.Content)
		if err != nil {
			res.Kind = log.ResultFailed
			res.Detail = err.Error()
			return res
		}
		if wrote {
			res.Kind = log.ResultFormatted
		} else {
			res.Kind = log.ResultUnchanged
		}
	default:
		if changed {
			res.Kind = log.ResultFormatted
		} else {
			res.Kind = log.ResultUnchanged
		}
	}
	return res
}
