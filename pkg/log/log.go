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

// Package log prints per-file format results for the command line. Every
// console line is mirrored to zerolog.
package log

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 35 // base width for the path column
	statusWidth = 12 // width for the status column
)

// 🎯 ResultKind classifies what happened to a single file
type ResultKind int

const (
	ResultUnchanged   ResultKind = iota // already formatted
	ResultFormatted                     // new content produced or written
	ResultWouldChange                   // --check found a difference
	ResultIgnored                       // skipped by ignore rules or unsupported
	ResultError                         // the engine rejected the content
	ResultFailed                        // the pipeline itself failed
)

func (k ResultKind) String() string {
	switch k {
	case ResultUnchanged:
		return "unchanged"
	case ResultFormatted:
		return "formatted"
	case ResultWouldChange:
		return "would change"
	case ResultIgnored:
		return "ignored"
	case ResultError:
		return "error"
	case ResultFailed:
		return "failed"
	default:
		return fmt.Sprintf("ResultKind(%d)", int(k))
	}
}

// 📄 FileResult is one line of console output
type FileResult struct {
	Path     string
	Kind     ResultKind
	Detail   string // error text or ignore reason
	Duration time.Duration
}

// 📊 Summary counts results by kind
type Summary map[ResultKind]int

// Total returns the number of recorded files
func (s Summary) Total() int {
	n := 0
	for _, c := range s {
		n += c
	}
	return n
}

// Problems counts files that should make a run exit non-zero
func (s Summary) Problems(check bool) int {
	n := s[ResultError] + s[ResultFailed]
	if check {
		n += s[ResultWouldChange]
	}
	return n
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
	results []FileResult
}

// 🏭 New creates a logger printing to console and mirroring to zlog
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

type contextKey struct{}

// FromContext returns the logger stored in ctx, or a logger that discards
// console output when none is set.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(contextKey{}).(*Logger); ok {
		return l
	}
	return New(io.Discard, *zerolog.Ctx(ctx))
}

// NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

func symbolFor(kind ResultKind) (string, color.Attribute) {
	switch kind {
	case ResultFormatted:
		return "⟳", color.FgBlue
	case ResultWouldChange:
		return "✎", color.FgYellow
	case ResultIgnored:
		return "-", color.FgHiBlack
	case ResultError:
		return "✗", color.FgRed
	case ResultFailed:
		return "!", color.FgMagenta
	default:
		return "✓", color.FgGreen
	}
}

func (l *Logger) formatResult(r FileResult) string {
	symbol, c := symbolFor(r.Kind)
	line := fmt.Sprintf("%*s%s %-*s %s",
		fileIndent, "",
		color.New(c).Sprint(symbol),
		nameWidth, r.Path,
		color.New(c).Sprintf("%-*s", statusWidth, r.Kind.String()))
	if r.Detail != "" {
		line += " " + color.New(color.Faint).Sprint(r.Detail)
	}
	return line
}

// 📝 LogFileResult prints and records one file result
func (l *Logger) LogFileResult(ctx context.Context, r FileResult) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.results = append(l.results, r)
	fmt.Fprintln(l.console, l.formatResult(r))

	ev := l.zlog.Info()
	if r.Kind == ResultError || r.Kind == ResultFailed {
		ev = l.zlog.Warn()
	}
	ev.Str("file", r.Path).
		Str("result", r.Kind.String()).
		Str("detail", r.Detail).
		Dur("duration", r.Duration).
		Msg("file result")
}

// Results returns a copy of every result recorded so far
func (l *Logger) Results() []FileResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]FileResult, len(l.results))
	copy(out, l.results)
	return out
}

// Summary counts the recorded results
func (l *Logger) Summary() Summary {
	l.mu.Lock()
	defer l.mu.Unlock()
	s := Summary{}
	for _, r := range l.results {
		s[r.Kind]++
	}
	return s
}

// 📊 PrintSummary writes the closing summary block
func (l *Logger) PrintSummary(check bool) {
	s := l.Summary()

	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf("%d files: %d formatted, %d unchanged, %d ignored",
		s.Total(), s[ResultFormatted], s[ResultUnchanged], s[ResultIgnored])
	if check {
		msg += fmt.Sprintf(", %d would change", s[ResultWouldChange])
	}

	fmt.Fprintln(l.console)
	switch {
	case s[ResultFailed] > 0 || s[ResultError] > 0:
		msg += fmt.Sprintf(", %d errors, %d failures", s[ResultError], s[ResultFailed])
		pterm.Error.WithWriter(l.console).WithPrefix(pterm.Prefix{Text: "❌"}).Println(msg)
		l.zlog.Warn().Msg(msg)
	case check && s[ResultWouldChange] > 0:
		pterm.Warning.WithWriter(l.console).WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(msg)
		l.zlog.Warn().Msg(msg)
	default:
		pterm.Success.WithWriter(l.console).WithPrefix(pterm.Prefix{Text: "✅"}).Println(msg)
		l.zlog.Info().Msg(msg)
	}
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("fmtrc")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}
