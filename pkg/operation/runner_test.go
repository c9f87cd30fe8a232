package operation

import (
	"bytes"
	"context"
	"sync/atomic"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/fmtrc/pkg/log"
	"github.com/walteh/fmtrc/pkg/pipeline"
	"github.com/walteh/fmtrc/pkg/workspace"
)

const (
	messy  = "a{color:red}"
	pretty = "a {\n  color: red;\n}\n"
)

func testContext(t *testing.T, console *bytes.Buffer) context.Context {
	t.Helper()
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	zl := zerolog.New(zerolog.TestWriter{T: t})
	ctx := zl.WithContext(context.Background())
	return log.NewContext(ctx, log.New(console, zl))
}

func project(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/proj", 0o755))
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}
	return fs
}

func memWriter(fs afero.Fs) WriteFunc {
	return func(_ context.Context, path string, content []byte) (bool, error) {
		return true, afero.WriteFile(fs, path, content, 0o644)
	}
}

func TestRunModes(t *testing.T) {
	files := map[string]string{
		"/proj/a.css":       messy,
		"/proj/b.css":       pretty,
		"/proj/c.js":        "let x",
		"/proj/d.css":       "a{",
		"/proj/.fmtrc.json": `{}`,
	}
	args := []string{"a.css", "b.css", "c.js", "d.css", "missing.css"}

	tests := []struct {
		name      string
		mode      Mode
		wantKinds []log.ResultKind
		wantA     string
		wantOut   string
	}{
		{
			name:      "print",
			mode:      ModePrint,
			wantKinds: []log.ResultKind{log.ResultFormatted, log.ResultUnchanged, log.ResultIgnored, log.ResultError, log.ResultFailed},
			wantA:     messy,
			wantOut:   pretty + pretty + "let x",
		},
		{
			name:      "write",
			mode:      ModeWrite,
			wantKinds: []log.ResultKind{log.ResultFormatted, log.ResultUnchanged, log.ResultIgnored, log.ResultError, log.ResultFailed},
			wantA:     pretty,
		},
		{
			name:      "check",
			mode:      ModeCheck,
			wantKinds: []log.ResultKind{log.ResultWouldChange, log.ResultUnchanged, log.ResultIgnored, log.ResultError, log.ResultFailed},
			wantA:     messy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var console, stdout bytes.Buffer
			ctx := testContext(t, &console)
			fs := project(t, files)

			runner := NewRunner(pipeline.New(workspace.NewServer(), fs), fs, Options{
				Mode:       tt.mode,
				Jobs:       2,
				CurrentDir: "/proj",
				Stdout:     &stdout,
				Write:      memWriter(fs),
			})

			results, summary, err := runner.Run(ctx, args)
			require.NoError(t, err)
			require.Len(t, results, len(args))

			for i, want := range tt.wantKinds {
				assert.Equal(t, want, results[i].Kind, "result for %s", args[i])
				assert.Equal(t, args[i], results[i].Path)
			}
			assert.Equal(t, len(args), summary.Total())
			assert.Contains(t, results[3].Detail, "syntax error")

			got, err := afero.ReadFile(fs, "/proj/a.css")
			require.NoError(t, err)
			assert.Equal(t, tt.wantA, string(got))

			assert.Equal(t, tt.wantOut, stdout.String())
			assert.Contains(t, console.String(), "a.css")
		})
	}
}

type stubFormatter struct {
	calls   atomic.Int32
	outcome pipeline.Outcome
	err     error
}

func (s *stubFormatter) Run(ctx context.Context, req pipeline.Request) (pipeline.Outcome, error) {
	s.calls.Add(1)
	return s.outcome, s.err
}

func TestRunFailureDoesNotStopBatch(t *testing.T) {
	var console bytes.Buffer
	ctx := testContext(t, &console)
	fs := project(t, map[string]string{"/proj/a.css": messy, "/proj/b.css": messy})

	stub := &stubFormatter{err: errors.New("resolve failed")}
	runner := NewRunner(stub, fs, Options{CurrentDir: "/proj", Jobs: 1})

	results, summary, err := runner.Run(ctx, []string{"a.css", "/proj/b.css"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, stub.calls.Load())
	assert.Equal(t, 2, summary[log.ResultFailed])
	assert.Equal(t, "resolve failed", results[1].Detail)
	assert.Equal(t, 2, summary.Problems(false))
}

func TestRunWriteError(t *testing.T) {
	var console bytes.Buffer
	ctx := testContext(t, &console)
	fs := project(t, map[string]string{"/proj/a.css": messy})

	runner := NewRunner(&stubFormatter{outcome: pipeline.Success{Content: pretty}}, fs, Options{
		Mode:       ModeWrite,
		CurrentDir: "/proj",
		Write: func(context.Context, string, []byte) (bool, error) {
			return false, errors.New("disk full")
		},
	})

	results, _, err := runner.Run(ctx, []string{"a.css"})
	require.NoError(t, err)
	assert.Equal(t, log.ResultFailed, results[0].Kind)
	assert.Equal(t, "disk full", results[0].Detail)
}

func TestRunCancelled(t *testing.T) {
	var console bytes.Buffer
	ctx, cancel := context.WithCancel(testContext(t, &console))
	cancel()

	fs := project(t, map[string]string{"/proj/a.css": messy})
	stub := &stubFormatter{outcome: pipeline.Success{Content: pretty}}

	_, _, err := NewRunner(stub, fs, Options{CurrentDir: "/proj"}).Run(ctx, []string{"a.css"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.EqualValues(t, 0, stub.calls.Load())
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "print", ModePrint.String())
	assert.Equal(t, "write", ModeWrite.String())
	assert.Equal(t, "check", ModeCheck.String())
}
