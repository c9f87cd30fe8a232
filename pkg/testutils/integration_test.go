package testutils

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/fmtrc/pkg/fileutil"
	"github.com/walteh/fmtrc/pkg/log"
	"github.com/walteh/fmtrc/pkg/operation"
	"github.com/walteh/fmtrc/pkg/pipeline"
	"github.com/walteh/fmtrc/pkg/workspace"
)

// TestWriteProjectTree formats a small on-disk repository in write mode
// with ignore files and a manifest.
func TestWriteProjectTree(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	root := t.TempDir()
	files := map[string]string{
		".fmtrc.yaml":      "vcs:\n  enabled: true\n  use_ignore_file: true\nfiles:\n  ignore: [\"vendor/**\"]\n",
		".gitignore":       "# build output\ndist/\n",
		"package.json":     `{"name": "site", "version": "1.0.0"}`,
		"web/site.css":     "body{margin:0}",
		"web/data.json":    `{"a":1}`,
		"dist/site.css":    "body{margin:0}",
		"vendor/lib/x.css": "a{}",
		"infra/main.tf":    "a   =   1\n",
	}
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	var console bytes.Buffer
	zl := zerolog.New(zerolog.TestWriter{T: t}).With().Timestamp().Logger()
	ctx := log.NewContext(zl.WithContext(context.Background()), log.New(&console, zl))

	runner := operation.NewRunner(pipeline.New(workspace.NewServer(), afero.NewOsFs()), afero.NewOsFs(), operation.Options{
		Mode:       operation.ModeWrite,
		Jobs:       3,
		CurrentDir: root,
		Write:      fileutil.WriteFormatted,
	})

	args := []string{"web/site.css", "web/data.json", "dist/site.css", "vendor/lib/x.css", "infra/main.tf"}
	results, summary, err := runner.Run(ctx, args)
	require.NoError(t, err)
	require.Len(t, results, len(args))

	byPath := map[string]operation.Result{}
	for _, r := range results {
		byPath[r.Path] = r
	}

	assert.Equal(t, log.ResultFormatted, byPath["web/site.css"].Kind)
	assert.Equal(t, log.ResultFormatted, byPath["web/data.json"].Kind)
	assert.Equal(t, log.ResultIgnored, byPath["dist/site.css"].Kind, "gitignored")
	assert.Equal(t, log.ResultIgnored, byPath["vendor/lib/x.css"].Kind, "files.ignore")
	assert.Equal(t, 0, summary.Problems(false))

	read := func(name string) string {
		b, err := os.ReadFile(filepath.Join(root, name))
		require.NoError(t, err)
		return string(b)
	}

	assert.Equal(t, "body {\n  margin: 0;\n}\n", read("web/site.css"))
	assert.Equal(t, "body{margin:0}", read("dist/site.css"))
	assert.Equal(t, "a{}", read("vendor/lib/x.css"))
	assert.Contains(t, read("web/data.json"), "\"a\": 1")
	assert.Equal(t, "a = 1\n", read("infra/main.tf"))

	entries, err := os.ReadDir(filepath.Join(root, "web"))
	require.NoError(t, err)
	assert.Len(t, entries, 2, "no temp files left behind")
}
