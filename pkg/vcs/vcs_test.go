package vcs

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/fmtrc/pkg/config"
	"github.com/walteh/fmtrc/pkg/fsys"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	return zerolog.New(zerolog.TestWriter{T: t}).WithContext(context.Background())
}

func TestBaseDirectory(t *testing.T) {
	tests := []struct {
		name      string
		root      string
		configDir string
		want      string
	}{
		{name: "config_dir", configDir: "/proj", want: "/proj"},
		{name: "working_dir_fallback", configDir: "", want: "/wd"},
		{name: "relative_root", root: "..", configDir: "/proj/app", want: "/proj"},
		{name: "absolute_root", root: "/repo", configDir: "/proj/app", want: "/repo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.VCSConfiguration{Root: tt.root}
			assert.Equal(t, tt.want, BaseDirectory(cfg, tt.configDir, "/wd"))
		})
	}
}

func TestRetrieveGitignoreMatches(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/proj", 0o755))
	require.NoError(t, afero.WriteFile(mem, "/proj/.gitignore", []byte("# deps\nnode_modules/\n\n*.log  \n"), 0o644))
	require.NoError(t, afero.WriteFile(mem, "/proj/.ignore", []byte("generated/\n"), 0o644))
	fs, err := fsys.New(mem, "/proj")
	require.NoError(t, err)

	t.Run("disabled_returns_nothing", func(t *testing.T) {
		got, err := RetrieveGitignoreMatches(testContext(t), fs, config.VCSConfiguration{Enabled: false, UseIgnoreFile: true}, "/proj")
		require.NoError(t, err)
		assert.Empty(t, got.Lines)
	})

	t.Run("ignore_file_off_returns_nothing", func(t *testing.T) {
		got, err := RetrieveGitignoreMatches(testContext(t), fs, config.VCSConfiguration{Enabled: true}, "/proj")
		require.NoError(t, err)
		assert.Empty(t, got.Lines)
	})

	t.Run("reads_both_files", func(t *testing.T) {
		got, err := RetrieveGitignoreMatches(testContext(t), fs, config.VCSConfiguration{Enabled: true, UseIgnoreFile: true}, "/proj")
		require.NoError(t, err)
		assert.Equal(t, []string{"/proj/.gitignore", "/proj/.ignore"}, got.Files)
		assert.Equal(t, []string{"node_modules/", "*.log", "generated/"}, got.Lines)
	})

	t.Run("missing_files_are_skipped", func(t *testing.T) {
		got, err := RetrieveGitignoreMatches(testContext(t), fs, config.VCSConfiguration{Enabled: true, UseIgnoreFile: true}, "/other")
		require.NoError(t, err)
		assert.Empty(t, got.Files)
	})
}

func TestMatcherIgnored(t *testing.T) {
	m := NewMatcher("/proj", []string{"node_modules/", "*.log", "/dist", "docs/build", "!keep.log"})
	require.Equal(t, 5, m.Len())

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "file_under_ignored_dir", path: "/proj/node_modules/x.css", want: true},
		{name: "nested_ignored_dir", path: "/proj/pkg/node_modules/y/z.css", want: true},
		{name: "glob_extension", path: "/proj/logs/app.log", want: true},
		{name: "negated_file", path: "/proj/keep.log", want: false},
		{name: "anchored_root_dir", path: "/proj/dist/a.css", want: true},
		{name: "anchored_not_nested", path: "/proj/src/dist/a.css", want: false},
		{name: "path_with_slash", path: "/proj/docs/build/site.css", want: true},
		{name: "plain_file", path: "/proj/src/a.css", want: false},
		{name: "outside_base", path: "/elsewhere/node_modules/x.css", want: false},
		{name: "base_itself", path: "/proj", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Ignored(tt.path, false))
		})
	}
}

func TestEmptyMatcher(t *testing.T) {
	var m *Matcher
	assert.False(t, m.Ignored("/proj/a.css", false))
	assert.False(t, NewMatcher("/proj", nil).Ignored("/proj/a.css", false))
}
