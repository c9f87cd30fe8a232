package manifest

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/fmtrc/pkg/fsys"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantValid bool
		wantName  string
		wantVer   string
	}{
		{name: "full_manifest", content: `{"name": "demo", "version": "1.2.3"}`, wantValid: true, wantName: "demo", wantVer: "1.2.3"},
		{name: "missing_fields", content: `{"private": true}`, wantValid: true},
		{name: "malformed_json", content: `{"name": `, wantValid: false},
		{name: "not_an_object", content: `["a"]`, wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse("/proj/package.json", []byte(tt.content))
			assert.Equal(t, tt.wantValid, got.Valid)
			assert.Equal(t, tt.wantName, got.Name)
			assert.Equal(t, tt.wantVer, got.Version)
			assert.Equal(t, tt.content, string(got.Content))
		})
	}
}

func TestResolve(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/proj/src/deep", 0o755))
	require.NoError(t, mem.MkdirAll("/broken/sub", 0o755))
	require.NoError(t, mem.MkdirAll("/none", 0o755))
	require.NoError(t, afero.WriteFile(mem, "/proj/package.json", []byte(`{"name":"demo"}`), 0o644))
	require.NoError(t, afero.WriteFile(mem, "/broken/package.json", []byte(`{{{`), 0o644))
	fs, err := fsys.New(mem, "/")
	require.NoError(t, err)

	ctx := zerolog.New(zerolog.TestWriter{T: t}).WithContext(context.Background())

	t.Run("found_in_ancestor", func(t *testing.T) {
		got := Resolve(ctx, fs, "/proj/src/deep")
		require.NotNil(t, got)
		assert.Equal(t, "/proj/package.json", got.Path)
		assert.Equal(t, "demo", got.Name)
		assert.True(t, got.Valid)
	})

	t.Run("malformed_still_attached", func(t *testing.T) {
		got := Resolve(ctx, fs, "/broken/sub")
		require.NotNil(t, got)
		assert.False(t, got.Valid)
		assert.Equal(t, "{{{", string(got.Content))
	})

	t.Run("absent", func(t *testing.T) {
		assert.Nil(t, Resolve(ctx, fs, "/none"))
	})

	t.Run("search_error_is_absent", func(t *testing.T) {
		assert.Nil(t, Resolve(ctx, fs, "bad\xff"))
	})
}
