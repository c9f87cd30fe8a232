package engine

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/fmtrc/pkg/config"
)

func TestRegistry(t *testing.T) {
	reg := Default()

	tests := []struct {
		name     string
		path     string
		wantLang string
		wantOK   bool
	}{
		{name: "css", path: "/proj/a.css", wantLang: "css", wantOK: true},
		{name: "upper_case_extension", path: "/proj/A.CSS", wantLang: "css", wantOK: true},
		{name: "go", path: "main.go", wantLang: "go", wantOK: true},
		{name: "terraform", path: "infra/main.tf", wantLang: "hcl", wantOK: true},
		{name: "json", path: "package.json", wantLang: "json", wantOK: true},
		{name: "yml", path: "ci.yml", wantLang: "yaml", wantOK: true},
		{name: "javascript_unsupported", path: "node_modules/x.js", wantOK: false},
		{name: "jsonc_unsupported", path: "tsconfig.jsonc", wantOK: false},
		{name: "no_extension", path: "Makefile", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := reg.ForPath(tt.path)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantLang, f.Language())
			}
		})
	}

	assert.Equal(t, []string{"css", "go", "hcl", "json", "yaml"}, reg.Languages())

	f, ok := reg.ForLanguage("YAML")
	require.True(t, ok)
	assert.Equal(t, "yaml", f.Language())
}

func TestNewRegistryLaterWins(t *testing.T) {
	reg := NewRegistry(&JSONFormatter{}, &CSSFormatter{})
	f, ok := reg.ForPath("x.json")
	require.True(t, ok)
	assert.Equal(t, "json", f.Language())

	_, ok = reg.ForPath("x.go")
	assert.False(t, ok)
}

func TestOptionsIndent(t *testing.T) {
	assert.Equal(t, "  ", DefaultOptions().Indent())
	assert.Equal(t, "\t", Options{IndentStyle: config.IndentStyleTab, IndentWidth: 4}.Indent())
	assert.Equal(t, "    ", Options{IndentStyle: config.IndentStyleSpace, IndentWidth: 4}.Indent())
	assert.Equal(t, "  ", Options{}.Indent())
}

func TestSyntaxErrorMessage(t *testing.T) {
	err := &SyntaxError{Language: "css", Path: "a.css", Line: 3, Message: "unclosed block"}
	assert.Equal(t, "css syntax error in a.css:3: unclosed block", err.Error())

	err = &SyntaxError{Language: "json", Path: "a.json", Message: "invalid JSON document"}
	assert.Equal(t, "json syntax error in a.json: invalid JSON document", err.Error())
}

// 🧪 TestIdempotence formats each sample twice; the second pass must not change it
func TestIdempotence(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		path string
		src  string
	}{
		{name: "css", path: "a.css", src: "@media screen{a,b{color:rgb( 1,2 ,3 );margin:0  auto}}\n/* note */\nc{d:e}"},
		{name: "go", path: "main.go", src: "package main\nimport \"fmt\"\nfunc main(){fmt.Println( \"hi\" )}\n"},
		{name: "hcl", path: "main.tf", src: "resource \"x\" \"y\" {\na=1\nlonger_name = \"v\"\n}\n"},
		{name: "json", path: "data.json", src: `{"name":"demo","tags":["a","b"],"nested":{"deep":[1,2,3]}}`},
		{name: "yaml_multi_document", path: "ci.yaml", src: "# comment\nname:   demo\nlist:\n- a\n- b\n---\nsecond: doc\n"},
		{name: "yaml_trailing_comment_document", path: "e.yaml", src: "a: 1\n---\n# trailing\n"},
		{name: "yaml_empty", path: "empty.yaml", src: ""},
		{name: "yaml_comment_only", path: "c.yaml", src: "# only a comment\n"},
		{name: "yaml_separator_only", path: "d.yaml", src: "---\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := Default().ForPath(tt.path)
			require.True(t, ok)

			first, err := f.Format(ctx, tt.path, []byte(tt.src), DefaultOptions())
			require.NoError(t, err)

			second, err := f.Format(ctx, tt.path, first, DefaultOptions())
			require.NoError(t, err)
			assert.Equal(t, string(first), string(second))
		})
	}
}

func TestSyntaxErrors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		path    string
		content string
	}{
		{name: "go_missing_brace", path: "main.go", content: "package main\nfunc main() {\n"},
		{name: "hcl_unclosed_block", path: "a.hcl", content: "block {\n  a = 1\n"},
		{name: "json_truncated", path: "a.json", content: `{"a":`},
		{name: "json_empty", path: "a.json", content: ``},
		{name: "yaml_bad_mapping", path: "a.yaml", content: "a: b: c\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := Default().ForPath(tt.path)
			require.True(t, ok)

			_, err := f.Format(ctx, tt.path, []byte(tt.content), DefaultOptions())
			require.Error(t, err)

			var serr *SyntaxError
			require.True(t, errors.As(err, &serr), "expected SyntaxError, got %T", err)
			assert.Equal(t, f.Language(), serr.Language)
			assert.Equal(t, tt.path, serr.Path)
			assert.NotEmpty(t, serr.Message)
		})
	}
}

func TestGoFormatter(t *testing.T) {
	out, err := (&GoFormatter{}).Format(context.Background(), "a.go", []byte("package main\n\nvar x=1\n"), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "package main\n\nvar x = 1\n", string(out))
}

func TestHCLFormatter(t *testing.T) {
	out, err := (&HCLFormatter{}).Format(context.Background(), "a.hcl", []byte("a=1\nbb = 2\n"), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "a  = 1\nbb = 2\n", string(out))
}

func TestJSONFormatter(t *testing.T) {
	out, err := (&JSONFormatter{}).Format(context.Background(), "a.json", []byte(`{"b":1,"a":{"c":true}}`), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"b\": 1,\n  \"a\": {\n    \"c\": true\n  }\n}\n", string(out), "keys keep their order")

	out, err = (&JSONFormatter{}).Format(context.Background(), "a.json", []byte(`{"a":{"c":true}}`), Options{IndentStyle: config.IndentStyleTab, LineWidth: 80})
	require.NoError(t, err)
	assert.Equal(t, "{\n\t\"a\": {\n\t\t\"c\": true\n\t}\n}\n", string(out))
}

func TestYAMLFormatter(t *testing.T) {
	out, err := (&YAMLFormatter{}).Format(context.Background(), "a.yaml", []byte("a:   1\n# keep me\nb: two\n"), DefaultOptions())
	require.NoError(t, err)
	assert.Contains(t, string(out), "a: 1\n")
	assert.Contains(t, string(out), "# keep me")
	assert.Contains(t, string(out), "b: two\n")

	out, err = (&YAMLFormatter{}).Format(context.Background(), "a.yaml", []byte(""), DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestYAMLFormatterDocumentsWithoutContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "empty", content: "", want: ""},
		{name: "blank_line", content: "\n", want: "\n"},
		{name: "comment_only", content: "# only a comment\n", want: "# only a comment\n"},
		{name: "separator_only", content: "---\n", want: "---\n"},
		{name: "separators_and_comments", content: "---\n# one\n---\n# two\n", want: "---\n# one\n---\n# two\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := (&YAMLFormatter{}).Format(context.Background(), "a.yaml", []byte(tt.content), DefaultOptions())
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestYAMLFormatterTrailingCommentDocument(t *testing.T) {
	out, err := (&YAMLFormatter{}).Format(context.Background(), "e.yaml", []byte("a: 1\n---\n# trailing\n"), DefaultOptions())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(out), "a: 1\n"), "got %q", out)
	assert.Contains(t, string(out), "# trailing")
	assert.NotContains(t, string(out), "---", "no empty document is emitted")
}
