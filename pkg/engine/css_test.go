package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/fmtrc/pkg/config"
)

func TestCSSFormatter(t *testing.T) {
	tests := []struct {
		name    string
		content string
		opts    Options
		want    string
	}{
		{
			name:    "single_rule",
			content: "a{color:red}",
			want:    "a {\n  color: red;\n}\n",
		},
		{
			name:    "already_formatted",
			content: "a {\n  color: red;\n}\n",
			want:    "a {\n  color: red;\n}\n",
		},
		{
			name:    "blank_line_between_rules",
			content: "a{color:red}b{margin:0  auto}",
			want:    "a {\n  color: red;\n}\n\nb {\n  margin: 0 auto;\n}\n",
		},
		{
			name:    "tab_indent",
			content: "a{color:red}",
			opts:    Options{IndentStyle: config.IndentStyleTab},
			want:    "a {\n\tcolor: red;\n}\n",
		},
		{
			name:    "four_space_indent",
			content: "a{color:red}",
			opts:    Options{IndentStyle: config.IndentStyleSpace, IndentWidth: 4},
			want:    "a {\n    color: red;\n}\n",
		},
		{
			name:    "nested_media_block",
			content: "@media screen{a{color:red;}}",
			want:    "@media screen {\n  a {\n    color: red;\n  }\n}\n",
		},
		{
			name:    "selector_list_and_function",
			content: "a,b{color:rgb( 1,2 ,3 )}",
			want:    "a, b {\n  color: rgb(1, 2, 3);\n}\n",
		},
		{
			name:    "at_rule_statement",
			content: "@import url(foo.css);a{b:c}",
			want:    "@import url(foo.css);\n\na {\n  b: c;\n}\n",
		},
		{
			name:    "leading_comment",
			content: "/* hi */\na{color:red}",
			want:    "/* hi */\n\na {\n  color: red;\n}\n",
		},
		{
			name:    "pseudo_class_selector",
			content: "a:hover{color : blue}",
			want:    "a:hover {\n  color: blue;\n}\n",
		},
		{
			name:    "empty_input",
			content: "",
			want:    "",
		},
		{
			name:    "whitespace_only",
			content: " \n\t\n",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			if opts.IndentStyle == "" {
				opts = DefaultOptions()
			}
			out, err := (&CSSFormatter{}).Format(context.Background(), "a.css", []byte(tt.content), opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestCSSFormatterErrors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		errContains string
	}{
		{name: "unclosed_block", content: "a{color:red", errContains: "unclosed block"},
		{name: "stray_closing_brace", content: "}", errContains: "unexpected '}'"},
		{name: "newline_in_string", content: "a{content:\"x\n}", errContains: "unterminated string"},
		{name: "unterminated_comment", content: "a{color:red}/* open", errContains: "unterminated comment"},
		{name: "trailing_selector", content: "a{color:red}b", errContains: "unexpected end of input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := (&CSSFormatter{}).Format(context.Background(), "a.css", []byte(tt.content), DefaultOptions())
			require.Error(t, err)

			var serr *SyntaxError
			require.True(t, errors.As(err, &serr))
			assert.Contains(t, serr.Message, tt.errContains)
			assert.Positive(t, serr.Line)
		})
	}
}

func TestSplitDeclaration(t *testing.T) {
	name, value, ok := splitDeclaration("background:url(a:b) no-repeat")
	require.True(t, ok)
	assert.Equal(t, "background", name)
	assert.Equal(t, "url(a:b) no-repeat", value)

	_, _, ok = splitDeclaration("no colon here")
	assert.False(t, ok)

	_, _, ok = splitDeclaration(":value")
	assert.False(t, ok)
}
