package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 🧪 TestParserRegistration tests the parser registration system
func TestParserRegistration(t *testing.T) {
	originalParsers := parsers
	defer func() {
		parsers = originalParsers
	}()

	parsers = nil

	mockParser := &YAMLParser{}
	Register(mockParser)
	assert.Len(t, parsers, 1, "should have 1 parser registered")
	assert.Same(t, mockParser, parsers[0], "registered parser should match")
}

// 🧪 TestParserSelection tests parser selection by file name
func TestParserSelection(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     Parser
	}{
		{name: "yaml_file", filename: "/proj/.fmtrc.yaml", want: &YAMLParser{}},
		{name: "yml_file", filename: ".fmtrc.yml", want: &YAMLParser{}},
		{name: "json_file", filename: "/proj/.fmtrc.json", want: &JSONParser{}},
		{name: "hcl_file", filename: "fmtrc.hcl", want: &HCLParser{}},
		{name: "unknown_extension", filename: "fmtrc.toml", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetParser(tt.filename)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.IsType(t, tt.want, got)
		})
	}
}

// 🧪 TestParsers checks that every format decodes the same document shape
func TestParsers(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		filename    string
		content     string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg *PartialConfiguration)
	}{
		{
			name:     "yaml_full",
			filename: ".fmtrc.yaml",
			content: `
formatter:
  indent_style: tab
  line_width: 100
  ignore: ["vendor/**"]
files:
  max_size: 2048
vcs:
  enabled: true
  use_ignore_file: true
`,
			check: func(t *testing.T, cfg *PartialConfiguration) {
				require.NotNil(t, cfg.Formatter)
				assert.Equal(t, "tab", *cfg.Formatter.IndentStyle)
				assert.Equal(t, 100, *cfg.Formatter.LineWidth)
				assert.Nil(t, cfg.Formatter.IndentWidth)
				assert.Equal(t, []string{"vendor/**"}, cfg.Formatter.Ignore)
				require.NotNil(t, cfg.Files)
				assert.Equal(t, int64(2048), *cfg.Files.MaxSize)
				require.NotNil(t, cfg.VCS)
				assert.True(t, *cfg.VCS.Enabled)
			},
		},
		{
			name:     "yaml_empty_document",
			filename: ".fmtrc.yaml",
			content:  "",
			check: func(t *testing.T, cfg *PartialConfiguration) {
				assert.Nil(t, cfg.Formatter)
				assert.Nil(t, cfg.Files)
				assert.Nil(t, cfg.VCS)
			},
		},
		{
			name:        "yaml_unknown_field",
			filename:    ".fmtrc.yaml",
			content:     "formatter:\n  tabs: true\n",
			wantErr:     true,
			errContains: "tabs",
		},
		{
			name:     "json_full",
			filename: ".fmtrc.json",
			content:  `{"formatter": {"enabled": false, "disabled_languages": ["css"]}, "files": {"ignore": ["node_modules/**"]}}`,
			check: func(t *testing.T, cfg *PartialConfiguration) {
				require.NotNil(t, cfg.Formatter)
				assert.False(t, *cfg.Formatter.Enabled)
				assert.Equal(t, []string{"css"}, cfg.Formatter.DisabledLanguages)
				assert.Equal(t, []string{"node_modules/**"}, cfg.Files.Ignore)
				assert.Nil(t, cfg.VCS)
			},
		},
		{
			name:        "json_unknown_field",
			filename:    ".fmtrc.json",
			content:     `{"format": {}}`,
			wantErr:     true,
			errContains: "format",
		},
		{
			name:        "json_malformed",
			filename:    ".fmtrc.json",
			content:     `{"formatter": `,
			wantErr:     true,
			errContains: "parsing JSON",
		},
		{
			name:     "hcl_full",
			filename: "/proj/fmtrc.hcl",
			content: `
formatter {
  indent_width = 4
  include      = ["src/**"]
}

vcs {
  enabled = true
  root    = "${config_dir}/.."
}
`,
			check: func(t *testing.T, cfg *PartialConfiguration) {
				require.NotNil(t, cfg.Formatter)
				assert.Equal(t, 4, *cfg.Formatter.IndentWidth)
				assert.Equal(t, []string{"src/**"}, cfg.Formatter.Include)
				assert.Nil(t, cfg.Files)
				require.NotNil(t, cfg.VCS)
				assert.Equal(t, "/proj/..", *cfg.VCS.Root)
			},
		},
		{
			name:        "hcl_unknown_attribute",
			filename:    "fmtrc.hcl",
			content:     "formatter {\n  tabs = true\n}\n",
			wantErr:     true,
			errContains: "decoding HCL",
		},
		{
			name:        "hcl_syntax_error",
			filename:    "fmtrc.hcl",
			content:     "formatter {",
			wantErr:     true,
			errContains: "parsing HCL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := GetParser(tt.filename)
			require.NotNil(t, parser, "no parser for %s", tt.filename)

			cfg, err := parser.Parse(ctx, tt.filename, []byte(tt.content))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}
