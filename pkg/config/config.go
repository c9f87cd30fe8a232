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

package config

import (
	"fmt"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// 📐 IndentStyle selects tabs or spaces for indentation
type IndentStyle string

const (
	IndentStyleSpace IndentStyle = "space"
	IndentStyleTab   IndentStyle = "tab"
)

const (
	DefaultIndentWidth = 2
	DefaultLineWidth   = 80
	DefaultMaxSize     = 1024 * 1024
	DefaultClientKind  = "git"

	maxIndentWidth = 16
	maxLineWidth   = 320
)

// 🎨 FormatterConfiguration holds the formatter options and file filters
type FormatterConfiguration struct {
	Enabled           bool        `json:"enabled" yaml:"enabled"`
	IndentStyle       IndentStyle `json:"indent_style" yaml:"indent_style"`
	IndentWidth       int         `json:"indent_width" yaml:"indent_width"`
	LineWidth         int         `json:"line_width" yaml:"line_width"`
	Include           []string    `json:"include,omitempty" yaml:"include,omitempty"`
	Ignore            []string    `json:"ignore,omitempty" yaml:"ignore,omitempty"`
	DisabledLanguages []string    `json:"disabled_languages,omitempty" yaml:"disabled_languages,omitempty"`
}

// 📄 FilesConfiguration holds filters that apply to every feature
type FilesConfiguration struct {
	Include []string `json:"include,omitempty" yaml:"include,omitempty"`
	Ignore  []string `json:"ignore,omitempty" yaml:"ignore,omitempty"`
	MaxSize int64    `json:"max_size" yaml:"max_size"`
}

// 🌿 VCSConfiguration controls version-control ignore integration
type VCSConfiguration struct {
	Enabled       bool   `json:"enabled" yaml:"enabled"`
	ClientKind    string `json:"client_kind" yaml:"client_kind"`
	UseIgnoreFile bool   `json:"use_ignore_file" yaml:"use_ignore_file"`
	Root          string `json:"root,omitempty" yaml:"root,omitempty"`
}

// 📚 Configuration is the merged, validated project configuration
type Configuration struct {
	Formatter FormatterConfiguration `json:"formatter" yaml:"formatter"`
	Files     FilesConfiguration     `json:"files" yaml:"files"`
	VCS       VCSConfiguration       `json:"vcs" yaml:"vcs"`
}

// 🏭 Default returns the configuration used when no config file exists
func Default() Configuration {
	return Configuration{
		Formatter: FormatterConfiguration{
			Enabled:     true,
			IndentStyle: IndentStyleSpace,
			IndentWidth: DefaultIndentWidth,
			LineWidth:   DefaultLineWidth,
		},
		Files: FilesConfiguration{
			MaxSize: DefaultMaxSize,
		},
		VCS: VCSConfiguration{
			ClientKind: DefaultClientKind,
		},
	}
}

// 🧩 PartialConfiguration is the on-disk shape; unset fields keep defaults
type PartialConfiguration struct {
	Formatter *PartialFormatter `json:"formatter,omitempty" yaml:"formatter,omitempty" hcl:"formatter,block"`
	Files     *PartialFiles     `json:"files,omitempty" yaml:"files,omitempty" hcl:"files,block"`
	VCS       *PartialVCS       `json:"vcs,omitempty" yaml:"vcs,omitempty" hcl:"vcs,block"`
}

type PartialFormatter struct {
	Enabled           *bool    `json:"enabled,omitempty" yaml:"enabled,omitempty" hcl:"enabled,optional"`
	IndentStyle       *string  `json:"indent_style,omitempty" yaml:"indent_style,omitempty" hcl:"indent_style,optional"`
	IndentWidth       *int     `json:"indent_width,omitempty" yaml:"indent_width,omitempty" hcl:"indent_width,optional"`
	LineWidth         *int     `json:"line_width,omitempty" yaml:"line_width,omitempty" hcl:"line_width,optional"`
	Include           []string `json:"include,omitempty" yaml:"include,omitempty" hcl:"include,optional"`
	Ignore            []string `json:"ignore,omitempty" yaml:"ignore,omitempty" hcl:"ignore,optional"`
	DisabledLanguages []string `json:"disabled_languages,omitempty" yaml:"disabled_languages,omitempty" hcl:"disabled_languages,optional"`
}

type PartialFiles struct {
	Include []string `json:"include,omitempty" yaml:"include,omitempty" hcl:"include,optional"`
	Ignore  []string `json:"ignore,omitempty" yaml:"ignore,omitempty" hcl:"ignore,optional"`
	MaxSize *int64   `json:"max_size,omitempty" yaml:"max_size,omitempty" hcl:"max_size,optional"`
}

type PartialVCS struct {
	Enabled       *bool   `json:"enabled,omitempty" yaml:"enabled,omitempty" hcl:"enabled,optional"`
	ClientKind    *string `json:"client_kind,omitempty" yaml:"client_kind,omitempty" hcl:"client_kind,optional"`
	UseIgnoreFile *bool   `json:"use_ignore_file,omitempty" yaml:"use_ignore_file,omitempty" hcl:"use_ignore_file,optional"`
	Root          *string `json:"root,omitempty" yaml:"root,omitempty" hcl:"root,optional"`
}

// 🔀 Merge returns a copy of cfg with every field set in p applied on top
func (cfg Configuration) Merge(p *PartialConfiguration) Configuration {
	out := cfg.clone()
	if p == nil {
		return out
	}

	if f := p.Formatter; f != nil {
		setIfNotNil(&out.Formatter.Enabled, f.Enabled)
		if f.IndentStyle != nil {
			out.Formatter.IndentStyle = IndentStyle(*f.IndentStyle)
		}
		setIfNotNil(&out.Formatter.IndentWidth, f.IndentWidth)
		setIfNotNil(&out.Formatter.LineWidth, f.LineWidth)
		replaceIfNotNil(&out.Formatter.Include, f.Include)
		replaceIfNotNil(&out.Formatter.Ignore, f.Ignore)
		replaceIfNotNil(&out.Formatter.DisabledLanguages, f.DisabledLanguages)
	}

	if f := p.Files; f != nil {
		replaceIfNotNil(&out.Files.Include, f.Include)
		replaceIfNotNil(&out.Files.Ignore, f.Ignore)
		setIfNotNil(&out.Files.MaxSize, f.MaxSize)
	}

	if v := p.VCS; v != nil {
		setIfNotNil(&out.VCS.Enabled, v.Enabled)
		setIfNotNil(&out.VCS.ClientKind, v.ClientKind)
		setIfNotNil(&out.VCS.UseIgnoreFile, v.UseIgnoreFile)
		setIfNotNil(&out.VCS.Root, v.Root)
	}

	return out
}

func setIfNotNil[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func replaceIfNotNil(dst *[]string, src []string) {
	if src != nil {
		*dst = slices.Clone(src)
	}
}

func (cfg Configuration) clone() Configuration {
	out := cfg
	out.Formatter.Include = slices.Clone(cfg.Formatter.Include)
	out.Formatter.Ignore = slices.Clone(cfg.Formatter.Ignore)
	out.Formatter.DisabledLanguages = slices.Clone(cfg.Formatter.DisabledLanguages)
	out.Files.Include = slices.Clone(cfg.Files.Include)
	out.Files.Ignore = slices.Clone(cfg.Files.Ignore)
	return out
}

// 🔍 Validate checks that the configuration is usable
func (cfg Configuration) Validate() error {
	switch cfg.Formatter.IndentStyle {
	case IndentStyleSpace, IndentStyleTab:
	default:
		return errors.Errorf("formatter.indent_style must be %q or %q, got %q", IndentStyleSpace, IndentStyleTab, cfg.Formatter.IndentStyle)
	}
	if cfg.Formatter.IndentWidth < 1 || cfg.Formatter.IndentWidth > maxIndentWidth {
		return errors.Errorf("formatter.indent_width must be between 1 and %d, got %d", maxIndentWidth, cfg.Formatter.IndentWidth)
	}
	if cfg.Formatter.LineWidth < 1 || cfg.Formatter.LineWidth > maxLineWidth {
		return errors.Errorf("formatter.line_width must be between 1 and %d, got %d", maxLineWidth, cfg.Formatter.LineWidth)
	}
	if cfg.Files.MaxSize <= 0 {
		return errors.Errorf("files.max_size must be positive, got %d", cfg.Files.MaxSize)
	}
	if cfg.VCS.ClientKind != DefaultClientKind {
		return errors.Errorf("vcs.client_kind %q is not supported (only %q)", cfg.VCS.ClientKind, DefaultClientKind)
	}

	globs := map[string][]string{
		"formatter.include": cfg.Formatter.Include,
		"formatter.ignore":  cfg.Formatter.Ignore,
		"files.include":     cfg.Files.Include,
		"files.ignore":      cfg.Files.Ignore,
	}
	for field, patterns := range globs {
		for _, pattern := range patterns {
			if !doublestar.ValidatePattern(pattern) {
				return errors.Errorf("%s: invalid glob pattern %q", field, pattern)
			}
		}
	}

	return nil
}

// 📝 String returns a one-line summary of the configuration
func (cfg Configuration) String() string {
	return fmt.Sprintf("formatter(enabled=%t indent=%s/%d width=%d) vcs(enabled=%t ignore_file=%t)",
		cfg.Formatter.Enabled, cfg.Formatter.IndentStyle, cfg.Formatter.IndentWidth, cfg.Formatter.LineWidth,
		cfg.VCS.Enabled, cfg.VCS.UseIgnoreFile)
}
