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

package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/walteh/fmtrc/pkg/config"
)

// 🎨 Formatter formats the source of one language
type Formatter interface {
	// Language is the name used by formatter.disabled_languages
	Language() string
	// Extensions lists the lower-case file extensions handled, dot included
	Extensions() []string
	// Format returns the formatted content or a *SyntaxError
	Format(ctx context.Context, path string, content []byte, opts Options) ([]byte, error)
}

// ⚙️ Options controls layout for engines that honour it
type Options struct {
	IndentStyle config.IndentStyle
	IndentWidth int
	LineWidth   int
}

// OptionsFromConfig extracts engine options from the formatter settings
func OptionsFromConfig(cfg config.FormatterConfiguration) Options {
	return Options{
		IndentStyle: cfg.IndentStyle,
		IndentWidth: cfg.IndentWidth,
		LineWidth:   cfg.LineWidth,
	}
}

// DefaultOptions matches config.Default()
func DefaultOptions() Options {
	return OptionsFromConfig(config.Default().Formatter)
}

// Indent returns one level of indentation
func (o Options) Indent() string {
	if o.IndentStyle == config.IndentStyleTab {
		return "\t"
	}
	width := o.IndentWidth
	if width < 1 {
		width = config.DefaultIndentWidth
	}
	return strings.Repeat(" ", width)
}

// ❌ SyntaxError reports content an engine could not parse
type SyntaxError struct {
	Language string
	Path     string
	Line     int // 0 when unknown
	Message  string
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s syntax error in %s:%d: %s", e.Language, e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("%s syntax error in %s: %s", e.Language, e.Path, e.Message)
}
