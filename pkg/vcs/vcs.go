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

// Package vcs reads version-control ignore files and answers whether a path
// is ignored relative to the repository base.
package vcs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/fmtrc/pkg/config"
	"github.com/walteh/fmtrc/pkg/fsys"
)

// IgnoreFileNames are read from the VCS base directory, in order
var IgnoreFileNames = []string{".gitignore", ".ignore"}

// 📜 IgnoreMatches holds the raw ignore lines found under a base directory
type IgnoreMatches struct {
	Base  string
	Files []string
	Lines []string
}

// 🏠 BaseDirectory picks the directory ignore patterns are relative to:
// vcs.root joined to the configuration directory, then the configuration
// directory itself, then the working directory.
func BaseDirectory(cfg config.VCSConfiguration, configDir, workingDir string) string {
	base := configDir
	if base == "" {
		base = workingDir
	}
	if cfg.Root != "" {
		if filepath.IsAbs(cfg.Root) {
			return filepath.Clean(cfg.Root)
		}
		return filepath.Join(base, cfg.Root)
	}
	return base
}

// 🔍 RetrieveGitignoreMatches reads the ignore files under base. It returns an
// empty result when VCS integration or ignore files are disabled.
func RetrieveGitignoreMatches(ctx context.Context, fs *fsys.FileSystem, cfg config.VCSConfiguration, base string) (*IgnoreMatches, error) {
	logger := zerolog.Ctx(ctx)

	matches := &IgnoreMatches{Base: base}
	if !cfg.Enabled || !cfg.UseIgnoreFile {
		return matches, nil
	}

	for _, name := range IgnoreFileNames {
		path := filepath.Join(base, name)
		content, err := fs.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, errors.Errorf("reading ignore file: %w", err)
		}

		lines := parseLines(string(content))
		matches.Files = append(matches.Files, path)
		matches.Lines = append(matches.Lines, lines...)
		logger.Debug().Str("file", path).Int("patterns", len(lines)).Msg("loaded ignore file")
	}

	return matches, nil
}

func parseLines(content string) []string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}

// 🚦 Matcher answers gitignore queries for absolute paths under a base
type Matcher struct {
	base    string
	matcher gitignore.Matcher
	size    int
}

// NewMatcher compiles gitignore lines relative to base
func NewMatcher(base string, lines []string) *Matcher {
	patterns := make([]gitignore.Pattern, 0, len(lines))
	for _, line := range lines {
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}
	return &Matcher{
		base:    filepath.Clean(base),
		matcher: gitignore.NewMatcher(patterns),
		size:    len(patterns),
	}
}

// Len returns the number of compiled patterns
func (m *Matcher) Len() int {
	return m.size
}

// Ignored reports whether path is ignored. Paths outside the base never are.
func (m *Matcher) Ignored(path string, isDir bool) bool {
	if m == nil || m.size == 0 {
		return false
	}

	rel, err := filepath.Rel(m.base, filepath.Clean(path))
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}

	return m.matcher.Match(strings.Split(rel, string(filepath.Separator)), isDir)
}
