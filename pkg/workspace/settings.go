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

package workspace

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/fmtrc/pkg/config"
	"github.com/walteh/fmtrc/pkg/engine"
	"github.com/walteh/fmtrc/pkg/vcs"
)

// UpdateSettingsParams is everything needed to compile a Settings snapshot
type UpdateSettingsParams struct {
	// WorkspaceDirectory is the root that include/ignore globs are relative to;
	// empty means the scope directory
	WorkspaceDirectory string
	Configuration      config.Configuration
	// VCSBasePath is the root that gitignore lines are relative to
	VCSBasePath      string
	GitignoreMatches []string
}

// 🧊 Settings is an immutable snapshot of a scope's compiled configuration
type Settings struct {
	Configuration      config.Configuration
	Options            engine.Options
	WorkspaceDirectory string
	VCSBasePath        string

	gitignore         *vcs.Matcher
	disabledLanguages map[string]bool
}

// DefaultSettings is the snapshot a new scope starts with
func DefaultSettings(dir string) *Settings {
	settings, _ := CompileSettings(UpdateSettingsParams{
		WorkspaceDirectory: dir,
		Configuration:      config.Default(),
		VCSBasePath:        dir,
	})
	return settings
}

// 🔧 CompileSettings validates params and builds a snapshot
func CompileSettings(params UpdateSettingsParams) (*Settings, error) {
	if err := params.Configuration.Validate(); err != nil {
		return nil, errors.Errorf("invalid settings: %w", err)
	}

	base := params.VCSBasePath
	if base == "" {
		base = params.WorkspaceDirectory
	}

	disabled := make(map[string]bool, len(params.Configuration.Formatter.DisabledLanguages))
	for _, lang := range params.Configuration.Formatter.DisabledLanguages {
		disabled[strings.ToLower(lang)] = true
	}

	return &Settings{
		Configuration:      params.Configuration,
		Options:            engine.OptionsFromConfig(params.Configuration.Formatter),
		WorkspaceDirectory: filepath.Clean(params.WorkspaceDirectory),
		VCSBasePath:        filepath.Clean(base),
		gitignore:          vcs.NewMatcher(base, params.GitignoreMatches),
		disabledLanguages:  disabled,
	}, nil
}

// Absolute resolves p against the workspace directory
func (s *Settings) Absolute(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(s.WorkspaceDirectory, p)
}

// relative returns p as a slash path under the workspace directory, or the
// absolute slash path when p lies outside it
func (s *Settings) relative(p string) string {
	abs := s.Absolute(p)
	rel, err := filepath.Rel(s.WorkspaceDirectory, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(abs)
	}
	return filepath.ToSlash(rel)
}

// GitIgnored reports whether the VCS ignore files exclude p
func (s *Settings) GitIgnored(p string) bool {
	return s.gitignore.Ignored(s.Absolute(p), false)
}

// LanguageDisabled reports whether formatter.disabled_languages lists language
func (s *Settings) LanguageDisabled(language string) bool {
	return s.disabledLanguages[strings.ToLower(language)]
}

// matchAny reports whether any pattern matches rel or one of its parent
// directories, so "dist" covers "dist/a.css"
func matchAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		for candidate := rel; candidate != "." && candidate != "/" && candidate != ""; candidate = path.Dir(candidate) {
			if ok, _ := doublestar.Match(pattern, candidate); ok {
				return true
			}
		}
	}
	return false
}

// filterVerdict applies an include/ignore pair. An empty include list
// includes everything.
func filterVerdict(include, ignore []string, rel, section string) (bool, string) {
	if len(include) > 0 && !matchAny(include, rel) {
		return false, "not matched by " + section + ".include"
	}
	if matchAny(ignore, rel) {
		return false, "matched by " + section + ".ignore"
	}
	return true, ""
}
