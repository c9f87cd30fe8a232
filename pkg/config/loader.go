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
	"context"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/fmtrc/pkg/fsys"
)

// ConfigFileNames are searched in this order within each directory
var ConfigFileNames = []string{
	".fmtrc.yaml",
	".fmtrc.yml",
	".fmtrc.json",
	".fmtrc.hcl",
	"fmtrc.hcl",
}

type hintKind int

const (
	hintNone hintKind = iota
	hintFromUser
	hintFromWorkspace
)

// 🧭 PathHint tells Load where to look for a configuration file
type PathHint struct {
	kind hintKind
	path string
}

// HintNone searches the working directory and its ancestors
func HintNone() PathHint {
	return PathHint{kind: hintNone}
}

// HintFromUser points at an explicit file or directory; it must exist
func HintFromUser(path string) PathHint {
	return PathHint{kind: hintFromUser, path: path}
}

// HintFromWorkspace searches dir and its ancestors
func HintFromWorkspace(dir string) PathHint {
	return PathHint{kind: hintFromWorkspace, path: dir}
}

func (h PathHint) String() string {
	switch h.kind {
	case hintFromUser:
		return "user:" + h.path
	case hintFromWorkspace:
		return "workspace:" + h.path
	default:
		return "none"
	}
}

// 📦 LoadedConfiguration is a validated configuration and where it came from
type LoadedConfiguration struct {
	Configuration Configuration
	// DirectoryPath is the directory holding the config file, or the
	// working directory when no file was found
	DirectoryPath string
	// FilePath is empty when the defaults were used
	FilePath string
}

// Found reports whether a configuration file was read
func (l *LoadedConfiguration) Found() bool {
	return l.FilePath != ""
}

// 🔄 Load resolves the configuration for a hint. A missing file yields the
// defaults; an unreadable or invalid file is an error.
func Load(ctx context.Context, fs *fsys.FileSystem, hint PathHint) (*LoadedConfiguration, error) {
	logger := zerolog.Ctx(ctx).With().Str("hint", hint.String()).Logger()

	found, err := locate(fs, hint)
	if err != nil {
		return nil, err
	}

	loaded := &LoadedConfiguration{
		Configuration: Default(),
		DirectoryPath: fs.WorkingDirectory(),
	}

	if found != nil {
		parser := GetParser(found.FilePath)
		if parser == nil {
			return nil, errors.Errorf("no parser for config file %s", found.FilePath)
		}

		partial, err := parser.Parse(ctx, found.FilePath, found.Content)
		if err != nil {
			return nil, errors.Errorf("loading config %s: %w", found.FilePath, err)
		}

		loaded.Configuration = loaded.Configuration.Merge(partial)
		loaded.DirectoryPath = found.Directory
		loaded.FilePath = found.FilePath
		logger.Debug().Str("file", found.FilePath).Msg("loaded configuration file")
	} else {
		logger.Debug().Msg("no configuration file found, using defaults")
	}

	overrides, err := EnvOverrides()
	if err != nil {
		return nil, err
	}
	if overrides != nil {
		loaded.Configuration = loaded.Configuration.Merge(overrides)
		logger.Debug().Msg("applied environment overrides")
	}

	if err := loaded.Configuration.Validate(); err != nil {
		if loaded.Found() {
			return nil, errors.Errorf("validating config %s: %w", loaded.FilePath, err)
		}
		return nil, errors.Errorf("validating config: %w", err)
	}

	return loaded, nil
}

func locate(fs *fsys.FileSystem, hint PathHint) (*fsys.AutoSearchResult, error) {
	switch hint.kind {
	case hintFromUser:
		path, err := fs.Resolve(hint.path)
		if err != nil {
			return nil, err
		}

		// a directory is searched without walking up; a file is read as-is
		if fs.RequireDir(path) == nil {
			found, err := fs.AutoSearch(path, ConfigFileNames, false)
			if err != nil {
				return nil, err
			}
			if found == nil {
				return nil, errors.Errorf("no configuration file in %s", path)
			}
			return found, nil
		}

		content, err := fs.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return &fsys.AutoSearchResult{
			Directory: filepath.Dir(path),
			FilePath:  path,
			Content:   content,
		}, nil

	case hintFromWorkspace:
		return fs.AutoSearch(hint.path, ConfigFileNames, true)

	default:
		return fs.AutoSearch(fs.WorkingDirectory(), ConfigFileNames, true)
	}
}
