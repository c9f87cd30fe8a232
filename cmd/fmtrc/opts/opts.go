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

package opts

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/fmtrc/pkg/pipeline"
	"github.com/walteh/fmtrc/pkg/workspace"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	CurrentDir string
	ConfigPath string
	Debug      bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Fs     afero.Fs
}

// 🏭 NewOS returns options bound to the process streams and file system
func NewOS() *RootOpts {
	return &RootOpts{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Fs:     afero.NewOsFs(),
	}
}

// WorkingDirectory returns --cwd made absolute, or the process directory
func (o *RootOpts) WorkingDirectory() (string, error) {
	if o.CurrentDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.Errorf("getting working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(o.CurrentDir)
	if err != nil {
		return "", errors.Errorf("resolving --cwd %s: %w", o.CurrentDir, err)
	}
	return abs, nil
}

// Pipeline creates a pipeline over a fresh workspace
func (o *RootOpts) Pipeline() *pipeline.Pipeline {
	return pipeline.New(workspace.NewServer(), o.Fs)
}
