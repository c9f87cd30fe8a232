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

// Package fsys is the file-system collaborator used while resolving a format
// request: path normalization, reads, and ancestor auto-search for
// configuration and manifest files.
package fsys

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

// 🚫 PathError reports a path that cannot serve as a project or file location
type PathError struct {
	Path   string
	Reason string
	Err    error
}

func (e *PathError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid path %q: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid path %q: %s", e.Path, e.Reason)
}

func (e *PathError) Unwrap() error { return e.Err }

// 🔤 EncodingError reports a path that is not valid UTF-8 text
type EncodingError struct {
	Path string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("path %q is not valid UTF-8", e.Path)
}

// 🧹 NormalizePath returns the absolute, cleaned form of p
func NormalizePath(p string) (string, error) {
	if p == "" {
		return "", &PathError{Path: p, Reason: "empty path"}
	}
	if !utf8.ValidString(p) {
		return "", &EncodingError{Path: p}
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", &PathError{Path: p, Reason: "resolving absolute path", Err: err}
	}
	return filepath.Clean(abs), nil
}

// 📂 FileSystem is a working-directory-rooted view over an afero filesystem
type FileSystem struct {
	fs afero.Fs
	wd string
}

// 🏭 New creates a FileSystem rooted at workingDir
func New(fs afero.Fs, workingDir string) (*FileSystem, error) {
	wd, err := NormalizePath(workingDir)
	if err != nil {
		return nil, err
	}
	return &FileSystem{fs: fs, wd: wd}, nil
}

// 🏭 NewOS creates a FileSystem backed by the operating system
func NewOS(workingDir string) (*FileSystem, error) {
	return New(afero.NewOsFs(), workingDir)
}

// WorkingDirectory returns the normalized working directory
func (f *FileSystem) WorkingDirectory() string {
	return f.wd
}

// Resolve turns p into an absolute path, relative paths being taken from the
// working directory
func (f *FileSystem) Resolve(p string) (string, error) {
	if p == "" {
		return "", &PathError{Path: p, Reason: "empty path"}
	}
	if !utf8.ValidString(p) {
		return "", &EncodingError{Path: p}
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p), nil
	}
	return filepath.Join(f.wd, p), nil
}

// ReadFile reads the file at path
func (f *FileSystem) ReadFile(path string) ([]byte, error) {
	data, err := afero.ReadFile(f.fs, path)
	if err != nil {
		return nil, errors.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// 📁 RequireDir fails with a PathError unless path is an existing directory
func (f *FileSystem) RequireDir(path string) error {
	info, err := f.fs.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &PathError{Path: path, Reason: "directory does not exist"}
		}
		return &PathError{Path: path, Reason: "stat failed", Err: err}
	}
	if !info.IsDir() {
		return &PathError{Path: path, Reason: "not a directory"}
	}
	return nil
}
