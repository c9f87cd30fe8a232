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

package fsys

import (
	"os"
	"path/filepath"

	"gitlab.com/tozd/go/errors"
)

// 🔍 AutoSearchResult is the first file found by AutoSearch
type AutoSearchResult struct {
	Directory string // Directory the file was found in
	FilePath  string // Absolute path of the file
	Content   []byte // Raw file content
}

// 🔍 AutoSearch looks for the first of names in dir, then in each ancestor of
// dir when searchParents is set. Names earlier in the list win within one
// directory. A nil result with a nil error means nothing was found.
func (f *FileSystem) AutoSearch(dir string, names []string, searchParents bool) (*AutoSearchResult, error) {
	dir, err := f.Resolve(dir)
	if err != nil {
		return nil, err
	}

	for {
		for _, name := range names {
			candidate := filepath.Join(dir, name)
			info, err := f.fs.Stat(candidate)
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					continue
				}
				return nil, errors.Errorf("checking %s: %w", candidate, err)
			}
			if info.IsDir() {
				continue
			}
			content, err := f.ReadFile(candidate)
			if err != nil {
				return nil, err
			}
			return &AutoSearchResult{
				Directory: dir,
				FilePath:  candidate,
				Content:   content,
			}, nil
		}

		if !searchParents {
			return nil, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}
