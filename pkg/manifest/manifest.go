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

// Package manifest locates and summarizes the project's package.json.
package manifest

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/walteh/fmtrc/pkg/fsys"
)

// FileName is the manifest searched for from the working directory upward
const FileName = "package.json"

// 📦 Data is a parsed manifest. Valid is false when the file is not a JSON
// object; Name and Version are then empty.
type Data struct {
	Path    string
	Content []byte
	Name    string
	Version string
	Valid   bool
}

// Parse summarizes manifest content found at path
func Parse(path string, content []byte) *Data {
	data := &Data{Path: path, Content: content}

	if !gjson.ValidBytes(content) {
		return data
	}
	root := gjson.ParseBytes(content)
	if !root.IsObject() {
		return data
	}

	data.Valid = true
	data.Name = root.Get("name").String()
	data.Version = root.Get("version").String()
	return data
}

// 🔍 Resolve searches dir and its ancestors for a manifest. Absence, search
// failures and malformed content never fail the request: a search error is
// logged and reported as absent, malformed content is returned with Valid
// set to false.
func Resolve(ctx context.Context, fs *fsys.FileSystem, dir string) *Data {
	logger := zerolog.Ctx(ctx)

	found, err := fs.AutoSearch(dir, []string{FileName}, true)
	if err != nil {
		logger.Warn().Err(err).Str("dir", dir).Msg("manifest search failed, continuing without one")
		return nil
	}
	if found == nil {
		logger.Debug().Str("dir", dir).Msg("no manifest found")
		return nil
	}

	data := Parse(found.FilePath, found.Content)
	if !data.Valid {
		logger.Warn().Str("file", found.FilePath).Msg("manifest is not valid JSON, attaching it unparsed")
	}
	return data
}
