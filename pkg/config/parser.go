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
)

// 🔌 Parser decodes one config file format into a PartialConfiguration
type Parser interface {
	// 📝 Parse decodes data; filename is only used in diagnostics
	Parse(ctx context.Context, filename string, data []byte) (*PartialConfiguration, error)

	// 🔍 CanParse reports whether this parser handles the given file name
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is the ordered list of available parsers
	parsers []Parser
)

// 📝 Register adds a parser to the registry
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns the first parser that handles filename, or nil
func GetParser(filename string) Parser {
	base := filepath.Base(filename)
	for _, p := range parsers {
		if p.CanParse(base) {
			return p
		}
	}
	return nil
}
