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

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

func init() {
	register(&JSONFormatter{})
}

// JSONFormatter pretty-prints JSON, keeping short arrays on one line when
// they fit within the line width. Key order is preserved.
type JSONFormatter struct{}

func (f *JSONFormatter) Language() string { return "json" }

func (f *JSONFormatter) Extensions() []string { return []string{".json"} }

func (f *JSONFormatter) Format(ctx context.Context, path string, content []byte, opts Options) ([]byte, error) {
	if !gjson.ValidBytes(content) {
		return nil, &SyntaxError{Language: "json", Path: path, Message: "invalid JSON document"}
	}

	return pretty.PrettyOptions(content, &pretty.Options{
		Width:    opts.LineWidth,
		Indent:   opts.Indent(),
		SortKeys: false,
	}), nil
}
