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
	"go/format"
	"go/scanner"

	"gitlab.com/tozd/go/errors"
)

func init() {
	register(&GoFormatter{})
}

// GoFormatter applies gofmt. Layout options are ignored; gofmt has one style.
type GoFormatter struct{}

func (f *GoFormatter) Language() string { return "go" }

func (f *GoFormatter) Extensions() []string { return []string{".go"} }

func (f *GoFormatter) Format(ctx context.Context, path string, content []byte, opts Options) ([]byte, error) {
	out, err := format.Source(content)
	if err != nil {
		serr := &SyntaxError{Language: "go", Path: path, Message: err.Error()}
		var list scanner.ErrorList
		if errors.As(err, &list) && len(list) > 0 {
			serr.Line = list[0].Pos.Line
			serr.Message = list[0].Msg
		}
		return nil, serr
	}
	return out, nil
}
