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
	"fmt"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/fmtrc/pkg/engine"
)

// 🔑 UnknownHandleError is returned for a handle that was never issued or
// has been closed
type UnknownHandleError struct {
	Handle ProjectHandle
}

func (e *UnknownHandleError) Error() string {
	return fmt.Sprintf("unknown project handle %s", e.Handle)
}

// 📄 DocumentNotOpenError is returned when formatting a path that was never opened
type DocumentNotOpenError struct {
	Path string
}

func (e *DocumentNotOpenError) Error() string {
	return fmt.Sprintf("document %s is not open", e.Path)
}

// DocumentConflictError is returned when a (path, version) is reopened with different content
type DocumentConflictError struct {
	Path    string
	Version int32
}

func (e *DocumentConflictError) Error() string {
	return fmt.Sprintf("document %s version %d is already open with different content", e.Path, e.Version)
}

// 📏 FileTooLargeError is returned by FormatFile for content above files.max_size
type FileTooLargeError struct {
	Path    string
	Size    int64
	MaxSize int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("file %s is %d bytes, above the configured limit of %d bytes", e.Path, e.Size, e.MaxSize)
}

// NoEngineError is returned by FormatFile for a path no engine handles
type NoEngineError struct {
	Path string
}

func (e *NoEngineError) Error() string {
	return fmt.Sprintf("no formatter for %s", e.Path)
}

// 🧨 EngineError wraps every error a formatter returns for an open document.
// A *engine.SyntaxError stays reachable through errors.As.
type EngineError struct {
	Language string
	Path     string
	Err      error
}

func (e *EngineError) Error() string {
	var serr *engine.SyntaxError
	if errors.As(e.Err, &serr) {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s formatter failed on %s: %s", e.Language, e.Path, e.Err.Error())
}

func (e *EngineError) Unwrap() error { return e.Err }
