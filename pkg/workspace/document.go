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
	"bytes"
	"context"
	"time"

	"github.com/rs/zerolog"
)

// OpenFileParams describes a document to open under a handle
type OpenFileParams struct {
	Path    string
	Content []byte
	// Version is 0 for a single-shot request
	Version int32
}

// FormatFileParams names an open document to format
type FormatFileParams struct {
	Path string
}

// 🖨️ Printed is the engine output for a document
type Printed struct {
	Content  []byte
	Language string
	Changed  bool
}

// 📂 OpenFile stores a document private to handle. Reopening the same
// version with the same content is a no-op; with different content it fails.
func (s *Server) OpenFile(ctx context.Context, handle ProjectHandle, params OpenFileParams) error {
	sc, err := s.lookup(handle)
	if err != nil {
		return err
	}
	key := docKey{handle: handle, path: sc.settings.Load().Absolute(params.Path)}

	sc.mu.Lock()
	defer sc.mu.Unlock()

	if existing, ok := sc.documents[key]; ok && existing.version == params.Version {
		if !bytes.Equal(existing.content, params.Content) {
			return &DocumentConflictError{Path: key.path, Version: params.Version}
		}
		return nil
	}

	sc.documents[key] = &document{
		content: bytes.Clone(params.Content),
		version: params.Version,
	}

	zerolog.Ctx(ctx).Debug().
		Str("handle", handle.String()).
		Str("path", key.path).
		Int32("version", params.Version).
		Int("bytes", len(params.Content)).
		Msg("opened document")

	return nil
}

// 🎨 FormatFile runs the engine for an open document against the current
// settings snapshot. Any engine error is returned as *EngineError and the
// size guard as *FileTooLargeError.
func (s *Server) FormatFile(ctx context.Context, handle ProjectHandle, params FormatFileParams) (*Printed, error) {
	sc, err := s.lookup(handle)
	if err != nil {
		return nil, err
	}

	sc.mu.Lock()
	defer sc.mu.Unlock()

	settings := sc.settings.Load()
	key := docKey{handle: handle, path: settings.Absolute(params.Path)}

	doc, ok := sc.documents[key]
	if !ok {
		return nil, &DocumentNotOpenError{Path: key.path}
	}

	if size := int64(len(doc.content)); size > settings.Configuration.Files.MaxSize {
		return nil, &FileTooLargeError{Path: key.path, Size: size, MaxSize: settings.Configuration.Files.MaxSize}
	}

	formatter, ok := s.engines.ForPath(key.path)
	if !ok {
		return nil, &NoEngineError{Path: key.path}
	}

	start := time.Now()
	out, err := formatter.Format(ctx, key.path, doc.content, settings.Options)
	if err != nil {
		return nil, &EngineError{Language: formatter.Language(), Path: key.path, Err: err}
	}

	zerolog.Ctx(ctx).Debug().
		Str("handle", handle.String()).
		Str("path", key.path).
		Str("language", formatter.Language()).
		Dur("duration", time.Since(start)).
		Msg("formatted document")

	return &Printed{
		Content:  out,
		Language: formatter.Language(),
		Changed:  !bytes.Equal(out, doc.content),
	}, nil
}
