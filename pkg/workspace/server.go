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
	"context"
	"path/filepath"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/fmtrc/pkg/engine"
	"github.com/walteh/fmtrc/pkg/manifest"
)

// 🎫 ProjectHandle is an opaque lease on a project scope
type ProjectHandle uint64

func (h ProjectHandle) String() string {
	return "project#" + strconv.FormatUint(uint64(h), 10)
}

type docKey struct {
	handle ProjectHandle
	path   string
}

type document struct {
	content []byte
	version int32
}

type scope struct {
	id  uuid.UUID
	dir string

	// leases counts live handles; guarded by Server.mu
	leases int

	// mu serializes mutations of this scope
	mu        sync.Mutex
	settings  atomic.Pointer[Settings]
	manifest  atomic.Pointer[manifest.Data]
	documents map[docKey]*document
}

// 🏢 Server owns every project scope and the handles leased on them
type Server struct {
	mu      sync.RWMutex
	scopes  map[string]*scope
	handles map[ProjectHandle]*scope

	nextHandle atomic.Uint64
	engines    *engine.Registry
}

// ServerOption configures a Server
type ServerOption func(*Server)

// WithEngines replaces the bundled engine registry
func WithEngines(reg *engine.Registry) ServerOption {
	return func(s *Server) {
		s.engines = reg
	}
}

// 🏭 NewServer creates an empty registry
func NewServer(opts ...ServerOption) *Server {
	s := &Server{
		scopes:  make(map[string]*scope),
		handles: make(map[ProjectHandle]*scope),
		engines: engine.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterProjectFolderParams names the directory of the project
type RegisterProjectFolderParams struct {
	// Path must be absolute and clean
	Path string
}

// 📝 RegisterProjectFolder returns a new handle for the scope at params.Path,
// creating the scope with default settings when the directory is new
func (s *Server) RegisterProjectFolder(ctx context.Context, params RegisterProjectFolderParams) (ProjectHandle, error) {
	dir := params.Path
	if dir == "" || !filepath.IsAbs(dir) || filepath.Clean(dir) != dir {
		return 0, errors.Errorf("project folder must be an absolute clean path, got %q", dir)
	}

	handle := ProjectHandle(s.nextHandle.Add(1))

	s.mu.Lock()
	sc, ok := s.scopes[dir]
	if !ok {
		sc = newScope(dir)
		s.scopes[dir] = sc
	}
	sc.leases++
	s.handles[handle] = sc
	s.mu.Unlock()

	zerolog.Ctx(ctx).Debug().
		Str("handle", handle.String()).
		Str("scope", sc.id.String()).
		Str("dir", dir).
		Bool("new_scope", !ok).
		Msg("registered project folder")

	return handle, nil
}

func newScope(dir string) *scope {
	sc := &scope{
		id:        uuid.New(),
		dir:       dir,
		documents: make(map[docKey]*document),
	}
	sc.settings.Store(DefaultSettings(dir))
	return sc
}

func (s *Server) lookup(handle ProjectHandle) (*scope, error) {
	s.mu.RLock()
	sc, ok := s.handles[handle]
	s.mu.RUnlock()
	if !ok {
		return nil, &UnknownHandleError{Handle: handle}
	}
	return sc, nil
}

// 🔒 CloseProject releases handle and drops the documents opened under it.
// The scope is evicted once its last handle is closed, so the registry only
// holds directories with a request in flight.
func (s *Server) CloseProject(ctx context.Context, handle ProjectHandle) error {
	s.mu.Lock()
	sc, ok := s.handles[handle]
	if !ok {
		s.mu.Unlock()
		return &UnknownHandleError{Handle: handle}
	}
	delete(s.handles, handle)
	sc.leases--
	evicted := sc.leases == 0
	if evicted && s.scopes[sc.dir] == sc {
		delete(s.scopes, sc.dir)
	}
	s.mu.Unlock()

	sc.mu.Lock()
	dropped := 0
	for key := range sc.documents {
		if key.handle == handle {
			delete(sc.documents, key)
			dropped++
		}
	}
	sc.mu.Unlock()

	zerolog.Ctx(ctx).Debug().
		Str("handle", handle.String()).
		Str("scope", sc.id.String()).
		Int("documents", dropped).
		Bool("evicted", evicted).
		Msg("closed project")

	return nil
}

func (s *Server) scopeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.scopes)
}

// 📦 SetManifestForProject attaches manifest data to the handle's scope
func (s *Server) SetManifestForProject(ctx context.Context, handle ProjectHandle, data *manifest.Data) error {
	sc, err := s.lookup(handle)
	if err != nil {
		return err
	}

	sc.mu.Lock()
	sc.manifest.Store(data)
	sc.mu.Unlock()

	if data != nil {
		zerolog.Ctx(ctx).Debug().
			Str("handle", handle.String()).
			Str("manifest", data.Path).
			Bool("valid", data.Valid).
			Msg("attached manifest")
	}
	return nil
}

// Manifest returns the manifest attached to the handle's scope, or nil
func (s *Server) Manifest(handle ProjectHandle) (*manifest.Data, error) {
	sc, err := s.lookup(handle)
	if err != nil {
		return nil, err
	}
	return sc.manifest.Load(), nil
}

// Settings returns the current settings snapshot of the handle's scope
func (s *Server) Settings(handle ProjectHandle) (*Settings, error) {
	sc, err := s.lookup(handle)
	if err != nil {
		return nil, err
	}
	return sc.settings.Load(), nil
}

// ⚙️ UpdateSettings compiles params into a new snapshot and swaps it in
func (s *Server) UpdateSettings(ctx context.Context, handle ProjectHandle, params UpdateSettingsParams) error {
	sc, err := s.lookup(handle)
	if err != nil {
		return err
	}

	if params.WorkspaceDirectory == "" {
		params.WorkspaceDirectory = sc.dir
	}

	settings, err := CompileSettings(params)
	if err != nil {
		return err
	}

	for _, lang := range settings.Configuration.Formatter.DisabledLanguages {
		if _, ok := s.engines.ForLanguage(lang); !ok {
			zerolog.Ctx(ctx).Warn().
				Str("handle", handle.String()).
				Str("language", lang).
				Strs("known", s.engines.Languages()).
				Msg("formatter.disabled_languages names an unknown language")
		}
	}

	sc.mu.Lock()
	sc.settings.Store(settings)
	sc.mu.Unlock()

	zerolog.Ctx(ctx).Debug().
		Str("handle", handle.String()).
		Str("workspace", settings.WorkspaceDirectory).
		Str("vcs_base", settings.VCSBasePath).
		Int("gitignore_patterns", settings.gitignore.Len()).
		Msg("updated settings")

	return nil
}
