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

package pipeline

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/walteh/fmtrc/pkg/manifest"
	"github.com/walteh/fmtrc/pkg/workspace"
)

// 🔌 Workspace is the project registry the pipeline drives.
// *workspace.Server implements it.
type Workspace interface {
	RegisterProjectFolder(ctx context.Context, params workspace.RegisterProjectFolderParams) (workspace.ProjectHandle, error)
	UpdateSettings(ctx context.Context, handle workspace.ProjectHandle, params workspace.UpdateSettingsParams) error
	SetManifestForProject(ctx context.Context, handle workspace.ProjectHandle, data *manifest.Data) error
	FileFeatures(ctx context.Context, handle workspace.ProjectHandle, params workspace.SupportsFeatureParams) (workspace.FileFeaturesResult, error)
	OpenFile(ctx context.Context, handle workspace.ProjectHandle, params workspace.OpenFileParams) error
	FormatFile(ctx context.Context, handle workspace.ProjectHandle, params workspace.FormatFileParams) (*workspace.Printed, error)
	CloseProject(ctx context.Context, handle workspace.ProjectHandle) error
}

var _ Workspace = (*workspace.Server)(nil)

// 📥 Request is one file to format
type Request struct {
	// Target is the file path, absolute or relative to CurrentDir
	Target string
	// Content is the raw file content; it is never read from disk
	Content []byte
	// CurrentDir is the working directory of the request
	CurrentDir string
	// ConfigPath optionally names a config file or directory explicitly
	ConfigPath string
}

// 🏭 Pipeline binds a workspace and a file system
type Pipeline struct {
	workspace Workspace
	fs        afero.Fs
}

// New creates a pipeline over ws, reading configuration through fs
func New(ws Workspace, fs afero.Fs) *Pipeline {
	return &Pipeline{workspace: ws, fs: fs}
}

// NewOS creates a pipeline over a fresh workspace and the OS file system
func NewOS() *Pipeline {
	return New(workspace.NewServer(), afero.NewOsFs())
}

// 🚀 Run executes every stage for req. The handle is released before Run
// returns. Exactly one of the results is non-nil.
func (p *Pipeline) Run(ctx context.Context, req Request) (Outcome, error) {
	start := time.Now()
	logger := zerolog.Ctx(ctx).With().Str("target", req.Target).Str("cwd", req.CurrentDir).Logger()
	ctx = logger.WithContext(ctx)

	outcome, err := p.run(ctx, req)

	ev := logger.Debug().Dur("duration", time.Since(start))
	if err != nil {
		ev.Err(err).Msg("format request failed")
		return nil, err
	}
	ev.Str("status", outcome.Status()).Msg("format request done")
	return outcome, nil
}

func (p *Pipeline) run(ctx context.Context, req Request) (Outcome, error) {
	resolved, err := p.Resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	registered, err := resolved.Register(ctx)
	if err != nil {
		return nil, err
	}
	defer registered.Close(ctx)

	applied, err := registered.ApplySettings(ctx)
	if err != nil {
		return nil, err
	}

	eligible, ignored, err := applied.CheckFeatures(ctx)
	if err != nil {
		return nil, err
	}
	if eligible == nil {
		return ignored, nil
	}

	return eligible.Format(ctx)
}
