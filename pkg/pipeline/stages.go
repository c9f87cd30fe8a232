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

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/fmtrc/pkg/config"
	"github.com/walteh/fmtrc/pkg/engine"
	"github.com/walteh/fmtrc/pkg/fsys"
	"github.com/walteh/fmtrc/pkg/manifest"
	"github.com/walteh/fmtrc/pkg/vcs"
	"github.com/walteh/fmtrc/pkg/workspace"
)

// 📚 Resolved holds everything read from disk for a request
type Resolved struct {
	workspace Workspace
	fs        *fsys.FileSystem

	// Target is the absolute path of the file
	Target  string
	Content []byte
	// WorkingDirectory is the normalized current directory
	WorkingDirectory string

	Configuration *config.LoadedConfiguration
	VCSBasePath   string
	Gitignore     *vcs.IgnoreMatches
	// Manifest is nil when no package.json was found
	Manifest *manifest.Data
}

// 🔍 Resolve normalizes the request paths and loads configuration, VCS
// ignore files and the manifest
func (p *Pipeline) Resolve(ctx context.Context, req Request) (*Resolved, error) {
	fs, err := fsys.New(p.fs, req.CurrentDir)
	if err != nil {
		return nil, fail(StageResolve, err)
	}

	target, err := fs.Resolve(req.Target)
	if err != nil {
		return nil, fail(StageResolve, err)
	}

	hint := config.HintNone()
	if req.ConfigPath != "" {
		hint = config.HintFromUser(req.ConfigPath)
	}

	loaded, err := config.Load(ctx, fs, hint)
	if err != nil {
		return nil, fail(StageResolve, err)
	}

	configDir := ""
	if loaded.Found() {
		configDir = loaded.DirectoryPath
	}
	base := vcs.BaseDirectory(loaded.Configuration.VCS, configDir, fs.WorkingDirectory())

	ignores, err := vcs.RetrieveGitignoreMatches(ctx, fs, loaded.Configuration.VCS, base)
	if err != nil {
		return nil, fail(StageResolve, err)
	}

	data := manifest.Resolve(ctx, fs, fs.WorkingDirectory())

	zerolog.Ctx(ctx).Debug().
		Str("stage", string(StageResolve)).
		Str("config_path", loaded.FilePath).
		Str("vcs_base", base).
		Int("gitignore_patterns", len(ignores.Lines)).
		Bool("manifest", data != nil).
		Msg("resolved configuration")

	return &Resolved{
		workspace:        p.workspace,
		fs:               fs,
		Target:           target,
		Content:          req.Content,
		WorkingDirectory: fs.WorkingDirectory(),
		Configuration:    loaded,
		VCSBasePath:      base,
		Gitignore:        ignores,
		Manifest:         data,
	}, nil
}

// 🎫 Registered is a resolved request holding a project handle
type Registered struct {
	resolved *Resolved
	Handle   workspace.ProjectHandle
}

// 📝 Register checks the working directory and leases a project handle on it
func (r *Resolved) Register(ctx context.Context) (*Registered, error) {
	if err := r.fs.RequireDir(r.WorkingDirectory); err != nil {
		return nil, fail(StageRegister, err)
	}

	handle, err := r.workspace.RegisterProjectFolder(ctx, workspace.RegisterProjectFolderParams{Path: r.WorkingDirectory})
	if err != nil {
		return nil, fail(StageRegister, err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("stage", string(StageRegister)).
		Str("handle", handle.String()).
		Msg("registered project")

	return &Registered{resolved: r, Handle: handle}, nil
}

// Close releases the handle. Errors are logged; the request result stands.
func (r *Registered) Close(ctx context.Context) {
	if err := r.resolved.workspace.CloseProject(ctx, r.Handle); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("handle", r.Handle.String()).Msg("closing project")
	}
}

// ⚙️ Applied is a registered request whose settings are in place
type Applied struct {
	registered *Registered
}

// ApplySettings attaches the manifest, then swaps in the settings snapshot
func (r *Registered) ApplySettings(ctx context.Context) (*Applied, error) {
	res := r.resolved
	if res.Manifest != nil {
		if err := res.workspace.SetManifestForProject(ctx, r.Handle, res.Manifest); err != nil {
			return nil, fail(StageApplySettings, err)
		}
	}

	err := res.workspace.UpdateSettings(ctx, r.Handle, workspace.UpdateSettingsParams{
		WorkspaceDirectory: res.Configuration.DirectoryPath,
		Configuration:      res.Configuration.Configuration,
		VCSBasePath:        res.VCSBasePath,
		GitignoreMatches:   res.Gitignore.Lines,
	})
	if err != nil {
		return nil, fail(StageApplySettings, err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("stage", string(StageApplySettings)).
		Str("handle", r.Handle.String()).
		Msg("applied settings")

	return &Applied{registered: r}, nil
}

// ✅ Eligible is a request whose file supports formatting
type Eligible struct {
	registered *Registered
}

// 🚦 CheckFeatures asks the workspace whether the target can be formatted.
// It returns either an Eligible request or an Ignored outcome.
func (a *Applied) CheckFeatures(ctx context.Context) (*Eligible, Outcome, error) {
	r := a.registered
	result, err := r.resolved.workspace.FileFeatures(ctx, r.Handle, workspace.SupportsFeatureParams{
		Path:     r.resolved.Target,
		Features: workspace.NewFeaturesBuilder().WithFormatter().Build(),
	})
	if err != nil {
		return nil, nil, fail(StageCheckFeatures, err)
	}

	logger := zerolog.Ctx(ctx).Debug().
		Str("stage", string(StageCheckFeatures)).
		Str("handle", r.Handle.String())

	if !result.IsSupported() {
		logger.Str("reason", result.Reason()).Msg("file is not eligible")
		return nil, Ignored{Reason: result.Reason()}, nil
	}

	logger.Msg("file is eligible")
	return &Eligible{registered: r}, nil, nil
}

// 🎨 Format opens the target under the handle and runs the engine. Engine
// errors become an Error outcome; workspace errors are failures.
func (e *Eligible) Format(ctx context.Context) (Outcome, error) {
	r := e.registered
	ws := r.resolved.workspace

	err := ws.OpenFile(ctx, r.Handle, workspace.OpenFileParams{
		Path:    r.resolved.Target,
		Content: r.resolved.Content,
		Version: 0,
	})
	if err != nil {
		return nil, fail(StageFormat, err)
	}

	printed, err := ws.FormatFile(ctx, r.Handle, workspace.FormatFileParams{Path: r.resolved.Target})
	if err != nil {
		if isFormatError(err) {
			zerolog.Ctx(ctx).Debug().Err(err).Str("stage", string(StageFormat)).Msg("engine rejected file")
			return Error{Message: err.Error()}, nil
		}
		return nil, fail(StageFormat, err)
	}

	return Success{Content: string(printed.Content)}, nil
}

func isFormatError(err error) bool {
	var engineErr *workspace.EngineError
	var syntaxErr *engine.SyntaxError
	var sizeErr *workspace.FileTooLargeError
	return errors.As(err, &engineErr) || errors.As(err, &syntaxErr) || errors.As(err, &sizeErr)
}
