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
	"fmt"

	"github.com/rs/zerolog"
)

// FeatureName identifies a capability a caller can ask about
type FeatureName string

const (
	FeatureFormat FeatureName = "format"
	FeatureLint   FeatureName = "lint"
)

// 🚦 SupportKind is the verdict for one feature on one path
type SupportKind int

const (
	Supported SupportKind = iota
	Ignored
	FeatureNotEnabled
	FileNotSupported
)

func (k SupportKind) String() string {
	switch k {
	case Supported:
		return "supported"
	case Ignored:
		return "ignored"
	case FeatureNotEnabled:
		return "feature not enabled"
	case FileNotSupported:
		return "file not supported"
	default:
		return fmt.Sprintf("SupportKind(%d)", int(k))
	}
}

// FeatureSupport is a verdict plus a human readable reason
type FeatureSupport struct {
	Kind   SupportKind
	Reason string
}

// 🧱 FeaturesBuilder collects the features to query
type FeaturesBuilder struct {
	features []FeatureName
}

func NewFeaturesBuilder() *FeaturesBuilder {
	return &FeaturesBuilder{}
}

func (b *FeaturesBuilder) with(name FeatureName) *FeaturesBuilder {
	for _, f := range b.features {
		if f == name {
			return b
		}
	}
	b.features = append(b.features, name)
	return b
}

func (b *FeaturesBuilder) WithFormatter() *FeaturesBuilder { return b.with(FeatureFormat) }

func (b *FeaturesBuilder) WithLinter() *FeaturesBuilder { return b.with(FeatureLint) }

// Build returns the requested features in the order they were added
func (b *FeaturesBuilder) Build() []FeatureName {
	out := make([]FeatureName, len(b.features))
	copy(out, b.features)
	return out
}

// SupportsFeatureParams asks which features apply to Path
type SupportsFeatureParams struct {
	Path     string
	Features []FeatureName
}

// 📋 FileFeaturesResult holds one verdict per requested feature
type FileFeaturesResult struct {
	order    []FeatureName
	verdicts map[FeatureName]FeatureSupport
}

// Get returns the verdict for name; unrequested features are FileNotSupported
func (r FileFeaturesResult) Get(name FeatureName) FeatureSupport {
	if v, ok := r.verdicts[name]; ok {
		return v
	}
	return FeatureSupport{Kind: FileNotSupported, Reason: fmt.Sprintf("feature %q was not requested", name)}
}

// IsSupported reports whether every requested feature is supported
func (r FileFeaturesResult) IsSupported() bool {
	if len(r.order) == 0 {
		return false
	}
	for _, name := range r.order {
		if r.verdicts[name].Kind != Supported {
			return false
		}
	}
	return true
}

// Reason describes the first unsupported feature, or "" when all are supported
func (r FileFeaturesResult) Reason() string {
	for _, name := range r.order {
		v := r.verdicts[name]
		if v.Kind != Supported {
			return fmt.Sprintf("%s %s: %s", name, v.Kind, v.Reason)
		}
	}
	return ""
}

// FeatureVerdict pairs a feature with its verdict
type FeatureVerdict struct {
	Feature FeatureName
	Support FeatureSupport
}

// NewFileFeaturesResult builds a result from verdicts in query order; a
// repeated feature keeps its first verdict
func NewFileFeaturesResult(verdicts ...FeatureVerdict) FileFeaturesResult {
	result := FileFeaturesResult{
		verdicts: make(map[FeatureName]FeatureSupport, len(verdicts)),
	}
	for _, v := range verdicts {
		if _, seen := result.verdicts[v.Feature]; seen {
			continue
		}
		result.order = append(result.order, v.Feature)
		result.verdicts[v.Feature] = v.Support
	}
	return result
}

// 🔍 FileFeatures decides, against one settings snapshot, which of the
// requested features apply to params.Path
func (s *Server) FileFeatures(ctx context.Context, handle ProjectHandle, params SupportsFeatureParams) (FileFeaturesResult, error) {
	sc, err := s.lookup(handle)
	if err != nil {
		return FileFeaturesResult{}, err
	}
	settings := sc.settings.Load()

	verdicts := make([]FeatureVerdict, 0, len(params.Features))
	for _, name := range params.Features {
		verdicts = append(verdicts, FeatureVerdict{Feature: name, Support: s.decide(settings, params.Path, name)})
	}
	result := NewFileFeaturesResult(verdicts...)

	zerolog.Ctx(ctx).Debug().
		Str("handle", handle.String()).
		Str("path", params.Path).
		Bool("supported", result.IsSupported()).
		Str("reason", result.Reason()).
		Msg("checked file features")

	return result, nil
}

func (s *Server) decide(settings *Settings, p string, feature FeatureName) FeatureSupport {
	cfg := settings.Configuration
	rel := settings.relative(p)

	if ok, reason := filterVerdict(cfg.Files.Include, cfg.Files.Ignore, rel, "files"); !ok {
		return FeatureSupport{Kind: Ignored, Reason: reason}
	}

	if settings.GitIgnored(p) {
		return FeatureSupport{Kind: Ignored, Reason: "ignored by the VCS ignore file"}
	}

	switch feature {
	case FeatureFormat:
	case FeatureLint:
		return FeatureSupport{Kind: FileNotSupported, Reason: "no linter is available"}
	default:
		return FeatureSupport{Kind: FileNotSupported, Reason: fmt.Sprintf("unknown feature %q", feature)}
	}

	formatter, ok := s.engines.ForPath(p)
	if !ok {
		return FeatureSupport{Kind: FileNotSupported, Reason: "no formatter handles this file type"}
	}

	if !cfg.Formatter.Enabled {
		return FeatureSupport{Kind: FeatureNotEnabled, Reason: "the formatter is disabled"}
	}
	if settings.LanguageDisabled(formatter.Language()) {
		return FeatureSupport{Kind: FeatureNotEnabled, Reason: fmt.Sprintf("the formatter is disabled for %s", formatter.Language())}
	}

	if ok, reason := filterVerdict(cfg.Formatter.Include, cfg.Formatter.Ignore, rel, "formatter"); !ok {
		return FeatureSupport{Kind: Ignored, Reason: reason}
	}

	return FeatureSupport{Kind: Supported}
}
