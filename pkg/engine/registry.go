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
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

var (
	// 🗺️ builtins are the engines registered by this package
	builtins []Formatter

	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

func register(f Formatter) {
	builtins = append(builtins, f)
}

// 📚 Registry maps extensions and language names to formatters
type Registry struct {
	byExtension map[string]Formatter
	byLanguage  map[string]Formatter
}

// NewRegistry builds a registry; later formatters win on extension clashes
func NewRegistry(formatters ...Formatter) *Registry {
	r := &Registry{
		byExtension: make(map[string]Formatter),
		byLanguage:  make(map[string]Formatter),
	}
	for _, f := range formatters {
		r.Register(f)
	}
	return r
}

// 🏭 Default returns the shared registry of bundled engines
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry(builtins...)
	})
	return defaultRegistry
}

// Register adds f. It is not safe to call once the registry is in use.
func (r *Registry) Register(f Formatter) {
	r.byLanguage[f.Language()] = f
	for _, ext := range f.Extensions() {
		r.byExtension[strings.ToLower(ext)] = f
	}
}

// 🎯 ForPath returns the formatter for path's extension
func (r *Registry) ForPath(path string) (Formatter, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return nil, false
	}
	f, ok := r.byExtension[ext]
	return f, ok
}

// ForLanguage returns the formatter registered under a language name
func (r *Registry) ForLanguage(language string) (Formatter, bool) {
	f, ok := r.byLanguage[strings.ToLower(language)]
	return f, ok
}

// Languages returns the registered language names, sorted
func (r *Registry) Languages() []string {
	out := make([]string, 0, len(r.byLanguage))
	for name := range r.byLanguage {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
