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
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"gitlab.com/tozd/go/errors"
)

// EnvPrefix is the prefix of environment variables that override config fields
const EnvPrefix = "FMTRC_"

var envSections = map[string]bool{
	"formatter": true,
	"files":     true,
	"vcs":       true,
}

// envKey maps FMTRC_FORMATTER_LINE_WIDTH to formatter.line_width. Variables
// outside a known section (FMTRC_LOG_LEVEL) map to "" and are skipped.
func envKey(name string) string {
	lower := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	parts := strings.SplitN(lower, "_", 2)
	if len(parts) != 2 || !envSections[parts[0]] || parts[1] == "" {
		return ""
	}
	return parts[0] + "." + parts[1]
}

// comma separated values become lists so FMTRC_FILES_IGNORE=a,b works
func envValue(name, value string) (string, any) {
	key := envKey(name)
	if key == "" {
		return "", nil
	}
	if strings.Contains(value, ",") {
		items := strings.Split(value, ",")
		for i := range items {
			items[i] = strings.TrimSpace(items[i])
		}
		return key, items
	}
	return key, value
}

// 🌍 EnvOverrides reads FMTRC_* variables into a PartialConfiguration.
// It returns nil when no override is set.
func EnvOverrides() (*PartialConfiguration, error) {
	k := koanf.New(".")

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return nil, errors.Errorf("loading environment overrides: %w", err)
	}

	if len(k.Keys()) == 0 {
		return nil, nil
	}

	var p PartialConfiguration
	if err := k.UnmarshalWithConf("", &p, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, errors.Errorf("decoding environment overrides: %w", err)
	}

	return &p, nil
}
