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

package commands

import (
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"

	"github.com/walteh/fmtrc/cmd/fmtrc/opts"
	"github.com/walteh/fmtrc/pkg/config"
	"github.com/walteh/fmtrc/pkg/fsys"
)

type resolvedConfig struct {
	File          string               `yaml:"file"`
	Directory     string               `yaml:"directory"`
	Configuration config.Configuration `yaml:"configuration"`
}

// NewConfigCmd creates a new config command
func NewConfigCmd(opts *opts.RootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		Long: `Config locates the configuration the same way format does, applies
FMTRC_* environment overrides and prints the result as YAML.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wd, err := opts.WorkingDirectory()
			if err != nil {
				return err
			}

			fs, err := fsys.New(opts.Fs, wd)
			if err != nil {
				return err
			}

			hint := config.HintNone()
			if opts.ConfigPath != "" {
				hint = config.HintFromUser(opts.ConfigPath)
			}

			loaded, err := config.Load(cmd.Context(), fs, hint)
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(opts.Stdout)
			enc.SetIndent(2)
			if err := enc.Encode(resolvedConfig{
				File:          loaded.FilePath,
				Directory:     loaded.DirectoryPath,
				Configuration: loaded.Configuration,
			}); err != nil {
				return errors.Errorf("encoding configuration: %w", err)
			}
			return enc.Close()
		},
	}
}
