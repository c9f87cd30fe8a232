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
	"io"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/fmtrc/cmd/fmtrc/opts"
	"github.com/walteh/fmtrc/pkg/plugin"
)

// NewPluginCmd creates a new plugin command
func NewPluginCmd(opts *opts.RootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "plugin",
		Short: "Serve one JSON format request from stdin",
		Long: `Plugin reads a request document on stdin and writes the response document
to stdout. Request fields are target, target-content and current-dir.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := io.ReadAll(opts.Stdin)
			if err != nil {
				return errors.Errorf("reading request: %w", err)
			}

			out := plugin.NewHandler(opts.Pipeline()).Handle(cmd.Context(), input)

			if _, err := opts.Stdout.Write(append(out, '\n')); err != nil {
				return errors.Errorf("writing response: %w", err)
			}
			return nil
		},
	}
}
