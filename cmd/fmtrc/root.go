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

package main

import (
	"context"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/walteh/fmtrc/cmd/fmtrc/commands"
	"github.com/walteh/fmtrc/cmd/fmtrc/opts"
)

// LogLevelEnv overrides the log level when --debug is not set
const LogLevelEnv = "FMTRC_LOG_LEVEL"

// newRootCmd wires every subcommand to o. Logging is configured once the
// flags are parsed.
func newRootCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmtrc",
		Short: "Format files with per-project configuration",
		Long: `fmtrc formats CSS, Go, HCL, JSON and YAML files. Settings come from the
nearest .fmtrc.* file, FMTRC_* environment variables and the project's
ignore files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(setupLogging(cmd.Context(), o))
			return nil
		},
	}

	addRootFlags(cmd, o)

	cmd.SetIn(o.Stdin)
	cmd.SetOut(o.Stdout)
	cmd.SetErr(o.Stderr)

	cmd.AddCommand(
		commands.NewFormatCmd(o),
		commands.NewPluginCmd(o),
		commands.NewConfigCmd(o),
		newVersionCmd(o),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVar(&o.CurrentDir, "cwd", "", "working directory used to resolve files and configuration")
	cmd.PersistentFlags().StringVarP(&o.ConfigPath, "config", "c", "", "config file or directory (default: search from --cwd upwards)")
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
}

// logLevel picks the zerolog level from --debug and the environment.
// Diagnostics stay quiet by default since the console reporter already
// prints every file.
func logLevel(debug bool, env string) zerolog.Level {
	if debug {
		return zerolog.DebugLevel
	}
	if env != "" {
		if lvl, err := zerolog.ParseLevel(strings.ToLower(env)); err == nil {
			return lvl
		}
	}
	return zerolog.ErrorLevel
}

// setupLogging attaches a stderr logger to ctx
func setupLogging(ctx context.Context, o *opts.RootOpts) context.Context {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: o.Stderr, NoColor: color.NoColor}).
		Level(logLevel(o.Debug, os.Getenv(LogLevelEnv))).
		With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	return logger.WithContext(ctx)
}

// configureColor turns off colour output when fd is not a terminal
func configureColor(fd uintptr) {
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return
	}
	color.NoColor = true
	pterm.DisableColor()
}
