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

	"github.com/pterm/pterm"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/fmtrc/cmd/fmtrc/commands"
	"github.com/walteh/fmtrc/cmd/fmtrc/opts"
)

func main() {
	configureColor(os.Stdout.Fd())

	o := opts.NewOS()
	rootCmd := newRootCmd(o)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		var problems *commands.ProblemsError
		if !errors.As(err, &problems) {
			pterm.Error.WithWriter(o.Stderr).WithPrefix(pterm.Prefix{Text: "❌"}).Println(err.Error())
		}
		os.Exit(1)
	}
}
