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
	"context"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
)

func init() {
	register(&HCLFormatter{})
}

// HCLFormatter validates with the native syntax parser before running
// hclwrite, which would otherwise reformat broken input silently.
type HCLFormatter struct{}

func (f *HCLFormatter) Language() string { return "hcl" }

func (f *HCLFormatter) Extensions() []string { return []string{".hcl", ".tf"} }

func (f *HCLFormatter) Format(ctx context.Context, path string, content []byte, opts Options) ([]byte, error) {
	_, diags := hclsyntax.ParseConfig(content, path, hcl.InitialPos)
	if diags.HasErrors() {
		serr := &SyntaxError{Language: "hcl", Path: path}
		var msgs []string
		for _, d := range diags.Errs() {
			var diag *hcl.Diagnostic
			if de, ok := d.(*hcl.Diagnostic); ok {
				diag = de
			}
			if diag == nil {
				msgs = append(msgs, d.Error())
				continue
			}
			if serr.Line == 0 && diag.Subject != nil {
				serr.Line = diag.Subject.Start.Line
			}
			msg := diag.Summary
			if diag.Detail != "" {
				msg += ": " + diag.Detail
			}
			msgs = append(msgs, msg)
		}
		serr.Message = strings.Join(msgs, "; ")
		return nil, serr
	}

	return hclwrite.Format(content), nil
}
