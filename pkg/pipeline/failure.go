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
	"fmt"
)

// Stage names a pipeline step in failures and logs
type Stage string

const (
	StageResolve       Stage = "resolve"
	StageRegister      Stage = "register"
	StageApplySettings Stage = "apply_settings"
	StageCheckFeatures Stage = "check_features"
	StageFormat        Stage = "format"
)

// 💥 Failure means the request could not be carried out. It wraps the cause.
type Failure struct {
	Stage Stage
	Err   error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("format pipeline failed during %s: %v", f.Stage, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }

func fail(stage Stage, err error) *Failure {
	return &Failure{Stage: stage, Err: err}
}
