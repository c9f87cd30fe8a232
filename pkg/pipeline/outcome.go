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

// 📤 Outcome is the result of a request that ran to completion. The variants
// are Success, Ignored and Error.
type Outcome interface {
	// Status is the wire name of the variant
	Status() string
	isOutcome()
}

// ✅ Success carries the formatted text
type Success struct {
	Content string
}

// ⏭️ Ignored means the file is not eligible for formatting
type Ignored struct {
	Reason string
}

// ❌ Error means the engine rejected the file
type Error struct {
	Message string
}

func (Success) Status() string { return "success" }
func (Ignored) Status() string { return "ignored" }
func (Error) Status() string   { return "error" }

func (Success) isOutcome() {}
func (Ignored) isOutcome() {}
func (Error) isOutcome()   {}
