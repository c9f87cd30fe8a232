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

// Package plugin is the JSON boundary a plugin host calls: one request
// document in, one response document out.
package plugin

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/walteh/fmtrc/pkg/pipeline"
)

const (
	FieldTarget        = "target"
	FieldTargetContent = "target-content"
	FieldCurrentDir    = "current-dir"
)

// 📤 Response is the wire shape; exactly one variant's fields are set
type Response struct {
	FormatStatus     *string `json:"format-status,omitempty"`
	FormattedContent *string `json:"formatted-content,omitempty"`
	FormatError      *string `json:"format-error,omitempty"`
	PluginPanic      *string `json:"plugin-panic,omitempty"`
}

func ptr(s string) *string { return &s }

// ResponseFromOutcome maps a finished request to its wire shape
func ResponseFromOutcome(outcome pipeline.Outcome) Response {
	switch o := outcome.(type) {
	case pipeline.Success:
		return Response{FormatStatus: ptr(o.Status()), FormattedContent: ptr(o.Content)}
	case pipeline.Ignored:
		return Response{FormatStatus: ptr(o.Status())}
	case pipeline.Error:
		return Response{FormatStatus: ptr(o.Status()), FormatError: ptr(o.Message)}
	default:
		return PanicResponse(fmt.Sprintf("unknown outcome %T", outcome))
	}
}

// PanicResponse reports a request that could not be carried out
func PanicResponse(msg string) Response {
	return Response{PluginPanic: ptr(msg)}
}

// Marshal encodes the response; it cannot fail for this shape
func (r Response) Marshal() []byte {
	out, err := json.Marshal(r)
	if err != nil {
		return []byte(`{"plugin-panic":"encoding response failed"}`)
	}
	return out
}

// 📥 ParseRequest reads the three required string fields
func ParseRequest(input []byte) (pipeline.Request, error) {
	if !gjson.ValidBytes(input) {
		return pipeline.Request{}, &RequestError{Reason: "request is not valid JSON"}
	}

	fields := gjson.GetManyBytes(input, FieldTarget, FieldTargetContent, FieldCurrentDir)
	names := []string{FieldTarget, FieldTargetContent, FieldCurrentDir}
	for i, f := range fields {
		if !f.Exists() {
			return pipeline.Request{}, &RequestError{Field: names[i], Reason: "missing"}
		}
		if f.Type != gjson.String {
			return pipeline.Request{}, &RequestError{Field: names[i], Reason: "not a string"}
		}
	}

	return pipeline.Request{
		Target:     fields[0].String(),
		Content:    []byte(fields[1].String()),
		CurrentDir: fields[2].String(),
	}, nil
}

// RequestError reports a malformed request document
type RequestError struct {
	Field  string
	Reason string
}

func (e *RequestError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
}

// 🔌 Handler serves requests with one pipeline
type Handler struct {
	pipeline *pipeline.Pipeline
}

func NewHandler(p *pipeline.Pipeline) *Handler {
	return &Handler{pipeline: p}
}

// Handle runs one request document and never panics
func (h *Handler) Handle(ctx context.Context, input []byte) (out []byte) {
	logger := zerolog.Ctx(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("recovered from panic while formatting")
			out = PanicResponse(fmt.Sprintf("panic: %v", r)).Marshal()
		}
	}()

	req, err := ParseRequest(input)
	if err != nil {
		logger.Warn().Err(err).Msg("rejecting malformed request")
		return PanicResponse(err.Error()).Marshal()
	}

	outcome, err := h.pipeline.Run(ctx, req)
	if err != nil {
		return PanicResponse(err.Error()).Marshal()
	}

	return ResponseFromOutcome(outcome).Marshal()
}

var defaultHandler = sync.OnceValue(func() *Handler {
	return NewHandler(pipeline.NewOS())
})

// 🚀 MainWithJSON serves one request with a process-wide pipeline. The
// workspace behind it is shared by every call.
func MainWithJSON(ctx context.Context, input []byte) []byte {
	return defaultHandler().Handle(ctx, input)
}
