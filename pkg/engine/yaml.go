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
	"bytes"
	"context"
	"io"
	"regexp"
	"strconv"
	"strings"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

func init() {
	register(&YAMLFormatter{})
}

var yamlLinePattern = regexp.MustCompile(`line (\d+)`)

// YAMLFormatter round-trips every document through yaml.Node so comments
// survive. YAML forbids tab indentation, so only the indent width applies.
// Documents without content are dropped and their comments move to the next
// document, or to the foot of the previous one at the end of the stream. A
// stream with no content at all is returned unchanged.
type YAMLFormatter struct{}

func (f *YAMLFormatter) Language() string { return "yaml" }

func (f *YAMLFormatter) Extensions() []string { return []string{".yaml", ".yml"} }

func (f *YAMLFormatter) Format(ctx context.Context, path string, content []byte, opts Options) ([]byte, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(content))

	var (
		docs    []*yaml.Node
		pending []string
	)
	for {
		node := &yaml.Node{}
		err := decoder.Decode(node)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			serr := &SyntaxError{Language: "yaml", Path: path, Message: err.Error()}
			if m := yamlLinePattern.FindStringSubmatch(err.Error()); m != nil {
				serr.Line, _ = strconv.Atoi(m[1])
			}
			return nil, serr
		}

		if emptyDocument(node) {
			pending = append(pending, documentComments(node)...)
			continue
		}
		if len(pending) > 0 {
			node.HeadComment = joinComments(append(pending, node.HeadComment)...)
			pending = nil
		}
		docs = append(docs, node)
	}

	if len(docs) == 0 {
		return bytes.Clone(content), nil
	}
	if len(pending) > 0 {
		last := docs[len(docs)-1]
		last.FootComment = joinComments(append([]string{last.FootComment}, pending...)...)
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(opts.IndentWidth)
	for _, doc := range docs {
		if err := encoder.Encode(doc); err != nil {
			return nil, errors.Errorf("encoding yaml: %w", err)
		}
	}
	if err := encoder.Close(); err != nil {
		return nil, errors.Errorf("closing yaml encoder: %w", err)
	}
	return buf.Bytes(), nil
}

// emptyDocument reports a document holding nothing but an implicit null
func emptyDocument(doc *yaml.Node) bool {
	if doc.Kind != yaml.DocumentNode {
		return false
	}
	switch len(doc.Content) {
	case 0:
		return true
	case 1:
		c := doc.Content[0]
		return c.Kind == yaml.ScalarNode && c.Tag == "!!null" && c.Value == "" && c.Style == 0
	default:
		return false
	}
}

func documentComments(doc *yaml.Node) []string {
	out := []string{doc.HeadComment, doc.LineComment}
	for _, c := range doc.Content {
		out = append(out, c.HeadComment, c.LineComment, c.FootComment)
	}
	return append(out, doc.FootComment)
}

func joinComments(comments ...string) string {
	kept := make([]string, 0, len(comments))
	for _, c := range comments {
		if c = strings.TrimSpace(c); c != "" {
			kept = append(kept, c)
		}
	}
	return strings.Join(kept, "\n")
}
