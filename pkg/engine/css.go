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
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

func init() {
	register(&CSSFormatter{})
}

// 🎨 CSSFormatter prints one declaration per line, blocks indented by depth
//
//	a{color:red}  ->  a {
//	                    color: red;
//	                  }
type CSSFormatter struct{}

func (f *CSSFormatter) Language() string { return "css" }

func (f *CSSFormatter) Extensions() []string { return []string{".css"} }

func (f *CSSFormatter) Format(ctx context.Context, path string, content []byte, opts Options) ([]byte, error) {
	p := &cssPrinter{
		path:   path,
		indent: opts.Indent(),
		line:   1,
	}

	lexer := css.NewLexer(parse.NewInputBytes(content))
	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && err != io.EOF {
				return nil, p.errorf("%v", err)
			}
			break
		}
		if err := p.token(tt, data); err != nil {
			return nil, err
		}
		p.line += bytes.Count(data, []byte{'\n'})
	}

	if err := p.finish(); err != nil {
		return nil, err
	}
	return p.out.Bytes(), nil
}

type cssPrinter struct {
	path   string
	indent string
	line   int

	out       bytes.Buffer
	pending   strings.Builder
	needSpace bool
	depth     int
	// wroteTopLevel is set once anything has been printed at depth 0
	wroteTopLevel bool
}

func (p *cssPrinter) errorf(format string, args ...any) error {
	return &SyntaxError{Language: "css", Path: p.path, Line: p.line, Message: fmt.Sprintf(format, args...)}
}

func (p *cssPrinter) token(tt css.TokenType, data []byte) error {
	switch tt {
	case css.WhitespaceToken:
		if p.pending.Len() > 0 {
			p.needSpace = true
		}
		return nil

	case css.CommentToken:
		if len(data) < 4 || !bytes.HasSuffix(data, []byte("*/")) {
			return p.errorf("unterminated comment")
		}
		if p.pending.Len() == 0 {
			p.writeLine(string(data))
			return nil
		}
		p.appendText(string(data))
		return nil

	case css.BadStringToken:
		return p.errorf("unterminated string")

	case css.BadURLToken:
		return p.errorf("malformed url()")

	case css.StringToken:
		if len(data) < 2 || data[len(data)-1] != data[0] {
			return p.errorf("unterminated string")
		}
		p.appendText(string(data))
		return nil

	case css.CommaToken:
		p.pending.WriteString(",")
		p.needSpace = true
		return nil

	case css.LeftBraceToken:
		p.openBlock()
		return nil

	case css.SemicolonToken:
		p.flushStatement()
		return nil

	case css.RightBraceToken:
		if p.depth == 0 {
			return p.errorf("unexpected '}'")
		}
		p.flushStatement()
		p.depth--
		p.writeLine("}")
		return nil

	case css.CDOToken, css.CDCToken:
		return nil

	default:
		p.appendText(string(data))
		return nil
	}
}

func (p *cssPrinter) appendText(text string) {
	if p.needSpace && p.pending.Len() > 0 && !strings.HasSuffix(p.pending.String(), "(") && text != ")" {
		p.pending.WriteByte(' ')
	}
	p.needSpace = false
	p.pending.WriteString(text)
}

func (p *cssPrinter) takePending() string {
	s := strings.TrimSpace(p.pending.String())
	p.pending.Reset()
	p.needSpace = false
	return s
}

func (p *cssPrinter) writeLine(s string) {
	if p.depth == 0 {
		p.wroteTopLevel = true
	}
	for range p.depth {
		p.out.WriteString(p.indent)
	}
	p.out.WriteString(s)
	p.out.WriteByte('\n')
}

func (p *cssPrinter) openBlock() {
	prelude := p.takePending()
	if p.depth == 0 && p.wroteTopLevel {
		p.out.WriteByte('\n')
	}
	if prelude == "" {
		p.writeLine("{")
	} else {
		p.writeLine(prelude + " {")
	}
	p.depth++
}

func (p *cssPrinter) flushStatement() {
	stmt := p.takePending()
	if stmt == "" {
		return
	}
	if !strings.HasPrefix(stmt, "@") {
		if name, value, ok := splitDeclaration(stmt); ok {
			stmt = name + ": " + value
		}
	}
	p.writeLine(stmt + ";")
}

func (p *cssPrinter) finish() error {
	if p.depth > 0 {
		return p.errorf("unclosed block")
	}
	if rest := p.takePending(); rest != "" {
		return p.errorf("unexpected end of input after %q", rest)
	}
	return nil
}

// splitDeclaration splits at the first colon outside parentheses
func splitDeclaration(s string) (string, string, bool) {
	depth := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				name := strings.TrimSpace(s[:i])
				value := strings.TrimSpace(s[i+1:])
				if name == "" {
					return "", "", false
				}
				return name, value, true
			}
		}
	}
	return "", "", false
}
