// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package parser reads expressions from their display form, as produced by
// [expr.Expr.String].
//
// The grammar is
//
//	expr   := atom ('[' (expr (',' expr)*)? ']')*
//	atom   := integer | real | string | symbol
//
// where integers and reals may carry a leading "-", reals are written with a
// decimal point, an exponent, or as "inf", strings are double-quoted with Go
// escapes, and symbols are fully qualified with their context, such as
// "System`List". Whitespace between tokens is ignored.
//
// The parser does not resolve names against a context path, so a bare name
// such as "List" is rejected.
package parser

import (
	"fmt"

	"github.com/wlexpr/wlexpr/expr"
	"github.com/wlexpr/wlexpr/internal/ext/unicodex"
)

// DefaultMaxDepth is the nesting depth used when [Options.MaxDepth] is zero.
//
// Deeper expressions can be built with package expr; to read their display
// back, set [Options.MaxDepth] to at least their depth.
const DefaultMaxDepth = 1024

// Options configures a parse.
type Options struct {
	// The maximum number of brackets that may be open at once. If zero,
	// DefaultMaxDepth is used.
	MaxDepth int
}

// Parse parses text as a single expression, using the default options.
func Parse(text string) (expr.Expr, error) {
	return Options{}.Parse(text)
}

// MustParse is like [Parse], but panics on error.
//
// This is intended for constructing expressions from literals in tests and
// initializers.
func MustParse(text string) expr.Expr {
	e, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("parser.MustParse(%q): %v", text, err))
	}
	return e
}

// Parse parses text as a single expression.
func (o Options) Parse(text string) (expr.Expr, error) {
	p := &parser{
		lexer:    lexer{text: text},
		maxDepth: o.MaxDepth,
	}
	if p.maxDepth <= 0 {
		p.maxDepth = DefaultMaxDepth
	}
	return p.parse()
}

// Error is an error produced while parsing.
type Error struct {
	// The byte offset in the input at which the error occurred.
	Offset int
	// The one-based line and zero-based display column of Offset.
	Line, Column int

	Message string
}

// Error implements [error].
func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column+1, e.Message)
}

// newError constructs an [Error] at the given offset of text.
func newError(text string, offset int, format string, args ...any) *Error {
	line, column := unicodex.Column(text, offset)
	return &Error{
		Offset:  offset,
		Line:    line,
		Column:  column,
		Message: fmt.Sprintf(format, args...),
	}
}
