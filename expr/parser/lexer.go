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

package parser

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/wlexpr/wlexpr/internal/ext/stringsx"
	"github.com/wlexpr/wlexpr/internal/ext/unicodex"
)

// tokenKind is the kind of a token.
type tokenKind int8

const (
	tokenEOF tokenKind = iota
	tokenOpen
	tokenClose
	tokenComma
	tokenNumber
	tokenString
	tokenIdent
)

func (k tokenKind) String() string {
	switch k {
	case tokenEOF:
		return "end of input"
	case tokenOpen:
		return "`[`"
	case tokenClose:
		return "`]`"
	case tokenComma:
		return "`,`"
	case tokenNumber:
		return "number"
	case tokenString:
		return "string"
	case tokenIdent:
		return "symbol"
	default:
		return "token"
	}
}

// token is a single token produced by the lexer.
type token struct {
	kind  tokenKind
	start int
	text  string
}

// lexer splits the input into tokens on demand.
type lexer struct {
	text   string
	cursor int
}

// rest returns the remaining unlexed text.
func (l *lexer) rest() string {
	return l.text[l.cursor:]
}

// done returns whether or not we're done lexing runes.
func (l *lexer) done() bool {
	return l.rest() == ""
}

// peek peeks the next character.
//
// Returns -1 if l.done(), and utf8.RuneError if the next bytes are not valid
// UTF-8.
func (l *lexer) peek() rune {
	if l.done() {
		return -1
	}
	r, ok := stringsx.Rune(l.text, l.cursor)
	if !ok {
		return utf8.RuneError
	}
	return r
}

// pop consumes the next character.
//
// Returns -1 if l.done().
func (l *lexer) pop() rune {
	r := l.peek()
	if r != -1 {
		_, n := utf8.DecodeRuneInString(l.rest())
		l.cursor += n
	}
	return r
}

// takeWhile consumes the characters while they match the given function.
// Returns consumed characters.
func (l *lexer) takeWhile(f func(rune) bool) string {
	start := l.cursor
	for !l.done() {
		r := l.peek()
		if r == -1 || !f(r) {
			break
		}
		_ = l.pop()
	}
	return l.text[start:l.cursor]
}

// next lexes the next token.
func (l *lexer) next() (token, *Error) {
	l.takeWhile(unicode.IsSpace)

	start := l.cursor
	tok := func(kind tokenKind) (token, *Error) {
		return token{kind: kind, start: start, text: l.text[start:l.cursor]}, nil
	}

	r := l.peek()
	switch {
	case r == -1:
		return tok(tokenEOF)
	case r == '[':
		l.pop()
		return tok(tokenOpen)
	case r == ']':
		l.pop()
		return tok(tokenClose)
	case r == ',':
		l.pop()
		return tok(tokenComma)
	case r == '"':
		if err := l.lexString(); err != nil {
			return token{}, err
		}
		return tok(tokenString)
	case r == '-' || (r >= '0' && r <= '9'):
		if err := l.lexNumber(); err != nil {
			return token{}, err
		}
		return tok(tokenNumber)
	case r == unicodex.ContextMark || unicodex.IsNameStart(r):
		l.takeWhile(isIdentRune)
		if l.text[start:l.cursor] == "inf" {
			return tok(tokenNumber)
		}
		return tok(tokenIdent)
	default:
		if _, ok := stringsx.Rune(l.text, start); !ok {
			return token{}, newError(l.text, start, "invalid UTF-8 in input")
		}
		return token{}, newError(l.text, start, "unexpected character %q", r)
	}
}

func isIdentRune(r rune) bool {
	return r == unicodex.ContextMark || unicodex.IsNameContinue(r)
}

// lexString consumes a string literal, including its quotes.
func (l *lexer) lexString() *Error {
	start := l.cursor
	l.pop()
	for {
		switch l.pop() {
		case -1:
			return newError(l.text, start, "unterminated string literal")
		case '\\':
			// Skip the escaped character, so that \" does not end the string.
			if l.pop() == -1 {
				return newError(l.text, start, "unterminated string literal")
			}
		case '"':
			return nil
		}
	}
}

// lexNumber consumes a number, which is validated when it is parsed.
func (l *lexer) lexNumber() *Error {
	start := l.cursor
	if l.peek() == '-' {
		l.pop()
		if strings.HasPrefix(l.rest(), "inf") {
			l.takeWhile(isIdentRune)
			return nil
		}
	}

	digits := l.takeWhile(isDigit)
	if digits == "" {
		return newError(l.text, start, "expected digits after `-`")
	}
	if l.peek() == '.' {
		l.pop()
		if l.takeWhile(isDigit) == "" {
			return newError(l.text, start, "expected digits after decimal point")
		}
	}
	if r := l.peek(); r == 'e' || r == 'E' {
		l.pop()
		if r := l.peek(); r == '+' || r == '-' {
			l.pop()
		}
		if l.takeWhile(isDigit) == "" {
			return newError(l.text, start, "expected digits in exponent")
		}
	}
	return nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isReal returns whether the text of a number token denotes a real.
func isReal(text string) bool {
	return strings.ContainsAny(text, ".eEi")
}

// unquote decodes a string token.
func unquote(text string) (string, error) {
	return strconv.Unquote(text)
}
