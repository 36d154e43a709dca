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
	"errors"
	"math"
	"strconv"

	"github.com/wlexpr/wlexpr/expr"
	"github.com/wlexpr/wlexpr/symbol"
)

// parser is a recursive descent parser over the tokens of a lexer.
type parser struct {
	lexer
	maxDepth int

	tok   token // The lookahead token.
	depth int
}

// advance lexes the next lookahead token.
func (p *parser) advance() *Error {
	tok, err := p.lexer.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) unexpected(want string) *Error {
	got := p.tok.kind.String()
	if p.tok.kind != tokenEOF {
		got = "`" + p.tok.text + "`"
	}
	return newError(p.text, p.tok.start, "unexpected %s, expected %s", got, want)
}

// parse parses the whole input as one expression.
func (p *parser) parse() (expr.Expr, error) {
	if err := p.advance(); err != nil {
		return expr.Expr{}, err
	}

	e, err := p.expr()
	if err != nil {
		return expr.Expr{}, err
	}
	if p.tok.kind != tokenEOF {
		e.Release()
		return expr.Expr{}, p.unexpected("end of input")
	}
	return e, nil
}

// expr parses an atom followed by any number of bracketed element lists.
func (p *parser) expr() (expr.Expr, *Error) {
	head, err := p.atom()
	if err != nil {
		return expr.Expr{}, err
	}

	for p.tok.kind == tokenOpen {
		open := p.tok
		if p.depth++; p.depth > p.maxDepth {
			head.Release()
			return expr.Expr{}, newError(p.text, open.start, "expressions nested more than %d deep", p.maxDepth)
		}
		if err := p.advance(); err != nil {
			head.Release()
			return expr.Expr{}, err
		}

		elems, err := p.elements()
		if err != nil {
			head.Release()
			return expr.Expr{}, err
		}
		p.depth--

		head = expr.NewNormal(head, elems)
	}
	return head, nil
}

// elements parses a comma-separated list of expressions up to and including
// the closing bracket.
func (p *parser) elements() ([]expr.Expr, *Error) {
	var elems []expr.Expr
	fail := func(err *Error) ([]expr.Expr, *Error) {
		for i := range elems {
			elems[i].Release()
		}
		return nil, err
	}

	if p.tok.kind == tokenClose {
		return elems, p.advance()
	}

	for {
		e, err := p.expr()
		if err != nil {
			return fail(err)
		}
		elems = append(elems, e)

		switch p.tok.kind {
		case tokenComma:
			if err := p.advance(); err != nil {
				return fail(err)
			}
		case tokenClose:
			if err := p.advance(); err != nil {
				return fail(err)
			}
			return elems, nil
		default:
			return fail(p.unexpected("`,` or `]`"))
		}
	}
}

// atom parses a single leaf expression.
func (p *parser) atom() (expr.Expr, *Error) {
	tok := p.tok

	var e expr.Expr
	switch tok.kind {
	case tokenNumber:
		n, err := p.number(tok)
		if err != nil {
			return expr.Expr{}, err
		}
		e = expr.NewNumber(n)

	case tokenString:
		s, err := unquote(tok.text)
		if err != nil {
			return expr.Expr{}, newError(p.text, tok.start, "invalid escape in string literal")
		}
		e = expr.NewString(s)

	case tokenIdent:
		sym, err := p.symbol(tok)
		if err != nil {
			return expr.Expr{}, err
		}
		e = expr.NewSymbol(sym)

	default:
		return expr.Expr{}, p.unexpected("expression")
	}

	if err := p.advance(); err != nil {
		e.Release()
		return expr.Expr{}, err
	}
	return e, nil
}

// number converts a number token into a value.
func (p *parser) number(tok token) (expr.Number, *Error) {
	switch tok.text {
	case "inf":
		return expr.RealNumber(math.Inf(1)), nil
	case "-inf":
		return expr.RealNumber(math.Inf(-1)), nil
	}

	if !isReal(tok.text) {
		i, err := strconv.ParseInt(tok.text, 10, 64)
		if errors.Is(err, strconv.ErrRange) {
			return expr.Number{}, newError(p.text, tok.start, "integer literal out of range: %s", tok.text)
		} else if err != nil {
			return expr.Number{}, newError(p.text, tok.start, "invalid integer literal: %s", tok.text)
		}
		return expr.IntegerNumber(i), nil
	}

	f, err := strconv.ParseFloat(tok.text, 64)
	if errors.Is(err, strconv.ErrRange) {
		return expr.Number{}, newError(p.text, tok.start, "real literal out of range: %s", tok.text)
	} else if err != nil {
		return expr.Number{}, newError(p.text, tok.start, "invalid real literal: %s", tok.text)
	}
	return expr.RealNumber(f), nil
}

// symbol validates an identifier token as an absolute symbol.
func (p *parser) symbol(tok token) (symbol.Symbol, *Error) {
	if sym, ok := symbol.TryNew(tok.text); ok {
		return sym, nil
	}

	if _, ok := symbol.TryNameRef(tok.text); ok {
		return symbol.Symbol{}, newError(p.text, tok.start, "symbol `%s` has no context", tok.text)
	}
	if _, ok := symbol.TryContextRef(tok.text); ok {
		return symbol.Symbol{}, newError(p.text, tok.start, "expected symbol, found context `%s`", tok.text)
	}
	if _, ok := symbol.TryRelativeContextRef(tok.text); ok {
		return symbol.Symbol{}, newError(p.text, tok.start, "expected symbol, found context `%s`", tok.text)
	}
	if len(tok.text) > 1 && tok.text[0] == '`' {
		if _, ok := symbol.TryRef(tok.text[1:]); ok {
			return symbol.Symbol{}, newError(p.text, tok.start, "relative symbol `%s` has no absolute context", tok.text)
		}
	}
	return symbol.Symbol{}, newError(p.text, tok.start, "invalid symbol `%s`", tok.text)
}
