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

package expr

import (
	"math"
	"strconv"
	"strings"
)

// printer renders expressions into their display form.
type printer struct {
	strings.Builder
}

func (p *printer) expr(e Expr) {
	if e.box == nil {
		p.WriteString("<zero>")
		return
	}
	p.kind(&e.box.kind)
}

func (p *printer) kind(k *Kind) {
	switch k.variant {
	case VariantInteger:
		p.WriteString(strconv.FormatInt(int64(k.bits), 10))
	case VariantReal:
		p.WriteString(F64{math.Float64frombits(k.bits)}.String())
	case VariantString:
		// Quoting escapes quotes, backslashes, control characters, and invalid
		// UTF-8, so that the exact bytes of the string can be read back.
		p.WriteString(strconv.Quote(k.text))
	case VariantSymbol:
		p.WriteString(k.symbol.String())
	case VariantNormal:
		p.normal(&k.normal)
	}
}

func (p *printer) normal(n *Normal) {
	p.expr(n.head)
	p.WriteByte('[')
	for i, e := range n.elems {
		if i > 0 {
			p.WriteString(", ")
		}
		p.expr(e)
	}
	p.WriteByte(']')
}

// goString renders e as Go code that would construct it.
func (p *printer) goString(e Expr) {
	if e.box == nil {
		p.WriteString("expr.Expr{}")
		return
	}

	k := &e.box.kind
	switch k.variant {
	case VariantInteger, VariantReal:
		n, _ := k.AsNumber()
		p.WriteString("expr.NewNumber(")
		p.WriteString(n.GoString())
		p.WriteByte(')')
	case VariantString:
		p.WriteString("expr.NewString(")
		p.WriteString(strconv.Quote(k.text))
		p.WriteByte(')')
	case VariantSymbol:
		p.WriteString("expr.NewSymbol(")
		p.WriteString(k.symbol.GoString())
		p.WriteByte(')')
	case VariantNormal:
		p.WriteString("expr.NewNormal(")
		p.goString(k.normal.head)
		p.WriteString(", []expr.Expr{")
		for i, e := range k.normal.elems {
			if i > 0 {
				p.WriteString(", ")
			}
			p.goString(e)
		}
		p.WriteString("})")
	}
}
