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

	"github.com/wlexpr/wlexpr/symbol"
)

// Kind is the closed union of expression variants that an [Expr] points to.
//
// The zero value is the integer 0.
//
// A Kind that holds a [Normal] owns the references to the head and elements
// of that Normal; see [Kind.Clone].
type Kind struct {
	variant Variant
	bits    uint64 // VariantInteger, VariantReal.
	text    string // VariantString.
	symbol  symbol.Symbol
	normal  Normal
}

// IntegerKind returns a Kind holding an integer.
func IntegerKind(i int64) Kind {
	return Kind{variant: VariantInteger, bits: uint64(i)}
}

// RealKind returns a Kind holding a real.
func RealKind(f F64) Kind {
	return Kind{variant: VariantReal, bits: math.Float64bits(f.v)}
}

// NumberKind returns a Kind holding the given number.
func NumberKind(n Number) Kind {
	if f, ok := n.Real(); ok {
		return RealKind(f)
	}
	return IntegerKind(n.i)
}

// StringKind returns a Kind holding a string.
func StringKind(s string) Kind {
	return Kind{variant: VariantString, text: s}
}

// SymbolKind returns a Kind holding a symbol.
func SymbolKind(sym symbol.Symbol) Kind {
	return Kind{variant: VariantSymbol, symbol: sym}
}

// NormalKind returns a Kind holding a normal expression. It takes ownership of
// n's head and elements.
func NormalKind(n Normal) Kind {
	return Kind{variant: VariantNormal, normal: n}
}

// Variant returns which variant this Kind holds.
func (k *Kind) Variant() Variant {
	return k.variant
}

// AsInteger returns the integer this Kind holds, if it is one.
func (k *Kind) AsInteger() (int64, bool) {
	if k.variant != VariantInteger {
		return 0, false
	}
	return int64(k.bits), true
}

// AsReal returns the real this Kind holds, if it is one.
func (k *Kind) AsReal() (F64, bool) {
	if k.variant != VariantReal {
		return F64{}, false
	}
	return F64{math.Float64frombits(k.bits)}, true
}

// AsNumber returns the number this Kind holds, if it is one.
func (k *Kind) AsNumber() (Number, bool) {
	switch k.variant {
	case VariantInteger:
		return IntegerNumber(int64(k.bits)), true
	case VariantReal:
		f, _ := k.AsReal()
		return F64Number(f), true
	default:
		return Number{}, false
	}
}

// AsString returns the string this Kind holds, if it is one.
func (k *Kind) AsString() (string, bool) {
	if k.variant != VariantString {
		return "", false
	}
	return k.text, true
}

// AsSymbol returns the symbol this Kind holds, if it is one.
func (k *Kind) AsSymbol() (symbol.Symbol, bool) {
	if k.variant != VariantSymbol {
		return symbol.Symbol{}, false
	}
	return k.symbol, true
}

// AsNormal returns the normal expression this Kind holds, or nil if it does
// not hold one.
//
// The returned pointer aliases k. If k was obtained from [Expr.KindMut], the
// Normal may be modified in place.
func (k *Kind) AsNormal() *Normal {
	if k.variant != VariantNormal {
		return nil
	}
	return &k.normal
}

// Clone returns a copy of this Kind.
//
// The copy is one level deep: the head and elements of a Normal are
// [Expr.Clone]d, not copied, so the new Kind shares them with k.
func (k *Kind) Clone() Kind {
	c := *k
	if k.variant == VariantNormal {
		c.normal = k.normal.Clone()
	}
	return c
}

// Equal returns whether two Kinds are structurally equal.
func (k *Kind) Equal(that *Kind) bool {
	if k == that {
		return true
	}
	if k.variant != that.variant {
		return false
	}

	switch k.variant {
	case VariantInteger:
		return k.bits == that.bits
	case VariantReal:
		// Compare as floats, so that -0.0 == +0.0.
		return math.Float64frombits(k.bits) == math.Float64frombits(that.bits)
	case VariantString:
		return k.text == that.text
	case VariantSymbol:
		return k.symbol == that.symbol
	case VariantNormal:
		return k.normal.Equal(&that.normal)
	default:
		return false
	}
}

// String displays this Kind; see [Expr.String].
func (k *Kind) String() string {
	var p printer
	p.kind(k)
	return p.String()
}

// release drops the references owned by this Kind.
func (k *Kind) release() {
	if k.variant == VariantNormal {
		k.normal.release()
	}
}
