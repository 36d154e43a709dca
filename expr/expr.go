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
	"sync/atomic"

	"golang.org/x/exp/constraints"

	"github.com/wlexpr/wlexpr/internal/ext/unsafex"
	"github.com/wlexpr/wlexpr/symbol"
)

// Expr is a symbolic expression.
//
// An Expr is a pointer-sized handle to a reference-counted [Kind]; see the
// package documentation for the ownership rules. The zero value is not a
// valid expression; see [Expr.IsZero].
type Expr struct {
	box *box
}

// box is the shared allocation behind an Expr.
type box struct {
	refs atomic.Int64
	kind Kind
}

var null = symbol.New("System`Null")

func init() {
	// Embedders treat Expr as an opaque pointer-sized handle.
	unsafex.AssertPointerSized[Expr]()
}

// New constructs a new expression from a [Kind], taking ownership of it.
func New(kind Kind) Expr {
	b := &box{kind: kind}
	b.refs.Store(1)
	return Expr{b}
}

// NewNormal constructs a normal expression from a head and elements.
//
// NewNormal takes ownership of head and of every element of elems, whose
// order is preserved.
func NewNormal[H Head](head H, elems []Expr) Expr {
	return New(NormalKind(MakeNormal(head, elems)))
}

// FromNormal constructs an expression from a [Normal], taking ownership of
// it.
func FromNormal(n Normal) Expr {
	return New(NormalKind(n))
}

// NewSymbol constructs a symbol expression.
func NewSymbol(sym symbol.Symbol) Expr {
	return New(SymbolKind(sym))
}

// NewNumber constructs a numeric expression.
func NewNumber(n Number) Expr {
	return New(NumberKind(n))
}

// NewString constructs a string expression.
func NewString(s string) Expr {
	return New(StringKind(s))
}

// NewInteger constructs an integer expression.
func NewInteger(i int64) Expr {
	return New(IntegerKind(i))
}

// NewReal constructs a real expression.
//
// Panics if r is NaN.
func NewReal(r float64) Expr {
	return NewNumber(RealNumber(r))
}

// Int constructs an integer expression from any integer type that converts to
// int64 without loss.
func Int[I constraints.Signed | ~uint8 | ~uint16 | ~uint32](i I) Expr {
	return NewInteger(int64(i))
}

// Float constructs a real expression from any floating-point type.
//
// Panics if f is NaN.
func Float[F constraints.Float](f F) Expr {
	return NewReal(float64(f))
}

// Null returns the symbol expression System`Null.
func Null() Expr {
	return NewSymbol(null)
}

// IsZero returns whether this is the zero Expr, or has been released.
func (e Expr) IsZero() bool {
	return e.box == nil
}

// Clone returns a new holder of this expression, incrementing its reference
// count. This does not copy the expression.
//
// Cloning the zero Expr returns the zero Expr.
func (e Expr) Clone() Expr {
	if e.box != nil {
		e.box.refs.Add(1)
	}
	return e
}

// Release gives up this holder's reference to the expression, and sets e to
// the zero Expr. If this was the last reference, the references held by the
// expression's children are released too.
//
// Releasing the zero Expr does nothing.
func (e *Expr) Release() {
	b := e.box
	if b == nil {
		return
	}
	e.box = nil
	if b.refs.Add(-1) == 0 {
		b.kind.release()
	}
}

// RefCount returns the number of holders of this expression.
func (e Expr) RefCount() int {
	if e.box == nil {
		return 0
	}
	return int(e.box.refs.Load())
}

// Kind returns the [Kind] this expression holds.
//
// The returned value must not be modified; use [Expr.KindMut] for that.
func (e Expr) Kind() *Kind {
	return &e.must().kind
}

// KindMut returns mutable access to the [Kind] this expression holds.
//
// If this expression has more than one holder, its Kind is first cloned (see
// [Kind.Clone]) into a private allocation owned by e, so that the mutation is
// not observed by any other holder. Otherwise, no copy is made.
func (e *Expr) KindMut() *Kind {
	b := e.must()
	if b.refs.Load() == 1 {
		return &b.kind
	}

	private := New(b.kind.Clone())
	e.Release()
	*e = private
	return &private.box.kind
}

// ToKind consumes this holder and returns the [Kind] it held, setting e to the
// zero Expr.
//
// If e was the only holder, this does not copy anything; otherwise, the Kind
// is cloned as by [Kind.Clone]. This makes taking apart unshared trees cheap.
func (e *Expr) ToKind() Kind {
	b := e.must()
	if b.refs.Load() == 1 {
		e.box = nil
		b.refs.Store(0)
		kind := b.kind
		b.kind = Kind{}
		return kind
	}

	kind := b.kind.Clone()
	e.Release()
	return kind
}

// Variant returns which variant of [Kind] this expression holds.
func (e Expr) Variant() Variant {
	return e.must().kind.variant
}

// Tag returns the outermost symbol used in this expression.
//
//	Expression   | Tag
//	-------------|------
//	5            | none
//	"hello"      | none
//	foo          | foo
//	f[1, 2, 3]   | f
//	g[x][y]      | g
func (e Expr) Tag() (symbol.Symbol, bool) {
	for {
		k := e.Kind()
		switch k.variant {
		case VariantSymbol:
			return k.symbol, true
		case VariantNormal:
			e = k.normal.head
		default:
			return symbol.Symbol{}, false
		}
	}
}

// NormalHead returns the head of this expression, if it is a [Normal]
// expression.
//
// The returned handle is a new holder of the head, which the caller must
// eventually [Expr.Release].
func (e Expr) NormalHead() (Expr, bool) {
	n := e.Kind().AsNormal()
	if n == nil {
		return Expr{}, false
	}
	return n.Head(), true
}

// NormalPart returns the element at the given zero-based index, if this is a
// [Normal] expression. Index 0 is the first element, not the head. The
// returned handle is a new holder of the element, as with [Expr.NormalHead].
//
// Returns false if this is not a Normal expression or the index is out of
// bounds.
func (e Expr) NormalPart(idx int) (Expr, bool) {
	n := e.Kind().AsNormal()
	if n == nil {
		return Expr{}, false
	}
	return n.Part(idx)
}

// TryNormal returns the [Normal] this expression holds, if any.
//
// The returned value must not be modified.
func (e Expr) TryNormal() (*Normal, bool) {
	n := e.Kind().AsNormal()
	return n, n != nil
}

// TrySymbol returns the symbol this expression holds, if any.
func (e Expr) TrySymbol() (symbol.Symbol, bool) {
	return e.Kind().AsSymbol()
}

// TryNumber returns the number this expression holds, if any.
func (e Expr) TryNumber() (Number, bool) {
	return e.Kind().AsNumber()
}

// TryString returns the string this expression holds, if any.
func (e Expr) TryString() (string, bool) {
	return e.Kind().AsString()
}

// HasNormalHead returns whether this is a [Normal] expression whose head is
// the symbol sym.
func (e Expr) HasNormalHead(sym symbol.Symbol) bool {
	n := e.Kind().AsNormal()
	return n != nil && n.HasHead(sym)
}

// IsSymbol returns whether this expression is the symbol sym.
//
// This is equivalent to, but cheaper than, e.Equal(NewSymbol(sym)).
func (e Expr) IsSymbol(sym symbol.Symbol) bool {
	s, ok := e.TrySymbol()
	return ok && s == sym
}

// Equal returns whether two expressions are structurally equal.
//
// Two expressions built separately are equal if they have the same shape and
// contents; whether they share storage is irrelevant.
func (e Expr) Equal(that Expr) bool {
	if e.box == that.box {
		return true
	}
	if e.box == nil || that.box == nil {
		return false
	}
	return e.box.kind.Equal(&that.box.kind)
}

// Equal returns whether a and b are structurally equal; see [Expr.Equal].
func Equal(a, b Expr) bool {
	return a.Equal(b)
}

// String displays this expression.
//
// The result can be unambiguously parsed to reconstruct an equal expression:
// symbols always include their contexts, strings are quoted and escaped, and
// reals always contain a decimal point or exponent. Readers that bound
// nesting, such as package parser with its default options, need their limit
// raised to read back a tree nested deeper than that limit.
func (e Expr) String() string {
	if e.box == nil {
		return "<zero>"
	}
	return e.box.kind.String()
}

// GoString implements [fmt.GoStringer].
func (e Expr) GoString() string {
	if e.box == nil {
		return "expr.Expr{}"
	}
	var p printer
	p.goString(e)
	return p.String()
}

// must returns e's box, panicking if e is zero.
func (e Expr) must() *box {
	if e.box == nil {
		panic("expr: use of zero or released Expr")
	}
	return e.box
}
