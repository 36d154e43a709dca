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
	"slices"

	"github.com/wlexpr/wlexpr/symbol"
)

// Normal is a normal expression: a head applied to zero or more elements,
// written f[x, y, ...].
//
// If the head conceptually represents a function, the elements are the
// arguments it is being applied to.
type Normal struct {
	head  Expr
	elems []Expr
}

// Head is the set of types that may be used as the head of a normal
// expression. A [symbol.Symbol] is promoted to a symbol expression.
type Head interface {
	Expr | symbol.Symbol
}

// MakeNormal constructs a normal expression from a head and elements.
//
// MakeNormal takes ownership of head and of every element of elems, whose
// order is preserved.
func MakeNormal[H Head](head H, elems []Expr) Normal {
	return Normal{head: toExpr(head), elems: elems}
}

// toExpr converts a head to an Expr.
func toExpr[H Head](head H) Expr {
	switch h := any(head).(type) {
	case Expr:
		return h
	case symbol.Symbol:
		return NewSymbol(h)
	default:
		panic("unreachable")
	}
}

// Head returns a new holder of the head of this expression, which the caller
// must eventually [Expr.Release].
//
// Mutating the returned handle with [Expr.KindMut] never affects n.
func (n *Normal) Head() Expr {
	return n.head.Clone()
}

// Elements returns the elements of this expression.
//
// The returned slice and the handles in it are borrowed from n. They may be
// read, but must not be passed to [Expr.KindMut], [Expr.ToKind] or
// [Expr.Release], nor modified, unless n was obtained via [Expr.KindMut]; use
// [Normal.Part] for a handle that may be mutated.
func (n *Normal) Elements() []Expr {
	return n.elems
}

// Len returns the number of elements of this expression.
func (n *Normal) Len() int {
	return len(n.elems)
}

// Part returns the element at the given zero-based index. Index 0 is the first
// element, not the head.
//
// The returned handle is a new holder of the element, as with [Normal.Head].
// Returns false if the index is out of bounds.
func (n *Normal) Part(idx int) (Expr, bool) {
	if idx < 0 || idx >= len(n.elems) {
		return Expr{}, false
	}
	return n.elems[idx].Clone(), true
}

// HasHead returns whether the head of this expression is sym.
func (n *Normal) HasHead(sym symbol.Symbol) bool {
	return n.head.IsSymbol(sym)
}

// SetHead replaces the head of this expression, taking ownership of head and
// releasing the previous one.
func (n *Normal) SetHead(head Expr) {
	n.head.Release()
	n.head = head
}

// SetElement replaces the element at idx, taking ownership of e and releasing
// the previous element.
//
// Panics if idx is out of bounds.
func (n *Normal) SetElement(idx int, e Expr) {
	n.elems[idx].Release()
	n.elems[idx] = e
}

// Append appends elements to this expression, taking ownership of them.
func (n *Normal) Append(elems ...Expr) {
	n.elems = append(n.elems, elems...)
}

// IntoElements takes the elements out of this expression, transferring their
// ownership to the caller, and releases the head.
//
// n is left as System`Null[], so an [Expr] that still holds it remains
// valid.
func (n *Normal) IntoElements() []Expr {
	elems := n.elems
	n.head.Release()
	*n = Normal{head: Null()}
	return elems
}

// Clone returns a copy of this expression that shares its head and elements
// with n, incrementing their reference counts.
func (n *Normal) Clone() Normal {
	elems := make([]Expr, len(n.elems))
	for i, e := range n.elems {
		elems[i] = e.Clone()
	}
	return Normal{head: n.head.Clone(), elems: elems}
}

// Equal returns whether two normal expressions are structurally equal.
func (n *Normal) Equal(that *Normal) bool {
	return n.head.Equal(that.head) &&
		slices.EqualFunc(n.elems, that.elems, Expr.Equal)
}

// String displays this expression; see [Expr.String].
func (n *Normal) String() string {
	var p printer
	p.normal(n)
	return p.String()
}

// release drops the references owned by this expression.
func (n *Normal) release() {
	n.head.Release()
	for i := range n.elems {
		n.elems[i].Release()
	}
}
