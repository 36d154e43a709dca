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

package symbol

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/wlexpr/wlexpr/internal/ext/iterx"
	"github.com/wlexpr/wlexpr/internal/ext/stringsx"
	"github.com/wlexpr/wlexpr/internal/ext/unicodex"
)

// Ref is a borrowed string containing a valid absolute symbol.
//
// The zero value is not a valid symbol; see [Ref.IsZero].
type Ref struct {
	text string
}

// NameRef is a borrowed string containing a valid symbol name.
//
// The zero value is not a valid name; see [NameRef.IsZero].
type NameRef struct {
	text string
}

// ContextRef is a borrowed string containing a valid absolute context.
//
// The zero value is not a valid context; see [ContextRef.IsZero].
type ContextRef struct {
	text string
}

// RelativeContextRef is a borrowed string containing a valid relative context.
//
// The zero value is not a valid context; see [RelativeContextRef.IsZero].
type RelativeContextRef struct {
	text string
}

// IsZero returns whether this is the zero value.
func (r Ref) IsZero() bool { return r.text == "" }

// String returns the borrowed text.
func (r Ref) String() string { return r.text }

// GoString implements [fmt.GoStringer].
func (r Ref) GoString() string { return fmt.Sprintf("symbol.Ref(%q)", r.text) }

// Compare compares two symbols by their bytes.
func (r Ref) Compare(that Ref) int { return strings.Compare(r.text, that.text) }

// ToSymbol copies this borrowed string into an owned [Symbol].
func (r Ref) ToSymbol() Symbol {
	return uncheckedSymbol(strings.Clone(r.text))
}

// Context returns the context path part of this symbol.
//
// For example, the context of "A`B`c" is "A`B`".
func (r Ref) Context() ContextRef {
	context, _ := r.split("Context")
	return context
}

// Name returns the symbol name part of this symbol.
//
// For example, the name of "A`B`c" is "c".
func (r Ref) Name() NameRef {
	_, name := r.split("Name")
	return name
}

// split splits a symbol at its last context mark.
//
// All valid symbols contain at least one context mark, have at least one
// character after the last one, and the string up to and including that mark
// is a valid absolute context.
func (r Ref) split(what string) (ContextRef, NameRef) {
	context, name, ok := stringsx.CutLast(r.text, unicodex.ContextMark)
	if !ok {
		panic(fmt.Sprintf("symbol: Ref.%s: missing context mark in %q", what, r.text))
	}
	return ContextRef{r.text[:len(context)+1]}, NameRef{name}
}

// IsZero returns whether this is the zero value.
func (n NameRef) IsZero() bool { return n.text == "" }

// String returns the borrowed text.
func (n NameRef) String() string { return n.text }

// GoString implements [fmt.GoStringer].
func (n NameRef) GoString() string { return fmt.Sprintf("symbol.NameRef(%q)", n.text) }

// Compare compares two names by their bytes.
func (n NameRef) Compare(that NameRef) int { return strings.Compare(n.text, that.text) }

// ToName copies this borrowed string into an owned [Name].
func (n NameRef) ToName() Name {
	return uncheckedName(strings.Clone(n.text))
}

// IsZero returns whether this is the zero value.
func (c ContextRef) IsZero() bool { return c.text == "" }

// String returns the borrowed text.
func (c ContextRef) String() string { return c.text }

// GoString implements [fmt.GoStringer].
func (c ContextRef) GoString() string { return fmt.Sprintf("symbol.ContextRef(%q)", c.text) }

// Compare compares two contexts by their bytes.
func (c ContextRef) Compare(that ContextRef) int { return strings.Compare(c.text, that.text) }

// ToContext copies this borrowed string into an owned [Context].
func (c ContextRef) ToContext() Context {
	return uncheckedContext(strings.Clone(c.text))
}

// Components returns the components of this context.
//
// For example, the components of "MyPackage`Sub`" are "MyPackage" and "Sub".
func (c ContextRef) Components() []NameRef {
	return slices.Collect(c.ComponentSeq())
}

// ComponentSeq is like [ContextRef.Components], but returns an iterator.
func (c ContextRef) ComponentSeq() iter.Seq[NameRef] {
	return components(c.text, false, "ContextRef.Components")
}

// First returns the first component of this context.
func (c ContextRef) First() NameRef {
	first, _ := iterx.First(c.ComponentSeq())
	return first
}

// Last returns the last component of this context.
func (c ContextRef) Last() NameRef {
	last, _ := iterx.Last(c.ComponentSeq())
	return last
}

// Depth returns the number of components in this context.
func (c ContextRef) Depth() int {
	return strings.Count(c.text, mark)
}

// Parent returns the context enclosing this one.
//
// Returns false if this context has a single component.
func (c ContextRef) Parent() (ContextRef, bool) {
	parent, _, _ := stringsx.CutLast(strings.TrimSuffix(c.text, mark), unicodex.ContextMark)
	if len(parent) == len(c.text)-1 {
		return ContextRef{}, false
	}
	return ContextRef{c.text[:len(parent)+1]}, true
}

// IsZero returns whether this is the zero value.
func (c RelativeContextRef) IsZero() bool { return c.text == "" }

// String returns the borrowed text.
func (c RelativeContextRef) String() string { return c.text }

// GoString implements [fmt.GoStringer].
func (c RelativeContextRef) GoString() string {
	return fmt.Sprintf("symbol.RelativeContextRef(%q)", c.text)
}

// Compare compares two contexts by their bytes.
func (c RelativeContextRef) Compare(that RelativeContextRef) int {
	return strings.Compare(c.text, that.text)
}

// ToRelativeContext copies this borrowed string into an owned
// [RelativeContext].
func (c RelativeContextRef) ToRelativeContext() RelativeContext {
	return uncheckedRelativeContext(strings.Clone(c.text))
}

// Components returns the components of this context.
//
// For example, the components of "`Sub`Module`" are "Sub" and "Module".
func (c RelativeContextRef) Components() []NameRef {
	return slices.Collect(c.ComponentSeq())
}

// ComponentSeq is like [RelativeContextRef.Components], but returns an
// iterator.
func (c RelativeContextRef) ComponentSeq() iter.Seq[NameRef] {
	return components(c.text, true, "RelativeContextRef.Components")
}

// Depth returns the number of components in this context.
func (c RelativeContextRef) Depth() int {
	return strings.Count(c.text, mark) - 1
}
