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
	"strings"
)

// Symbol is an absolute symbol, such as "System`List".
//
// Values of this type are comparable, and two symbols are == exactly when
// their text is identical. The zero value is not a valid symbol; see
// [Symbol.IsZero].
type Symbol struct {
	text string
}

// Name is the identifier portion of a symbol. It contains no context marks.
//
// In the symbol "Global`foo", the Name is "foo".
type Name struct {
	text string
}

// Context is an absolute context.
//
// Examples: "System`", "Global`", "MyPackage`Utils`".
type Context struct {
	text string
}

// RelativeContext is a context beginning with a context mark, such as
// "`Utils`".
type RelativeContext struct {
	text string
}

var (
	system = uncheckedContext("System`")
	global = uncheckedContext("Global`")
)

// System returns the "System`" context, which contains the engine's built-in
// symbols.
func System() Context { return system }

// Global returns the "Global`" context, which is the default context for
// user-defined symbols.
func Global() Context { return global }

// TryNew attempts to parse text as an absolute symbol.
//
// See [TryRef].
func TryNew(text string) (Symbol, bool) {
	ref, ok := TryRef(text)
	if !ok {
		return Symbol{}, false
	}
	return ref.ToSymbol(), true
}

// New constructs a symbol from text.
//
// This function is intended for convenient construction of symbols from
// string literals, such as
//
//	sym := symbol.New("MyPackage`Foo")
//
// Panics if text is not a valid symbol. If text is not a string literal,
// prefer [TryNew] and handle the failure.
func New(text string) Symbol {
	v, ok := TryNew(text)
	if !ok {
		panic(notParseable(text, "symbol"))
	}
	return v
}

// TryNewName attempts to parse text as a symbol name.
func TryNewName(text string) (Name, bool) {
	ref, ok := TryNameRef(text)
	if !ok {
		return Name{}, false
	}
	return ref.ToName(), true
}

// NewName is like [New], but for a [Name].
func NewName(text string) Name {
	v, ok := TryNewName(text)
	if !ok {
		panic(notParseable(text, "symbol name"))
	}
	return v
}

// TryNewContext attempts to parse text as an absolute context.
func TryNewContext(text string) (Context, bool) {
	ref, ok := TryContextRef(text)
	if !ok {
		return Context{}, false
	}
	return ref.ToContext(), true
}

// NewContext is like [New], but for a [Context].
//
//	ctx := symbol.NewContext("MyPackage`")
func NewContext(text string) Context {
	v, ok := TryNewContext(text)
	if !ok {
		panic(notParseable(text, "context"))
	}
	return v
}

// TryNewRelativeContext attempts to parse text as a relative context.
func TryNewRelativeContext(text string) (RelativeContext, bool) {
	ref, ok := TryRelativeContextRef(text)
	if !ok {
		return RelativeContext{}, false
	}
	return ref.ToRelativeContext(), true
}

// NewRelativeContext is like [New], but for a [RelativeContext].
func NewRelativeContext(text string) RelativeContext {
	v, ok := TryNewRelativeContext(text)
	if !ok {
		panic(notParseable(text, "relative context"))
	}
	return v
}

// ContextFromName returns the context "name`".
func ContextFromName(name Name) Context {
	if name.IsZero() {
		panic("symbol: ContextFromName: empty name")
	}
	return uncheckedContext(name.text + mark)
}

// notParseable returns the panic message for a failed New function.
func notParseable(text, what string) string {
	return fmt.Sprintf("symbol: string is not parseable as a %s: %q", what, text)
}

// IsZero returns whether this is the zero value.
func (s Symbol) IsZero() bool { return s.text == "" }

// String returns the text of this symbol, including its context.
func (s Symbol) String() string { return s.text }

// GoString implements [fmt.GoStringer].
func (s Symbol) GoString() string { return fmt.Sprintf("symbol.New(%q)", s.text) }

// Compare compares two symbols by their bytes.
func (s Symbol) Compare(that Symbol) int { return strings.Compare(s.text, that.text) }

// Ref returns a borrowed view of this symbol.
func (s Symbol) Ref() Ref { return Ref(s) }

// Context returns the context path part of this symbol.
func (s Symbol) Context() ContextRef { return s.Ref().Context() }

// Name returns the symbol name part of this symbol.
func (s Symbol) Name() NameRef { return s.Ref().Name() }

// IsZero returns whether this is the zero value.
func (n Name) IsZero() bool { return n.text == "" }

// String returns the text of this name.
func (n Name) String() string { return n.text }

// GoString implements [fmt.GoStringer].
func (n Name) GoString() string { return fmt.Sprintf("symbol.NewName(%q)", n.text) }

// Compare compares two names by their bytes.
func (n Name) Compare(that Name) int { return strings.Compare(n.text, that.text) }

// Ref returns a borrowed view of this name.
func (n Name) Ref() NameRef { return NameRef(n) }

// IsZero returns whether this is the zero value.
func (c Context) IsZero() bool { return c.text == "" }

// String returns the text of this context, including its trailing context
// mark.
func (c Context) String() string { return c.text }

// GoString implements [fmt.GoStringer].
func (c Context) GoString() string { return fmt.Sprintf("symbol.NewContext(%q)", c.text) }

// Compare compares two contexts by their bytes.
func (c Context) Compare(that Context) int { return strings.Compare(c.text, that.text) }

// Ref returns a borrowed view of this context.
func (c Context) Ref() ContextRef { return ContextRef(c) }

// Components returns the components of this context.
//
// For example, the components of "MyPackage`Sub`Module`" are "MyPackage",
// "Sub" and "Module".
func (c Context) Components() []NameRef { return c.Ref().Components() }

// ComponentSeq is like [Context.Components], but returns an iterator.
func (c Context) ComponentSeq() iter.Seq[NameRef] {
	return components(c.text, false, "Context.Components")
}

// Join returns a new context with name appended as its last component.
//
//	ctx := symbol.NewContext("MyContext`")
//	ctx.Join(symbol.NewName("Private").Ref()) // MyContext`Private`
//
// Panics if c or name is the zero value.
func (c Context) Join(name NameRef) Context {
	if c.IsZero() {
		panic(fmt.Sprintf("symbol: Context.Join: zero context joined with %q", name.text))
	}
	text := c.text + name.text + mark
	if _, ok := TryContextRef(text); !ok {
		panic(fmt.Sprintf("symbol: Context.Join: invalid context %q", text))
	}
	return uncheckedContext(text)
}

// Symbol returns the symbol with the given name in this context.
func (c Context) Symbol(name NameRef) Symbol {
	if c.IsZero() || name.IsZero() {
		panic(fmt.Sprintf("symbol: Context.Symbol: invalid symbol %q", c.text+name.text))
	}
	return uncheckedSymbol(c.text + name.text)
}

// IsZero returns whether this is the zero value.
func (c RelativeContext) IsZero() bool { return c.text == "" }

// String returns the text of this context, including its leading and trailing
// context marks.
func (c RelativeContext) String() string { return c.text }

// GoString implements [fmt.GoStringer].
func (c RelativeContext) GoString() string {
	return fmt.Sprintf("symbol.NewRelativeContext(%q)", c.text)
}

// Compare compares two contexts by their bytes.
func (c RelativeContext) Compare(that RelativeContext) int {
	return strings.Compare(c.text, that.text)
}

// Ref returns a borrowed view of this context.
func (c RelativeContext) Ref() RelativeContextRef { return RelativeContextRef(c) }

// Components returns the components of this context.
//
// For example, the components of "`Sub`Module`" are "Sub" and "Module".
func (c RelativeContext) Components() []NameRef { return c.Ref().Components() }

// ComponentSeq is like [RelativeContext.Components], but returns an iterator.
func (c RelativeContext) ComponentSeq() iter.Seq[NameRef] {
	return components(c.text, true, "RelativeContext.Components")
}

// Resolve returns the absolute context obtained by appending the components of
// this context to base.
//
// This is a purely textual operation: "`Sub`".Resolve("Pkg`") is "Pkg`Sub`".
func (c RelativeContext) Resolve(base Context) Context {
	if c.IsZero() || base.IsZero() {
		panic(fmt.Sprintf("symbol: RelativeContext.Resolve: invalid context %q", base.text+c.text))
	}
	return uncheckedContext(base.text + c.text[len(mark):])
}

// The unchecked constructors wrap text without validating it.
//
// Callers must have independently established that text is valid, typically
// because it was produced by splitting or concatenating values that were
// already validated. They are deliberately not exported.

func uncheckedSymbol(text string) Symbol                   { return Symbol{text} }
func uncheckedName(text string) Name                       { return Name{text} }
func uncheckedContext(text string) Context                 { return Context{text} }
func uncheckedRelativeContext(text string) RelativeContext { return RelativeContext{text} }
