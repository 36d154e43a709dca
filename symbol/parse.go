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

	"github.com/wlexpr/wlexpr/internal/ext/stringsx"
	"github.com/wlexpr/wlexpr/internal/ext/unicodex"
)

// mark is the context mark as a string, for use with package strings.
const mark = string(unicodex.ContextMark)

// TryRef attempts to parse text as an absolute symbol.
//
// An absolute symbol is a symbol with an explicit context path. "System`Plus"
// is an absolute symbol; "Plus" is a relative symbol (and a valid [NameRef]),
// as is "`Plus".
//
// The returned value aliases text.
func TryRef(text string) (Ref, bool) {
	context, name, ok := stringsx.CutLast(text, unicodex.ContextMark)
	if !ok || !unicodex.IsName(name) || !isPath(context) {
		return Ref{}, false
	}
	return Ref{text}, true
}

// TryNameRef attempts to parse text as a symbol name, that is, a symbol
// without any context marks.
//
// The returned value aliases text.
func TryNameRef(text string) (NameRef, bool) {
	if !unicodex.IsName(text) {
		return NameRef{}, false
	}
	return NameRef{text}, true
}

// TryContextRef attempts to parse text as an absolute context.
//
// The returned value aliases text.
func TryContextRef(text string) (ContextRef, bool) {
	path, ok := strings.CutSuffix(text, mark)
	if !ok || !isPath(path) {
		return ContextRef{}, false
	}
	return ContextRef{text}, true
}

// TryRelativeContextRef attempts to parse text as a relative context.
//
// The returned value aliases text.
func TryRelativeContextRef(text string) (RelativeContextRef, bool) {
	rest, ok := strings.CutPrefix(text, mark)
	if !ok {
		return RelativeContextRef{}, false
	}
	if _, ok := TryContextRef(rest); !ok {
		return RelativeContextRef{}, false
	}
	return RelativeContextRef{text}, true
}

// isPath returns whether path is one or more names separated by single
// context marks, with no leading or trailing mark.
func isPath(path string) bool {
	for {
		name, rest, more := strings.Cut(path, mark)
		if !unicodex.IsName(name) {
			return false
		}
		if !more {
			return true
		}
		path = rest
	}
}

// components returns an iterator over the components of a validated context
// or relative context.
//
// what is the name of the calling method, for use in panic messages; a
// component that fails to validate means the context was constructed in
// violation of its invariant.
func components(text string, relative bool, what string) iter.Seq[NameRef] {
	path := strings.TrimSuffix(text, mark)
	if relative {
		path = strings.TrimPrefix(path, mark)
	}

	return func(yield func(NameRef) bool) {
		if path == "" {
			panic(fmt.Sprintf("symbol: %s: invalid context %q", what, text))
		}

		for comp := range stringsx.Split(path, unicodex.ContextMark) {
			name, ok := TryNameRef(comp)
			if !ok {
				panic(fmt.Sprintf("symbol: %s: invalid context component %q in %q", what, comp, text))
			}
			if !yield(name) {
				return
			}
		}
	}
}
