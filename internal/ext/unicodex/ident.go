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

// Package unicodex contains extensions to Go's package unicode.
package unicodex

import "unicode"

// ContextMark is the rune that separates the components of a context path,
// and a context from the name of a symbol.
const ContextMark = '`'

// IsASCIIName checks if s is a name made up only of ASCII letters, digits and
// dollar signs, not starting with a digit.
func IsASCIIName(s string) bool {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c == '$':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return len(s) > 0
}

// IsNameStart returns whether r may begin a symbol name.
func IsNameStart(r rune) bool {
	// ASCII fast path.
	if r == '$' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') {
		return true
	}
	if r < 0x80 {
		return false
	}

	return unicode.IsLetter(r)
}

// IsNameContinue returns whether r may appear after the first rune of a
// symbol name.
func IsNameContinue(r rune) bool {
	if r >= '0' && r <= '9' {
		return true
	}
	if IsNameStart(r) {
		return true
	}
	return r >= 0x80 && unicode.Is(unicode.Nd, r)
}

// IsName returns whether s is a single, non-empty symbol name. A name never
// contains a [ContextMark].
func IsName(s string) bool {
	if IsASCIIName(s) {
		return true
	}

	// Invalid UTF-8 decodes as U+FFFD, which is not a letter, so it is
	// rejected below without special handling.
	for i, r := range s {
		if i == 0 {
			if !IsNameStart(r) {
				return false
			}
			continue
		}
		if !IsNameContinue(r) {
			return false
		}
	}
	return len(s) > 0
}
