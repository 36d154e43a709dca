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

// package stringsx contains extensions to Go's package strings.
package stringsx

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// Split is like [strings.Split], but returning an iterator instead of a slice.
func Split[Sep string | rune](s string, sep Sep) iter.Seq[string] {
	r := string(sep)
	return func(yield func(string) bool) {
		for {
			chunk, rest, found := strings.Cut(s, r)
			s = rest
			if !yield(chunk) || !found {
				return
			}
		}
	}
}

// CutLast is like [strings.Cut], but it searches for the last occurrence of
// sep rather than the first.
func CutLast[Sep string | rune](s string, sep Sep) (before, after string, found bool) {
	r := string(sep)
	if i := strings.LastIndex(s, r); i >= 0 {
		return s[:i], s[i+len(r):], true
	}
	return s, "", false
}

// Rune returns the rune at the given byte index.
//
// Returns false if the index is out of bounds or if the bytes at idx do not
// begin a valid UTF-8 sequence.
func Rune(s string, idx int) (rune, bool) {
	if idx < 0 || idx >= len(s) {
		return 0, false
	}
	r, n := utf8.DecodeRuneInString(s[idx:])
	if r == utf8.RuneError && n < 2 {
		return 0, false
	}
	return r, true
}
