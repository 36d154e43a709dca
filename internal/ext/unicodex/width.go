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

package unicodex

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/wlexpr/wlexpr/internal/ext/stringsx"
)

// TabstopWidth is the size we render all tabstops as.
const TabstopWidth int = 4

// Column returns the zero-based display column at which the byte offset
// offset of text falls, and the one-based line number containing it.
//
// Columns are measured in terminal cells, so that wide and combining
// characters line up with a caret printed underneath them.
func Column(text string, offset int) (line, column int) {
	offset = min(max(offset, 0), len(text))
	prefix := text[:offset]

	line = strings.Count(prefix, "\n") + 1
	if nl := strings.LastIndexByte(prefix, '\n'); nl >= 0 {
		prefix = prefix[nl+1:]
	}

	first := true
	for chunk := range stringsx.Split(prefix, '\t') {
		if !first {
			column += TabstopWidth - (column % TabstopWidth)
		}
		first = false
		column += uniseg.StringWidth(chunk)
	}
	return line, column
}
