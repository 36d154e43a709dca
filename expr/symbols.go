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
	"github.com/tidwall/btree"

	"github.com/wlexpr/wlexpr/symbol"
)

// Symbols returns every symbol that occurs in this expression, including in
// heads, sorted by [symbol.Symbol.Compare] and without duplicates.
func (e Expr) Symbols() []symbol.Symbol {
	set := btree.NewBTreeGOptions(
		func(a, b symbol.Symbol) bool { return a.Compare(b) < 0 },
		btree.Options{NoLocks: true},
	)

	var walk func(Expr)
	walk = func(e Expr) {
		k := e.Kind()
		switch k.variant {
		case VariantSymbol:
			set.Set(k.symbol)
		case VariantNormal:
			walk(k.normal.head)
			for _, e := range k.normal.elems {
				walk(e)
			}
		}
	}
	walk(e)

	out := make([]symbol.Symbol, 0, set.Len())
	set.Scan(func(sym symbol.Symbol) bool {
		out = append(out, sym)
		return true
	})
	return out
}
