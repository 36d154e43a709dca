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

package expr_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/wlexpr/wlexpr/expr"
	"github.com/wlexpr/wlexpr/internal/ext/unsafex"
	"github.com/wlexpr/wlexpr/symbol"
)

var (
	list = symbol.New("System`List")
	plus = symbol.New("System`Plus")
	f    = symbol.New("Global`f")
	g    = symbol.New("Global`g")
	x    = symbol.New("Global`x")
)

func ints(values ...int64) []expr.Expr {
	out := make([]expr.Expr, len(values))
	for i, v := range values {
		out[i] = expr.NewInteger(v)
	}
	return out
}

// assertExprEqual asserts that two expressions are structurally equal,
// printing a diff of their display forms if not.
func assertExprEqual(t *testing.T, want, got expr.Expr) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmp.Comparer(expr.Equal)); diff != "" {
		t.Errorf("expressions differ (-want +got):\n%s\nwant: %v\ngot:  %v", diff, want, got)
	}
}

func TestLayout(t *testing.T) {
	t.Parallel()

	assert.Equal(t, unsafex.LayoutOf[uintptr](), unsafex.LayoutOf[expr.Expr]())
	assert.Equal(t, unsafex.LayoutOf[*int](), unsafex.LayoutOf[expr.Expr]())
}

func TestDisplay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		expr expr.Expr
		want string
	}{
		{
			name: "list",
			expr: expr.NewNormal(list, ints(1, 2, 3)),
			want: "System`List[1, 2, 3]",
		},
		{
			name: "empty",
			expr: expr.NewNormal(list, nil),
			want: "System`List[]",
		},
		{
			name: "nested",
			expr: expr.NewNormal(plus, []expr.Expr{
				expr.NewSymbol(x),
				expr.NewNormal(list, ints(-1)),
			}),
			want: "System`Plus[Global`x, System`List[-1]]",
		},
		{
			name: "curried",
			expr: expr.NewNormal(expr.NewNormal(g, []expr.Expr{expr.NewSymbol(x)}), ints(5)),
			want: "Global`g[Global`x][5]",
		},
		{
			name: "string",
			expr: expr.NewNormal(f, []expr.Expr{
				expr.NewString("hello"),
				expr.NewString("say \"hi\"\n\t\\"),
				expr.NewString(""),
			}),
			want: `Global` + "`" + `f["hello", "say \"hi\"\n\t\\", ""]`,
		},
		{
			name: "reals",
			expr: expr.NewNormal(list, []expr.Expr{
				expr.NewReal(1.5),
				expr.NewReal(1),
				expr.NewReal(-0.0),
				expr.NewReal(1e20),
				expr.NewReal(0.1),
				expr.NewReal(math.Inf(1)),
				expr.NewReal(math.Inf(-1)),
			}),
			want: "System`List[1.5, 1.0, 0.0, 1e+20, 0.1, inf, -inf]",
		},
		{
			name: "null",
			expr: expr.Null(),
			want: "System`Null",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.expr.String())
		})
	}
}

func TestNumber(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "expr.RealNumber: got NaN", func() { expr.RealNumber(math.NaN()) })
	assert.PanicsWithValue(t, "expr.RealNumber: got NaN", func() { expr.NewReal(math.NaN()) })
	assert.PanicsWithValue(t, "expr.MustF64: got NaN", func() { expr.MustF64(math.NaN()) })
	_, ok := expr.NewF64(math.NaN())
	assert.False(t, ok)

	tests := []struct {
		n    expr.Number
		want string
	}{
		{expr.IntegerNumber(0), "0"},
		{expr.IntegerNumber(-42), "-42"},
		{expr.IntegerNumber(math.MaxInt64), "9223372036854775807"},
		{expr.RealNumber(1.5), "1.5"},
		{expr.RealNumber(2), "2.0"},
		{expr.RealNumber(math.Copysign(0, -1)), "-0.0"},
		{expr.RealNumber(123456), "123456.0"},
		{expr.RealNumber(1e6), "1e+06"},
		{expr.RealNumber(1e-7), "1e-07"},
		{expr.RealNumber(math.Pi), "3.141592653589793"},
		{expr.RealNumber(math.Inf(1)), "inf"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.n.String())
	}

	one := expr.IntegerNumber(1)
	oneReal := expr.RealNumber(1)
	assert.NotEqual(t, one, oneReal)
	assert.Equal(t, expr.RealNumber(0), expr.RealNumber(math.Copysign(0, -1)))
	assert.Equal(t, expr.RealNumber(0).Hash(), expr.RealNumber(math.Copysign(0, -1)).Hash())

	assert.Equal(t, -1, one.Compare(oneReal))
	assert.Equal(t, 1, oneReal.Compare(one))
	assert.Equal(t, -1, expr.IntegerNumber(5).Compare(expr.IntegerNumber(6)))
	assert.Equal(t, 1, expr.RealNumber(math.Inf(1)).Compare(expr.RealNumber(1e300)))
	assert.Equal(t, 0, expr.RealNumber(2.5).Compare(expr.RealNumber(2.5)))

	i, ok := one.Integer()
	assert.True(t, ok)
	assert.Equal(t, int64(1), i)
	_, ok = one.Real()
	assert.False(t, ok)
	r, ok := oneReal.Real()
	assert.True(t, ok)
	assert.InDelta(t, 1.0, r.Float64(), 0)

	assert.Equal(t, "expr.IntegerNumber(1)", fmt.Sprintf("%#v", one))
	assert.Equal(t, "expr.RealNumber(1.0)", fmt.Sprintf("%#v", oneReal))
}

func TestGenericConstructors(t *testing.T) {
	t.Parallel()

	assertExprEqual(t, expr.NewInteger(7), expr.Int(int8(7)))
	assertExprEqual(t, expr.NewInteger(255), expr.Int(uint8(255)))
	assertExprEqual(t, expr.NewInteger(math.MaxUint32), expr.Int(uint32(math.MaxUint32)))
	assertExprEqual(t, expr.NewInteger(-3), expr.Int(-3))
	assertExprEqual(t, expr.NewReal(0.5), expr.Float(float32(0.5)))
	assert.Panics(t, func() { expr.Float(float32(math.NaN())) })
}

func TestTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		expr expr.Expr
		tag  symbol.Symbol
	}{
		{name: "integer", expr: expr.NewInteger(5)},
		{name: "real", expr: expr.NewReal(5)},
		{name: "string", expr: expr.NewString("hello")},
		{name: "symbol", expr: expr.NewSymbol(x), tag: x},
		{name: "normal", expr: expr.NewNormal(f, ints(1, 2, 3)), tag: f},
		{
			name: "curried",
			expr: expr.NewNormal(expr.NewNormal(g, []expr.Expr{expr.NewSymbol(x)}), []expr.Expr{expr.NewSymbol(x)}),
			tag:  g,
		},
		{name: "number head", expr: expr.NewNormal(expr.NewInteger(1), ints(2))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tag, ok := tt.expr.Tag()
			assert.Equal(t, !tt.tag.IsZero(), ok)
			assert.Equal(t, tt.tag, tag)
		})
	}
}

func TestAccessors(t *testing.T) {
	t.Parallel()

	e := expr.NewNormal(f, []expr.Expr{expr.NewString("a"), expr.NewReal(2.5)})

	assert.Equal(t, expr.VariantNormal, e.Variant())
	head, ok := e.NormalHead()
	require.True(t, ok)
	assert.True(t, head.IsSymbol(f))
	assert.True(t, e.HasNormalHead(f))
	assert.False(t, e.HasNormalHead(g))
	assert.False(t, e.IsSymbol(f))

	part, ok := e.NormalPart(0)
	require.True(t, ok)
	s, ok := part.TryString()
	assert.True(t, ok)
	assert.Equal(t, "a", s)

	part, ok = e.NormalPart(1)
	require.True(t, ok)
	n, ok := part.TryNumber()
	assert.True(t, ok)
	assert.Equal(t, expr.RealNumber(2.5), n)

	_, ok = e.NormalPart(2)
	assert.False(t, ok)
	_, ok = e.NormalPart(-1)
	assert.False(t, ok)

	normal, ok := e.TryNormal()
	require.True(t, ok)
	assert.Equal(t, 2, normal.Len())
	assert.True(t, normal.HasHead(f))

	_, ok = e.TrySymbol()
	assert.False(t, ok)
	_, ok = e.TryNumber()
	assert.False(t, ok)

	leaf := expr.NewInteger(3)
	_, ok = leaf.NormalHead()
	assert.False(t, ok)
	_, ok = leaf.NormalPart(0)
	assert.False(t, ok)
	_, ok = leaf.TryNormal()
	assert.False(t, ok)
	assert.False(t, leaf.HasNormalHead(f))

	sym := expr.NewSymbol(x)
	got, ok := sym.TrySymbol()
	assert.True(t, ok)
	assert.Equal(t, x, got)
	assert.True(t, sym.IsSymbol(x))
	assert.False(t, sym.IsSymbol(f))
}

func TestEqualAndHash(t *testing.T) {
	t.Parallel()

	build := func() expr.Expr {
		return expr.NewNormal(list, []expr.Expr{
			expr.NewInteger(1),
			expr.NewReal(2.5),
			expr.NewString("three"),
			expr.NewNormal(f, []expr.Expr{expr.NewSymbol(x)}),
		})
	}

	a, b := build(), build()
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	different := []expr.Expr{
		expr.NewNormal(list, ints(1)),
		expr.NewNormal(g, nil),
		expr.NewNormal(list, []expr.Expr{expr.NewReal(1), expr.NewReal(2.5), expr.NewString("three")}),
		expr.NewInteger(1),
		expr.NewSymbol(list),
	}
	for _, d := range different {
		assert.False(t, a.Equal(d), "%v", d)
		assert.NotEqual(t, a.Fingerprint(), d.Fingerprint(), "%v", d)
	}

	// Integers and reals are never equal.
	assert.False(t, expr.NewInteger(1).Equal(expr.NewReal(1)))
	assert.NotEqual(t, expr.NewInteger(1).Fingerprint(), expr.NewReal(1).Fingerprint())

	// Signed zeroes are equal.
	pos, neg := expr.NewReal(0), expr.NewReal(math.Copysign(0, -1))
	assert.True(t, pos.Equal(neg))
	assert.Equal(t, pos.Hash(), neg.Hash())
	assert.Equal(t, pos.Fingerprint(), neg.Fingerprint())

	// Adjacent strings do not run together.
	assert.NotEqual(t,
		expr.NewNormal(f, []expr.Expr{expr.NewString("ab"), expr.NewString("")}).Fingerprint(),
		expr.NewNormal(f, []expr.Expr{expr.NewString("a"), expr.NewString("b")}).Fingerprint(),
	)

	// Equal expressions are interchangeable as map keys via their hash.
	seen := map[uint64][]expr.Expr{}
	seen[a.Hash()] = append(seen[a.Hash()], a)
	found := false
	for _, e := range seen[b.Hash()] {
		found = found || e.Equal(b)
	}
	assert.True(t, found)
}

func TestSymbols(t *testing.T) {
	t.Parallel()

	e := expr.NewNormal(plus, []expr.Expr{
		expr.NewSymbol(x),
		expr.NewNormal(f, []expr.Expr{expr.NewSymbol(x), expr.NewInteger(1)}),
		expr.NewNormal(expr.NewNormal(g, nil), []expr.Expr{expr.NewString("Global`y")}),
	})

	assert.Equal(t, []symbol.Symbol{f, g, x, plus}, e.Symbols())
	assert.Empty(t, expr.NewInteger(1).Symbols())
}

func TestGoString(t *testing.T) {
	t.Parallel()

	e := expr.NewNormal(f, []expr.Expr{expr.NewInteger(1), expr.NewString("s")})
	assert.Equal(t,
		`expr.NewNormal(expr.NewSymbol(symbol.New("Global`+"`"+`f")), []expr.Expr{expr.NewNumber(expr.IntegerNumber(1)), expr.NewString("s")})`,
		fmt.Sprintf("%#v", e),
	)
	assert.Equal(t, "expr.Expr{}", fmt.Sprintf("%#v", expr.Expr{}))
}

func TestZero(t *testing.T) {
	t.Parallel()

	var e expr.Expr
	assert.True(t, e.IsZero())
	assert.Equal(t, 0, e.RefCount())
	assert.True(t, e.Clone().IsZero())
	e.Release()
	assert.PanicsWithValue(t, "expr: use of zero or released Expr", func() { e.Kind() })
	assert.False(t, e.Equal(expr.NewInteger(0)))
	assert.True(t, e.Equal(expr.Expr{}))
}

func TestVariant(t *testing.T) {
	t.Parallel()

	var names []string
	for v := range expr.AllVariants() {
		names = append(names, v.String())
		byName, ok := expr.VariantByName(v.String())
		assert.True(t, ok)
		assert.Equal(t, v, byName)
	}
	assert.Equal(t, []string{"integer", "real", "string", "symbol", "normal"}, names)
	assert.Equal(t, "VariantSymbol", fmt.Sprintf("%#v", expr.VariantSymbol))
	assert.Equal(t, "Variant(42)", expr.Variant(42).String())
}

func TestConcurrentSharing(t *testing.T) {
	t.Parallel()

	shared := expr.NewNormal(list, ints(1, 2, 3))
	want := shared.String()

	var group errgroup.Group
	for range 16 {
		group.Go(func() error {
			for range 1000 {
				mine := shared.Clone()
				if got := mine.String(); got != want {
					return fmt.Errorf("got %q, want %q", got, want)
				}

				// Mutating a clone must never be observed by other holders.
				mine.KindMut().AsNormal().Append(expr.NewInteger(4))
				mine.Release()
			}
			return nil
		})
	}
	require.NoError(t, group.Wait())

	assert.Equal(t, 1, shared.RefCount())
	assert.Equal(t, want, shared.String())
}
