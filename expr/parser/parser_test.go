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

package parser_test

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/wlexpr/wlexpr/expr"
	"github.com/wlexpr/wlexpr/expr/parser"
	"github.com/wlexpr/wlexpr/internal/golden"
	"github.com/wlexpr/wlexpr/symbol"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	list := symbol.New("System`List")
	f := symbol.New("Global`f")

	tests := []expr.Expr{
		expr.NewInteger(0),
		expr.NewInteger(-17),
		expr.NewInteger(math.MaxInt64),
		expr.NewInteger(math.MinInt64),
		expr.NewReal(1.5),
		expr.NewReal(-2),
		expr.NewReal(math.Copysign(0, -1)),
		expr.NewReal(1e300),
		expr.NewReal(5e-324),
		expr.NewReal(math.MaxFloat64),
		expr.NewReal(math.Pi),
		expr.NewReal(math.Inf(1)),
		expr.NewReal(math.Inf(-1)),
		expr.NewString(""),
		expr.NewString("hello, world"),
		expr.NewString("quotes \" and \\ backslashes"),
		expr.NewString("\x00\x01\n\r\t "),
		expr.NewString("invalid \xff utf-8"),
		expr.NewString("unicode: αβγ 🎉"),
		expr.NewString("f[x]"),
		expr.NewSymbol(list),
		expr.NewSymbol(symbol.New("A`B`C`$d1")),
		expr.NewSymbol(symbol.New("Géométrie`αβγ")),
		expr.Null(),
		expr.NewNormal(list, nil),
		expr.NewNormal(list, []expr.Expr{expr.NewInteger(1), expr.NewInteger(2), expr.NewInteger(3)}),
		expr.NewNormal(f, []expr.Expr{
			expr.NewNormal(list, []expr.Expr{expr.NewString("a,b]"), expr.NewReal(0.5)}),
			expr.NewSymbol(symbol.New("Global`x")),
		}),
		expr.NewNormal(expr.NewNormal(f, []expr.Expr{expr.NewInteger(1)}), []expr.Expr{expr.NewInteger(2)}),
		expr.NewNormal(expr.NewInteger(-1), []expr.Expr{expr.NewString("s")}),
		expr.NewNormal(expr.NewString("head"), nil),
		expr.NewNormal(expr.NewReal(math.Inf(-1)), []expr.Expr{expr.NewReal(math.Inf(1))}),
	}

	for _, want := range tests {
		t.Run(want.String(), func(t *testing.T) {
			t.Parallel()

			got, err := parser.Parse(want.String())
			require.NoError(t, err)
			if diff := cmp.Diff(want, got, cmp.Comparer(expr.Equal)); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, want.Hash(), got.Hash())
			assert.Equal(t, want.Variant(), got.Variant())

			// Display is canonical, so a second trip is exact.
			assert.Equal(t, want.String(), got.String())
		})
	}
}

func TestRealBits(t *testing.T) {
	t.Parallel()

	for _, f := range []float64{0.1, 1.0 / 3, 2.5e-310, 123456789.125, -7.000000000000001} {
		e, err := parser.Parse(expr.NewReal(f).String())
		require.NoError(t, err)

		n, ok := e.TryNumber()
		require.True(t, ok)
		r, ok := n.Real()
		require.True(t, ok)
		assert.Equal(t, math.Float64bits(f), math.Float64bits(r.Float64()))
	}
}

func TestErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want string
	}{
		{text: "", want: "1:1: unexpected end of input, expected expression"},
		{text: "List", want: "1:1: symbol `List` has no context"},
		{text: "`List", want: "1:1: invalid symbol ``List`"},
		{text: "`Sub`List", want: "1:1: relative symbol ``Sub`List` has no absolute context"},
		{text: "System`", want: "1:1: expected symbol, found context `System``"},
		{text: "System`List[1, 2", want: "1:17: unexpected end of input, expected `,` or `]`"},
		{text: "System`List[1 2]", want: "1:15: unexpected `2`, expected `,` or `]`"},
		{text: "System`List[,]", want: "1:13: unexpected `,`, expected expression"},
		{text: "System`List]", want: "1:12: unexpected `]`, expected end of input"},
		{text: "1 2", want: "1:3: unexpected `2`, expected end of input"},
		{text: `"abc`, want: "1:1: unterminated string literal"},
		{text: `"a\qb"`, want: "1:1: invalid escape in string literal"},
		{text: "99999999999999999999", want: "1:1: integer literal out of range: 99999999999999999999"},
		{text: "1e999", want: "1:1: real literal out of range: 1e999"},
		{text: "1.", want: "1:1: expected digits after decimal point"},
		{text: "1e", want: "1:1: expected digits in exponent"},
		{text: "-", want: "1:1: expected digits after `-`"},
		{text: "-info", want: "1:1: invalid real literal: -info"},
		{text: "System`List[\n  1,\n  @]", want: "3:3: unexpected character '@'"},
		{text: "f\t[x]@", want: "1:1: symbol `f` has no context"},
		{text: "\"日本\" @", want: "1:8: unexpected character '@'"},
		{text: "\xff", want: "1:1: invalid UTF-8 in input"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			e, err := parser.Parse(tt.text)
			require.Error(t, err)
			assert.True(t, e.IsZero())
			assert.Equal(t, tt.want, err.Error())

			var perr *parser.Error
			require.True(t, errors.As(err, &perr))
			assert.True(t, strings.HasSuffix(tt.want, ": "+perr.Message))
			assert.Equal(t, tt.want, fmt.Sprintf("%d:%d: %s", perr.Line, perr.Column+1, perr.Message))
		})
	}
}

func TestMaxDepth(t *testing.T) {
	t.Parallel()

	nested := func(depth int) string {
		return strings.Repeat("Global`f[", depth) + strings.Repeat("]", depth)
	}

	_, err := parser.Options{MaxDepth: 3}.Parse(nested(3))
	require.NoError(t, err)

	_, err = parser.Options{MaxDepth: 3}.Parse(nested(4))
	require.Error(t, err)
	assert.Equal(t, "1:36: expressions nested more than 3 deep", err.Error())

	// Chained heads do not nest.
	_, err = parser.Options{MaxDepth: 1}.Parse("Global`f[1][2][3]")
	require.NoError(t, err)

	_, err = parser.Parse(nested(parser.DefaultMaxDepth + 1))
	require.Error(t, err)
}

func TestDeepRoundTrip(t *testing.T) {
	t.Parallel()

	const depth = parser.DefaultMaxDepth + 100
	e := expr.NewInteger(0)
	for range depth {
		e = expr.NewNormal(symbol.New("Global`f"), []expr.Expr{e})
	}
	text := e.String()

	_, err := parser.Parse(text)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expressions nested more than 1024 deep")

	got, err := parser.Options{MaxDepth: depth}.Parse(text)
	require.NoError(t, err)
	assert.True(t, e.Equal(got))
}

func TestMustParse(t *testing.T) {
	t.Parallel()

	e := parser.MustParse("System`List[1, 2, 3]")
	assert.Equal(t, "System`List[1, 2, 3]", e.String())
	assert.True(t, e.HasNormalHead(symbol.New("System`List")))

	assert.PanicsWithValue(t,
		"parser.MustParse(\"List[]\"): 1:1: symbol `List` has no context",
		func() { parser.MustParse("List[]") },
	)
}

// TestCases runs the cases in testdata/cases.yaml.
func TestCases(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile("testdata/cases.yaml")
	require.NoError(t, err)

	var cases []struct {
		Name    string `yaml:"name"`
		Input   string `yaml:"input"`
		Display string `yaml:"display"`
		Error   string `yaml:"error"`
		Tag     string `yaml:"tag"`
		Len     *int   `yaml:"len"`
	}
	require.NoError(t, yaml.Unmarshal(data, &cases))
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			e, err := parser.Parse(tc.Input)
			if tc.Error != "" {
				require.Error(t, err)
				assert.Equal(t, tc.Error, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Display, e.String())

			tag, ok := e.Tag()
			assert.Equal(t, tc.Tag != "", ok)
			if ok {
				assert.Equal(t, tc.Tag, tag.String())
			}

			if tc.Len != nil {
				n, ok := e.TryNormal()
				require.True(t, ok)
				assert.Equal(t, *tc.Len, n.Len())
			}
		})
	}
}

// TestGolden parses each line of the files in testdata/golden, and compares
// the display of each result, and any errors, to the expected outputs.
func TestGolden(t *testing.T) {
	t.Parallel()

	corpus := golden.Corpus{
		Root:       "testdata/golden",
		Refresh:    "WLEXPR_REFRESH",
		Extensions: []string{"wl"},
		Outputs: []golden.Output{
			{Extension: "display.txt"},
			{Extension: "stderr.txt"},
		},
	}

	corpus.Run(t, func(t *testing.T, path, text string, outputs []string) {
		var display, stderr strings.Builder
		for i, line := range strings.Split(text, "\n") {
			if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
				continue
			}

			e, err := parser.Parse(line)
			if err != nil {
				fmt.Fprintf(&stderr, "%s:%d: %v\n", path, i+1, err)
				continue
			}
			fmt.Fprintln(&display, e)
		}

		outputs[0] = display.String()
		outputs[1] = stderr.String()
	})
}
