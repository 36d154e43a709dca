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
	"cmp"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/wlexpr/wlexpr/internal/ext/cmpx"
)

// F64 is a 64-bit floating-point number that is never NaN.
//
// Infinities are permitted. The zero value is +0.0.
type F64 struct {
	v float64
}

// NewF64 wraps f, returning false if it is NaN.
func NewF64(f float64) (F64, bool) {
	if math.IsNaN(f) {
		return F64{}, false
	}
	return F64{f}, true
}

// MustF64 is like [NewF64], but panics if f is NaN.
func MustF64(f float64) F64 {
	v, ok := NewF64(f)
	if !ok {
		panic("expr.MustF64: got NaN")
	}
	return v
}

// Float64 returns the wrapped value.
func (f F64) Float64() float64 { return f.v }

// Compare compares two values numerically. -0.0 and +0.0 compare equal.
func (f F64) Compare(g F64) int { return cmp.Compare(f.v, g.v) }

// String formats this value such that parsing it produces the same bits.
//
// The result always contains a decimal point, an exponent, or is an infinity
// ("inf" or "-inf"), so that it cannot be mistaken for an integer.
func (f F64) String() string {
	switch {
	case math.IsInf(f.v, 1):
		return "inf"
	case math.IsInf(f.v, -1):
		return "-inf"
	}

	s := strconv.FormatFloat(f.v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// Number is the subset of [Kind] that covers numeric values: either an
// integer or a real.
//
// Numbers are comparable with ==, which is structural: an integer is never
// equal to a real. The zero value is the integer 0.
type Number struct {
	real bool
	i    int64
	f    F64
}

// IntegerNumber returns an integer [Number].
func IntegerNumber(i int64) Number {
	return Number{i: i}
}

// RealNumber returns a real [Number].
//
// Panics if r is NaN.
func RealNumber(r float64) Number {
	f, ok := NewF64(r)
	if !ok {
		panic("expr.RealNumber: got NaN")
	}
	return Number{real: true, f: f}
}

// F64Number returns a real [Number] from a value already known not to be
// NaN.
func F64Number(f F64) Number {
	return Number{real: true, f: f}
}

// IsReal returns whether this is a real, rather than an integer.
func (n Number) IsReal() bool { return n.real }

// Integer returns this number's value if it is an integer.
func (n Number) Integer() (int64, bool) {
	return n.i, !n.real
}

// Real returns this number's value if it is a real.
func (n Number) Real() (F64, bool) {
	return n.f, n.real
}

// Compare orders numbers, placing all integers before all reals, and ordering
// numbers of the same variant by value.
//
// This ordering exists so that numbers may be stored in sorted containers. It
// does NOT match the language's canonical ordering of numbers, which compares
// integers and reals by value.
func (n Number) Compare(m Number) int {
	if c := cmpx.Bool(n.real, m.real); c != cmpx.Equal {
		return c
	}
	if n.real {
		return n.f.Compare(m.f)
	}
	return cmp.Compare(n.i, m.i)
}

// String implements [fmt.Stringer].
//
// Integers are printed in decimal; reals are printed as by [F64.String].
func (n Number) String() string {
	if n.real {
		return n.f.String()
	}
	return strconv.FormatInt(n.i, 10)
}

// GoString implements [fmt.GoStringer].
func (n Number) GoString() string {
	switch {
	case !n.real:
	case math.IsInf(n.f.v, 1):
		return "expr.RealNumber(math.Inf(1))"
	case math.IsInf(n.f.v, -1):
		return "expr.RealNumber(math.Inf(-1))"
	default:
		return fmt.Sprintf("expr.RealNumber(%v)", n.f)
	}
	return fmt.Sprintf("expr.IntegerNumber(%d)", n.i)
}
