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
	"encoding/binary"
	"io"
	"math"

	"github.com/segmentio/fasthash/fnv1a"
	"github.com/zeebo/blake3"
)

// Hash returns a structural hash of this expression.
//
// Expressions that are [Expr.Equal] have the same hash. The hash is not
// stable across versions of this package; see [Expr.Fingerprint] for that.
func (e Expr) Hash() uint64 {
	return hashExpr(fnv1a.Init64, e)
}

// Hash returns a structural hash of this number, consistent with ==.
func (n Number) Hash() uint64 {
	k := NumberKind(n)
	return hashKind(fnv1a.Init64, &k)
}

func hashExpr(h uint64, e Expr) uint64 {
	return hashKind(h, e.Kind())
}

func hashKind(h uint64, k *Kind) uint64 {
	h = fnv1a.AddUint64(h, uint64(k.variant))
	switch k.variant {
	case VariantInteger:
		h = fnv1a.AddUint64(h, k.bits)
	case VariantReal:
		h = fnv1a.AddUint64(h, canonicalBits(k.bits))
	case VariantString:
		h = fnv1a.AddString64(h, k.text)
	case VariantSymbol:
		h = fnv1a.AddString64(h, k.symbol.String())
	case VariantNormal:
		h = hashExpr(h, k.normal.head)
		h = fnv1a.AddUint64(h, uint64(len(k.normal.elems)))
		for _, e := range k.normal.elems {
			h = hashExpr(h, e)
		}
	}
	return h
}

// canonicalBits maps -0.0 to +0.0, which compare equal.
func canonicalBits(bits uint64) uint64 {
	if math.Float64frombits(bits) == 0 {
		return 0
	}
	return bits
}

// Fingerprint returns a BLAKE3 digest of this expression's structure.
//
// Unlike [Expr.Hash], fingerprints are stable: two equal expressions have the
// same fingerprint regardless of the process or version of this package that
// computed it, so they may be used as keys in persistent caches.
func (e Expr) Fingerprint() [32]byte {
	f := fingerprinter{h: blake3.New()}
	f.expr(e)

	var out [32]byte
	f.h.Sum(out[:0])
	return out
}

// fingerprinter writes a canonical, self-delimiting encoding of an expression
// into a hash.
type fingerprinter struct {
	h   *blake3.Hasher
	buf []byte
}

func (f *fingerprinter) expr(e Expr) {
	k := e.Kind()

	f.buf = append(f.buf[:0], byte(k.variant))
	switch k.variant {
	case VariantInteger:
		f.buf = binary.LittleEndian.AppendUint64(f.buf, k.bits)
		f.flush()
	case VariantReal:
		f.buf = binary.LittleEndian.AppendUint64(f.buf, canonicalBits(k.bits))
		f.flush()
	case VariantString:
		f.str(k.text)
	case VariantSymbol:
		f.str(k.symbol.String())
	case VariantNormal:
		f.buf = binary.AppendUvarint(f.buf, uint64(len(k.normal.elems)))
		f.flush()
		f.expr(k.normal.head)
		for _, e := range k.normal.elems {
			f.expr(e)
		}
	}
}

func (f *fingerprinter) str(s string) {
	f.buf = binary.AppendUvarint(f.buf, uint64(len(s)))
	f.flush()
	_, _ = io.WriteString(f.h, s)
}

func (f *fingerprinter) flush() {
	_, _ = f.h.Write(f.buf)
	f.buf = f.buf[:0]
}
