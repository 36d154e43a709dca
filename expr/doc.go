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

// Package expr provides an efficient representation of symbolic expressions.
//
// An [Expr] is a handle to a reference-counted, copy-on-write [Kind], which
// is one of:
//
//   - a 64-bit signed integer;
//   - a 64-bit floating-point real, which is never NaN;
//   - a string;
//   - a [symbol.Symbol];
//   - a [Normal] expression, consisting of a head expression and zero or more
//     elements, written head[e1, e2, ...].
//
// For example, the expression {1, 2, 3} is constructed as
//
//	list := expr.NewNormal(symbol.New("System`List"), []expr.Expr{
//		expr.NewInteger(1),
//		expr.NewInteger(2),
//		expr.NewInteger(3),
//	})
//
// # Reference counting
//
// An Expr is exactly one pointer wide. Copying the Go value does not create a
// new reference; it creates a borrowed handle, valid for as long as the
// handle it was copied from. To share an expression, call [Expr.Clone],
// which increments the reference count, and call [Expr.Release] once the
// clone is no longer needed. Constructors such as [NewNormal] take ownership
// of the references they are passed. Accessors that return a child, such as
// [Expr.NormalHead] and [Expr.NormalPart], return a clone, so that mutating
// the child never reaches into a parent that other holders share.
//
// Reference counts are updated atomically, and the data behind an Expr is
// never modified while it is shared, so holders of clones of the same
// expression may read it concurrently from different goroutines.
//
// Mutation is only possible through [Expr.KindMut], which first makes a
// private copy of the expression if it has more than one holder, and
// [Expr.ToKind], which moves the expression out of a sole holder without
// copying it.
package expr

//go:generate go run github.com/wlexpr/wlexpr/internal/enum variant.yaml
