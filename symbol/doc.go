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

// Package symbol provides validated representations of symbols and contexts.
//
// This package provides four owned types:
//
//   - [Symbol], an absolute symbol such as "System`List".
//   - [Name], the identifier portion of a symbol, such as "List".
//   - [Context], an absolute context such as "System`" or "MyPackage`Utils`".
//   - [RelativeContext], a context beginning with a context mark, such as
//     "`Utils`".
//
// Each of these stores a string that has been validated to conform to the
// syntax of symbols and contexts, and owns a private copy of it.
//
// Each owned type has a borrowed counterpart ([Ref], [NameRef], [ContextRef]
// and [RelativeContextRef]) which validates a string without copying it. The
// borrowed types alias the text they were created from, which makes them
// suitable for picking apart large inputs without allocating until an owned
// value is actually needed.
//
// # Syntax
//
// A name is a letter or "$", followed by any number of letters, decimal
// digits, or "$". Letters and digits are taken from the Unicode L and Nd
// categories; "_" is never part of a name.
//
// A context is one or more names, each followed by a single context mark
// ("`"). A relative context is a context preceded by a context mark. A symbol
// is a context followed by a name.
//
// # Ordering
//
// All types in this package have a Compare method, which orders values by
// their bytes. This is NOT guaranteed to match the language's canonical
// ordering of symbols; it exists so that values can be stored in sorted
// containers.
package symbol
