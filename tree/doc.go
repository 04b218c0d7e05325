// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package tree is the typed syntax tree of an object-oriented compilation unit
// as produced by a parser and type checker.
//
// Nodes carry [go/token] positions and resolved [symbols]. The tree is never
// modified by the analysis. Constructs the escape analysis does not interpret
// (types, literals, annotations) are still represented so that traversals see
// every expression of the source.
//
// Conventions a producer must follow:
//
//   - Explicit constructor invocations this(...) and super(...) are [*Call]
//     nodes whose Fun is an [*Ident] named "this" or "super" resolved to the
//     invoked constructor.
//   - The arrow form "case L -> expr;" of a switch expression is represented
//     with a [*Yield] statement.
//   - Qualified this and super (Outer.this) are [*Select] nodes with a
//     [*TypeName] operand.
package tree
