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

// Package symbols models the declarations of a type-checked object-oriented
// compilation unit: modules, packages, classes, methods and variables.
//
// Symbols are produced by a type checker and are read-only afterwards. The
// queries in this package are the ones the escape analysis needs: class
// hierarchy and nesting, method overriding, outer instances, module exports and
// method lookup by name and arity.
package symbols
