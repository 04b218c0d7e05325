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

// Package catalog classifies every method and constructor of a compilation
// unit before the escape analysis runs.
package catalog

import (
	"context"
	"iter"
	"runtime/trace"

	"fillmore-labs.com/thisescape/internal/lint"
	"fillmore-labs.com/thisescape/symbols"
	"fillmore-labs.com/thisescape/tree"
)

// MethodInfo describes a method or constructor declared in the compilation unit.
type MethodInfo struct {
	// Class is the declaring class.
	Class *tree.ClassDecl

	// Decl is the method or constructor declaration.
	Decl *tree.MethodDecl

	// Analyzable marks a public or protected constructor of an externally
	// extendable class with escape checking enabled.
	Analyzable bool

	// Invokable marks a method whose body can't be replaced by an override,
	// so the analysis may simulate it.
	Invokable bool
}

// Catalog is the result of the pre-pass over a compilation unit. It is
// read-only once built.
type Catalog struct {
	methods         map[*symbols.Method]MethodInfo
	order           []*symbols.Method
	nonPublicOuters map[*symbols.Class]struct{}
	suppressed      map[symbols.Symbol]struct{}
	analyzable      []*tree.ClassDecl
}

// Build walks the compilation unit once and classifies all declarations.
func Build(ctx context.Context, unit *tree.CompilationUnit, l lint.Lint) *Catalog {
	defer trace.StartRegion(ctx, "Catalog").End()

	b := builder{
		Catalog: &Catalog{
			methods:         make(map[*symbols.Method]MethodInfo),
			nonPublicOuters: make(map[*symbols.Class]struct{}),
			suppressed:      make(map[symbols.Symbol]struct{}),
		},
		module: unit.Module,
		seen:   make(map[*tree.ClassDecl]struct{}),
	}

	for _, c := range unit.Classes {
		b.visitClass(c, false, l)
	}

	return b.Catalog
}

// Lookup returns the information for method m.
func (c *Catalog) Lookup(m *symbols.Method) (MethodInfo, bool) {
	info, ok := c.methods[m]

	return info, ok
}

// All yields every catalogued method in declaration order.
func (c *Catalog) All() iter.Seq2[*symbols.Method, MethodInfo] {
	return func(yield func(*symbols.Method, MethodInfo) bool) {
		for _, m := range c.order {
			if !yield(m, c.methods[m]) {
				return
			}
		}
	}
}

// NonPublicOuter reports whether cls is not public or is nested in a class
// that is not public.
func (c *Catalog) NonPublicOuter(cls *symbols.Class) bool {
	_, ok := c.nonPublicOuters[cls]

	return ok
}

// Suppressed reports whether escape warnings are suppressed for the method or field.
func (c *Catalog) Suppressed(sym symbols.Symbol) bool {
	_, ok := c.suppressed[sym]

	return ok
}

// AnalyzableClasses returns the classes with at least one analyzable
// constructor, in declaration order.
func (c *Catalog) AnalyzableClasses() []*tree.ClassDecl {
	return c.analyzable
}

// Overrider finds a catalogued method of class owner that overrides m when
// invoked on owner. This resolves calls whose static target is declared
// outside the unit but whose receiver is known.
func (c *Catalog) Overrider(m *symbols.Method, owner *symbols.Class) (MethodInfo, bool) {
	if m == nil || owner == nil {
		return MethodInfo{}, false
	}

	for _, candidate := range c.order {
		if candidate.Class() != owner || candidate.Name() != m.Name() {
			continue
		}

		if candidate.Overrides(m, owner) {
			return c.methods[candidate], true
		}
	}

	return MethodInfo{}, false
}
