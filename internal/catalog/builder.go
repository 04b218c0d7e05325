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

package catalog

import (
	"fillmore-labs.com/thisescape/internal/lint"
	"fillmore-labs.com/thisescape/symbols"
	"fillmore-labs.com/thisescape/tree"
)

// builder populates a [Catalog] in a single top-down walk.
type builder struct {
	*Catalog

	// module of the compilation unit, nil when modules are not in use
	module *symbols.Module

	// seen prevents visiting a class declaration twice
	seen map[*tree.ClassDecl]struct{}
}

// visitClass classifies the members of decl. nonPublicOuter is true when an
// enclosing class is not public.
func (b *builder) visitClass(decl *tree.ClassDecl, nonPublicOuter bool, l lint.Lint) {
	if _, ok := b.seen[decl]; ok {
		return
	}
	b.seen[decl] = struct{}{}

	cls := decl.Sym
	if cls == nil {
		return
	}

	l = l.Augment(decl.Annotations)

	nonPublicOuter = nonPublicOuter || cls.IsAnonymous() || !cls.IsPublic()
	if nonPublicOuter {
		b.nonPublicOuters[cls] = struct{}{}
	}

	extendable := b.extendable(cls, nonPublicOuter)

	hasAnalyzable := false
	for m := range tree.Methods(decl) {
		if b.visitMethod(decl, m, extendable, l) {
			hasAnalyzable = true
		}
	}

	if hasAnalyzable {
		b.analyzable = append(b.analyzable, decl)
	}

	for _, m := range decl.Members {
		switch m := m.(type) {
		// keep-sorted start newline_separated=yes
		case *tree.Block:
			b.visitNested(m, nonPublicOuter, l)

		case *tree.ClassDecl:
			b.visitClass(m, nonPublicOuter, l)

		case *tree.MethodDecl:
			if m.Body != nil {
				b.visitNested(m.Body, nonPublicOuter, l.Augment(m.Annotations))
			}

		case *tree.VarDecl:
			fl := l.Augment(m.Annotations)
			if !fl.Enabled() && m.Sym != nil {
				b.suppressed[m.Sym] = struct{}{}
			}

			if m.Init != nil {
				b.visitNested(m.Init, nonPublicOuter, fl)
			}
			// keep-sorted end
		}
	}
}

// visitMethod records the [MethodInfo] for decl and reports whether it is analyzable.
func (b *builder) visitMethod(class *tree.ClassDecl, decl *tree.MethodDecl, extendable bool, l lint.Lint) bool {
	sym := decl.Sym
	if sym == nil {
		return false
	}

	suppressed := !l.Augment(decl.Annotations).Enabled()
	if suppressed {
		b.suppressed[sym] = struct{}{}
	}

	ctor := sym.IsConstructor()

	info := MethodInfo{
		Class:      class,
		Decl:       decl,
		Analyzable: extendable && ctor && sym.IsPublicOrProtected() && !suppressed,
		Invokable:  !extendable || ctor || sym.Flags().Has(symbols.Static|symbols.Private|symbols.Final),
	}

	if _, ok := b.methods[sym]; !ok {
		b.order = append(b.order, sym)
	}

	b.methods[sym] = info

	return info.Analyzable
}

// visitNested finds local and anonymous classes declared in code.
func (b *builder) visitNested(n tree.Node, nonPublicOuter bool, l lint.Lint) {
	tree.Inspect(n, func(n tree.Node) bool {
		switch n := n.(type) {
		case *tree.ClassDecl:
			b.visitClass(n, nonPublicOuter, l)

			return false

		case *tree.VarDecl:
			// a local variable declaration may suppress warnings for its initializer
			l := l.Augment(n.Annotations)
			if n.Init != nil {
				b.visitNested(n.Init, nonPublicOuter, l)
			}

			return false

		default:
			return true
		}
	})
}

// extendable reports whether code outside the module can declare a subclass of cls.
func (b *builder) extendable(cls *symbols.Class, nonPublicOuter bool) bool {
	return !cls.IsFinal() &&
		cls.IsPublic() &&
		b.module.Exports(cls.Package()) &&
		!cls.IsSealed() &&
		!cls.IsLocalOrAnonymous() &&
		!nonPublicOuter
}
