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

package escape

import (
	"fillmore-labs.com/thisescape/internal/ref"
	"fillmore-labs.com/thisescape/symbols"
	"fillmore-labs.com/thisescape/tree"
)

// deferred runs code that may execute at any later time. Leaks found are
// recorded, but the precise references it produces are replaced by one
// indirect reference of type typ to the closure.
func (s *session) deferred(typ *symbols.Class, code func()) {
	prev := s.refs.Clone()

	code()

	dangling := false

	for r := range s.refs.All() {
		switch r.Kind() {
		case ref.KindExpr:
			if r.Depth() < s.depth {
				continue
			}

		case ref.KindReturn:

		default:
			continue
		}

		if !prev.Contains(r) {
			dangling = true

			break
		}
	}

	s.refs = prev

	if dangling {
		s.refs.Add(ref.NewExpr(s.depth, typ, ref.Of(ref.Indirect)))
	}
}

// lambda interprets a lambda expression as deferred code.
func (s *session) lambda(e *tree.Lambda) {
	s.deferred(e.Type, func() {
		s.scoped(false, func() {
			switch body := e.Body.(type) {
			case *tree.Block:
				s.block(body)

			case tree.Expr:
				s.expr(body)
				s.refs.ReplaceExprs(s.depth, relabel(ref.Ref.AsReturn))
			}
		})
	})
}

// memberRef interprets a method reference as a deferred invocation.
func (s *session) memberRef(e *tree.MemberRef) {
	var receiver []ref.Ref

	switch e.Kind {
	case tree.RefBound:
		receiver = thisRefs(s.value(e.X))

	case tree.RefSuper:
		s.discard(e.X)
		receiver = s.refs.Find(ref.KindThis, nil)

	case tree.RefImplicitInner:
		s.discard(e.X)

		if e.Sym != nil {
			receiver = s.outerReceiver(e.Sym.Class())
		}

	default:
		// static, unbound, top level and array constructors capture nothing
		s.discard(e.X)

		return
	}

	s.deferred(e.Type, func() {
		s.invoke(e, e.Sym, nil, receiver)
	})
}

// anonymous interprets the creation of an anonymous class instance. The
// superclass constructor runs first, then the instance initializers of the
// anonymous class. Its methods may run at any later time.
func (s *session) anonymous(e *tree.New, receiver []ref.Ref) {
	class := e.Body.Sym
	if class == nil {
		class = e.Class
	}

	for i, r := range receiver {
		receiver[i] = r.WithType(class)
	}

	s.invoke(e, e.Ctor, e.Args, receiver)
	s.refs.DiscardExprs(s.depth)

	if seed := ref.NewSet(receiver...); !seed.Empty() {
		s.enter(e, e.Body, class, seed, func() { s.initializers(e.Body) })
	}

	// methods see the new instance and the captured local variables
	captured := s.refs.Find(ref.KindVar, nil)

	for m := range tree.Methods(e.Body) {
		if m.Body == nil || m.IsConstructor() || tree.IsStatic(m) {
			continue
		}

		seed := ref.NewSet(receiver...)
		for _, r := range captured {
			seed.Add(r)
		}

		if seed.Empty() {
			continue
		}

		s.enter(e, m, class, seed, func() { s.block(m.Body) })
	}

	// the value is the new instance
	s.push(receiver...)
}
