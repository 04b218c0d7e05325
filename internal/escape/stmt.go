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
	"fillmore-labs.com/thisescape/tree"
)

// stmt interprets statement n.
func (s *session) stmt(n tree.Stmt) {
	if n == nil {
		return
	}

	switch n := n.(type) {
	// keep-sorted start newline_separated=yes
	case *tree.Assert:
		s.discard(n.Cond)
		s.discard(n.Detail)

	case *tree.Block:
		s.block(n)

	case *tree.Branch, *tree.Empty:
		// no effect

	case *tree.ClassDecl:
		// local classes run when instantiated

	case *tree.DoWhile:
		s.looped(func() {
			s.stmt(n.Body)
			s.discard(n.Cond)
		})

	case *tree.ExprStmt:
		s.discard(n.X)

	case *tree.For:
		s.scoped(false, func() {
			for _, init := range n.Init {
				s.stmt(init)
			}

			s.looped(func() {
				s.discard(n.Cond)
				s.stmt(n.Body)

				for _, post := range n.Post {
					s.stmt(post)
				}
			})
		})

	case *tree.ForEach:
		s.forEach(n)

	case *tree.If:
		s.discard(n.Cond)
		s.stmt(n.Then)
		s.stmt(n.Else)

	case *tree.Labeled:
		s.stmt(n.Body)

	case *tree.Return:
		if n.Result != nil {
			s.expr(n.Result)
			s.refs.ReplaceExprs(s.depth, relabel(ref.Ref.AsReturn))
		}

	case *tree.Switch:
		s.scoped(false, func() {
			selector := s.value(n.Selector)
			for _, c := range n.Cases {
				s.caseClause(c, selector)
			}
		})

	case *tree.Synchronized:
		s.discard(n.Lock)
		s.block(n.Body)

	case *tree.Throw:
		s.expr(n.X)

		if s.refs.DiscardExprs(s.depth) {
			s.leakAt(n)
		}

	case *tree.Try:
		s.scoped(false, func() {
			for _, r := range n.Resources {
				s.stmt(r)
			}

			s.block(n.Body)
		})

		for _, c := range n.Catches {
			s.block(c.Body)
		}

		s.block(n.Finally)

	case *tree.VarDecl:
		s.varDecl(n)

	case *tree.While:
		s.looped(func() {
			s.discard(n.Cond)
			s.stmt(n.Body)
		})

	case *tree.Yield:
		s.expr(n.Value)
		s.refs.ReplaceExprs(s.depth, relabel(ref.Ref.AsYield))
		// keep-sorted end

	default:
		s.fail(n, ErrUnexpectedNode, "statement %T", n)
	}

	s.checkInvariants(n)
}

// block interprets a block in its own scope.
func (s *session) block(b *tree.Block) {
	if b == nil {
		return
	}

	s.scoped(false, func() {
		for _, stmt := range b.Stmts {
			s.stmt(stmt)
		}
	})
}

// looped interprets a loop body until the reference set reaches a fixed point.
func (s *session) looped(body func()) {
	s.scoped(false, func() {
		for {
			prev := s.refs.Clone()

			body()

			if s.refs.Equal(prev) {
				return
			}
		}
	})
}

// varDecl binds the initializer of a local variable. Initializers of fields
// and other variables are evaluated and dropped.
func (s *session) varDecl(d *tree.VarDecl) {
	if d.Init == nil {
		return
	}

	s.expr(d.Init)

	if d.Sym != nil && d.Sym.IsLocal() {
		s.refs.ReplaceExprs(s.depth, relabel(func(r ref.Ref) ref.Ref { return r.AsVar(d.Sym) }))

		return
	}

	s.refs.DiscardExprs(s.depth)
}

// caseClause interprets a switch case. Pattern bindings receive the selector
// references with the binding type.
func (s *session) caseClause(c *tree.Case, selector []ref.Ref) {
	for _, label := range c.Labels {
		s.discard(label)
	}

	for _, b := range c.Bindings {
		s.bind(b, selector)
	}

	s.discard(c.Guard)

	for _, stmt := range c.Body {
		s.stmt(stmt)
	}
}

// bind adds the references in refs as values of the pattern variable d.
func (s *session) bind(d *tree.VarDecl, refs []ref.Ref) {
	if d == nil || d.Sym == nil {
		return
	}

	for _, r := range refs {
		s.refs.Add(r.WithType(d.Sym.Type()).AsVar(d.Sym))
	}
}

// forEach interprets an enhanced for loop. Array elements are reachable
// through the [ref.Indirect] path of the array; iterables are traversed by
// simulating iterator, hasNext and next.
func (s *session) forEach(n *tree.ForEach) {
	s.looped(func() {
		elems := s.elements(n.X, s.value(n.X))

		if n.Var != nil && n.Var.Sym != nil {
			v := n.Var.Sym
			for _, r := range elems {
				s.refs.Add(r.AsVar(v))
			}
		}

		s.stmt(n.Body)
	})
}

// elements returns the possible references to the elements of the iterated value.
func (s *session) elements(x tree.Expr, refs []ref.Ref) []ref.Ref {
	var elems, iterables []ref.Ref

	for _, r := range refs {
		if t := r.Type(); t.IsArray() {
			if e, ok := r.FromIndirect(t.Elem()); ok {
				elems = append(elems, e)
			}

			continue
		}

		iterables = append(iterables, r.AsThis())
	}

	if len(iterables) == 0 {
		return elems
	}

	iterator := iterables[0].Type().LookupMethod("iterator", 0)
	if iterator == nil || iterator.Result() == nil {
		return elems
	}

	hasNext := iterator.Result().LookupMethod("hasNext", 0)
	next := iterator.Result().LookupMethod("next", 0)

	if hasNext == nil || next == nil {
		return elems
	}

	s.invoke(x, iterator, nil, iterables)
	iterators := thisRefs(s.refs.ExtractExprs(s.depth))

	s.invoke(x, hasNext, nil, iterators)
	s.refs.DiscardExprs(s.depth)

	s.invoke(x, next, nil, iterators)

	return append(elems, s.refs.ExtractExprs(s.depth)...)
}
