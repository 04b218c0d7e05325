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

// expr interprets expression e, leaving the references to its value as
// expression references at the current depth.
func (s *session) expr(e tree.Expr) {
	if e == nil {
		return
	}

	switch e := e.(type) {
	// keep-sorted start newline_separated=yes
	case *tree.Assign:
		s.discard(e.Lhs)
		s.expr(e.Rhs)

		if v := localVar(e.Lhs); v != nil {
			s.refs.ReplaceExprs(s.depth, relabel(func(r ref.Ref) ref.Ref { return r.AsVar(v) }))
		} else {
			s.refs.DiscardExprs(s.depth)
		}

	case *tree.AssignOp:
		s.discard(e.Lhs)
		s.discard(e.Rhs)

	case *tree.Binary:
		s.discard(e.X)
		s.discard(e.Y)

	case *tree.Call:
		s.call(e)

	case *tree.Cast:
		s.expr(e.X)

		if e.Type == nil {
			s.refs.DiscardExprs(s.depth)
		} else {
			s.refs.ReplaceExprs(s.depth, relabel(func(r ref.Ref) ref.Ref { return r.WithType(e.Type) }))
		}

	case *tree.Conditional:
		s.discard(e.Cond)
		then := s.value(e.Then)
		els := s.value(e.Else)

		s.push(then...)
		s.push(els...)

	case *tree.Ident:
		s.ident(e)

	case *tree.Index:
		array := s.value(e.X)
		s.discard(e.Index)

		if e.Elem == nil {
			break
		}

		for _, r := range array {
			if elem, ok := r.FromIndirect(e.Elem); ok {
				s.push(elem)
			}
		}

	case *tree.InstanceOf:
		value := s.value(e.X)
		s.bind(e.Binding, value)

	case *tree.Lambda:
		s.lambda(e)

	case *tree.Literal, *tree.TypeName:
		// no references

	case *tree.MemberRef:
		s.memberRef(e)

	case *tree.New:
		s.newInstance(e)

	case *tree.NewArray:
		for _, d := range e.Dims {
			s.discard(d)
		}

		var elems []ref.Ref

		for _, elem := range e.Elems {
			for _, r := range s.value(elem) {
				if i, ok := r.ToIndirect(); ok {
					elems = append(elems, i.WithType(e.Type))
				}
			}
		}

		s.push(elems...)

	case *tree.Paren:
		s.expr(e.X)

	case *tree.Select:
		s.selectExpr(e)

	case *tree.SwitchExpr:
		s.switchExpr(e)

	case *tree.Unary:
		s.discard(e.X)
		// keep-sorted end

	default:
		s.fail(e, ErrUnexpectedNode, "expression %T", e)
	}
}

// value interprets e and removes the resulting expression references.
func (s *session) value(e tree.Expr) []ref.Ref {
	s.expr(e)

	return s.refs.ExtractExprs(s.depth)
}

// discard interprets e and drops its value.
func (s *session) discard(e tree.Expr) {
	if e == nil {
		return
	}

	s.expr(e)
	s.refs.DiscardExprs(s.depth)
}

// push adds refs as expression references at the current depth.
func (s *session) push(refs ...ref.Ref) {
	for _, r := range refs {
		s.refs.Add(r.AsExpr(s.depth))
	}
}

// pushThis makes the receiver the value of the current expression.
func (s *session) pushThis() {
	s.push(s.refs.Find(ref.KindThis, nil)...)
}

// pushOuterThis makes the outer instance of class outer the value of the
// current expression.
func (s *session) pushOuterThis(outer *symbols.Class) {
	for _, r := range s.refs.Find(ref.KindThis, nil) {
		if o, ok := r.FromOuter(outer); ok {
			s.push(o)
		}
	}
}

// ident interprets a simple name.
func (s *session) ident(e *tree.Ident) {
	if e.Name == tree.This || e.Name == tree.Super {
		s.pushThis()

		return
	}

	switch sym := e.Sym.(type) {
	case *symbols.Var:
		s.push(s.refs.Find(ref.KindVar, func(r ref.Ref) bool { return r.Var() == sym })...)

	case *symbols.Method:
		if sym.IsStatic() || sym.IsConstructor() {
			return
		}

		// unqualified instance method: implicit this or outer this
		owner := sym.Class()
		switch {
		case s.methodClass.IsSubclass(owner):
			s.pushThis()

		case s.methodClass.IsEnclosedBy(owner):
			s.pushOuterThis(owner)

		default:
			if outer := enclosingSubclass(s.methodClass, owner); outer != nil {
				s.pushOuterThis(outer)
			}
		}
	}
}

// selectExpr interprets a member selection. Field values are not tracked.
func (s *session) selectExpr(e *tree.Select) {
	if e.Name == tree.This || e.Name == tree.Super {
		if t, ok := tree.Unparen(e.X).(*tree.TypeName); ok {
			s.qualifiedThis(t.Sym, e.Name == tree.Super)

			return
		}
	}

	selected := s.value(e.X)

	if m, ok := e.Sym.(*symbols.Method); ok && !m.IsStatic() {
		s.push(selected...)
	}
}

// qualifiedThis interprets C.this and C.super.
func (s *session) qualifiedThis(c *symbols.Class, super bool) {
	switch {
	case c == nil:

	case c == s.methodClass, super && !s.methodClass.IsEnclosedBy(c):
		// C.this of the current class, or I.super of an implemented interface
		s.pushThis()

	case s.methodClass.IsEnclosedBy(c):
		s.pushOuterThis(c)
	}
}

// switchExpr interprets a switch expression. Its value is the union of the
// values yielded by all cases.
func (s *session) switchExpr(e *tree.SwitchExpr) {
	s.scoped(true, func() {
		selector := s.value(e.Selector)

		var yields []ref.Ref

		for _, c := range e.Cases {
			s.caseClause(c, selector)
			yields = append(yields, s.refs.Extract(ref.KindYield, nil)...)
		}

		s.push(yields...)
	})
}

// localVar returns the local variable denoted by e, or nil.
func localVar(e tree.Expr) *symbols.Var {
	id, ok := tree.Unparen(e).(*tree.Ident)
	if !ok {
		return nil
	}

	v, ok := id.Sym.(*symbols.Var)
	if !ok || v.Kind() == symbols.FieldVar {
		return nil
	}

	return v
}

// enclosingSubclass returns the innermost class enclosing c that inherits from base.
func enclosingSubclass(c, base *symbols.Class) *symbols.Class {
	for e := c.EnclosingClass(); e != nil; e = e.EnclosingClass() {
		if e.IsSubclass(base) {
			return e
		}
	}

	return nil
}

// relabel adapts a total reference mapping to [ref.Set.ReplaceExprs].
func relabel(f func(ref.Ref) ref.Ref) func(ref.Ref) (ref.Ref, bool) {
	return func(r ref.Ref) (ref.Ref, bool) { return f(r), true }
}

// thisRefs relabels refs as receiver references.
func thisRefs(refs []ref.Ref) []ref.Ref {
	for i, r := range refs {
		refs[i] = r.AsThis()
	}

	return refs
}
