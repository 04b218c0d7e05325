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
	"log/slog"
	"slices"

	"fillmore-labs.com/thisescape/internal/catalog"
	"fillmore-labs.com/thisescape/internal/ref"
	"fillmore-labs.com/thisescape/symbols"
	"fillmore-labs.com/thisescape/tree"
)

// call interprets a method invocation.
func (s *session) call(e *tree.Call) {
	m := e.Method()

	if isSuperCall(e) {
		// the superclass constructor is analyzed with the superclass
		for _, arg := range e.Args {
			s.discard(arg)
		}

		return
	}

	s.expr(e.Fun)

	var receiver []ref.Ref
	if m == nil || !m.IsStatic() {
		receiver = thisRefs(s.refs.ExtractExprs(s.depth))
	} else {
		s.refs.DiscardExprs(s.depth)
	}

	s.invoke(e, m, e.Args, receiver)
}

// isSuperCall reports whether e invokes a superclass constructor.
func isSuperCall(e *tree.Call) bool {
	if tree.Name(e.Fun) != tree.Super {
		return false
	}

	m := e.Method()

	return m == nil || m.IsConstructor()
}

// isThisCall reports whether stmt invokes another constructor of the same class.
func isThisCall(stmt tree.Stmt) bool {
	x, ok := stmt.(*tree.ExprStmt)
	if !ok {
		return false
	}

	c, ok := x.X.(*tree.Call)

	return ok && tree.Name(c.Fun) == tree.This
}

// newInstance interprets an instance creation expression. The receiver of
// the constructor is the new instance, which refers to the tracked instance
// when its outer instance does.
func (s *session) newInstance(e *tree.New) {
	var receiver []ref.Ref

	switch {
	case e.Outer != nil:
		for _, r := range s.value(e.Outer) {
			if o, ok := r.ToOuter(e.Class); ok {
				receiver = append(receiver, o.AsThis())
			}
		}

	case e.Class != nil && e.Class.HasOuterInstance():
		receiver = s.outerReceiver(e.Class)
	}

	if e.Body != nil {
		s.anonymous(e, receiver)

		return
	}

	s.invoke(e, e.Ctor, e.Args, receiver)
}

// outerReceiver returns the references to a new instance of class c with an
// implicit outer instance.
func (s *session) outerReceiver(c *symbols.Class) []ref.Ref {
	outer := c.EnclosingClass()

	var receiver []ref.Ref

	for _, r := range s.refs.Find(ref.KindThis, nil) {
		switch {
		case s.methodClass.IsSubclass(outer):
			// our this is the outer instance

		case s.methodClass.IsEnclosedBy(outer):
			// our outer this is the outer instance
			var ok bool
			if r, ok = r.FromOuter(outer); !ok {
				continue
			}

		default:
			continue
		}

		if o, ok := r.ToOuter(c); ok {
			receiver = append(receiver, o)
		}
	}

	return receiver
}

// invoke simulates calling m with args on the given receiver references.
func (s *session) invoke(site tree.Node, m *symbols.Method, args []tree.Expr, receiver []ref.Ref) {
	if m != nil && (s.catalog.Suppressed(m) || symbols.IsObjectFinal(m) || m.IsNative()) {
		return
	}

	info, ok := s.catalog.Lookup(m)
	if !ok && len(receiver) == 1 {
		info, ok = s.catalog.Overrider(m, receiver[0].Type())
	}

	if ok && info.Invokable && info.Decl.Body != nil {
		s.invokeInvokable(site, args, receiver, info)

		return
	}

	s.invokeUnknown(site, args, receiver)
}

// invokeInvokable walks the body of a method the analysis controls. Arguments
// become the parameters of the callee; references to the returned value become
// the value of the call.
func (s *session) invokeInvokable(site tree.Node, args []tree.Expr, receiver []ref.Ref, info catalog.MethodInfo) {
	decl := info.Decl

	seed := ref.NewSet(receiver...)

	for i, arg := range args {
		if i >= len(decl.Params) || decl.Params[i].Sym == nil {
			s.discard(arg)

			continue
		}

		param := decl.Params[i].Sym
		for _, r := range s.value(arg) {
			seed.Add(r.AsVar(param))
		}
	}

	if seed.Empty() {
		return
	}

	ctor := decl.IsConstructor()

	returned := s.enter(site, decl, info.Class.Sym, seed, func() {
		if ctor && (len(decl.Body.Stmts) == 0 || !isThisCall(decl.Body.Stmts[0])) {
			s.initializers(info.Class)
		}

		s.block(decl.Body)

		if ctor {
			for _, r := range s.refs.Extract(ref.KindThis, nil) {
				s.refs.Add(r.AsReturn())
			}
		}
	})

	s.push(returned...)
}

// invokeUnknown handles a call to code the analysis does not control.
func (s *session) invokeUnknown(site tree.Node, args []tree.Expr, receiver []ref.Ref) {
	if slices.ContainsFunc(receiver, s.triggersLeak) {
		s.leakAt(site)
	}

	for _, arg := range args {
		if slices.ContainsFunc(s.value(arg), s.triggersLeak) {
			s.leakAt(arg)
		}
	}

	if _, ok := site.(*tree.New); ok {
		// the new instance may hold its receiver
		for _, r := range receiver {
			if i, ok := r.ToIndirect(); ok {
				s.push(i)
			}
		}
	}
}

// inProgress reports whether decl is currently being simulated with the
// initial state seed.
func (s *session) inProgress(decl tree.Node, seed ref.Set) bool {
	if !slices.ContainsFunc(s.invocations[decl], seed.Equal) {
		return false
	}

	s.logger.LogAttrs(s.ctx, slog.LevelDebug, "Skipping recursive invocation",
		slog.Any("state", seed))

	return true
}

// enter runs body as the code of decl in class in a nested session seeded
// with seed, with site pushed on the call stack. It returns the references to
// the returned value, or nothing when the same entry is already in progress.
// The caller state is restored afterwards.
func (s *session) enter(site, decl tree.Node, class *symbols.Class, seed ref.Set, body func()) []ref.Ref {
	if s.inProgress(decl, seed) {
		return nil
	}

	n := len(s.invocations[decl])
	s.invocations[decl] = append(s.invocations[decl], seed.Clone())

	defer func() { s.invocations[decl] = s.invocations[decl][:n] }()
	defer s.restore(s.save())

	s.refs, s.depth, s.methodClass = seed, 0, class
	s.callStack = append(s.callStack, site.Pos())

	body()

	return s.refs.Extract(ref.KindReturn, nil)
}

// initializers runs the instance initializers of class in the current session.
func (s *session) initializers(class *tree.ClassDecl) {
	for m := range tree.InstanceInitializers(class) {
		if stmt, ok := m.(tree.Stmt); ok {
			s.stmt(stmt)
		}
	}
}
