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

// Package escape implements the abstract interpreter detecting references to
// an instance under construction that leave the control of its module.
//
// The interpreter walks constructor bodies and instance initializers with a
// [ref.Set] as its machine state. Calls to methods that can't be overridden
// from outside are simulated by walking their bodies; any other call
// receiving a possible alias of the instance is a leak.
package escape

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"log/slog"
	"runtime/trace"

	"fillmore-labs.com/thisescape/internal/catalog"
	"fillmore-labs.com/thisescape/internal/ref"
	"fillmore-labs.com/thisescape/internal/report"
	"fillmore-labs.com/thisescape/symbols"
	"fillmore-labs.com/thisescape/tree"
)

var (
	// ErrInvariant is returned when the reference set violates an internal invariant.
	ErrInvariant = errors.New("invariant violated")

	// ErrUnexpectedNode is returned for tree nodes the interpreter can't handle.
	ErrUnexpectedNode = errors.New("unexpected node")
)

// Error is an internal error of the analysis with its source position.
type Error struct {
	Pos token.Pos
	Err error
}

func (e *Error) Error() string { return e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// Analyzer runs sessions over the analyzable classes of one compilation unit
// and accumulates the leak trails.
type Analyzer struct {
	catalog    *catalog.Catalog
	logger     *slog.Logger
	invariants bool
	trails     []report.Trail
}

// New creates an [Analyzer] for a catalogued compilation unit. With invariants
// set, the reference set is verified after every statement.
func New(cat *catalog.Catalog, logger *slog.Logger, invariants bool) *Analyzer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Analyzer{catalog: cat, logger: logger, invariants: invariants}
}

// Trails returns the leak trails recorded so far.
func (a *Analyzer) Trails() []report.Trail {
	return a.trails
}

// Initializers analyzes the instance field initializers and instance
// initializer blocks of class, each in its own session.
func (a *Analyzer) Initializers(ctx context.Context, class *tree.ClassDecl) error {
	defer trace.StartRegion(ctx, "Initializers").End()

	for m := range tree.InstanceInitializers(class) {
		var stmts []tree.Stmt

		switch m := m.(type) {
		case *tree.Block:
			stmts = m.Stmts

		case *tree.VarDecl:
			if a.catalog.Suppressed(m.Sym) {
				continue
			}

			stmts = []tree.Stmt{m}
		}

		if err := a.analyze(ctx, class, stmts); err != nil {
			return err
		}
	}

	return nil
}

// Constructor analyzes the body of an analyzable constructor of class.
func (a *Analyzer) Constructor(ctx context.Context, class *tree.ClassDecl, ctor *tree.MethodDecl) error {
	if ctor.Body == nil {
		return nil
	}

	defer trace.StartRegion(ctx, "Constructor").End()

	return a.analyze(ctx, class, ctor.Body.Stmts)
}

// analyze runs one session over top level statements, stopping after the
// first statement that leaks.
func (a *Analyzer) analyze(ctx context.Context, class *tree.ClassDecl, stmts []tree.Stmt) error {
	s := newSession(ctx, a, class.Sym)

	for _, stmt := range stmts {
		if err := s.statement(stmt); err != nil {
			return err
		}

		if s.pending != nil {
			a.logger.LogAttrs(ctx, slog.LevelDebug, "Possible this escape",
				slog.String("class", class.Sym.String()),
				slog.Int("frames", len(s.pending)))

			a.trails = append(a.trails, s.pending)

			break
		}
	}

	return nil
}

// session is the state of the interpreter while analyzing one constructor or
// initializer, including all simulated invocations.
type session struct {
	*Analyzer
	ctx context.Context

	// refs is the current machine state.
	refs ref.Set

	// depth is the current lexical scope depth.
	depth int

	// methodClass declares the code currently executing.
	methodClass *symbols.Class

	// targetClass is the class under construction.
	targetClass *symbols.Class

	// callStack holds the invocation sites of the simulated calls, outermost first.
	callStack []token.Pos

	// invocations holds the method entries in progress with their initial state.
	invocations map[tree.Node][]ref.Set

	// pending is the trail of the first leak found in the current statement.
	pending report.Trail
}

func newSession(ctx context.Context, a *Analyzer, class *symbols.Class) *session {
	return &session{
		Analyzer:    a,
		ctx:         ctx,
		refs:        ref.NewSet(ref.NewThis(class, ref.Of(ref.Direct))),
		methodClass: class,
		targetClass: class,
		invocations: make(map[tree.Node][]ref.Set),
	}
}

// statement interprets a top level statement, converting internal errors into
// an [*Error].
func (s *session) statement(stmt tree.Stmt) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		e, ok := r.(*Error)
		if !ok {
			panic(r)
		}

		err = e
	}()

	s.stmt(stmt)

	return nil
}

// leakAt records a leak at node with the current call stack, unless the
// current statement already leaked.
func (s *session) leakAt(node tree.Node) {
	if s.pending != nil {
		return
	}

	trail := make(report.Trail, 0, len(s.callStack)+1)
	trail = append(trail, node.Pos())

	for i := len(s.callStack) - 1; i >= 0; i-- {
		trail = append(trail, s.callStack[i])
	}

	s.pending = trail
}

// triggersLeak reports whether passing r to unknown code leaks. Only a
// reference through the outer instance of a class no outside code can name is
// exempt.
func (s *session) triggersLeak(r ref.Ref) bool {
	return !r.Indirections().Only(ref.Outer) || !s.catalog.NonPublicOuter(r.Type())
}

// fail aborts the current session with an internal error at node.
func (s *session) fail(node tree.Node, err error, format string, args ...any) {
	var pos token.Pos
	if node != nil {
		pos = node.Pos()
	}

	panic(&Error{Pos: pos, Err: fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...))})
}

// state is a saved interpreter state.
type state struct {
	refs        ref.Set
	depth       int
	methodClass *symbols.Class
	callStack   int
}

func (s *session) save() state {
	return state{refs: s.refs, depth: s.depth, methodClass: s.methodClass, callStack: len(s.callStack)}
}

func (s *session) restore(st state) {
	s.refs, s.depth, s.methodClass, s.callStack = st.refs, st.depth, st.methodClass, s.callStack[:st.callStack]
}

// scoped runs f one scope deeper. Expression references left in the inner
// scope are promoted to the current scope or discarded.
func (s *session) scoped(promote bool, f func()) {
	s.depth++
	defer func() { s.depth-- }()

	f()

	if promote {
		outer := s.depth - 1
		s.refs.ReplaceExprs(s.depth, func(r ref.Ref) (ref.Ref, bool) { return r.AsExpr(outer), true })
	} else {
		s.refs.DiscardExprs(s.depth)
	}
}

// checkInvariants verifies that no expression reference survives statement n.
func (s *session) checkInvariants(n tree.Stmt) {
	if !s.invariants {
		return
	}

	for r := range s.refs.All() {
		if r.Kind() == ref.KindExpr && r.Depth() >= s.depth {
			s.fail(n, ErrInvariant, "%s survives %T at depth %d", r, n, s.depth)
		}
	}
}
