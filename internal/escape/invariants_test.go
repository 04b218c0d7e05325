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
	"errors"
	"testing"

	"fillmore-labs.com/thisescape/internal/catalog"
	"fillmore-labs.com/thisescape/internal/lint"
	"fillmore-labs.com/thisescape/internal/ref"
	"fillmore-labs.com/thisescape/internal/testtree"
	"fillmore-labs.com/thisescape/symbols"
	"fillmore-labs.com/thisescape/tree"
)

func TestCheckInvariants(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name       string
		invariants bool
		wantErr    error
	}{
		{name: "enabled", invariants: true, wantErr: ErrInvariant},
		{name: "disabled", invariants: false, wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := testtree.New(t, "p")
			a := b.Class("A", symbols.Public)
			cat := catalog.Build(t.Context(), b.Unit(b.ClassDecl(a)), lint.New(true))

			s := newSession(t.Context(), New(cat, nil, tt.invariants), a)
			s.depth = 1
			s.refs.Add(ref.NewExpr(1, a, ref.Of(ref.Direct)))

			empty := &tree.Empty{Span: b.Span()}
			err := s.statement(empty)

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
			}

			if err == nil {
				return
			}

			var e *Error
			if !errors.As(err, &e) {
				t.Fatalf("Expected *Error, got %T", err)
			}

			if e.Pos != empty.Pos() {
				t.Errorf("Expected error at line %d, got %d", b.Line(empty.Pos()), b.Line(e.Pos))
			}
		})
	}
}

func TestStatementRepanics(t *testing.T) {
	t.Parallel()

	b := testtree.New(t, "p")
	a := b.Class("A", symbols.Public)
	cat := catalog.Build(t.Context(), b.Unit(b.ClassDecl(a)), lint.New(true))
	s := newSession(t.Context(), New(cat, nil, false), a)

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for nil dereference")
		}
	}()

	// runtime panics are not converted to analysis errors
	_ = s.statement(&tree.Synchronized{Span: b.Span(), Lock: (*tree.Ident)(nil)})
}
