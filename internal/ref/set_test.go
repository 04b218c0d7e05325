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

package ref_test

import (
	"go/token"
	"slices"
	"testing"

	. "fillmore-labs.com/thisescape/internal/ref"
	"fillmore-labs.com/thisescape/symbols"
)

func TestSet(t *testing.T) {
	t.Parallel()

	outer, inner, _ := classes()
	v := symbols.NewVar(token.Pos(7), nil, "v", outer, symbols.LocalVar, symbols.NoFlags)

	this := NewThis(outer, Of(Direct))
	expr1 := NewExpr(1, outer, Of(Direct))
	expr2 := NewExpr(2, inner, Of(Outer))
	variable := this.AsVar(v)

	s := NewSet(this, expr1, expr2, variable)

	if s.Len() != 4 || s.Empty() {
		t.Fatalf("Expected 4 references, got %s", s)
	}

	s.Add(this)
	if s.Len() != 4 {
		t.Errorf("Expected duplicates to be ignored, got %s", s)
	}

	c := s.Clone()
	if !c.Equal(s) {
		t.Fatalf("Expected clone %s to equal %s", c, s)
	}

	if got := c.ExtractExprs(2); !slices.Equal(got, []Ref{expr2}) {
		t.Errorf("ExtractExprs(2) = %v, want [%s]", got, expr2)
	}

	if c.Equal(s) || !s.Contains(expr2) || c.Contains(expr2) {
		t.Error("Expected clone to be independent")
	}

	if got := s.Find(KindThis, nil); !slices.Equal(got, []Ref{this}) {
		t.Errorf("Find(KindThis) = %v, want [%s]", got, this)
	}

	if got := s.Find(KindVar, func(r Ref) bool { return r.Var() == v }); !slices.Equal(got, []Ref{variable}) {
		t.Errorf("Find(KindVar) = %v, want [%s]", got, variable)
	}

	if s.DiscardExprs(3) {
		t.Error("Expected nothing to discard at depth 3")
	}

	if !s.DiscardExprs(1) || s.Contains(expr1) {
		t.Error("Expected expression at depth 1 to be discarded")
	}

	s.ReplaceExprs(2, func(r Ref) (Ref, bool) { return r.AsReturn(), true })
	if got := s.Extract(KindReturn, nil); !slices.Equal(got, []Ref{expr2.AsReturn()}) {
		t.Errorf("Extract(KindReturn) = %v, want [%s]", got, expr2.AsReturn())
	}

	s.ReplaceExprs(0, func(Ref) (Ref, bool) { return Ref{}, false })

	if !s.Discard(func(r Ref) bool { return r.Kind() == KindVar }) || s.Len() != 1 {
		t.Errorf("Expected only the receiver to remain, got %s", s)
	}
}

func TestSetOrder(t *testing.T) {
	t.Parallel()

	outer, inner, _ := classes()

	s := NewSet(
		NewExpr(2, outer, Of(Direct)),
		NewThis(outer, Of(Indirect)),
		NewExpr(1, inner, Of(Outer)),
		NewThis(outer, Of(Direct)),
	)

	want := []Ref{
		NewThis(outer, Of(Direct)),
		NewThis(outer, Of(Indirect)),
		NewExpr(1, inner, Of(Outer)),
		NewExpr(2, outer, Of(Direct)),
	}

	if got := slices.Collect(s.All()); !slices.Equal(got, want) {
		t.Errorf("All() = %v, want %v", got, want)
	}

	const str = "{ThisRef[tsym=p.Outer,ind=DIRECT], ThisRef[tsym=p.Outer,ind=INDIRECT], " +
		"ExprRef[depth=1,tsym=p.Outer.Inner,ind=OUTER], ExprRef[depth=2,tsym=p.Outer,ind=DIRECT]}"
	if got := s.String(); got != str {
		t.Errorf("String() = %q, want %q", got, str)
	}
}
