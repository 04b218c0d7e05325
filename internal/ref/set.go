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

package ref

import (
	"cmp"
	"iter"
	"maps"
	"slices"
	"strings"
)

// Set is a set of references, the abstract machine state of the analysis.
//
// The zero value is not usable; create sets with [NewSet].
type Set struct {
	refs map[Ref]struct{}
}

// NewSet creates a set containing refs.
func NewSet(refs ...Ref) Set {
	s := Set{refs: make(map[Ref]struct{}, len(refs))}
	for _, r := range refs {
		s.refs[r] = struct{}{}
	}

	return s
}

// Len returns the number of references in s.
func (s Set) Len() int { return len(s.refs) }

// Empty reports whether s contains no references.
func (s Set) Empty() bool { return len(s.refs) == 0 }

// Add adds r to s.
func (s Set) Add(r Ref) { s.refs[r] = struct{}{} }

// AddAll adds all refs to s.
func (s Set) AddAll(refs iter.Seq[Ref]) {
	for r := range refs {
		s.refs[r] = struct{}{}
	}
}

// Contains reports whether r is in s.
func (s Set) Contains(r Ref) bool {
	_, ok := s.refs[r]

	return ok
}

// Clone returns an independent copy of s.
func (s Set) Clone() Set { return Set{refs: maps.Clone(s.refs)} }

// Equal reports whether s and o contain the same references.
func (s Set) Equal(o Set) bool { return maps.Equal(s.refs, o.refs) }

// All yields the references of s in a deterministic order.
func (s Set) All() iter.Seq[Ref] {
	return slices.Values(s.sorted())
}

// Find returns the references of the given kind satisfying pred, without
// removing them. A nil pred matches every reference of the kind.
func (s Set) Find(kind Kind, pred func(Ref) bool) []Ref {
	var found []Ref

	for _, r := range s.sorted() {
		if r.kind == kind && (pred == nil || pred(r)) {
			found = append(found, r)
		}
	}

	return found
}

// Extract removes and returns the references of the given kind satisfying pred.
func (s Set) Extract(kind Kind, pred func(Ref) bool) []Ref {
	found := s.Find(kind, pred)
	for _, r := range found {
		delete(s.refs, r)
	}

	return found
}

// Discard removes the references satisfying pred and reports whether any were removed.
func (s Set) Discard(pred func(Ref) bool) bool {
	n := len(s.refs)
	maps.DeleteFunc(s.refs, func(r Ref, _ struct{}) bool { return pred(r) })

	return len(s.refs) != n
}

// ExtractExprs removes and returns the expression references at depth.
func (s Set) ExtractExprs(depth int) []Ref {
	return s.Extract(KindExpr, atDepth(depth))
}

// DiscardExprs removes the expression references at depth and reports
// whether any were removed.
func (s Set) DiscardExprs(depth int) bool {
	return s.Discard(func(r Ref) bool { return r.kind == KindExpr && r.depth == depth })
}

// ReplaceExprs replaces every expression reference at depth with its image
// under mapping. References mapping to false are dropped.
func (s Set) ReplaceExprs(depth int, mapping func(Ref) (Ref, bool)) {
	for _, r := range s.ExtractExprs(depth) {
		if m, ok := mapping(r); ok {
			s.Add(m)
		}
	}
}

func atDepth(depth int) func(Ref) bool {
	return func(r Ref) bool { return r.depth == depth }
}

// sorted returns the references ordered by kind, depth, variable, type and indirections.
func (s Set) sorted() []Ref {
	return slices.SortedFunc(maps.Keys(s.refs), compare)
}

func compare(a, b Ref) int {
	if c := cmp.Compare(a.kind, b.kind); c != 0 {
		return c
	}

	if c := cmp.Compare(a.depth, b.depth); c != 0 {
		return c
	}

	if c := cmp.Compare(symPos(a), symPos(b)); c != 0 {
		return c
	}

	if c := strings.Compare(a.tsym.String(), b.tsym.String()); c != 0 {
		return c
	}

	return cmp.Compare(a.ind.Value(), b.ind.Value())
}

func symPos(r Ref) int {
	if r.sym == nil {
		return -1
	}

	return int(r.sym.Pos())
}

func (s Set) String() string {
	var b strings.Builder

	b.WriteByte('{') // ignore error

	for i, r := range s.sorted() {
		if i > 0 {
			b.WriteString(", ") // ignore error
		}

		b.WriteString(r.String()) // ignore error
	}

	b.WriteByte('}') // ignore error

	return b.String()
}
