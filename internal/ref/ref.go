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

// Package ref models the abstract values tracked by the escape analysis:
// references that may alias the instance under construction.
package ref

import (
	"fmt"
	"strings"

	"fillmore-labs.com/thisescape/internal/bitmask"
	"fillmore-labs.com/thisescape/symbols"
)

// Kind identifies the role of a [Ref].
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// KindThis is the receiver of the method or constructor being executed.
	KindThis Kind = iota // ThisRef

	// KindExpr is the value of the most recently evaluated expression at some scope depth.
	KindExpr // ExprRef

	// KindVar is the value of a local variable or parameter.
	KindVar // VarRef

	// KindReturn is a value returned from the method being executed.
	KindReturn // ReturnRef

	// KindYield is a value yielded from the switch expression being evaluated.
	KindYield // YieldRef
)

// Indirection describes how a value is related to the tracked instance.
type Indirection uint8

const (
	// Direct means the value is the tracked instance.
	Direct Indirection = 1 << iota

	// Outer means the tracked instance is the outer instance of the value.
	Outer

	// Indirect means the value may contain the tracked instance.
	Indirect
)

func (i Indirection) String() string {
	switch i {
	case Direct:
		return "DIRECT"

	case Outer:
		return "OUTER"

	case Indirect:
		return "INDIRECT"

	default:
		return fmt.Sprintf("Indirection(%d)", uint8(i))
	}
}

// Indirections is a set of [Indirection] values.
type Indirections = bitmask.BitMask[Indirection]

// Of returns the set of the given indirections.
func Of(indirections ...Indirection) Indirections {
	return bitmask.New(indirections...)
}

// Ref is a value that may alias the instance under construction.
//
// A Ref is comparable; two refs are equal when their kind, type, indirections
// and kind specific payload are equal. The set of indirections is never empty.
type Ref struct {
	kind  Kind
	tsym  *symbols.Class
	ind   Indirections
	depth int          // KindExpr
	sym   *symbols.Var // KindVar
}

// NewThis creates a receiver reference.
func NewThis(tsym *symbols.Class, ind Indirections) Ref {
	if ind.Empty() {
		panic("ref: empty indirections")
	}

	return Ref{kind: KindThis, tsym: tsym, ind: ind}
}

// NewExpr creates an expression reference at the given scope depth.
func NewExpr(depth int, tsym *symbols.Class, ind Indirections) Ref {
	return NewThis(tsym, ind).AsExpr(depth)
}

// Kind returns the role of the reference.
func (r Ref) Kind() Kind { return r.kind }

// Type returns the type currently ascribed to the value.
func (r Ref) Type() *symbols.Class { return r.tsym }

// Indirections returns the aliasing relationship to the tracked instance.
func (r Ref) Indirections() Indirections { return r.ind }

// Depth returns the scope depth of a [KindExpr] reference.
func (r Ref) Depth() int { return r.depth }

// Var returns the variable of a [KindVar] reference.
func (r Ref) Var() *symbols.Var { return r.sym }

// Direct reports whether the value may be the tracked instance itself.
func (r Ref) Direct() bool { return r.ind.Enabled(Direct) }

// AsThis relabels r as a receiver reference.
func (r Ref) AsThis() Ref { return Ref{kind: KindThis, tsym: r.tsym, ind: r.ind} }

// AsExpr relabels r as an expression reference at depth.
func (r Ref) AsExpr(depth int) Ref {
	return Ref{kind: KindExpr, tsym: r.tsym, ind: r.ind, depth: depth}
}

// AsVar relabels r as the value of variable sym.
func (r Ref) AsVar(sym *symbols.Var) Ref {
	return Ref{kind: KindVar, tsym: r.tsym, ind: r.ind, sym: sym}
}

// AsReturn relabels r as a returned value.
func (r Ref) AsReturn() Ref { return Ref{kind: KindReturn, tsym: r.tsym, ind: r.ind} }

// AsYield relabels r as a yielded value.
func (r Ref) AsYield() Ref { return Ref{kind: KindYield, tsym: r.tsym, ind: r.ind} }

// WithType returns r with the ascribed type replaced.
func (r Ref) WithType(tsym *symbols.Class) Ref {
	r.tsym = tsym

	return r
}

// ToOuter projects a reference to the outer instance of a new instance of
// class tsym: the tracked instance becomes reachable through the outer link.
func (r Ref) ToOuter(tsym *symbols.Class) (Ref, bool) {
	return r.transform(tsym, func(i Indirection) Indirection {
		if i == Direct {
			return Outer
		}

		return Indirect
	})
}

// FromOuter projects a reference to an inner instance onto its outer
// instance of class tsym. Only the [Outer] path survives, as [Direct].
func (r Ref) FromOuter(tsym *symbols.Class) (Ref, bool) {
	return r.transform(tsym, func(i Indirection) Indirection {
		if i == Outer {
			return Direct
		}

		return 0
	})
}

// ToIndirect projects a reference onto a value wrapping it, such as an array.
func (r Ref) ToIndirect() (Ref, bool) {
	return r.transform(r.tsym, func(Indirection) Indirection { return Indirect })
}

// FromIndirect projects a reference to a wrapping value onto an element of
// class tsym. Only the [Indirect] path survives, as [Direct].
func (r Ref) FromIndirect(tsym *symbols.Class) (Ref, bool) {
	return r.transform(tsym, func(i Indirection) Indirection {
		if i == Indirect {
			return Direct
		}

		return 0
	})
}

// transform maps every indirection of r. A zero result drops the path; the
// transform fails when no path remains.
func (r Ref) transform(tsym *symbols.Class, mapping func(Indirection) Indirection) (Ref, bool) {
	var ind Indirections
	for i := range r.ind.All() {
		if m := mapping(i); m != 0 {
			ind.Enable(m)
		}
	}

	if ind.Empty() {
		return Ref{}, false
	}

	r.tsym, r.ind = tsym, ind

	return r, true
}

func (r Ref) String() string {
	var b strings.Builder

	b.WriteString(r.kind.String()) // ignore error
	b.WriteByte('[')               // ignore error

	switch r.kind {
	case KindExpr:
		fmt.Fprintf(&b, "depth=%d,", r.depth) // ignore error

	case KindVar:
		fmt.Fprintf(&b, "sym=%s,", r.sym.Name()) // ignore error
	}

	fmt.Fprintf(&b, "tsym=%v,ind=", r.tsym) // ignore error

	first := true
	for i := range r.ind.All() {
		if !first {
			b.WriteByte('|') // ignore error
		}

		first = false

		b.WriteString(i.String()) // ignore error
	}

	b.WriteByte(']') // ignore error

	return b.String()
}
