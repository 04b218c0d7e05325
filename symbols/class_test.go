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

package symbols_test

import (
	"go/token"
	"testing"

	. "fillmore-labs.com/thisescape/symbols"
)

type hierarchy struct {
	pkg, other            *Package
	base, derived, iface  *Class
	member, static, local *Class
	anon, inIface         *Class
	method                *Method
}

func newHierarchy() hierarchy {
	var h hierarchy

	h.pkg = NewPackage("p", nil)
	h.other = NewPackage("q", nil)

	h.iface = NewClass(token.NoPos, h.pkg, "I", Public|Interface|Abstract, TopLevelClass)

	h.base = NewClass(token.NoPos, h.pkg, "Base", Public, TopLevelClass)
	h.base.SetSuper(Object)
	h.base.AddInterfaces(h.iface)

	h.derived = NewClass(token.NoPos, h.other, "Derived", Public, TopLevelClass)
	h.derived.SetSuper(h.base)

	h.member = NewClass(token.NoPos, h.base, "Member", Public, MemberClass)
	h.static = NewClass(token.NoPos, h.base, "Nested", Public|Static, MemberClass)
	h.inIface = NewClass(token.NoPos, h.iface, "Impl", Public, MemberClass)

	h.method = NewMethod(token.NoPos, h.base, "run", Public)
	h.local = NewClass(token.NoPos, h.method, "Local", NoFlags, LocalClass)
	h.anon = NewClass(token.NoPos, NewMethod(token.NoPos, h.base, "create", Public|Static), "", Final, AnonymousClass)

	return h
}

func TestQualifiedName(t *testing.T) {
	t.Parallel()

	h := newHierarchy()

	tests := [...]struct {
		class *Class
		want  string
	}{
		{class: h.base, want: "p.Base"},
		{class: h.member, want: "p.Base.Member"},
		{class: h.local, want: "p.Base.Local"},
		{class: Object, want: ObjectName},
		{class: ArrayOf(h.base), want: "p.Base[]"},
		{class: nil, want: "<nil>"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			if got := tt.class.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOuterInstance(t *testing.T) {
	t.Parallel()

	h := newHierarchy()

	tests := [...]struct {
		name  string
		class *Class
		want  bool
	}{
		{name: "top_level", class: h.base, want: false},
		{name: "inner", class: h.member, want: true},
		{name: "static_nested", class: h.static, want: false},
		{name: "interface_member", class: h.inIface, want: false},
		{name: "local", class: h.local, want: true},
		{name: "anonymous_in_static", class: h.anon, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.class.HasOuterInstance(); got != tt.want {
				t.Errorf("HasOuterInstance() = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestHierarchy(t *testing.T) {
	t.Parallel()

	h := newHierarchy()

	if !h.derived.IsSubclass(h.base) || !h.derived.IsSubclass(h.iface) || !h.derived.IsSubclass(Object) {
		t.Error("Expected Derived to inherit from Base, I and Object")
	}

	if h.base.IsSubclass(h.derived) || h.iface.IsSubclass(h.base) {
		t.Error("Unexpected inheritance")
	}

	if !h.member.IsEnclosedBy(h.base) || !h.local.IsEnclosedBy(h.base) || h.base.IsEnclosedBy(h.member) {
		t.Error("Unexpected enclosing classes")
	}

	if got := h.local.EnclosingClass(); got != h.base {
		t.Errorf("EnclosingClass() = %s, want %s", got, h.base)
	}

	if got := h.local.Package(); got != h.pkg {
		t.Errorf("Package() = %v, want %v", got, h.pkg)
	}

	if !h.local.IsLocalOrAnonymous() || !h.anon.IsAnonymous() || h.member.IsLocalOrAnonymous() {
		t.Error("Unexpected local classes")
	}
}

func TestLookupMethod(t *testing.T) {
	t.Parallel()

	h := newHierarchy()
	abstract := NewMethod(token.NoPos, h.iface, "apply", Public|Abstract,
		NewVar(token.NoPos, nil, "x", Object, ParamVar, NoFlags))

	tests := [...]struct {
		name  string
		class *Class
		arity int
		want  *Method
	}{
		{name: "run", class: h.derived, arity: 0, want: h.method},
		{name: "apply", class: h.derived, arity: 1, want: abstract},
		{name: "apply", class: h.derived, arity: 0, want: nil},
		{name: "toString", class: h.iface, arity: 0, want: Object.LookupMethod("toString", 0)},
		{name: "hashCode", class: ArrayOf(h.base), arity: 0, want: Object.LookupMethod("hashCode", 0)},
		{name: "<init>", class: h.base, arity: 0, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.class.LookupMethod(tt.name, tt.arity); got != tt.want {
				t.Errorf("LookupMethod(%q, %d) = %v, want %v", tt.name, tt.arity, got, tt.want)
			}
		})
	}
}
