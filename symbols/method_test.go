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

func TestOverrides(t *testing.T) {
	t.Parallel()

	h := newHierarchy()
	param := func() *Var { return NewVar(token.NoPos, nil, "x", Object, ParamVar, NoFlags) }

	baseRun := h.method
	packagePrivate := NewMethod(token.NoPos, h.base, "hidden", NoFlags)
	private := NewMethod(token.NoPos, h.base, "secret", Private)
	static := NewMethod(token.NoPos, h.base, "helper", Public|Static)

	derivedRun := NewMethod(token.NoPos, h.derived, "run", Public)
	overload := NewMethod(token.NoPos, h.derived, "run", Public, param())
	derivedHidden := NewMethod(token.NoPos, h.derived, "hidden", NoFlags)
	derivedSecret := NewMethod(token.NoPos, h.derived, "secret", Public)
	derivedHelper := NewMethod(token.NoPos, h.derived, "helper", Public|Static)

	tests := [...]struct {
		name  string
		m     *Method
		other *Method
		want  bool
	}{
		{name: "self", m: baseRun, other: baseRun, want: true},
		{name: "override", m: derivedRun, other: baseRun, want: true},
		{name: "overload", m: overload, other: baseRun, want: false},
		{name: "reverse", m: baseRun, other: derivedRun, want: false},
		{name: "package_private_other_package", m: derivedHidden, other: packagePrivate, want: false},
		{name: "private", m: derivedSecret, other: private, want: false},
		{name: "static", m: derivedHelper, other: static, want: false},
		{name: "nil", m: nil, other: baseRun, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.m.Overrides(tt.other, h.derived); got != tt.want {
				t.Errorf("Overrides() = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestMethod(t *testing.T) {
	t.Parallel()

	h := newHierarchy()
	p := NewVar(token.NoPos, nil, "x", Object, ParamVar, NoFlags)
	ctor := NewConstructor(token.NoPos, h.base, Protected, p)

	if !ctor.IsConstructor() || !ctor.IsPublicOrProtected() || ctor.Arity() != 1 || ctor.Class() != h.base {
		t.Errorf("Unexpected constructor %s", ctor)
	}

	if p.Owner() != ctor {
		t.Error("Expected parameter to be owned by its constructor")
	}

	if !IsObjectFinal(Object.LookupMethod("getClass", 0)) || IsObjectFinal(Object.LookupMethod("toString", 0)) {
		t.Error("Unexpected final methods of Object")
	}

	if got, want := (Public | Static | Final).String(), "final public static"; got != want {
		t.Errorf("Flags.String() = %q, want %q", got, want)
	}
}

func TestModule(t *testing.T) {
	t.Parallel()

	m := NewModule("m", "p")

	if !m.Exports(NewPackage("p", m)) || m.Exports(NewPackage("q", m)) || m.Exports(nil) {
		t.Error("Unexpected exports of named module")
	}

	var unnamed *Module
	if !unnamed.Exports(NewPackage("q", nil)) || unnamed.Name() != "" {
		t.Error("Expected the unnamed module to export everything")
	}
}

func TestVar(t *testing.T) {
	t.Parallel()

	h := newHierarchy()

	tests := [...]struct {
		name   string
		v      *Var
		local  bool
		static bool
	}{
		{name: "local", v: NewVar(token.NoPos, nil, "l", h.base, LocalVar, NoFlags), local: true},
		{name: "param", v: NewVar(token.NoPos, nil, "p", h.base, ParamVar, NoFlags), local: true},
		{name: "binding", v: NewVar(token.NoPos, nil, "b", h.base, BindingVar, NoFlags), local: true},
		{name: "field", v: NewVar(token.NoPos, h.base, "f", h.base, FieldVar, NoFlags)},
		{name: "static_field", v: NewVar(token.NoPos, h.base, "s", h.base, FieldVar, Static), static: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.v.IsLocal(); got != tt.local {
				t.Errorf("IsLocal() = %t, want %t", got, tt.local)
			}

			if got := tt.v.IsStatic(); got != tt.static {
				t.Errorf("IsStatic() = %t, want %t", got, tt.static)
			}
		})
	}
}
