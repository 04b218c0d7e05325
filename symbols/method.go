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

package symbols

import "go/token"

// ConstructorName is the name of every constructor.
const ConstructorName = "<init>"

// Method is a method or constructor.
type Method struct {
	object
	params []*Var
	result *Class
	ctor   bool
}

// NewMethod creates a method declared in owner and adds it to the methods of owner.
func NewMethod(pos token.Pos, owner *Class, name string, flags Flags, params ...*Var) *Method {
	return newMethod(pos, owner, name, flags, false, params)
}

// NewConstructor creates a constructor of owner and adds it to the methods of owner.
func NewConstructor(pos token.Pos, owner *Class, flags Flags, params ...*Var) *Method {
	return newMethod(pos, owner, ConstructorName, flags, true, params)
}

func newMethod(pos token.Pos, owner *Class, name string, flags Flags, ctor bool, params []*Var) *Method {
	m := &Method{object: object{name: name, flags: flags, owner: owner, pos: pos}, params: params, ctor: ctor}
	for _, p := range params {
		p.setOwner(m)
	}

	if owner != nil {
		owner.methods = append(owner.methods, m)
	}

	return m
}

// Class returns the class declaring m.
func (m *Method) Class() *Class {
	c, _ := m.owner.(*Class)

	return c
}

// SetResult sets the declared result type, nil for void and primitive results.
func (m *Method) SetResult(result *Class) { m.result = result }

// Result returns the declared result type, nil for void and primitive results.
func (m *Method) Result() *Class { return m.result }

// Params returns the formal parameters.
func (m *Method) Params() []*Var { return m.params }

// Arity returns the number of formal parameters.
func (m *Method) Arity() int { return len(m.params) }

// IsConstructor reports whether m is a constructor.
func (m *Method) IsConstructor() bool { return m.ctor }

// IsStatic reports whether m is a static method.
func (m *Method) IsStatic() bool { return m.flags.Has(Static) }

// IsPrivate reports whether m is private.
func (m *Method) IsPrivate() bool { return m.flags.Has(Private) }

// IsFinal reports whether m is declared final.
func (m *Method) IsFinal() bool { return m.flags.Has(Final) }

// IsNative reports whether m is implemented outside the program.
func (m *Method) IsNative() bool { return m.flags.Has(Native) }

// IsPublicOrProtected reports whether m is accessible from subclasses in other packages.
func (m *Method) IsPublicOrProtected() bool { return m.flags.Has(Public | Protected) }

func (m *Method) String() string {
	if c := m.Class(); c != nil {
		return c.QualifiedName() + "." + m.name
	}

	return m.name
}

// Overrides reports whether m overrides other as a member of origin.
//
// A method overrides itself. Constructors, static and private methods never
// override other methods.
func (m *Method) Overrides(other *Method, origin *Class) bool {
	switch {
	case m == nil || other == nil:
		return false

	case m == other:
		return true

	case m.ctor || other.ctor, m.IsStatic() || other.IsStatic(), other.IsPrivate():
		return false

	case m.name != other.name || len(m.params) != len(other.params):
		return false
	}

	for i, p := range m.params {
		if p.typ != other.params[i].typ {
			return false
		}
	}

	owner, base := m.Class(), other.Class()
	if !owner.IsSubclass(base) || !origin.IsSubclass(owner) {
		return false
	}

	// package private methods are only overridden in the same package
	if !other.flags.Has(Public|Protected) && owner.Package() != base.Package() {
		return false
	}

	return true
}
