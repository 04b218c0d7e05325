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

import (
	"go/token"
	"slices"
)

// Symbol is a named declaration.
type Symbol interface {
	// Name returns the simple name of the symbol.
	Name() string

	// Flags returns the declared modifiers.
	Flags() Flags

	// Owner returns the symbol this symbol is declared in, nil for packages.
	Owner() Symbol

	// Pos returns the declaration position, if known.
	Pos() token.Pos
}

// object holds the common symbol attributes.
type object struct {
	name  string
	flags Flags
	owner Symbol
	pos   token.Pos
}

func (o *object) Name() string   { return o.name }
func (o *object) Flags() Flags   { return o.flags }
func (o *object) Owner() Symbol  { return o.owner }
func (o *object) Pos() token.Pos { return o.pos }

// Module is a named module with a set of exported packages.
//
// A nil *Module stands for the unnamed module, which exports everything.
type Module struct {
	name    string
	exports []string
}

// NewModule creates a named module exporting the given package names.
func NewModule(name string, exports ...string) *Module {
	return &Module{name: name, exports: slices.Clone(exports)}
}

// Name returns the module name, "" for the unnamed module.
func (m *Module) Name() string {
	if m == nil {
		return ""
	}

	return m.name
}

// Exports reports whether the package is visible outside the module.
func (m *Module) Exports(pkg *Package) bool {
	if m == nil {
		return true // no module system restrictions
	}

	if pkg == nil {
		return false
	}

	return slices.Contains(m.exports, pkg.name)
}

// Package is a package in a module.
type Package struct {
	object
	module *Module
}

// NewPackage creates a package belonging to module, which may be nil.
func NewPackage(name string, module *Module) *Package {
	return &Package{object: object{name: name, flags: Public}, module: module}
}

// Module returns the module the package belongs to.
func (p *Package) Module() *Module { return p.module }

// VarKind distinguishes the different sorts of variables.
type VarKind uint8

const (
	// LocalVar is a local variable declared in a method body.
	LocalVar VarKind = iota

	// ParamVar is a method, lambda or catch parameter.
	ParamVar

	// FieldVar is a field of a class.
	FieldVar

	// BindingVar is a variable bound by a pattern match.
	BindingVar
)

// Var is a variable: local, parameter, field or pattern binding.
type Var struct {
	object
	kind VarKind
	typ  *Class
}

// NewVar creates a variable of the given kind and declared type.
// typ is nil for variables of primitive type.
func NewVar(pos token.Pos, owner Symbol, name string, typ *Class, kind VarKind, flags Flags) *Var {
	return &Var{object: object{name: name, flags: flags, owner: owner, pos: pos}, kind: kind, typ: typ}
}

// Kind returns the kind of variable.
func (v *Var) Kind() VarKind { return v.kind }

// Type returns the declared type, nil for primitive types.
func (v *Var) Type() *Class { return v.typ }

// IsLocal reports whether v is a local variable, a parameter or a pattern binding.
func (v *Var) IsLocal() bool {
	return v.kind != FieldVar
}

// IsStatic reports whether v is a static field.
func (v *Var) IsStatic() bool {
	return v.kind == FieldVar && v.flags.Has(Static)
}

// setOwner is used when parameters are created before their method.
func (v *Var) setOwner(owner Symbol) {
	if v.owner == nil {
		v.owner = owner
	}
}
