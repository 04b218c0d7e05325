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
	"strings"
)

// ClassKind distinguishes where a class is declared.
type ClassKind uint8

const (
	// TopLevelClass is declared directly in a package.
	TopLevelClass ClassKind = iota

	// MemberClass is declared as a member of another class.
	MemberClass

	// LocalClass is declared in a method body or initializer.
	LocalClass

	// AnonymousClass is declared by an instance creation expression with a body.
	AnonymousClass

	// ArrayClass is the synthetic class of an array type.
	ArrayClass
)

// Class is a class, interface or array type.
type Class struct {
	object
	kind       ClassKind
	super      *Class
	interfaces []*Class
	methods    []*Method
	elem       *Class
	array      *Class
	outer      bool
}

// NewClass creates a class declared in owner, which is a [*Package] for top
// level classes, a [*Class] for member classes and a [*Method] or [*Var] (field
// initializer) for local and anonymous classes.
//
// Whether the class has an outer instance is derived from kind, flags and
// owner and can be overridden with [Class.SetOuterInstance].
func NewClass(pos token.Pos, owner Symbol, name string, flags Flags, kind ClassKind) *Class {
	c := &Class{object: object{name: name, flags: flags, owner: owner, pos: pos}, kind: kind}
	c.outer = c.defaultOuter()

	return c
}

func (c *Class) defaultOuter() bool {
	if c.kind == TopLevelClass || c.flags.Has(Static|Interface) {
		return false
	}

	switch o := c.owner.(type) {
	case *Class:
		return !o.flags.Has(Interface) || c.kind != MemberClass

	case *Method:
		return !o.IsStatic()

	case *Var:
		return !o.IsStatic()

	default:
		return false
	}
}

// ArrayOf returns the array class with element type elem. It memoizes the
// result on elem and must not be called concurrently for the same elem.
func ArrayOf(elem *Class) *Class {
	if elem.array == nil {
		elem.array = &Class{
			object: object{name: elem.name + "[]", flags: Public | Final, owner: elem.owner},
			kind:   ArrayClass,
			super:  Object,
			elem:   elem,
		}
	}

	return elem.array
}

// SetSuper sets the superclass.
func (c *Class) SetSuper(super *Class) { c.super = super }

// AddInterfaces adds implemented or extended interfaces.
func (c *Class) AddInterfaces(interfaces ...*Class) {
	c.interfaces = append(c.interfaces, interfaces...)
}

// SetOuterInstance overrides whether instances of c hold a reference to an
// instance of the enclosing class.
func (c *Class) SetOuterInstance(outer bool) { c.outer = outer }

// Kind returns where the class is declared.
func (c *Class) Kind() ClassKind { return c.kind }

// Super returns the superclass, nil for [Object] and interfaces.
func (c *Class) Super() *Class { return c.super }

// Interfaces returns the directly implemented interfaces.
func (c *Class) Interfaces() []*Class { return c.interfaces }

// Methods returns the methods and constructors declared in c.
func (c *Class) Methods() []*Method { return c.methods }

// Elem returns the element type of an array class.
func (c *Class) Elem() *Class { return c.elem }

// IsArray reports whether c is an array class.
func (c *Class) IsArray() bool { return c != nil && c.kind == ArrayClass }

// IsFinal reports whether c can't be extended.
func (c *Class) IsFinal() bool { return c.flags.Has(Final) }

// IsSealed reports whether c restricts its permitted subclasses.
func (c *Class) IsSealed() bool { return c.flags.Has(Sealed) }

// IsPublic reports whether c is declared public.
func (c *Class) IsPublic() bool { return c.flags.Has(Public) }

// IsInterface reports whether c is an interface.
func (c *Class) IsInterface() bool { return c.flags.Has(Interface) }

// IsLocalOrAnonymous reports whether c is declared in a code block.
func (c *Class) IsLocalOrAnonymous() bool {
	return c.kind == LocalClass || c.kind == AnonymousClass
}

// IsAnonymous reports whether c is an anonymous class.
func (c *Class) IsAnonymous() bool { return c.kind == AnonymousClass }

// HasOuterInstance reports whether instances of c hold a reference to an
// instance of the enclosing class.
func (c *Class) HasOuterInstance() bool { return c.outer }

// EnclosingClass returns the innermost class c is declared in, or nil for top
// level classes.
func (c *Class) EnclosingClass() *Class {
	return enclosingClass(c.owner)
}

func enclosingClass(s Symbol) *Class {
	for ; s != nil; s = s.Owner() {
		if c, ok := s.(*Class); ok {
			return c
		}
	}

	return nil
}

// Package returns the package c is declared in.
func (c *Class) Package() *Package {
	for s := c.owner; s != nil; s = s.Owner() {
		if p, ok := s.(*Package); ok {
			return p
		}
	}

	return nil
}

// QualifiedName returns the dot separated name of c including its package and
// enclosing classes.
func (c *Class) QualifiedName() string {
	var parts []string
	for s := Symbol(c); s != nil; s = s.Owner() {
		switch s := s.(type) {
		case *Class, *Package:
			if name := s.Name(); name != "" {
				parts = append(parts, name)
			}
		}
	}

	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}

	return strings.Join(parts, ".")
}

func (c *Class) String() string {
	if c == nil {
		return "<nil>"
	}

	return c.QualifiedName()
}

// IsSubclass reports whether c is base or inherits from it.
func (c *Class) IsSubclass(base *Class) bool {
	switch {
	case c == nil || base == nil:
		return false

	case c == base, base == Object:
		return true
	}

	if c.super.IsSubclass(base) {
		return true
	}

	for _, i := range c.interfaces {
		if i.IsSubclass(base) {
			return true
		}
	}

	return false
}

// IsEnclosedBy reports whether c is outer or is declared, directly or
// transitively, inside outer.
func (c *Class) IsEnclosedBy(outer *Class) bool {
	for e := c; e != nil; e = e.EnclosingClass() {
		if e == outer {
			return true
		}
	}

	return false
}

// LookupMethod finds a non-constructor method by name and arity, searching c
// first and then its supertypes. It returns nil if there is no such method.
func (c *Class) LookupMethod(name string, arity int) *Method {
	if c == nil {
		return nil
	}

	if c.IsArray() {
		return Object.LookupMethod(name, arity)
	}

	for _, m := range c.methods {
		if m.name == name && !m.ctor && m.Arity() == arity {
			return m
		}
	}

	if m := c.super.LookupMethod(name, arity); m != nil {
		return m
	}

	for _, i := range c.interfaces {
		if m := i.LookupMethod(name, arity); m != nil {
			return m
		}
	}

	if c.super == nil && c != Object {
		return Object.LookupMethod(name, arity)
	}

	return nil
}
