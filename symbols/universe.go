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

// ObjectName is the qualified name of the root class.
const ObjectName = "java.lang.Object"

// Object is the root of the class hierarchy.
var Object = newObject()

func newObject() *Class {
	lang := NewPackage("java.lang", nil)
	object := NewClass(token.NoPos, lang, "Object", Public, TopLevelClass)

	NewConstructor(token.NoPos, object, Public)
	NewMethod(token.NoPos, object, "getClass", Public|Final|Native)
	NewMethod(token.NoPos, object, "hashCode", Public|Native)
	NewMethod(token.NoPos, object, "equals", Public, NewVar(token.NoPos, nil, "obj", object, ParamVar, NoFlags))
	NewMethod(token.NoPos, object, "clone", Protected|Native)
	NewMethod(token.NoPos, object, "toString", Public)
	NewMethod(token.NoPos, object, "notify", Public|Final|Native)
	NewMethod(token.NoPos, object, "notifyAll", Public|Final|Native)
	NewMethod(token.NoPos, object, "wait", Public|Final)
	NewMethod(token.NoPos, object, "wait", Public|Final|Native, NewVar(token.NoPos, nil, "timeoutMillis", nil, ParamVar, NoFlags))
	NewMethod(token.NoPos, object, "finalize", Protected)

	return object
}

// IsObjectFinal reports whether m is a final method of [Object].
func IsObjectFinal(m *Method) bool {
	return m != nil && m.Class() == Object && m.IsFinal()
}
