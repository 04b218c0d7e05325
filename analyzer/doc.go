// Copyright 2025 Oliver Eikemeier. All Rights Reserved.
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

// Package analyzer implements the thisescape static analysis.
//
// # Overview
//
// ThisEscape detects constructors that make a reference to the instance under
// construction visible to code outside of the defining module before the
// instance is fully initialized. A subclass declared elsewhere can observe
// such an instance before its own constructor ran.
//
// # Example
//
//	public class Base {
//	    public Base() {
//	        Registry.register(this);  // possible 'this' escape
//	    }
//	}
//
// The analysis simulates calls to methods that can't be overridden from
// outside the module (private, static and final methods, constructors and
// methods of classes that can't be extended) and reports references reaching
// any other code. A warning lists the invocations leading to the leak.
//
// # Suppression
//
// Warnings are suppressed with @SuppressWarnings("this-escape") on the class,
// constructor, method or field.
package analyzer
