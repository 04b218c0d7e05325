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

package tree

import "iter"

// Constructors yields the constructor declarations of a class in declaration order.
func Constructors(c *ClassDecl) iter.Seq[*MethodDecl] {
	return func(yield func(*MethodDecl) bool) {
		for _, m := range c.Members {
			d, ok := m.(*MethodDecl)
			if !ok || !d.IsConstructor() {
				continue
			}

			if !yield(d) {
				return
			}
		}
	}
}

// InstanceInitializers yields the non-static field declarations with an
// initializer and the non-static initializer blocks of a class, in declaration order.
func InstanceInitializers(c *ClassDecl) iter.Seq[Member] {
	return func(yield func(Member) bool) {
		for _, m := range c.Members {
			switch d := m.(type) {
			case *VarDecl:
				if d.Init == nil || IsStatic(d) {
					continue
				}

			case *Block:
				if d.Static {
					continue
				}

			default:
				continue
			}

			if !yield(m) {
				return
			}
		}
	}
}

// Methods yields the method and constructor declarations of a class.
func Methods(c *ClassDecl) iter.Seq[*MethodDecl] {
	return func(yield func(*MethodDecl) bool) {
		for _, m := range c.Members {
			d, ok := m.(*MethodDecl)
			if !ok {
				continue
			}

			if !yield(d) {
				return
			}
		}
	}
}
