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

import "strings"

// Flags are the modifiers of a symbol.
type Flags uint16

const (
	// keep-sorted start
	Abstract Flags = 1 << iota
	Final
	Interface
	Native
	Private
	Protected
	Public
	Sealed
	Static
	Varargs
	// keep-sorted end

	// NoFlags is the empty modifier set (package private).
	NoFlags Flags = 0
)

// Has reports whether any of the given flags are set.
func (f Flags) Has(flags Flags) bool {
	return f&flags != 0
}

var flagNames = [...]string{
	"abstract", "final", "interface", "native", "private",
	"protected", "public", "sealed", "static", "varargs",
}

func (f Flags) String() string {
	var b strings.Builder

	for i, name := range flagNames {
		if f&(1<<i) == 0 {
			continue
		}

		if b.Len() > 0 {
			b.WriteByte(' ') // ignore error
		}

		b.WriteString(name) // ignore error
	}

	return b.String()
}
