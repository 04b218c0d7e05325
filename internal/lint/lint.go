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

// Package lint tracks whether the escape warning category is enabled at a
// lexical position, taking global configuration and suppression annotations
// into account.
package lint

import (
	"strings"

	"fillmore-labs.com/thisescape/tree"
)

// Category is the warning category of the escape analysis.
const Category = "this-escape"

// suppressAll suppresses every warning category.
const suppressAll = "all"

// Lint is the warning configuration in effect at a lexical position.
// The zero value has the category disabled.
type Lint struct {
	enabled    bool
	suppressed bool
}

// New returns the configuration at the top of a compilation unit.
func New(enabled bool) Lint {
	return Lint{enabled: enabled}
}

// Augment returns the configuration for a declaration nested in the current
// position, carrying the given annotations.
func (l Lint) Augment(annotations []*tree.Annotation) Lint {
	if l.suppressed {
		return l
	}

	for _, a := range annotations {
		if Suppresses(a) {
			l.suppressed = true

			break
		}
	}

	return l
}

// Enabled reports whether warnings of the category are reported.
func (l Lint) Enabled() bool {
	return l.enabled && !l.suppressed
}

// Suppresses reports whether the annotation is a @SuppressWarnings naming
// the escape category or "all".
func Suppresses(a *tree.Annotation) bool {
	if a == nil || !isSuppressWarnings(a.Name) {
		return false
	}

	for _, arg := range a.Args {
		if c := strings.ToLower(strings.TrimSpace(arg)); c == Category || c == suppressAll {
			return true
		}
	}

	return false
}

func isSuppressWarnings(name string) bool {
	return name == "SuppressWarnings" || name == "java.lang.SuppressWarnings"
}
