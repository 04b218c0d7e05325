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

package report

import (
	"cmp"
	"go/token"
	"slices"
)

// Trail is the synthetic call chain of a leak: the leak site first, followed
// by the invocation sites leading to it, outermost last.
type Trail []token.Pos

// Compare orders trails lexicographically by position. A trail that is a
// prefix of another sorts first.
func (t Trail) Compare(o Trail) int {
	for i := range min(len(t), len(o)) {
		if c := cmp.Compare(t[i], o[i]); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(t), len(o))
}

// HasPrefix reports whether p is a prefix of t.
func (t Trail) HasPrefix(p Trail) bool {
	return len(p) <= len(t) && slices.Equal(t[:len(p)], p)
}

// Collapse sorts trails and drops every trail extending the previously kept one.
func Collapse(trails []Trail) []Trail {
	sorted := slices.SortedFunc(slices.Values(trails), Trail.Compare)

	kept := sorted[:0]
	for _, t := range sorted {
		if len(t) == 0 {
			continue
		}

		if n := len(kept); n > 0 && t.HasPrefix(kept[n-1]) {
			continue
		}

		kept = append(kept, t)
	}

	return kept
}
