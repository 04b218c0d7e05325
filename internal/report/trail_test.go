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

package report_test

import (
	"slices"
	"testing"

	. "fillmore-labs.com/thisescape/internal/report"
)

func TestCompare(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		a, b Trail
		want int
	}{
		{name: "equal", a: Trail{1, 2}, b: Trail{1, 2}, want: 0},
		{name: "less", a: Trail{1, 2}, b: Trail{1, 3}, want: -1},
		{name: "greater", a: Trail{2}, b: Trail{1, 5}, want: 1},
		{name: "prefix_first", a: Trail{1}, b: Trail{1, 2}, want: -1},
		{name: "extension_last", a: Trail{1, 2, 3}, b: Trail{1, 2}, want: 1},
		{name: "empty", a: nil, b: Trail{1}, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestHasPrefix(t *testing.T) {
	t.Parallel()

	tr := Trail{1, 2, 3}

	if !tr.HasPrefix(Trail{1, 2}) {
		t.Error("Expected [1 2] to be a prefix")
	}

	if !tr.HasPrefix(nil) {
		t.Error("Expected empty trail to be a prefix")
	}

	if tr.HasPrefix(Trail{2}) {
		t.Error("Expected [2] not to be a prefix")
	}

	if tr.HasPrefix(Trail{1, 2, 3, 4}) {
		t.Error("Expected longer trail not to be a prefix")
	}
}

func TestCollapse(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name   string
		trails []Trail
		want   []Trail
	}{
		{
			name:   "none",
			trails: nil,
			want:   []Trail{},
		},
		{
			name:   "sorted",
			trails: []Trail{{5}, {3, 4}, {3, 1}},
			want:   []Trail{{3, 1}, {3, 4}, {5}},
		},
		{
			name:   "duplicate",
			trails: []Trail{{3, 4}, {3, 4}},
			want:   []Trail{{3, 4}},
		},
		{
			name:   "extension_dropped",
			trails: []Trail{{3, 4, 9}, {3, 4}},
			want:   []Trail{{3, 4}},
		},
		{
			name:   "shared_leak_site",
			trails: []Trail{{3, 7}, {3, 4}},
			want:   []Trail{{3, 4}, {3, 7}},
		},
		{
			name:   "empty_trail",
			trails: []Trail{{}, {2}},
			want:   []Trail{{2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Collapse(tt.trails)
			if !slices.EqualFunc(got, tt.want, func(a, b Trail) bool { return slices.Equal(a, b) }) {
				t.Errorf("Collapse(%v) = %v, want %v", tt.trails, got, tt.want)
			}
		})
	}
}
