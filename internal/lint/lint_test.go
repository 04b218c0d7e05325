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

package lint_test

import (
	"testing"

	. "fillmore-labs.com/thisescape/internal/lint"
	"fillmore-labs.com/thisescape/tree"
)

func TestAugment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		enabled     bool
		annotations []*tree.Annotation
		want        bool
	}{
		{
			name:    "Enabled",
			enabled: true,
			want:    true,
		},
		{
			name:    "Disabled",
			enabled: false,
			want:    false,
		},
		{
			name:        "Suppressed",
			enabled:     true,
			annotations: []*tree.Annotation{{Name: "SuppressWarnings", Args: []string{"unchecked", "this-escape"}}},
			want:        false,
		},
		{
			name:        "SuppressAll",
			enabled:     true,
			annotations: []*tree.Annotation{{Name: "java.lang.SuppressWarnings", Args: []string{"all"}}},
			want:        false,
		},
		{
			name:        "OtherCategory",
			enabled:     true,
			annotations: []*tree.Annotation{{Name: "SuppressWarnings", Args: []string{"unchecked"}}},
			want:        true,
		},
		{
			name:        "OtherAnnotation",
			enabled:     true,
			annotations: []*tree.Annotation{{Name: "Deprecated", Args: []string{"this-escape"}}},
			want:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := New(tt.enabled).Augment(tt.annotations).Enabled(); got != tt.want {
				t.Errorf("Enabled() = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestAugmentNested(t *testing.T) {
	t.Parallel()

	suppress := []*tree.Annotation{{Name: "SuppressWarnings", Args: []string{Category}}}

	outer := New(true).Augment(suppress)
	if inner := outer.Augment(nil); inner.Enabled() {
		t.Error("Suppression is not inherited by nested declarations")
	}
}
