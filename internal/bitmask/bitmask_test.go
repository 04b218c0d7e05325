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

package bitmask_test

import (
	"slices"
	"testing"

	. "fillmore-labs.com/thisescape/internal/bitmask"
)

type testFlag uint8

const (
	flagA testFlag = 1 << iota
	flagB
	flagC
)

func TestBitMask(t *testing.T) {
	t.Parallel()

	b := New(flagA, flagC)

	if !b.Enabled(flagA) || b.Enabled(flagB) || !b.Enabled(flagC) {
		t.Errorf("Enabled mismatch for %08b", b.Value())
	}

	if got, want := b.Len(), 2; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}

	if got, want := slices.Collect(b.All()), []testFlag{flagA, flagC}; !slices.Equal(got, want) {
		t.Errorf("All() = %v, want %v", got, want)
	}

	b.Set(flagA, false)

	if !b.Only(flagC) {
		t.Errorf("Only(flagC) = false for %08b", b.Value())
	}

	if u := b.Union(New(flagB)); u != New(flagB, flagC) {
		t.Errorf("Union() = %08b, want %08b", u.Value(), New(flagB, flagC).Value())
	}

	var empty BitMask[testFlag]
	if !empty.Empty() || empty.Len() != 0 {
		t.Errorf("zero value is not empty")
	}
}
