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

// Package bitmask provides a small typed set of binary flags.
package bitmask

import (
	"iter"
	"math/bits"
)

// Flag is the constraint for flag types stored in a [BitMask].
type Flag interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 // constraints.Unsigned would be fine, but it lives in golang.org/x/exp
}

// BitMask is a generic type that represents a bitmask for managing binary flags.
//
// The zero value is the empty set. BitMask values are comparable and can be used
// as part of map keys.
type BitMask[T Flag] struct {
	value T
}

// New creates a new typed [BitMask] instance with the specified flags enabled.
func New[T Flag](flags ...T) BitMask[T] {
	var b BitMask[T]
	for _, flag := range flags {
		b.Enable(flag)
	}

	return b
}

// Set adjusts the bitmask by enabling or disabling the specified option.
func (b *BitMask[T]) Set(flag T, value bool) {
	if value {
		b.Enable(flag)
	} else {
		b.Disable(flag)
	}
}

// Enable sets the given flag in the current bitmask, enabling the specified option.
func (b *BitMask[T]) Enable(flag T) {
	b.value |= flag
}

// Disable removes the specified flag from the current bitmask, disabling the associated option.
func (b *BitMask[T]) Disable(flag T) {
	b.value &^= flag
}

// Enabled checks if any of the specified flags is enabled in the current bitmask.
func (b BitMask[T]) Enabled(flag T) bool {
	return b.value&flag != 0
}

// Empty reports whether no flag is set.
func (b BitMask[T]) Empty() bool {
	return b.value == 0
}

// Only reports whether flag is the only flag set.
func (b BitMask[T]) Only(flag T) bool {
	return b.value == flag
}

// Union returns the flags set in either b or o.
func (b BitMask[T]) Union(o BitMask[T]) BitMask[T] {
	return BitMask[T]{b.value | o.value}
}

// Len returns the number of flags set.
func (b BitMask[T]) Len() int {
	return bits.OnesCount64(uint64(b.value))
}

// All yields the individual flags set in b, lowest bit first.
func (b BitMask[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := b.value; v != 0; v &= v - 1 {
			if !yield(v & -v) {
				return
			}
		}
	}
}

// Value returns the raw flag bits.
func (b BitMask[T]) Value() T {
	return b.value
}
