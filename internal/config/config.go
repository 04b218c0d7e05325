// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

// Package config holds the behavior flags of the analyzer.
package config

import "fillmore-labs.com/thisescape/internal/bitmask"

// BehaviorFlags represents optional analyzer behavior.
type BehaviorFlags uint8

const (
	// CheckInvariants verifies the reference set invariants after every
	// statement and reports violations as internal errors.
	CheckInvariants BehaviorFlags = 1 << iota

	// AnalyzeInitializers enables the analysis of instance field initializers
	// and instance initializer blocks.
	AnalyzeInitializers
)

// Behavior is the set of enabled [BehaviorFlags].
type Behavior = bitmask.BitMask[BehaviorFlags]

// DefaultBehavior returns the behavior used when no options are given.
func DefaultBehavior() Behavior {
	return bitmask.New(AnalyzeInitializers)
}
