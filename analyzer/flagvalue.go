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

package analyzer

import (
	"strconv"

	"fillmore-labs.com/thisescape/internal/config"
)

// behaviorFlag is a boolean [flag.Value] switching one flag of a [config.Behavior].
type behaviorFlag struct {
	behavior *config.Behavior
	flag     config.BehaviorFlags
}

func behaviorValue(behavior *config.Behavior, flag config.BehaviorFlags) *behaviorFlag {
	return &behaviorFlag{behavior: behavior, flag: flag}
}

// Set implements [flag.Value].
func (f *behaviorFlag) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}

	f.behavior.Set(f.flag, on)

	return nil
}

// String implements [flag.Value]. The zero value created by the flag package
// for usage messages reports false.
func (f *behaviorFlag) String() string {
	return strconv.FormatBool(f.enabled())
}

// Get implements [flag.Getter].
func (f *behaviorFlag) Get() any { return f.enabled() }

// IsBoolFlag allows the flag to be given without a value.
func (f *behaviorFlag) IsBoolFlag() bool { return true }

func (f *behaviorFlag) enabled() bool {
	return f != nil && f.behavior != nil && f.behavior.Enabled(f.flag)
}
