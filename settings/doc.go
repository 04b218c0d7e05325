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

/*
Package settings provides configuration for the [thisescape] analyzer from
linter settings or YAML files.

# Usage

Configure the analyzer in a YAML file:

	---
	enabled: true
	invariants: false
	initializers: true

Then load and apply it:

	s, err := settings.Load("thisescape.yaml")
	if err != nil {
		return err
	}

	a := analyzer.New(s.Options()...)

Settings embedded in a linter configuration, such as the custom linter
settings of golangci-lint, are converted with [Decode].

[thisescape]: https://pkg.go.dev/fillmore-labs.com/thisescape/analyzer
*/
package settings
