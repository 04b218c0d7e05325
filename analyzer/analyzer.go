// Copyright 2025 Oliver Eikemeier. All Rights Reserved.
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
	"context"
	"flag"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/thisescape/internal/run"
	"fillmore-labs.com/thisescape/tree"
)

// Public API constants for the thisescape analyzer.
const (
	Name = "thisescape"
	Doc  = `thisescape detects references to an instance escaping before its construction completes`
	URL  = "https://pkg.go.dev/fillmore-labs.com/thisescape"
)

// Analyzer detects possible 'this' escapes in compilation units.
type Analyzer struct {
	r *run.Options
}

// New creates a new instance of the thisescape analyzer.
// It allows for programmatic configuration using [Option], which is useful
// for integrating the analyzer into other tools.
func New(opts ...Option) *Analyzer {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	return &Analyzer{r: r}
}

// Run analyzes one compilation unit and passes diagnostics to report, which
// is typically [analysis.Pass.Report].
//
// An error is returned for missing arguments and internal errors of the
// analysis. Internal errors are also reported as diagnostics.
func (a *Analyzer) Run(ctx context.Context, unit *tree.CompilationUnit, report func(analysis.Diagnostic)) error {
	return a.r.Run(ctx, unit, report)
}

// RegisterFlags binds the analyzer options to command line flags.
// A nil flag set value defaults to the program's command line.
func (a *Analyzer) RegisterFlags(flags *flag.FlagSet) {
	registerFlags(flags, a.r)
}

// Default is a pre-configured [Analyzer] with default options.
var Default = New()
