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

// Package report turns leak trails into diagnostics.
package report

import (
	"context"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
)

// Category is the diagnostic category of escape warnings.
const Category = "this-escape"

// Messages of escape diagnostics.
const (
	LeakMessage = "Possible 'this' escape before subclass is fully initialized (this-escape)"
	ViaMessage  = "Previous possible 'this' escape happens here via invocation"
)

// Reporter receives diagnostics, typically [analysis.Pass.Report].
type Reporter func(analysis.Diagnostic)

// Leaks collapses the recorded trails and reports one diagnostic per
// remaining trail at its leak site, with one related location per invocation.
func Leaks(ctx context.Context, report Reporter, trails []Trail) int {
	if len(trails) == 0 {
		return 0
	}

	defer trace.StartRegion(ctx, "ReportLeaks").End()

	kept := Collapse(trails)
	for _, t := range kept {
		report(diagnostic(t))
	}

	return len(kept)
}

func diagnostic(t Trail) analysis.Diagnostic {
	d := analysis.Diagnostic{
		Pos:      t[0],
		Category: Category,
		Message:  LeakMessage,
	}

	if len(t) > 1 {
		d.Related = make([]analysis.RelatedInformation, 0, len(t)-1)
		for _, pos := range t[1:] {
			d.Related = append(d.Related, analysis.RelatedInformation{Pos: pos, Message: ViaMessage})
		}
	}

	return d
}
