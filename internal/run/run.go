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

// Package run drives the analysis of a compilation unit.
package run

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/trace"

	"fillmore-labs.com/thisescape/internal/catalog"
	"fillmore-labs.com/thisescape/internal/config"
	"fillmore-labs.com/thisescape/internal/escape"
	"fillmore-labs.com/thisescape/internal/lint"
	"fillmore-labs.com/thisescape/internal/report"
	"fillmore-labs.com/thisescape/tree"
)

var (
	// ErrNoUnit is returned when no compilation unit is given.
	ErrNoUnit = errors.New("no compilation unit")

	// ErrNoReporter is returned when no diagnostic sink is given.
	ErrNoReporter = errors.New("no reporter")
)

// Run executes the thisescape analyzer's pipeline on one compilation unit.
//
// Internal errors abort the analysis of the unit: they are reported as an
// "Internal Error" diagnostic and returned, and no escape warnings are reported.
func (o *Options) Run(ctx context.Context, unit *tree.CompilationUnit, reporter report.Reporter) error {
	if unit == nil {
		return fmt.Errorf("thisescape: %w", ErrNoUnit)
	}

	if reporter == nil {
		return fmt.Errorf("thisescape: %w", ErrNoReporter)
	}

	ctx, task := trace.NewTask(ctx, "ThisEscape")
	defer task.End()

	trace.Log(ctx, "unit", unit.Name)

	logger := o.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	// Stage 1: classify all methods and constructors
	cat := catalog.Build(ctx, unit, lint.New(o.Enabled))

	// Stage 2: interpret initializers and analyzable constructors
	a := escape.New(cat, logger, o.Behavior.Enabled(config.CheckInvariants))

	classes := cat.AnalyzableClasses()
	for _, class := range classes {
		if err := o.analyzeClass(ctx, logger, a, cat, class); err != nil {
			var e *escape.Error

			rng := tree.Span{From: class.Pos(), To: class.End()}
			if errors.As(err, &e) && e.Pos.IsValid() {
				rng = tree.Span{From: e.Pos, To: e.Pos}
			}

			report.InternalError(reporter, rng, "%v in class %s", err, class.Sym)

			return fmt.Errorf("thisescape: class %s: %w", class.Sym, err)
		}
	}

	// Stage 3: report collapsed leak trails
	n := report.Leaks(ctx, reporter, a.Trails())

	logger.LogAttrs(ctx, slog.LevelDebug, "Analyzed compilation unit",
		slog.String("unit", unit.Name),
		slog.Int("classes", len(classes)),
		slog.Int("warnings", n))

	return nil
}

// analyzeClass analyzes the initializers and every analyzable constructor of class.
func (o *Options) analyzeClass(ctx context.Context, logger *slog.Logger, a *escape.Analyzer, cat *catalog.Catalog, class *tree.ClassDecl) error {
	defer trace.StartRegion(ctx, "Class").End()

	trace.Log(ctx, "class", class.Sym.String())

	if o.Behavior.Enabled(config.AnalyzeInitializers) {
		if err := a.Initializers(ctx, class); err != nil {
			return err
		}
	}

	ctors := 0

	for ctor := range tree.Constructors(class) {
		if info, ok := cat.Lookup(ctor.Sym); !ok || !info.Analyzable {
			continue
		}

		ctors++

		if err := a.Constructor(ctx, class, ctor); err != nil {
			return err
		}
	}

	logger.LogAttrs(ctx, slog.LevelDebug, "Analyzed class",
		slog.String("class", class.Sym.String()),
		slog.Int("constructors", ctors))

	return nil
}
