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
	"log/slog"

	"fillmore-labs.com/thisescape/internal/config"
	"fillmore-labs.com/thisescape/internal/run"
)

// Option configures specific behavior of a [New] thisescape analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithEnabled is an [Option] to configure whether the this-escape category is
// enabled where no annotation suppresses it.
func WithEnabled(enabled bool) Option { return enabledOption{enabled: enabled} }

type enabledOption struct{ enabled bool }

func (o enabledOption) apply(r *run.Options) {
	r.Enabled = o.enabled
}

func (o enabledOption) LogAttr() slog.Attr {
	return slog.Bool("enabled", o.enabled)
}

// WithInvariants is an [Option] to verify internal invariants of the analysis.
func WithInvariants(invariants bool) Option { return invariantsOption{invariants: invariants} }

type invariantsOption struct{ invariants bool }

func (o invariantsOption) apply(r *run.Options) {
	r.Behavior.Set(config.CheckInvariants, o.invariants)
}

func (o invariantsOption) LogAttr() slog.Attr {
	return slog.Bool("invariants", o.invariants)
}

// WithInitializers is an [Option] to configure the analysis of instance
// field initializers and initializer blocks.
func WithInitializers(initializers bool) Option {
	return initializersOption{initializers: initializers}
}

type initializersOption struct{ initializers bool }

func (o initializersOption) apply(r *run.Options) {
	r.Behavior.Set(config.AnalyzeInitializers, o.initializers)
}

func (o initializersOption) LogAttr() slog.Attr {
	return slog.Bool("initializers", o.initializers)
}

// WithLogger is an [Option] to receive debug output of the analysis.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *run.Options) {
	r.Logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}
