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

package analyzer_test

import (
	"bytes"
	"flag"
	"log/slog"
	"strings"
	"testing"

	"golang.org/x/tools/go/analysis"

	. "fillmore-labs.com/thisescape/analyzer"
	"fillmore-labs.com/thisescape/internal/testtree"
	"fillmore-labs.com/thisescape/symbols"
	"fillmore-labs.com/thisescape/tree"
)

// publisher creates a class publishing this from a private helper called by
// its constructor, and from a field initializer.
func publisher(b *testtree.Builder) *tree.CompilationUnit {
	_, register := b.Library()

	a := b.Class("Publisher", symbols.Public)
	f := b.Field(a, "self", symbols.Object, symbols.NoFlags)
	field := b.VarDecl(f, b.Static(register, b.This()))
	p := b.Param("o", symbols.Object)
	publish := b.Method(a, "publish", symbols.Private, []*symbols.Var{p}, b.Expr(b.Static(register, b.Ident(p))))
	ctor := b.Ctor(a, symbols.Public, nil, b.Expr(b.Call(nil, publish.Sym, b.This())))

	return b.Unit(b.ClassDecl(a, field, ctor, publish))
}

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		options Option
		want    []int // related locations per diagnostic
	}{
		{
			name: "Default",
			want: []int{0, 1},
		},
		{
			name:    "NoInitializers",
			options: Options{WithInitializers(false), WithInvariants(true)},
			want:    []int{1},
		},
		{
			name:    "Disabled",
			options: WithEnabled(false),
			want:    nil,
		},
		{
			name:    "NilOption",
			options: Options{nil, Options{WithInitializers(true)}},
			want:    []int{0, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := testtree.New(t, "p")

			var related []int
			report := func(d analysis.Diagnostic) {
				if !strings.HasPrefix(d.Message, "Possible 'this' escape") {
					t.Errorf("Unexpected diagnostic %q", d.Message)
				}

				related = append(related, len(d.Related))
			}

			if err := New(tt.options).Run(t.Context(), publisher(b), report); err != nil {
				t.Fatalf("Run failed: %v", err)
			}

			if len(related) != len(tt.want) {
				t.Fatalf("Expected %d diagnostics, got %d", len(tt.want), len(related))
			}

			for i, n := range tt.want {
				if related[i] != n {
					t.Errorf("Diagnostic %d: expected %d related locations, got %d", i, n, related[i])
				}
			}
		})
	}
}

func TestLogger(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	b := testtree.New(t, "p")
	if err := New(WithLogger(logger)).Run(t.Context(), publisher(b), func(analysis.Diagnostic) {}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if got := out.String(); !strings.Contains(got, "Possible this escape") || !strings.Contains(got, "warnings=2") {
		t.Errorf("Unexpected log output %q", got)
	}
}

func TestLogValue(t *testing.T) {
	t.Parallel()

	opts := Options{WithEnabled(true), nil, Options{WithInvariants(false)}, WithLogger(nil)}

	var out bytes.Buffer
	slog.New(slog.NewTextHandler(&out, nil)).Info("test", opts.LogAttr())

	const want = "options.enabled=true options.nil=<nil> options.invariants=false options.logger=false"
	if got := out.String(); !strings.Contains(got, want) {
		t.Errorf("Got %q, want %q", got, want)
	}
}

func TestRegisterFlags(t *testing.T) {
	t.Parallel()

	a := New()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	a.RegisterFlags(fs)

	if err := fs.Parse([]string{"-initializers=false", "-invariants"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	for name, want := range map[string]string{"enabled": "true", "initializers": "false", "invariants": "true"} {
		f := fs.Lookup(name)
		if f == nil {
			t.Errorf("Flag %q not registered", name)

			continue
		}

		if got := f.Value.String(); got != want {
			t.Errorf("Flag %q = %s, want %s", name, got, want)
		}
	}

	var related []int
	if err := a.Run(t.Context(), publisher(testtree.New(t, "p")), func(d analysis.Diagnostic) { related = append(related, len(d.Related)) }); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(related) != 1 || related[0] != 1 {
		t.Errorf("Expected one constructor diagnostic, got %v", related)
	}
}
