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

package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/golangci/plugin-module-register/register"
	"gopkg.in/yaml.v3"

	thisescape "fillmore-labs.com/thisescape/analyzer"
)

// Settings represents the configuration options for an instance of the analyzer.
type Settings struct {
	// Enabled enables the this-escape category where no annotation suppresses it.
	Enabled *bool `json:"enabled,omitzero" yaml:"enabled,omitempty"`
	// Invariants enables verification of internal invariants.
	Invariants *bool `json:"invariants,omitzero" yaml:"invariants,omitempty"`
	// Initializers enables the analysis of instance initializers.
	Initializers *bool `json:"initializers,omitzero" yaml:"initializers,omitempty"`
}

// Decode converts raw linter settings, as passed to a linter plugin, into [Settings].
func Decode(rawSettings any) (Settings, error) {
	return register.DecodeSettings[Settings](rawSettings)
}

// Load reads [Settings] from a YAML file.
func Load(name string) (Settings, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return Settings{}, err
	}

	s, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Settings{}, fmt.Errorf("settings %s: %w", name, err)
	}

	return s, nil
}

// Parse reads [Settings] from a YAML document. Unknown fields are rejected,
// an empty document yields empty settings.
func Parse(r io.Reader) (Settings, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Settings
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, err
	}

	return s, nil
}

// Options converts [Settings] into a list of [thisescape.Option] for the analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []thisescape.Option {
	var opts []thisescape.Option

	opts = appendOption(opts, s.Enabled, thisescape.WithEnabled)
	opts = appendOption(opts, s.Invariants, thisescape.WithInvariants)
	opts = appendOption(opts, s.Initializers, thisescape.WithInitializers)

	return opts
}

// appendOption appends a non-nil setting to a [thisescape.Option] list.
func appendOption[T any](opts []thisescape.Option, value *T, constructor func(T) thisescape.Option) []thisescape.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
