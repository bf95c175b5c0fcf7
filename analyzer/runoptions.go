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

package analyzer

import (
	"fmt"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"

	"fillmore-labs.com/lazyguard/internal/config"
)

// runOptions represent configuration runOptions for the lazyguard analyzer.
type runOptions struct {
	// behavior holds behavioral options.
	behavior config.Behavior

	// lazyTypes are the "package/path.Name" specifications of lazy composite families.
	lazyTypes []string

	// valueTypes are the "package/path.Name" specifications of storage-owning value types.
	valueTypes []string

	// evalMethods are the names of materializing operations.
	evalMethods []string
}

// makeRunOptions returns a [runOptions] struct with overriding [Options] applied.
func makeRunOptions(opts Options) *runOptions {
	r := defaultRunOptions()
	opts.apply(r)

	return r
}

// defaultRunOptions initializes and returns a new runOptions instance with default values.
func defaultRunOptions() *runOptions {
	return &runOptions{
		behavior:    config.NewBitMask(config.SuggestFixes),
		evalMethods: []string{"Eval"},
	}
}

// analyzer returns a lazyguard *[analysis.Analyzer] instance.
func (r *runOptions) analyzer() *analysis.Analyzer {
	a := &analysis.Analyzer{
		Name:     name,
		Doc:      doc,
		URL:      url,
		Run:      r.run,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
	}

	return a
}

// table builds the configured [config.TypeTable].
func (r *runOptions) table() (config.TypeTable, error) {
	lazy, err := config.ParseTypeNames(r.lazyTypes)
	if err != nil {
		return config.TypeTable{}, fmt.Errorf("lazyguard: lazy-types: %w", err)
	}

	value, err := config.ParseTypeNames(r.valueTypes)
	if err != nil {
		return config.TypeTable{}, fmt.Errorf("lazyguard: value-types: %w", err)
	}

	return config.NewTypeTable(lazy, value, r.evalMethods), nil
}
