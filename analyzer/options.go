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
	"log/slog"

	"fillmore-labs.com/lazyguard/internal/config"
)

// Option configures specific behavior of a [New] lazyguard analyzer.
type Option interface {
	apply(r *runOptions)
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

func (o Options) apply(r *runOptions) {
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

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *runOptions) {
	r.behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithAliases is an [Option] to also report variables that copy an
// already-declared lazy expression value. Off by default: aliasing an
// existing value is not the deduction hazard itself.
func WithAliases(aliases bool) Option { return aliasesOption{aliases: aliases} }

type aliasesOption struct{ aliases bool }

func (o aliasesOption) apply(r *runOptions) {
	r.behavior.Set(config.ReportAliases, o.aliases)
}

func (o aliasesOption) LogAttr() slog.Attr {
	return slog.Bool("aliases", o.aliases)
}

// WithFixes is an [Option] to configure whether diagnostics carry a
// suggested fix appending the materializing call.
func WithFixes(fixes bool) Option { return fixesOption{fixes: fixes} }

type fixesOption struct{ fixes bool }

func (o fixesOption) apply(r *runOptions) {
	r.behavior.Set(config.SuggestFixes, o.fixes)
}

func (o fixesOption) LogAttr() slog.Attr {
	return slog.Bool("fixes", o.fixes)
}

// WithLazyTypes is an [Option] to configure the named types recognized as
// lazy composites, in "package/path.Name" form.
func WithLazyTypes(types ...string) Option { return lazyTypesOption{types: types} }

type lazyTypesOption struct{ types []string }

func (o lazyTypesOption) apply(r *runOptions) {
	r.lazyTypes = o.types
}

func (o lazyTypesOption) LogAttr() slog.Attr {
	return slog.Any("lazy-types", o.types)
}

// WithValueTypes is an [Option] to configure the named types recognized as
// storage-owning value types, in "package/path.Name" form.
func WithValueTypes(types ...string) Option { return valueTypesOption{types: types} }

type valueTypesOption struct{ types []string }

func (o valueTypesOption) apply(r *runOptions) {
	r.valueTypes = o.types
}

func (o valueTypesOption) LogAttr() slog.Attr {
	return slog.Any("value-types", o.types)
}

// WithEvalMethods is an [Option] to configure the names of materializing
// operations. The first name is the one suggested fixes append.
func WithEvalMethods(methods ...string) Option { return evalMethodsOption{methods: methods} }

type evalMethodsOption struct{ methods []string }

func (o evalMethodsOption) apply(r *runOptions) {
	r.evalMethods = o.methods
}

func (o evalMethodsOption) LogAttr() slog.Attr {
	return slog.Any("eval-methods", o.methods)
}
