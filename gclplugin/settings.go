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

package gclplugin

import lazyguard "fillmore-labs.com/lazyguard/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// LazyTypes lists the "package/path.Name" types treated as lazy composites.
	LazyTypes []string `json:"lazy-types,omitzero"`
	// ValueTypes lists the "package/path.Name" types treated as storage-owning values.
	ValueTypes []string `json:"value-types,omitzero"`
	// EvalMethods lists the names of materializing operations.
	EvalMethods []string `json:"eval-methods,omitzero"`
	// Aliases enables reporting of copies of lazy expression values.
	Aliases *bool `json:"aliases,omitzero"`
	// Fixes enables suggested materializing fixes.
	Fixes *bool `json:"fixes,omitzero"`
}

// Options converts [Settings] into a list of [lazyguard.Option] for the lazyguard analyzer.
// It processes settings and applies them only when explicitly set.
func (s Settings) Options() []lazyguard.Option {
	var opts []lazyguard.Option

	opts = appendListOption(opts, s.LazyTypes, lazyguard.WithLazyTypes)
	opts = appendListOption(opts, s.ValueTypes, lazyguard.WithValueTypes)
	opts = appendListOption(opts, s.EvalMethods, lazyguard.WithEvalMethods)
	opts = appendOption(opts, s.Aliases, lazyguard.WithAliases)
	opts = appendOption(opts, s.Fixes, lazyguard.WithFixes)

	return opts
}

// appendOption appends a non-nil setting to a [lazyguard.Option] list.
func appendOption[T any](opts []lazyguard.Option, value *T, constructor func(T) lazyguard.Option) []lazyguard.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}

// appendListOption appends a non-nil list setting to a [lazyguard.Option] list.
func appendListOption(opts []lazyguard.Option, values []string, constructor func(...string) lazyguard.Option) []lazyguard.Option {
	if values == nil {
		return opts
	}

	return append(opts, constructor(values...))
}
