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

package config

import (
	"errors"
	"fmt"
	"strings"
)

// TypeName identifies a named type by package path and unqualified name.
type TypeName struct {
	Path string
	Name string
}

// String formats the type name in the form accepted by [ParseTypeNames].
func (n TypeName) String() string { return n.Path + "." + n.Name }

// ErrBadTypeName is returned for type name specifications that are not of
// the form "package/path.Name".
var ErrBadTypeName = errors.New("type name must have the form \"package/path.Name\"")

// ParseTypeNames parses a list of "package/path.Name" specifications into
// [TypeName] values. The name is everything after the last dot, so package
// paths containing dots (domains, versions) work unchanged.
func ParseTypeNames(specs []string) ([]TypeName, error) {
	names := make([]TypeName, 0, len(specs))

	for _, spec := range specs {
		i := strings.LastIndexByte(spec, '.')
		if i <= 0 || i == len(spec)-1 {
			return nil, fmt.Errorf("%w: %q", ErrBadTypeName, spec)
		}

		names = append(names, TypeName{Path: spec[:i], Name: spec[i+1:]})
	}

	return names, nil
}

// TypeTable is the externalized description of one expression template
// library: which named types are lazy composites, which are storage-owning
// value types, and which methods force materialization. The analyzer carries
// no knowledge of any concrete library beyond this table.
type TypeTable struct {
	lazy          map[TypeName]struct{}
	value         map[TypeName]struct{}
	materializers map[string]struct{}
	fixMethod     string
}

// NewTypeTable builds a [TypeTable] from the configured type families and
// materializing method names. The first materializer is the one suggested
// fixes append.
func NewTypeTable(lazy, value []TypeName, materializers []string) TypeTable {
	t := TypeTable{
		lazy:          make(map[TypeName]struct{}, len(lazy)),
		value:         make(map[TypeName]struct{}, len(value)),
		materializers: make(map[string]struct{}, len(materializers)),
	}

	for _, n := range lazy {
		t.lazy[n] = struct{}{}
	}

	for _, n := range value {
		t.value[n] = struct{}{}
	}

	for _, m := range materializers {
		t.materializers[m] = struct{}{}
	}

	if len(materializers) > 0 {
		t.fixMethod = materializers[0]
	}

	return t
}

// Lazy reports whether the named type is a configured lazy composite family.
func (t TypeTable) Lazy(n TypeName) bool {
	_, ok := t.lazy[n]

	return ok
}

// Value reports whether the named type is a configured storage-owning value type.
func (t TypeTable) Value(n TypeName) bool {
	_, ok := t.value[n]

	return ok
}

// Materializer reports whether a call to the named operation forces evaluation.
func (t TypeTable) Materializer(name string) bool {
	_, ok := t.materializers[name]

	return ok
}

// FixMethod returns the materializing method suggested fixes should append,
// or an empty string when none is configured.
func (t TypeTable) FixMethod() string { return t.fixMethod }

// Empty reports whether no lazy composite families are configured. An empty
// table makes every package a no-op run, which is valid and expected for
// code bases that do not use the target library.
func (t TypeTable) Empty() bool { return len(t.lazy) == 0 }
