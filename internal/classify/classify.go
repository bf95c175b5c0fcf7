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

// Package classify decides whether a resolved type is a lazy composite of
// the target expression template library, a storage-owning value type, or
// unrelated to the library altogether.
//
// Classification is structural: a type is matched by the package path and
// name of its [types.TypeName], never by inspecting printed type strings.
// Generic instantiations are resolved to their origin first, so a configured
// family F matches every F[X]. Pointer indirection and alias sugar never
// change the verdict.
package classify

import (
	"go/types"

	"fillmore-labs.com/lazyguard/internal/config"
)

// Verdict classifies a resolved type with respect to the target library.
type Verdict uint8

//go:generate go tool stringer -type Verdict -linecomment
const (
	// Unrelated indicates a type with no relationship to the target library.
	// It is kept distinct from PlainValue for diagnostic wording only; the
	// verdict engine treats both identically.
	Unrelated Verdict = iota // unrelated

	// PlainValue indicates a storage-owning value type of the target library.
	PlainValue // value

	// LazyComposite indicates a type representing an unevaluated operation
	// that holds handles to its operands instead of computed storage.
	LazyComposite // lazy
)

// Classifier classifies types against one configured [config.TypeTable].
type Classifier struct {
	table config.TypeTable
}

// New creates a [Classifier] for the given type table.
func New(table config.TypeTable) Classifier {
	return Classifier{table: table}
}

// Classify is a pure function of the given type. It strips qualifiers that
// never change the answer, resolves the underlying named type and looks it
// up in the configured families.
func (c Classifier) Classify(t types.Type) Verdict {
	named, ok := underlying(t)
	if !ok {
		return Unrelated
	}

	// Resolve instantiations to their origin, so a configured family
	// matches every specialization.
	obj := named.Origin().Obj()
	if obj == nil || obj.Pkg() == nil {
		return Unrelated
	}

	name := config.TypeName{Path: obj.Pkg().Path(), Name: obj.Name()}

	switch {
	case c.table.Lazy(name):
		return LazyComposite

	case c.table.Value(name):
		return PlainValue

	default:
		return Unrelated
	}
}

// underlying strips pointer indirection and alias sugar from a type and
// returns the named type underneath, if any. These qualifiers are the Go
// spellings of binding a value without converting it, so they must not
// influence classification.
func underlying(t types.Type) (*types.Named, bool) {
	for {
		switch u := types.Unalias(t).(type) {
		case *types.Pointer:
			t = u.Elem()

		case *types.Named:
			return u, true

		default:
			return nil, false
		}
	}
}
