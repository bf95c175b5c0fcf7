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

// Package shape classifies the syntactic shape of an initializing expression.
//
// The classification is a recursive descent over a small closed set of node
// kinds and depends on node structure only: line breaks, interspersed
// comments and redundant parenthesis groups never change the result.
//
// Only the outermost node counts. An initializer is a materializing call
// when the materializing operation wraps the entire expression; applied to a
// subexpression it leaves the outer operation as an ordinary composite.
package shape

import (
	"go/ast"
	"go/token"

	"fillmore-labs.com/lazyguard/internal/config"
)

// Shape is the syntactic shape of an initializing expression.
type Shape uint8

//go:generate go tool stringer -type Shape -linecomment
const (
	// Composite is any operator application, non-materializing call or chain
	// thereof. Syntax the analyzer does not recognize also classifies as
	// Composite: an unrecognized shape cannot be proven to materialize.
	Composite Shape = iota // cmp

	// BareReference is a direct copy or alias of a previously declared
	// value, with no operation applied.
	BareReference // ref

	// MaterializingCall is a call to a configured materializing operation
	// wrapping the entire expression.
	MaterializingCall // eval
)

// Analyzer classifies expressions against one configured [config.TypeTable].
type Analyzer struct {
	table config.TypeTable
}

// New creates a shape [Analyzer] for the given type table.
func New(table config.TypeTable) Analyzer {
	return Analyzer{table: table}
}

// Of is a pure function of the given initializer node.
func (a Analyzer) Of(expr ast.Expr) Shape {
	switch e := ast.Unparen(expr).(type) {
	case *ast.Ident:
		return BareReference

	case *ast.SelectorExpr:
		// A field selection off a plain reference chain is still a bare
		// reference; anything else underneath makes it a composite.
		if a.Of(e.X) == BareReference {
			return BareReference
		}

		return Composite

	case *ast.StarExpr:
		if a.Of(e.X) == BareReference {
			return BareReference
		}

		return Composite

	case *ast.UnaryExpr:
		// Taking the address of an existing value aliases it.
		if e.Op == token.AND && a.Of(e.X) == BareReference {
			return BareReference
		}

		return Composite

	case *ast.CallExpr:
		if a.materializing(e.Fun) {
			return MaterializingCall
		}

		return Composite

	default:
		return Composite
	}
}

// materializing reports whether the called operation is a configured
// materializer. The callee may be a method selection, a plain or
// package-qualified function name, or a generic instantiation of either.
func (a Analyzer) materializing(fun ast.Expr) bool {
	switch f := ast.Unparen(fun).(type) {
	case *ast.SelectorExpr:
		return a.table.Materializer(f.Sel.Name)

	case *ast.Ident:
		return a.table.Materializer(f.Name)

	case *ast.IndexExpr:
		return a.materializing(f.X)

	case *ast.IndexListExpr:
		return a.materializing(f.X)

	default:
		return false
	}
}
