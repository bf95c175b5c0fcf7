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

// Package candidate finds local variable declarations whose type is inferred
// from the initializer.
//
// Two surface spellings declare an inferred variable: a short variable
// declaration (x := e) and an untyped var declaration (var x = e, single or
// grouped). Both collapse to the same analysis path. Declarations with an
// explicit type (var x T = e) never become candidates: the explicit type
// already forces conversion at the language level.
package candidate

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/inspector"
)

// Spelling identifies the surface form of an inferred declaration.
type Spelling uint8

//go:generate go tool stringer -type Spelling -linecomment
const (
	// ShortDecl is a short variable declaration (x := e).
	ShortDecl Spelling = iota // :=

	// InferredVar is an untyped var declaration (var x = e).
	InferredVar // var
)

// Candidate is one local variable declaration using type inference.
// Candidates are created during a single read-only traversal and discarded
// after verdict computation.
type Candidate struct {
	// Ident is the declared variable's identifier.
	Ident *ast.Ident

	// Init is the initializing expression. For tuple assignments
	// (a, b := f()) every variable shares the call as its initializer.
	Init ast.Expr

	// Spelling is the declaration form used.
	Spelling Spelling

	// Type is the variable's resolved type, or nil when the type checker
	// could not produce one. Callers skip such candidates without aborting
	// the rest of the analysis.
	Type types.Type
}

// Visitor collects inferred declarations from a syntax tree.
type Visitor struct {
	info *types.Info
}

// New creates a [Visitor] backed by the type checker's results.
func New(info *types.Info) Visitor {
	return Visitor{info: info}
}

// Collect returns all inferred declarations under the given cursor in
// declaration order. The order carries no meaning but keeps diagnostic
// output deterministic.
func (v Visitor) Collect(body inspector.Cursor) []Candidate {
	var candidates []Candidate

	for c := range body.Preorder((*ast.AssignStmt)(nil), (*ast.GenDecl)(nil)) {
		switch stmt := c.Node().(type) {
		case *ast.AssignStmt:
			if stmt.Tok != token.DEFINE {
				continue
			}

			candidates = v.collectShort(candidates, stmt)

		case *ast.GenDecl:
			if stmt.Tok != token.VAR {
				continue
			}

			candidates = v.collectVar(candidates, stmt)
		}
	}

	return candidates
}

// collectShort processes a short variable declaration (:=).
func (v Visitor) collectShort(candidates []Candidate, stmt *ast.AssignStmt) []Candidate {
	for idx, lhs := range stmt.Lhs {
		id, ok := lhs.(*ast.Ident)
		if !ok || id.Name == "_" {
			continue
		}

		// Only identifiers defining a new variable; reassignments of
		// existing variables do not change their declared type.
		def, ok := v.info.Defs[id]
		if !ok || def == nil {
			continue
		}

		init, ok := initializer(stmt.Rhs, idx, len(stmt.Lhs))
		if !ok {
			continue
		}

		candidates = append(candidates, Candidate{
			Ident:    id,
			Init:     init,
			Spelling: ShortDecl,
			Type:     varType(def),
		})
	}

	return candidates
}

// collectVar processes a var declaration, grouped or not.
func (v Visitor) collectVar(candidates []Candidate, decl *ast.GenDecl) []Candidate {
	for _, spec := range decl.Specs {
		vs, ok := spec.(*ast.ValueSpec)
		if !ok || vs.Type != nil || len(vs.Values) == 0 {
			continue
		}

		for idx, id := range vs.Names {
			if id.Name == "_" {
				continue
			}

			def, ok := v.info.Defs[id]
			if !ok || def == nil {
				continue
			}

			init, ok := initializer(vs.Values, idx, len(vs.Names))
			if !ok {
				continue
			}

			candidates = append(candidates, Candidate{
				Ident:    id,
				Init:     init,
				Spelling: InferredVar,
				Type:     varType(def),
			})
		}
	}

	return candidates
}

// initializer selects the initializing expression for the variable at idx.
// Either every variable has its own expression, or a single call initializes
// all of them.
func initializer(values []ast.Expr, idx, vars int) (ast.Expr, bool) {
	switch len(values) {
	case vars:
		return values[idx], true

	case 1:
		return values[0], true

	default:
		return nil, false
	}
}

// varType returns the resolved type of a defined variable, or nil when type
// resolution failed.
func varType(def types.Object) types.Type {
	vr, ok := def.(*types.Var)
	if !ok {
		return nil
	}

	t := vr.Type()
	if b, ok := t.(*types.Basic); ok && b.Kind() == types.Invalid {
		return nil
	}

	return t
}
