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

package report

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
)

// materializeEdits builds the text edits appending the materializing call to
// the whole initializer, parenthesizing first when a trailing selector would
// otherwise bind to a subexpression.
func materializeEdits(init ast.Expr, method string) []analysis.TextEdit {
	call := "." + method + "()"

	if selectable(init) {
		return []analysis.TextEdit{
			{Pos: init.End(), End: init.End(), NewText: []byte(call)},
		}
	}

	return []analysis.TextEdit{
		{Pos: init.Pos(), End: init.Pos(), NewText: []byte("(")},
		{Pos: init.End(), End: init.End(), NewText: []byte(")" + call)},
	}
}

// selectable reports whether a selector can be appended to the expression
// without changing what it applies to.
func selectable(e ast.Expr) bool {
	switch e.(type) {
	case *ast.Ident,
		*ast.SelectorExpr,
		*ast.CallExpr,
		*ast.IndexExpr,
		*ast.IndexListExpr,
		*ast.ParenExpr:
		return true

	default:
		return false
	}
}
