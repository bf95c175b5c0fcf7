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

// Package report constructs diagnostics for declarations bound to lazy
// composites, including the suggested materializing fix.
package report

import (
	"fmt"
	"go/types"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/lazyguard/internal/candidate"
	"fillmore-labs.com/lazyguard/internal/config"
	"fillmore-labs.com/lazyguard/internal/shape"
)

// Lazy reports a declaration whose inferred type is a lazy composite.
//
// A composite initializer produces the main diagnostic: the variable holds
// the unevaluated expression, so later reads recompute it, observe operand
// mutation, or dereference dead temporaries. A bare reference produces the
// softer aliasing diagnostic used when alias reporting is enabled.
func Lazy(p *analysis.Pass, cand candidate.Candidate, sh shape.Shape, table config.TypeTable, behavior config.Behavior) {
	name := types.TypeString(cand.Type, shortQualifier)
	code := fmt.Sprintf("lg:%s/%s", sh, cand.Spelling)

	var message string

	switch {
	case sh == shape.BareReference:
		message = fmt.Sprintf("Variable '%s' copies an unevaluated %s expression; reads still observe the original operands (%s)",
			cand.Ident.Name, name, code)

	case table.FixMethod() != "":
		message = fmt.Sprintf("Variable '%s' captures an unevaluated %s expression; materialize with %s() on the whole expression or declare an explicit type (%s)",
			cand.Ident.Name, name, table.FixMethod(), code)

	default:
		message = fmt.Sprintf("Variable '%s' captures an unevaluated %s expression; declare an explicit type (%s)",
			cand.Ident.Name, name, code)
	}

	diagnostic := analysis.Diagnostic{
		Pos:     cand.Ident.Pos(),
		End:     cand.Init.End(),
		Message: message,
	}

	if behavior.Enabled(config.SuggestFixes) && table.FixMethod() != "" {
		if edits := materializeEdits(cand.Init, table.FixMethod()); len(edits) > 0 {
			diagnostic.SuggestedFixes = []analysis.SuggestedFix{{Message: message, TextEdits: edits}}
		}
	}

	p.Report(diagnostic)
}

// shortQualifier renders foreign types with their package name, not the full
// import path, matching how the offending source spells them.
func shortQualifier(p *types.Package) string { return p.Name() }
