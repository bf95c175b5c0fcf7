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
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/lazyguard/internal/astutil"
	"fillmore-labs.com/lazyguard/internal/candidate"
	"fillmore-labs.com/lazyguard/internal/classify"
	"fillmore-labs.com/lazyguard/internal/config"
	"fillmore-labs.com/lazyguard/internal/report"
	"fillmore-labs.com/lazyguard/internal/shape"
	"fillmore-labs.com/lazyguard/internal/verdict"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// engine bundles the per-pass state of the lazyguard pipeline. The two
// classifiers are independent of each other; the verdict engine merges
// their judgments per candidate.
type engine struct {
	pass       *analysis.Pass
	visitor    candidate.Visitor
	classifier classify.Classifier
	shapes     shape.Analyzer
	table      config.TypeTable
	behavior   config.Behavior
}

// run executes the lazyguard analyzer's pipeline.
func (r *runOptions) run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("lazyguard: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	table, err := r.table()
	if err != nil {
		return nil, err
	}

	if table.Empty() {
		// No lazy composite families configured. A no-op run is valid and
		// expected for code bases that do not use the target library.
		return nil, nil
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "LazyGuard")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	e := engine{
		pass:       p,
		visitor:    candidate.New(p.TypesInfo),
		classifier: classify.New(table),
		shapes:     shape.New(table),
		table:      table,
		behavior:   r.behavior,
	}

	// Loop over all files
	for f := range in.Root().Children() {
		file, ok := f.Node().(*ast.File)
		if !ok {
			continue
		}

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if file.Doc != nil && astutil.CommentHasNoLint(file.Doc.List[len(file.Doc.List)-1]) {
			continue
		}

		// Loop over all function and method declarations in this file
		for c := range f.Preorder((*ast.FuncDecl)(nil)) {
			fun := c.Node().(*ast.FuncDecl)

			if fun.Body == nil {
				continue
			}

			// Skip functions with nolint comment
			if fun.Doc != nil && astutil.CommentHasNoLint(fun.Doc.List[len(fun.Doc.List)-1]) {
				continue
			}

			body := c.ChildAt(edge.FuncDecl_Body, -1)

			e.checkFunc(ctx, currentFile, body)
		}
	}

	return nil, nil
}

// checkFunc judges every inferred declaration in one function body.
func (e engine) checkFunc(ctx context.Context, currentFile astutil.CurrentFile, body inspector.Cursor) {
	defer trace.StartRegion(ctx, "CheckDeclarations").End()

	for _, cand := range e.visitor.Collect(body) {
		// The type checker could not resolve this declaration; skip it
		// without aborting the remaining candidates.
		if cand.Type == nil {
			continue
		}

		tv := e.classifier.Classify(cand.Type)
		if tv != classify.LazyComposite {
			// Unrelated or plain value: never flagged, and the initializer
			// shape need not be consulted.
			continue
		}

		sh := e.shapes.Of(cand.Init)

		switch verdict.Evaluate(tv, sh) {
		case verdict.Unsafe:

		case verdict.Safe:
			if sh != shape.BareReference || !e.behavior.Enabled(config.ReportAliases) {
				continue
			}

		default:
			continue
		}

		if currentFile.NoLintComment(cand.Ident.Pos()) {
			continue
		}

		report.Lazy(e.pass, cand, sh, e.table, e.behavior)
	}
}
