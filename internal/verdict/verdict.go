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

// Package verdict merges the independent type and shape judgments of one
// declaration into a single verdict.
package verdict

import (
	"fillmore-labs.com/lazyguard/internal/classify"
	"fillmore-labs.com/lazyguard/internal/shape"
)

// Verdict is the final judgment for one inferred declaration.
type Verdict uint8

//go:generate go tool stringer -type Verdict -linecomment
const (
	// NotApplicable indicates a declaration unrelated to the target library.
	NotApplicable Verdict = iota // n/a

	// Safe indicates the variable holds a materialized value or aliases an
	// existing one.
	Safe // safe

	// Unsafe indicates the variable is bound to an unevaluated composite
	// whose operand references can recompute, go stale, or dangle.
	Unsafe // unsafe
)

// Evaluate computes the verdict from the decision table.
//
//	type        shape        verdict
//	unrelated   any          NotApplicable
//	value       any          Safe
//	lazy        reference    Safe
//	lazy        eval call    Safe
//	lazy        composite    Unsafe
//
// The type verdict decides first: a plain value is safe no matter how the
// initializer is written, because the compiler already forced ownership of
// the result. A lazy composite is only rescued by an outermost materializing
// call or by aliasing a value that already exists.
func Evaluate(t classify.Verdict, s shape.Shape) Verdict {
	switch t {
	case classify.Unrelated:
		return NotApplicable

	case classify.PlainValue:
		return Safe

	case classify.LazyComposite:
		switch s {
		case shape.BareReference, shape.MaterializingCall:
			return Safe

		default:
			return Unsafe
		}

	default:
		return NotApplicable
	}
}
