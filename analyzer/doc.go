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

// Package analyzer implements the lazyguard static analysis pass.
//
// # Overview
//
// LazyGuard detects local variables whose inferred type is a lazy composite
// of an expression template library. Such libraries build numeric
// expressions out of node types that merely record the operation and hold
// references to their operands; a designated method evaluates the whole
// tree into a storage-owning value. Binding the node itself to an inferred
// variable defers the computation past the declaration:
//
//	A := mat.Random(3, 3)
//	B := mat.Random(3, 3)
//
//	C := A.Mul(B)          // C is a mat.Product, not a mat.Matrix
//
//	x := C.At(0, 0)        // recomputes A*B
//	A.Set(0, 0, 999)
//	y := C.At(0, 0)        // observes the mutation, x != y
//
// Worse, when an operand is a temporary, the node outlives it:
//
//	C := A.Add(B).Eval().T() // T() wraps the already-dead temporary
//
// Safe forms either materialize the whole expression or name the intended
// type explicitly:
//
//	C := A.Mul(B).Eval()
//	var C mat.Matrix = ...
//
// # Configuration
//
// LazyGuard carries no knowledge of any concrete library. The lazy
// composite families, the storage-owning value types and the materializing
// operation names are supplied as configuration (flags, [Option] values, or
// golangci-lint settings), so the same engine targets any library or naming
// convention:
//
//	lazyguard -lazy-types 'example.com/mat.Product,example.com/mat.Sum' \
//	          -value-types 'example.com/mat.Matrix' \
//	          -eval-methods 'Eval' ./...
//
// # Verdicts
//
// For every declaration of the form x := e or var x = e, the resolved type
// and the initializer's syntactic shape are judged independently. Only a
// lazy composite type combined with a composite initializer is reported; a
// bare copy of an existing value and an outermost materializing call are
// safe, and types unrelated to the configured library are ignored.
package analyzer
