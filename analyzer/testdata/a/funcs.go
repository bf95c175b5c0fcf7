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

package a

import "test/mat"

func computeResult(a mat.Matrix, v mat.Vector) mat.Vector {
	return a.MulVec(v)
}

// Functions returning storage-owning values are safe to capture by inference.
func functionReturn() {
	A := mat.Random(3, 3)
	v := mat.RandomVector(3)

	result := computeResult(A, v)

	_ = result.AtVec(0)
}

func suppressed() {
	A := mat.Random(3, 3)
	B := mat.Random(3, 3)

	C := A.Mul(B) //nolint:lazyguard // deliberate lazy view over mutable operands

	_ = C.At(0, 0)
}

//nolint:lazyguard
func suppressedFunc() {
	A := mat.Random(3, 3)
	B := mat.Random(3, 3)

	C := A.Add(B)

	_ = C.At(0, 0)
}

func tupleReturn() (mat.Product, bool) {
	A := mat.Random(3, 3)
	B := mat.Random(3, 3)

	return A.Mul(B), true
}

func tupleAssign() {
	P, ok := tupleReturn() // want `Variable 'P' captures an unevaluated mat\.Product expression`

	_, _ = P, ok
}
