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

func repeatedEvaluation() {
	A := mat.Random(3, 3)
	B := mat.Random(3, 3)

	C := A.Mul(B) // want `Variable 'C' captures an unevaluated mat\.Product expression; materialize with Eval\(\) on the whole expression or declare an explicit type \(lg:cmp/:=\)`

	_ = C.At(0, 0) // recomputes the product
	_ = C.At(1, 1) // and again
}

func staleReferences() {
	A := mat.Random(3, 3)
	B := mat.Random(3, 3)

	C := A.Mul(B) // want `Variable 'C' captures an unevaluated mat\.Product expression`

	before := C.At(0, 0)
	A.Set(0, 0, 999) // C observes the mutation
	after := C.At(0, 0)

	_, _ = before, after
}

func materialized() {
	A := mat.Random(3, 3)
	B := mat.Random(3, 3)

	C := A.Mul(B).Eval()
	D := (A.Add(B)).Eval()

	_ = C.At(0, 0)
	_ = D.At(0, 0)
}

func explicitTypes() {
	A := mat.Random(3, 3)
	B := mat.Random(3, 3)

	var C mat.Matrix = A.Mul(B).Eval()

	var P mat.Product = A.Mul(B) // explicit lazy type, deliberate

	_ = C.At(0, 0)
	_ = P.At(0, 0)
}

func plainCopies() {
	A := mat.Random(3, 3)

	B := A // Matrix owns its storage, copying is fine
	D := B.Rows()

	_, _ = B, D
}

func scalars() {
	a := 3.14
	b := 2.71

	c := a * b
	var d = a + b

	_, _ = c, d
}
