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

package aliases

import "test/mat"

func aliased() {
	A := mat.Random(3, 3)
	B := mat.Random(3, 3)

	C := A.Mul(B) // want `Variable 'C' captures an unevaluated mat\.Product expression`
	D := C        // want `Variable 'D' copies an unevaluated mat\.Product expression; reads still observe the original operands \(lg:ref/:=\)`

	A.Set(0, 0, 999) // both C and D observe this

	_ = C.At(0, 0)
	_ = D.At(0, 0)
}

func plain() {
	A := mat.Random(3, 3)

	B := A // Matrix copies are value copies

	_ = B.At(0, 0)
}
