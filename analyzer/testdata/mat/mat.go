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

// Package mat is a miniature expression template library used by the
// analyzer tests. Matrix and Vector own their storage; every other type is
// an unevaluated node holding references to its operands, forced by Eval.
package mat

import (
	"math"
	"math/rand/v2"
)

// Matrix is a dense row-major matrix that owns its backing storage.
type Matrix struct {
	rows, cols int
	data       []float64
}

// New returns a zero matrix of the given dimensions.
func New(rows, cols int) Matrix {
	return Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// Random returns a matrix with pseudo-random entries.
func Random(rows, cols int) Matrix {
	m := New(rows, cols)
	for i := range m.data {
		m.data[i] = rand.Float64()
	}

	return m
}

// Rows returns the number of rows.
func (m Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m Matrix) Cols() int { return m.cols }

// At returns the entry at row i, column j.
func (m Matrix) At(i, j int) float64 { return m.data[i*m.cols+j] }

// Set replaces the entry at row i, column j.
func (m *Matrix) Set(i, j int, v float64) { m.data[i*m.cols+j] = v }

// operand is anything evaluable to a Matrix.
type operand interface {
	eval() Matrix
}

func (m Matrix) eval() Matrix { return m }

// Mul returns the unevaluated product m * rhs.
func (m Matrix) Mul(rhs operand) Product { return Product{lhs: m, rhs: rhs} }

// Add returns the unevaluated sum m + rhs.
func (m Matrix) Add(rhs operand) Sum { return Sum{lhs: m, rhs: rhs} }

// T returns the unevaluated transpose of m.
func (m Matrix) T() Transposed { return Transposed{src: m} }

// Scale returns the unevaluated scalar product k * m.
func (m Matrix) Scale(k float64) Scaled { return Scaled{k: k, src: m} }

// MulVec computes the matrix-vector product into a fresh Vector.
func (m Matrix) MulVec(v Vector) Vector {
	out := NewVector(m.rows)
	for i := range m.rows {
		var sum float64
		for j := range m.cols {
			sum += m.At(i, j) * v.AtVec(j)
		}

		out.data[i] = sum
	}

	return out
}

// Product is the unevaluated product of two operands. It holds its operands
// by reference; every access recomputes the multiplication.
type Product struct{ lhs, rhs operand }

func (p Product) eval() Matrix { return matMul(p.lhs.eval(), p.rhs.eval()) }

// Eval materializes the product into a Matrix.
func (p Product) Eval() Matrix { return p.eval() }

// At recomputes the product and returns the entry at row i, column j.
func (p Product) At(i, j int) float64 { return p.eval().At(i, j) }

// Mul returns the unevaluated product p * rhs.
func (p Product) Mul(rhs operand) Product { return Product{lhs: p, rhs: rhs} }

// Add returns the unevaluated sum p + rhs.
func (p Product) Add(rhs operand) Sum { return Sum{lhs: p, rhs: rhs} }

// T returns the unevaluated transpose of p.
func (p Product) T() Transposed { return Transposed{src: p} }

// Sum is the unevaluated elementwise sum of two operands.
type Sum struct{ lhs, rhs operand }

func (s Sum) eval() Matrix { return matAdd(s.lhs.eval(), s.rhs.eval()) }

// Eval materializes the sum into a Matrix.
func (s Sum) Eval() Matrix { return s.eval() }

// At recomputes the sum and returns the entry at row i, column j.
func (s Sum) At(i, j int) float64 { return s.eval().At(i, j) }

// Mul returns the unevaluated product s * rhs.
func (s Sum) Mul(rhs operand) Product { return Product{lhs: s, rhs: rhs} }

// Add returns the unevaluated sum s + rhs.
func (s Sum) Add(rhs operand) Sum { return Sum{lhs: s, rhs: rhs} }

// T returns the unevaluated transpose of s.
func (s Sum) T() Transposed { return Transposed{src: s} }

// Transposed is the unevaluated transpose view of an operand.
type Transposed struct{ src operand }

func (t Transposed) eval() Matrix {
	src := t.src.eval()

	out := New(src.cols, src.rows)
	for i := range src.rows {
		for j := range src.cols {
			out.Set(j, i, src.At(i, j))
		}
	}

	return out
}

// Eval materializes the transpose into a Matrix.
func (t Transposed) Eval() Matrix { return t.eval() }

// At recomputes the transpose and returns the entry at row i, column j.
func (t Transposed) At(i, j int) float64 { return t.eval().At(i, j) }

// Mul returns the unevaluated product t * rhs.
func (t Transposed) Mul(rhs operand) Product { return Product{lhs: t, rhs: rhs} }

// Add returns the unevaluated sum t + rhs.
func (t Transposed) Add(rhs operand) Sum { return Sum{lhs: t, rhs: rhs} }

// T returns the unevaluated transpose of t.
func (t Transposed) T() Transposed { return Transposed{src: t} }

// Scaled is the unevaluated scalar product of an operand.
type Scaled struct {
	k   float64
	src operand
}

func (s Scaled) eval() Matrix {
	src := s.src.eval()

	out := New(src.rows, src.cols)
	for i := range src.data {
		out.data[i] = s.k * src.data[i]
	}

	return out
}

// Eval materializes the scalar product into a Matrix.
func (s Scaled) Eval() Matrix { return s.eval() }

// At recomputes the scalar product and returns the entry at row i, column j.
func (s Scaled) At(i, j int) float64 { return s.eval().At(i, j) }

// Mul returns the unevaluated product s * rhs.
func (s Scaled) Mul(rhs operand) Product { return Product{lhs: s, rhs: rhs} }

// Add returns the unevaluated sum s + rhs.
func (s Scaled) Add(rhs operand) Sum { return Sum{lhs: s, rhs: rhs} }

// T returns the unevaluated transpose of s.
func (s Scaled) T() Transposed { return Transposed{src: s} }

// Vector is a dense vector that owns its backing storage.
type Vector struct {
	data []float64
}

// NewVector returns a zero vector of length n.
func NewVector(n int) Vector { return Vector{data: make([]float64, n)} }

// RandomVector returns a vector with pseudo-random entries.
func RandomVector(n int) Vector {
	v := NewVector(n)
	for i := range v.data {
		v.data[i] = rand.Float64()
	}

	return v
}

// Len returns the length of the vector.
func (v Vector) Len() int { return len(v.data) }

// AtVec returns the entry at index i.
func (v Vector) AtVec(i int) float64 { return v.data[i] }

// SetVec replaces the entry at index i.
func (v *Vector) SetVec(i int, x float64) { v.data[i] = x }

// vecOperand is anything evaluable to a Vector.
type vecOperand interface {
	vec() Vector
}

func (v Vector) vec() Vector { return v }

// Add returns the unevaluated sum v + rhs.
func (v Vector) Add(rhs vecOperand) VecSum { return VecSum{lhs: v, rhs: rhs} }

// Normalized returns the unevaluated unit-length view of v.
func (v Vector) Normalized() Normalized { return Normalized{src: v} }

// VecSum is the unevaluated elementwise sum of two vector operands.
type VecSum struct{ lhs, rhs vecOperand }

func (s VecSum) vec() Vector {
	lhs, rhs := s.lhs.vec(), s.rhs.vec()

	out := NewVector(lhs.Len())
	for i := range out.data {
		out.data[i] = lhs.AtVec(i) + rhs.AtVec(i)
	}

	return out
}

// Eval materializes the sum into a Vector.
func (s VecSum) Eval() Vector { return s.vec() }

// AtVec recomputes the sum and returns the entry at index i.
func (s VecSum) AtVec(i int) float64 { return s.vec().AtVec(i) }

// Add returns the unevaluated sum s + rhs.
func (s VecSum) Add(rhs vecOperand) VecSum { return VecSum{lhs: s, rhs: rhs} }

// Normalized returns the unevaluated unit-length view of s.
func (s VecSum) Normalized() Normalized { return Normalized{src: s} }

// Normalized is the unevaluated unit-length view of a vector operand.
type Normalized struct{ src vecOperand }

func (n Normalized) vec() Vector {
	src := n.src.vec()

	var norm float64
	for _, x := range src.data {
		norm += x * x
	}

	norm = math.Sqrt(norm)

	out := NewVector(src.Len())
	for i := range out.data {
		out.data[i] = src.AtVec(i) / norm
	}

	return out
}

// Eval materializes the view into a Vector.
func (n Normalized) Eval() Vector { return n.vec() }

// AtVec recomputes the view and returns the entry at index i.
func (n Normalized) AtVec(i int) float64 { return n.vec().AtVec(i) }

// Add returns the unevaluated sum n + rhs.
func (n Normalized) Add(rhs vecOperand) VecSum { return VecSum{lhs: n, rhs: rhs} }

func matMul(a, b Matrix) Matrix {
	out := New(a.rows, b.cols)
	for i := range a.rows {
		for j := range b.cols {
			var sum float64
			for k := range a.cols {
				sum += a.At(i, k) * b.At(k, j)
			}

			out.Set(i, j, sum)
		}
	}

	return out
}

func matAdd(a, b Matrix) Matrix {
	out := New(a.rows, a.cols)
	for i := range out.data {
		out.data[i] = a.data[i] + b.data[i]
	}

	return out
}
