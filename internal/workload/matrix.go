// Copyright 2025 Esteban Alvarez. All Rights Reserved.
//
// Created: October 2025
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

package workload

// Matrix is a dense row-major square matrix.
type Matrix [][]int

// NewMatrix allocates an n×n zero matrix.
func NewMatrix(n int) Matrix {
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]int, n)
	}
	return m
}

// NewMatrixPair builds the two fixed inputs:
// A[i][j] = (i·n+j) % 100 and B[i][j] = (i·n+j+50) % 100.
func NewMatrixPair(n int) (a, b Matrix) {
	a = NewMatrix(n)
	b = NewMatrix(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a[i][j] = (i*n + j) % 100
			b[i][j] = (i*n + j + 50) % 100
		}
	}
	return a, b
}

// Multiply returns a·b with the i-j-k triple loop. The result is freshly
// allocated on every call, which is part of what gets measured.
func Multiply(a, b Matrix) Matrix {
	n := len(a)
	result := make(Matrix, n)
	for i := 0; i < n; i++ {
		result[i] = make([]int, n)
		for j := 0; j < n; j++ {
			val := 0
			for k := 0; k < n; k++ {
				val += a[i][k] * b[k][j]
			}
			result[i][j] = val
		}
	}
	return result
}

// MultiplyNaive is the i-k-j ordering, used as an independent reference.
func MultiplyNaive(a, b Matrix) Matrix {
	n := len(a)
	c := NewMatrix(n)
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			aik := a[i][k]
			for j := 0; j < n; j++ {
				c[i][j] += aik * b[k][j]
			}
		}
	}
	return c
}

// Add returns the element-wise sum.
func Add(a, b Matrix) Matrix {
	c := NewMatrix(len(a))
	for i := range a {
		for j := range a[i] {
			c[i][j] = a[i][j] + b[i][j]
		}
	}
	return c
}

// DotRowCol is the dot product of row i of a and column j of b, i.e. (a·b)[i][j].
func DotRowCol(a, b Matrix, i, j int) int {
	sum := 0
	for k := range a[i] {
		sum += a[i][k] * b[k][j]
	}
	return sum
}

// Checksum is the representative cell reported for a product.
func (m Matrix) Checksum() int {
	if len(m) == 0 || len(m[0]) == 0 {
		return 0
	}
	return m[0][0]
}
