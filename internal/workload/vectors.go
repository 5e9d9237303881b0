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

import "math"

// Linspace returns n evenly spaced values from start to end inclusive.
// n == 1 yields just start; n <= 0 yields an empty slice.
func Linspace(start, end float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (end - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// Dot returns the dot product of a and b, which must have equal length.
func Dot(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

// VectorAdd returns a fresh slice holding a[i]+b[i].
func VectorAdd(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}

// Norm returns the Euclidean length of v.
func Norm(v []float64) float64 {
	s := 0.0
	for _, x := range v {
		s += x * x
	}
	return math.Sqrt(s)
}

// MatVec multiplies the row-major rows x cols matrix mat by vec.
func MatVec(mat, vec []float64, rows, cols int) []float64 {
	out := make([]float64, rows)
	for i := 0; i < rows; i++ {
		s := 0.0
		row := mat[i*cols : (i+1)*cols]
		for j, x := range row {
			s += x * vec[j]
		}
		out[i] = s
	}
	return out
}

// KahanSum sums v with compensated summation.
func KahanSum(v []float64) float64 {
	s, c := 0.0, 0.0
	for _, x := range v {
		y := x - c
		t := s + y
		c = (t - s) - y
		s = t
	}
	return s
}
