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

import (
	"math/rand/v2"
	"sort"
)

// RandomFloats returns n values in [0, scale) from a PCG source seeded with
// seed, so the same seed always yields the same input.
func RandomFloats(n int, seed uint64, scale float64) []float64 {
	rnd := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	data := make([]float64, n)
	for i := range data {
		data[i] = rnd.Float64() * scale
	}
	return data
}

// SortFloats sorts data ascending in place.
func SortFloats(data []float64) { sort.Float64s(data) }

// FloatsSorted reports whether data is non-decreasing.
func FloatsSorted(data []float64) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}
