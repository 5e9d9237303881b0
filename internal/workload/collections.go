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

import "sort"

// Range returns [0, n).
func Range(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = i
	}
	return data
}

// DescendingRange returns [n, n-1, ..., 1].
func DescendingRange(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = n - i
	}
	return data
}

// MapFilterReduce drops multiples of 3, squares what is left and sums it.
// Each stage materializes its own slice.
func MapFilterReduce(data []int) int {
	filtered := make([]int, 0, len(data))
	for _, x := range data {
		if x%3 != 0 {
			filtered = append(filtered, x)
		}
	}

	mapped := make([]int, len(filtered))
	for i, x := range filtered {
		mapped[i] = x * x
	}

	result := 0
	for _, x := range mapped {
		result += x
	}
	return result
}

// SquareSumNonMultiplesOf3 is the closed form of MapFilterReduce(Range(n)):
// Σ_{x<n} x² − 9·Σ_{k<⌈n/3⌉} k².
func SquareSumNonMultiplesOf3(n int) int {
	if n <= 0 {
		return 0
	}
	k := (n + 2) / 3
	return squareSumBelow(n) - 9*squareSumBelow(k)
}

// squareSumBelow returns Σ_{x=0}^{m-1} x².
func squareSumBelow(m int) int {
	return (m - 1) * m * (2*m - 1) / 6
}

// SortInts sorts data ascending in place.
func SortInts(data []int) { sort.Ints(data) }

// IsSorted reports whether data is non-decreasing.
func IsSorted(data []int) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}

// IsPermutation reports whether a and b hold the same multiset of values.
func IsPermutation(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[int]int, len(a))
	for _, x := range a {
		counts[x]++
	}
	for _, x := range b {
		counts[x]--
		if counts[x] < 0 {
			return false
		}
	}
	return true
}

// LinearFind returns the index of the first element equal to target, or -1.
func LinearFind(data []int, target int) int {
	for i, x := range data {
		if x == target {
			return i
		}
	}
	return -1
}

// FindRepeated runs LinearFind times times and counts the hits.
func FindRepeated(data []int, target, times int) int {
	found := 0
	for i := 0; i < times; i++ {
		if LinearFind(data, target) >= 0 {
			found++
		}
	}
	return found
}
