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
	"strconv"
	"strings"
)

// DecimalParts returns the decimal strings "0".."n-1".
func DecimalParts(n int) []string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = strconv.Itoa(i)
	}
	return parts
}

// JoinParts joins parts with commas.
func JoinParts(parts []string) string { return strings.Join(parts, ",") }

// SplitTokens splits s on commas.
func SplitTokens(s string) []string { return strings.Split(s, ",") }

// ReplaceBase is the replace input: "hello world " repeated 1000 times.
func ReplaceBase() string { return strings.Repeat("hello world ", 1000) }

// SearchHaystack is the search input: "abcdefghij" repeated 10000 times.
func SearchHaystack() string { return strings.Repeat("abcdefghij", 10000) }

// ReplaceRepeated replaces every old with repl in base, times times, and
// returns the last result.
func ReplaceRepeated(base, old, repl string, times int) string {
	var result string
	for i := 0; i < times; i++ {
		result = strings.ReplaceAll(base, old, repl)
	}
	return result
}

// ContainsRepeated searches haystack for needle times times and counts the hits.
func ContainsRepeated(haystack, needle string, times int) int {
	found := 0
	for i := 0; i < times; i++ {
		if strings.Contains(haystack, needle) {
			found++
		}
	}
	return found
}
