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

// Sieve counts the primes in [2, limit] with the sieve of Eratosthenes.
func Sieve(limit int) int {
	if limit < 2 {
		return 0
	}
	flags := make([]bool, limit+1)
	for i := 2; i <= limit; i++ {
		flags[i] = true
	}

	for p := 2; p*p <= limit; p++ {
		if flags[p] {
			for m := p * p; m <= limit; m += p {
				flags[m] = false
			}
		}
	}

	count := 0
	for i := 2; i <= limit; i++ {
		if flags[i] {
			count++
		}
	}
	return count
}
