// Copyright 2014 Google Inc. All rights reserved.
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

package fountain

import (
	"math/rand"
	"sort"
)

// pickDegree draws one degree in [1, len(mu)] from the categorical
// distribution mu (mu[d-1] is the probability of degree d). It draws a
// uniform r in [0, 1) and returns the smallest d such that the cumulative
// sum of mu[0..d-1] is >= r.
func pickDegree(random *rand.Rand, mu []float64) int {
	r := random.Float64()

	var sum float64
	for d, p := range mu {
		sum += p
		if sum >= r {
			return d + 1
		}
	}
	// Floating-point rounding may leave the cumulative sum a hair under r;
	// fall back to the largest available degree.
	return len(mu)
}

// sampleIndices picks num distinct integers from [0, max) uniformly at
// random, with no duplicates. The returned slice is sorted. If num >= max,
// it returns every index in [0, max) without consuming any randomness.
func sampleIndices(random *rand.Rand, num, max int) []int {
	if num >= max {
		picks := make([]int, max)
		for i := 0; i < max; i++ {
			picks[i] = i
		}
		return picks
	}

	picks := make([]int, num)
	seen := make(map[int]bool, num)
	for i := 0; i < num; i++ {
		p := random.Intn(max)
		for seen[p] {
			p = random.Intn(max)
		}
		picks[i] = p
		seen[p] = true
	}
	sort.Ints(picks)
	return picks
}
