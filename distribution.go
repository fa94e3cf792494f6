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

import "math/rand"

// triangularDegree samples a degree d in [1, n] from the distribution
// Pr[d=k] = (n-k+1)/T, T = n(n+1)/2. Unlike the teacher codec's CDF tables
// for the ideal/robust soliton and online-code distributions (util.go's
// solitonDistribution, robustSolitonDistribution, onlineSolitonDistribution),
// this distribution is built the way the original C implementation built
// it: a virtual multiset holding n copies of 1, n-1 copies of 2, ..., 1
// copy of n, from which one entry is drawn uniformly. Low degrees dominate
// the multiset, which is exactly what lets the peeling decoder make
// progress.
func triangularDegree(random *rand.Rand, n int) int {
	t := n * (n + 1) / 2
	dist := make([]int, 0, t)
	for m := n; m > 0; m-- {
		for i := 0; i < m; i++ {
			dist = append(dist, n-m+1)
		}
	}
	return dist[random.Intn(t)]
}

// sampleDistinctIndices draws d distinct indices from [0, n) by uniform
// rejection sampling: repeatedly draw random.Intn(n) and discard a draw
// that repeats one already collected. The order indices are collected in
// is preserved in the result, which is why this does not reuse the teacher
// codec's sampleUniform (util.go) -- that helper sorts its output, and the
// decoder's cascade/peel rules are defined over draw order, not index
// order.
func sampleDistinctIndices(random *rand.Rand, d, n int) []int {
	indices := make([]int, 0, d)
	for len(indices) < d {
		candidate := random.Intn(n)
		duplicate := false
		for _, seen := range indices {
			if seen == candidate {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}
		indices = append(indices, candidate)
	}
	return indices
}
