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

import "math"

// DefaultRobustSolitonC and DefaultRobustSolitonDelta are the default
// tuning parameters for RobustSolitonDistribution. NewEncoder takes an
// explicit PMF and applies no defaults itself.
const (
	DefaultRobustSolitonC     = 0.1
	DefaultRobustSolitonDelta = 0.5
)

// RobustSolitonDistribution computes the Robust Soliton Distribution over
// degrees 1..K. The returned slice mu has length K; mu[d-1] is the
// probability of degree d. c and delta are the usual RSD tuning
// parameters (ripple size and failure probability); see Luby, "LT Codes"
// (2002).
//
// mu always sums to 1 (within float64 rounding) and every entry is
// non-negative.
func RobustSolitonDistribution(k int, c, delta float64) []float64 {
	if k < 1 {
		k = 1
	}

	// Ripple parameter and cutoff degree.
	r := c * math.Log(float64(k)/delta) * math.Sqrt(float64(k))
	m := int(math.Floor(float64(k) / r))
	if m > k {
		m = k
	}
	// m can be 0 when r > k (only reachable with a non-default c/delta);
	// the tau loop and the m-1 assignment below both already treat m==0
	// as "no tau term", matching the ripple distribution's definition.

	rho := make([]float64, k)
	rho[0] = 1 / float64(k)
	for d := 2; d <= k; d++ {
		rho[d-1] = 1 / (float64(d) * float64(d-1))
	}

	tau := make([]float64, k)
	for d := 1; d < m; d++ {
		tau[d-1] = r / (float64(d) * float64(k))
	}
	if m >= 1 && m <= k {
		tau[m-1] = r * math.Log(r/delta) / float64(k)
	}

	mu := make([]float64, k)
	var total float64
	for d := 0; d < k; d++ {
		mu[d] = rho[d] + tau[d]
		total += mu[d]
	}
	for d := range mu {
		mu[d] /= total
	}
	return mu
}
