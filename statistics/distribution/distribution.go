// Copyright 2025 the dr-microbenchmarks authors
// This file is part of the dr-microbenchmarks suite.
//
// dr-microbenchmarks is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// dr-microbenchmarks is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with dr-microbenchmarks. If not, see <http://www.gnu.org/licenses/>.

package distribution

import (
	"fmt"
	"math"
)

//go:generate mockgen -source distribution.go -destination uniform_source_mock.go -package distribution

// UniformSource is the randomness boundary of the sampling engine. It
// yields independent uniform random values in the range [0,1).
// *math/rand.Rand satisfies this interface.
type UniformSource interface {
	Float64() float64
}

// Distribution is an immutable discrete probability distribution whose
// outcomes are ordered by decreasing probability. The probabilities
// must be non-increasing and sum to one within a width-scaled
// tolerance that absorbs floating-point rounding. Outcomes are
// addressed with 1-based indexes. Once constructed, a distribution is
// never modified and can be shared for concurrent read-only sampling
// provided the uniform source itself is safe to share.
type Distribution struct {
	probabilities []float64 // non-increasing probabilities summing to one
	aggregated    []float64 // cumulative sums of the probabilities
}

// New creates a distribution from an ordered probability sequence.
// The sequence must be non-empty and non-increasing, its smallest
// element must be non-negative, and the total mass must be one. All
// checks are subject to the width-scaled tolerance. The input slice is
// copied; the distribution owns its probabilities exclusively.
func New(probabilities []float64) (*Distribution, error) {
	width := len(probabilities)
	if width == 0 {
		return nil, fmt.Errorf("New: probability sequence must not be empty")
	}
	eps := precision(width)
	p := make([]float64, width)
	copy(p, probabilities)
	for i := 0; i < width - 1; i++ {
		if p[i] < p[i+1]-eps {
			return nil, fmt.Errorf("New: probabilities are not non-increasing at position %v (%v < %v)", i, p[i], p[i+1])
		}
	}
	if p[width-1] < -eps {
		return nil, fmt.Errorf("New: smallest probability (%v) is negative", p[width-1])
	}
	aggregated := make([]float64, width)
	sum := 0.0 // Kahan's summation algorithm for probability sum
	c := 0.0   // Compensation term of Kahan's algorithm
	for i := 0; i < width; i++ {
		y := p[i] - c
		t := sum + y
		c = (t - sum) - y
		sum = t
		aggregated[i] = sum
	}
	if math.Abs(aggregated[width-1]-1.0) > eps {
		return nil, fmt.Errorf("New: total mass is not one (%v)", aggregated[width-1])
	}
	return &Distribution{probabilities: p, aggregated: aggregated}, nil
}

// precision computes the tolerance of the invariant checks. It scales
// with the width so that accumulated rounding of long sequences does
// not trip the validation.
func precision(width int) float64 {
	return float64(width) / 1e6
}

// Width returns the number of outcomes.
func (d *Distribution) Width() int {
	return len(d.probabilities)
}

// Get returns the probability of the outcome with the given 1-based index.
func (d *Distribution) Get(index int) (float64, error) {
	if index < 1 || index > d.Width() {
		return 0, fmt.Errorf("Get: index (%v) out of range [1,%v]", index, d.Width())
	}
	return d.probabilities[index-1], nil
}

// Sample draws a random outcome by inverse transform sampling and
// returns its 1-based index. The uniform draw is mirrored to (0,1] so
// that the upper bound of the cumulative distribution stays reachable
// while an exact zero is excluded.
func (d *Distribution) Sample(u UniformSource) int {
	return d.quantile(1.0 - u.Float64())
}

// SampleAt is the deterministic variant of Sample. For a probability x
// in the range [0,1], it returns the smallest 1-based outcome index
// whose cumulative probability is at least x. The same x always yields
// the same outcome.
func (d *Distribution) SampleAt(x float64) (int, error) {
	if x < 0.0 || x > 1.0 {
		return 0, fmt.Errorf("SampleAt: probabilistic argument (%v) is not in interval [0,1]", x)
	}
	return d.quantile(x), nil
}

// quantile returns the 1-based index of the first cumulative entry
// reaching value.
func (d *Distribution) quantile(value float64) int {
	return searchFirst(0, len(d.aggregated)-1, func(i int) float64 { return d.aggregated[i] }, value) + 1
}

// searchFirst finds the smallest index i in [lower, upper] with
// f(i) >= value for a monotonically non-decreasing f. Ties favor the
// lowest qualifying index. The halving runs iteratively to keep the
// stack flat for very large widths.
func searchFirst(lower int, upper int, f func(int) float64, value float64) int {
	for lower < upper {
		middle := (lower + upper) / 2
		if value <= f(middle) {
			upper = middle
		} else {
			lower = middle + 1
		}
	}
	return lower
}
