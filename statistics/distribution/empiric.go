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
	"sort"
)

// Empiric estimates the shape of the distribution by drawing
// sampleSize independent samples, normalizing the outcome frequencies
// and sorting them in descending order. Outcome identities are
// discarded; only the relative frequency profile is kept. The result
// is validated like any other distribution.
func (d *Distribution) Empiric(u UniformSource, sampleSize int) (*Distribution, error) {
	p, err := d.UnorderedEmpiric(u, sampleSize)
	if err != nil {
		return nil, err
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(p)))
	return New(p)
}

// UnorderedEmpiric draws sampleSize independent samples and returns
// the normalized per-outcome frequencies without sorting. Each entry
// keeps the identity of the original outcome index, so the result need
// not satisfy the non-increasing invariant and is returned as a raw
// probability array.
func (d *Distribution) UnorderedEmpiric(u UniformSource, sampleSize int) ([]float64, error) {
	if sampleSize < 1 {
		return nil, fmt.Errorf("UnorderedEmpiric: sample size (%v) must be greater than zero", sampleSize)
	}
	counts := make([]uint64, d.Width())
	for _i := 0; _i < sampleSize; _i++ {
		counts[d.Sample(u)-1]++
	}
	p := make([]float64, d.Width())
	for i, count := range counts {
		p[i] = float64(count) / float64(sampleSize)
	}
	return p, nil
}
