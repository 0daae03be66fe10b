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

// Exponential creates a geometrically decaying distribution where the
// probability of the i-th outcome is proportional to lambda^i. The
// decay parameter lambda must be in the interval [0,1]; a lambda of
// zero degenerates to a dirac shape and a lambda of one to a uniform
// shape.
func Exponential(lambda float64, width int) (*Distribution, error) {
	if width < 1 {
		return nil, fmt.Errorf("Exponential: width (%v) must be greater than zero", width)
	}
	if lambda < 0.0 || lambda > 1.0 {
		return nil, fmt.Errorf("Exponential: lambda (%v) is not in interval [0,1]", lambda)
	}
	// The normalizer is the geometric series sum; for a lambda of one
	// the closed form divides by zero and the sum is the width itself.
	normalizer := float64(width)
	if lambda != 1.0 {
		normalizer = (1.0 - math.Pow(lambda, float64(width))) / (1.0 - lambda)
	}
	p := make([]float64, width)
	weight := 1.0
	for i := 0; i < width; i++ {
		p[i] = weight / normalizer
		weight *= lambda
	}
	return New(p)
}

// Uniform creates a distribution with equally likely outcomes.
func Uniform(width int) (*Distribution, error) {
	if width < 1 {
		return nil, fmt.Errorf("Uniform: width (%v) must be greater than zero", width)
	}
	p := make([]float64, width)
	for i := 0; i < width; i++ {
		p[i] = 1.0 / float64(width)
	}
	return New(p)
}

// Dirac creates a distribution whose entire mass sits on the first
// outcome.
func Dirac(width int) (*Distribution, error) {
	if width < 1 {
		return nil, fmt.Errorf("Dirac: width (%v) must be greater than zero", width)
	}
	p := make([]float64, width)
	p[0] = 1.0
	return New(p)
}

// Linear creates a linearly decaying distribution where the
// probability of the i-th outcome is proportional to spread-i for
// outcomes below the spread and zero beyond. The normalizer is the
// triangular number of the spread, truncated when the spread exceeds
// the width.
func Linear(spread int, width int) (*Distribution, error) {
	if width < 1 {
		return nil, fmt.Errorf("Linear: width (%v) must be greater than zero", width)
	}
	if spread < 1 {
		return nil, fmt.Errorf("Linear: spread (%v) must be greater than zero", spread)
	}
	var normalizer float64
	if spread >= width {
		normalizer = float64(width)*float64(spread) - float64(width)*float64(width-1)/2.0
	} else {
		normalizer = float64(spread) * float64(spread+1) / 2.0
	}
	p := make([]float64, width)
	for i := 0; i < width && i < spread; i++ {
		p[i] = float64(spread-i) / normalizer
	}
	return New(p)
}

// Zeta creates a power-law distribution where the probability of the
// i-th outcome is proportional to (i+shift)^-exponent. The shift must
// be positive and the exponent non-negative so that the shape is
// non-increasing.
func Zeta(exponent float64, shift float64, width int) (*Distribution, error) {
	if width < 1 {
		return nil, fmt.Errorf("Zeta: width (%v) must be greater than zero", width)
	}
	if exponent < 0.0 {
		return nil, fmt.Errorf("Zeta: exponent (%v) must not be negative", exponent)
	}
	if shift <= 0.0 {
		return nil, fmt.Errorf("Zeta: shift (%v) must be greater than zero", shift)
	}
	p := make([]float64, width)
	normalizer := 0.0
	for i := 0; i < width; i++ {
		w := math.Pow(float64(i)+shift, -exponent)
		p[i] = w
		normalizer += w
	}
	for i := 0; i < width; i++ {
		p[i] /= normalizer
	}
	return New(p)
}

// TwoStep creates a distribution with spread effective flat outcomes:
// the first floor(spread) outcomes carry 1/spread each, the next
// outcome carries the fractional remainder, and the rest are zero.
// Fractional spreads are allowed; the spread must be in the interval
// (0,width].
func TwoStep(spread float64, width int) (*Distribution, error) {
	if width < 1 {
		return nil, fmt.Errorf("TwoStep: width (%v) must be greater than zero", width)
	}
	if spread <= 0.0 || spread > float64(width) {
		return nil, fmt.Errorf("TwoStep: spread (%v) is not in interval (0,%v]", spread, width)
	}
	p := make([]float64, width)
	flat := int(math.Floor(spread))
	for i := 0; i < flat; i++ {
		p[i] = 1.0 / spread
	}
	if flat < width {
		p[flat] = (spread - float64(flat)) / spread
	}
	return New(p)
}
