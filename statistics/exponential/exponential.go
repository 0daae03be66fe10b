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

// Package exponential fits the decay parameter of a geometrically
// decaying discrete distribution (probability of outcome i
// proportional to lambda^i) to an observed probability mass function.
package exponential

import (
	"fmt"
	"math"
)

const (
	newtonError      = 1e-9  // epsilon for Newton's convergence criteria
	newtonMaxStep    = 10000 // maximum number of iterations in the Newtonian
	newtonInitLambda = 0.5   // initial parameter in Newtonian's search
)

// Mean returns the expected 0-based outcome index of a probability
// mass function.
func Mean(pmf []float64) float64 {
	m := 0.0
	for i := 0; i < len(pmf); i++ {
		m += float64(i) * pmf[i]
	}
	return m
}

// moments computes the mean and variance of the outcome index of the
// truncated geometric distribution with the given decay over width
// outcomes.
func moments(lambda float64, width int) (float64, float64) {
	total := 0.0
	first := 0.0
	second := 0.0
	weight := 1.0
	for i := 0; i < width; i++ {
		x := float64(i)
		total += weight
		first += x * weight
		second += x * x * weight
		weight *= lambda
	}
	mean := first / total
	variance := second/total - mean*mean
	return mean, variance
}

// ApproximateLambda performs a classical Newtonian search for the
// decay parameter whose truncated geometric mean matches the mean of
// the observed probability mass function. The mean equation is
// transcendental and has no closed form; the derivative of the mean
// with respect to lambda is the index variance divided by lambda.
// Degenerate means are resolved symbolically: a zero mean is a dirac
// shape (lambda of zero) and the uniform mean is a flat shape (lambda
// of one). The function returns an error if the observed pmf is
// malformed or the maximal number of steps for the convergence
// criteria is exceeded.
func ApproximateLambda(pmf []float64) (float64, error) {
	width := len(pmf)
	if width < 2 {
		return 0, fmt.Errorf("ApproximateLambda: pmf is too short (%v)", width)
	}
	total := 0.0
	for i := 0; i < width; i++ {
		if pmf[i] < 0.0 || math.IsNaN(pmf[i]) {
			return 0, fmt.Errorf("ApproximateLambda: invalid probability (%v) in the pmf", pmf[i])
		}
		total += pmf[i]
	}
	if math.Abs(total-1.0) > 1e-6 {
		return 0, fmt.Errorf("ApproximateLambda: total is not one (%v)", total)
	}

	m := Mean(pmf)
	uniformMean := float64(width-1) / 2.0
	if m <= newtonError {
		return 0.0, nil
	}
	if m >= uniformMean-newtonError {
		return 1.0, nil
	}

	l := newtonInitLambda
	for _i := 0; _i < newtonMaxStep; _i++ {
		mean, variance := moments(l, width)
		value := mean - m
		if math.Abs(value) < newtonError {
			return l, nil
		}
		derivative := variance / l
		if math.IsNaN(derivative) || derivative <= 0 {
			return 0, fmt.Errorf("ApproximateLambda: derivative degenerated at lambda (%v)", l)
		}
		l -= value / derivative
		// the solution lies in (0,1); keep the iterate inside
		if l < newtonError {
			l = newtonError
		} else if l > 1.0 {
			l = 1.0
		}
	}
	return 0, fmt.Errorf("ApproximateLambda: failed to converge after %v steps", newtonMaxStep)
}
