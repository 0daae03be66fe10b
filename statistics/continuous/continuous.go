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

// Package continuous represents the cumulative distribution of a
// discrete distribution as a piecewise linear function over the
// normalized rank domain [0,1]. The representation is compact enough
// for model files and chart rendering even for very wide
// distributions.
package continuous

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"

	"github.com/szape/dr-microbenchmarks/statistics"
	"github.com/szape/dr-microbenchmarks/statistics/distribution"
)

// CDF computes the cumulative distribution function of parameter x for
// a piecewise linear function given as a list of points (x_i, y_i).
// The first point must be (0,0) and the last point (1,1).
func CDF(f [][2]float64, x float64) float64 {
	if x <= 0 {
		return 0.0
	}
	for i := 0; i < len(f) - 1; i++ {
		if f[i+1][0] >= x {
			scale := (x - f[i][0]) / (f[i+1][0] - f[i][0])
			return f[i][1] + scale*(f[i+1][1]-f[i][1])
		}
	}
	return 1.0 // x is 1.0 or greater
}

// Quantile computes the inverse cumulative distribution function of
// parameter y for a CDF given as a piecewise linear function.
func Quantile(f [][2]float64, y float64) float64 {
	if y <= 0 {
		return 0.0
	}
	for i := 0; i < len(f) - 1; i++ {
		if f[i+1][1] >= y {
			scale := (y - f[i][1]) / (f[i+1][1] - f[i][1])
			return f[i][0] + scale*(f[i+1][0]-f[i][0])
		}
	}
	return 1.0 // y is 1.0 or greater
}

// Check whether the piecewise linear function is valid as a CDF.
// The function must start at (0,0), end at (1,1), and its points must
// be monotonically increasing.
func Check(f [][2]float64) error {
	if len(f) < 2 {
		return fmt.Errorf("CDF must have at least start and end point")
	}
	if f[0] != [2]float64{0.0, 0.0} {
		return fmt.Errorf("CDF must start at (0,0), but starts at (%v,%v)", f[0][0], f[0][1])
	}
	last := len(f) - 1
	if f[last] != [2]float64{1.0, 1.0} {
		return fmt.Errorf("CDF must end at (1,1), but ends at (%v,%v)", f[last][0], f[last][1])
	}
	for i := 0; i < len(f) - 1; i++ {
		if f[i][0] >= f[i+1][0] && f[i][1] >= f[i+1][1] {
			return fmt.Errorf("CDF points must be strictly monotonically increasing, but point %v (%v,%v) is not smaller than point %v (%v,%v)", i, f[i][0], f[i][1], i+1, f[i+1][0], f[i+1][1])
		}
	}
	return nil
}

// FromDistribution converts a discrete distribution into a piecewise
// linear CDF over the normalized rank domain: the i-th outcome is
// mapped to the point (i/width, cumulative probability up to i). The
// point list is compressed to statistics.NumECDFPoints with the
// Visvalingam-Whyatt algorithm. See:
// https://en.wikipedia.org/wiki/Visvalingam-Whyatt_algorithm
func FromDistribution(d *distribution.Distribution) ([][2]float64, error) {
	width := d.Width()
	ls := orb.LineString{orb.Point{0.0, 0.0}}
	sum := 0.0 // Kahan's summation algorithm for cumulative probabilities
	c := 0.0   // Compensation term of Kahan's algorithm
	for i := 0; i < width; i++ {
		p, err := d.Get(i + 1)
		if err != nil {
			return nil, err
		}
		y := p - c
		t := sum + y
		c = (t - sum) - y
		sum = t
		ls = append(ls, orb.Point{float64(i+1) / float64(width), sum})
	}
	// pin the end point to (1,1); the cumulative sum only reaches one
	// within the distribution's tolerance
	ls[len(ls)-1] = orb.Point{1.0, 1.0}

	simplifier := simplify.VisvalingamKeep(statistics.NumECDFPoints)
	compressed := simplifier.Simplify(ls).(orb.LineString)
	f := make([][2]float64, len(compressed))
	for i := range compressed {
		f[i] = [2]float64(compressed[i])
	}
	if err := Check(f); err != nil {
		return nil, fmt.Errorf("FromDistribution: cannot build a valid CDF; %v", err)
	}
	return f, nil
}
