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

package continuous

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/szape/dr-microbenchmarks/statistics"
	"github.com/szape/dr-microbenchmarks/statistics/distribution"
)

// TestContinuous_Check tests the validation of piecewise linear CDFs.
func TestContinuous_Check(t *testing.T) {
	valid := [][2]float64{{0.0, 0.0}, {0.5, 0.8}, {1.0, 1.0}}
	assert.NoError(t, Check(valid))

	assert.Error(t, Check([][2]float64{{0.0, 0.0}}), "too short")
	assert.Error(t, Check([][2]float64{{0.1, 0.0}, {1.0, 1.0}}), "wrong start")
	assert.Error(t, Check([][2]float64{{0.0, 0.0}, {1.0, 0.9}}), "wrong end")
	assert.Error(t, Check([][2]float64{{0.0, 0.0}, {0.5, 0.5}, {0.5, 0.5}, {1.0, 1.0}}), "repeated point")
}

// TestContinuous_CDFAndQuantileInterpolate checks linear interpolation and
// the inverse relation between CDF and Quantile.
func TestContinuous_CDFAndQuantileInterpolate(t *testing.T) {
	f := [][2]float64{{0.0, 0.0}, {0.5, 0.8}, {1.0, 1.0}}

	assert.Equal(t, 0.0, CDF(f, 0.0))
	assert.InDelta(t, 0.4, CDF(f, 0.25), 1e-12)
	assert.InDelta(t, 0.8, CDF(f, 0.5), 1e-12)
	assert.Equal(t, 1.0, CDF(f, 1.0))
	assert.Equal(t, 1.0, CDF(f, 1.5))

	assert.Equal(t, 0.0, Quantile(f, 0.0))
	assert.InDelta(t, 0.25, Quantile(f, 0.4), 1e-12)
	assert.InDelta(t, 0.75, Quantile(f, 0.9), 1e-12)
	assert.Equal(t, 1.0, Quantile(f, 1.0))

	for _, x := range []float64{0.1, 0.3, 0.55, 0.9} {
		assert.InDelta(t, x, Quantile(f, CDF(f, x)), 1e-9, "roundtrip at %v", x)
	}
}

// TestContinuous_FromDistributionUniform checks that a uniform distribution
// produces the identity CDF over the normalized rank domain.
func TestContinuous_FromDistributionUniform(t *testing.T) {
	d, err := distribution.Uniform(100)
	require.NoError(t, err)

	f, err := FromDistribution(d)
	require.NoError(t, err)
	require.NoError(t, Check(f))

	for _, x := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
		assert.InDelta(t, x, CDF(f, x), 1e-6, "CDF at %v", x)
	}
}

// TestContinuous_FromDistributionCompresses checks that very wide
// distributions are reduced to the configured number of points while the
// skew of the shape is preserved.
func TestContinuous_FromDistributionCompresses(t *testing.T) {
	d, err := distribution.Zeta(1.2, 1.0, 50000)
	require.NoError(t, err)

	f, err := FromDistribution(d)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(f), statistics.NumECDFPoints)

	assert.Equal(t, [2]float64{0.0, 0.0}, f[0])
	assert.Equal(t, [2]float64{1.0, 1.0}, f[len(f)-1])

	// a power law concentrates mass on the lowest ranks
	assert.Greater(t, CDF(f, 0.1), 0.5)
}
