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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestShape_ProbabilityProfiles checks the exact probability profiles of the
// canonical constructors.
func TestShape_ProbabilityProfiles(t *testing.T) {
	tests := []struct {
		name  string
		build func() (*Distribution, error)
		want  []float64
	}{
		{
			name:  "uniform",
			build: func() (*Distribution, error) { return Uniform(5) },
			want:  []float64{0.2, 0.2, 0.2, 0.2, 0.2},
		},
		{
			name:  "dirac",
			build: func() (*Distribution, error) { return Dirac(4) },
			want:  []float64{1.0, 0.0, 0.0, 0.0},
		},
		{
			name:  "linear full triangle",
			build: func() (*Distribution, error) { return Linear(3, 5) },
			want:  []float64{3.0 / 6.0, 2.0 / 6.0, 1.0 / 6.0, 0.0, 0.0},
		},
		{
			name:  "linear truncated triangle",
			build: func() (*Distribution, error) { return Linear(7, 5) },
			want:  []float64{7.0 / 25.0, 6.0 / 25.0, 5.0 / 25.0, 4.0 / 25.0, 3.0 / 25.0},
		},
		{
			name:  "exponential",
			build: func() (*Distribution, error) { return Exponential(0.5, 3) },
			want:  []float64{1.0 / 1.75, 0.5 / 1.75, 0.25 / 1.75},
		},
		{
			name:  "exponential lambda one is uniform",
			build: func() (*Distribution, error) { return Exponential(1.0, 4) },
			want:  []float64{0.25, 0.25, 0.25, 0.25},
		},
		{
			name:  "exponential lambda zero is dirac",
			build: func() (*Distribution, error) { return Exponential(0.0, 3) },
			want:  []float64{1.0, 0.0, 0.0},
		},
		{
			name:  "zeta harmonic",
			build: func() (*Distribution, error) { return Zeta(1.0, 1.0, 3) },
			want:  []float64{6.0 / 11.0, 3.0 / 11.0, 2.0 / 11.0},
		},
		{
			name:  "zeta exponent zero is uniform",
			build: func() (*Distribution, error) { return Zeta(0.0, 1.0, 4) },
			want:  []float64{0.25, 0.25, 0.25, 0.25},
		},
		{
			name:  "two-step fractional spread",
			build: func() (*Distribution, error) { return TwoStep(2.5, 4) },
			want:  []float64{0.4, 0.4, 0.2, 0.0},
		},
		{
			name:  "two-step integral spread",
			build: func() (*Distribution, error) { return TwoStep(3.0, 3) },
			want:  []float64{1.0 / 3.0, 1.0 / 3.0, 1.0 / 3.0},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d, err := test.build()
			require.NoError(t, err)
			require.Equal(t, len(test.want), d.Width())
			for i, want := range test.want {
				got, err := d.Get(i + 1)
				require.NoError(t, err)
				assert.InDelta(t, want, got, 1e-12, "outcome %d", i+1)
			}
		})
	}
}

// TestShape_AllConstructorsSatisfyInvariants checks that every valid
// parameterization yields a non-increasing profile with a total mass of one.
func TestShape_AllConstructorsSatisfyInvariants(t *testing.T) {
	builds := map[string]func() (*Distribution, error){
		"uniform":             func() (*Distribution, error) { return Uniform(17) },
		"dirac":               func() (*Distribution, error) { return Dirac(9) },
		"exponential":         func() (*Distribution, error) { return Exponential(0.93, 100) },
		"linear short spread": func() (*Distribution, error) { return Linear(4, 50) },
		"linear long spread":  func() (*Distribution, error) { return Linear(80, 50) },
		"zeta":                func() (*Distribution, error) { return Zeta(0.8, 2.5, 64) },
		"two-step":            func() (*Distribution, error) { return TwoStep(12.25, 40) },
	}
	for name, build := range builds {
		t.Run(name, func(t *testing.T) {
			d, err := build()
			require.NoError(t, err)
			sum := 0.0
			prev := 1.0
			for i := 1; i <= d.Width(); i++ {
				p, err := d.Get(i)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, p, 0.0, "outcome %d", i)
				assert.LessOrEqual(t, p, prev+1e-9, "outcome %d", i)
				prev = p
				sum += p
			}
			assert.InDelta(t, 1.0, sum, float64(d.Width())/1e6)
		})
	}
}

// TestShape_ParameterValidation checks that out-of-range parameters fail
// before any distribution is built.
func TestShape_ParameterValidation(t *testing.T) {
	fails := map[string]func() (*Distribution, error){
		"exponential negative lambda": func() (*Distribution, error) { return Exponential(-0.1, 5) },
		"exponential lambda above 1":  func() (*Distribution, error) { return Exponential(1.1, 5) },
		"exponential zero width":      func() (*Distribution, error) { return Exponential(0.5, 0) },
		"uniform zero width":          func() (*Distribution, error) { return Uniform(0) },
		"dirac negative width":        func() (*Distribution, error) { return Dirac(-1) },
		"linear zero spread":          func() (*Distribution, error) { return Linear(0, 5) },
		"linear zero width":           func() (*Distribution, error) { return Linear(3, 0) },
		"zeta negative exponent":      func() (*Distribution, error) { return Zeta(-1.0, 1.0, 5) },
		"zeta zero shift":             func() (*Distribution, error) { return Zeta(1.0, 0.0, 5) },
		"zeta zero width":             func() (*Distribution, error) { return Zeta(1.0, 1.0, 0) },
		"two-step zero spread":        func() (*Distribution, error) { return TwoStep(0.0, 5) },
		"two-step spread above width": func() (*Distribution, error) { return TwoStep(5.1, 5) },
		"two-step zero width":         func() (*Distribution, error) { return TwoStep(2.0, 0) },
	}
	for name, build := range fails {
		t.Run(name, func(t *testing.T) {
			_, err := build()
			assert.Error(t, err)
		})
	}
}
