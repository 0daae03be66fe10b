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

package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixedCost float64

func (c fixedCost) MigrationCost() (float64, bool) {
	return float64(c), true
}

type unknownCost struct{}

func (unknownCost) MigrationCost() (float64, bool) {
	return 0, false
}

// TestMigration_EstimateFrom probes implementing and non-implementing
// components.
func TestMigration_EstimateFrom(t *testing.T) {
	cost, ok := EstimateFrom(fixedCost(12.5))
	assert.True(t, ok)
	assert.Equal(t, 12.5, cost)

	_, ok = EstimateFrom(unknownCost{})
	assert.False(t, ok)

	_, ok = EstimateFrom("not an estimator")
	assert.False(t, ok)
}
