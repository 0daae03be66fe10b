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

// Package migration declares the capability of reporting the cost of
// migrating workload state between placements.
package migration

// CostEstimator is implemented by components that can report an
// estimate of their migration cost. The query has no side effects;
// the boolean result is false when no estimate is available.
type CostEstimator interface {
	MigrationCost() (float64, bool)
}

// EstimateFrom probes a component for the cost-estimation capability.
// It returns the component's estimate, or false if the component does
// not implement CostEstimator or has no estimate available.
func EstimateFrom(v any) (float64, bool) {
	if estimator, ok := v.(CostEstimator); ok {
		return estimator.MigrationCost()
	}
	return 0, false
}
