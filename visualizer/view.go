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

package visualizer

import (
	"fmt"
	"sync"

	"github.com/szape/dr-microbenchmarks/model"
	"github.com/szape/dr-microbenchmarks/statistics/continuous"
	"github.com/szape/dr-microbenchmarks/statistics/distribution"
)

type viewState struct {
	m         *model.Model
	pmf       []float64    // analytic probabilities per outcome
	empirical []float64    // empirical probabilities from sampling
	ecdf      [][2]float64 // compressed piecewise-linear CDF
}

var (
	currentMu    sync.RWMutex
	currentState *viewState
)

func setViewState(m *model.Model, u distribution.UniformSource, sampleSize int) error {
	if m == nil {
		return fmt.Errorf("visualizer: model is nil")
	}
	derived, err := buildViewState(m, u, sampleSize)
	if err != nil {
		return err
	}
	currentMu.Lock()
	currentState = derived
	currentMu.Unlock()
	return nil
}

func currentView() (*viewState, error) {
	currentMu.RLock()
	defer currentMu.RUnlock()
	if currentState == nil {
		return nil, fmt.Errorf("visualizer: no view state set")
	}
	return currentState, nil
}

// buildViewState materializes the model and derives the chart series:
// the analytic probability profile, an empirical profile obtained by
// sampling, and the compressed cumulative distribution.
func buildViewState(m *model.Model, u distribution.UniformSource, sampleSize int) (*viewState, error) {
	d, err := m.Build()
	if err != nil {
		return nil, err
	}
	pmf := make([]float64, d.Width())
	for i := range pmf {
		if pmf[i], err = d.Get(i + 1); err != nil {
			return nil, err
		}
	}
	empirical, err := d.UnorderedEmpiric(u, sampleSize)
	if err != nil {
		return nil, err
	}
	ecdf, err := continuous.FromDistribution(d)
	if err != nil {
		return nil, err
	}
	return &viewState{m: m, pmf: pmf, empirical: empirical, ecdf: ecdf}, nil
}
