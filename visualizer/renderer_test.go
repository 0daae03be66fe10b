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
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/szape/dr-microbenchmarks/model"
)

// TestRenderer_MainPageLinksCharts checks the index page.
func TestRenderer_MainPageLinksCharts(t *testing.T) {
	rec := httptest.NewRecorder()
	renderMain(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	body := rec.Body.String()
	assert.Contains(t, body, probabilityRef)
	assert.Contains(t, body, cumulativeRef)
}

// TestRenderer_ChartsRequireViewState checks that chart pages refuse to
// render before a view state is set and render afterwards.
func TestRenderer_ChartsRequireViewState(t *testing.T) {
	// reset shared view state
	currentMu.Lock()
	currentState = nil
	currentMu.Unlock()

	rec := httptest.NewRecorder()
	renderProbability(rec, httptest.NewRequest(http.MethodGet, "/"+probabilityRef, nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	m := &model.Model{Kind: model.KindZeta, Width: 100, Exponent: 1.0, Shift: 1.0}
	rg := rand.New(rand.NewSource(7))
	require.NoError(t, setViewState(m, rg, 10000))

	rec = httptest.NewRecorder()
	renderProbability(rec, httptest.NewRequest(http.MethodGet, "/"+probabilityRef, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "Analytic"))

	rec = httptest.NewRecorder()
	renderCumulative(rec, httptest.NewRequest(http.MethodGet, "/"+cumulativeRef, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "CDF"))
}
