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

// Package model persists workload distributions as JSON model files,
// either as a parametric shape or as raw empirical probabilities.
package model

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/szape/dr-microbenchmarks/statistics/distribution"
)

// Kinds of distribution models.
const (
	KindUniform     = "uniform"
	KindDirac       = "dirac"
	KindExponential = "exponential"
	KindLinear      = "linear"
	KindZeta        = "zeta"
	KindTwoStep     = "two-step"
	KindEmpirical   = "empirical"
)

// Model describes a workload distribution in its JSON file form.
// Parametric kinds carry their shape parameters; the empirical kind
// carries the raw probability array.
type Model struct {
	Kind          string    `json:"kind"`
	Width         int       `json:"width,omitempty"`
	Lambda        float64   `json:"lambda,omitempty"`
	Exponent      float64   `json:"exponent,omitempty"`
	Shift         float64   `json:"shift,omitempty"`
	Spread        float64   `json:"spread,omitempty"`
	Probabilities []float64 `json:"probabilities,omitempty"`
}

// Empirical wraps a probability array in an empirical model.
func Empirical(probabilities []float64) *Model {
	return &Model{
		Kind:          KindEmpirical,
		Width:         len(probabilities),
		Probabilities: probabilities,
	}
}

// Build materializes the distribution described by the model. The
// distribution constructors validate the parameters; an unknown kind
// is an error. Empirical probabilities come from sampling and keep
// their per-outcome order in the file; they are sorted into the
// descending shape here.
func (m *Model) Build() (*distribution.Distribution, error) {
	switch m.Kind {
	case KindUniform:
		return distribution.Uniform(m.Width)
	case KindDirac:
		return distribution.Dirac(m.Width)
	case KindExponential:
		return distribution.Exponential(m.Lambda, m.Width)
	case KindLinear:
		return distribution.Linear(int(m.Spread), m.Width)
	case KindZeta:
		return distribution.Zeta(m.Exponent, m.Shift, m.Width)
	case KindTwoStep:
		return distribution.TwoStep(m.Spread, m.Width)
	case KindEmpirical:
		if m.Width != 0 && m.Width != len(m.Probabilities) {
			return nil, errors.Newf("empirical model width %v does not match its %v probabilities", m.Width, len(m.Probabilities))
		}
		p := make([]float64, len(m.Probabilities))
		copy(p, m.Probabilities)
		sort.Sort(sort.Reverse(sort.Float64Slice(p)))
		return distribution.New(p)
	default:
		return nil, errors.Newf("unknown distribution kind %q", m.Kind)
	}
}

// Read loads a model from a JSON file.
func Read(filename string) (*Model, error) {
	contents, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read model file %v", filename)
	}
	var m Model
	if err := json.Unmarshal(contents, &m); err != nil {
		return nil, errors.Wrapf(err, "cannot parse model file %v", filename)
	}
	return &m, nil
}

// Write stores the model as an indented JSON file.
func (m *Model) Write(filename string) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "cannot create model file %v", filename)
	}
	defer func() {
		err = errors.CombineErrors(err, f.Close())
	}()
	out, err := json.MarshalIndent(m, "", "    ")
	if err != nil {
		return errors.Wrap(err, "cannot encode model")
	}
	if _, err := f.Write(out); err != nil {
		return errors.Wrapf(err, "cannot write model file %v", filename)
	}
	return nil
}
