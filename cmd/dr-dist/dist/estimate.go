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

package dist

import (
	"github.com/urfave/cli/v2"

	"github.com/szape/dr-microbenchmarks/logger"
	"github.com/szape/dr-microbenchmarks/model"
	"github.com/szape/dr-microbenchmarks/statistics/exponential"
	"github.com/szape/dr-microbenchmarks/utils"
)

// EstimateCommand data structure for the estimate app.
var EstimateCommand = cli.Command{
	Action:    estimateAction,
	Name:      "estimate",
	Usage:     "fit an exponential decay parameter to a model",
	ArgsUsage: "<model.json>",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&utils.OutputFlag,
	},
	Description: `
The estimate command requires one argument: <model.json>

The decay parameter of an exponential distribution is fitted to the
probabilities of the model, typically an empirical model produced by
the sample command.`,
}

// estimateAction fits the exponential decay parameter to the
// probabilities of a model file.
func estimateAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.OneModelFileArg)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "DistEstimate")

	m, err := model.Read(cfg.ModelFile)
	if err != nil {
		return err
	}

	// empirical models carry their probabilities directly; parametric
	// models are materialized first
	pmf := m.Probabilities
	if m.Kind != model.KindEmpirical {
		d, err := m.Build()
		if err != nil {
			return err
		}
		pmf = make([]float64, d.Width())
		for i := range pmf {
			if pmf[i], err = d.Get(i + 1); err != nil {
				return err
			}
		}
	}

	lambda, err := exponential.ApproximateLambda(pmf)
	if err != nil {
		return err
	}
	log.Noticef("Fitted decay parameter lambda=%v", lambda)

	if cfg.Output != "" {
		fitted := &model.Model{Kind: model.KindExponential, Width: len(pmf), Lambda: lambda}
		log.Noticef("Write fitted model file %v", cfg.Output)
		return fitted.Write(cfg.Output)
	}
	return nil
}
