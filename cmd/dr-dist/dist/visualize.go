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
	"math/rand"

	"github.com/urfave/cli/v2"

	"github.com/szape/dr-microbenchmarks/logger"
	"github.com/szape/dr-microbenchmarks/model"
	"github.com/szape/dr-microbenchmarks/utils"
	"github.com/szape/dr-microbenchmarks/visualizer"
)

// VisualizeCommand data structure for the visualize app.
var VisualizeCommand = cli.Command{
	Action:    visualizeAction,
	Name:      "visualize",
	Usage:     "serve charts of a model in a web browser",
	ArgsUsage: "<model.json>",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&utils.PortFlag,
		&utils.SampleSizeFlag,
		&utils.RandomSeedFlag,
	},
	Description: `
The visualize command requires one argument: <model.json>

The model's analytic probabilities, an empirical re-estimation, and the
cumulative distribution are served as charts on the given port.`,
}

// visualizeAction serves the charts of a model file over HTTP.
func visualizeAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.OneModelFileArg)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "DistVisualize")

	m, err := model.Read(cfg.ModelFile)
	if err != nil {
		return err
	}

	rg := rand.New(rand.NewSource(cfg.RandomSeed))
	log.Noticef("Starting visualization on http://localhost:%v", cfg.Port)
	return visualizer.FireUpWeb(m, cfg.Port, rg, cfg.SampleSize)
}
