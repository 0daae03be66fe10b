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
	"github.com/szape/dr-microbenchmarks/utils"
)

// GenerateCommand data structure for the generate app.
var GenerateCommand = cli.Command{
	Action:    generateAction,
	Name:      "generate",
	Usage:     "generate a distribution model file",
	ArgsUsage: "",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&utils.KindFlag,
		&utils.WidthFlag,
		&utils.LambdaFlag,
		&utils.ExponentFlag,
		&utils.ShiftFlag,
		&utils.SpreadFlag,
		&utils.OutputFlag,
	},
	Description: "The generate command produces a model.json file for the selected distribution kind and parameters.",
}

// generateAction produces a model file for the selected distribution
// kind and parameters.
func generateAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.NoArgs)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "DistGenerate")

	m := &model.Model{Kind: cfg.Kind, Width: cfg.Width}
	switch cfg.Kind {
	case model.KindExponential:
		m.Lambda = cfg.Lambda
	case model.KindZeta:
		m.Exponent = cfg.Exponent
		m.Shift = cfg.Shift
	case model.KindLinear, model.KindTwoStep:
		m.Spread = cfg.Spread
	}
	// reject unknown kinds and invalid parameters before writing
	if _, err := m.Build(); err != nil {
		return err
	}
	if cfg.Output == "" {
		cfg.Output = "./model.json"
	}
	log.Noticef("Write model file %v", cfg.Output)
	return m.Write(cfg.Output)
}
