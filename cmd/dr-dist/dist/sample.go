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
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"

	"github.com/szape/dr-microbenchmarks/logger"
	"github.com/szape/dr-microbenchmarks/model"
	"github.com/szape/dr-microbenchmarks/statistics/distribution"
	"github.com/szape/dr-microbenchmarks/utils"
)

// maxTableRows caps the frequency report at the most likely outcomes.
const maxTableRows = 20

// SampleCommand data structure for the sample app.
var SampleCommand = cli.Command{
	Action:    sampleAction,
	Name:      "sample",
	Usage:     "draw samples from a model and report outcome frequencies",
	ArgsUsage: "<model.json>",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&utils.SampleSizeFlag,
		&utils.RandomSeedFlag,
		&utils.OutputFlag,
	},
	Description: `
The sample command requires one argument: <model.json>

The model file is materialized and sampled; the observed outcome
frequencies are reported and optionally written as an empirical model.`,
}

// sampleAction draws samples from a model file and reports the
// empirical outcome frequencies.
func sampleAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.OneModelFileArg)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "DistSample")

	m, err := model.Read(cfg.ModelFile)
	if err != nil {
		return err
	}
	d, err := m.Build()
	if err != nil {
		return err
	}

	log.Infof("Draw %v samples from a %v distribution of width %v", cfg.SampleSize, m.Kind, d.Width())
	rg := rand.New(rand.NewSource(cfg.RandomSeed))
	start := time.Now()
	pmf, err := d.UnorderedEmpiric(rg, cfg.SampleSize)
	if err != nil {
		return err
	}
	hours, minutes, seconds := logger.ParseTime(time.Since(start))
	log.Infof("Sampling took %vh %vm %vs", hours, minutes, seconds)

	if err := printFrequencies(d, pmf); err != nil {
		return err
	}
	if cfg.Output != "" {
		log.Noticef("Write empirical model file %v", cfg.Output)
		return model.Empirical(pmf).Write(cfg.Output)
	}
	return nil
}

// printFrequencies renders the analytic and empirical probabilities of
// the most likely outcomes as a table.
func printFrequencies(d *distribution.Distribution, pmf []float64) error {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Outcome", "Probability", "Empirical"})
	rows := len(pmf)
	if rows > maxTableRows {
		rows = maxTableRows
	}
	for i := 0; i < rows; i++ {
		p, err := d.Get(i + 1)
		if err != nil {
			return err
		}
		t.AppendRow(table.Row{i + 1, fmt.Sprintf("%.6f", p), fmt.Sprintf("%.6f", pmf[i])})
	}
	t.Render()
	return nil
}
