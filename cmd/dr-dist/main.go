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

package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/szape/dr-microbenchmarks/cmd/dr-dist/dist"
)

// DistApp data structure
var DistApp = cli.App{
	Name:      "Workload Distributions",
	HelpName:  "dr-dist",
	Usage:     "generate, sample, estimate and visualize workload distributions",
	Copyright: "(c) 2025 the dr-microbenchmarks authors",
	Commands: []*cli.Command{
		&dist.GenerateCommand,
		&dist.SampleCommand,
		&dist.EstimateCommand,
		&dist.VisualizeCommand,
	},
}

// main implements the dr-dist functions
func main() {
	if err := DistApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
