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

package utils

import "github.com/urfave/cli/v2"

var (
	// OutputFlag defines the output path of a command.
	OutputFlag = cli.PathFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output path",
	}
	// KindFlag selects the distribution kind of a generated model.
	KindFlag = cli.StringFlag{
		Name:  "kind",
		Usage: "distribution kind (uniform, dirac, exponential, linear, zeta, two-step)",
		Value: "uniform",
	}
	// WidthFlag sets the number of outcomes of a distribution.
	WidthFlag = cli.IntFlag{
		Name:  "width",
		Usage: "number of outcomes of the distribution",
		Value: 1000,
	}
	// LambdaFlag sets the decay parameter of the exponential distribution.
	LambdaFlag = cli.Float64Flag{
		Name:  "lambda",
		Usage: "decay parameter of the exponential distribution in [0,1]",
		Value: 0.95,
	}
	// ExponentFlag sets the exponent of the zeta distribution.
	ExponentFlag = cli.Float64Flag{
		Name:  "exponent",
		Usage: "exponent of the zeta distribution",
		Value: 1.0,
	}
	// ShiftFlag sets the rank shift of the zeta distribution.
	ShiftFlag = cli.Float64Flag{
		Name:  "shift",
		Usage: "rank shift of the zeta distribution",
		Value: 1.0,
	}
	// SpreadFlag sets the spread of the linear and two-step distributions.
	SpreadFlag = cli.Float64Flag{
		Name:  "spread",
		Usage: "spread of the linear and two-step distributions",
		Value: 1.0,
	}
	// SampleSizeFlag sets the number of samples to draw.
	SampleSizeFlag = cli.IntFlag{
		Name:  "sample-size",
		Usage: "number of samples to draw",
		Value: 100000,
	}
	// RandomSeedFlag sets the seed of the uniform random source. A
	// negative value picks a time-based seed.
	RandomSeedFlag = cli.Int64Flag{
		Name:  "random-seed",
		Usage: "set random seed",
		Value: -1,
	}
	// PortFlag sets the port of the visualization web server.
	PortFlag = cli.StringFlag{
		Name:    "port",
		Aliases: []string{"p"},
		Usage:   "port of the visualization web server",
		Value:   "8080",
	}
)
