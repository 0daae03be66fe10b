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

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/szape/dr-microbenchmarks/logger"
)

// ArgumentMode determines the positional arguments a command expects.
type ArgumentMode int

const (
	// NoArgs commands take no positional arguments.
	NoArgs ArgumentMode = iota
	// OneModelFileArg commands take exactly one model file as argument.
	OneModelFileArg
)

// Config carries the parsed command-line configuration of a command.
type Config struct {
	AppName     string
	CommandName string

	LogLevel   string
	Output     string
	Kind       string
	Width      int
	Lambda     float64
	Exponent   float64
	Shift      float64
	Spread     float64
	SampleSize int
	RandomSeed int64
	Port       string

	// ModelFile is the positional model-file argument, if the mode has one.
	ModelFile string
}

// NewConfig reads the configuration of a command from its cli context
// and validates the positional arguments against the given mode.
func NewConfig(ctx *cli.Context, mode ArgumentMode) (*Config, error) {
	cfg := &Config{
		AppName:     ctx.App.HelpName,
		CommandName: ctx.Command.Name,
		LogLevel:    ctx.String(logger.LogLevelFlag.Name),
		Output:      ctx.Path(OutputFlag.Name),
		Kind:        ctx.String(KindFlag.Name),
		Width:       ctx.Int(WidthFlag.Name),
		Lambda:      ctx.Float64(LambdaFlag.Name),
		Exponent:    ctx.Float64(ExponentFlag.Name),
		Shift:       ctx.Float64(ShiftFlag.Name),
		Spread:      ctx.Float64(SpreadFlag.Name),
		SampleSize:  ctx.Int(SampleSizeFlag.Name),
		RandomSeed:  ctx.Int64(RandomSeedFlag.Name),
		Port:        ctx.String(PortFlag.Name),
	}
	switch mode {
	case NoArgs:
		if ctx.Args().Len() != 0 {
			return nil, fmt.Errorf("command %v takes no arguments", cfg.CommandName)
		}
	case OneModelFileArg:
		if ctx.Args().Len() != 1 {
			return nil, fmt.Errorf("command %v requires exactly one model file as argument", cfg.CommandName)
		}
		cfg.ModelFile = ctx.Args().Get(0)
	default:
		return nil, fmt.Errorf("unknown argument mode %v", mode)
	}
	if cfg.RandomSeed < 0 {
		cfg.RandomSeed = time.Now().UnixNano()
	}
	return cfg, nil
}
