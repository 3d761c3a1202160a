// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config contains the command that prints the effective configuration.
package config

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/pbar/cmd/pbar/cmdstate"
	pbarconfig "github.com/matt-FFFFFF/pbar/internal/config"
	"github.com/urfave/cli/v3"
)

// ConfigCmd prints the configuration that demo and exec would use.
var ConfigCmd = &cli.Command{
	Name:  "config",
	Usage: "Print the effective configuration as YAML",
	Description: `Loads the configuration file, applies the command line flags and prints the result.
The output can be saved and passed back with --config.`,
	Flags:  cmdstate.BarFlags(),
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	cfg, err := cmdstate.Settings(ctx, cmd, cmd.Root().ErrWriter)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	data, err := pbarconfig.Marshal(cfg)
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to render configuration: %s", err.Error()), 1)
	}

	if _, err := cmd.Root().Writer.Write(data); err != nil {
		return cli.Exit(fmt.Sprintf("failed to write configuration: %s", err.Error()), 1)
	}

	return nil
}
