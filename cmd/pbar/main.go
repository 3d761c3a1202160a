// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the pbar command-line interface (CLI).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/pbar"
	"github.com/matt-FFFFFF/pbar/cmd/pbar/config"
	"github.com/matt-FFFFFF/pbar/cmd/pbar/demo"
	"github.com/matt-FFFFFF/pbar/cmd/pbar/exec"
	"github.com/matt-FFFFFF/pbar/internal/ctxlog"
	"github.com/matt-FFFFFF/pbar/internal/signalbroker"
	"github.com/urfave/cli/v3"
)

const logFormatFlag = "log-format"

// rootCmd is the root command for the CLI.
var rootCmd = &cli.Command{
	Commands: []*cli.Command{
		demo.DemoCmd,
		exec.ExecCmd,
		config.ConfigCmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "pbar",
	Description: `pbar draws a single-line progress bar on stderr and redraws it in place.
It can replay a demonstration of both bar modes, or wrap a long running command
and show its latest output line until it exits.

Configuration files are YAML or HCL and may be fetched with Hashicorp's go-getter syntax.
See https://github.com/hashicorp/go-getter.`,
	Usage:     "pbar exec -- make build",
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	EnableShellCompletion: true,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     logFormatFlag,
			Usage:    "Log record format, pretty or json. The level is set with " + ctxlog.LogLevelEnvVar,
			Value:    ctxlog.FormatPretty,
			OnlyOnce: true,
		},
	},
	Before: setLogger,
}

// setLogger stores the logger selected by the log format flag in the command context.
func setLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	logger, err := ctxlog.ForFormat(cmd.String(logFormatFlag))
	if err != nil {
		return ctx, cli.Exit(err.Error(), 1)
	}

	return ctxlog.New(ctx, logger), nil
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	defer cancel()

	stopSignals := signalbroker.Listen(ctx, cancel)
	defer stopSignals()

	rootCmd.Version = fmt.Sprintf("%s (commit: %s)", pbar.Version, pbar.Commit)

	err := rootCmd.Run(ctx, os.Args) // Err is handled by cli framework

	// Check if the context was cancelled (e.g., due to signals)
	if ctx.Err() != nil {
		ctxlog.Logger(ctx).Error("command terminated due to cancellation", "error", ctx.Err())
		os.Exit(1)
	}

	if err != nil {
		ctxlog.Logger(ctx).Error("command execution failed", "error", err)
		os.Exit(1)
	}

	ctxlog.Logger(ctx).Info("command completed successfully")
}
