// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmdstate holds the flags and settings shared by every pbar
// subcommand that draws a progress bar.
package cmdstate

import (
	"context"
	"io"

	"github.com/matt-FFFFFF/pbar"
	"github.com/matt-FFFFFF/pbar/internal/config"
	"github.com/matt-FFFFFF/pbar/internal/console"
	"github.com/matt-FFFFFF/pbar/internal/ctxlog"
	"github.com/urfave/cli/v3"
)

// Flag names.
const (
	ConfigFlag    = "config"
	MessageFlag   = "message"
	QuietFlag     = "quiet"
	IndicatorFlag = "indicator"
	BarWidthFlag  = "bar-width"
	ETAFlag       = "eta"
)

const (
	// frameChrome is the width of ": ||" plus the longest frame suffix,
	// " 100% [Total: 00:00]", and one spare column to avoid wrapping.
	frameChrome = 4 + 20 + 1
	// minFitBarWidth is the narrowest track used when shrinking to fit the terminal.
	minFitBarWidth = 5
)

// BarFlags returns the flags shared by the commands that draw a bar.
func BarFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    ConfigFlag,
			Aliases: []string{"c"},
			Usage: "Specify a YAML or HCL configuration file. " +
				"Supports Hashicorp's go-getter syntax for fetching files from various sources.",
			TakesFile: true,
			OnlyOnce:  true,
		},
		&cli.StringFlag{
			Name:     MessageFlag,
			Aliases:  []string{"m"},
			Usage:    "Message shown in front of the bar",
			OnlyOnce: true,
		},
		&cli.StringFlag{
			Name:     IndicatorFlag,
			Aliases:  []string{"i"},
			Usage:    "Single character used to fill the bar",
			OnlyOnce: true,
		},
		&cli.IntFlag{
			Name:     BarWidthFlag,
			Usage:    "Width of the bar track in cells",
			OnlyOnce: true,
		},
		&cli.BoolFlag{
			Name:        QuietFlag,
			Aliases:     []string{"q"},
			Usage:       "Do not draw the bar. Defaults to true when stderr is not a terminal",
			DefaultText: "auto",
			OnlyOnce:    true,
		},
		&cli.BoolFlag{
			Name:        ETAFlag,
			Usage:       "Show the estimated total time on determinate bars",
			DefaultText: "false",
			OnlyOnce:    true,
		},
	}
}

// Settings resolves the configuration named by the config flag and applies the
// command line overrides. out is the stream the bar will be drawn on.
func Settings(ctx context.Context, cmd *cli.Command, out io.Writer) (config.Config, error) {
	cfg, err := config.Resolve(ctx, cmd.String(ConfigFlag))
	if err != nil {
		return config.Config{}, err
	}

	if cmd.IsSet(MessageFlag) {
		cfg.Message = cmd.String(MessageFlag)
	}

	if cmd.IsSet(IndicatorFlag) {
		cfg.Indicator = cmd.String(IndicatorFlag)
	}

	if cmd.IsSet(BarWidthFlag) {
		cfg.BarWidth = int(cmd.Int(BarWidthFlag))
	}

	if cmd.IsSet(ETAFlag) {
		cfg.ShowETA = cmd.Bool(ETAFlag)
	}

	switch {
	case cmd.IsSet(QuietFlag):
		cfg.Quiet = cmd.Bool(QuietFlag)
	case !console.IsTerminal(out):
		ctxlog.Debug(ctx, "output is not a terminal, disabling the progress bar")

		cfg.Quiet = true
	}

	if cols, ok := console.Width(out); ok {
		cfg.BarWidth = FitBarWidth(cols, cfg.MessageWidth, cfg.BarWidth)
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

// FitBarWidth shrinks barWidth so a whole frame fits in cols terminal columns.
func FitBarWidth(cols, messageWidth, barWidth int) int {
	available := cols - messageWidth - frameChrome
	if available >= barWidth {
		return barWidth
	}

	return max(available, minFitBarWidth)
}

// NewBar creates a progress bar drawing on out from cfg.
func NewBar(ctx context.Context, cfg config.Config, out io.Writer, extra ...pbar.Option) (*pbar.ProgressBar, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}

	opts = append(opts, pbar.WithWriter(out), pbar.WithLogger(ctxlog.Logger(ctx)))

	return pbar.New(ctx, cfg.Message, append(opts, extra...)...)
}
