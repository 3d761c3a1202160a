// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package demo contains the command that walks a progress bar through every
// state: counting, waiting, counting again with a new message, and finishing.
package demo

import (
	"context"
	"fmt"
	"time"

	"github.com/matt-FFFFFF/pbar"
	"github.com/matt-FFFFFF/pbar/cmd/pbar/cmdstate"
	"github.com/matt-FFFFFF/pbar/internal/ctxlog"
	"github.com/urfave/cli/v3"
)

const (
	maxFlag   = "max"
	delayFlag = "delay"
	waitFlag  = "wait"

	defaultWait    = 2 * time.Second
	waitingMessage = "Waiting..."
	halfwayMessage = "Halfway there"
)

// DemoCmd draws a scripted progress bar sequence.
var DemoCmd = &cli.Command{
	Name:  "demo",
	Usage: "Show the progress bar in both modes",
	Description: `Counts a determinate bar up to max, switches to an indeterminate
animation for the wait period, then counts up again while changing the message halfway.`,
	Flags: append(cmdstate.BarFlags(),
		&cli.IntFlag{
			Name:     maxFlag,
			Usage:    "Total of the determinate bar. Defaults to the configured max",
			OnlyOnce: true,
		},
		&cli.DurationFlag{
			Name:     delayFlag,
			Usage:    "Pause between determinate steps. Defaults to the configured step_delay",
			OnlyOnce: true,
		},
		&cli.DurationFlag{
			Name:     waitFlag,
			Usage:    "Duration of the indeterminate phase",
			Value:    defaultWait,
			OnlyOnce: true,
		},
	),
	Action: actionFunc,
}

// Scenario describes one demo run.
type Scenario struct {
	Message string
	Max     int
	Delay   time.Duration
	Wait    time.Duration
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	out := cmd.Root().ErrWriter

	cfg, err := cmdstate.Settings(ctx, cmd, out)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if cmd.IsSet(maxFlag) {
		cfg.Max = int(cmd.Int(maxFlag))
	}

	if cmd.IsSet(delayFlag) {
		cfg.StepDelay = cmd.Duration(delayFlag)
	}

	cfg.Mode = pbar.Determinate.String()

	bar, err := cmdstate.NewBar(ctx, cfg, out)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	sc := Scenario{
		Message: cfg.Message,
		Max:     cfg.Max,
		Delay:   cfg.StepDelay,
		Wait:    cmd.Duration(waitFlag),
	}

	if err := Run(ctx, bar, sc); err != nil {
		return cli.Exit(fmt.Sprintf("demo interrupted: %s", err.Error()), 1)
	}

	return nil
}

// Run plays sc on bar, which must be in determinate mode.
// When ctx is cancelled the bar is finished and the context error returned.
func Run(ctx context.Context, bar *pbar.ProgressBar, sc Scenario) error {
	defer bar.Finish(true)

	if err := bar.SetMaxVal(sc.Max); err != nil {
		return err
	}

	ctxlog.Debug(ctx, "demo", "detail", "counting", "max", sc.Max)

	if err := count(ctx, bar, sc, ""); err != nil {
		return err
	}

	if err := bar.SetMode(pbar.Indeterminate, true); err != nil {
		return err
	}

	_ = bar.SetMessage(waitingMessage)
	bar.Start()

	ctxlog.Debug(ctx, "demo", "detail", "waiting", "duration", sc.Wait)

	if err := pause(ctx, sc.Wait); err != nil {
		return err
	}

	if err := bar.SetMode(pbar.Determinate, true); err != nil {
		return err
	}

	_ = bar.SetMessage(sc.Message)

	return count(ctx, bar, sc, halfwayMessage)
}

// count advances bar from 0 to sc.Max. A non-empty halfway message replaces
// the bar message once half of the steps are done.
func count(ctx context.Context, bar *pbar.ProgressBar, sc Scenario, halfway string) error {
	for i := range sc.Max + 1 {
		if halfway != "" && i == sc.Max/2 {
			_ = bar.SetMessage(halfway)
		}

		bar.SetCurrentVal(i)

		if err := pause(ctx, sc.Delay); err != nil {
			return err
		}
	}

	return nil
}

func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
