// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package exec contains the command that runs a child process behind an
// indeterminate progress bar showing the child's latest output line.
package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	osexec "os/exec"
	"strings"

	"github.com/matt-FFFFFF/pbar"
	"github.com/matt-FFFFFF/pbar/cmd/pbar/cmdstate"
	"github.com/matt-FFFFFF/pbar/internal/ctxlog"
	"github.com/matt-FFFFFF/pbar/internal/lastline"
	"github.com/urfave/cli/v3"
)

const (
	showOutputFlag = "show-output"
	cliExitStr     = ""
)

// ErrNoCommand is returned when exec is called without a command to run.
var ErrNoCommand = errors.New("no command given")

// ExecCmd runs a command with a progress bar.
var ExecCmd = &cli.Command{
	Name:      "exec",
	Usage:     "Run a command behind an indeterminate progress bar",
	ArgsUsage: "-- COMMAND [ARGS...]",
	Description: `Runs COMMAND and animates a progress bar until it exits.
The last line the command writes to stdout or stderr becomes the bar message.
The exit status of COMMAND is returned.`,
	Flags: append(cmdstate.BarFlags(),
		&cli.BoolFlag{
			Name:        showOutputFlag,
			Aliases:     []string{"o"},
			Usage:       "Print the captured command output after it exits",
			DefaultText: "false",
			OnlyOnce:    true,
		},
	),
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		return cli.Exit(ErrNoCommand.Error(), 1)
	}

	out := cmd.Root().ErrWriter

	cfg, err := cmdstate.Settings(ctx, cmd, out)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if !cmd.IsSet(cmdstate.MessageFlag) && !cmd.IsSet(cmdstate.ConfigFlag) {
		cfg.Message = "Running " + strings.Join(args, " ")
	}

	cfg.Mode = pbar.Indeterminate.String()

	bar, err := cmdstate.NewBar(ctx, cfg, out)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	var captured bytes.Buffer

	code, err := Run(ctx, bar, &captured, args[0], args[1:]...)

	if cmd.Bool(showOutputFlag) {
		captured.WriteTo(cmd.Root().Writer) //nolint:errcheck
	}

	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to run %s: %s", args[0], err.Error()), 1)
	}

	if code != 0 {
		return cli.Exit(cliExitStr, code)
	}

	return nil
}

// Run starts name with args, animates bar until the process exits and returns
// its exit code. The combined output is copied to captured when it is not nil.
// An error is returned only when the process could not be run at all.
// A non-zero exit is logged with the last line the process wrote.
func Run(ctx context.Context, bar *pbar.ProgressBar, captured io.Writer, name string, args ...string) (int, error) {
	lw := lastline.New(captured, func(line string) {
		_ = bar.SetMessage(line)
	})

	c := osexec.CommandContext(ctx, name, args...)
	c.Stdout = lw
	c.Stderr = lw

	ctxlog.Debug(ctx, "exec", "detail", "starting command", "command", name, "args", args)

	bar.Start()
	err := c.Run()

	lw.Flush()
	bar.Finish(true)

	var exitErr *osexec.ExitError
	if errors.As(err, &exitErr) {
		ctxlog.Info(ctx, "exec",
			"detail", "command exited with non-zero status",
			"code", exitErr.ExitCode(),
			"last_line", lw.LastLine(),
		)

		return exitErr.ExitCode(), nil
	}

	if err != nil {
		return -1, err
	}

	return 0, nil
}
