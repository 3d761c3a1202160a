// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/pbar/internal/ctxlog"
)

// ForcedExitCode is the process exit code used when a signal is repeated.
const ForcedExitCode = 130

// exitFunc is replaced in tests.
var exitFunc = os.Exit

// Watch monitors sigCh until it is closed.
// The first signal cancels the context. A second signal of a type already
// seen terminates the process with ForcedExitCode.
// If ctx is cancelled before any signal arrives, Watch returns.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	seen := make(map[os.Signal]struct{})
	done := ctx.Done()

	for {
		select {
		case <-done:
			return
		case sig, ok := <-sigCh:
			if !ok {
				return
			}

			if _, repeat := seen[sig]; repeat {
				ctxlog.Warn(ctx, "watchdog", "detail", "received second signal of type, forcefully terminating", "signal", sig.String())
				exitFunc(ForcedExitCode)

				return
			}

			ctxlog.Info(ctx, "watchdog", "detail", "received signal, cancelling", "signal", sig.String())

			seen[sig] = struct{}{}
			done = nil

			cancel()
		}
	}
}
