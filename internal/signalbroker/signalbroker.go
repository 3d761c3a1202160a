// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signalbroker lets an interrupted pbar finish its bar cleanly.
// The first termination signal cancels the command context, so whichever
// bar is running gets the chance to draw its terminal frame and end the line.
// Repeating a signal exits the process straight away.
package signalbroker

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/matt-FFFFFF/pbar/internal/ctxlog"
)

// DefaultSignals are listened for when Listen is given none.
var DefaultSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGQUIT,
}

// Listen relays sigs, or DefaultSignals when empty, to Watch until the
// returned stop function is called. stop waits for the watcher to return.
func Listen(ctx context.Context, cancel context.CancelFunc, sigs ...os.Signal) (stop func()) {
	if len(sigs) == 0 {
		sigs = DefaultSignals
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sigs...)

	ctxlog.Debug(ctx, "signalbroker", "detail", "listening", "signals", sigs)

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()
		Watch(ctx, ch, cancel)
	}()

	var once sync.Once

	return func() {
		once.Do(func() {
			signal.Stop(ch)
			close(ch)
			wg.Wait()
		})
	}
}
