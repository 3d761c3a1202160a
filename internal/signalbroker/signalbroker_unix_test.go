// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build !windows

package signalbroker

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/matt-FFFFFF/pbar/internal/ctxlog"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestListen_SignalCancelsContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(ctxlog.New(context.Background(), ctxlog.DiscardLogger))
	defer cancel()

	stop := Listen(ctx, cancel, syscall.SIGUSR1)
	defer stop()

	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGUSR1))

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context should be cancelled by the signal")
	}

	stop()
}

func TestListen_StopWithoutSignal(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(ctxlog.New(context.Background(), ctxlog.DiscardLogger))
	defer cancel()

	stop := Listen(ctx, cancel, syscall.SIGUSR2)
	stop()
	stop()

	require.NoError(t, ctx.Err())
}
