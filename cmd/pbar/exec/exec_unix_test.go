// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build !windows

package exec

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matt-FFFFFF/pbar"
	"github.com/matt-FFFFFF/pbar/internal/ctxlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func newBar(t *testing.T, ctx context.Context, out *syncBuffer) *pbar.ProgressBar {
	t.Helper()

	bar, err := pbar.New(ctx, "Running",
		pbar.WithWriter(out),
		pbar.WithBarWidth(10),
		pbar.WithMessageWidth(20),
		pbar.WithTickInterval(time.Millisecond),
	)
	require.NoError(t, err)

	return bar
}

func lastFrame(out string) string {
	frames := strings.Split(out, "\r")

	return strings.TrimRight(frames[len(frames)-1], " \n")
}

func TestRun_Success(t *testing.T) {
	defer goleak.VerifyNone(t)

	out := &syncBuffer{}
	bar := newBar(t, context.Background(), out)

	var captured bytes.Buffer

	code, err := Run(context.Background(), bar, &captured, "sh", "-c", "echo compiling; sleep 0.05; echo linking")
	require.NoError(t, err)

	assert.Equal(t, 0, code)
	assert.Equal(t, "compiling\nlinking\n", captured.String())
	assert.False(t, bar.Animating())
	assert.True(t, strings.HasPrefix(lastFrame(out.String()), "linking"), out.String())
	assert.True(t, strings.HasSuffix(out.String(), "\n"))
}

func TestRun_ExitCode(t *testing.T) {
	defer goleak.VerifyNone(t)

	bar := newBar(t, context.Background(), &syncBuffer{})

	code, err := Run(context.Background(), bar, nil, "sh", "-c", "echo oops >&2; exit 3")
	require.NoError(t, err)
	assert.Equal(t, 3, code)
	assert.Equal(t, "oops", strings.TrimSpace(bar.Message()))
}

func TestRun_ExitCodeLogsLastLine(t *testing.T) {
	defer goleak.VerifyNone(t)

	var logs bytes.Buffer

	ctx := ctxlog.New(context.Background(), slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelInfo})))
	bar := newBar(t, ctx, &syncBuffer{})

	code, err := Run(ctx, bar, nil, "sh", "-c", "echo first; printf 'oops'; exit 2")
	require.NoError(t, err)
	assert.Equal(t, 2, code)

	assert.Contains(t, logs.String(), "code=2")
	assert.Contains(t, logs.String(), "last_line=oops")
}

func TestRun_NotFound(t *testing.T) {
	defer goleak.VerifyNone(t)

	out := &syncBuffer{}
	bar := newBar(t, context.Background(), out)

	code, err := Run(context.Background(), bar, nil, "pbar-command-that-does-not-exist")
	require.Error(t, err)
	assert.Equal(t, -1, code)
	assert.False(t, bar.Animating())
	assert.True(t, strings.HasSuffix(out.String(), "\n"))
}

func TestRun_Cancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	bar := newBar(t, ctx, &syncBuffer{})

	start := time.Now()
	code, err := Run(ctx, bar, nil, "sleep", "10")

	require.NoError(t, err)
	assert.NotEqual(t, 0, code)
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.False(t, bar.Animating())
}
