// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package demo

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matt-FFFFFF/pbar"
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

	bar, err := pbar.New(ctx, "Demo",
		pbar.WithMax(1),
		pbar.WithWriter(out),
		pbar.WithBarWidth(10),
		pbar.WithIndicator(pbar.IndicatorHash),
		pbar.WithTickInterval(time.Millisecond),
	)
	require.NoError(t, err)

	return bar
}

func TestRun(t *testing.T) {
	defer goleak.VerifyNone(t)

	out := &syncBuffer{}
	bar := newBar(t, context.Background(), out)

	err := Run(context.Background(), bar, Scenario{
		Message: "Demo",
		Max:     6,
		Delay:   time.Millisecond,
		Wait:    20 * time.Millisecond,
	})
	require.NoError(t, err)

	got := out.String()

	// determinate, indeterminate, determinate
	assert.Equal(t, 3, strings.Count(got, "\n"))
	assert.Equal(t, 2, strings.Count(got, "|##########| 100% [Total: "))
	assert.Contains(t, got, waitingMessage)
	assert.Contains(t, got, halfwayMessage)
	assert.True(t, strings.HasSuffix(got, "\n"))

	assert.Equal(t, pbar.Determinate, bar.Mode())
	assert.Equal(t, 6, bar.Current())
	assert.False(t, bar.Animating())
}

func TestRun_Cancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	out := &syncBuffer{}
	bar := newBar(t, ctx, out)

	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	err := Run(ctx, bar, Scenario{
		Message: "Demo",
		Max:     2,
		Delay:   time.Millisecond,
		Wait:    time.Minute,
	})
	require.ErrorIs(t, err, context.Canceled)

	assert.False(t, bar.Animating())
	assert.True(t, strings.HasSuffix(out.String(), "\n"), "the bar is finished on cancellation")
}

func TestRun_InvalidMax(t *testing.T) {
	bar := newBar(t, context.Background(), &syncBuffer{})

	err := Run(context.Background(), bar, Scenario{Max: 0})
	assert.ErrorIs(t, err, pbar.ErrConfig)
}

func TestPause(t *testing.T) {
	require.NoError(t, pause(context.Background(), 0))
	require.NoError(t, pause(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, pause(ctx, time.Hour), context.Canceled)
}
