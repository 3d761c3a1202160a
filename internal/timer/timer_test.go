// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func TestTimer_NotRunning(t *testing.T) {
	tm := New(nil)

	assert.False(t, tm.Running())
	s := tm.Sample(5, 10)
	assert.Zero(t, s.Elapsed)
	assert.False(t, s.ETAKnown)
	assert.Equal(t, "00:00", s.ElapsedString())
	assert.Equal(t, UnknownClock, s.ETAString())
}

func TestTimer_StartIsIdempotent(t *testing.T) {
	clk := newFakeClock()
	tm := New(clk.now)

	tm.Start()
	clk.advance(30 * time.Second)
	tm.Start()
	clk.advance(15 * time.Second)

	assert.True(t, tm.Running())
	assert.Equal(t, 45*time.Second, tm.Sample(0, 0).Elapsed)
}

func TestTimer_Reset(t *testing.T) {
	clk := newFakeClock()
	tm := New(clk.now)

	tm.Start()
	clk.advance(time.Minute)
	tm.Reset()

	assert.False(t, tm.Running())
	assert.Zero(t, tm.Sample(1, 2).Elapsed)

	tm.Start()
	clk.advance(2 * time.Second)
	assert.Equal(t, 2*time.Second, tm.Sample(0, 0).Elapsed)
}

func TestTimer_ETA(t *testing.T) {
	tests := []struct {
		name      string
		elapsed   time.Duration
		current   int
		max       int
		wantKnown bool
		wantETA   string
	}{
		{
			name:      "no progress is unknown",
			elapsed:   10 * time.Second,
			current:   0,
			max:       20,
			wantKnown: false,
			wantETA:   UnknownClock,
		},
		{
			name:      "half way doubles elapsed",
			elapsed:   30 * time.Second,
			current:   10,
			max:       20,
			wantKnown: true,
			wantETA:   "01:00",
		},
		{
			name:      "non integer ratio is not truncated",
			elapsed:   60 * time.Second,
			current:   2,
			max:       3,
			wantKnown: true,
			wantETA:   "01:30",
		},
		{
			name:      "complete equals elapsed",
			elapsed:   75 * time.Second,
			current:   20,
			max:       20,
			wantKnown: true,
			wantETA:   "01:15",
		},
		{
			name:      "no total is unknown",
			elapsed:   5 * time.Second,
			current:   3,
			max:       0,
			wantKnown: false,
			wantETA:   UnknownClock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clk := newFakeClock()
			tm := New(clk.now)
			tm.Start()
			clk.advance(tt.elapsed)

			s := tm.Sample(tt.current, tt.max)
			assert.Equal(t, tt.wantKnown, s.ETAKnown)
			assert.Equal(t, tt.wantETA, s.ETAString())
			assert.Equal(t, tt.elapsed, s.Elapsed)
		})
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00"},
		{999 * time.Millisecond, "00:00"},
		{59 * time.Second, "00:59"},
		{61 * time.Second, "01:01"},
		{90*time.Minute + 5*time.Second, "90:05"},
		{-time.Second, "00:00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatClock(tt.in), "FormatClock(%s)", tt.in)
	}
}
