// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package timer

import (
	"fmt"
	"time"
)

// UnknownClock is displayed in place of an ETA that cannot be computed yet.
const UnknownClock = "--:--"

// Clock returns the current time.
type Clock func() time.Time

// Timer is a stopwatch for one progress run.
// It is not safe for concurrent use; the owner must serialise access.
type Timer struct {
	now     Clock
	start   time.Time
	running bool
}

// New creates a Timer using the supplied clock.
// A nil clock uses time.Now.
func New(now Clock) *Timer {
	if now == nil {
		now = time.Now
	}

	return &Timer{now: now}
}

// Start captures the start timestamp.
// Calls made after the first one are no-ops until Reset is called.
func (t *Timer) Start() {
	if t.running {
		return
	}

	t.start = t.now()
	t.running = true
}

// Running reports whether a start timestamp has been captured.
func (t *Timer) Running() bool {
	return t.running
}

// Reset clears the start timestamp.
func (t *Timer) Reset() {
	t.start = time.Time{}
	t.running = false
}

// Sample is a point-in-time reading of the timer.
type Sample struct {
	// Elapsed is the time since Start, or zero if the timer is not running.
	Elapsed time.Duration
	// ETA is the projected duration of the whole run (elapsed * max / current).
	// Only meaningful when ETAKnown is true.
	ETA time.Duration
	// ETAKnown is false when no progress has been made yet.
	ETAKnown bool
}

// Sample reads the timer. The current and max values feed the ETA estimate;
// pass zero for both when the run has no known total.
func (t *Timer) Sample(current, max int) Sample {
	if !t.running {
		return Sample{}
	}

	s := Sample{
		Elapsed: t.now().Sub(t.start),
	}
	if s.Elapsed < 0 {
		s.Elapsed = 0
	}

	if current > 0 && max > 0 {
		s.ETA = time.Duration(float64(s.Elapsed) * float64(max) / float64(current))
		s.ETAKnown = true
	}

	return s
}

// ElapsedString returns the elapsed time as MM:SS.
func (s Sample) ElapsedString() string {
	return FormatClock(s.Elapsed)
}

// ETAString returns the ETA as MM:SS, or UnknownClock when no estimate exists.
func (s Sample) ETAString() string {
	if !s.ETAKnown {
		return UnknownClock
	}

	return FormatClock(s.ETA)
}

// FormatClock renders d as MM:SS using truncating division.
// Minutes are not wrapped into hours.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	secs := int64(d / time.Second)

	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
