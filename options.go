// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package pbar

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/matt-FFFFFF/pbar/internal/render"
	"github.com/matt-FFFFFF/pbar/internal/timer"
)

// Indicator presets.
const (
	IndicatorPipe      = '|'
	IndicatorEquals    = '='
	IndicatorBackslash = '\\'
	IndicatorHash      = '#'
)

const (
	// DefaultMessageWidth is the width of the message column in cells.
	DefaultMessageWidth = 35
	// DefaultBarWidth is the width of the bar track in cells.
	DefaultBarWidth = 35
	// DefaultMarqueeWidth is the width of the indeterminate sweep block in cells.
	DefaultMarqueeWidth = render.DefaultMarqueeWidth
	// DefaultTickInterval is the redraw cadence of the indeterminate animation.
	DefaultTickInterval = 25 * time.Millisecond
	// DefaultMax is the total used when none is supplied.
	DefaultMax = 100
)

// Overflow decides what happens to a message wider than its column.
type Overflow int

const (
	// OverflowTruncate cuts the message and appends an ellipsis.
	OverflowTruncate Overflow = iota
	// OverflowReject refuses the message with a ConfigError.
	OverflowReject
)

// Option configures a ProgressBar at construction.
type Option func(s *settings)

type settings struct {
	writer       io.Writer
	logger       *slog.Logger
	clock        timer.Clock
	max          int
	hasMax       bool
	barWidth     int
	messageWidth int
	marqueeWidth int
	indicator    rune
	quiet        bool
	showETA      bool
	tick         time.Duration
	overflow     Overflow
}

func defaultSettings() settings {
	return settings{
		writer:       os.Stderr,
		max:          DefaultMax,
		barWidth:     DefaultBarWidth,
		messageWidth: DefaultMessageWidth,
		marqueeWidth: DefaultMarqueeWidth,
		indicator:    IndicatorPipe,
		tick:         DefaultTickInterval,
		overflow:     OverflowTruncate,
	}
}

// WithMax sets the total of a Determinate bar. A bar created with WithMax
// starts in Determinate mode, otherwise it starts Indeterminate.
func WithMax(n int) Option {
	return func(s *settings) {
		s.max = n
		s.hasMax = true
	}
}

// WithWriter sets the output stream. The default is os.Stderr.
func WithWriter(w io.Writer) Option {
	return func(s *settings) {
		s.writer = w
	}
}

// WithLogger sets the logger used for non-fatal warnings.
// The default is the logger carried by the constructor context.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		s.logger = l
	}
}

// WithClock replaces time.Now for elapsed time measurement.
func WithClock(c timer.Clock) Option {
	return func(s *settings) {
		s.clock = c
	}
}

// WithBarWidth sets the width of the bar track.
func WithBarWidth(n int) Option {
	return func(s *settings) {
		s.barWidth = n
	}
}

// WithMessageWidth sets the width of the message column.
func WithMessageWidth(n int) Option {
	return func(s *settings) {
		s.messageWidth = n
	}
}

// WithMarqueeWidth sets the width of the indeterminate sweep block.
func WithMarqueeWidth(n int) Option {
	return func(s *settings) {
		s.marqueeWidth = n
	}
}

// WithIndicator sets the fill glyph.
func WithIndicator(r rune) Option {
	return func(s *settings) {
		s.indicator = r
	}
}

// WithQuiet starts the bar with rendering suppressed.
func WithQuiet(q bool) Option {
	return func(s *settings) {
		s.quiet = q
	}
}

// WithETA appends the estimated total time to Determinate frames.
func WithETA(show bool) Option {
	return func(s *settings) {
		s.showETA = show
	}
}

// WithTickInterval sets the redraw cadence of the indeterminate animation.
func WithTickInterval(d time.Duration) Option {
	return func(s *settings) {
		s.tick = d
	}
}

// WithOverflow sets the policy for messages wider than the message column.
func WithOverflow(o Overflow) Option {
	return func(s *settings) {
		s.overflow = o
	}
}

func (s settings) validate() error {
	var errs []error

	if s.writer == nil {
		errs = append(errs, &ConfigError{Field: "writer", Value: nil, Reason: "must not be nil"})
	}

	if s.max <= 0 {
		errs = append(errs, &ConfigError{Field: "max", Value: s.max, Reason: "must be greater than zero"})
	}

	if s.barWidth <= 0 {
		errs = append(errs, &ConfigError{Field: "bar width", Value: s.barWidth, Reason: "must be greater than zero"})
	}

	if s.messageWidth < render.MinMessageWidth {
		errs = append(errs, &ConfigError{Field: "message width", Value: s.messageWidth, Reason: "too narrow for a truncated message"})
	}

	if s.marqueeWidth <= 0 {
		errs = append(errs, &ConfigError{Field: "marquee width", Value: s.marqueeWidth, Reason: "must be greater than zero"})
	}

	if !render.IsGlyph(s.indicator) {
		errs = append(errs, &ConfigError{Field: "indicator", Value: string(s.indicator), Reason: "must be a single-cell printable character"})
	}

	if s.tick <= 0 {
		errs = append(errs, &ConfigError{Field: "tick interval", Value: s.tick, Reason: "must be greater than zero"})
	}

	if s.overflow != OverflowTruncate && s.overflow != OverflowReject {
		errs = append(errs, &ConfigError{Field: "overflow", Value: int(s.overflow), Reason: "unknown policy"})
	}

	return errors.Join(errs...)
}
