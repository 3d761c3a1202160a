// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/pbar"
	"github.com/matt-FFFFFF/pbar/internal/render"
)

var (
	// ErrReadConfig is returned when a local configuration file cannot be read.
	ErrReadConfig = errors.New("failed to read config file")
	// ErrParseConfig is returned when a configuration file cannot be decoded.
	ErrParseConfig = errors.New("failed to parse config file")
	// ErrInvalidConfig is returned when a configuration fails validation.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrFetchConfig is returned when a remote configuration cannot be downloaded.
	ErrFetchConfig = errors.New("failed to fetch config file")
)

const (
	// DefaultStepDelay is the pause between steps of the demo command.
	DefaultStepDelay = 50 * time.Millisecond
	// DefaultMessage is the bar message used when none is configured.
	DefaultMessage = "Working"
)

// Config is the effective pbar configuration.
type Config struct {
	Message      string
	Mode         string
	Max          int
	BarWidth     int
	MessageWidth int
	MarqueeWidth int
	Indicator    string
	Quiet        bool
	ShowETA      bool
	TickInterval time.Duration
	StepDelay    time.Duration
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Message:      DefaultMessage,
		Mode:         pbar.Determinate.String(),
		Max:          pbar.DefaultMax,
		BarWidth:     pbar.DefaultBarWidth,
		MessageWidth: pbar.DefaultMessageWidth,
		MarqueeWidth: pbar.DefaultMarqueeWidth,
		Indicator:    string(rune(pbar.IndicatorPipe)),
		TickInterval: pbar.DefaultTickInterval,
		StepDelay:    DefaultStepDelay,
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var result *multierror.Error

	if _, err := pbar.ParseMode(c.Mode); err != nil {
		result = multierror.Append(result, err)
	}

	if c.Max <= 0 {
		result = multierror.Append(result, fmt.Errorf("max must be greater than zero, got %d", c.Max))
	}

	if c.BarWidth <= 0 {
		result = multierror.Append(result, fmt.Errorf("bar_width must be greater than zero, got %d", c.BarWidth))
	}

	if c.MessageWidth < render.MinMessageWidth {
		result = multierror.Append(result, fmt.Errorf("message_width must be at least %d, got %d", render.MinMessageWidth, c.MessageWidth))
	}

	if c.MarqueeWidth <= 0 {
		result = multierror.Append(result, fmt.Errorf("marquee_width must be greater than zero, got %d", c.MarqueeWidth))
	}

	if r, ok := c.indicator(); !ok || !render.IsGlyph(r) {
		result = multierror.Append(result, fmt.Errorf("indicator must be a single printable character, got %q", c.Indicator))
	}

	if c.TickInterval <= 0 {
		result = multierror.Append(result, fmt.Errorf("tick_interval must be greater than zero, got %s", c.TickInterval))
	}

	if c.StepDelay < 0 {
		result = multierror.Append(result, fmt.Errorf("step_delay must not be negative, got %s", c.StepDelay))
	}

	if err := result.ErrorOrNil(); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}

	return nil
}

// ParsedMode returns the configured mode. Call Validate first.
func (c Config) ParsedMode() pbar.Mode {
	m, _ := pbar.ParseMode(c.Mode)
	return m
}

// Options converts the configuration into progress bar options.
// The max is only passed for determinate mode, so an indeterminate
// configuration yields an indeterminate bar.
func (c Config) Options() ([]pbar.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	r, _ := c.indicator()

	opts := []pbar.Option{
		pbar.WithBarWidth(c.BarWidth),
		pbar.WithMessageWidth(c.MessageWidth),
		pbar.WithMarqueeWidth(c.MarqueeWidth),
		pbar.WithIndicator(r),
		pbar.WithQuiet(c.Quiet),
		pbar.WithETA(c.ShowETA),
		pbar.WithTickInterval(c.TickInterval),
	}

	if c.ParsedMode() == pbar.Determinate {
		opts = append(opts, pbar.WithMax(c.Max))
	}

	return opts, nil
}

func (c Config) indicator() (rune, bool) {
	if utf8.RuneCountInString(c.Indicator) != 1 {
		return 0, false
	}

	r, _ := utf8.DecodeRuneInString(c.Indicator)

	return r, r != utf8.RuneError
}
