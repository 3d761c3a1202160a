// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/zclconf/go-cty/cty"
)

// fileConfig is the on-disk shape. Nil fields keep the default.
type fileConfig struct {
	Message      *string `yaml:"message"       hcl:"message,optional"`
	Mode         *string `yaml:"mode"          hcl:"mode,optional"`
	Max          *int    `yaml:"max"           hcl:"max,optional"`
	BarWidth     *int    `yaml:"bar_width"     hcl:"bar_width,optional"`
	MessageWidth *int    `yaml:"message_width" hcl:"message_width,optional"`
	MarqueeWidth *int    `yaml:"marquee_width" hcl:"marquee_width,optional"`
	Indicator    *string `yaml:"indicator"     hcl:"indicator,optional"`
	Quiet        *bool   `yaml:"quiet"         hcl:"quiet,optional"`
	ShowETA      *bool   `yaml:"show_eta"      hcl:"show_eta,optional"`
	TickInterval *string `yaml:"tick_interval" hcl:"tick_interval,optional"`
	StepDelay    *string `yaml:"step_delay"    hcl:"step_delay,optional"`
}

// Parse decodes data on top of Default. The format is chosen by the
// extension of filename. The result is not validated.
func Parse(filename string, data []byte) (Config, error) {
	var fc fileConfig

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".yaml", ".yml":
		if err := yaml.UnmarshalWithOptions(data, &fc, yaml.DisallowUnknownField()); err != nil {
			return Config{}, errors.Join(ErrParseConfig, fmt.Errorf("%s: %w", filename, err))
		}
	case ".hcl", ".json":
		if err := hclsimple.Decode(filename, data, evalContext(), &fc); err != nil {
			return Config{}, errors.Join(ErrParseConfig, err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %s: unsupported file extension %q", ErrParseConfig, filename, ext)
	}

	cfg := Default()
	if err := fc.applyTo(&cfg); err != nil {
		return Config{}, errors.Join(ErrParseConfig, fmt.Errorf("%s: %w", filename, err))
	}

	return cfg, nil
}

// Marshal renders c as YAML in the same shape Parse reads.
func Marshal(c Config) ([]byte, error) {
	tick := c.TickInterval.String()
	step := c.StepDelay.String()

	return yaml.Marshal(fileConfig{
		Message:      &c.Message,
		Mode:         &c.Mode,
		Max:          &c.Max,
		BarWidth:     &c.BarWidth,
		MessageWidth: &c.MessageWidth,
		MarqueeWidth: &c.MarqueeWidth,
		Indicator:    &c.Indicator,
		Quiet:        &c.Quiet,
		ShowETA:      &c.ShowETA,
		TickInterval: &tick,
		StepDelay:    &step,
	})
}

func (fc fileConfig) applyTo(c *Config) error {
	setIf(&c.Message, fc.Message)
	setIf(&c.Mode, fc.Mode)
	setIf(&c.Max, fc.Max)
	setIf(&c.BarWidth, fc.BarWidth)
	setIf(&c.MessageWidth, fc.MessageWidth)
	setIf(&c.MarqueeWidth, fc.MarqueeWidth)
	setIf(&c.Indicator, fc.Indicator)
	setIf(&c.Quiet, fc.Quiet)
	setIf(&c.ShowETA, fc.ShowETA)

	var errs []error

	if fc.TickInterval != nil {
		d, err := time.ParseDuration(*fc.TickInterval)
		if err != nil {
			errs = append(errs, fmt.Errorf("tick_interval: %w", err))
		}

		c.TickInterval = d
	}

	if fc.StepDelay != nil {
		d, err := time.ParseDuration(*fc.StepDelay)
		if err != nil {
			errs = append(errs, fmt.Errorf("step_delay: %w", err))
		}

		c.StepDelay = d
	}

	return errors.Join(errs...)
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// evalContext exposes the process environment to HCL expressions as env.NAME.
func evalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)

	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" || !hclIdentifier(k) {
			continue
		}

		vars[k] = cty.StringVal(v)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
	}
}

// hclIdentifier reports whether s can be used as an attribute name after "env.".
func hclIdentifier(s string) bool {
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r == '-' || (r >= '0' && r <= '9')):
		default:
			return false
		}
	}

	return true
}
