// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package pbar

import (
	"errors"
	"fmt"
)

// ErrConfig is wrapped by every ConfigError so callers can use errors.Is.
var ErrConfig = errors.New("invalid progress bar configuration")

// ConfigError reports an invalid setting passed at construction or to a setter.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s %v: %s", ErrConfig, e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrConfig
}
