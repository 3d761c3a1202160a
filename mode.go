// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package pbar

import "strings"

// Mode selects how progress is displayed.
type Mode int

const (
	// Indeterminate shows a sweeping animation for work of unknown size.
	Indeterminate Mode = iota
	// Determinate shows a percentage of a known total.
	Determinate
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Indeterminate:
		return "indeterminate"
	case Determinate:
		return "determinate"
	default:
		return "unknown"
	}
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m == Indeterminate || m == Determinate
}

// ParseMode converts a mode name as returned by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "indeterminate":
		return Indeterminate, nil
	case "determinate":
		return Determinate, nil
	default:
		return Indeterminate, &ConfigError{Field: "mode", Value: s, Reason: "must be determinate or indeterminate"}
	}
}
