// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package timer tracks the wall-clock time of a single progress run.
// It measures elapsed time from a lazily captured start timestamp and
// derives a linear ETA estimate from the current and maximum progress values.
// It performs no I/O.
package timer
