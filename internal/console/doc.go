// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package console inspects the streams a progress bar or logger writes to.
// It reports whether a writer is an interactive terminal and how wide it is,
// and decides whether ANSI colour may be used for log output. Colour is
// disabled by the NO_COLOR environment variable, forced by FORCE_COLOR, and
// otherwise enabled only for terminals. Terminal detection uses the
// golang.org/x/term package.
package console
