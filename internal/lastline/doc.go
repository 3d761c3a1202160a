// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package lastline provides an io.Writer that remembers the last complete line
// written to it, so a progress bar can display what a child process is doing.
package lastline
