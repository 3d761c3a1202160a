// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a slog logger in a context.Context.
//
// The default logger writes single-line, human-readable records to stderr
// through PrettyHandler. Its level is read from the PBAR_LOG_LEVEL
// environment variable ("DEBUG", "INFO", "WARN" or "ERROR"); anything else
// means WARN, so a progress bar is not interleaved with chatter by default.
package ctxlog
