// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package render formats progress bar frames and redraws them in place.
//
// Frame builders are pure functions of the bar state. Line owns the redraw
// discipline: every frame is prefixed with a carriage return and padded so
// that a shorter frame fully overwrites a longer one, and only terminal
// frames may end the line.
//
// Determinate frame:
//
//	Copying files                      : |||||||||||                        | 31%
//
// Indeterminate frame:
//
//	Waiting for server                 : |       ||||||||||                 | [00:07]
package render
