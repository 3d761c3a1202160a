// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis marks a message that was truncated to fit its column.
const Ellipsis = "..."

// MinMessageWidth is the narrowest message column that can still show
// one cell of text followed by the ellipsis.
const MinMessageWidth = len(Ellipsis) + 1

// FitMessage pads msg with trailing spaces to exactly width terminal cells.
// A message wider than width is truncated and suffixed with Ellipsis; the
// second return value reports whether that happened.
// Line breaks and tabs are flattened to spaces so they cannot break the
// in-place redraw.
func FitMessage(msg string, width int) (string, bool) {
	msg = flatten(msg)

	overflow := runewidth.StringWidth(msg) > width
	if overflow {
		msg = runewidth.Truncate(msg, width, Ellipsis)
	}

	return runewidth.FillRight(msg, width), overflow
}

// IsGlyph reports whether r occupies exactly one printable terminal cell,
// which is required for the bar track to keep a fixed width.
func IsGlyph(r rune) bool {
	if r < ' ' || r == 0x7f {
		return false
	}

	return runewidth.RuneWidth(r) == 1
}

func flatten(msg string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\r', '\n', '\t', '\v', '\f':
			return ' '
		}

		return r
	}, msg)
}
