// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package render

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Line redraws frames in place on a single console line.
// It is not safe for concurrent use; the owner must serialise calls.
type Line struct {
	w    io.Writer
	last int
}

// NewLine creates a Line writing to w.
func NewLine(w io.Writer) *Line {
	return &Line{w: w}
}

// Draw overwrites the current line with frame.
func (l *Line) Draw(frame string) error {
	return l.write(frame, false)
}

// Finish writes a terminal frame, ending the line when newline is set.
func (l *Line) Finish(frame string, newline bool) error {
	return l.write(frame, newline)
}

func (l *Line) write(frame string, newline bool) error {
	width := runewidth.StringWidth(frame)

	var sb strings.Builder

	sb.Grow(len(frame) + 2 + max(l.last-width, 0))
	sb.WriteByte('\r')
	sb.WriteString(frame)

	if pad := l.last - width; pad > 0 {
		sb.WriteString(strings.Repeat(" ", pad))
	}

	if newline {
		sb.WriteByte('\n')
		l.last = 0
	} else {
		l.last = max(width, l.last)
	}

	_, err := io.WriteString(l.w, sb.String())

	return err //nolint:wrapcheck
}
