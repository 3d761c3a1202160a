// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package render

import (
	"strconv"
	"strings"
)

// Style holds the visual settings shared by every frame.
type Style struct {
	// BarWidth is the number of cells between the track delimiters.
	BarWidth int
	// Indicator is the glyph used to fill the track.
	Indicator rune
}

const (
	trackEdge = "|"
	separator = ": "
)

// Percent returns floor(100 * current / max), or 0 when max is not positive.
func Percent(current, max int) int {
	if max <= 0 || current <= 0 {
		return 0
	}

	if current >= max {
		return 100
	}

	return int(int64(current) * 100 / int64(max))
}

// Filled returns floor(width * current / max), the number of indicator cells
// of a determinate track, or 0 when max is not positive.
func Filled(current, max, width int) int {
	if max <= 0 || current <= 0 || width <= 0 {
		return 0
	}

	if current >= max {
		return width
	}

	return int(int64(current) * int64(width) / int64(max))
}

// Determinate builds an in-progress frame for a bar with a known total.
// When eta is not empty it is appended as "[ETA: eta]".
func Determinate(message string, st Style, current, max int, eta string) string {
	var sb strings.Builder

	sb.Grow(len(message) + st.BarWidth + 24)
	writeTrack(&sb, message, st, Filled(current, max, st.BarWidth), 0)
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(Percent(current, max)))
	sb.WriteString("%")

	if eta != "" {
		sb.WriteString(" [ETA: ")
		sb.WriteString(eta)
		sb.WriteString("]")
	}

	return sb.String()
}

// DeterminateDone builds the terminal frame of a determinate bar.
func DeterminateDone(message string, st Style, total string) string {
	var sb strings.Builder

	sb.Grow(len(message) + st.BarWidth + 24)
	writeTrack(&sb, message, st, st.BarWidth, 0)
	sb.WriteString(" 100% [Total: ")
	sb.WriteString(total)
	sb.WriteString("]")

	return sb.String()
}

// Indeterminate builds an animation frame from the current marquee state.
func Indeterminate(message string, st Style, m *Marquee, elapsed string) string {
	var sb strings.Builder

	sb.Grow(len(message) + st.BarWidth + 16)

	offset, size := m.Block()
	writeTrack(&sb, message, st, size, offset)
	writeClock(&sb, elapsed)

	return sb.String()
}

// IndeterminateDone builds the terminal frame of an indeterminate bar.
func IndeterminateDone(message string, st Style, elapsed string) string {
	var sb strings.Builder

	sb.Grow(len(message) + st.BarWidth + 16)
	writeTrack(&sb, message, st, st.BarWidth, 0)
	writeClock(&sb, elapsed)

	return sb.String()
}

// writeTrack writes "<message>: |<track>|" where the track has fill indicator
// cells starting at offset and blanks everywhere else.
func writeTrack(sb *strings.Builder, message string, st Style, fill, offset int) {
	sb.WriteString(message)
	sb.WriteString(separator)
	sb.WriteString(trackEdge)

	for i := range st.BarWidth {
		if i >= offset && i < offset+fill {
			sb.WriteRune(st.Indicator)
		} else {
			sb.WriteByte(' ')
		}
	}

	sb.WriteString(trackEdge)
}

func writeClock(sb *strings.Builder, clock string) {
	sb.WriteString(" [")
	sb.WriteString(clock)
	sb.WriteString("]")
}
