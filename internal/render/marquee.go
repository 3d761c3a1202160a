// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package render

// DefaultMarqueeWidth is the width of the sweeping block of an indeterminate bar.
const DefaultMarqueeWidth = 10

// Marquee is the animation state of an indeterminate bar: a block of
// indicator cells that moves one cell to the right on every tick.
// Near the right edge the visible block shrinks instead of wrapping, and
// once it has left the track it starts over at the left edge at full size.
type Marquee struct {
	width int
	size  int
	pos   int
}

// NewMarquee creates a marquee for a track of width cells with a block of
// size cells. The block never exceeds the track.
func NewMarquee(width, size int) *Marquee {
	if width < 1 {
		width = 1
	}

	if size < 1 {
		size = 1
	}

	if size > width {
		size = width
	}

	return &Marquee{width: width, size: size}
}

// Block returns the offset and visible size of the block for the current tick.
func (m *Marquee) Block() (offset, size int) {
	size = m.size
	if rest := m.width - m.pos; size > rest {
		size = rest
	}

	return m.pos, size
}

// Advance moves the block one cell to the right, returning to the left edge
// after the last cell of the track.
func (m *Marquee) Advance() {
	m.pos++
	if m.pos >= m.width {
		m.pos = 0
	}
}

// Reset moves the block back to the left edge.
func (m *Marquee) Reset() {
	m.pos = 0
}
