// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentAndFilled_FloorFormula(t *testing.T) {
	for _, max := range []int{1, 3, 7, 20, 35, 100, 997} {
		for _, width := range []int{1, 10, 35, 80} {
			for current := 0; current <= max; current++ {
				require.Equal(t, 100*current/max, Percent(current, max), "percent %d/%d", current, max)
				require.Equal(t, width*current/max, Filled(current, max, width), "filled %d/%d w=%d", current, max, width)
			}
		}
	}
}

func TestPercentAndFilled_Guards(t *testing.T) {
	assert.Equal(t, 0, Percent(5, 0))
	assert.Equal(t, 0, Percent(-1, 10))
	assert.Equal(t, 100, Percent(11, 10))
	assert.Equal(t, 0, Filled(5, 0, 35))
	assert.Equal(t, 35, Filled(50, 10, 35))
	assert.Equal(t, 0, Filled(5, 10, 0))
}

func TestDeterminate(t *testing.T) {
	st := Style{BarWidth: 10, Indicator: '#'}

	tests := []struct {
		name    string
		current int
		max     int
		eta     string
		want    string
	}{
		{
			name:    "empty",
			current: 0,
			max:     20,
			want:    "msg: |          | 0%",
		},
		{
			name:    "half",
			current: 10,
			max:     20,
			want:    "msg: |#####     | 50%",
		},
		{
			name:    "floor",
			current: 1,
			max:     3,
			want:    "msg: |###       | 33%",
		},
		{
			name:    "full",
			current: 20,
			max:     20,
			want:    "msg: |##########| 100%",
		},
		{
			name:    "with eta",
			current: 5,
			max:     20,
			eta:     "01:20",
			want:    "msg: |##        | 25% [ETA: 01:20]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Determinate("msg", st, tt.current, tt.max, tt.eta))
		})
	}
}

func TestTerminalFrames(t *testing.T) {
	st := Style{BarWidth: 5, Indicator: '='}

	assert.Equal(t, "done: |=====| 100% [Total: 01:02]", DeterminateDone("done", st, "01:02"))
	assert.Equal(t, "wait: |=====| [00:03]", IndeterminateDone("wait", st, "00:03"))
}

func TestIndeterminate(t *testing.T) {
	st := Style{BarWidth: 8, Indicator: '|'}
	m := NewMarquee(st.BarWidth, 3)

	assert.Equal(t, "x: ||||     | [00:00]", Indeterminate("x", st, m, "00:00"))

	m.Advance()
	assert.Equal(t, "x: | |||    | [00:01]", Indeterminate("x", st, m, "00:01"))
}

func TestFrameTrackWidthIsConstant(t *testing.T) {
	st := Style{BarWidth: 35, Indicator: '|'}
	m := NewMarquee(st.BarWidth, DefaultMarqueeWidth)

	for range 3 * st.BarWidth {
		frame := Indeterminate("m", st, m, "00:00")
		start := strings.Index(frame, ": |") + 3
		end := strings.LastIndex(frame, "| [")
		require.Equal(t, st.BarWidth, end-start, frame)
		m.Advance()
	}
}
