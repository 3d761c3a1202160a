// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine_DrawOverwritesInPlace(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewLine(buf)

	require.NoError(t, l.Draw("abcdef"))
	require.NoError(t, l.Draw("xy"))
	require.NoError(t, l.Draw("123"))

	assert.Equal(t, "\rabcdef\rxy    \r123   ", buf.String())
	assert.NotContains(t, buf.String(), "\n")
}

func TestLine_FinishResetsWidth(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewLine(buf)

	require.NoError(t, l.Draw("long frame"))
	require.NoError(t, l.Finish("done", true))
	require.NoError(t, l.Draw("ab"))

	assert.Equal(t, "\rlong frame\rdone      \n\rab", buf.String())
}

func TestLine_FinishWithoutNewline(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewLine(buf)

	require.NoError(t, l.Finish("abc", false))
	require.NoError(t, l.Draw("a"))

	assert.Equal(t, "\rabc\ra  ", buf.String())
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestLine_ReturnsWriteError(t *testing.T) {
	l := NewLine(failingWriter{})

	assert.ErrorIs(t, l.Draw("x"), errWrite)
}
