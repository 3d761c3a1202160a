// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package lastline

import (
	"io"
	"strings"
	"sync"
)

// Writer tracks the last non-blank complete line written to it and optionally
// copies everything to another writer. It is safe for concurrent use.
type Writer struct {
	out    io.Writer
	onLine func(string)

	mu      sync.RWMutex
	partial strings.Builder
	last    string
}

// New creates a Writer. Data is copied to out when it is not nil.
// onLine, when not nil, is called with every new last line outside of any lock.
func New(out io.Writer, onLine func(line string)) *Writer {
	return &Writer{
		out:    out,
		onLine: onLine,
	}
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	w.mu.Lock()
	line, changed := w.process(string(p))
	w.mu.Unlock()

	if changed && w.onLine != nil {
		w.onLine(line)
	}

	if w.out == nil {
		return len(p), nil
	}

	return w.out.Write(p) //nolint:wrapcheck
}

// process appends data to the partial line and returns the newest complete
// non-blank line, if any. Must be called with the write lock held.
func (w *Writer) process(data string) (string, bool) {
	w.partial.WriteString(data)

	lines := strings.Split(w.partial.String(), "\n")
	if len(lines) == 1 {
		return "", false
	}

	rest := lines[len(lines)-1]
	w.partial.Reset()
	w.partial.WriteString(rest)

	for i := len(lines) - 2; i >= 0; i-- {
		if line := clean(lines[i]); line != "" {
			w.last = line
			return line, true
		}
	}

	return "", false
}

// Flush treats any pending partial line as complete.
func (w *Writer) Flush() {
	w.mu.Lock()
	line, changed := w.process("\n")
	w.mu.Unlock()

	if changed && w.onLine != nil {
		w.onLine(line)
	}
}

// LastLine returns the last complete non-blank line, or "" if there is none.
func (w *Writer) LastLine() string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.last
}

// clean drops a trailing carriage return and surrounding blanks.
// Progress output that redraws with "\r" keeps only its final segment.
func clean(line string) string {
	line = strings.TrimRight(line, "\r")
	if i := strings.LastIndexByte(line, '\r'); i >= 0 {
		line = line[i+1:]
	}

	return strings.TrimSpace(line)
}
