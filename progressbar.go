// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package pbar

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/matt-FFFFFF/pbar/internal/ctxlog"
	"github.com/matt-FFFFFF/pbar/internal/render"
	"github.com/matt-FFFFFF/pbar/internal/timer"
)

// ProgressBar draws a live progress line. It is safe for concurrent use.
type ProgressBar struct {
	ctx          context.Context
	logger       *slog.Logger
	tick         time.Duration
	overflow     Overflow
	showETA      bool
	messageWidth int
	barWidth     int
	marqueeWidth int

	// mu guards everything below, including every write to line.
	mu        sync.Mutex
	line      *render.Line
	timer     *timer.Timer
	marquee   *render.Marquee
	mode      Mode
	current   int
	max       int
	message   string
	indicator rune
	quiet     bool
	warned    bool

	// stop and done belong to the running animation, nil when there is none.
	stop context.CancelFunc
	done chan struct{}
}

// State is a snapshot of a ProgressBar.
type State struct {
	Mode      Mode
	Current   int
	Max       int
	Percent   int
	Message   string
	Quiet     bool
	Animating bool
	// Started reports whether the clock of the current run is running.
	Started bool
	Elapsed time.Duration
	// ETA is the estimated total run time as MM:SS, or "--:--" when unknown.
	ETA string
}

// New creates a progress bar showing message.
// Without WithMax the bar starts in Indeterminate mode.
// Cancelling ctx stops a running animation without drawing a terminal frame.
func New(ctx context.Context, message string, opts ...Option) (*ProgressBar, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	if err := s.validate(); err != nil {
		return nil, err
	}

	if ctx == nil {
		ctx = context.Background()
	}

	if s.logger == nil {
		s.logger = ctxlog.Logger(ctx)
	}

	p := &ProgressBar{
		ctx:          ctx,
		logger:       s.logger,
		tick:         s.tick,
		overflow:     s.overflow,
		showETA:      s.showETA,
		messageWidth: s.messageWidth,
		barWidth:     s.barWidth,
		marqueeWidth: s.marqueeWidth,
		line:         render.NewLine(s.writer),
		timer:        timer.New(s.clock),
		marquee:      render.NewMarquee(s.barWidth, s.marqueeWidth),
		mode:         Indeterminate,
		max:          s.max,
		indicator:    s.indicator,
		quiet:        s.quiet,
	}

	if s.hasMax {
		p.mode = Determinate
	}

	if err := p.SetMessage(message); err != nil {
		return nil, err
	}

	return p, nil
}

// SetMessage replaces the message. It is padded or truncated to the message
// column; with OverflowReject a message that does not fit is refused.
// A running animation picks up the new message on its next frame.
func (p *ProgressBar) SetMessage(text string) error {
	fitted, overflow := render.FitMessage(text, p.messageWidth)
	if overflow && p.overflow == OverflowReject {
		return &ConfigError{
			Field:  "message",
			Value:  text,
			Reason: fmt.Sprintf("wider than %d cells", p.messageWidth),
		}
	}

	p.mu.Lock()
	p.message = fitted
	p.mu.Unlock()

	return nil
}

// SetMaxVal sets the Determinate total. The value is kept in either mode but
// is only drawn in Determinate mode.
func (p *ProgressBar) SetMaxVal(n int) error {
	if n <= 0 {
		return &ConfigError{Field: "max", Value: n, Reason: "must be greater than zero"}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.max = n
	if p.current > n {
		p.current = n
	}

	return nil
}

// SetIndicatorChar sets the fill glyph.
func (p *ProgressBar) SetIndicatorChar(r rune) error {
	if !render.IsGlyph(r) {
		return &ConfigError{Field: "indicator", Value: string(r), Reason: "must be a single-cell printable character"}
	}

	p.mu.Lock()
	p.indicator = r
	p.mu.Unlock()

	return nil
}

// SetQuiet suppresses or resumes rendering. Time keeps being measured while
// quiet so elapsed time stays correct after un-muting.
func (p *ProgressBar) SetQuiet(quiet bool) {
	p.mu.Lock()
	p.quiet = quiet
	p.mu.Unlock()
}

// SetCurrentVal sets the Determinate progress value, clamped to [0, max],
// and draws the bar. It is a no-op in Indeterminate mode.
func (p *ProgressBar) SetCurrentVal(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.setCurrentLocked(n)
}

// Increment adds one to the Determinate progress value.
func (p *ProgressBar) Increment() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.setCurrentLocked(p.current + 1)
}

func (p *ProgressBar) setCurrentLocked(n int) {
	if p.mode != Determinate {
		return
	}

	p.current = min(max(n, 0), p.max)
	p.timer.Start()

	if p.quiet {
		return
	}

	eta := ""
	if p.showETA {
		eta = p.timer.Sample(p.current, p.max).ETAString()
	}

	p.draw(render.Determinate(p.message, p.style(), p.current, p.max, eta))
}

// SetMode switches to mode m. Switching to the current mode does nothing.
// Otherwise any animation is stopped, the previous mode's terminal frame is
// drawn on its own line when finishPrevious is set, and the run is reset.
// The animation of a new Indeterminate run begins with Start.
func (p *ProgressBar) SetMode(m Mode, finishPrevious bool) error {
	if !m.Valid() {
		return &ConfigError{Field: "mode", Value: int(m), Reason: "unknown mode"}
	}

	if p.Mode() == m {
		return nil
	}

	p.lockStopped()
	defer p.mu.Unlock()

	if p.mode == m {
		return nil
	}

	if finishPrevious {
		p.finishLocked(true)
	}

	p.resetLocked()
	p.current = 0
	p.mode = m

	return nil
}

// Start begins the Indeterminate animation. It does nothing in Determinate
// mode or when the animation is already running. The animation runs while
// quiet too, drawing nothing until SetQuiet(false).
func (p *ProgressBar) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.mode != Indeterminate || p.stop != nil {
		return
	}

	ctx, cancel := context.WithCancel(p.ctx)
	done := make(chan struct{})
	p.stop, p.done = cancel, done

	go p.animate(ctx, cancel, done)
}

// Finish stops any animation, draws the terminal frame of the current mode
// unless quiet, optionally ends the line, and resets the run. In Determinate
// mode the progress value is forced to max. Finish may be called repeatedly.
func (p *ProgressBar) Finish(newline bool) {
	p.lockStopped()
	defer p.mu.Unlock()

	p.finishLocked(newline)
	p.resetLocked()
}

// Mode returns the current mode.
func (p *ProgressBar) Mode() Mode {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.mode
}

// Current returns the Determinate progress value.
func (p *ProgressBar) Current() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.current
}

// Max returns the Determinate total.
func (p *ProgressBar) Max() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.max
}

// Message returns the padded message as drawn.
func (p *ProgressBar) Message() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.message
}

// Quiet reports whether rendering is suppressed.
func (p *ProgressBar) Quiet() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.quiet
}

// Animating reports whether the Indeterminate animation is running.
func (p *ProgressBar) Animating() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.stop != nil
}

// Snapshot returns the current state.
func (p *ProgressBar) Snapshot() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	st := State{
		Mode:      p.mode,
		Current:   p.current,
		Max:       p.max,
		Message:   p.message,
		Quiet:     p.quiet,
		Animating: p.stop != nil,
		Started:   p.timer.Running(),
		ETA:       timer.UnknownClock,
	}

	if p.mode == Determinate {
		st.Percent = render.Percent(p.current, p.max)
	}

	if !st.Started {
		return st
	}

	if p.mode == Determinate {
		s := p.timer.Sample(p.current, p.max)
		st.Elapsed = s.Elapsed
		st.ETA = s.ETAString()
	} else {
		st.Elapsed = p.timer.Sample(0, 0).Elapsed
	}

	return st
}

func (p *ProgressBar) animate(ctx context.Context, cancel context.CancelFunc, done chan struct{}) {
	defer close(done)
	defer cancel()
	defer p.detach(done)

	ticker := time.NewTicker(p.tick)
	defer ticker.Stop()

	p.mu.Lock()
	p.timer.Start()
	p.mu.Unlock()

	for {
		if ctx.Err() != nil {
			return
		}

		p.mu.Lock()
		if !p.quiet {
			elapsed := p.timer.Sample(0, 0).ElapsedString()
			p.draw(render.Indeterminate(p.message, p.style(), p.marquee, elapsed))
		}

		p.marquee.Advance()
		p.mu.Unlock()

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// detach forgets the animation identified by done if it is still the current one,
// which happens when the constructor context is cancelled.
func (p *ProgressBar) detach(done chan struct{}) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.done == done {
		p.stop, p.done = nil, nil
	}
}

// lockStopped stops any animation and returns with mu held and no animation
// running. A Start that slips in between stopping and locking is stopped too.
func (p *ProgressBar) lockStopped() {
	for {
		p.stopAnimation()
		p.mu.Lock()

		if p.stop == nil {
			return
		}

		p.mu.Unlock()
	}
}

// stopAnimation cancels the animation and waits for its goroutine to exit.
// It must not be called with mu held.
func (p *ProgressBar) stopAnimation() {
	p.mu.Lock()
	stop, done := p.stop, p.done
	p.stop, p.done = nil, nil
	p.mu.Unlock()

	if stop == nil {
		return
	}

	stop()
	<-done
}

func (p *ProgressBar) finishLocked(newline bool) {
	if p.mode == Determinate {
		p.current = p.max
	}

	if p.quiet {
		return
	}

	elapsed := p.timer.Sample(p.current, p.max).ElapsedString()

	var frame string
	if p.mode == Determinate {
		frame = render.DeterminateDone(p.message, p.style(), elapsed)
	} else {
		frame = render.IndeterminateDone(p.message, p.style(), elapsed)
	}

	if err := p.line.Finish(frame, newline); err != nil {
		p.warn(err)
	}
}

func (p *ProgressBar) resetLocked() {
	p.timer.Reset()
	p.marquee.Reset()
	p.warned = false
}

func (p *ProgressBar) draw(frame string) {
	if err := p.line.Draw(frame); err != nil {
		p.warn(err)
	}
}

// warn logs the first write failure of a run. Rendering is best-effort.
func (p *ProgressBar) warn(err error) {
	if p.warned {
		return
	}

	p.warned = true
	p.logger.WarnContext(p.ctx, "progress bar write failed", "error", err)
}

func (p *ProgressBar) style() render.Style {
	return render.Style{BarWidth: p.barWidth, Indicator: p.indicator}
}
