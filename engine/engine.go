// Package engine runs a simulation at a fixed timestep on top of a display
// refresh callback.
package engine

import (
	"time"
)

// FrameFunc is invoked with the timestamp of a display refresh.
type FrameFunc func(t time.Duration)

// FrameRequester schedules a callback for the next display refresh.
type FrameRequester interface {
	RequestFrame(cb FrameFunc) (id int)
	CancelFrame(id int)
}

// Clock reports a monotonic timestamp on the same timeline as the frame
// callbacks.
type Clock interface {
	Now() time.Duration
}

// StepFunc is one simulation update or render pass.
type StepFunc func(t time.Duration) error

// DefaultMaxCatchUp is the number of steps of accumulated time at which the
// backlog is dropped.
const DefaultMaxCatchUp = 3

type Engine struct {
	step       time.Duration
	maxCatchUp int

	update StepFunc
	render StepFunc
	frames FrameRequester
	clock  Clock

	accumulated time.Duration
	last        time.Duration
	updated     bool

	request int
	pending bool
	err     error
}

type Option func(*Engine)

// WithMaxCatchUp sets how many steps of backlog are tolerated before the
// accumulated time is reset to a single step.
func WithMaxCatchUp(steps int) Option {
	return func(e *Engine) {
		if steps >= 1 {
			e.maxCatchUp = steps
		}
	}
}

func New(step time.Duration, update, render StepFunc, frames FrameRequester, clock Clock, opts ...Option) *Engine {
	e := &Engine{
		step:       step,
		maxCatchUp: DefaultMaxCatchUp,
		update:     update,
		render:     render,
		frames:     frames,
		clock:      clock,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start primes the accumulator with exactly one step and requests the first
// frame.
func (e *Engine) Start() {
	e.accumulated = e.step
	e.last = e.clock.Now()
	e.updated = false
	e.err = nil
	e.requestFrame()
}

// Stop cancels the pending frame request. Calling it again is a no-op.
func (e *Engine) Stop() {
	if !e.pending {
		return
	}
	e.frames.CancelFrame(e.request)
	e.pending = false
}

// Running reports whether a frame request is pending.
func (e *Engine) Running() bool {
	return e.pending
}

// Step returns the fixed simulation step.
func (e *Engine) Step() time.Duration {
	return e.step
}

// Err returns the error that stopped the engine, if any.
func (e *Engine) Err() error {
	return e.err
}

func (e *Engine) requestFrame() {
	e.request = e.frames.RequestFrame(e.frame)
	e.pending = true
}

func (e *Engine) frame(t time.Duration) {
	e.pending = false
	if err := e.Run(t); err != nil {
		e.err = err
	}
}

// Run handles one display refresh at timestamp t. The next frame is requested
// before any work so that Stop calls made by update or render cancel it. An
// update or render error stops the engine and is returned.
func (e *Engine) Run(t time.Duration) error {
	e.requestFrame()

	e.accumulated += t - e.last
	e.last = t

	if e.accumulated >= time.Duration(e.maxCatchUp)*e.step {
		e.accumulated = e.step
	}

	for e.accumulated >= e.step {
		e.accumulated -= e.step
		if err := e.update(t); err != nil {
			e.Stop()
			return err
		}
		e.updated = true
	}

	if e.updated {
		e.updated = false
		if err := e.render(t); err != nil {
			e.Stop()
			return err
		}
	}
	return nil
}
