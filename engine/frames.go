package engine

import (
	"time"
)

// ManualFrames is a FrameRequester driven by explicit Dispatch calls, for
// hosts that own the refresh loop (ebitengine's Update) and for tests.
type ManualFrames struct {
	next    int
	id      int
	pending FrameFunc
}

func (m *ManualFrames) RequestFrame(cb FrameFunc) int {
	m.next++
	m.id = m.next
	m.pending = cb
	return m.id
}

func (m *ManualFrames) CancelFrame(id int) {
	if id == m.id {
		m.pending = nil
	}
}

// Pending reports whether a callback is waiting for the next refresh.
func (m *ManualFrames) Pending() bool {
	return m.pending != nil
}

// Dispatch runs the pending callback, if any, with timestamp t. The callback
// is cleared first so it may request the next frame.
func (m *ManualFrames) Dispatch(t time.Duration) bool {
	cb := m.pending
	if cb == nil {
		return false
	}
	m.pending = nil
	cb(t)
	return true
}

// SystemClock reports the time elapsed since it was created.
type SystemClock struct {
	start time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

func (c *SystemClock) Now() time.Duration {
	return time.Since(c.start)
}
