package engine

import (
	"errors"
	"testing"
	"time"
)

type fakeClock struct {
	now time.Duration
}

func (c *fakeClock) Now() time.Duration { return c.now }

type recorder struct {
	updates int
	renders int
}

func (r *recorder) update(time.Duration) error { r.updates++; return nil }
func (r *recorder) render(time.Duration) error { r.renders++; return nil }

const step = 10 * time.Millisecond

func newEngine(r *recorder) (*Engine, *ManualFrames) {
	frames := &ManualFrames{}
	return New(step, r.update, r.render, frames, &fakeClock{}), frames
}

func TestStartRequestsFrame(t *testing.T) {
	r := &recorder{}
	e, frames := newEngine(r)

	e.Start()
	if !e.Running() || !frames.Pending() {
		t.Fatal("Start() did not request a frame")
	}

	// The first refresh runs the primed step.
	frames.Dispatch(0)
	if r.updates != 1 || r.renders != 1 {
		t.Errorf("updates=%d renders=%d, want 1 and 1", r.updates, r.renders)
	}
	if !frames.Pending() {
		t.Error("frame callback did not request the next frame")
	}
}

func TestRunCatchUpIsBounded(t *testing.T) {
	r := &recorder{}
	e, _ := newEngine(r)
	e.Start()

	if err := e.Run(1000 * time.Millisecond); err != nil {
		t.Fatal(err)
	}

	if r.updates > 2 {
		t.Errorf("updates = %d after a long stall, want at most 2", r.updates)
	}
	if r.updates != 1 || r.renders != 1 {
		t.Errorf("updates=%d renders=%d, want 1 and 1", r.updates, r.renders)
	}
}

func TestRunSkipsRenderWithoutUpdate(t *testing.T) {
	r := &recorder{}
	e, _ := newEngine(r)
	e.Start()

	if err := e.Run(0); err != nil {
		t.Fatal(err)
	}
	if r.updates != 1 || r.renders != 1 {
		t.Fatalf("primed step: updates=%d renders=%d", r.updates, r.renders)
	}

	if err := e.Run(5 * time.Millisecond); err != nil {
		t.Fatal(err)
	}
	if r.updates != 1 || r.renders != 1 {
		t.Errorf("short frame: updates=%d renders=%d, want no new work", r.updates, r.renders)
	}

	// The leftover 5ms plus 15ms covers two steps and a single render.
	if err := e.Run(20 * time.Millisecond); err != nil {
		t.Fatal(err)
	}
	if r.updates != 3 || r.renders != 2 {
		t.Errorf("updates=%d renders=%d, want 3 and 2", r.updates, r.renders)
	}
}

func TestRunCatchUpThreshold(t *testing.T) {
	tests := []struct {
		name        string
		elapsed     time.Duration
		wantUpdates int
	}{
		{"one step", 10 * time.Millisecond, 2},
		{"just under the limit", 19 * time.Millisecond, 2},
		{"at the limit", 20 * time.Millisecond, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{}
			e, _ := newEngine(r)
			e.Start()
			// Start primes one step, so the accumulator holds step + elapsed.
			if err := e.Run(tt.elapsed); err != nil {
				t.Fatal(err)
			}
			if r.updates != tt.wantUpdates {
				t.Errorf("updates = %d, want %d", r.updates, tt.wantUpdates)
			}
		})
	}
}

func TestStopFromUpdateCancelsNextFrame(t *testing.T) {
	frames := &ManualFrames{}
	var e *Engine
	e = New(step, func(time.Duration) error {
		e.Stop()
		return nil
	}, func(time.Duration) error { return nil }, frames, &fakeClock{})

	e.Start()
	frames.Dispatch(0)

	if e.Running() || frames.Pending() {
		t.Error("engine still scheduled after Stop in update")
	}

	e.Stop()
	if e.Running() {
		t.Error("second Stop() restarted the engine")
	}
}

func TestUpdateErrorStopsEngine(t *testing.T) {
	boom := errors.New("boom")
	frames := &ManualFrames{}
	renders := 0
	e := New(step, func(time.Duration) error { return boom }, func(time.Duration) error {
		renders++
		return nil
	}, frames, &fakeClock{})

	e.Start()
	frames.Dispatch(0)

	if !errors.Is(e.Err(), boom) {
		t.Errorf("Err() = %v, want boom", e.Err())
	}
	if e.Running() || frames.Pending() {
		t.Error("engine still scheduled after an update error")
	}
	if renders != 0 {
		t.Errorf("renders = %d after failed update, want 0", renders)
	}
}

func TestWithMaxCatchUp(t *testing.T) {
	r := &recorder{}
	e := New(step, r.update, r.render, &ManualFrames{}, &fakeClock{}, WithMaxCatchUp(10))
	e.Start()

	if err := e.Run(50 * time.Millisecond); err != nil {
		t.Fatal(err)
	}
	if r.updates != 6 {
		t.Errorf("updates = %d, want 6", r.updates)
	}
}
