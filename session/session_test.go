package session

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/automoto/burrow/render"
	"github.com/automoto/burrow/shared/zonedata"
	"github.com/automoto/burrow/systems"
)

type fakeClock struct{ now time.Duration }

func (c *fakeClock) Now() time.Duration { return c.now }

type memProvider map[string]*zonedata.Zone

func (p memProvider) Load(ctx context.Context, id string) (*zonedata.Zone, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	z, ok := p[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", zonedata.ErrZoneNotFound, id)
	}
	return z, nil
}

// blockingProvider serves start synchronously and blocks on any other zone
// until the fetch is cancelled.
type blockingProvider struct {
	start     *zonedata.Zone
	cancelled chan struct{}
}

func (p *blockingProvider) Load(ctx context.Context, id string) (*zonedata.Zone, error) {
	if id == p.start.ID {
		return p.start, nil
	}
	<-ctx.Done()
	close(p.cancelled)
	return nil, ctx.Err()
}

// floorZone is a 12x9 zone with a solid bottom row.
func floorZone(id string, doors ...zonedata.DoorSpec) *zonedata.Zone {
	z := &zonedata.Zone{
		ID: id, Columns: 12, Rows: 9,
		CollisionMap: make([]int, 12*9),
		GraphicalMap: make([]int, 12*9),
		Doors:        doors,
	}
	for col := 0; col < 12; col++ {
		z.CollisionMap[8*12+col] = 15
	}
	return z
}

// spawnDoor covers the player's spawn point.
func spawnDoor(to string, destX float64) zonedata.DoorSpec {
	return zonedata.DoorSpec{
		X: 24, Y: 64, Width: 32, Height: 32,
		DestinationZone: to, DestinationX: destX, DestinationY: zonedata.KeepAxis,
	}
}

// advance delivers frames 16ms apart until done reports true.
func advance(t *testing.T, s *Session, clock *fakeClock, done func() bool) {
	t.Helper()
	for i := 0; i < 500; i++ {
		if done() {
			return
		}
		clock.now += 16 * time.Millisecond
		time.Sleep(time.Millisecond)
		if err := s.Frame(clock.now); err != nil {
			t.Fatalf("Frame: %v", err)
		}
	}
	t.Fatal("condition not reached")
}

func TestNewStartsInStartZone(t *testing.T) {
	clock := &fakeClock{}
	rec := &render.Recorder{}
	s, err := New(context.Background(), memProvider{"00": floorZone("00")}, rec, clock, "00")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := s.World().Zone().ID; got != "00" {
		t.Errorf("zone = %q, want 00", got)
	}
	if !s.Running() {
		t.Error("engine should be running")
	}

	if err := s.Frame(0); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if rec.Count("present") != 1 {
		t.Errorf("presents = %d, want 1", rec.Count("present"))
	}
}

func TestNewMissingStartZone(t *testing.T) {
	_, err := New(context.Background(), memProvider{}, &render.Recorder{}, &fakeClock{}, "00")
	if !errors.Is(err, zonedata.ErrZoneNotFound) {
		t.Fatalf("err = %v, want ErrZoneNotFound", err)
	}
}

func TestNewInvalidStartZone(t *testing.T) {
	bad := floorZone("00")
	bad.GraphicalMap = bad.GraphicalMap[:3]
	_, err := New(context.Background(), memProvider{"00": bad}, &render.Recorder{}, &fakeClock{}, "00")
	if !errors.Is(err, zonedata.ErrInvalidZone) {
		t.Fatalf("err = %v, want ErrInvalidZone", err)
	}
}

func TestDoorMovesToNextZone(t *testing.T) {
	clock := &fakeClock{}
	provider := memProvider{
		"00": floorZone("00", spawnDoor("01", 100)),
		"01": floorZone("01"),
	}
	s, err := New(context.Background(), provider, &render.Recorder{}, clock, "00")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := s.Frame(0); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if !s.Transitioning() {
		t.Fatal("expected a zone change after entering the door")
	}
	if s.Running() {
		t.Error("engine should stop while the next zone loads")
	}
	y := s.World().PlayerBody().Y

	advance(t, s, clock, func() bool { return !s.Transitioning() })

	if got := s.World().Zone().ID; got != "01" {
		t.Errorf("zone = %q, want 01", got)
	}
	body := s.World().PlayerBody()
	if math.Abs(body.CenterX()-100) > 1e-9 {
		t.Errorf("center x = %v, want 100", body.CenterX())
	}
	if body.Y != y {
		t.Errorf("y = %v, want unchanged %v", body.Y, y)
	}
	if s.World().PendingDoor() != nil {
		t.Error("pending door should be cleared")
	}
	if !s.Running() {
		t.Error("engine should restart after setup")
	}
	if !s.Fade().Active() {
		t.Error("fade in should be running")
	}

	advance(t, s, clock, func() bool { return !s.Fade().Active() })
}

func TestFailedLoadIsFatal(t *testing.T) {
	clock := &fakeClock{}
	s, err := New(context.Background(), memProvider{"00": floorZone("00", spawnDoor("99", 100))}, &render.Recorder{}, clock, "00")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.Frame(0); err != nil {
		t.Fatalf("Frame: %v", err)
	}

	var frameErr error
	for i := 0; i < 500 && frameErr == nil; i++ {
		clock.now += 16 * time.Millisecond
		time.Sleep(time.Millisecond)
		frameErr = s.Frame(clock.now)
	}
	if !errors.Is(frameErr, zonedata.ErrZoneNotFound) {
		t.Fatalf("err = %v, want ErrZoneNotFound", frameErr)
	}
	if s.Running() {
		t.Error("engine should be stopped")
	}
	if err := s.Frame(clock.now + time.Second); !errors.Is(err, zonedata.ErrZoneNotFound) {
		t.Errorf("later Frame err = %v, want the same error", err)
	}
}

func TestCloseCancelsLoad(t *testing.T) {
	p := &blockingProvider{
		start:     floorZone("00", spawnDoor("01", 100)),
		cancelled: make(chan struct{}),
	}
	s, err := New(context.Background(), p, &render.Recorder{}, &fakeClock{}, "00")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.Frame(0); err != nil {
		t.Fatalf("Frame: %v", err)
	}

	s.Close()
	select {
	case <-p.cancelled:
	case <-time.After(time.Second):
		t.Fatal("load was not cancelled")
	}
}

func TestIntentsReachWorld(t *testing.T) {
	clock := &fakeClock{}
	s, err := New(context.Background(), memProvider{"00": floorZone("00")}, &render.Recorder{}, clock, "00")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	x := s.World().PlayerBody().X

	for i := 0; i < 10; i++ {
		s.SetIntents(systems.Intents{Right: true})
		if err := s.Frame(clock.now); err != nil {
			t.Fatalf("Frame: %v", err)
		}
		clock.now += 40 * time.Millisecond
	}
	if got := s.World().PlayerBody().X; got <= x {
		t.Errorf("x = %v, want greater than %v", got, x)
	}
}

func TestFade(t *testing.T) {
	f := NewFade(0.2)
	if f.Active() || f.Covered() {
		t.Fatal("new fade should be clear")
	}

	f.Out()
	f.Update(0.1)
	if a := f.Alpha(); a <= 0 || a >= 1 {
		t.Errorf("alpha midway = %v", a)
	}
	if f.Covered() {
		t.Error("covered too early")
	}
	f.Update(0.2)
	if !f.Covered() {
		t.Errorf("alpha = %v, want covered", f.Alpha())
	}

	f.In()
	f.Update(0.3)
	if f.Alpha() != 0 || f.Active() {
		t.Errorf("alpha = %v, want clear", f.Alpha())
	}
}

func TestInstantFade(t *testing.T) {
	f := NewFade(0)
	f.Out()
	if !f.Covered() {
		t.Error("zero length fade should cover at once")
	}
	f.In()
	if f.Active() {
		t.Error("zero length fade should clear at once")
	}
}

func TestPauseResume(t *testing.T) {
	clock := &fakeClock{}
	s, err := New(context.Background(), memProvider{"00": floorZone("00")}, &render.Recorder{}, clock, "00")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.Frame(0); err != nil {
		t.Fatalf("Frame: %v", err)
	}

	if !s.Pause() {
		t.Fatal("Pause() = false")
	}
	if s.Running() || !s.Paused() {
		t.Fatal("engine should be stopped while paused")
	}
	before := s.World().PlayerBody()
	for i := 0; i < 5; i++ {
		clock.now += 100 * time.Millisecond
		if err := s.Frame(clock.now); err != nil {
			t.Fatalf("Frame: %v", err)
		}
	}
	if got := s.World().PlayerBody(); got != before {
		t.Errorf("player moved while paused: %+v -> %+v", before, got)
	}

	s.Resume()
	if !s.Running() || s.Paused() {
		t.Fatal("engine should run after Resume")
	}
	if err := s.Frame(clock.now); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if got := s.World().PlayerBody(); got == before {
		t.Error("player should fall again after Resume")
	}
}

func TestPauseIgnoredDuringZoneChange(t *testing.T) {
	clock := &fakeClock{}
	provider := memProvider{
		"00": floorZone("00", spawnDoor("01", 100)),
		"01": floorZone("01"),
	}
	s, err := New(context.Background(), provider, &render.Recorder{}, clock, "00")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.Frame(0); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if s.Pause() {
		t.Error("Pause() should be refused during a zone change")
	}
}
