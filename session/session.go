// Package session runs a world on the fixed-timestep engine and handles
// moving between zones. When the player enters a door the engine stops and
// the destination zone is fetched in the background behind a fade. Play
// resumes once the world has been set up with it.
package session

import (
	"context"
	"fmt"
	"time"

	cfg "github.com/automoto/burrow/config"
	"github.com/automoto/burrow/engine"
	"github.com/automoto/burrow/logger"
	"github.com/automoto/burrow/render"
	"github.com/automoto/burrow/shared/zonedata"
	"github.com/automoto/burrow/systems"
	"github.com/automoto/burrow/world"
	"github.com/sirupsen/logrus"
)

type loadResult struct {
	zone *zonedata.Zone
	err  error
}

type Session struct {
	ctx        context.Context
	provider   zonedata.Provider
	world      *world.World
	renderer   *render.Renderer
	frames     *engine.ManualFrames
	engine     *engine.Engine
	engineOpts []engine.Option
	fade       *Fade

	// Zone change in flight. loading is set while the fetch runs, next once
	// it has arrived and is waiting for the fade to cover the screen.
	loading <-chan loadResult
	cancel  context.CancelFunc
	next    *zonedata.Zone
	target  string

	last    time.Duration
	started bool
	paused  bool
	err     error
}

type Option func(*Session)

// WithWorld replaces the default world.
func WithWorld(w *world.World) Option {
	return func(s *Session) { s.world = w }
}

// WithEngineOptions forwards options to the scheduler.
func WithEngineOptions(opts ...engine.Option) Option {
	return func(s *Session) { s.engineOpts = append(s.engineOpts, opts...) }
}

// New loads the start zone, sets up the world with it and starts the
// engine. Frames are delivered by calling Frame from the host loop.
func New(ctx context.Context, provider zonedata.Provider, backend render.Backend, clock engine.Clock, startZone string, opts ...Option) (*Session, error) {
	s := &Session{
		ctx:      ctx,
		provider: provider,
		renderer: render.New(backend, cfg.Sheet),
		frames:   &engine.ManualFrames{},
		fade:     NewFade(cfg.Transition.FadeSeconds),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.world == nil {
		s.world = world.New()
	}

	z, err := provider.Load(ctx, startZone)
	if err != nil {
		return nil, fmt.Errorf("load start zone %q: %w", startZone, err)
	}
	if err := s.world.Setup(z); err != nil {
		return nil, fmt.Errorf("set up zone %q: %w", startZone, err)
	}

	s.engine = engine.New(cfg.Loop.Step(), s.update, s.render, s.frames, clock, s.engineOpts...)
	s.engine.Start()
	return s, nil
}

// Frame handles one display refresh at time now, as reported by the clock
// given to New. After an error is returned the session stays stopped and
// keeps returning it.
func (s *Session) Frame(now time.Duration) error {
	if s.err != nil {
		return s.err
	}

	var dt float32
	if s.started {
		dt = float32((now - s.last).Seconds())
	}
	s.last, s.started = now, true

	s.frames.Dispatch(now)
	if err := s.engine.Err(); err != nil {
		return s.fail(err)
	}

	s.fade.Update(dt)
	s.pollLoad()
	if s.err != nil {
		return s.err
	}
	if s.next != nil && s.fade.Covered() {
		if err := s.enter(s.next); err != nil {
			return s.fail(err)
		}
	}
	return nil
}

// SetIntents passes player input to the world.
func (s *Session) SetIntents(in systems.Intents) {
	s.world.SetIntents(in)
}

// Pause stops the engine. It reports false and does nothing while a zone
// change is in progress or after a fatal error.
func (s *Session) Pause() bool {
	if s.paused || s.err != nil || s.Transitioning() {
		return false
	}
	s.engine.Stop()
	s.paused = true
	return true
}

// Resume restarts the engine after Pause. The time spent paused is not
// simulated.
func (s *Session) Resume() {
	if !s.paused {
		return
	}
	s.paused = false
	s.engine.Start()
}

func (s *Session) Paused() bool { return s.paused }

// Close abandons any zone fetch in flight and stops the engine.
func (s *Session) Close() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.engine.Stop()
}

func (s *Session) World() *world.World { return s.world }
func (s *Session) Fade() *Fade         { return s.fade }
func (s *Session) Running() bool       { return s.engine.Running() }
func (s *Session) Err() error          { return s.err }

// Transitioning reports whether a zone change is in progress.
func (s *Session) Transitioning() bool {
	return s.loading != nil || s.next != nil
}

func (s *Session) update(time.Duration) error {
	// Steps left over in the frame that found the door are dropped.
	if s.Transitioning() {
		return nil
	}
	s.world.Update()
	if door := s.world.PendingDoor(); door != nil {
		s.leave(door.DestinationZone)
	}
	return nil
}

func (s *Session) render(time.Duration) error {
	s.renderer.Draw(s.world)
	return nil
}

func (s *Session) leave(id string) {
	s.engine.Stop()
	s.target = id

	ctx, cancel := context.WithCancel(s.ctx)
	s.cancel = cancel
	results := make(chan loadResult, 1)
	s.loading = results
	go func() {
		z, err := s.provider.Load(ctx, id)
		results <- loadResult{zone: z, err: err}
	}()

	s.fade.Out()

	from := ""
	if z := s.world.Zone(); z != nil {
		from = z.ID
	}
	logger.Log.WithFields(logrus.Fields{
		"from":      from,
		"to":        id,
		"collected": s.world.Collected(),
	}).Info("leaving zone")
}

func (s *Session) pollLoad() {
	if s.loading == nil {
		return
	}
	select {
	case res := <-s.loading:
		s.loading = nil
		s.cancel()
		s.cancel = nil
		if res.err != nil {
			s.fail(fmt.Errorf("load zone %q: %w", s.target, res.err))
			return
		}
		s.next = res.zone
	default:
	}
}

func (s *Session) enter(z *zonedata.Zone) error {
	s.next = nil
	if err := s.world.Setup(z); err != nil {
		return fmt.Errorf("set up zone %q: %w", s.target, err)
	}
	s.fade.In()
	s.engine.Start()
	return nil
}

func (s *Session) fail(err error) error {
	s.err = err
	s.engine.Stop()
	return err
}
