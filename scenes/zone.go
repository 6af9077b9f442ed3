package scenes

import (
	"context"

	"github.com/automoto/burrow/assets"
	cfg "github.com/automoto/burrow/config"
	"github.com/automoto/burrow/engine"
	"github.com/automoto/burrow/session"
	"github.com/automoto/burrow/shared/zonedata"
	"github.com/automoto/burrow/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// ZoneScene hosts a play session. ebitengine's Update is treated as the
// display refresh that drives the session's frame requests.
type ZoneScene struct {
	session *session.Session
	backend *RasterBackend
	clock   *engine.SystemClock
	input   Input
	pause   *ui.PauseUI
	debug   bool
	quit    bool
}

// NewZoneScene builds the tile sheet, loads the start zone and starts play.
func NewZoneScene(ctx context.Context, provider zonedata.Provider, startZone string) (*ZoneScene, error) {
	sheet := ebiten.NewImageFromImage(assets.Sheet())
	backend := NewRasterBackend(sheet, cfg.Screen.Width, cfg.Screen.Height)
	clock := engine.NewSystemClock()

	s, err := session.New(ctx, provider, backend, clock, startZone,
		session.WithEngineOptions(engine.WithMaxCatchUp(cfg.Loop.MaxCatchUpSteps)))
	if err != nil {
		return nil, err
	}
	zs := &ZoneScene{
		session: s,
		backend: backend,
		clock:   clock,
		debug:   cfg.Debug.Overlay,
	}
	zs.pause = ui.NewPauseUI(zs.resume, zs.toggleDebug, func() { zs.quit = true })
	return zs, nil
}

func (zs *ZoneScene) Update() error {
	zs.input.Poll()
	if zs.input.DebugToggled() {
		zs.toggleDebug()
	}
	if zs.input.PauseToggled() {
		if zs.session.Paused() {
			zs.resume()
		} else if zs.session.Pause() {
			zs.refreshPause()
		}
	}
	if zs.session.Paused() {
		zs.pause.Update()
	} else {
		zs.session.SetIntents(zs.input.Intents())
	}

	if err := zs.session.Frame(zs.clock.Now()); err != nil {
		return err
	}
	if zs.quit {
		return ebiten.Termination
	}
	return nil
}

func (zs *ZoneScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Screen.BackgroundColor)
	screen.DrawImage(zs.backend.Frame(), nil)

	w := zs.session.World()
	if zs.debug {
		DrawDebug(w, screen)
	}
	DrawHUD(w.Collected(), screen)
	DrawFade(zs.session.Fade().Alpha(), screen)

	if zs.session.Paused() {
		zs.pause.UI.Draw(screen)
	}
}

// Close stops the session and abandons any zone load in flight.
func (zs *ZoneScene) Close() {
	zs.session.Close()
}

func (zs *ZoneScene) resume() {
	zs.session.Resume()
}

func (zs *ZoneScene) toggleDebug() {
	zs.debug = !zs.debug
	zs.refreshPause()
}

func (zs *ZoneScene) refreshPause() {
	w := zs.session.World()
	id := ""
	if z := w.Zone(); z != nil {
		id = z.ID
	}
	zs.pause.SetStatus(id, w.Collected(), zs.debug)
}
