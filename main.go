// burrow is a small tile platformer: guide the rabbit through a chain of
// zones linked by burrow openings and collect the carrots in each.
//
// Usage:
//
//	burrow [--zone <id>] [--config <path>] [--tps <steps>] [--scale <n>] [--debug]
//
// Controls: arrows or A/D to move, Up/Space/W/X to jump, F1 toggles the
// collision overlay.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/automoto/burrow/assets"
	"github.com/automoto/burrow/config"
	"github.com/automoto/burrow/logger"
	"github.com/automoto/burrow/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagZone   string
	flagConfig string
	flagTPS    int
	flagScale  int
	flagDebug  bool
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(scene Scene) *Game {
	return &Game{scene: scene}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.Screen.Width, config.Screen.Height
}

var rootCmd = &cobra.Command{
	Use:   "burrow",
	Short: "Burrow - a rabbit platformer",
	Long: `Burrow is a tile platformer. Run and jump through connected zones,
collect carrots, and use burrow openings to move between zones.

Controls:
  Left/Right, A/D      - Move
  Up/Space/W/X         - Jump
  F1                   - Toggle collision overlay

Examples:
  burrow
  burrow --zone 01 --debug
  burrow --config ./burrow.yaml --scale 3`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func init() {
	rootCmd.Flags().StringVar(&flagZone, "zone", "", "Zone id to start in (default from config)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML config override file")
	rootCmd.Flags().IntVar(&flagTPS, "tps", 0, "Simulation steps per second (default from config)")
	rootCmd.Flags().IntVar(&flagScale, "scale", 0, "Window scale factor (default from config)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Start with the collision overlay and debug logging")
}

func runGame(cmd *cobra.Command, args []string) error {
	path, err := config.LoadOverrides(flagConfig)
	if err != nil {
		return err
	}
	if path != "" {
		logger.Log.WithField("path", path).Info("config overrides applied")
	}

	if flagZone != "" {
		config.C.StartZone = flagZone
	}
	if flagTPS > 0 {
		config.Loop.StepsPerSecond = flagTPS
	}
	if flagScale > 0 {
		config.Screen.Scale = flagScale
	}
	if flagDebug {
		config.Debug.Overlay = true
		logger.EnableDebug()
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	scene, err := scenes.NewZoneScene(ctx, assets.ZoneProvider(config.C.ZoneDir), config.C.StartZone)
	if err != nil {
		return err
	}
	defer scene.Close()

	ebiten.SetWindowTitle(config.Screen.Title)
	ebiten.SetWindowSize(config.Screen.Width*config.Screen.Scale, config.Screen.Height*config.Screen.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	// Update runs once per display refresh; the engine does its own fixed stepping.
	ebiten.SetTPS(ebiten.SyncWithFPS)

	logger.Log.WithFields(logrus.Fields{
		"zone": config.C.StartZone,
		"tps":  config.Loop.StepsPerSecond,
	}).Info("starting")

	if err := ebiten.RunGame(NewGame(scene)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func main() {
	logger.Init()
	if err := rootCmd.Execute(); err != nil {
		logger.Log.WithError(err).Error("burrow stopped")
		os.Exit(1)
	}
}
