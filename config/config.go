package config

import (
	"image/color"
	"time"
)

// ScreenConfig contains window and view configuration values
type ScreenConfig struct {
	Title string `yaml:"title"`
	// View size in pixels. Zones are drawn unscaled into this view.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Window scale factor applied by the OS window
	Scale int `yaml:"scale"`

	BackgroundColor color.RGBA `yaml:"-"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity  float64 `yaml:"gravity"`
	Friction float64 `yaml:"friction"` // Multiplicative, applied to horizontal velocity each tick

	// Collision
	TileSize         int     `yaml:"tile_size"`
	CollisionEpsilon float64 `yaml:"collision_epsilon"` // Gap left when snapping against a tile side or under a tile bottom
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Spawn
	SpawnX    float64 `yaml:"spawn_x"`
	SpawnY    float64 `yaml:"spawn_y"`
	Direction float64 `yaml:"direction"`

	// Dimensions
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Movement
	Acceleration  float64 `yaml:"acceleration"`
	MaxVelocity   float64 `yaml:"max_velocity"`
	JumpImpulse   float64 `yaml:"jump_impulse"`
	JumpMaxFallVy float64 `yaml:"jump_max_fall_vy"` // Jumps are refused while falling at least this fast
	MoveThreshold float64 `yaml:"move_threshold"`   // Minimum |vx| for the walk animation

	WalkAnimationDelay int `yaml:"walk_animation_delay"`
}

// LoopConfig contains fixed-timestep scheduler configuration
type LoopConfig struct {
	StepsPerSecond int `yaml:"steps_per_second"`
	// Accumulated time at or above MaxCatchUpSteps steps is dropped back to one step.
	MaxCatchUpSteps int `yaml:"max_catch_up_steps"`
}

// Step returns the simulation step duration.
func (l LoopConfig) Step() time.Duration {
	if l.StepsPerSecond <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(l.StepsPerSecond)
}

// CollectibleConfig contains carrot configuration values
type CollectibleConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"` // Spawn offset from the grid cell's top left
	OffsetY float64 `yaml:"offset_y"`

	// Wobble around the spawn point
	AmplitudeX float64 `yaml:"amplitude_x"`
	AmplitudeY float64 `yaml:"amplitude_y"`
	PhaseStepX float64 `yaml:"phase_step_x"`
	PhaseStepY float64 `yaml:"phase_step_y"`

	AnimationDelay int `yaml:"animation_delay"`
}

// DecorationConfig contains grass configuration values
type DecorationConfig struct {
	OffsetY        float64 `yaml:"offset_y"`
	AnimationDelay int     `yaml:"animation_delay"`
}

// TransitionConfig contains door transition configuration
type TransitionConfig struct {
	FadeSeconds float32    `yaml:"fade_seconds"`
	FadeColor   color.RGBA `yaml:"-"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool `yaml:"overlay"` // Draw broad phase objects and collision corners

	OverlayColor color.RGBA `yaml:"-"`
	CornerColor  color.RGBA `yaml:"-"`
}

// Config holds general game configuration
type Config struct {
	StartZone string `yaml:"start_zone"`
	ZoneDir   string `yaml:"zone_dir"` // Optional directory on disk; embedded zones are used when empty
}

// Global configuration instances
var C *Config
var Screen ScreenConfig
var Physics PhysicsConfig
var Player PlayerConfig
var Loop LoopConfig
var Collectible CollectibleConfig
var Decoration DecorationConfig
var Transition TransitionConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Sky          = color.RGBA{R: 32, G: 40, B: 64, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Reset()
}

// Reset restores every global configuration value to its default.
func Reset() {
	C = &Config{
		StartZone: "00",
	}

	Screen = ScreenConfig{
		Title:           "Burrow",
		Width:           192,
		Height:          144,
		Scale:           4,
		BackgroundColor: Sky,
	}

	Physics = PhysicsConfig{
		Gravity:          2,
		Friction:         0.85,
		TileSize:         16,
		CollisionEpsilon: 0.01,
	}

	Player = PlayerConfig{
		SpawnX:    32,
		SpawnY:    76,
		Direction: DirectionLeft,

		Width:  7,
		Height: 12,

		Acceleration:  0.55,
		MaxVelocity:   15,
		JumpImpulse:   13,
		JumpMaxFallVy: 10,
		MoveThreshold: 0.1,

		WalkAnimationDelay: 5,
	}

	Loop = LoopConfig{
		StepsPerSecond:  30,
		MaxCatchUpSteps: 3,
	}

	Collectible = CollectibleConfig{
		Width:   7,
		Height:  14,
		OffsetX: 5,
		OffsetY: -2,

		AmplitudeX: 2,
		AmplitudeY: 1,
		PhaseStepX: 0.1,
		PhaseStepY: 0.2,

		AnimationDelay: 15,
	}

	Decoration = DecorationConfig{
		OffsetY:        12,
		AnimationDelay: 25,
	}

	Transition = TransitionConfig{
		FadeSeconds: 0.2,
		FadeColor:   Black,
	}

	Debug = DebugConfig{
		OverlayColor: Magenta,
		CornerColor:  LightGreen,
	}
}
