package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the override file looked up in the user and local config directories.
const FileName = "burrow.yaml"

// document mirrors the override file layout. Sections missing from the file
// keep their current values.
type document struct {
	Game        Config            `yaml:"game"`
	Screen      ScreenConfig      `yaml:"screen"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Player      PlayerConfig      `yaml:"player"`
	Loop        LoopConfig        `yaml:"loop"`
	Collectible CollectibleConfig `yaml:"collectible"`
	Decoration  DecorationConfig  `yaml:"decoration"`
	Transition  TransitionConfig  `yaml:"transition"`
	Debug       DebugConfig       `yaml:"debug"`
}

// LoadOverrides applies YAML overrides on top of the defaults and returns the
// path that was used, or "" when no file was found.
// Search order: customPath -> ~/.burrow/burrow.yaml -> ./configs/burrow.yaml
func LoadOverrides(customPath string) (string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := ApplyYAML(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return customPath, nil
	}

	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := ApplyYAML(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return path, nil
	}
	return "", nil
}

// ApplyYAML decodes an override document onto the global configuration.
// Nothing is changed when decoding fails.
func ApplyYAML(data []byte) error {
	doc := document{
		Game:        *C,
		Screen:      Screen,
		Physics:     Physics,
		Player:      Player,
		Loop:        Loop,
		Collectible: Collectible,
		Decoration:  Decoration,
		Transition:  Transition,
		Debug:       Debug,
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if err := doc.validate(); err != nil {
		return err
	}

	C = &doc.Game
	Screen = doc.Screen
	Physics = doc.Physics
	Player = doc.Player
	Loop = doc.Loop
	Collectible = doc.Collectible
	Decoration = doc.Decoration
	Transition = doc.Transition
	Debug = doc.Debug
	return nil
}

func (d *document) validate() error {
	switch {
	case d.Physics.TileSize <= 0:
		return fmt.Errorf("physics.tile_size must be positive, got %d", d.Physics.TileSize)
	case d.Loop.StepsPerSecond <= 0:
		return fmt.Errorf("loop.steps_per_second must be positive, got %d", d.Loop.StepsPerSecond)
	case d.Loop.MaxCatchUpSteps < 1:
		return fmt.Errorf("loop.max_catch_up_steps must be at least 1, got %d", d.Loop.MaxCatchUpSteps)
	case d.Screen.Scale < 1:
		return fmt.Errorf("screen.scale must be at least 1, got %d", d.Screen.Scale)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".burrow", filename)
}
