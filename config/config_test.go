package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestApplyYAMLOverridesOnlyGivenFields(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	err := ApplyYAML([]byte(`
physics:
  gravity: 1.5
player:
  max_velocity: 9
game:
  start_zone: "01"
`))
	if err != nil {
		t.Fatalf("ApplyYAML() error = %v", err)
	}

	if Physics.Gravity != 1.5 {
		t.Errorf("Physics.Gravity = %v, want 1.5", Physics.Gravity)
	}
	if Physics.Friction != 0.85 {
		t.Errorf("Physics.Friction = %v, want default 0.85", Physics.Friction)
	}
	if Player.MaxVelocity != 9 {
		t.Errorf("Player.MaxVelocity = %v, want 9", Player.MaxVelocity)
	}
	if Player.JumpImpulse != 13 {
		t.Errorf("Player.JumpImpulse = %v, want default 13", Player.JumpImpulse)
	}
	if C.StartZone != "01" {
		t.Errorf("C.StartZone = %q, want 01", C.StartZone)
	}
	if Screen.BackgroundColor != Sky {
		t.Errorf("Screen.BackgroundColor = %v, want default", Screen.BackgroundColor)
	}
}

func TestApplyYAMLRejectsInvalid(t *testing.T) {
	t.Cleanup(Reset)

	tests := []struct {
		name string
		doc  string
	}{
		{"syntax", "physics: [1"},
		{"zero tile size", "physics:\n  tile_size: 0"},
		{"zero steps", "loop:\n  steps_per_second: 0"},
		{"zero catch up", "loop:\n  max_catch_up_steps: 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Reset()
			if err := ApplyYAML([]byte(tt.doc)); err == nil {
				t.Fatal("ApplyYAML() error = nil, want error")
			}
			if Physics.TileSize != 16 || Loop.StepsPerSecond != 30 {
				t.Error("failed override modified the configuration")
			}
		})
	}
}

func TestLoadOverridesCustomPath(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("loop:\n  steps_per_second: 60\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	used, err := LoadOverrides(path)
	if err != nil {
		t.Fatalf("LoadOverrides() error = %v", err)
	}
	if used != path {
		t.Errorf("LoadOverrides() path = %q, want %q", used, path)
	}
	if got, want := Loop.Step(), time.Second/60; got != want {
		t.Errorf("Loop.Step() = %v, want %v", got, want)
	}

	if _, err := LoadOverrides(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadOverrides(missing) error = nil, want error")
	}
}

func TestFrameSetsReferenceSheetFrames(t *testing.T) {
	for name, frames := range FrameSets {
		if len(frames) == 0 {
			t.Errorf("frame set %s is empty", name)
		}
		for _, id := range frames {
			if id < 0 || id >= len(Sheet.Frames) {
				t.Errorf("frame set %s references frame %d outside the sheet", name, id)
			}
		}
	}
}
