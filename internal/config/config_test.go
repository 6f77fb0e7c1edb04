package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultsAreValid(t *testing.T) {
	s := Default()
	if err := s.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if got := s.Timing.TargetFrame(); got != 16666666*time.Nanosecond {
		t.Fatalf("TargetFrame = %v", got)
	}
	if got := s.Timing.SleepThreshold(); got != 14999999*time.Nanosecond {
		t.Fatalf("SleepThreshold = %v", got)
	}
}

func TestLoadOverlaysYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cube3d.yaml")
	data := `
window:
  width: 1280
timing:
  target_fps: 120
  max_dt: 25ms
  busy_wait: false
renderer:
  background: [0.1, 0.2, 0.3, 1]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Window.Width != 1280 || s.Window.Height != 600 {
		t.Fatalf("window = %+v, want width overridden and height kept", s.Window)
	}
	if s.Timing.TargetFPS != 120 || s.Timing.MaxDT.Duration() != 25*time.Millisecond || s.Timing.BusyWait {
		t.Fatalf("timing = %+v", s.Timing)
	}
	if s.Timing.SleepFraction != 0.9 {
		t.Fatalf("sleep_fraction default lost: %v", s.Timing.SleepFraction)
	}
	if s.Renderer.Background != [4]float32{0.1, 0.2, 0.3, 1} {
		t.Fatalf("background = %v", s.Renderer.Background)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("Load of a missing file succeeded")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("timing:\n  max_dt: soon\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("Load accepted an invalid duration")
	}

	s, err := Load("")
	if err != nil || s != Default() {
		t.Fatalf("Load(\"\") = %+v, %v; want defaults", s, err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(s *Settings){
		"zero height":       func(s *Settings) { s.Window.Height = 0 },
		"zero fps":          func(s *Settings) { s.Timing.TargetFPS = 0 },
		"zero max dt":       func(s *Settings) { s.Timing.MaxDT = 0 },
		"sleep fraction 0":  func(s *Settings) { s.Timing.SleepFraction = 0 },
		"sleep fraction >1": func(s *Settings) { s.Timing.SleepFraction = 1.5 },
		"negative frames":   func(s *Settings) { s.Timing.MaxFrames = -1 },
		"far before near":   func(s *Settings) { s.Camera.Far = 0.05 },
		"fov":               func(s *Settings) { s.Camera.FOV = 200 },
		"ring":              func(s *Settings) { s.Scene.RingCubes = -2 },
	}
	for name, mutate := range cases {
		s := Default()
		mutate(&s)
		if err := s.Validate(); !errors.Is(err, ErrInvalid) {
			t.Fatalf("%s: Validate = %v, want ErrInvalid", name, err)
		}
	}
}
