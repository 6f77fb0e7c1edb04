// Package config holds the demo's tunables. Defaults match the built-in
// constants; a YAML file may override any subset of them.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Settings is the complete set of tunables.
type Settings struct {
	Window   Window   `yaml:"window"`
	Renderer Renderer `yaml:"renderer"`
	Timing   Timing   `yaml:"timing"`
	Camera   Camera   `yaml:"camera"`
	Speeds   Speeds   `yaml:"speeds"`
	Scene    Scene    `yaml:"scene"`
}

// Window describes the output surface.
type Window struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	Title      string `yaml:"title"`
}

// Renderer selects and configures the graphics backend.
type Renderer struct {
	Backend    string     `yaml:"backend"`
	ShaderDir  string     `yaml:"shader_dir"`
	Background [4]float32 `yaml:"background"`
	Overlay    bool       `yaml:"overlay"`
	VertexGrow int        `yaml:"vertex_grow"`
}

// Timing drives the frame scheduler.
type Timing struct {
	TargetFPS float64 `yaml:"target_fps"`
	// MaxDT caps the simulation step of a single frame.
	MaxDT Duration `yaml:"max_dt"`
	// SleepFraction of the frame budget below which the loop sleeps.
	SleepFraction float64 `yaml:"sleep_fraction"`
	BusyWait      bool    `yaml:"busy_wait"`
	// MaxFrames stops the loop after that many frames; 0 runs until quit.
	MaxFrames int `yaml:"max_frames"`
	// FPSReport is how often the measured frame rate is logged; 0 disables.
	FPSReport Duration `yaml:"fps_report"`
}

// Camera holds the projection parameters and the starting pose.
type Camera struct {
	FOV      float32    `yaml:"fov"`
	Near     float32    `yaml:"near"`
	Far      float32    `yaml:"far"`
	Position [3]float32 `yaml:"position"`
	Yaw      float32    `yaml:"yaw"`
	Pitch    float32    `yaml:"pitch"`
}

// Speeds are per-second rates applied to held keys and animations.
type Speeds struct {
	Player     float32 `yaml:"player"`      // units/s
	Camera     float32 `yaml:"camera"`      // units/s
	CameraTurn float32 `yaml:"camera_turn"` // degrees/s
	Spin       float32 `yaml:"spin"`        // radians/s
}

// Scene controls the objects created at startup.
type Scene struct {
	Seed      int64   `yaml:"seed"`
	RingCubes int     `yaml:"ring_cubes"`
	CubeWidth float32 `yaml:"cube_width"`
}

// Duration wraps time.Duration for YAML unmarshaling.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML writes the duration in time.Duration string form.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Duration returns the time.Duration value.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Window: Window{
			Width:  900,
			Height: 600,
			Title:  "cube3d",
		},
		Renderer: Renderer{
			Backend:    "opengl",
			ShaderDir:  "shaders",
			Background: [4]float32{0, 0, 0, 1},
			Overlay:    true,
			VertexGrow: 8192,
		},
		Timing: Timing{
			TargetFPS:     60,
			MaxDT:         Duration(time.Second / 20),
			SleepFraction: 0.9,
			BusyWait:      true,
			FPSReport:     Duration(5 * time.Second),
		},
		Camera: Camera{
			FOV:   45,
			Near:  0.1,
			Far:   100,
			Yaw:   -90, // looking down -z
			Pitch: 0,
		},
		Speeds: Speeds{
			Player:     2,
			Camera:     3,
			CameraTurn: 90,
			Spin:       1.5,
		},
		Scene: Scene{
			Seed:      1,
			RingCubes: 8,
			CubeWidth: 0.5,
		},
	}
}

// Load returns the defaults overlaid with the YAML file at path. An empty
// path returns the defaults.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return s, nil
}

// Validate checks the settings for values the loop cannot run with.
func (s Settings) Validate() error {
	switch {
	case s.Window.Width <= 0 || s.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, s.Window.Width, s.Window.Height)
	case s.Timing.TargetFPS <= 0:
		return fmt.Errorf("%w: target_fps %v must be positive", ErrInvalid, s.Timing.TargetFPS)
	case s.Timing.MaxDT <= 0:
		return fmt.Errorf("%w: max_dt %v must be positive", ErrInvalid, s.Timing.MaxDT.Duration())
	case s.Timing.SleepFraction <= 0 || s.Timing.SleepFraction > 1:
		return fmt.Errorf("%w: sleep_fraction %v must be in (0, 1]", ErrInvalid, s.Timing.SleepFraction)
	case s.Timing.MaxFrames < 0:
		return fmt.Errorf("%w: max_frames %d is negative", ErrInvalid, s.Timing.MaxFrames)
	case s.Camera.Near <= 0 || s.Camera.Far <= s.Camera.Near:
		return fmt.Errorf("%w: camera near %v far %v", ErrInvalid, s.Camera.Near, s.Camera.Far)
	case s.Camera.FOV <= 0 || s.Camera.FOV >= 180:
		return fmt.Errorf("%w: camera fov %v", ErrInvalid, s.Camera.FOV)
	case s.Scene.RingCubes < 0:
		return fmt.Errorf("%w: ring_cubes %d is negative", ErrInvalid, s.Scene.RingCubes)
	}
	return nil
}

// TargetFrame is the frame budget derived from TargetFPS.
func (t Timing) TargetFrame() time.Duration {
	return time.Duration(float64(time.Second) / t.TargetFPS)
}

// SleepThreshold is the part of the frame budget the loop may sleep through.
func (t Timing) SleepThreshold() time.Duration {
	return time.Duration(float64(t.TargetFrame()) * t.SleepFraction)
}
