package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"cube3d/internal/config"
	"cube3d/internal/game"
	"cube3d/internal/graphics"
	"cube3d/internal/graphics/renderer"
	"cube3d/internal/input"
	"cube3d/internal/scene"
	"cube3d/internal/shape"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/xlab/closer"
)

const shutdownTimeout = 3 * time.Second

func init() {
	runtime.LockOSThread()
}

var (
	configPath    = flag.String("config", "", "YAML settings file")
	backend       = flag.String("backend", "", "renderer backend (opengl, vulkan)")
	width         = flag.Int("width", 0, "window width")
	height        = flag.Int("height", 0, "window height")
	fullscreen    = flag.Bool("fullscreen", false, "use the primary monitor")
	fps           = flag.Float64("fps", 0, "target frames per second")
	busyWait      = flag.Bool("busy-wait", true, "spin for the last part of each frame")
	frames        = flag.Int("frames", 0, "stop after this many frames (0 runs until quit)")
	shaders       = flag.String("shaders", "", "shader source directory")
	seed          = flag.Int64("seed", 0, "scene random seed")
	overlay       = flag.Bool("overlay", true, "show the stats overlay")
	debugVertices = flag.Bool("debug-vertices", false, "dump the first frame's vertices to stdout")
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.SetPrefix("cube3d: ")
	flag.Parse()

	settings, err := loadSettings()
	if err != nil {
		closer.Fatalln(err)
	}

	r, err := setupRenderer(settings)
	if err != nil {
		var unsupported *graphics.UnsupportedBackendError
		var compile *graphics.CompilationError
		switch {
		case errors.As(err, &unsupported):
			closer.Fatalln(fmt.Errorf("%w (only %s is available)", err, graphics.TypeOpenGL))
		case errors.As(err, &compile):
			closer.Fatalln(fmt.Errorf("shaders in %s: %w", settings.Renderer.ShaderDir, err))
		default:
			closer.Fatalln(err)
		}
	}

	if v, ok := r.(interface{ Viewport() graphics.Viewport }); ok {
		vp := v.Viewport()
		if ar, err := vp.AspectRatio(); err == nil {
			log.Printf("viewport %dx%d, aspect %.3f", vp.Width, vp.Height, ar)
		}
	}

	im := input.NewManager()
	if b, ok := r.(interface{ BindInput(*input.Manager) }); ok {
		b.BindInput(im)
	}
	if *debugVertices {
		if d, ok := r.(interface{ DumpNextFrame(w io.Writer) }); ok {
			d.DumpNextFrame(os.Stdout)
		}
	}

	rng := rand.New(rand.NewSource(settings.Scene.Seed))
	demo := scene.NewDemo(rng, settings.Scene, settings.Speeds.Spin)
	cam := settings.Camera

	app := game.NewApp(&game.AppState{
		Renderer: r,
		Scene:    demo.Scene,
		Camera:   scene.NewCamera(mgl32.Vec3(cam.Position), cam.Yaw, cam.Pitch),
		Player:   demo.Player,
		Input:    im,
		Settings: settings,
	})

	// Ctrl-C is handled on closer's goroutine: ask the loop to stop and
	// wait until it has released the renderer on this thread.
	closer.Bind(func() {
		app.Stop()
		select {
		case <-app.Done():
		case <-time.After(shutdownTimeout):
			log.Printf("renderer teardown timed out")
		}
		log.Printf("shutdown")
	})

	app.Run()
	demo.Scene.Clear()

	log.Printf("exiting after %d frames", app.Frames())
	closer.Close()
}

// loadSettings applies, in order, the defaults, the config file and the
// flags given on the command line.
func loadSettings() (config.Settings, error) {
	s, err := config.Load(*configPath)
	if err != nil {
		return config.Settings{}, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backend":
			s.Renderer.Backend = *backend
		case "width":
			s.Window.Width = *width
		case "height":
			s.Window.Height = *height
		case "fullscreen":
			s.Window.Fullscreen = *fullscreen
		case "fps":
			s.Timing.TargetFPS = *fps
		case "busy-wait":
			s.Timing.BusyWait = *busyWait
		case "frames":
			s.Timing.MaxFrames = *frames
		case "shaders":
			s.Renderer.ShaderDir = *shaders
		case "seed":
			s.Scene.Seed = *seed
		case "overlay":
			s.Renderer.Overlay = *overlay
		}
	})

	if err := s.Validate(); err != nil {
		return config.Settings{}, err
	}
	return s, nil
}

func setupRenderer(s config.Settings) (graphics.Renderer, error) {
	t, err := graphics.ParseType(s.Renderer.Backend)
	if err != nil {
		return nil, err
	}
	bg := s.Renderer.Background
	r, err := renderer.Init(t, s.Window.Width, s.Window.Height, s.Window.Fullscreen,
		renderer.WithTitle(s.Window.Title),
		renderer.WithShaderDir(s.Renderer.ShaderDir),
		renderer.WithBackground(shape.Color{R: bg[0], G: bg[1], B: bg[2], A: bg[3]}),
		renderer.WithOverlay(s.Renderer.Overlay),
		renderer.WithVertexGrow(s.Renderer.VertexGrow),
	)
	if err != nil {
		return nil, fmt.Errorf("setup renderer: %w", err)
	}
	return r, nil
}
