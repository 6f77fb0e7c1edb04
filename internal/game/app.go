// Package game runs the frame loop: it steps the simulation with a bounded
// timestep, drives the renderer and paces frames to the target rate.
package game

import (
	"log"
	"sync/atomic"
	"time"

	"cube3d/internal/config"
	"cube3d/internal/graphics"
	"cube3d/internal/graphics/renderer"
	"cube3d/internal/input"
	"cube3d/internal/profiling"
	"cube3d/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// Optional renderer capabilities.
type (
	eventPump interface {
		PollEvents()
		ShouldClose() bool
	}
	overlayToggler interface {
		ToggleOverlay()
	}
	vertexCounter interface {
		VertexCount() int
	}
)

// AppState is everything the loop reads and mutates. Player and Input may
// be nil.
type AppState struct {
	Renderer graphics.Renderer
	Scene    *scene.Scene
	Camera   *scene.Camera
	Player   *scene.PlayerCube
	Input    *input.Manager
	Settings config.Settings
	Clock    Clock

	// Alive is cleared to stop the loop after the current frame.
	Alive bool
}

// App owns the frame loop for one AppState.
type App struct {
	state    *AppState
	pacer    *Pacer
	profiler *profiling.Frame

	stop atomic.Bool
	done chan struct{}

	frames        int
	projectionErr bool
	reportStart   time.Time
	reportFrames  int
}

// NewApp prepares a loop. A nil Clock in st is replaced by SystemClock.
func NewApp(st *AppState) *App {
	if st.Clock == nil {
		st.Clock = SystemClock{}
	}
	return &App{
		state:    st,
		pacer:    NewPacer(st.Clock, st.Settings.Timing),
		profiler: profiling.NewFrame(st.Clock.Now),
		done:     make(chan struct{}),
	}
}

// Stop asks the loop to end after the current frame. It is safe to call
// from any goroutine.
func (a *App) Stop() {
	a.stop.Store(true)
}

// Done is closed once Run has released the renderer.
func (a *App) Done() <-chan struct{} {
	return a.done
}

// Frames returns the number of completed frames.
func (a *App) Frames() int { return a.frames }

// Run loops until Alive is cleared, Stop is called or MaxFrames is reached,
// then releases the renderer. Run must be called at most once.
func (a *App) Run() {
	st := a.state
	st.Alive = true
	timing := st.Settings.Timing
	maxDT := timing.MaxDT.Duration()

	// first frame steps by the budget
	realDT := a.pacer.Target()
	a.reportStart = st.Clock.Now()

	for st.Alive {
		a.profiler.Reset()
		start := st.Clock.Now()

		st.Renderer.WaitNextFrame()

		virtualDT := min(realDT, maxDT)
		dt := float32(virtualDT.Seconds())

		a.handleInput(dt)
		a.integrate(dt)
		a.render(dt)

		required, frame := a.pacer.Wait(start)
		realDT = frame
		a.frames++

		a.publish(graphics.FrameStats{
			FPS:       1 / frame.Seconds(),
			RealDT:    frame.Seconds(),
			VirtualDT: virtualDT.Seconds(),
			Required:  required.Seconds(),
			Objects:   st.Scene.Len(),
			Vertices:  a.vertexCount(),
		})

		if required > a.pacer.Target() {
			log.Printf("Slow frame: %v (input %v, render %v). Top tasks: %s",
				required, a.profiler.Total("input"), a.profiler.SumWithPrefix("render."), a.profiler.TopN(5))
		}
		a.report(timing.FPSReport.Duration())

		if st.Input != nil {
			st.Input.PostUpdate()
		}
		if timing.MaxFrames > 0 && a.frames >= timing.MaxFrames {
			st.Alive = false
		}
		if a.stop.Load() {
			st.Alive = false
		}
	}

	renderer.Quit(st.Renderer)
	close(a.done)
}

// vertexCount reports the vertices submitted this frame, or 0 when the
// backend does not count them.
func (a *App) vertexCount() int {
	if vc, ok := a.state.Renderer.(vertexCounter); ok {
		return vc.VertexCount()
	}
	return 0
}

func (a *App) handleInput(dt float32) {
	defer a.profiler.Track("input")()
	st := a.state

	if pump, ok := st.Renderer.(eventPump); ok {
		pump.PollEvents()
		if pump.ShouldClose() {
			st.Alive = false
		}
	}

	im := st.Input
	if im == nil {
		return
	}

	if im.JustPressed(input.ActionQuit) {
		st.Alive = false
	}
	if im.JustPressed(input.ActionToggleSpin) {
		on := st.Scene.ToggleSpin()
		log.Printf("spinning: %v", on)
	}
	if im.JustPressed(input.ActionToggleOverlay) {
		if t, ok := st.Renderer.(overlayToggler); ok {
			t.ToggleOverlay()
		}
	}

	sp := st.Settings.Speeds
	if st.Player != nil {
		st.Player.SetVelocity(mgl32.Vec3{
			im.Axis(input.ActionMoveLeft, input.ActionMoveRight),
			im.Axis(input.ActionMoveDown, input.ActionMoveUp),
			im.Axis(input.ActionMoveForward, input.ActionMoveBackward),
		}.Mul(sp.Player))
	}

	turn := sp.CameraTurn * dt
	st.Camera.Turn(
		im.Axis(input.ActionYawLeft, input.ActionYawRight)*turn,
		im.Axis(input.ActionPitchDown, input.ActionPitchUp)*turn,
	)

	step := sp.Camera * dt
	st.Camera.Move(
		im.Axis(input.ActionCameraBackward, input.ActionCameraForward)*step,
		im.Axis(input.ActionCameraLeft, input.ActionCameraRight)*step,
		im.Axis(input.ActionCameraDown, input.ActionCameraUp)*step,
	)
}

func (a *App) integrate(dt float32) {
	defer a.profiler.Track("scene.integrate")()
	a.state.Scene.Integrate(dt)
}

func (a *App) render(dt float32) {
	st := a.state
	cam := st.Settings.Camera

	stop := a.profiler.Track("render.projection")
	err := st.Renderer.SetupProjectionMatrix(st.Camera.Args(cam.FOV, cam.Near, cam.Far))
	stop()
	if err != nil && !a.projectionErr {
		// keep the previous projection
		log.Printf("projection: %v", err)
		a.projectionErr = true
	}

	stop = a.profiler.Track("render.scene")
	st.Scene.Render(st.Renderer, st.Camera, dt)
	stop()

	defer a.profiler.Track("render.present")()
	st.Renderer.Render()
}

func (a *App) publish(s graphics.FrameStats) {
	if sink, ok := a.state.Renderer.(graphics.StatsSink); ok {
		sink.SetStats(s)
	}
}

func (a *App) report(every time.Duration) {
	if every <= 0 {
		return
	}
	a.reportFrames++
	now := a.state.Clock.Now()
	elapsed := now.Sub(a.reportStart)
	if elapsed < every {
		return
	}
	log.Printf("fps %.1f (%d frames in %v)", float64(a.reportFrames)/elapsed.Seconds(), a.reportFrames, elapsed.Round(time.Millisecond))
	a.reportStart = now
	a.reportFrames = 0
}
