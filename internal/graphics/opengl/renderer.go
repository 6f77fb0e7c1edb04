// Package opengl implements graphics.Renderer on an OpenGL 4.1 core
// context owned by a GLFW window.
package opengl

import (
	"io"
	"log"

	"cube3d/internal/graphics"
	"cube3d/internal/input"
	"cube3d/internal/shape"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Options configures the OpenGL backend.
type Options struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	ShaderDir  string
	Background shape.Color
	Overlay    bool
	Grow       int // vertex buffer growth increment
}

// Renderer draws cubes with a single streamed triangle program.
type Renderer struct {
	window     *glfw.Window
	viewport   graphics.Viewport
	background shape.Color

	triangles *trianglePipeline
	overlay   *overlayPipeline

	projection  mgl32.Mat4
	stats       graphics.FrameStats
	showOverlay bool
	dump        io.Writer
	disposed    bool
}

// New opens the window and compiles the shader programs.
func New(opts Options) (*Renderer, error) {
	window, err := createWindow(opts.Title, opts.Width, opts.Height, opts.Fullscreen)
	if err != nil {
		return nil, err
	}
	log.Printf("OpenGL %s", glVersion())

	r := &Renderer{
		window:      window,
		viewport:    graphics.Viewport{Width: opts.Width, Height: opts.Height},
		background:  opts.Background,
		projection:  mgl32.Ident4(),
		showOverlay: opts.Overlay,
	}

	fbw, fbh := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))
	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(opts.Background.R, opts.Background.G, opts.Background.B, 1.0)

	if err := r.loadPrograms(opts); err != nil {
		r.Dispose()
		return nil, err
	}

	r.WaitNextFrame()
	return r, nil
}

func (r *Renderer) loadPrograms(opts Options) error {
	var err error
	r.triangles, err = newTrianglePipeline(opts.ShaderDir, opts.Grow)
	if err != nil {
		return err
	}
	log.Printf("loaded triangle program")

	r.overlay, err = newOverlayPipeline(opts.ShaderDir)
	if err != nil {
		return err
	}
	log.Printf("loaded overlay program")
	return nil
}

// WaitNextFrame clears the framebuffer and the vertex buffer.
func (r *Renderer) WaitNextFrame() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.triangles.clear()
}

// DrawCube3D queues the cube's 36 vertices.
func (r *Renderer) DrawCube3D(cube *shape.Cube, offset mgl32.Vec3) {
	graphics.AppendCube(r.triangles.buffer, cube, offset)
}

// SetupProjectionMatrix stores projection * view. On error the previous
// matrix is kept.
func (r *Renderer) SetupProjectionMatrix(args graphics.RenderArgs) error {
	m, err := graphics.ProjectionView(r.viewport, args)
	if err != nil {
		return err
	}
	r.projection = m
	return nil
}

// Render uploads and draws the frame, then swaps buffers.
func (r *Renderer) Render() {
	if r.dump != nil {
		if err := graphics.DumpVertices(r.dump, r.triangles.buffer.Vertices()); err != nil {
			log.Printf("vertex dump failed: %v", err)
		}
		r.dump = nil
	}

	r.triangles.draw(r.projection)
	if r.showOverlay {
		r.overlay.draw(r.stats, r.viewport)
	}
	r.window.SwapBuffers()
}

// Dispose releases programs and buffers, then the context and window.
func (r *Renderer) Dispose() {
	if r.disposed {
		return
	}
	r.disposed = true

	if r.overlay != nil {
		r.overlay.dispose()
		r.overlay = nil
	}
	if r.triangles != nil {
		r.triangles.dispose()
		r.triangles = nil
	}
	// Destroying the window also destroys its context.
	r.window.Destroy()
	glfw.Terminate()
}

// Viewport returns the window size in screen coordinates.
func (r *Renderer) Viewport() graphics.Viewport {
	return r.viewport
}

// PollEvents processes pending window events, invoking input callbacks.
func (r *Renderer) PollEvents() {
	glfw.PollEvents()
}

// ShouldClose reports whether the user asked to close the window.
func (r *Renderer) ShouldClose() bool {
	return r.window.ShouldClose()
}

// BindInput routes keyboard events to the input manager.
func (r *Renderer) BindInput(im *input.Manager) {
	im.SetKeyCallback(r.window)
}

// VertexCount returns the number of vertices queued since WaitNextFrame.
func (r *Renderer) VertexCount() int {
	if r.triangles == nil {
		return 0
	}
	return r.triangles.buffer.Used()
}

// SetStats updates the text shown by the overlay.
func (r *Renderer) SetStats(s graphics.FrameStats) {
	r.stats = s
}

// ToggleOverlay shows or hides the stats overlay.
func (r *Renderer) ToggleOverlay() {
	r.showOverlay = !r.showOverlay
}

// DumpNextFrame writes the vertices of the next rendered frame to w.
func (r *Renderer) DumpNextFrame(w io.Writer) {
	r.dump = w
}
