package opengl

import (
	"fmt"

	"cube3d/internal/graphics"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// createWindow initializes GLFW, opens a window with an OpenGL 4.1 core
// context and loads the GL function pointers.
func createWindow(title string, width, height int, fullscreen bool) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, &graphics.InitializationError{Stage: "glfw init", Err: err}
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.RedBits, 8)
	glfw.WindowHint(glfw.GreenBits, 8)
	glfw.WindowHint(glfw.BlueBits, 8)
	glfw.WindowHint(glfw.AlphaBits, 8)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	var monitor *glfw.Monitor
	if fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	window, err := glfw.CreateWindow(width, height, title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, &graphics.InitializationError{Stage: "create window", Err: err}
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, &graphics.InitializationError{Stage: "load OpenGL", Err: err}
	}

	// Frame pacing is done by the game loop, not by vsync.
	glfw.SwapInterval(0)

	return window, nil
}

func glVersion() string {
	return fmt.Sprintf("%s (%s)", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER)))
}
