// Package renderer constructs graphics backends by type.
package renderer

import (
	"log"

	"cube3d/internal/graphics"
	"cube3d/internal/graphics/opengl"
	"cube3d/internal/shape"
)

// DefaultShaderDir is where shader sources are looked up.
const DefaultShaderDir = "shaders"

// Option adjusts backend construction.
type Option func(*opengl.Options)

// WithShaderDir sets the directory holding the shader sources.
func WithShaderDir(dir string) Option {
	return func(o *opengl.Options) { o.ShaderDir = dir }
}

// WithBackground sets the clear color.
func WithBackground(c shape.Color) Option {
	return func(o *opengl.Options) { o.Background = c }
}

// WithOverlay enables the stats overlay at startup.
func WithOverlay(enabled bool) Option {
	return func(o *opengl.Options) { o.Overlay = enabled }
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(o *opengl.Options) { o.Title = title }
}

// WithVertexGrow sets the vertex buffer growth increment.
func WithVertexGrow(n int) Option {
	return func(o *opengl.Options) { o.Grow = n }
}

// Init creates a renderer of the requested type.
func Init(t graphics.Type, width, height int, fullscreen bool, opts ...Option) (graphics.Renderer, error) {
	switch t {
	case graphics.TypeOpenGL:
		o := opengl.Options{
			Title:      "cube3d",
			Width:      width,
			Height:     height,
			Fullscreen: fullscreen,
			ShaderDir:  DefaultShaderDir,
			Background: shape.Opaque(0, 0, 0),
			Grow:       graphics.DefaultGrow,
		}
		for _, opt := range opts {
			opt(&o)
		}
		r, err := opengl.New(o)
		if err != nil {
			return nil, err
		}
		log.Printf("renderer %s initialized (%dx%d, fullscreen=%v)", t, width, height, fullscreen)
		return r, nil
	default:
		return nil, &graphics.UnsupportedBackendError{Type: t}
	}
}

// Quit releases a renderer created by Init. A nil renderer is ignored.
func Quit(r graphics.Renderer) {
	if r == nil {
		return
	}
	r.Dispose()
	log.Printf("renderer released")
}
