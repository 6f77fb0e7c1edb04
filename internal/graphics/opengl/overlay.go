package opengl

import (
	"path/filepath"

	"cube3d/internal/graphics"
	"cube3d/internal/graphics/overlay"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const (
	OverlayVertShader = "overlay.vert"
	OverlayFragShader = "overlay.frag"
)

// overlayPipeline draws the stats text as a textured quad in the top-left
// corner of the window.
type overlayPipeline struct {
	program *Program
	text    *overlay.Text
	texture uint32
	vao     uint32
	vbo     uint32
	quad    [24]float32 // 6 vertices of x, y, u, v
	size    [2]int
}

func newOverlayPipeline(shaderDir string) (*overlayPipeline, error) {
	program, err := NewProgram(
		filepath.Join(shaderDir, OverlayVertShader),
		filepath.Join(shaderDir, OverlayFragShader),
		map[string]uint32{"i_position": 0, "i_uv": 1},
	)
	if err != nil {
		return nil, err
	}

	o := &overlayPipeline{
		program: program,
		text:    overlay.NewText(),
		texture: newAlphaTexture(),
	}

	gl.GenVertexArrays(1, &o.vao)
	gl.BindVertexArray(o.vao)
	gl.GenBuffers(1, &o.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(o.quad)*4, nil, gl.DYNAMIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 4*4, 0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, 2*4)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return o, nil
}

func (o *overlayPipeline) draw(stats graphics.FrameStats, vp graphics.Viewport) {
	img, changed := o.text.Rasterize(stats.Lines())
	size := img.Rect.Size()
	if size.X == 0 || size.Y == 0 || vp.Width <= 0 || vp.Height <= 0 {
		return
	}
	if changed {
		uploadAlpha(o.texture, img)
	}
	if size.X != o.size[0] || size.Y != o.size[1] {
		o.size = [2]int{size.X, size.Y}
		o.updateQuad(vp)
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	o.program.Use()
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, o.texture)
	o.program.SetInt("u_text", 0)

	gl.BindVertexArray(o.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

// updateQuad maps the text image 1:1 onto window pixels.
func (o *overlayPipeline) updateQuad(vp graphics.Viewport) {
	x0, y0 := float32(-1), float32(1)
	x1 := x0 + 2*float32(o.size[0])/float32(vp.Width)
	y1 := y0 - 2*float32(o.size[1])/float32(vp.Height)

	o.quad = [24]float32{
		x0, y0, 0, 0,
		x0, y1, 0, 1,
		x1, y0, 1, 0,
		x1, y0, 1, 0,
		x0, y1, 0, 1,
		x1, y1, 1, 1,
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(o.quad)*4, gl.Ptr(&o.quad[0]))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (o *overlayPipeline) dispose() {
	if o.texture != 0 {
		gl.DeleteTextures(1, &o.texture)
		o.texture = 0
	}
	if o.vbo != 0 {
		gl.DeleteBuffers(1, &o.vbo)
		o.vbo = 0
	}
	if o.vao != 0 {
		gl.DeleteVertexArrays(1, &o.vao)
		o.vao = 0
	}
	o.program.Delete()
}
