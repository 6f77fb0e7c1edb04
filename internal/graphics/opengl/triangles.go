package opengl

import (
	"path/filepath"

	"cube3d/internal/graphics"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	TrianglesVertShader = "triangles.vert"
	TrianglesFragShader = "triangles.frag"
)

// Attribute locations of the triangle program.
const (
	attribPosition uint32 = iota
	attribOffset
	attribColor
)

// trianglePipeline streams every cube vertex of a frame through a single
// dynamic VBO and one draw call.
type trianglePipeline struct {
	program *Program
	vao     uint32
	vbo     uint32
	buffer  *graphics.VertexBuffer[graphics.Vertex]
}

func newTrianglePipeline(shaderDir string, grow int) (*trianglePipeline, error) {
	program, err := NewProgram(
		filepath.Join(shaderDir, TrianglesVertShader),
		filepath.Join(shaderDir, TrianglesFragShader),
		map[string]uint32{
			"i_position": attribPosition,
			"i_offset":   attribOffset,
			"i_color":    attribColor,
		},
	)
	if err != nil {
		return nil, err
	}

	p := &trianglePipeline{
		program: program,
		buffer:  graphics.NewVertexBuffer[graphics.Vertex](grow),
	}

	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)
	gl.GenBuffers(1, &p.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)

	gl.EnableVertexAttribArray(attribPosition)
	gl.EnableVertexAttribArray(attribOffset)
	gl.EnableVertexAttribArray(attribColor)
	gl.VertexAttribPointerWithOffset(attribPosition, 3, gl.FLOAT, false, graphics.VertexStride, graphics.PositionOffset)
	gl.VertexAttribPointerWithOffset(attribOffset, 3, gl.FLOAT, false, graphics.VertexStride, graphics.OffsetOffset)
	gl.VertexAttribPointerWithOffset(attribColor, 4, gl.FLOAT, false, graphics.VertexStride, graphics.ColorOffset)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return p, nil
}

func (p *trianglePipeline) clear() {
	p.buffer.Clear()
}

// draw uploads the frame's vertices and issues one glDrawArrays.
func (p *trianglePipeline) draw(projection mgl32.Mat4) {
	vertices := p.buffer.Vertices()
	if len(vertices) == 0 {
		return
	}

	p.program.Use()
	p.program.SetMatrix4("u_projection_matrix", &projection[0])

	gl.BindVertexArray(p.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*graphics.VertexStride, gl.Ptr(vertices), gl.DYNAMIC_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(vertices)))
	gl.BindVertexArray(0)
}

func (p *trianglePipeline) dispose() {
	if p.vbo != 0 {
		gl.DeleteBuffers(1, &p.vbo)
		p.vbo = 0
	}
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
		p.vao = 0
	}
	p.program.Delete()
}
