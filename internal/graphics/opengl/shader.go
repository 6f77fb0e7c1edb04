package opengl

import (
	"fmt"
	"os"
	"strings"

	"cube3d/internal/graphics"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Program is a linked vertex + fragment shader pair.
type Program struct {
	ID       uint32
	uniforms map[string]int32
}

// NewProgram reads, compiles and links the two shader files. attribs binds
// vertex attribute names to locations before linking.
func NewProgram(vertexPath, fragmentPath string, attribs map[string]uint32) (*Program, error) {
	vertexShader, err := compileShaderFile(vertexPath, gl.VERTEX_SHADER)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShaderFile(fragmentPath, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	for name, loc := range attribs {
		gl.BindAttribLocation(program, loc, gl.Str(name+"\x00"))
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return nil, &graphics.CompilationError{
			File: programFiles(vertexPath, fragmentPath),
			Log:  strings.TrimRight(log, "\x00"),
		}
	}
	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)

	return &Program{ID: program, uniforms: make(map[string]int32)}, nil
}

// Use activates the program.
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// SetInt sets an integer uniform.
func (p *Program) SetInt(name string, value int32) {
	gl.Uniform1i(p.location(name), value)
}

// SetMatrix4 sets a column-major 4x4 matrix uniform.
func (p *Program) SetMatrix4(name string, value *float32) {
	gl.UniformMatrix4fv(p.location(name), 1, false, value)
}

// Delete frees the GL program object.
func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}

func (p *Program) location(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.ID, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

// programFiles names both stages of a program in link errors.
func programFiles(vertexPath, fragmentPath string) string {
	return vertexPath + " + " + fragmentPath
}

func compileShaderFile(path string, shaderType uint32) (uint32, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return 0, &graphics.InitializationError{
			Stage: "load shader",
			Err:   fmt.Errorf("could not read shader file: %w", err),
		}
	}

	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(string(source) + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, &graphics.CompilationError{File: path, Log: strings.TrimRight(log, "\x00")}
	}
	return shader, nil
}
