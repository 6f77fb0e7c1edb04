package scene

import (
	"cube3d/internal/graphics"
	"cube3d/internal/shape"

	"github.com/go-gl/mathgl/mgl32"
)

// Object is anything the scene updates and draws.
type Object interface {
	// Integrate advances physics by dt seconds.
	Integrate(dt float32)
	// Render submits the object's geometry at the given camera-relative
	// offset and advances its own animation by dt seconds.
	Render(r graphics.Renderer, offset mgl32.Vec3, dt float32)
	// Position is the world-space position.
	Position() mgl32.Vec3
	// Shape is the single shape the object owns.
	Shape() shape.Shape
}

// Spinner is implemented by objects whose animation can be paused.
type Spinner interface {
	SetSpinning(on bool)
	Spinning() bool
}

// SpinningCube is a static cube rotating about its axis at Speed rad/s.
type SpinningCube struct {
	Pos   mgl32.Vec3
	Cube  *shape.Cube
	Speed float32

	paused bool
}

// NewSpinningCube creates a spinning cube at pos.
func NewSpinningCube(pos mgl32.Vec3, cube *shape.Cube, speed float32) *SpinningCube {
	return &SpinningCube{Pos: pos, Cube: cube, Speed: speed}
}

func (c *SpinningCube) Integrate(dt float32) {}

func (c *SpinningCube) Render(r graphics.Renderer, offset mgl32.Vec3, dt float32) {
	r.DrawCube3D(c.Cube, offset)
	if !c.paused {
		c.Cube.SetRotationAngleBounded(c.Cube.RotationAngle() + c.Speed*dt)
	}
}

func (c *SpinningCube) Position() mgl32.Vec3 { return c.Pos }

func (c *SpinningCube) Shape() shape.Shape { return c.Cube }

func (c *SpinningCube) SetSpinning(on bool) { c.paused = !on }

func (c *SpinningCube) Spinning() bool { return !c.paused }

// PlayerCube is moved by its velocity, which input sets every frame.
type PlayerCube struct {
	Pos      mgl32.Vec3
	Velocity mgl32.Vec3
	Cube     *shape.Cube
}

// NewPlayerCube creates a player cube at rest.
func NewPlayerCube(pos mgl32.Vec3, cube *shape.Cube) *PlayerCube {
	return &PlayerCube{Pos: pos, Cube: cube}
}

func (p *PlayerCube) Integrate(dt float32) {
	p.Pos = p.Pos.Add(p.Velocity.Mul(dt))
}

func (p *PlayerCube) Render(r graphics.Renderer, offset mgl32.Vec3, dt float32) {
	r.DrawCube3D(p.Cube, offset)
}

func (p *PlayerCube) Position() mgl32.Vec3 { return p.Pos }

func (p *PlayerCube) Shape() shape.Shape { return p.Cube }

// SetVelocity replaces the velocity.
func (p *PlayerCube) SetVelocity(v mgl32.Vec3) { p.Velocity = v }
