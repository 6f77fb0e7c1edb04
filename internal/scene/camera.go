package scene

import (
	"math"

	"cube3d/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

var worldUp = mgl32.Vec3{0, 1, 0}

// Camera is the viewer: a line through Base along Direction. Direction is
// derived from Yaw and Pitch, in degrees.
type Camera struct {
	Base      mgl32.Vec3
	Direction mgl32.Vec3
	Yaw       float32
	Pitch     float32
}

// NewCamera places a camera at base looking along yaw/pitch.
func NewCamera(base mgl32.Vec3, yaw, pitch float32) *Camera {
	c := &Camera{Base: base, Yaw: yaw, Pitch: pitch}
	c.updateDirection()
	return c
}

// Turn rotates the camera. Pitch is kept within ±89 degrees.
func (c *Camera) Turn(dyaw, dpitch float32) {
	c.Yaw += dyaw
	c.Pitch += dpitch
	if c.Pitch > 89.0 {
		c.Pitch = 89.0
	}
	if c.Pitch < -89.0 {
		c.Pitch = -89.0
	}
	c.updateDirection()
}

// Move translates the camera along its view direction, its right vector and
// the world up axis.
func (c *Camera) Move(forward, right, up float32) {
	r := c.Right()
	c.Base = c.Base.
		Add(c.Direction.Mul(forward)).
		Add(r.Mul(right)).
		Add(worldUp.Mul(up))
}

// Right returns the unit vector to the right of the view direction.
func (c *Camera) Right() mgl32.Vec3 {
	return c.Direction.Cross(worldUp).Normalize()
}

// Args returns the render arguments for camera-relative submission: the
// eye sits at the origin because object offsets are already relative to
// Base.
func (c *Camera) Args(fov, near, far float32) graphics.RenderArgs {
	return graphics.RenderArgs{
		Direction: c.Direction,
		Up:        worldUp,
		FOV:       fov,
		Near:      near,
		Far:       far,
	}
}

func (c *Camera) updateDirection() {
	y := float64(mgl32.DegToRad(c.Yaw))
	p := float64(mgl32.DegToRad(c.Pitch))
	c.Direction = mgl32.Vec3{
		float32(math.Cos(y) * math.Cos(p)),
		float32(math.Sin(p)),
		float32(math.Sin(y) * math.Cos(p)),
	}.Normalize()
}
