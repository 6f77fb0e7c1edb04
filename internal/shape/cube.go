package shape

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// twoPi is 2π rounded to float32; stored angles are always below it.
const twoPi = float32(2 * math.Pi)

// Cube is a shape with equal width, height and depth, rotated rigidly about
// its own center.
type Cube struct {
	base

	W float32

	angle  float32
	axis   mgl32.Vec3
	colors [CornerCount]Color
}

// NewCube creates a white cube of edge w rotating about the y axis.
func NewCube(w float32) *Cube {
	c := &Cube{
		base: base{kind: KindCube},
		W:    w,
		axis: mgl32.Vec3{0, 1, 0},
	}
	c.SetColor(Opaque(1, 1, 1))
	return c
}

// RotationAngle returns the current angle in radians, in [0, 2π).
func (c *Cube) RotationAngle() float32 { return c.angle }

// SetRotationAngleBounded stores the angle wrapped into [0, 2π).
func (c *Cube) SetRotationAngleBounded(angle float32) {
	c.angle = NormalizeAngle(angle)
}

// RotationAxis returns the axis the cube rotates about.
func (c *Cube) RotationAxis() mgl32.Vec3 { return c.axis }

// SetRotationAxis sets the rotation axis. It need not be normalized.
func (c *Cube) SetRotationAxis(axis mgl32.Vec3) { c.axis = axis }

// VertexColor returns the color assigned to a corner.
func (c *Cube) VertexColor(corner Corner) (Color, error) {
	if !corner.Valid() {
		return Color{}, fmt.Errorf("%w: %d", ErrInvalidCorner, uint8(corner))
	}
	return c.colors[corner], nil
}

// SetVertexColor assigns the color of a single corner.
func (c *Cube) SetVertexColor(corner Corner, col Color) error {
	if !corner.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidCorner, uint8(corner))
	}
	c.colors[corner] = col
	return nil
}

// SetColor paints every corner with the same color.
func (c *Cube) SetColor(col Color) {
	for i := range c.colors {
		c.colors[i] = col
	}
}

// Colors returns a copy of the per-corner colors.
func (c *Cube) Colors() [CornerCount]Color {
	return c.colors
}

// Corners computes the eight corner positions in the owner's local space:
// corners are rotated about the cube center, then shifted by the delta.
func (c *Cube) Corners() [CornerCount]mgl32.Vec3 {
	var pts [CornerCount]mgl32.Vec3
	half := c.W * 0.5
	for i := range pts {
		pts[i] = cornerSigns[i].Mul(half)
	}

	if c.angle != 0 && c.axis.Len() > 0 {
		q := mgl32.QuatRotate(c.angle, c.axis.Normalize())
		for i := range pts {
			pts[i] = q.Rotate(pts[i])
		}
	}

	for i := range pts {
		pts[i] = pts[i].Add(c.delta)
	}
	return pts
}

// NormalizeAngle wraps an angle in radians into [0, 2π). Non-finite input
// yields 0.
func NormalizeAngle(angle float32) float32 {
	a := float64(angle)
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	r := math.Mod(a, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	f := float32(r)
	if f >= twoPi {
		f = 0
	}
	return f
}
