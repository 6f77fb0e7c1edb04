// Package shape describes the geometry submitted to the renderer: shape
// kinds, cubes, their corners and colors.
package shape

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Opaque returns a fully opaque color.
func Opaque(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Kind tags the concrete shape variant.
type Kind uint8

const (
	KindCube Kind = iota
)

func (k Kind) String() string {
	switch k {
	case KindCube:
		return "Cube"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Shape is implemented by every drawable shape. Delta is the offset from
// the owning object's position to the shape's local center.
type Shape interface {
	Kind() Kind
	Delta() mgl32.Vec3
}

type base struct {
	kind  Kind
	delta mgl32.Vec3
}

func (b *base) Kind() Kind { return b.kind }

func (b *base) Delta() mgl32.Vec3 { return b.delta }

// SetDelta moves the shape relative to its owner.
func (b *base) SetDelta(d mgl32.Vec3) { b.delta = d }
