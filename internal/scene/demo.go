package scene

import (
	"math"
	"math/rand"

	"cube3d/internal/config"
	"cube3d/internal/shape"

	"github.com/go-gl/mathgl/mgl32"
)

// cornerPalette gives the centerpiece cube a distinct color per corner.
var cornerPalette = [shape.CornerCount]shape.Color{
	shape.LeftTopFront:     shape.Opaque(1, 0, 0),
	shape.LeftBottomFront:  shape.Opaque(0, 1, 0),
	shape.RightTopFront:    shape.Opaque(0, 0, 1),
	shape.RightBottomFront: shape.Opaque(1, 1, 0),
	shape.LeftTopBack:      shape.Opaque(1, 0, 1),
	shape.LeftBottomBack:   shape.Opaque(0, 1, 1),
	shape.RightTopBack:     shape.Opaque(1, 1, 1),
	shape.RightBottomBack:  shape.Opaque(1, 0.5, 0),
}

// Demo is the default scene plus handles to the objects input controls.
type Demo struct {
	Scene  *Scene
	Player *PlayerCube
}

// NewDemo builds a multicolored spinning cube at (0,0,-3), a ring of
// randomly colored cubes behind it and the player cube below it.
func NewDemo(rng *rand.Rand, sc config.Scene, spin float32) *Demo {
	s := New()

	center := shape.NewCube(sc.CubeWidth)
	for i, col := range cornerPalette {
		_ = center.SetVertexColor(shape.Corner(i), col)
	}
	center.SetRotationAxis(mgl32.Vec3{1, 1, 0})
	s.Add(NewSpinningCube(mgl32.Vec3{0, 0, -3}, center, spin))

	const ringRadius = 2.5
	ringCenter := mgl32.Vec3{0, 0, -6}
	for i := 0; i < sc.RingCubes; i++ {
		a := 2 * math.Pi * float64(i) / float64(sc.RingCubes)
		pos := ringCenter.Add(mgl32.Vec3{
			float32(math.Cos(a) * ringRadius),
			float32(math.Sin(a) * ringRadius),
			0,
		})

		c := shape.NewCube(sc.CubeWidth * 0.6)
		for corner := shape.Corner(0); corner < shape.CornerCount; corner++ {
			_ = c.SetVertexColor(corner, randomColor(rng))
		}
		c.SetRotationAxis(mgl32.Vec3{rng.Float32() - 0.5, rng.Float32() - 0.5, rng.Float32() - 0.5})
		c.SetRotationAngleBounded(rng.Float32() * 2 * math.Pi)
		s.Add(NewSpinningCube(pos, c, spin*(0.5+rng.Float32())))
	}

	pc := shape.NewCube(sc.CubeWidth * 0.5)
	pc.SetColor(shape.Opaque(0.8, 0.8, 0.8))
	_ = pc.SetVertexColor(shape.LeftTopFront, shape.Opaque(1, 0.2, 0.2))
	player := NewPlayerCube(mgl32.Vec3{0, -1, -3}, pc)
	s.Add(player)

	return &Demo{Scene: s, Player: player}
}

func randomColor(rng *rand.Rand) shape.Color {
	return shape.Opaque(rng.Float32(), rng.Float32(), rng.Float32())
}
