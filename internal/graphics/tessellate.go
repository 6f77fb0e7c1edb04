package graphics

import (
	"fmt"

	"cube3d/internal/shape"

	"github.com/go-gl/mathgl/mgl32"
)

// CubeVertexCount is the number of vertices emitted per cube: 6 faces,
// 2 triangles each.
const CubeVertexCount = 36

// cubeTriangles lists the corner of each emitted vertex, faces in the order
// bottom, top, front, back, left, right.
var cubeTriangles = [CubeVertexCount]shape.Corner{
	// bottom
	shape.LeftBottomFront, shape.RightBottomFront, shape.LeftBottomBack,
	shape.RightBottomBack, shape.RightBottomFront, shape.LeftBottomBack,
	// top
	shape.LeftTopFront, shape.RightTopFront, shape.LeftTopBack,
	shape.RightTopBack, shape.RightTopFront, shape.LeftTopBack,
	// front
	shape.LeftTopFront, shape.LeftBottomFront, shape.RightTopFront,
	shape.RightBottomFront, shape.LeftBottomFront, shape.RightTopFront,
	// back
	shape.LeftTopBack, shape.LeftBottomBack, shape.RightTopBack,
	shape.RightBottomBack, shape.LeftBottomBack, shape.RightTopBack,
	// left
	shape.LeftTopFront, shape.LeftBottomFront, shape.LeftTopBack,
	shape.LeftBottomBack, shape.LeftBottomFront, shape.LeftTopBack,
	// right
	shape.RightTopFront, shape.RightBottomFront, shape.RightTopBack,
	shape.RightBottomBack, shape.RightBottomFront, shape.RightTopBack,
}

// TessellateCube writes the cube's 12 triangles into dst, which must hold
// exactly CubeVertexCount vertices. Each vertex takes its corner's color
// and the unmodified world offset.
func TessellateCube(dst []Vertex, cube *shape.Cube, offset mgl32.Vec3) {
	if len(dst) != CubeVertexCount {
		panic(fmt.Sprintf("graphics: cube needs %d vertices, got %d", CubeVertexCount, len(dst)))
	}

	points := cube.Corners()
	colors := cube.Colors()
	for i, c := range cubeTriangles {
		dst[i] = Vertex{
			Position: points[c],
			Offset:   offset,
			Color:    colors[c],
		}
	}
}

// AppendCube tessellates the cube into freshly allocated space in buf.
func AppendCube(buf *VertexBuffer[Vertex], cube *shape.Cube, offset mgl32.Vec3) {
	TessellateCube(buf.Alloc(CubeVertexCount), cube, offset)
}
