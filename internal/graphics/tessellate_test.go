package graphics

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"unsafe"

	"cube3d/internal/shape"

	"github.com/go-gl/mathgl/mgl32"
)

func TestVertexLayoutIsPacked(t *testing.T) {
	if got := unsafe.Sizeof(Vertex{}); got != VertexStride {
		t.Fatalf("sizeof(Vertex) = %d, want %d", got, VertexStride)
	}
	var v Vertex
	if off := unsafe.Offsetof(v.Offset); off != OffsetOffset {
		t.Fatalf("Offset at %d, want %d", off, OffsetOffset)
	}
	if off := unsafe.Offsetof(v.Color); off != ColorOffset {
		t.Fatalf("Color at %d, want %d", off, ColorOffset)
	}
}

func TestAppendCubeEmits36Vertices(t *testing.T) {
	cases := []struct {
		name  string
		setup func(c *shape.Cube)
	}{
		{"plain", func(c *shape.Cube) {}},
		{"rotated", func(c *shape.Cube) {
			c.SetRotationAxis(mgl32.Vec3{1, 1, 0})
			c.SetRotationAngleBounded(2.5)
		}},
		{"colored", func(c *shape.Cube) {
			for i := shape.Corner(0); i < shape.CornerCount; i++ {
				_ = c.SetVertexColor(i, shape.Opaque(float32(i)/8, 0, 1))
			}
		}},
		{"zero width", func(c *shape.Cube) { c.W = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			buf := NewVertexBuffer[Vertex](64)
			c := shape.NewCube(1)
			tc.setup(c)
			before := buf.Used()
			AppendCube(buf, c, mgl32.Vec3{})
			if got := buf.Used() - before; got != CubeVertexCount {
				t.Fatalf("emitted %d vertices, want %d", got, CubeVertexCount)
			}
			AppendCube(buf, c, mgl32.Vec3{})
			if buf.Used() != 2*CubeVertexCount {
				t.Fatalf("two cubes used %d vertices", buf.Used())
			}
		})
	}
}

func TestCubeScenarioHalfWidth(t *testing.T) {
	buf := NewVertexBuffer[Vertex](16)
	c := shape.NewCube(0.5)
	offset := mgl32.Vec3{0, 0, -3}
	AppendCube(buf, c, offset)

	vs := buf.Vertices()
	if len(vs) != CubeVertexCount {
		t.Fatalf("got %d vertices, want %d", len(vs), CubeVertexCount)
	}
	for i, v := range vs {
		for axis := 0; axis < 3; axis++ {
			if p := v.Position[axis]; p < -0.25 || p > 0.25 {
				t.Fatalf("vertex %d axis %d = %v outside [-0.25, 0.25]", i, axis, p)
			}
		}
		if v.Offset != offset {
			t.Fatalf("vertex %d offset = %v, want %v", i, v.Offset, offset)
		}
	}
}

func TestTessellationColorsFollowCorners(t *testing.T) {
	c := shape.NewCube(2)
	for i := shape.Corner(0); i < shape.CornerCount; i++ {
		_ = c.SetVertexColor(i, shape.Color{R: float32(i), A: 1})
	}
	dst := make([]Vertex, CubeVertexCount)
	TessellateCube(dst, c, mgl32.Vec3{})

	for i, v := range dst {
		corner := shape.Corner(v.Color.R)
		want, err := corner.Point(2)
		if err != nil {
			t.Fatalf("vertex %d has color of unknown corner %v", i, v.Color.R)
		}
		if v.Position != want {
			t.Fatalf("vertex %d colored as %v sits at %v, want %v", i, corner, v.Position, want)
		}
	}
}

func TestTessellationCoversEveryFace(t *testing.T) {
	c := shape.NewCube(2)
	dst := make([]Vertex, CubeVertexCount)
	TessellateCube(dst, c, mgl32.Vec3{})

	// Each face lies on a plane where one coordinate is constant at ±1.
	faces := map[[2]int]int{}
	for tri := 0; tri < CubeVertexCount/3; tri++ {
		a, b, cc := dst[tri*3].Position, dst[tri*3+1].Position, dst[tri*3+2].Position
		found := false
		for axis := 0; axis < 3; axis++ {
			if a[axis] == b[axis] && b[axis] == cc[axis] {
				faces[[2]int{axis, int(a[axis])}]++
				found = true
			}
		}
		if !found {
			t.Fatalf("triangle %d is not on a cube face", tri)
		}
		area := b.Sub(a).Cross(cc.Sub(a)).Len() / 2
		if math.Abs(float64(area)-2) > 1e-6 {
			t.Fatalf("triangle %d area = %v, want 2", tri, area)
		}
	}
	if len(faces) != 6 {
		t.Fatalf("triangles cover %d faces, want 6", len(faces))
	}
	for f, n := range faces {
		if n != 2 {
			t.Fatalf("face %v has %d triangles, want 2", f, n)
		}
	}
}

func TestTessellateCubeWrongLengthPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("TessellateCube with short dst did not panic")
		}
	}()
	TessellateCube(make([]Vertex, 35), shape.NewCube(1), mgl32.Vec3{})
}

func TestDumpVertices(t *testing.T) {
	buf := NewVertexBuffer[Vertex](8)
	AppendCube(buf, shape.NewCube(1), mgl32.Vec3{1, 2, 3})
	var out bytes.Buffer
	if err := DumpVertices(&out, buf.Vertices()); err != nil {
		t.Fatalf("DumpVertices: %v", err)
	}
	s := out.String()
	if n := strings.Count(s, "vertex["); n != CubeVertexCount {
		t.Fatalf("dump has %d vertex lines, want %d", n, CubeVertexCount)
	}
	if !strings.Contains(s, "vertex[0] x=-0.5000 y=-0.5000 z=-0.5000 offset_x=1.0000") {
		t.Fatalf("unexpected first line in dump:\n%s", s)
	}
}

func BenchmarkAppendCube(b *testing.B) {
	buf := NewVertexBuffer[Vertex](DefaultGrow)
	c := shape.NewCube(1)
	c.SetRotationAngleBounded(0.7)
	for i := 0; i < b.N; i++ {
		if buf.Used() > DefaultGrow-CubeVertexCount {
			buf.Clear()
		}
		AppendCube(buf, c, mgl32.Vec3{})
	}
}
