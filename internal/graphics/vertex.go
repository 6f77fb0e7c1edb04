package graphics

import (
	"fmt"
	"io"

	"cube3d/internal/shape"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is the GPU record for one triangle corner. The shader adds Offset
// to Position, so geometry and placement stay separate.
type Vertex struct {
	Position mgl32.Vec3 // local x,y,z
	Offset   mgl32.Vec3 // world x,y,z added to Position
	Color    shape.Color
}

// Vertex layout, in float32 units.
const (
	VertexFloats   = 10
	VertexStride   = VertexFloats * 4
	PositionOffset = 0
	OffsetOffset   = 3 * 4
	ColorOffset    = 6 * 4
)

// DumpVertices writes one line per vertex with a blank line before every
// triangle.
func DumpVertices(w io.Writer, vs []Vertex) error {
	for i, v := range vs {
		if i%3 == 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "vertex[%d] x=%.4f y=%.4f z=%.4f offset_x=%.4f offset_y=%.4f offset_z=%.4f r=%.4f g=%.4f b=%.4f a=%.4f\n",
			i,
			v.Position.X(), v.Position.Y(), v.Position.Z(),
			v.Offset.X(), v.Offset.Y(), v.Offset.Z(),
			v.Color.R, v.Color.G, v.Color.B, v.Color.A,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
