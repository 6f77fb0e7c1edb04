package scene

import (
	"math"
	"math/rand"
	"testing"

	"cube3d/internal/config"
	"cube3d/internal/graphics"
	"cube3d/internal/shape"

	"github.com/go-gl/mathgl/mgl32"
)

type recordingRenderer struct {
	offsets []mgl32.Vec3
	cubes   []*shape.Cube
}

func (r *recordingRenderer) WaitNextFrame() {}
func (r *recordingRenderer) DrawCube3D(c *shape.Cube, offset mgl32.Vec3) {
	r.cubes = append(r.cubes, c)
	r.offsets = append(r.offsets, offset)
}
func (r *recordingRenderer) SetupProjectionMatrix(graphics.RenderArgs) error { return nil }
func (r *recordingRenderer) Render()                                         {}
func (r *recordingRenderer) Dispose()                                        {}

func TestAddGetLen(t *testing.T) {
	s := New()
	a := NewPlayerCube(mgl32.Vec3{1, 0, 0}, shape.NewCube(1))
	b := NewSpinningCube(mgl32.Vec3{0, 1, 0}, shape.NewCube(1), 1)

	if id := s.Add(a); id != 0 {
		t.Fatalf("first id = %d, want 0", id)
	}
	if id := s.Add(b); id != 1 {
		t.Fatalf("second id = %d, want 1", id)
	}
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	got, err := s.Get(1)
	if err != nil || got != Object(b) {
		t.Fatalf("Get(1) = %v, %v", got, err)
	}
	if _, err := s.Get(2); err == nil {
		t.Fatalf("Get(2) should fail")
	}
	if _, err := s.Get(-1); err == nil {
		t.Fatalf("Get(-1) should fail")
	}

	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("Len after Clear = %d", s.Len())
	}
}

func TestIntegrateMovesPlayer(t *testing.T) {
	s := New()
	p := NewPlayerCube(mgl32.Vec3{0, 0, 0}, shape.NewCube(1))
	s.Add(p)
	p.SetVelocity(mgl32.Vec3{2, 0, -4})

	s.Integrate(0.5)

	if !p.Position().ApproxEqual(mgl32.Vec3{1, 0, -2}) {
		t.Fatalf("position = %v, want (1,0,-2)", p.Position())
	}
}

func TestRenderUsesCameraRelativeOffsets(t *testing.T) {
	s := New()
	s.Add(NewPlayerCube(mgl32.Vec3{1, 2, 3}, shape.NewCube(1)))
	s.Add(NewSpinningCube(mgl32.Vec3{0, 0, -3}, shape.NewCube(1), 0))
	cam := NewCamera(mgl32.Vec3{1, 1, 1}, -90, 0)

	r := &recordingRenderer{}
	s.Render(r, cam, 0.016)

	want := []mgl32.Vec3{{0, 1, 2}, {-1, -1, -4}}
	if len(r.offsets) != len(want) {
		t.Fatalf("got %d draws, want %d", len(r.offsets), len(want))
	}
	for i := range want {
		if !r.offsets[i].ApproxEqual(want[i]) {
			t.Fatalf("offset %d = %v, want %v", i, r.offsets[i], want[i])
		}
	}
}

func TestSpinAdvancesBoundedAngle(t *testing.T) {
	c := shape.NewCube(1)
	sc := NewSpinningCube(mgl32.Vec3{}, c, 4)
	r := &recordingRenderer{}

	for i := 0; i < 100; i++ {
		sc.Render(r, mgl32.Vec3{}, 0.1)
		a := c.RotationAngle()
		if a < 0 || a >= 2*math.Pi {
			t.Fatalf("angle %v out of [0, 2pi) after %d frames", a, i+1)
		}
	}
	want := shape.NormalizeAngle(40)
	if math.Abs(float64(c.RotationAngle()-want)) > 1e-3 {
		t.Fatalf("angle = %v, want about %v", c.RotationAngle(), want)
	}
}

func TestToggleSpin(t *testing.T) {
	s := New()
	a := NewSpinningCube(mgl32.Vec3{}, shape.NewCube(1), 1)
	b := NewSpinningCube(mgl32.Vec3{}, shape.NewCube(1), 1)
	s.Add(a)
	s.Add(NewPlayerCube(mgl32.Vec3{}, shape.NewCube(1)))
	s.Add(b)

	if on := s.ToggleSpin(); on {
		t.Fatalf("first toggle should pause")
	}
	if a.Spinning() || b.Spinning() {
		t.Fatalf("spinners still running after pause")
	}

	r := &recordingRenderer{}
	s.Render(r, NewCamera(mgl32.Vec3{}, -90, 0), 1)
	if a.Cube.RotationAngle() != 0 {
		t.Fatalf("paused cube rotated to %v", a.Cube.RotationAngle())
	}

	if on := s.ToggleSpin(); !on {
		t.Fatalf("second toggle should resume")
	}
	if !a.Spinning() || !b.Spinning() {
		t.Fatalf("spinners not resumed")
	}
}

func TestCameraDirection(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{}, -90, 0)
	if !cam.Direction.ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, 1e-5) {
		t.Fatalf("direction = %v, want (0,0,-1)", cam.Direction)
	}
	if !cam.Right().ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-5) {
		t.Fatalf("right = %v, want (1,0,0)", cam.Right())
	}

	cam.Move(2, 1, 0.5)
	if !cam.Base.ApproxEqualThreshold(mgl32.Vec3{1, 0.5, -2}, 1e-5) {
		t.Fatalf("base = %v, want (1,0.5,-2)", cam.Base)
	}

	cam.Turn(0, 200)
	if cam.Pitch != 89 {
		t.Fatalf("pitch = %v, want clamped to 89", cam.Pitch)
	}

	args := cam.Args(45, 0.1, 100)
	if args.Eye != (mgl32.Vec3{}) {
		t.Fatalf("eye = %v, want origin", args.Eye)
	}
	if args.Direction != cam.Direction || args.FOV != 45 {
		t.Fatalf("args = %+v", args)
	}
}

func TestNewDemo(t *testing.T) {
	sc := config.Default().Scene
	d := NewDemo(rand.New(rand.NewSource(sc.Seed)), sc, 1.5)

	if d.Scene.Len() != sc.RingCubes+2 {
		t.Fatalf("Len = %d, want %d", d.Scene.Len(), sc.RingCubes+2)
	}
	first, err := d.Scene.Get(0)
	if err != nil {
		t.Fatalf("Get(0): %v", err)
	}
	center, ok := first.(*SpinningCube)
	if !ok {
		t.Fatalf("first object is %T, want *SpinningCube", first)
	}
	if center.Position() != (mgl32.Vec3{0, 0, -3}) {
		t.Fatalf("center at %v", center.Position())
	}
	if center.Cube.W != sc.CubeWidth {
		t.Fatalf("center width %v", center.Cube.W)
	}
	if last, _ := d.Scene.Get(ID(d.Scene.Len() - 1)); last != Object(d.Player) {
		t.Fatalf("player is not the last object")
	}

	seen := make(map[shape.Color]bool)
	for _, c := range center.Cube.Colors() {
		seen[c] = true
	}
	if len(seen) != int(shape.CornerCount) {
		t.Fatalf("center cube has %d distinct colors, want %d", len(seen), shape.CornerCount)
	}

	other := NewDemo(rand.New(rand.NewSource(sc.Seed)), sc, 1.5)
	for i := 0; i < d.Scene.Len(); i++ {
		a, _ := d.Scene.Get(ID(i))
		b, _ := other.Scene.Get(ID(i))
		ca := a.Shape().(*shape.Cube).Colors()
		cb := b.Shape().(*shape.Cube).Colors()
		if ca != cb {
			t.Fatalf("object %d differs between runs with the same seed", i)
		}
	}
}
