// Package graphics defines the renderer capability set shared by every
// backend, the vertex format, the per-frame vertex buffer and the cube
// tessellator.
package graphics

import (
	"fmt"
	"strings"

	"cube3d/internal/shape"

	"github.com/go-gl/mathgl/mgl32"
)

// Type selects a renderer backend.
type Type int

const (
	TypeOpenGL Type = iota
	TypeVulkan
)

var typeNames = [...]string{
	TypeOpenGL: "opengl",
	TypeVulkan: "vulkan",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// ParseType maps a backend name (case-insensitive) to its Type.
func ParseType(name string) (Type, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range typeNames {
		if s == n {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("unknown renderer backend %q", name)
}

// RenderArgs carries the camera parameters for one frame. Eye is expressed
// in the same space as the offsets given to DrawCube3D.
type RenderArgs struct {
	Eye       mgl32.Vec3
	Direction mgl32.Vec3
	Up        mgl32.Vec3
	FOV       float32 // vertical, degrees
	Near      float32
	Far       float32
}

// Renderer is the capability set a graphics backend provides. Per frame the
// caller invokes WaitNextFrame once, any number of DrawCube3D, then
// SetupProjectionMatrix and Render.
type Renderer interface {
	// WaitNextFrame clears the framebuffer and resets per-frame buffers.
	WaitNextFrame()
	// DrawCube3D queues the cube's triangles; nothing is drawn until Render.
	DrawCube3D(cube *shape.Cube, offset mgl32.Vec3)
	// SetupProjectionMatrix derives projection and view from args.
	SetupProjectionMatrix(args RenderArgs) error
	// Render uploads the queued vertices, draws them and presents the frame.
	Render()
	// Dispose releases backend resources.
	Dispose()
}

// FrameStats is what the scheduler reports about the previous frame.
type FrameStats struct {
	FPS       float64
	RealDT    float64 // seconds
	VirtualDT float64 // seconds
	Required  float64 // seconds spent before sleeping
	Vertices  int
	Objects   int
}

// Lines formats the stats for display, one item per line.
func (s FrameStats) Lines() []string {
	return []string{
		fmt.Sprintf("fps %.1f", s.FPS),
		fmt.Sprintf("frame %.2fms work %.2fms", s.RealDT*1000, s.Required*1000),
		fmt.Sprintf("sim dt %.2fms", s.VirtualDT*1000),
		fmt.Sprintf("objects %d vertices %d", s.Objects, s.Vertices),
	}
}

// StatsSink is implemented by backends that can display FrameStats.
type StatsSink interface {
	SetStats(FrameStats)
}
