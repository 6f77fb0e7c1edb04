package graphics

import "testing"

func TestTypeNames(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Type
	}{{"opengl", TypeOpenGL}, {" OpenGL ", TypeOpenGL}, {"vulkan", TypeVulkan}} {
		got, err := ParseType(tc.in)
		if err != nil || got != tc.want {
			t.Fatalf("ParseType(%q) = %v, %v", tc.in, got, err)
		}
	}
	if _, err := ParseType("metal"); err == nil {
		t.Fatalf("ParseType(metal) succeeded")
	}
	if TypeVulkan.String() != "vulkan" || Type(9).String() != "Type(9)" {
		t.Fatalf("unexpected names %q %q", TypeVulkan, Type(9))
	}
}

func TestFrameStatsLines(t *testing.T) {
	s := FrameStats{FPS: 60, RealDT: 1.0 / 60, Required: 0.002, VirtualDT: 1.0 / 60, Vertices: 72, Objects: 2}
	lines := s.Lines()
	if len(lines) != 4 || lines[0] != "fps 60.0" || lines[3] != "objects 2 vertices 72" {
		t.Fatalf("unexpected lines %q", lines)
	}
}
