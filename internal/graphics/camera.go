package graphics

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Viewport is the drawable area in pixels.
type Viewport struct {
	Width  int
	Height int
}

// AspectRatio returns width / height.
func (v Viewport) AspectRatio() (float32, error) {
	if v.Width <= 0 || v.Height <= 0 {
		return 0, fmt.Errorf("%w: %dx%d", ErrDegenerateViewport, v.Width, v.Height)
	}
	return float32(v.Width) / float32(v.Height), nil
}

// InvertedAspectRatio returns height / width.
func (v Viewport) InvertedAspectRatio() (float32, error) {
	ar, err := v.AspectRatio()
	if err != nil {
		return 0, err
	}
	return 1 / ar, nil
}

// NormalizedSize scales the viewport so its larger side is 1.
func (v Viewport) NormalizedSize() mgl32.Vec2 {
	m := v.Width
	if v.Height > m {
		m = v.Height
	}
	if m <= 0 {
		return mgl32.Vec2{}
	}
	return mgl32.Vec2{float32(v.Width) / float32(m), float32(v.Height) / float32(m)}
}

// ProjectionView returns projection * view for the given camera arguments.
func ProjectionView(v Viewport, args RenderArgs) (mgl32.Mat4, error) {
	aspect, err := v.AspectRatio()
	if err != nil {
		return mgl32.Mat4{}, err
	}
	if args.FOV <= 0 || args.FOV >= 180 {
		return mgl32.Mat4{}, fmt.Errorf("%w: field of view %v", ErrDegenerateViewport, args.FOV)
	}
	if args.Near <= 0 || args.Far <= args.Near {
		return mgl32.Mat4{}, fmt.Errorf("%w: near %v far %v", ErrDegenerateViewport, args.Near, args.Far)
	}
	if args.Direction.Len() == 0 {
		return mgl32.Mat4{}, fmt.Errorf("%w: zero view direction", ErrDegenerateViewport)
	}

	dir := args.Direction.Normalize()
	up := args.Up
	if up.Len() == 0 {
		up = mgl32.Vec3{0, 1, 0}
	}
	up = up.Normalize()
	// LookAt needs an up vector that is not parallel to the view direction.
	if dir.Cross(up).Len() < 1e-6 {
		up = mgl32.Vec3{0, 0, 1}
		if dir.Cross(up).Len() < 1e-6 {
			up = mgl32.Vec3{1, 0, 0}
		}
	}

	projection := mgl32.Perspective(mgl32.DegToRad(args.FOV), aspect, args.Near, args.Far)
	view := mgl32.LookAtV(args.Eye, args.Eye.Add(dir), up)
	return projection.Mul4(view), nil
}
