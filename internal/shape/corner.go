package shape

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidCorner is returned when a Corner outside the eight named
// positions is used.
var ErrInvalidCorner = errors.New("shape: invalid cube corner")

// Corner names one of the eight cube vertices. Front faces -z, top faces
// +y and right faces +x.
type Corner uint8

const (
	LeftTopFront Corner = iota
	LeftBottomFront
	RightTopFront
	RightBottomFront
	LeftTopBack
	LeftBottomBack
	RightTopBack
	RightBottomBack

	CornerCount // number of corners, not a corner
)

var cornerNames = [CornerCount]string{
	LeftTopFront:     "LeftTopFront",
	LeftBottomFront:  "LeftBottomFront",
	RightTopFront:    "RightTopFront",
	RightBottomFront: "RightBottomFront",
	LeftTopBack:      "LeftTopBack",
	LeftBottomBack:   "LeftBottomBack",
	RightTopBack:     "RightTopBack",
	RightBottomBack:  "RightBottomBack",
}

// cornerSigns holds the direction of each corner from the cube center.
var cornerSigns = [CornerCount]mgl32.Vec3{
	LeftTopFront:     {-1, 1, -1},
	LeftBottomFront:  {-1, -1, -1},
	RightTopFront:    {1, 1, -1},
	RightBottomFront: {1, -1, -1},
	LeftTopBack:      {-1, 1, 1},
	LeftBottomBack:   {-1, -1, 1},
	RightTopBack:     {1, 1, 1},
	RightBottomBack:  {1, -1, 1},
}

// Valid reports whether c is one of the eight named corners.
func (c Corner) Valid() bool {
	return c < CornerCount
}

func (c Corner) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Corner(%d)", uint8(c))
	}
	return cornerNames[c]
}

// Point returns the position of the corner for an axis-aligned cube of
// edge w centered at the origin.
func (c Corner) Point(w float32) (mgl32.Vec3, error) {
	if !c.Valid() {
		return mgl32.Vec3{}, fmt.Errorf("%w: %d", ErrInvalidCorner, uint8(c))
	}
	return cornerSigns[c].Mul(w * 0.5), nil
}
