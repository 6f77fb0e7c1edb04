package opengl

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// newAlphaTexture creates an empty single-channel texture.
func newAlphaTexture() uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texture
}

// uploadAlpha replaces the texture contents with img as GL_RED.
func uploadAlpha(texture uint32, img *image.Alpha) {
	size := img.Rect.Size()
	if size.X == 0 || size.Y == 0 {
		return
	}

	gl.BindTexture(gl.TEXTURE_2D, texture)
	// Rows of an image.Alpha are byte aligned.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RED,
		int32(size.X),
		int32(size.Y),
		0,
		gl.RED,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix),
	)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}
