// Package overlay rasterizes the on-screen statistics text on the CPU so a
// backend only has to upload a single alpha texture.
package overlay

import (
	"image"
	"image/draw"
	"slices"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Text turns lines of ASCII text into an alpha mask. The last rasterized
// image is cached and reused while the lines do not change.
type Text struct {
	face    font.Face
	padding int
	spacing int

	lines []string
	img   *image.Alpha
}

// NewText creates a rasterizer using the built-in 7x13 bitmap face.
func NewText() *Text {
	return &Text{
		face:    basicfont.Face7x13,
		padding: 4,
		spacing: 2,
	}
}

// lineHeight is the distance between consecutive baselines in pixels.
func (t *Text) lineHeight() int {
	m := t.face.Metrics()
	return (m.Ascent + m.Descent).Ceil() + t.spacing
}

// Measure returns the pixel size of the rasterized lines including padding.
func (t *Text) Measure(lines []string) image.Point {
	if len(lines) == 0 {
		return image.Point{}
	}
	w := 0
	for _, l := range lines {
		if lw := font.MeasureString(t.face, l).Ceil(); lw > w {
			w = lw
		}
	}
	h := len(lines)*t.lineHeight() - t.spacing
	return image.Point{X: w + 2*t.padding, Y: h + 2*t.padding}
}

// Rasterize draws the lines into an alpha image, top line first. The
// second result reports whether the image differs from the previous call.
func (t *Text) Rasterize(lines []string) (*image.Alpha, bool) {
	if t.img != nil && slices.Equal(lines, t.lines) {
		return t.img, false
	}

	size := t.Measure(lines)
	img := image.NewAlpha(image.Rectangle{Max: size})
	// Translucent backing plate so text stays readable over bright cubes.
	draw.Draw(img, img.Bounds(), image.NewUniform(backing), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.Opaque,
		Face: t.face,
	}
	ascent := t.face.Metrics().Ascent.Ceil()
	for i, l := range lines {
		d.Dot = fixed.P(t.padding, t.padding+ascent+i*t.lineHeight())
		d.DrawString(l)
	}

	t.lines = slices.Clone(lines)
	t.img = img
	return img, true
}
