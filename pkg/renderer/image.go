package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Channels is the number of bytes per pixel in an Image
const Channels = 4

// Image is a row-major RGBA8 framebuffer.
// During a render each pixel is written by exactly one worker.
type Image struct {
	Width  int
	Height int
	Pix    []uint8 // Width*Height*Channels bytes, row 0 first
}

// NewImage creates a black, fully transparent image of the given size
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*Channels),
	}
}

// Stride returns the number of bytes per row
func (img *Image) Stride() int {
	return img.Width * Channels
}

// SetPixel writes the color of pixel (x, y)
func (img *Image) SetPixel(x, y int, c color.RGBA) {
	i := y*img.Stride() + x*Channels
	img.Pix[i+0] = c.R
	img.Pix[i+1] = c.G
	img.Pix[i+2] = c.B
	img.Pix[i+3] = c.A
}

// At returns the color of pixel (x, y)
func (img *Image) At(x, y int) color.RGBA {
	i := y*img.Stride() + x*Channels
	return color.RGBA{R: img.Pix[i+0], G: img.Pix[i+1], B: img.Pix[i+2], A: img.Pix[i+3]}
}

// RGBA returns an *image.RGBA sharing the pixel buffer, for encoders
func (img *Image) RGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    img.Pix,
		Stride: img.Stride(),
		Rect:   image.Rect(0, 0, img.Width, img.Height),
	}
}

// Vec3ToColor converts a linear color to RGBA8.
// Non-finite channels are sanitized (NaN and -Inf to 0, +Inf to 1), then
// clamped to [0,1] and gamma corrected.
func Vec3ToColor(colorVec core.Vec3, gamma float64) color.RGBA {
	colorVec = core.NewVec3(sanitize(colorVec.X), sanitize(colorVec.Y), sanitize(colorVec.Z))
	colorVec = colorVec.Clamp(0.0, 1.0)
	if gamma > 0 {
		colorVec = colorVec.GammaCorrect(gamma)
	}

	return color.RGBA{
		R: uint8(255*colorVec.X + 0.5),
		G: uint8(255*colorVec.Y + 0.5),
		B: uint8(255*colorVec.Z + 0.5),
		A: 255,
	}
}

func sanitize(v float64) float64 {
	switch {
	case math.IsNaN(v), math.IsInf(v, -1):
		return 0
	case math.IsInf(v, 1):
		return 1
	}
	return v
}
