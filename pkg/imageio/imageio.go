// Package imageio reads, writes and compares rendered images.
package imageio

import (
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format identifies an image encoding
type Format string

const (
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
	FormatJPEG Format = "jpeg"
)

// FormatFromPath picks the encoding from the file extension; PNG unless the
// extension names another supported format
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		return FormatBMP
	case ".tif", ".tiff":
		return FormatTIFF
	case ".jpg", ".jpeg":
		return FormatJPEG
	}
	return FormatPNG
}

// Encode writes img to w in the given format
func Encode(w io.Writer, img *renderer.Image, format Format) error {
	rgba := img.RGBA()

	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, rgba)
	case FormatBMP:
		err = bmp.Encode(w, rgba)
	case FormatTIFF:
		err = tiff.Encode(w, rgba, &tiff.Options{Compression: tiff.Deflate})
	case FormatJPEG:
		err = jpeg.Encode(w, rgba, &jpeg.Options{Quality: 95})
	default:
		return errors.Errorf("unsupported image format %q", format)
	}
	return errors.Wrapf(err, "encode %s", format)
}

// Save writes img to path, choosing the format from the extension.
// The image itself is never modified.
func Save(path string, img *renderer.Image) error {
	if img == nil {
		return errors.New("no image to save")
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create image file")
	}

	if err := Encode(file, img, FormatFromPath(path)); err != nil {
		file.Close()
		return errors.Wrapf(err, "save %s", path)
	}
	return errors.Wrapf(file.Close(), "close %s", path)
}

// Load reads a PNG, JPEG, BMP or TIFF file into an RGBA8 image
func Load(path string) (*renderer.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open image file")
	}
	defer file.Close()

	img, err := Decode(file)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return img, nil
}

// Decode reads any registered image format from r
func Decode(r io.Reader) (*renderer.Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "decode image")
	}
	return FromImage(src), nil
}

// FromImage converts a decoded image into an RGBA8 framebuffer
func FromImage(src image.Image) *renderer.Image {
	bounds := src.Bounds()
	img := renderer.NewImage(bounds.Dx(), bounds.Dy())

	if rgba, ok := src.(*image.RGBA); ok && rgba.Stride == img.Stride() {
		copy(img.Pix, rgba.Pix)
		return img
	}

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			// RGBA returns 16-bit premultiplied channels
			r, g, b, a := src.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			img.Pix[y*img.Stride()+x*renderer.Channels+0] = uint8(r >> 8)
			img.Pix[y*img.Stride()+x*renderer.Channels+1] = uint8(g >> 8)
			img.Pix[y*img.Stride()+x*renderer.Channels+2] = uint8(b >> 8)
			img.Pix[y*img.Stride()+x*renderer.Channels+3] = uint8(a >> 8)
		}
	}
	return img
}
