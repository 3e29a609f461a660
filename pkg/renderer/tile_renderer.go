package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/pkg/errors"
)

// TileRenderer renders the pixels of individual tiles into a shared image
type TileRenderer struct {
	camera *geometry.Camera
	shader *Shader
	stats  *RenderStats
	gamma  float64
}

// NewTileRenderer creates a tile renderer; scene and camera are only read
func NewTileRenderer(s *scene.Scene, camera *geometry.Camera, stats *RenderStats, config RenderConfig) *TileRenderer {
	intersector := NewIntersector(s, stats)
	return &TileRenderer{
		camera: camera,
		shader: NewShader(s, intersector, config.MaxDepth),
		stats:  intersector.stats,
		gamma:  config.Gamma,
	}
}

// RenderTileBounds shades every pixel within bounds and writes it to img
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, img *Image) error {
	if !bounds.In(image.Rect(0, 0, img.Width, img.Height)) {
		return errors.Errorf("tile %v outside image %dx%d", bounds, img.Width, img.Height)
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			img.SetPixel(x, y, tr.RenderPixel(x, y))
		}
	}
	return nil
}

// RenderPixel traces the primary ray of pixel (x, y) and returns its color
func (tr *TileRenderer) RenderPixel(x, y int) color.RGBA {
	ray := tr.camera.GetRay(x, y)
	tr.stats.AddRay()
	return Vec3ToColor(tr.shader.Shade(ray, 0), tr.gamma)
}
