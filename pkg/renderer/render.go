package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/pkg/errors"
)

// Render fills img with the scene as seen by camera. Tiles are rendered in
// parallel by a fixed pool of workers; Render returns once every pixel has
// been written and all workers have exited. The scene and camera must not be
// modified while Render runs. Zero fields of config take their defaults.
func Render(img *Image, s *scene.Scene, camera *geometry.Camera, stats *RenderStats, config RenderConfig) error {
	if img == nil || s == nil || camera == nil {
		return errors.New("render requires an image, a scene and a camera")
	}
	if img.Width != camera.Width() || img.Height != camera.Height() {
		return errors.Errorf("image is %dx%d but camera renders %dx%d",
			img.Width, img.Height, camera.Width(), camera.Height())
	}
	if len(img.Pix) != img.Width*img.Height*Channels {
		return errors.Errorf("image buffer has %d bytes, expected %d",
			len(img.Pix), img.Width*img.Height*Channels)
	}

	config = MergeRenderConfig(DefaultRenderConfig(), config)
	if stats == nil {
		stats = NewRenderStats()
	}

	tiles := NewTileGrid(img.Width, img.Height, config.TileSize)
	tileRenderer := NewTileRenderer(s, camera, stats, config)
	pool := NewWorkerPool(config.NumWorkers)

	return pool.Run(tiles, func(worker int, task TileTask) error {
		return tileRenderer.RenderTileBounds(task.Tile.Bounds, img)
	})
}
