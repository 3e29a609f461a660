package loaders

import (
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Session owns everything needed to render one scene: the scene itself, the
// camera built from its configuration, an image of matching size and the
// render settings and statistics.
type Session struct {
	Scene  *scene.Scene
	Camera *geometry.Camera
	Image  *renderer.Image
	Config renderer.RenderConfig
	Stats  *renderer.RenderStats
}

// NewSession prepares a render of s. Zero fields of config take their defaults.
func NewSession(s *scene.Scene, config renderer.RenderConfig) *Session {
	camera := geometry.NewCamera(s.CameraConfig)
	return &Session{
		Scene:  s,
		Camera: camera,
		Image:  renderer.NewImage(camera.Width(), camera.Height()),
		Config: renderer.MergeRenderConfig(renderer.DefaultRenderConfig(), config),
		Stats:  renderer.NewRenderStats(),
	}
}

// Render resets the statistics and renders the scene into the session image
func (s *Session) Render(logger core.Logger) (renderer.StatsSnapshot, error) {
	s.Stats.Reset()

	logger.Printf("Rendering %dx%d, %d shapes, %d lights, max depth %d\n",
		s.Image.Width, s.Image.Height, s.Scene.GetPrimitiveCount(), len(s.Scene.Lights), s.Config.MaxDepth)

	start := time.Now()
	if err := renderer.Render(s.Image, s.Scene, s.Camera, s.Stats, s.Config); err != nil {
		return renderer.StatsSnapshot{}, err
	}
	logger.Printf("Render completed in %v\n", time.Since(start))

	return s.Stats.Snapshot(), nil
}
