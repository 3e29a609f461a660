package renderer

import (
	"bytes"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// renderScene renders s at its configured camera into a fresh image
func renderScene(t *testing.T, s *scene.Scene, config RenderConfig) (*Image, StatsSnapshot) {
	t.Helper()

	camera := geometry.NewCamera(s.CameraConfig)
	img := NewImage(camera.Width(), camera.Height())
	stats := NewRenderStats()

	if err := Render(img, s, camera, stats, config); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return img, stats.Snapshot()
}

func resized(s *scene.Scene, width, height int) *scene.Scene {
	s.CameraConfig = geometry.MergeCameraConfig(s.CameraConfig, geometry.CameraConfig{Width: width, Height: height})
	return s
}

func TestRender_EmptySceneIsBackground(t *testing.T) {
	s := resized(scene.NewEmptyScene(), 16, 9)
	img, stats := renderScene(t, s, DefaultRenderConfig())

	expected := Vec3ToColor(s.Background, 1)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			if got := img.At(x, y); got != expected {
				t.Fatalf("Pixel (%d,%d): expected %v, got %v", x, y, expected, got)
			}
		}
	}

	if stats.RaysGenerated != 16*9 {
		t.Errorf("Expected %d rays, got %d", 16*9, stats.RaysGenerated)
	}
	if stats.IntersectionTests != 0 || stats.IntersectionsFound != 0 {
		t.Errorf("Expected no intersection work in an empty scene, got %+v", stats)
	}
}

func TestRender_CenterPixelHitsSphere(t *testing.T) {
	s := scene.NewScene()
	s.CameraConfig = geometry.CameraConfig{
		Center: core.NewVec3(0, 0, 0),
		LookAt: core.NewVec3(0, 0, -1),
		Up:     core.NewVec3(0, 1, 0),
		FOV:    60,
		Width:  11,
		Height: 11,
	}
	s.Background = core.NewVec3(0, 0, 0)
	s.AddSphere(core.NewVec3(0, 0, -5), 1, gray)
	s.AddPointLight(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), 1)

	img, stats := renderScene(t, s, DefaultRenderConfig())

	background := Vec3ToColor(s.Background, 1)
	if img.At(5, 5) == background {
		t.Error("Expected center pixel to show the sphere")
	}
	if img.At(0, 0) != background {
		t.Errorf("Expected corner pixel to miss, got %v", img.At(0, 0))
	}
	if stats.IntersectionsFound == 0 {
		t.Error("Expected intersections to be found")
	}
}

func TestRender_DeterministicAcrossWorkerCounts(t *testing.T) {
	first, firstStats := renderScene(t, resized(scene.NewDefaultScene(), 64, 36), RenderConfig{NumWorkers: 1, TileSize: 7})
	second, secondStats := renderScene(t, resized(scene.NewDefaultScene(), 64, 36), RenderConfig{NumWorkers: 8, TileSize: 16})

	if !bytes.Equal(first.Pix, second.Pix) {
		t.Error("Expected byte-identical images across worker counts")
	}
	if firstStats != secondStats {
		t.Errorf("Expected identical statistics, got %+v and %+v", firstStats, secondStats)
	}
}

func TestRender_StatsInvariants(t *testing.T) {
	for _, info := range scene.ListBuiltinScenes() {
		t.Run(info.Name, func(t *testing.T) {
			s, err := scene.NewBuiltinScene(info.Name)
			if err != nil {
				t.Fatal(err)
			}
			_, stats := renderScene(t, resized(s, 24, 16), DefaultRenderConfig())

			if stats.RaysGenerated != 24*16 {
				t.Errorf("Expected %d rays, got %d", 24*16, stats.RaysGenerated)
			}
			if stats.IntersectionsFound > stats.IntersectionTests {
				t.Errorf("Found %d exceeds tests %d", stats.IntersectionsFound, stats.IntersectionTests)
			}
			if len(s.Shapes) > 0 && stats.IntersectionTests < stats.RaysGenerated {
				t.Errorf("Tests %d fewer than rays %d", stats.IntersectionTests, stats.RaysGenerated)
			}
		})
	}
}

func TestRender_MirrorBoxTerminates(t *testing.T) {
	s := resized(scene.NewMirrorBoxScene(), 24, 24)
	config := DefaultRenderConfig()
	_, stats := renderScene(t, s, config)

	// Each pixel makes at most MaxDepth+1 queries, each followed by one shadow query per light
	queries := int64(config.MaxDepth+1) * int64(1+len(s.Lights))
	limit := stats.RaysGenerated * queries * int64(len(s.Shapes))
	if stats.IntersectionTests > limit {
		t.Errorf("Expected at most %d tests, got %d", limit, stats.IntersectionTests)
	}
}

func TestRender_RejectsMismatchedImage(t *testing.T) {
	s := resized(scene.NewDefaultScene(), 32, 18)
	camera := geometry.NewCamera(s.CameraConfig)

	if err := Render(NewImage(16, 18), s, camera, nil, DefaultRenderConfig()); err == nil {
		t.Error("Expected error for image size mismatch")
	}
	if err := Render(nil, s, camera, nil, DefaultRenderConfig()); err == nil {
		t.Error("Expected error for nil image")
	}

	truncated := NewImage(32, 18)
	truncated.Pix = truncated.Pix[:10]
	if err := Render(truncated, s, camera, nil, DefaultRenderConfig()); err == nil {
		t.Error("Expected error for short pixel buffer")
	}
}

func TestTileRenderer_RejectsOutOfBoundsTile(t *testing.T) {
	s := resized(scene.NewEmptyScene(), 8, 8)
	tr := NewTileRenderer(s, geometry.NewCamera(s.CameraConfig), nil, DefaultRenderConfig())

	tiles := NewTileGrid(16, 16, 8)
	if err := tr.RenderTileBounds(tiles[len(tiles)-1].Bounds, NewImage(8, 8)); err == nil {
		t.Error("Expected error for tile outside the image")
	}
}

func TestRender_TwoIdenticalSpheresRepeatable(t *testing.T) {
	build := func() *scene.Scene {
		s := scene.NewScene()
		s.CameraConfig = geometry.CameraConfig{
			Center: core.NewVec3(0, 0, 4),
			LookAt: core.NewVec3(0, 0, 0),
			Up:     core.NewVec3(0, 1, 0),
			FOV:    60,
			Width:  48,
			Height: 32,
		}
		s.Ambient = core.NewVec3(0.1, 0.1, 0.1)
		s.AddSphere(core.NewVec3(-1, 0, 0), 0.8, gray)
		s.AddSphere(core.NewVec3(1, 0, 0), 0.8, gray)
		s.AddPointLight(core.NewVec3(0, 3, 3), core.NewVec3(1, 1, 1), 1)
		return s
	}

	first, _ := renderScene(t, build(), DefaultRenderConfig())
	second, _ := renderScene(t, build(), DefaultRenderConfig())
	if !bytes.Equal(first.Pix, second.Pix) {
		t.Error("Expected byte-identical images across runs")
	}
}
