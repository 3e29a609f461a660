package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene creates two spheres resting on a ground plane, lit by one point light
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Center: core.NewVec3(0, 1, 4),
		LookAt: core.NewVec3(0, 0.5, -1),
		Up:     core.NewVec3(0, 1, 0),
		FOV:    60,
		Width:  400,
		Height: 225, // 16:9 aspect ratio
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := NewScene()
	s.CameraConfig = cameraConfig
	s.Ambient = core.NewVec3(0.1, 0.1, 0.1)
	s.Background = core.NewVec3(0.5, 0.7, 1.0)

	ground := material.NewMaterial(core.NewVec3(0.8, 0.8, 0.8), 0.2, 1, 1)
	red := material.NewDiffuse(core.NewVec3(0.8, 0.2, 0.2)).WithSpecular(0.4, 32)
	mirror := material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 0.8)

	s.AddPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ground)
	s.AddSphere(core.NewVec3(-1.1, 1, -1), 1, red)
	s.AddSphere(core.NewVec3(1.1, 1, -1), 1, mirror)

	s.AddPointLight(core.NewVec3(-3, 6, 4), core.NewVec3(1, 1, 1), 1)

	return s
}

// NewEmptyScene creates a scene with no shapes and no lights.
// Every pixel renders as the background color.
func NewEmptyScene() *Scene {
	s := NewScene()
	s.Background = core.NewVec3(0.2, 0.3, 0.4)
	return s
}
