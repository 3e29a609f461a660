package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewMirrorBoxScene creates a closed box whose six walls are perfect mirrors,
// with the camera, a sphere and a light inside. Every primary ray bounces
// until the depth limit stops it.
func NewMirrorBoxScene() *Scene {
	s := NewScene()
	s.CameraConfig = geometry.CameraConfig{
		Center: core.NewVec3(0, 0, 3),
		LookAt: core.NewVec3(0, 0, 0),
		Up:     core.NewVec3(0, 1, 0),
		FOV:    70,
		Width:  200,
		Height: 200,
	}
	s.Ambient = core.NewVec3(0.05, 0.05, 0.05)
	s.Background = core.NewVec3(0, 0, 0)

	mirror := material.NewMirror()
	const half = 5.0

	// Normals point into the box
	s.AddPlane(core.NewVec3(0, -half, 0), core.NewVec3(0, 1, 0), mirror)
	s.AddPlane(core.NewVec3(0, half, 0), core.NewVec3(0, -1, 0), mirror)
	s.AddPlane(core.NewVec3(-half, 0, 0), core.NewVec3(1, 0, 0), mirror)
	s.AddPlane(core.NewVec3(half, 0, 0), core.NewVec3(-1, 0, 0), mirror)
	s.AddPlane(core.NewVec3(0, 0, -half), core.NewVec3(0, 0, 1), mirror)
	s.AddPlane(core.NewVec3(0, 0, half), core.NewVec3(0, 0, -1), mirror)

	s.AddSphere(core.NewVec3(0, 0, 0), 1, material.NewDiffuse(core.NewVec3(0.9, 0.6, 0.2)).WithSpecular(0.5, 16))
	s.AddPointLight(core.NewVec3(2, 3, 2), core.NewVec3(1, 1, 1), 1)

	return s
}
