package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewGlassScene creates a glass sphere in front of a row of colored
// spheres and a triangle, showing refraction and transmitted shadows
func NewGlassScene() *Scene {
	s := NewScene()
	s.CameraConfig = geometry.CameraConfig{
		Center: core.NewVec3(0, 1.5, 5),
		LookAt: core.NewVec3(0, 0.8, 0),
		Up:     core.NewVec3(0, 1, 0),
		FOV:    55,
		Width:  320,
		Height: 240,
	}
	s.Ambient = core.NewVec3(0.08, 0.08, 0.08)
	s.Background = core.NewVec3(0.1, 0.1, 0.15)

	floor := material.NewDiffuse(core.NewVec3(0.7, 0.7, 0.7))
	glass := material.NewGlass(core.NewVec3(0.95, 0.95, 1.0), 1.5).WithSpecular(0.8, 128)

	s.AddPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), floor)
	s.AddSphere(core.NewVec3(0, 1, 1), 1, glass)

	colors := []core.Vec3{
		core.NewVec3(0.9, 0.2, 0.2),
		core.NewVec3(0.2, 0.9, 0.2),
		core.NewVec3(0.2, 0.2, 0.9),
	}
	for i, color := range colors {
		x := float64(i-1) * 1.6
		s.AddSphere(core.NewVec3(x, 0.5, -2), 0.5, material.NewDiffuse(color))
	}

	s.Add(geometry.NewTriangle(
		core.NewVec3(-3, 0, -4),
		core.NewVec3(3, 0, -4),
		core.NewVec3(0, 3, -4),
		material.NewMaterial(core.NewVec3(0.9, 0.9, 0.5), 0.3, 1, 1),
	))

	s.AddPointLight(core.NewVec3(4, 6, 5), core.NewVec3(1, 1, 1), 0.9)
	s.AddDirectionalLight(core.NewVec3(-1, -1, -0.5), core.NewVec3(0.4, 0.4, 0.5), 0.3)

	return s
}
