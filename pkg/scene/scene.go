package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Scene contains all the elements needed for rendering.
// A scene must not be mutated once rendering starts; workers read it without locks.
type Scene struct {
	Shapes       []geometry.Shape // Objects in the scene, intersected in order
	Lights       []lights.Light   // Lights in the scene
	Ambient      core.Vec3        // Ambient light added to every hit
	Background   core.Vec3        // Color of rays that hit nothing
	CameraConfig geometry.CameraConfig
}

// NewScene creates an empty scene with the default camera
func NewScene() *Scene {
	return &Scene{
		Shapes:       make([]geometry.Shape, 0),
		Lights:       make([]lights.Light, 0),
		CameraConfig: geometry.DefaultCameraConfig(),
	}
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// AddLight appends lights to the scene
func (s *Scene) AddLight(lightSources ...lights.Light) {
	s.Lights = append(s.Lights, lightSources...)
}

// AddSphere adds a sphere to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) {
	s.Add(geometry.NewSphere(center, radius, mat))
}

// AddPlane adds an infinite plane to the scene
func (s *Scene) AddPlane(point, normal core.Vec3, mat material.Material) {
	s.Add(geometry.NewPlane(point, normal, mat))
}

// AddPointLight adds a point light to the scene
func (s *Scene) AddPointLight(position, color core.Vec3, intensity float64) {
	s.AddLight(lights.NewPointLight(position, color, intensity))
}

// AddDirectionalLight adds a directional light to the scene
func (s *Scene) AddDirectionalLight(direction, color core.Vec3, intensity float64) {
	s.AddLight(lights.NewDirectionalLight(direction, color, intensity))
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}
