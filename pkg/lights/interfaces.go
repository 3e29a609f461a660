package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

type LightType string

const (
	LightTypePoint       LightType = "point"
	LightTypeDirectional LightType = "directional"
)

// Light is the closed set of light sources used for direct illumination.
// Only types in this package implement it.
type Light interface {
	Type() LightType

	// Sample returns the light arriving at point.
	// Direction points FROM the shading point TO the light.
	Sample(point core.Vec3) LightSample

	isLight()
}

// LightSample describes the light arriving at a shading point
type LightSample struct {
	Direction core.Vec3 // Unit direction from shading point to light
	Distance  float64   // Distance to light, +Inf for directional lights
	Radiance  core.Vec3 // Light color scaled by intensity
}
