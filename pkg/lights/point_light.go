package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// PointLight emits light uniformly in all directions from a single position
type PointLight struct {
	Position  core.Vec3
	Color     core.Vec3
	Intensity float64
}

// NewPointLight creates a new point light
func NewPointLight(position, color core.Vec3, intensity float64) *PointLight {
	return &PointLight{
		Position:  position,
		Color:     color,
		Intensity: intensity,
	}
}

func (pl *PointLight) Type() LightType {
	return LightTypePoint
}

// Sample returns the unattenuated light from the point light.
// A shading point coincident with the light gets a zero direction.
func (pl *PointLight) Sample(point core.Vec3) LightSample {
	toLight := pl.Position.Subtract(point)
	return LightSample{
		Direction: toLight.Normalize(),
		Distance:  toLight.Length(),
		Radiance:  pl.Color.Multiply(pl.Intensity),
	}
}

func (pl *PointLight) isLight() {}
