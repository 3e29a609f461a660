package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// DirectionalLight is a light infinitely far away, shining along Direction
type DirectionalLight struct {
	Direction core.Vec3 // Unit direction the light travels
	Color     core.Vec3
	Intensity float64
}

// NewDirectionalLight creates a new directional light
func NewDirectionalLight(direction, color core.Vec3, intensity float64) *DirectionalLight {
	return &DirectionalLight{
		Direction: direction.Normalize(),
		Color:     color,
		Intensity: intensity,
	}
}

func (dl *DirectionalLight) Type() LightType {
	return LightTypeDirectional
}

// Sample returns the same light for every shading point
func (dl *DirectionalLight) Sample(point core.Vec3) LightSample {
	return LightSample{
		Direction: dl.Direction.Negate(),
		Distance:  math.Inf(1),
		Radiance:  dl.Color.Multiply(dl.Intensity),
	}
}

func (dl *DirectionalLight) isLight() {}
