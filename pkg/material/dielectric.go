package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// NewGlass creates a fully transparent material like glass that tints transmitted light
func NewGlass(tint core.Vec3, refractiveIndex float64) Material {
	return NewMaterial(tint, 0, refractiveIndex, 0)
}

// RefractionRatio returns eta_i / eta_t for a ray crossing the surface.
// Front-face hits enter the material from air, back-face hits exit into air.
func (m Material) RefractionRatio(frontFace bool) float64 {
	if frontFace {
		return 1.0 / m.RefractiveIndex
	}
	return m.RefractiveIndex
}

// Refract bends the unit direction uv through a surface with unit normal n
// (facing against uv) using Snell's law. It returns false on total internal
// reflection.
func Refract(uv, n core.Vec3, etaiOverEtat float64) (core.Vec3, bool) {
	cosTheta := math.Min(-uv.Dot(n), 1.0)
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))

	// Check for total internal reflection
	if etaiOverEtat*sinTheta > 1.0 {
		return core.Vec3{}, false
	}

	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel).Normalize(), true
}
