package material

import "github.com/df07/go-whitted-raytracer/pkg/core"

// NewMirror creates a perfect mirror
func NewMirror() Material {
	return NewMaterial(core.NewVec3(1, 1, 1), 1, 1, 1)
}

// NewMetal creates an opaque reflective material whose diffuse color shows
// through in proportion to (1 - reflectivity)
func NewMetal(albedo core.Vec3, reflectivity float64) Material {
	return NewMaterial(albedo, reflectivity, 1, 1).WithSpecular(0.5, 64)
}
