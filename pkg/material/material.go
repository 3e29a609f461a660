package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/pkg/errors"
)

// Material describes how a surface responds to light
type Material struct {
	Color           core.Vec3 // Diffuse color, each channel in [0,1]
	Reflectivity    float64   // Fraction of mirror reflection blended in, [0,1]
	RefractiveIndex float64   // Index of refraction, >= 1
	Opacity         float64   // 1 = opaque, 0 = fully transmissive
	Specular        float64   // Phong highlight weight, [0,1]
	Shininess       float64   // Phong exponent, >= 1
}

// DefaultShininess is the Phong exponent used when none is given
const DefaultShininess = 32.0

// NewMaterial creates a material, clamping every parameter into its valid range
func NewMaterial(color core.Vec3, reflectivity, refractiveIndex, opacity float64) Material {
	m := Material{
		Color:           color,
		Reflectivity:    reflectivity,
		RefractiveIndex: refractiveIndex,
		Opacity:         opacity,
		Shininess:       DefaultShininess,
	}
	return m.Clamped()
}

// NewDiffuse creates an opaque, non-reflective material
func NewDiffuse(color core.Vec3) Material {
	return NewMaterial(color, 0, 1, 1)
}

// WithSpecular returns a copy of the material with a Phong highlight
func (m Material) WithSpecular(specular, shininess float64) Material {
	m.Specular = specular
	m.Shininess = shininess
	return m.Clamped()
}

// Transparency returns the fraction of light transmitted through the surface
func (m Material) Transparency() float64 {
	return 1 - m.Opacity
}

// IsReflective reports whether secondary reflection rays should be traced
func (m Material) IsReflective() bool {
	return m.Reflectivity > 0
}

// IsTransparent reports whether secondary refraction rays should be traced
func (m Material) IsTransparent() bool {
	return m.Opacity < 1
}

// Clamped returns a copy with every parameter forced into its valid range
func (m Material) Clamped() Material {
	m.Color = m.Color.Clamp(0, 1)
	m.Reflectivity = clamp01(m.Reflectivity)
	m.Opacity = clamp01(m.Opacity)
	m.Specular = clamp01(m.Specular)
	if !(m.RefractiveIndex >= 1) {
		m.RefractiveIndex = 1
	}
	if !(m.Shininess >= 1) {
		m.Shininess = DefaultShininess
	}
	return m
}

// Validate reports the first parameter outside its valid range
func (m Material) Validate() error {
	if !m.Color.IsFinite() ||
		m.Color.X < 0 || m.Color.X > 1 ||
		m.Color.Y < 0 || m.Color.Y > 1 ||
		m.Color.Z < 0 || m.Color.Z > 1 {
		return errors.Errorf("color %v outside [0,1]", m.Color)
	}
	if !inUnitRange(m.Reflectivity) {
		return errors.Errorf("reflectivity %g outside [0,1]", m.Reflectivity)
	}
	if !inUnitRange(m.Opacity) {
		return errors.Errorf("opacity %g outside [0,1]", m.Opacity)
	}
	if !inUnitRange(m.Specular) {
		return errors.Errorf("specular %g outside [0,1]", m.Specular)
	}
	if !(m.RefractiveIndex >= 1) || math.IsInf(m.RefractiveIndex, 0) {
		return errors.Errorf("refractive index %g must be >= 1", m.RefractiveIndex)
	}
	return nil
}

func inUnitRange(v float64) bool {
	return v >= 0 && v <= 1
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return max(0, min(1, v))
}
