package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Shader computes ray colors by recursive Whitted-style light transport
type Shader struct {
	scene       *scene.Scene
	intersector *Intersector
	maxDepth    int
}

// NewShader creates a shader; recursion stops once depth reaches maxDepth
func NewShader(s *scene.Scene, intersector *Intersector, maxDepth int) *Shader {
	return &Shader{
		scene:       s,
		intersector: intersector,
		maxDepth:    maxDepth,
	}
}

// Shade returns the color seen along ray. Primary rays use depth 0.
func (sh *Shader) Shade(ray core.Ray, depth int) core.Vec3 {
	hit, isHit := sh.intersector.Intersect(ray)
	if !isHit {
		return sh.scene.Background
	}

	diffuse, specular := sh.directLighting(ray, hit)
	if depth >= sh.maxDepth {
		return diffuse.Add(specular)
	}

	mat := hit.Material
	color := diffuse
	if mat.IsReflective() {
		color = color.Lerp(sh.reflectedColor(ray, hit, depth), mat.Reflectivity)
	}
	if mat.IsTransparent() {
		color = color.Lerp(sh.refractedColor(ray, hit, depth), mat.Transparency())
	}

	// Highlights sit on top of the surface and are not blended away
	return color.Add(specular)
}

// directLighting returns the ambient plus Lambertian term and the Phong
// specular term from every light visible through the shadow rays
func (sh *Shader) directLighting(ray core.Ray, hit *geometry.HitRecord) (diffuse, specular core.Vec3) {
	mat := hit.Material
	diffuse = sh.scene.Ambient.MultiplyVec(mat.Color)
	viewDir := ray.Direction.Negate()

	for _, light := range sh.scene.Lights {
		sample := light.Sample(hit.Point)

		cosine := sample.Direction.Dot(hit.Normal)
		if cosine <= 0 {
			continue // Light is behind the surface
		}

		shadowRay := core.NewRay(hit.Point, sample.Direction)
		transmittance := sh.intersector.Transmittance(shadowRay, sample.Distance)
		if transmittance == (core.Vec3{}) {
			continue
		}
		incoming := sample.Radiance.MultiplyVec(transmittance)

		diffuse = diffuse.Add(mat.Color.MultiplyVec(incoming).Multiply(cosine))

		if mat.Specular > 0 {
			reflected := sample.Direction.Negate().Reflect(hit.Normal)
			if alignment := reflected.Dot(viewDir); alignment > 0 {
				specular = specular.Add(incoming.Multiply(mat.Specular * math.Pow(alignment, mat.Shininess)))
			}
		}
	}

	return diffuse, specular
}

// reflectedColor traces the mirror reflection of ray about the hit normal
func (sh *Shader) reflectedColor(ray core.Ray, hit *geometry.HitRecord, depth int) core.Vec3 {
	reflected := core.NewRay(hit.Point, ray.Direction.Reflect(hit.Normal))
	return sh.Shade(reflected, depth+1)
}

// refractedColor traces the transmitted ray, filtered by the material color.
// Total internal reflection sends the ray along the mirror direction instead.
func (sh *Shader) refractedColor(ray core.Ray, hit *geometry.HitRecord, depth int) core.Vec3 {
	mat := hit.Material
	direction, ok := material.Refract(ray.Direction, hit.Normal, mat.RefractionRatio(hit.FrontFace))
	if !ok {
		direction = ray.Direction.Reflect(hit.Normal)
	}
	refracted := core.NewRay(hit.Point, direction)
	return sh.Shade(refracted, depth+1).MultiplyVec(mat.Color)
}
