package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// MinHitDistance is the smallest accepted hit distance. Secondary rays start
// exactly on a surface; hits closer than this are that same surface.
const MinHitDistance = 1e-4

// Intersector finds ray-scene intersections and records them in RenderStats
type Intersector struct {
	scene *scene.Scene
	stats *RenderStats
}

// NewIntersector creates an intersector over a scene. A nil stats gets a private counter set.
func NewIntersector(s *scene.Scene, stats *RenderStats) *Intersector {
	if stats == nil {
		stats = NewRenderStats()
	}
	return &Intersector{scene: s, stats: stats}
}

// Intersect returns the nearest hit at distance >= MinHitDistance
func (in *Intersector) Intersect(ray core.Ray) (*geometry.HitRecord, bool) {
	var closestHit *geometry.HitRecord
	closestSoFar := math.Inf(1)

	for _, shape := range in.scene.Shapes {
		if hit, isHit := shape.Hit(ray, MinHitDistance, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	in.stats.AddTests(len(in.scene.Shapes))
	if closestHit == nil {
		return nil, false
	}
	in.stats.AddHit()
	return closestHit, true
}

// Transmittance returns the fraction of light, per channel, that survives
// along ray up to maxDistance. Opaque occluders block everything; transparent
// ones pass their transparency tinted by their color.
func (in *Intersector) Transmittance(ray core.Ray, maxDistance float64) core.Vec3 {
	transmittance := core.NewVec3(1, 1, 1)
	tMax := maxDistance - MinHitDistance
	tested := 0
	occluded := false

	for _, shape := range in.scene.Shapes {
		tested++
		hit, isHit := shape.Hit(ray, MinHitDistance, tMax)
		if !isHit {
			continue
		}
		occluded = true

		mat := hit.Material
		if !mat.IsTransparent() {
			transmittance = core.Vec3{}
			break
		}
		transmittance = transmittance.MultiplyVec(mat.Color.Multiply(mat.Transparency()))
	}

	in.stats.AddTests(tested)
	if occluded {
		in.stats.AddHit()
	}
	return transmittance
}
