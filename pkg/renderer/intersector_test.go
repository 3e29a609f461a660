package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

var gray = material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5))

func TestIntersector_NearestHitAndCounters(t *testing.T) {
	s := scene.NewScene()
	s.AddSphere(core.NewVec3(0, 0, -10), 1, gray)
	s.AddSphere(core.NewVec3(0, 0, -5), 1, gray)
	s.AddSphere(core.NewVec3(5, 0, -5), 1, gray)

	stats := NewRenderStats()
	in := NewIntersector(s, stats)

	hit, isHit := in.Intersect(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)))
	if !isHit {
		t.Fatal("Expected hit")
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected nearest hit at t=4, got %f", hit.T)
	}

	if _, isHit := in.Intersect(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))); isHit {
		t.Error("Expected miss")
	}

	snapshot := stats.Snapshot()
	if snapshot.IntersectionTests != 6 {
		t.Errorf("Expected 6 tests, got %d", snapshot.IntersectionTests)
	}
	if snapshot.IntersectionsFound != 1 {
		t.Errorf("Expected 1 hit, got %d", snapshot.IntersectionsFound)
	}
	if snapshot.RaysGenerated != 0 {
		t.Errorf("Intersection queries must not count as generated rays, got %d", snapshot.RaysGenerated)
	}
}

func TestIntersector_IgnoresSelfIntersection(t *testing.T) {
	s := scene.NewScene()
	s.AddPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), gray)
	in := NewIntersector(s, nil)

	// Ray leaving the plane surface must not hit the plane again
	ray := core.NewRay(core.NewVec3(0, -1e-9, 0), core.NewVec3(1, 1, 0))
	if hit, isHit := in.Intersect(ray); isHit {
		t.Errorf("Expected no self-intersection, got t=%g", hit.T)
	}
}

func TestIntersector_Transmittance(t *testing.T) {
	origin := core.NewVec3(0, 0, 0)
	up := core.NewVec3(0, 1, 0)

	tests := []struct {
		name     string
		occluder material.Material
		distance float64
		expected core.Vec3
	}{
		{"opaque blocks", gray, 10, core.NewVec3(0, 0, 0)},
		{"glass attenuates", material.NewGlass(core.NewVec3(1, 0.5, 0.25), 1.5), 10, core.NewVec3(1, 0.5, 0.25)},
		{"half opaque", material.NewMaterial(core.NewVec3(1, 1, 1), 0, 1.5, 0.5), 10, core.NewVec3(0.5, 0.5, 0.5)},
		{"occluder beyond light", gray, 2, core.NewVec3(1, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := scene.NewScene()
			s.AddSphere(core.NewVec3(0, 5, 0), 1, tt.occluder)

			got := NewIntersector(s, nil).Transmittance(core.NewRay(origin, up), tt.distance)
			if !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
