package renderer

import (
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// RenderStats counts rays and intersection tests during one render.
// Counters may be incremented from any worker; Reset and Snapshot must not
// race with an active render.
type RenderStats struct {
	raysGenerated      atomic.Int64
	intersectionTests  atomic.Int64
	intersectionsFound atomic.Int64
}

// NewRenderStats creates zeroed render statistics
func NewRenderStats() *RenderStats {
	return &RenderStats{}
}

// Reset zeroes all counters
func (s *RenderStats) Reset() {
	s.raysGenerated.Store(0)
	s.intersectionTests.Store(0)
	s.intersectionsFound.Store(0)
}

// AddRay records one generated primary ray
func (s *RenderStats) AddRay() {
	s.raysGenerated.Add(1)
}

// AddTests records n ray-primitive intersection tests
func (s *RenderStats) AddTests(n int) {
	s.intersectionTests.Add(int64(n))
}

// AddHit records one successful intersection query
func (s *RenderStats) AddHit() {
	s.intersectionsFound.Add(1)
}

// Snapshot returns the current counter values
func (s *RenderStats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		RaysGenerated:      s.raysGenerated.Load(),
		IntersectionTests:  s.intersectionTests.Load(),
		IntersectionsFound: s.intersectionsFound.Load(),
	}
}

// StatsSnapshot is a point-in-time copy of RenderStats
type StatsSnapshot struct {
	RaysGenerated      int64 // Primary rays generated by the camera
	IntersectionTests  int64 // Ray-primitive tests performed
	IntersectionsFound int64 // Queries that found a hit
}

// TestsPerRay returns intersection tests per generated ray, 0 without rays
func (s StatsSnapshot) TestsPerRay() float64 {
	if s.RaysGenerated == 0 {
		return 0
	}
	return float64(s.IntersectionTests) / float64(s.RaysGenerated)
}

// HitRate returns the percentage of tests that found a hit, 0 without tests
func (s StatsSnapshot) HitRate() float64 {
	if s.IntersectionTests == 0 {
		return 0
	}
	return float64(s.IntersectionsFound) * 100.0 / float64(s.IntersectionTests)
}

// String formats the human-readable performance report
func (s StatsSnapshot) String() string {
	var b strings.Builder
	b.WriteString("\nPerformance Statistics:\n")
	fmt.Fprintf(&b, "  Rays generated:        %d\n", s.RaysGenerated)
	fmt.Fprintf(&b, "  Intersection tests:    %d\n", s.IntersectionTests)
	fmt.Fprintf(&b, "  Intersections found:   %d\n", s.IntersectionsFound)
	if s.RaysGenerated > 0 {
		fmt.Fprintf(&b, "  Tests per ray:         %.2f\n", s.TestsPerRay())
	}
	if s.IntersectionTests > 0 {
		fmt.Fprintf(&b, "  Hit rate:              %.2f%%\n", s.HitRate())
	}
	return b.String()
}

// Print writes the performance report to w
func (s StatsSnapshot) Print(w io.Writer) error {
	_, err := io.WriteString(w, s.String())
	return err
}

// Log writes the performance report through logger
func (s StatsSnapshot) Log(logger core.Logger) {
	logger.Printf("%s", s.String())
}
