package imageio

import (
	"fmt"
	"io"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/pkg/errors"
)

const (
	// DefaultTolerance is the mean per-channel difference, as a fraction of
	// full scale, above which a pixel counts as different
	DefaultTolerance = 0.01
	// MaxDifferentPercent is the share of differing pixels below which two
	// images are still considered equal
	MaxDifferentPercent = 0.1
)

// ComparisonResult summarizes the pixel differences between two images
type ComparisonResult struct {
	DimensionsMatch   bool
	ExpectedWidth     int
	ExpectedHeight    int
	ActualWidth       int
	ActualHeight      int
	TotalPixels       int
	DifferentPixels   int
	MaxDifference     float64 // Largest pixel difference in [0,1]
	AverageDifference float64 // Mean difference over differing pixels only
}

// PercentDifferent returns the share of differing pixels in percent
func (r ComparisonResult) PercentDifferent() float64 {
	if r.TotalPixels == 0 {
		return 0
	}
	return float64(r.DifferentPixels) / float64(r.TotalPixels) * 100.0
}

// Equal reports whether the images match within tolerance
func (r ComparisonResult) Equal() bool {
	return r.DimensionsMatch && r.PercentDifferent() < MaxDifferentPercent
}

// Print writes the comparison report to w
func (r ComparisonResult) Print(w io.Writer) {
	if !r.DimensionsMatch {
		fmt.Fprintf(w, "Image dimensions do not match: %dx%d vs %dx%d\n",
			r.ExpectedWidth, r.ExpectedHeight, r.ActualWidth, r.ActualHeight)
		return
	}

	fmt.Fprintf(w, "Comparison results:\n")
	fmt.Fprintf(w, "  Total pixels: %d\n", r.TotalPixels)
	fmt.Fprintf(w, "  Different pixels: %d (%.4f%%)\n", r.DifferentPixels, r.PercentDifferent())
	if r.DifferentPixels > 0 {
		fmt.Fprintf(w, "  Average difference: %.6f\n", r.AverageDifference)
		fmt.Fprintf(w, "  Max difference: %.6f\n", r.MaxDifference)
	}
	if r.Equal() {
		fmt.Fprintf(w, "Images are considered EQUAL (within tolerance)\n")
	} else {
		fmt.Fprintf(w, "Images are DIFFERENT (exceeds tolerance)\n")
	}
}

// Compare measures how far actual is from expected. A pixel differs when the
// mean absolute difference of its RGB channels exceeds tolerance; alpha is ignored.
func Compare(expected, actual *renderer.Image, tolerance float64) ComparisonResult {
	result := ComparisonResult{
		ExpectedWidth:  expected.Width,
		ExpectedHeight: expected.Height,
		ActualWidth:    actual.Width,
		ActualHeight:   actual.Height,
	}
	if expected.Width != actual.Width || expected.Height != actual.Height ||
		len(expected.Pix) != len(actual.Pix) {
		return result
	}
	result.DimensionsMatch = true
	result.TotalPixels = expected.Width * expected.Height

	totalDifference := 0.0
	for i := 0; i < len(expected.Pix); i += renderer.Channels {
		diff := 0.0
		for c := 0; c < 3; c++ {
			diff += math.Abs(float64(expected.Pix[i+c])-float64(actual.Pix[i+c])) / 255.0
		}
		diff /= 3

		result.MaxDifference = math.Max(result.MaxDifference, diff)
		if diff > tolerance {
			result.DifferentPixels++
			totalDifference += diff
		}
	}

	if result.DifferentPixels > 0 {
		result.AverageDifference = totalDifference / float64(result.DifferentPixels)
	}
	return result
}

// CompareFiles loads both images and compares them
func CompareFiles(expectedPath, actualPath string, tolerance float64) (ComparisonResult, error) {
	expected, err := Load(expectedPath)
	if err != nil {
		return ComparisonResult{}, errors.Wrap(err, "expected image")
	}
	actual, err := Load(actualPath)
	if err != nil {
		return ComparisonResult{}, errors.Wrap(err, "actual image")
	}
	return Compare(expected, actual, tolerance), nil
}
