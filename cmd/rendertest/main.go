// Command rendertest renders a scene end to end, checks its resolution and
// compares the result against a reference image when one exists.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/imageio"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/pkg/errors"
)

const banner = "================================"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	scenePath      string
	referencePath  string
	outputPath     string
	expectedWidth  int
	expectedHeight int
	workers        int
	tolerance      float64
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	flags := flag.NewFlagSet("rendertest", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&opts.scenePath, "scene", filepath.Join("scenes", "two-spheres-on-plane.json"), "Scene file to render")
	flags.StringVar(&opts.referencePath, "reference", filepath.Join("testdata", "reference", "two-spheres-on-plane.png"), "Reference image")
	flags.StringVar(&opts.outputPath, "output", filepath.Join(os.TempDir(), "two-spheres-test-output.png"), "Where to write the rendered image")
	flags.IntVar(&opts.expectedWidth, "width", 1920, "Expected image width")
	flags.IntVar(&opts.expectedHeight, "height", 1080, "Expected image height")
	flags.IntVar(&opts.workers, "workers", 0, "Number of parallel workers (0 = CPU count)")
	flags.Float64Var(&opts.tolerance, "tolerance", imageio.DefaultTolerance, "Per-pixel comparison tolerance")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, banner)
	fmt.Fprintln(stdout, "=== Raytracer E2E Test Suite ===")
	fmt.Fprintln(stdout, banner)
	fmt.Fprintln(stdout)

	if err := runSuite(opts, stdout); err != nil {
		fmt.Fprintf(stderr, "FAIL: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, banner)
	fmt.Fprintln(stdout, "All tests PASSED")
	fmt.Fprintln(stdout, banner)
	fmt.Fprintln(stdout)
	return 0
}

func runSuite(opts options, stdout io.Writer) error {
	fmt.Fprintln(stdout, "[Test 1] Loading scene and checking resolution...")
	fmt.Fprintf(stdout, "  Scene: %s\n", opts.scenePath)
	fmt.Fprintf(stdout, "  Expected: %dx%d\n", opts.expectedWidth, opts.expectedHeight)

	session, err := loaders.Load(opts.scenePath)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "  Actual: %dx%d\n", session.Image.Width, session.Image.Height)
	if session.Image.Width != opts.expectedWidth || session.Image.Height != opts.expectedHeight {
		return errors.Errorf("resolution mismatch: expected %dx%d, got %dx%d",
			opts.expectedWidth, opts.expectedHeight, session.Image.Width, session.Image.Height)
	}
	fmt.Fprintln(stdout, "  PASS: Resolution matches")
	fmt.Fprintln(stdout)

	fmt.Fprintln(stdout, "[Test 2] Rendering scene...")
	session.Config = renderer.MergeRenderConfig(session.Config, renderer.RenderConfig{NumWorkers: opts.workers})
	start := time.Now()
	stats, err := session.Render(renderer.NewLogger(io.Discard))
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "  Render time: %d ms\n", time.Since(start).Milliseconds())
	fmt.Fprintf(stdout, "  Rays: %d, tests: %d, hits: %d\n",
		stats.RaysGenerated, stats.IntersectionTests, stats.IntersectionsFound)
	fmt.Fprintln(stdout, "  PASS: Scene rendered successfully")
	fmt.Fprintln(stdout)

	fmt.Fprintln(stdout, "[Test 3] Writing output image...")
	fmt.Fprintf(stdout, "  Output: %s\n", opts.outputPath)
	if err := imageio.Save(opts.outputPath, session.Image); err != nil {
		return err
	}
	fmt.Fprintln(stdout, "  PASS: Image written")
	fmt.Fprintln(stdout)

	fmt.Fprintln(stdout, "[Test 4] Comparing with reference image...")
	fmt.Fprintf(stdout, "  Reference: %s\n", opts.referencePath)
	if _, err := os.Stat(opts.referencePath); os.IsNotExist(err) {
		fmt.Fprintln(stdout, "  SKIP: Reference image not found (first run)")
		fmt.Fprintf(stdout, "  To use: cp %s %s\n", opts.outputPath, opts.referencePath)
		fmt.Fprintln(stdout)
		return nil
	}

	reference, err := imageio.Load(opts.referencePath)
	if err != nil {
		return err
	}
	result := imageio.Compare(reference, session.Image, opts.tolerance)
	result.Print(stdout)
	if !result.Equal() {
		return errors.Errorf("images differ: %d of %d pixels", result.DifferentPixels, result.TotalPixels)
	}
	fmt.Fprintln(stdout, "  PASS: Images match")
	fmt.Fprintln(stdout)
	return nil
}
