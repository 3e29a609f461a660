package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/imageio"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/pkg/errors"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	flags.SetOutput(stderr)
	workers := flags.Int("workers", 0, "Number of parallel workers (0 = CPU count)")
	maxDepth := flags.Int("depth", 0, "Maximum reflection/refraction depth (0 = scene or default)")
	tileSize := flags.Int("tile", 0, "Tile edge length in pixels (0 = default)")
	gamma := flags.Float64("gamma", 0, "Output gamma (0 = scene or default)")
	list := flags.Bool("list", false, "List built-in scenes and scene files, then exit")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Whitted Raytracer")
		fmt.Fprintln(stderr, "Usage: raytracer [options] <scene.json|builtin-scene> <output.png>")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		flags.PrintDefaults()
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "The output format follows the extension: .png (default), .bmp, .tiff or .jpg")
	}

	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 1
	}

	if *list {
		if err := listScenes(stdout, "scenes"); err != nil {
			fmt.Fprintf(stderr, "Error listing scenes: %v\n", err)
			return 1
		}
		return 0
	}

	if flags.NArg() != 2 {
		flags.Usage()
		return 1
	}

	overrides := renderer.RenderConfig{
		NumWorkers: *workers,
		TileSize:   *tileSize,
		MaxDepth:   *maxDepth,
		Gamma:      *gamma,
	}
	if err := renderScene(flags.Arg(0), flags.Arg(1), overrides, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// renderScene renders the named scene to outputPath and reports timing and statistics
func renderScene(sceneName, outputPath string, overrides renderer.RenderConfig, stdout io.Writer) error {
	logger := renderer.NewLogger(stdout)
	start := time.Now()

	session, err := createSession(sceneName)
	if err != nil {
		return err
	}
	session.Config = renderer.MergeRenderConfig(session.Config, overrides)

	stats, err := session.Render(logger)
	if err != nil {
		return errors.Wrap(err, "render")
	}

	if err := imageio.Save(outputPath, session.Image); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Total time: %.3f seconds\n", time.Since(start).Seconds())
	if err := stats.Print(stdout); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Render saved as %s\n", outputPath)
	return nil
}

// createSession loads a JSON scene file, or builds a built-in scene by name
func createSession(sceneName string) (*loaders.Session, error) {
	if sceneName == "" {
		return nil, errors.New("no scene given")
	}

	if strings.HasSuffix(strings.ToLower(sceneName), ".json") {
		return loaders.Load(sceneName)
	}

	s, err := scene.NewBuiltinScene(sceneName)
	if err != nil {
		// Fall back to a scene file of that name in the scenes directory
		path := filepath.Join("scenes", sceneName+".json")
		if _, statErr := os.Stat(path); statErr == nil {
			return loaders.Load(path)
		}
		return nil, err
	}
	return loaders.NewSession(s, renderer.RenderConfig{}), nil
}

func listScenes(w io.Writer, dir string) error {
	fmt.Fprintln(w, "Built-in scenes:")
	for _, info := range scene.ListBuiltinScenes() {
		fmt.Fprintf(w, "  %-22s %s\n", info.Name, info.Description)
	}

	files, err := scene.ListSceneFiles(dir)
	if err != nil {
		return err
	}
	if len(files) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Scene files in %s:\n", dir)
		for _, info := range files {
			fmt.Fprintf(w, "  %-22s %s\n", info.Name, info.FilePath)
		}
	}
	return nil
}
