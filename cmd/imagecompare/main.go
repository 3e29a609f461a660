// Command imagecompare reports whether two images match within a tolerance.
// It exits with status 0 when they are considered equal and 1 otherwise.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-whitted-raytracer/pkg/imageio"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("imagecompare", flag.ContinueOnError)
	flags.SetOutput(stderr)
	tolerance := flags.Float64("tolerance", imageio.DefaultTolerance, "Mean channel difference (0-1) above which a pixel differs")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: imagecompare [options] <image1> <image2>")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() != 2 {
		flags.Usage()
		return 1
	}

	first, second := flags.Arg(0), flags.Arg(1)
	fmt.Fprintln(stdout, "Comparing images:")
	fmt.Fprintf(stdout, "  Image 1: %s\n", first)
	fmt.Fprintf(stdout, "  Image 2: %s\n", second)
	fmt.Fprintln(stdout)

	result, err := imageio.CompareFiles(first, second, *tolerance)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading images: %v\n", err)
		return 1
	}

	result.Print(stdout)
	if !result.Equal() {
		return 1
	}
	return 0
}
