package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const tinyScene = `{
  "camera": {"position": [0, 0, 3], "lookAt": [0, 0, 0], "width": 16, "height": 8},
  "background": [0.1, 0.2, 0.3],
  "materials": {"white": {"color": [1, 1, 1]}},
  "shapes": [{"type": "sphere", "center": [0, 0, 0], "radius": 1, "material": "white"}],
  "lights": [{"type": "point", "position": [0, 0, 3]}]
}`

func writeScene(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "tiny.json")
	if err := os.WriteFile(path, []byte(tinyScene), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun_SkipsThenMatchesReference(t *testing.T) {
	dir := t.TempDir()
	scenePath := writeScene(t, dir)
	reference := filepath.Join(dir, "reference.png")
	output := filepath.Join(dir, "output.png")
	args := []string{"-scene", scenePath, "-reference", reference, "-output", output, "-width", "16", "-height", "8"}

	var stdout, stderr bytes.Buffer
	if code := run(args, &stdout, &stderr); code != 0 {
		t.Fatalf("Expected first run to pass, got %d: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "SKIP: Reference image not found") {
		t.Errorf("Expected skipped comparison, got:\n%s", stdout.String())
	}

	if err := os.Rename(output, reference); err != nil {
		t.Fatal(err)
	}

	stdout.Reset()
	if code := run(args, &stdout, &stderr); code != 0 {
		t.Fatalf("Expected second run to match, got %d: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "PASS: Images match") {
		t.Errorf("Expected matching images, got:\n%s", stdout.String())
	}
}

func TestRun_ResolutionMismatch(t *testing.T) {
	dir := t.TempDir()
	args := []string{"-scene", writeScene(t, dir), "-output", filepath.Join(dir, "out.png"), "-width", "1920", "-height", "1080"}

	var stdout, stderr bytes.Buffer
	if code := run(args, &stdout, &stderr); code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "resolution mismatch") {
		t.Errorf("Expected resolution failure, got %q", stderr.String())
	}
}

func TestRun_MissingScene(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-scene", filepath.Join(t.TempDir(), "none.json")}, &stdout, &stderr); code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
}
