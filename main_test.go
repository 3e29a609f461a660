package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func TestCreateSession(t *testing.T) {
	tests := []struct {
		name        string
		sceneName   string
		expectError bool
	}{
		// Built-in scenes
		{"default scene", "two-spheres-on-plane", false},
		{"mirror box", "mirror-box", false},
		{"glass", "glass", false},
		{"empty", "empty", false},

		// Scene files
		{"direct JSON path", "scenes/two-spheres-on-plane.json", false},
		{"glass JSON path", "scenes/glass.json", false},

		// Invalid scenes
		{"unknown scene", "nonexistent", true},
		{"missing JSON path", "scenes/nonexistent.json", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := createSession(tt.sceneName)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene '%s', but got none", tt.sceneName)
				}
				if session != nil {
					t.Errorf("Expected nil session for invalid scene '%s'", tt.sceneName)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene '%s': %v", tt.sceneName, err)
			}
			if session.Image.Width <= 0 || session.Image.Height <= 0 {
				t.Errorf("Expected positive resolution, got %dx%d", session.Image.Width, session.Image.Height)
			}
			if session.Camera.Width() != session.Image.Width || session.Camera.Height() != session.Image.Height {
				t.Errorf("Camera and image resolution differ")
			}
		})
	}
}

func TestCreateSession_SceneFileResolution(t *testing.T) {
	session, err := createSession("scenes/two-spheres-on-plane.json")
	if err != nil {
		t.Fatal(err)
	}
	if session.Image.Width != 1920 || session.Image.Height != 1080 {
		t.Errorf("Expected 1920x1080, got %dx%d", session.Image.Width, session.Image.Height)
	}
}

func TestRun_RendersAndReports(t *testing.T) {
	output := filepath.Join(t.TempDir(), "empty.png")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-workers", "2", "empty", output}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("Expected exit code 0, got %d: %s", code, stderr.String())
	}

	if _, err := os.Stat(output); err != nil {
		t.Errorf("Expected output image: %v", err)
	}
	if !regexp.MustCompile(`Total time: [0-9]+\.[0-9]{3} seconds`).MatchString(stdout.String()) {
		t.Errorf("Expected total time line, got:\n%s", stdout.String())
	}
	if !strings.Contains(stdout.String(), "Performance Statistics:") {
		t.Errorf("Expected statistics report, got:\n%s", stdout.String())
	}
}

func TestRun_Failures(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", nil},
		{"missing output", []string{"empty"}},
		{"unknown scene", []string{"nonexistent", filepath.Join(t.TempDir(), "out.png")}},
		{"unwritable output", []string{"empty", filepath.Join(t.TempDir(), "missing", "out.png")}},
		{"bad flag", []string{"-bogus", "empty", "out.png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != 1 {
				t.Errorf("Expected exit code 1, got %d", code)
			}
		})
	}
}

func TestRun_List(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-list"}, &stdout, &stderr); code != 0 {
		t.Fatalf("Expected exit code 0, got %d", code)
	}
	for _, name := range []string{"two-spheres-on-plane", "mirror-box", "glass", "empty"} {
		if !strings.Contains(stdout.String(), name) {
			t.Errorf("Expected %s in listing:\n%s", name, stdout.String())
		}
	}
}
