package scene

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewBuiltinScene(t *testing.T) {
	tests := []struct {
		name        string
		expectError bool
		minShapes   int
	}{
		{"two-spheres-on-plane", false, 3},
		{"mirror-box", false, 7},
		{"glass", false, 5},
		{"empty", false, 0},
		{"nonexistent", true, 0},
		{"", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewBuiltinScene(tt.name)
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene '%s'", tt.name)
				}
				if s != nil {
					t.Errorf("Expected nil scene for '%s', got %T", tt.name, s)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for scene '%s': %v", tt.name, err)
			}
			if s.GetPrimitiveCount() < tt.minShapes {
				t.Errorf("Expected at least %d shapes, got %d", tt.minShapes, s.GetPrimitiveCount())
			}
			if s.CameraConfig.Width <= 0 || s.CameraConfig.Height <= 0 {
				t.Errorf("Scene camera resolution should be positive, got %dx%d", s.CameraConfig.Width, s.CameraConfig.Height)
			}
			for i, shape := range s.Shapes {
				if err := shape.GetMaterial().Validate(); err != nil {
					t.Errorf("Shape %d has invalid material: %v", i, err)
				}
			}
		})
	}
}

func TestListBuiltinScenes(t *testing.T) {
	scenes := ListBuiltinScenes()
	if len(scenes) != len(builtinScenes) {
		t.Fatalf("Expected %d scenes, got %d", len(builtinScenes), len(scenes))
	}
	for i := 1; i < len(scenes); i++ {
		if scenes[i-1].Name >= scenes[i].Name {
			t.Errorf("Scenes not sorted: %s before %s", scenes[i-1].Name, scenes[i].Name)
		}
	}
}

func TestListSceneFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.json", "a.json", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	scenes, err := ListSceneFiles(dir)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(scenes) != 2 || scenes[0].Name != "a" || scenes[1].Name != "b" {
		t.Errorf("Expected [a b], got %+v", scenes)
	}

	missing, err := ListSceneFiles(filepath.Join(dir, "missing"))
	if err != nil || len(missing) != 0 {
		t.Errorf("Expected empty list for missing dir, got %v, %v", missing, err)
	}
}
