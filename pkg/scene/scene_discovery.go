package scene

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	Name        string // Scene name used on the command line
	Description string // One-line description
	Type        string // "builtin" or "json"
	FilePath    string // Path to the scene file (json type only)
}

type builtinScene struct {
	description string
	create      func() *Scene
}

var builtinScenes = map[string]builtinScene{
	"two-spheres-on-plane": {"Two spheres on a reflective ground plane", func() *Scene { return NewDefaultScene() }},
	"mirror-box":           {"Camera inside a box of six mirrors", NewMirrorBoxScene},
	"glass":                {"Glass sphere refracting colored spheres", NewGlassScene},
	"empty":                {"No geometry, background only", NewEmptyScene},
}

// NewBuiltinScene creates the built-in scene with the given name
func NewBuiltinScene(name string) (*Scene, error) {
	builtin, ok := builtinScenes[name]
	if !ok {
		return nil, errors.Errorf("unknown scene %q", name)
	}
	return builtin.create(), nil
}

// ListBuiltinScenes returns the built-in scenes sorted by name
func ListBuiltinScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for name, builtin := range builtinScenes {
		scenes = append(scenes, SceneInfo{
			Name:        name,
			Description: builtin.description,
			Type:        "builtin",
		})
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes
}

// ListSceneFiles returns the JSON scene files in dir sorted by name.
// A missing directory yields an empty list.
func ListSceneFiles(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, errors.Wrapf(err, "scan scenes directory %s", dir)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, filePath := range files {
		scenes = append(scenes, SceneInfo{
			Name:     strings.TrimSuffix(filepath.Base(filePath), ".json"),
			Type:     "json",
			FilePath: filePath,
		})
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes, nil
}
