package loaders

import (
	"encoding/json"
	"io"
	"math"
	"os"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/pkg/errors"
)

// MaxImageSide is the largest accepted image width or height
const MaxImageSide = 16384

// SceneFile is the JSON representation of a scene
type SceneFile struct {
	Camera     CameraJSON              `json:"camera"`
	Ambient    *Vec3JSON               `json:"ambient,omitempty"`
	Background *Vec3JSON               `json:"background,omitempty"`
	Materials  map[string]MaterialJSON `json:"materials"`
	Shapes     []ShapeJSON             `json:"shapes"`
	Lights     []LightJSON             `json:"lights"`
	Render     *RenderJSON             `json:"render,omitempty"`
}

// Vec3JSON is a vector written as a three-element array
type Vec3JSON [3]float64

// Vec3 converts to a core vector
func (v Vec3JSON) Vec3() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// CameraJSON holds camera settings. Omitted fields keep their defaults.
type CameraJSON struct {
	Position *Vec3JSON `json:"position,omitempty"`
	LookAt   *Vec3JSON `json:"lookAt,omitempty"`
	Up       *Vec3JSON `json:"up,omitempty"`
	FOV      *float64  `json:"fov,omitempty"`
	Width    int       `json:"width"`
	Height   int       `json:"height"`
}

// MaterialJSON holds surface parameters. Omitted fields take the defaults of
// an opaque, non-reflective material.
type MaterialJSON struct {
	Color           Vec3JSON `json:"color"`
	Reflectivity    float64  `json:"reflectivity,omitempty"`
	RefractiveIndex *float64 `json:"refractiveIndex,omitempty"`
	Opacity         *float64 `json:"opacity,omitempty"`
	Specular        float64  `json:"specular,omitempty"`
	Shininess       *float64 `json:"shininess,omitempty"`
}

// ShapeJSON describes one primitive. Which geometry fields apply depends on Type.
type ShapeJSON struct {
	Type     string     `json:"type"` // "sphere", "plane" or "triangle"
	Material string     `json:"material"`
	Center   *Vec3JSON  `json:"center,omitempty"`
	Radius   float64    `json:"radius,omitempty"`
	Point    *Vec3JSON  `json:"point,omitempty"`
	Normal   *Vec3JSON  `json:"normal,omitempty"`
	Vertices []Vec3JSON `json:"vertices,omitempty"`
}

// LightJSON describes one light source
type LightJSON struct {
	Type      string    `json:"type"` // "point" or "directional"
	Position  *Vec3JSON `json:"position,omitempty"`
	Direction *Vec3JSON `json:"direction,omitempty"`
	Color     *Vec3JSON `json:"color,omitempty"`
	Intensity *float64  `json:"intensity,omitempty"`
}

// RenderJSON overrides renderer defaults for a scene
type RenderJSON struct {
	Workers  int     `json:"workers,omitempty"`
	TileSize int     `json:"tileSize,omitempty"`
	MaxDepth int     `json:"maxDepth,omitempty"`
	Gamma    float64 `json:"gamma,omitempty"`
}

// Load reads a JSON scene file and prepares a render session for it.
// No session is returned on error.
func Load(path string) (*Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open scene")
	}
	defer f.Close()

	session, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load scene %s", path)
	}
	return session, nil
}

// Parse decodes a JSON scene from r and prepares a render session for it
func Parse(r io.Reader) (*Session, error) {
	var file SceneFile
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		return nil, errors.Wrap(err, "decode scene")
	}

	s, config, err := file.Build()
	if err != nil {
		return nil, err
	}
	return NewSession(s, config), nil
}

// Build validates the file and converts it into a scene and render config
func (f *SceneFile) Build() (*scene.Scene, renderer.RenderConfig, error) {
	var config renderer.RenderConfig

	cameraConfig, err := f.Camera.config()
	if err != nil {
		return nil, config, err
	}

	s := scene.NewScene()
	s.CameraConfig = cameraConfig
	if f.Ambient != nil {
		s.Ambient = f.Ambient.Vec3()
	}
	if f.Background != nil {
		s.Background = f.Background.Vec3()
	}

	materials := make(map[string]material.Material, len(f.Materials))
	for name, m := range f.Materials {
		mat := m.material()
		if err := mat.Validate(); err != nil {
			return nil, config, errors.Wrapf(err, "materials.%s", name)
		}
		materials[name] = mat
	}

	for i, shapeJSON := range f.Shapes {
		shape, err := shapeJSON.shape(materials)
		if err != nil {
			return nil, config, errors.Wrapf(err, "shapes[%d]", i)
		}
		s.Add(shape)
	}

	for i, lightJSON := range f.Lights {
		if err := lightJSON.addTo(s); err != nil {
			return nil, config, errors.Wrapf(err, "lights[%d]", i)
		}
	}

	if f.Render != nil {
		if f.Render.Workers < 0 || f.Render.TileSize < 0 || f.Render.MaxDepth < 0 || f.Render.Gamma < 0 {
			return nil, config, errors.New("render: settings must not be negative")
		}
		config = renderer.RenderConfig{
			NumWorkers: f.Render.Workers,
			TileSize:   f.Render.TileSize,
			MaxDepth:   f.Render.MaxDepth,
			Gamma:      f.Render.Gamma,
		}
	}

	return s, config, nil
}

func (c CameraJSON) config() (geometry.CameraConfig, error) {
	config := geometry.DefaultCameraConfig()
	if c.Width <= 0 || c.Height <= 0 {
		return config, errors.Errorf("camera: resolution %dx%d must be positive", c.Width, c.Height)
	}
	if c.Width > MaxImageSide || c.Height > MaxImageSide {
		return config, errors.Errorf("camera: resolution %dx%d too large, at most %d pixels per side",
			c.Width, c.Height, MaxImageSide)
	}
	config.Width = c.Width
	config.Height = c.Height

	if c.Position != nil {
		config.Center = c.Position.Vec3()
	}
	if c.LookAt != nil {
		config.LookAt = c.LookAt.Vec3()
	}
	if c.Up != nil {
		config.Up = c.Up.Vec3()
	}
	if c.FOV != nil {
		config.FOV = *c.FOV
	}

	if !(config.FOV > 0 && config.FOV < 180) {
		return config, errors.Errorf("camera.fov: %g must be between 0 and 180 degrees", config.FOV)
	}
	if config.LookAt.Subtract(config.Center).Length() == 0 {
		return config, errors.New("camera.lookAt: must differ from camera.position")
	}
	return config, nil
}

func (m MaterialJSON) material() material.Material {
	mat := material.Material{
		Color:           m.Color.Vec3(),
		Reflectivity:    m.Reflectivity,
		RefractiveIndex: 1,
		Opacity:         1,
		Specular:        m.Specular,
		Shininess:       material.DefaultShininess,
	}
	if m.RefractiveIndex != nil {
		mat.RefractiveIndex = *m.RefractiveIndex
	}
	if m.Opacity != nil {
		mat.Opacity = *m.Opacity
	}
	if m.Shininess != nil {
		mat.Shininess = *m.Shininess
	}
	return mat
}

func (sj ShapeJSON) shape(materials map[string]material.Material) (geometry.Shape, error) {
	mat, ok := materials[sj.Material]
	if !ok {
		return nil, errors.Errorf("material: unknown material %q", sj.Material)
	}

	switch sj.Type {
	case "sphere":
		if sj.Center == nil {
			return nil, errors.New("center: required for spheres")
		}
		if !(sj.Radius > 0) || math.IsInf(sj.Radius, 0) {
			return nil, errors.Errorf("radius: %g must be positive", sj.Radius)
		}
		return geometry.NewSphere(sj.Center.Vec3(), sj.Radius, mat), nil

	case "plane":
		if sj.Point == nil || sj.Normal == nil {
			return nil, errors.New("point and normal: required for planes")
		}
		if sj.Normal.Vec3().Length() == 0 {
			return nil, errors.New("normal: must not be zero")
		}
		return geometry.NewPlane(sj.Point.Vec3(), sj.Normal.Vec3(), mat), nil

	case "triangle":
		if len(sj.Vertices) != 3 {
			return nil, errors.Errorf("vertices: expected 3, got %d", len(sj.Vertices))
		}
		return geometry.NewTriangle(sj.Vertices[0].Vec3(), sj.Vertices[1].Vec3(), sj.Vertices[2].Vec3(), mat), nil
	}

	return nil, errors.Errorf("type: unknown shape type %q", sj.Type)
}

func (lj LightJSON) addTo(s *scene.Scene) error {
	color := core.NewVec3(1, 1, 1)
	if lj.Color != nil {
		color = lj.Color.Vec3()
	}
	intensity := 1.0
	if lj.Intensity != nil {
		intensity = *lj.Intensity
	}
	if intensity < 0 {
		return errors.Errorf("intensity: %g must not be negative", intensity)
	}

	switch lj.Type {
	case "point":
		if lj.Position == nil {
			return errors.New("position: required for point lights")
		}
		s.AddPointLight(lj.Position.Vec3(), color, intensity)
		return nil

	case "directional":
		if lj.Direction == nil || lj.Direction.Vec3().Length() == 0 {
			return errors.New("direction: required and non-zero for directional lights")
		}
		s.AddDirectionalLight(lj.Direction.Vec3(), color, intensity)
		return nil
	}

	return errors.Errorf("type: unknown light type %q", lj.Type)
}
