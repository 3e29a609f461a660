package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Center core.Vec3 // Camera position
	LookAt core.Vec3 // Point the camera looks at
	Up     core.Vec3 // Approximate up direction
	FOV    float64   // Horizontal field of view in degrees
	Width  int       // Image width in pixels
	Height int       // Image height in pixels
}

// DefaultCameraConfig returns a camera at the origin looking down -Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Center: core.NewVec3(0, 0, 0),
		LookAt: core.NewVec3(0, 0, -1),
		Up:     core.NewVec3(0, 1, 0),
		FOV:    60,
		Width:  400,
		Height: 225,
	}
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Center != (core.Vec3{}) {
		result.Center = override.Center
	}
	if override.LookAt != (core.Vec3{}) {
		result.LookAt = override.LookAt
	}
	if override.Up != (core.Vec3{}) {
		result.Up = override.Up
	}
	if override.FOV != 0 {
		result.FOV = override.FOV
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	return result
}

// Camera generates primary rays through the pixels of an image plane
type Camera struct {
	config     CameraConfig
	origin     core.Vec3
	forward    core.Vec3 // Unit view direction
	right      core.Vec3 // Unit right vector
	up         core.Vec3 // Unit up vector, orthogonal to forward and right
	halfWidth  float64   // Half-extent of the image plane at distance 1
	halfHeight float64
}

// NewCamera creates a camera with an orthonormal basis derived from the config
func NewCamera(config CameraConfig) *Camera {
	forward := config.LookAt.Subtract(config.Center).Normalize()
	if forward == (core.Vec3{}) {
		forward = core.NewVec3(0, 0, -1)
	}

	right := forward.Cross(config.Up).Normalize()
	if right == (core.Vec3{}) {
		// Up is parallel to the view direction, pick any perpendicular axis
		fallback := core.NewVec3(0, 1, 0)
		if math.Abs(forward.Y) > 0.9 {
			fallback = core.NewVec3(0, 0, -1)
		}
		right = forward.Cross(fallback).Normalize()
	}
	up := right.Cross(forward)

	halfWidth := math.Tan(config.FOV * math.Pi / 360.0)
	halfHeight := halfWidth
	if config.Width > 0 {
		halfHeight = halfWidth * float64(config.Height) / float64(config.Width)
	}

	return &Camera{
		config:     config,
		origin:     config.Center,
		forward:    forward,
		right:      right,
		up:         up,
		halfWidth:  halfWidth,
		halfHeight: halfHeight,
	}
}

// GetRay returns the primary ray through the center of pixel (px, py).
// Row 0 is the top of the image.
func (c *Camera) GetRay(px, py int) core.Ray {
	u := (2*(float64(px)+0.5)/float64(c.config.Width) - 1) * c.halfWidth
	v := (1 - 2*(float64(py)+0.5)/float64(c.config.Height)) * c.halfHeight

	direction := c.forward.
		Add(c.right.Multiply(u)).
		Add(c.up.Multiply(v))

	return core.NewRay(c.origin, direction)
}

// GetCameraForward returns the unit forward direction of the camera
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.forward
}

// GetCameraBasis returns the right, up and forward unit vectors
func (c *Camera) GetCameraBasis() (right, up, forward core.Vec3) {
	return c.right, c.up, c.forward
}

// Width returns the target image width
func (c *Camera) Width() int {
	return c.config.Width
}

// Height returns the target image height
func (c *Camera) Height() int {
	return c.config.Height
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}
