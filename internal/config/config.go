// Package config handles viewer configuration loading and management.
package config

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/solidview/pkg/math"
	"github.com/Faultbox/solidview/pkg/solid"
)

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Render  RenderConfig  `yaml:"render"`
	Scene   SceneConfig   `yaml:"scene"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// CameraConfig holds orbit camera settings.
type CameraConfig struct {
	Radius            float32 `yaml:"radius"` // 0 = fit the scene
	MinRadius         float32 `yaml:"min_radius"`
	MovementPerSecond float32 `yaml:"movement_per_second"` // zoom speed, units per second
	MouseSensitivity  float32 `yaml:"mouse_sensitivity"`   // radians per pixel
	FieldOfView       float32 `yaml:"fov"`                 // degrees
}

// RenderConfig holds shading settings.
type RenderConfig struct {
	ClearColor     [3]float32 `yaml:"clear_color"`
	LightAzimuth   float32    `yaml:"light_azimuth"`   // degrees around Y
	LightElevation float32    `yaml:"light_elevation"` // degrees above the horizon
	Diffuse        [3]float32 `yaml:"diffuse"`
	Ambient        [3]float32 `yaml:"ambient"`
	ShaderDir      string     `yaml:"shader_dir"` // empty = built-in shaders
	ScreenshotDir  string     `yaml:"screenshot_dir"`
}

// SceneConfig lists the solids to generate.
type SceneConfig struct {
	Axes   bool          `yaml:"axes"` // add X/Y/Z arrows at the origin
	Solids []SolidConfig `yaml:"solids"`
}

// SolidConfig describes one generated solid.
type SolidConfig struct {
	Kind         string     `yaml:"kind"`
	Capped       bool       `yaml:"capped"`
	Subdivisions int        `yaml:"subdivisions"`
	Color        [3]float32 `yaml:"color"`
	Translate    [3]float32 `yaml:"translate"`
	Rotate       [3]float32 `yaml:"rotate"` // degrees, applied X then Y then Z
	Scale        [3]float32 `yaml:"scale"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Transform returns the solid's pre-transform: T * Rz * Ry * Rx * S.
// A zero scale vector means unit scale.
func (s SolidConfig) Transform() math.Mat4 {
	scale := s.Scale
	if scale == ([3]float32{}) {
		scale = [3]float32{1, 1, 1}
	}

	return math.Translate(s.Translate[0], s.Translate[1], s.Translate[2]).
		Mul(math.RotateZ(radians(s.Rotate[2]))).
		Mul(math.RotateY(radians(s.Rotate[1]))).
		Mul(math.RotateX(radians(s.Rotate[0]))).
		Mul(math.Scale(scale[0], scale[1], scale[2]))
}

// Params converts the entry into generator parameters.
func (s SolidConfig) Params() solid.Params {
	return solid.Params{
		Capped:       s.Capped,
		Subdivisions: s.Subdivisions,
		Color:        Vec3(s.Color),
		PreTransform: s.Transform(),
	}
}

// Vec3 converts a YAML triple into a vector.
func Vec3(v [3]float32) math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

func radians(deg float32) float32 {
	return deg * math32.Pi / 180
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "solidview",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Camera: CameraConfig{
			Radius:            10,
			MinRadius:         0.1,
			MovementPerSecond: 5,
			MouseSensitivity:  0.01,
			FieldOfView:       60,
		},
		Render: RenderConfig{
			ClearColor:     [3]float32{0.2, 0.2, 0.25},
			LightAzimuth:   -63.4,
			LightElevation: 41.8,
			Diffuse:        [3]float32{0.9, 0.9, 0.6},
			Ambient:        [3]float32{0.05, 0.05, 0.05},
			ScreenshotDir:  "screenshots",
		},
		Scene: SceneConfig{
			Axes: true,
			Solids: []SolidConfig{
				{
					Kind:         string(solid.KindCylinder),
					Capped:       true,
					Subdivisions: 129,
					Color:        [3]float32{0.8, 0.4, 0.6},
					Translate:    [3]float32{5, 0, 1},
					Rotate:       [3]float32{0, 0, 90},
					Scale:        [3]float32{8, 2, 2},
				},
			},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
