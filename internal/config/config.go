// Package config loads the declarative JSON scene description that drives
// the viewer: window, camera, lights, fog, particles and models.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/CharlieDoesDev/DidItHappen/internal/logger"
	"go.uber.org/zap"
)

type WindowConfig struct {
	Width  int32  `json:"width"`
	Height int32  `json:"height"`
	Title  string `json:"title"`
}

// CameraConfig mirrors the recognized camera options. Degenerate 0/0
// min/max pairs leave the axis unconstrained.
type CameraConfig struct {
	Height          float32 `json:"height"`
	InitialYaw      float32 `json:"initialYaw"`
	InitialPitch    float32 `json:"initialPitch"`
	InitialDistance float32 `json:"initialDistance"`
	MinYaw          float32 `json:"minYaw"`
	MaxYaw          float32 `json:"maxYaw"`
	OvershootYaw    float32 `json:"overshootYaw"`
	MinPitch        float32 `json:"minPitch"`
	MaxPitch        float32 `json:"maxPitch"`
	OvershootPitch  float32 `json:"overshootPitch"`
	MinDistance     float32 `json:"minDistance"`
	MaxDistance     float32 `json:"maxDistance"`
	Sensitivity     float32 `json:"sensitivity"`
	ZoomSensitivity float32 `json:"zoomSensitivity"`
	CollisionRadius float32 `json:"collisionRadius"`
	Fov             float32 `json:"fov"`
	Near            float32 `json:"near"`
	Far             float32 `json:"far"`
}

type ColorConfig struct {
	R float32 `json:"r"`
	G float32 `json:"g"`
	B float32 `json:"b"`
}

type FogConfig struct {
	Enabled bool        `json:"enabled"`
	Color   ColorConfig `json:"color"`
	Near    float32     `json:"near"`
	Far     float32     `json:"far"`
}

type Vec3Config struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

type LightConfig struct {
	Mode            string      `json:"mode"` // "directional" or "point"
	Position        Vec3Config  `json:"position"`
	Direction       Vec3Config  `json:"direction"`
	Color           ColorConfig `json:"color"`
	Intensity       float32     `json:"intensity"`
	AmbientStrength float32     `json:"ambientStrength"`
	Range           float32     `json:"range"`
}

type ParticleConfig struct {
	Count      int         `json:"count"`
	Origin     Vec3Config  `json:"origin"`
	Spread     float32     `json:"spread"`
	Color      ColorConfig `json:"color"`
	Size       float32     `json:"size"`
	Drift      float32     `json:"drift"`
	Turbulence float64     `json:"turbulence"`
	Lifetime   float32     `json:"lifetime"`
	Seed       int64       `json:"seed"`
}

type ModelConfig struct {
	Path       string      `json:"path"`
	Position   Vec3Config  `json:"position"`
	Scale      Vec3Config  `json:"scale"`
	Rotation   Vec3Config  `json:"rotation"` // Euler degrees
	Collidable bool        `json:"collidable"`
	Diffuse    ColorConfig `json:"diffuse"`
}

type FloorConfig struct {
	Enabled     bool        `json:"enabled"`
	GridSize    int         `json:"gridSize"`
	GridSpacing float32     `json:"gridSpacing"`
	Diffuse     ColorConfig `json:"diffuse"`
	Collidable  bool        `json:"collidable"`
}

type SceneConfig struct {
	Window     WindowConfig     `json:"window"`
	Camera     CameraConfig     `json:"camera"`
	Background ColorConfig      `json:"background"`
	Fog        FogConfig        `json:"fog"`
	Lights     []LightConfig    `json:"lights"`
	Particles  []ParticleConfig `json:"particles"`
	Models     []ModelConfig    `json:"models"`
	Floor      FloorConfig      `json:"floor"`
}

// Default returns the documented fallback for every field. Load unmarshals
// over this value, so fields missing from the file keep their defaults.
func Default() SceneConfig {
	return SceneConfig{
		Window: WindowConfig{
			Width:  1024,
			Height: 768,
			Title:  "DidItHappen",
		},
		Camera: CameraConfig{
			Height:          0,
			InitialYaw:      0,
			InitialPitch:    20,
			InitialDistance: 10,
			MinYaw:          0,
			MaxYaw:          0, // 0/0 leaves yaw unconstrained
			OvershootYaw:    0,
			MinPitch:        -85,
			MaxPitch:        85,
			OvershootPitch:  0,
			MinDistance:     1,
			MaxDistance:     100,
			Sensitivity:     0.25,
			ZoomSensitivity: 1.0,
			CollisionRadius: 0.25,
			Fov:             45,
			Near:            0.1,
			Far:             1000,
		},
		Background: ColorConfig{R: 0.05, G: 0.05, B: 0.1},
		Fog: FogConfig{
			Enabled: false,
			Color:   ColorConfig{R: 0.5, G: 0.6, B: 0.7},
			Near:    10,
			Far:     100,
		},
	}
}

// Load reads and validates a scene file. Missing fields fall back to the
// defaults; malformed JSON or invalid limit pairs are load-time errors.
func Load(path string) (SceneConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read scene config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse scene config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	logger.Log.Info("Scene config loaded",
		zap.String("path", path),
		zap.Int("lights", len(cfg.Lights)),
		zap.Int("particles", len(cfg.Particles)),
		zap.Int("models", len(cfg.Models)))
	return cfg, nil
}

// Validate rejects inverted limit pairs instead of guessing at runtime
// behavior for them.
func (c *SceneConfig) Validate() error {
	cam := c.Camera
	if cam.MinYaw > cam.MaxYaw {
		return fmt.Errorf("camera: minYaw (%v) exceeds maxYaw (%v)", cam.MinYaw, cam.MaxYaw)
	}
	if cam.MinPitch > cam.MaxPitch {
		return fmt.Errorf("camera: minPitch (%v) exceeds maxPitch (%v)", cam.MinPitch, cam.MaxPitch)
	}
	if cam.MinDistance > cam.MaxDistance {
		return fmt.Errorf("camera: minDistance (%v) exceeds maxDistance (%v)", cam.MinDistance, cam.MaxDistance)
	}
	return nil
}
