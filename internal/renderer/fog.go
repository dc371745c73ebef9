package renderer

import "github.com/go-gl/mathgl/mgl32"

// Fog holds linear distance fog parameters. The fragment shader blends the
// lit color toward Color between Near and Far.
type Fog struct {
	Enabled bool
	Color   mgl32.Vec3
	Near    float32
	Far     float32
}

func DefaultFog() *Fog {
	return &Fog{
		Enabled: false,
		Color:   mgl32.Vec3{0.5, 0.6, 0.7},
		Near:    10.0,
		Far:     100.0,
	}
}
