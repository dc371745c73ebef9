package renderer

import "github.com/go-gl/mathgl/mgl32"

type LightType int

const (
	STATIC_LIGHT LightType = iota
	DYNAMIC_LIGHT
)

type Light struct {
	Position        mgl32.Vec3
	Direction       mgl32.Vec3 // Used by directional lights
	Color           mgl32.Vec3
	Intensity       float32
	AmbientStrength float32
	Type            LightType
	Mode            string // "directional", "point"

	// Point light attenuation
	ConstantAtten  float32
	LinearAtten    float32
	QuadraticAtten float32
}

func CreateLight() *Light {
	return &Light{
		Position:        mgl32.Vec3{0.0, 100.0, 0.0},
		Color:           mgl32.Vec3{1.0, 1.0, 1.0},
		Intensity:       1.0,
		Mode:            "point",
		AmbientStrength: 0.1,
		Direction:       mgl32.Vec3{0, -1, 0},
		// Gentle falloff suitable for room-scale scenes
		ConstantAtten:  1.0,
		LinearAtten:    0.0001,
		QuadraticAtten: 0.0000001,
	}
}

// CreateDirectionalLight creates a directional light (like the sun)
func CreateDirectionalLight(direction mgl32.Vec3, color mgl32.Vec3, intensity float32) *Light {
	light := CreateLight()
	light.Mode = "directional"
	light.Direction = direction.Normalize()
	light.Color = color
	light.Intensity = intensity
	light.AmbientStrength = 0.15 // Slightly higher ambient for outdoor scenes
	return light
}

// CreatePointLight creates a point light with attenuation derived from range
func CreatePointLight(position mgl32.Vec3, color mgl32.Vec3, intensity float32, lightRange float32) *Light {
	light := CreateLight()
	light.Mode = "point"
	light.Position = position
	light.Color = color
	light.Intensity = intensity

	// At the range distance the light falls to roughly 1% intensity
	light.ConstantAtten = 1.0
	light.LinearAtten = 2.0 / lightRange
	light.QuadraticAtten = 1.0 / (lightRange * lightRange)

	return light
}

// CreateSunlight creates a warm directional light with outdoor ambient
func CreateSunlight(direction mgl32.Vec3) *Light {
	light := CreateDirectionalLight(direction, mgl32.Vec3{1.0, 0.95, 0.8}, 1.2)
	light.AmbientStrength = 0.2
	return light
}
