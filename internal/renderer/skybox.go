package renderer

import "github.com/go-gl/mathgl/mgl32"

// Skybox is the scene background. Only the solid color mode is supported:
// the renderer applies the color through glClearColor, no geometry needed.
type Skybox struct {
	Color mgl32.Vec3
}

func CreateSolidColorSkybox(r, g, b float32) *Skybox {
	return &Skybox{Color: mgl32.Vec3{r, g, b}}
}

func (s *Skybox) UpdateColor(r, g, b float32) {
	s.Color = mgl32.Vec3{r, g, b}
}
