package renderer

import (
	"math"

	"github.com/CharlieDoesDev/DidItHappen/internal/logger"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultMaterial provides a basic material to fall back on
var DefaultMaterial = &Material{
	Name:          "default",
	DiffuseColor:  [3]float32{1.0, 1.0, 1.0},
	SpecularColor: [3]float32{1.0, 1.0, 1.0},
	Shininess:     32.0,
	Alpha:         1.0,
}

type Material struct {
	DiffuseColor  [3]float32 // Base color for lighting
	SpecularColor [3]float32 // Specular highlight color
	Shininess     float32    // Specular exponent
	Alpha         float32    // Transparency (0.0 = transparent, 1.0 = opaque)
	Name          string     // Material name for debugging
}

type Model struct {
	// HOT DATA - Accessed every frame in render loop
	ModelMatrix mgl32.Mat4 // Transformation matrix
	Position    mgl32.Vec3 // Position in world space
	Scale       mgl32.Vec3 // Scale factors
	Rotation    mgl32.Quat // Rotation quaternion
	Material    *Material  // Material properties pointer
	VAO         uint32     // Vertex Array Object
	VBO         uint32     // Vertex Buffer Object
	EBO         uint32     // Element Buffer Object
	IsDirty     bool       // Needs recalculation flag

	// MEDIUM DATA - Collision and culling
	Collidable           bool       // Eligible to block the camera
	BoundingSphereCenter mgl32.Vec3 // For collision broad phase and culling
	BoundingSphereRadius float32    // For collision broad phase and culling

	// COLD DATA - Initialization only or rarely accessed
	Name            string    // Model name
	SourcePath      string    // Original file path
	Vertices        []float32 // Vertex position data, 3 floats per vertex
	Faces           []int32   // Triangle indices
	Normals         []float32 // Normal vectors
	TextureCoords   []float32 // Texture coordinates
	InterleavedData []float32 // Combined vertex data for the GPU
}

func (m *Model) X() float32 {
	return m.Position[0]
}

func (m *Model) Y() float32 {
	return m.Position[1]
}

func (m *Model) Z() float32 {
	return m.Position[2]
}

// SetPosition sets the position of the model
func (m *Model) SetPosition(x, y, z float32) {
	m.Position = mgl32.Vec3{x, y, z}
	m.UpdateModelMatrix()
	m.IsDirty = true
}

func (m *Model) SetScale(x, y, z float32) {
	m.Scale = mgl32.Vec3{x, y, z}
	m.UpdateModelMatrix()
	m.IsDirty = true
}

func (m *Model) Rotate(angleX, angleY, angleZ float32) {
	if m.Rotation == (mgl32.Quat{}) {
		m.Rotation = mgl32.QuatIdent()
	}
	rotationX := mgl32.QuatRotate(mgl32.DegToRad(angleX), mgl32.Vec3{1, 0, 0})
	rotationY := mgl32.QuatRotate(mgl32.DegToRad(angleY), mgl32.Vec3{0, 1, 0})
	rotationZ := mgl32.QuatRotate(mgl32.DegToRad(angleZ), mgl32.Vec3{0, 0, 1})
	m.Rotation = m.Rotation.Mul(rotationX).Mul(rotationY).Mul(rotationZ)
	m.UpdateModelMatrix()
	m.IsDirty = true
}

func (m *Model) UpdateModelMatrix() {
	// Matrix multiplication order: translation * rotation * scale (TRS).
	// Matrices are applied right-to-left: scale first, then rotate, then translate.
	scaleMatrix := mgl32.Scale3D(m.Scale[0], m.Scale[1], m.Scale[2])
	rotationMatrix := m.Rotation.Mat4()
	translationMatrix := mgl32.Translate3D(m.Position[0], m.Position[1], m.Position[2])
	m.ModelMatrix = translationMatrix.Mul4(rotationMatrix).Mul4(scaleMatrix)

	// The bounding sphere feeds both frustum culling and the camera collision
	// broad phase, so it is kept current whenever the transform changes.
	m.CalculateBoundingSphere()
}

func (m *Model) CalculateBoundingSphere() {
	numVertices := len(m.Vertices) / 3
	if numVertices == 0 {
		m.BoundingSphereCenter = m.Position
		m.BoundingSphereRadius = 0
		return
	}

	var center mgl32.Vec3
	for i := 0; i < numVertices; i++ {
		vertex := mgl32.Vec3{m.Vertices[i*3], m.Vertices[i*3+1], m.Vertices[i*3+2]}
		center = center.Add(ApplyModelTransformation(vertex, m.Position, m.Scale, m.Rotation))
	}
	center = center.Mul(1.0 / float32(numVertices))

	var maxDistanceSq float32
	for i := 0; i < numVertices; i++ {
		vertex := mgl32.Vec3{m.Vertices[i*3], m.Vertices[i*3+1], m.Vertices[i*3+2]}
		transformedVertex := ApplyModelTransformation(vertex, m.Position, m.Scale, m.Rotation)
		distanceSq := transformedVertex.Sub(center).LenSqr()
		if distanceSq > maxDistanceSq {
			maxDistanceSq = distanceSq
		}
	}

	m.BoundingSphereCenter = center
	m.BoundingSphereRadius = float32(math.Sqrt(float64(maxDistanceSq)))
}

// TriangleCount returns the number of indexed triangles in the model.
func (m *Model) TriangleCount() int {
	return len(m.Faces) / 3
}

// Triangle returns the world-space vertices of triangle i.
func (m *Model) Triangle(i int) (mgl32.Vec3, mgl32.Vec3, mgl32.Vec3) {
	i0, i1, i2 := m.Faces[i*3], m.Faces[i*3+1], m.Faces[i*3+2]
	v0 := mgl32.Vec3{m.Vertices[i0*3], m.Vertices[i0*3+1], m.Vertices[i0*3+2]}
	v1 := mgl32.Vec3{m.Vertices[i1*3], m.Vertices[i1*3+1], m.Vertices[i1*3+2]}
	v2 := mgl32.Vec3{m.Vertices[i2*3], m.Vertices[i2*3+1], m.Vertices[i2*3+2]}
	v0 = ApplyModelTransformation(v0, m.Position, m.Scale, m.Rotation)
	v1 = ApplyModelTransformation(v1, m.Position, m.Scale, m.Rotation)
	v2 = ApplyModelTransformation(v2, m.Position, m.Scale, m.Rotation)
	return v0, v1, v2
}

func ApplyModelTransformation(vertex, position, scale mgl32.Vec3, rotation mgl32.Quat) mgl32.Vec3 {
	scaledVertex := mgl32.Vec3{vertex[0] * scale[0], vertex[1] * scale[1], vertex[2] * scale[2]}

	// mgl32.Quat doesn't directly multiply with Vec3, convert to a Mat4 first
	rotatedVertex := rotation.Mat4().Mul4x1(scaledVertex.Vec4(1)).Vec3()

	return rotatedVertex.Add(position)
}

// ensureMaterial creates a new material instance if one doesn't exist
func (m *Model) ensureMaterial() {
	if m.Material == nil {
		logger.Log.Info("Creating new default material")
		m.Material = &Material{
			Name:          "default",
			DiffuseColor:  [3]float32{1.0, 1.0, 1.0},
			SpecularColor: [3]float32{1.0, 1.0, 1.0},
			Shininess:     32.0,
			Alpha:         1.0,
		}
	} else if m.Material == DefaultMaterial {
		// Create a copy so models never share the DefaultMaterial instance
		m.Material = &Material{
			Name:          m.Material.Name,
			DiffuseColor:  m.Material.DiffuseColor,
			SpecularColor: m.Material.SpecularColor,
			Shininess:     m.Material.Shininess,
			Alpha:         m.Material.Alpha,
		}
	}
}

func (m *Model) SetDiffuseColor(r, g, b float32) {
	m.ensureMaterial()
	m.Material.DiffuseColor = [3]float32{r, g, b}
}

func (m *Model) SetSpecularColor(r, g, b float32) {
	m.ensureMaterial()
	m.Material.SpecularColor = [3]float32{r, g, b}
}

func (m *Model) SetAlpha(alpha float32) {
	m.ensureMaterial()
	m.Material.Alpha = alpha
}

func CreateModel(vertices []mgl32.Vec3, indices []int32) *Model {
	interleavedData := make([]float32, 0, len(vertices)*8) // 3 position, 2 texture, 3 normal

	for _, v := range vertices {
		interleavedData = append(interleavedData, v.X(), v.Y(), v.Z())

		// Placeholder texture coordinates (U, V)
		interleavedData = append(interleavedData, 0.0, 0.0)

		// Placeholder normals (X, Y, Z)
		interleavedData = append(interleavedData, 0.0, 1.0, 0.0)
	}

	model := &Model{
		Position:        mgl32.Vec3{0, 0, 0},
		Rotation:        mgl32.QuatIdent(),
		Scale:           mgl32.Vec3{1.0, 1.0, 1.0},
		Vertices:        flattenVertices(vertices),
		Faces:           indices,
		InterleavedData: interleavedData,
	}
	model.UpdateModelMatrix()
	return model
}

// Helper to flatten Vec3 array
func flattenVertices(vertices []mgl32.Vec3) []float32 {
	flat := make([]float32, 0, len(vertices)*3)
	for _, v := range vertices {
		flat = append(flat, v.X(), v.Y(), v.Z())
	}
	return flat
}
