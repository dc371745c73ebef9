// Package loader builds renderer models from OBJ files and procedural
// geometry. Scene assets load on goroutines and are handed to the engine
// over its model channel as they complete.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/CharlieDoesDev/DidItHappen/internal/logger"
	"github.com/CharlieDoesDev/DidItHappen/internal/renderer"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

type faceVertex struct {
	vertexIdx int32
	texIdx    int32
	normalIdx int32
	hasTex    bool
	hasNormal bool
}

// LoadModel parses a Wavefront OBJ file. Faces are expanded into a unified
// vertex stream so the same position/triangle arrays serve both the GPU
// upload and the camera collision query.
func LoadModel(filename string) (*renderer.Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var positions []float32
	var texCoords []float32
	var normals []float32
	var faceVertices []faceVertex

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		switch parts[0] {
		case "v":
			vertex, err := parseFloats(parts[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("%s: bad vertex: %w", filename, err)
			}
			positions = append(positions, vertex...)
		case "vn":
			normal, err := parseFloats(parts[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("%s: bad normal: %w", filename, err)
			}
			normals = append(normals, normal...)
		case "vt":
			texCoord, err := parseFloats(parts[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("%s: bad texture coordinate: %w", filename, err)
			}
			texCoords = append(texCoords, texCoord...)
		case "f":
			face, err := parseFace(parts[1:])
			if err != nil {
				return nil, fmt.Errorf("%s: bad face: %w", filename, err)
			}
			// Triangulate polygons as a fan
			for i := 1; i+1 < len(face); i++ {
				faceVertices = append(faceVertices, face[0], face[i], face[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(faceVertices) == 0 {
		return nil, fmt.Errorf("%s: no faces found", filename)
	}

	model := buildModel(positions, texCoords, normals, faceVertices)
	model.SourcePath = filename
	model.Material = renderer.DefaultMaterial
	uniqueMaterial := *model.Material
	model.Material = &uniqueMaterial

	logger.Log.Info("Model loaded",
		zap.String("file", filename),
		zap.Int("triangles", model.TriangleCount()))
	return model, nil
}

// buildModel expands indexed OBJ data into a unified vertex stream.
func buildModel(positions, texCoords, normals []float32, faceVertices []faceVertex) *renderer.Model {
	vertices := make([]float32, 0, len(faceVertices)*3)
	outNormals := make([]float32, 0, len(faceVertices)*3)
	outTexCoords := make([]float32, 0, len(faceVertices)*2)
	interleaved := make([]float32, 0, len(faceVertices)*8)
	faces := make([]int32, 0, len(faceVertices))

	for i, fv := range faceVertices {
		px, py, pz := positions[fv.vertexIdx*3], positions[fv.vertexIdx*3+1], positions[fv.vertexIdx*3+2]

		var u, v float32
		if fv.hasTex && int(fv.texIdx*2+1) < len(texCoords) {
			u, v = texCoords[fv.texIdx*2], texCoords[fv.texIdx*2+1]
		}

		var nx, ny, nz float32 = 0, 1, 0
		if fv.hasNormal && int(fv.normalIdx*3+2) < len(normals) {
			nx, ny, nz = normals[fv.normalIdx*3], normals[fv.normalIdx*3+1], normals[fv.normalIdx*3+2]
		}

		vertices = append(vertices, px, py, pz)
		outTexCoords = append(outTexCoords, u, v)
		outNormals = append(outNormals, nx, ny, nz)
		interleaved = append(interleaved, px, py, pz, u, v, nx, ny, nz)
		faces = append(faces, int32(i))
	}

	// Faces without normals get flat ones so lighting still works
	recalcMissingNormals(vertices, outNormals, interleaved, faceVertices)

	model := &renderer.Model{
		Position:        mgl32.Vec3{0, 0, 0},
		Rotation:        mgl32.QuatIdent(),
		Scale:           mgl32.Vec3{1, 1, 1},
		Vertices:        vertices,
		Faces:           faces,
		Normals:         outNormals,
		TextureCoords:   outTexCoords,
		InterleavedData: interleaved,
	}
	model.UpdateModelMatrix()
	return model
}

func recalcMissingNormals(vertices, normals, interleaved []float32, faceVertices []faceVertex) {
	for tri := 0; tri+2 < len(faceVertices); tri += 3 {
		if faceVertices[tri].hasNormal && faceVertices[tri+1].hasNormal && faceVertices[tri+2].hasNormal {
			continue
		}
		v0 := mgl32.Vec3{vertices[tri*3], vertices[tri*3+1], vertices[tri*3+2]}
		v1 := mgl32.Vec3{vertices[(tri+1)*3], vertices[(tri+1)*3+1], vertices[(tri+1)*3+2]}
		v2 := mgl32.Vec3{vertices[(tri+2)*3], vertices[(tri+2)*3+1], vertices[(tri+2)*3+2]}
		normal := v1.Sub(v0).Cross(v2.Sub(v0))
		if normal.LenSqr() > 0 {
			normal = normal.Normalize()
		} else {
			normal = mgl32.Vec3{0, 1, 0}
		}
		for i := tri; i < tri+3; i++ {
			normals[i*3], normals[i*3+1], normals[i*3+2] = normal.X(), normal.Y(), normal.Z()
			interleaved[i*8+5], interleaved[i*8+6], interleaved[i*8+7] = normal.X(), normal.Y(), normal.Z()
		}
	}
}

// LoadPlane builds a flat grid model, used for the configurable scene floor.
func LoadPlane(gridSize int, gridSpacing float32) (*renderer.Model, error) {
	if gridSize < 2 {
		return nil, errors.New("gridSize must be at least 2")
	}

	vertices := make([]mgl32.Vec3, 0, gridSize*gridSize)
	indices := make([]int32, 0, (gridSize-1)*(gridSize-1)*6)

	// Center the grid on the origin so the default pivot sits above it
	half := float32(gridSize-1) * gridSpacing * 0.5

	for x := 0; x < gridSize; x++ {
		for z := 0; z < gridSize; z++ {
			vertices = append(vertices, mgl32.Vec3{
				float32(x)*gridSpacing - half,
				0,
				float32(z)*gridSpacing - half,
			})
		}
	}

	for x := 0; x < gridSize-1; x++ {
		for z := 0; z < gridSize-1; z++ {
			topLeft := int32(x*gridSize + z)
			topRight := topLeft + 1
			bottomLeft := int32((x+1)*gridSize + z)
			bottomRight := bottomLeft + 1

			indices = append(indices, topLeft, bottomLeft, bottomRight, topLeft, bottomRight, topRight)
		}
	}

	model := renderer.CreateModel(vertices, indices)
	return model, nil
}

func parseFloats(parts []string, want int) ([]float32, error) {
	if len(parts) < want {
		return nil, fmt.Errorf("expected %d components, got %d", want, len(parts))
	}
	out := make([]float32, want)
	for i := 0; i < want; i++ {
		v, err := strconv.ParseFloat(parts[i], 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(v)
	}
	return out, nil
}

// parseFace parses entries of the forms v, v/vt, v//vn and v/vt/vn.
// OBJ indices are one-based.
func parseFace(parts []string) ([]faceVertex, error) {
	if len(parts) < 3 {
		return nil, fmt.Errorf("face needs at least 3 vertices, got %d", len(parts))
	}
	face := make([]faceVertex, 0, len(parts))
	for _, part := range parts {
		fields := strings.Split(part, "/")
		var fv faceVertex

		idx, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, err
		}
		fv.vertexIdx = int32(idx - 1)

		if len(fields) > 1 && fields[1] != "" {
			idx, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, err
			}
			fv.texIdx = int32(idx - 1)
			fv.hasTex = true
		}
		if len(fields) > 2 && fields[2] != "" {
			idx, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, err
			}
			fv.normalIdx = int32(idx - 1)
			fv.hasNormal = true
		}
		face = append(face, fv)
	}
	return face, nil
}
