package loader

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/CharlieDoesDev/DidItHappen/internal/logger"
)

func writeOBJ(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.obj")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadModelTriangle(t *testing.T) {
	logger.Init()
	path := writeOBJ(t, `
v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
f 1//1 2//1 3//1
`)

	model, err := LoadModel(path)
	if err != nil {
		t.Fatalf("LoadModel failed: %v", err)
	}
	if model.TriangleCount() != 1 {
		t.Errorf("Expected 1 triangle, got %d", model.TriangleCount())
	}
	if len(model.Vertices) != 9 {
		t.Errorf("Expected 9 vertex floats, got %d", len(model.Vertices))
	}
	if len(model.InterleavedData) != 24 {
		t.Errorf("Expected 24 interleaved floats, got %d", len(model.InterleavedData))
	}
	// Floats 5..7 of each interleaved vertex hold the normal
	if model.InterleavedData[7] != 1 {
		t.Errorf("Expected normal z=1 in interleaved data, got %f", model.InterleavedData[7])
	}
}

func TestLoadModelQuadTriangulates(t *testing.T) {
	logger.Init()
	path := writeOBJ(t, `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`)

	model, err := LoadModel(path)
	if err != nil {
		t.Fatalf("LoadModel failed: %v", err)
	}
	if model.TriangleCount() != 2 {
		t.Errorf("Expected quad triangulated into 2 triangles, got %d", model.TriangleCount())
	}
}

func TestLoadModelRecalculatesMissingNormals(t *testing.T) {
	logger.Init()
	// Triangle in the xy plane without normals: the flat normal is +z or -z
	path := writeOBJ(t, `
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`)

	model, err := LoadModel(path)
	if err != nil {
		t.Fatalf("LoadModel failed: %v", err)
	}
	nz := model.Normals[2]
	if math.Abs(math.Abs(float64(nz))-1.0) > 1e-5 {
		t.Errorf("Expected recalculated normal along z, got z=%f", nz)
	}
}

func TestLoadModelTextureCoords(t *testing.T) {
	logger.Init()
	path := writeOBJ(t, `
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
f 1/1 2/2 3/3
`)

	model, err := LoadModel(path)
	if err != nil {
		t.Fatalf("LoadModel failed: %v", err)
	}
	if len(model.TextureCoords) != 6 {
		t.Fatalf("Expected 6 texture coordinate floats, got %d", len(model.TextureCoords))
	}
	if model.TextureCoords[2] != 1 || model.TextureCoords[5] != 1 {
		t.Errorf("Texture coordinates not carried through: %v", model.TextureCoords)
	}
}

func TestLoadModelNoFaces(t *testing.T) {
	logger.Init()
	path := writeOBJ(t, "v 0 0 0\nv 1 0 0\nv 0 1 0\n")
	if _, err := LoadModel(path); err == nil {
		t.Error("Expected error for an OBJ without faces")
	}
}

func TestLoadModelMissingFile(t *testing.T) {
	logger.Init()
	if _, err := LoadModel(filepath.Join(t.TempDir(), "nope.obj")); err == nil {
		t.Error("Expected error for a missing file")
	}
}

func TestLoadModelBadVertex(t *testing.T) {
	logger.Init()
	path := writeOBJ(t, "v 0 zero 0\nf 1 1 1\n")
	if _, err := LoadModel(path); err == nil {
		t.Error("Expected error for a malformed vertex")
	}
}

func TestLoadPlane(t *testing.T) {
	logger.Init()
	model, err := LoadPlane(4, 1.0)
	if err != nil {
		t.Fatalf("LoadPlane failed: %v", err)
	}
	if len(model.Vertices) != 4*4*3 {
		t.Errorf("Expected 48 vertex floats for a 4x4 grid, got %d", len(model.Vertices))
	}
	if model.TriangleCount() != 3*3*2 {
		t.Errorf("Expected 18 triangles for a 4x4 grid, got %d", model.TriangleCount())
	}
}

func TestLoadPlaneCenteredOnOrigin(t *testing.T) {
	logger.Init()
	model, err := LoadPlane(3, 2.0)
	if err != nil {
		t.Fatalf("LoadPlane failed: %v", err)
	}

	var minX, maxX float32
	for i := 0; i+2 < len(model.Vertices); i += 3 {
		x := model.Vertices[i]
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
	}
	if minX != -maxX {
		t.Errorf("Grid not centered: x range [%f, %f]", minX, maxX)
	}
}

func TestLoadPlaneRejectsTinyGrid(t *testing.T) {
	if _, err := LoadPlane(1, 1.0); err == nil {
		t.Error("Expected error for gridSize < 2")
	}
}

func TestParseFaceForms(t *testing.T) {
	face, err := parseFace([]string{"1", "2/3", "4//5", "6/7/8"})
	if err != nil {
		t.Fatalf("parseFace failed: %v", err)
	}
	if face[0].vertexIdx != 0 || face[0].hasTex || face[0].hasNormal {
		t.Errorf("Bare vertex parsed wrong: %+v", face[0])
	}
	if face[1].texIdx != 2 || !face[1].hasTex || face[1].hasNormal {
		t.Errorf("v/vt parsed wrong: %+v", face[1])
	}
	if face[2].normalIdx != 4 || face[2].hasTex || !face[2].hasNormal {
		t.Errorf("v//vn parsed wrong: %+v", face[2])
	}
	if face[3].vertexIdx != 5 || face[3].texIdx != 6 || face[3].normalIdx != 7 {
		t.Errorf("v/vt/vn parsed wrong: %+v", face[3])
	}
}

func TestParseFaceTooFewVertices(t *testing.T) {
	if _, err := parseFace([]string{"1", "2"}); err != nil {
		return
	}
	t.Error("Expected error for a face with fewer than 3 vertices")
}
