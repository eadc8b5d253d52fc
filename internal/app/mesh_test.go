package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/raytrace-demo/internal/assets"
	"github.com/Faultbox/raytrace-demo/internal/config"
	"github.com/Faultbox/raytrace-demo/internal/engine/meshgen"
	"github.com/Faultbox/raytrace-demo/pkg/formats"
)

const cubeOFF = `OFF
8 6 0
-1 -1 -1
 1 -1 -1
 1  1 -1
-1  1 -1
-1 -1  1
 1 -1  1
 1  1  1
-1  1  1
4 0 3 2 1
4 4 5 6 7
4 0 1 5 4
4 2 3 7 6
4 1 2 6 5
4 0 4 7 3
`

func TestLoadMeshFromFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "models"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "models", "cube.off"), []byte(cubeOFF), 0644); err != nil {
		t.Fatal(err)
	}

	m := assets.NewManager(dir)
	defer m.Close()

	n, src, err := LoadMesh(m, config.AssetsConfig{Model: "models/cube.off", MeshCells: 16})
	if err != nil {
		t.Fatalf("LoadMesh failed: %v", err)
	}
	if filepath.Base(src.Path) != "cube.off" || src.Shape != "" {
		t.Errorf("unexpected source %+v", src)
	}
	if len(n.Triangles) != 12 {
		t.Errorf("expected 12 triangles, got %d", len(n.Triangles))
	}
	if n.Scale != 1 {
		t.Errorf("expected scale 1 for an extent-2 cube, got %f", n.Scale)
	}
	if got := m.Cache().Len(); got != 1 {
		t.Errorf("expected the model cached once, cache has %d entries", got)
	}
}

func TestLoadMeshProcedural(t *testing.T) {
	m := assets.NewManager(t.TempDir())
	defer m.Close()

	n, src, err := LoadMesh(m, config.AssetsConfig{Shape: "box", MeshCells: 8})
	if err != nil {
		t.Fatalf("LoadMesh failed: %v", err)
	}
	if src.Path != "" || src.String() != "procedural box" {
		t.Errorf("unexpected source %q", src)
	}
	if len(n.Triangles) == 0 {
		t.Error("expected triangles from the procedural box")
	}
}

func TestLoadMeshErrors(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.off"), []byte("PLY\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "huge.off"), []byte("OFF\n100000000000000 0\n0 0 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	m := assets.NewManager(dir)
	defer m.Close()

	tests := []struct {
		name string
		cfg  config.AssetsConfig
		want error
	}{
		{"missing file", config.AssetsConfig{Model: "nope.off"}, assets.ErrNotFound},
		{"bad header", config.AssetsConfig{Model: "bad.off"}, formats.ErrInvalidOFFHeader},
		{"impossible counts", config.AssetsConfig{Model: "huge.off"}, formats.ErrTruncatedOFF},
		{"unknown shape", config.AssetsConfig{Shape: "teapot", MeshCells: 16}, meshgen.ErrUnknownShape},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := LoadMesh(m, tt.cfg); !errors.Is(err, tt.want) {
				t.Errorf("LoadMesh() error = %v, want %v", err, tt.want)
			}
		})
	}
}
