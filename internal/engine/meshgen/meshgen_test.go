package meshgen

import (
	"errors"
	"testing"

	"github.com/Faultbox/raytrace-demo/internal/engine/model"
)

func TestNames(t *testing.T) {
	names := Names()
	want := []string{"box", "cylinder", "notched-box"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %s, want %s", i, names[i], want[i])
		}
	}
}

func TestGenerateShapes(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			mesh, err := Generate(name, 16)
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}
			if len(mesh.Vertices) == 0 || len(mesh.Polygons) == 0 {
				t.Fatal("expected a non-empty mesh")
			}
			for i, p := range mesh.Polygons {
				if len(p) != 3 {
					t.Fatalf("polygon %d has %d indices", i, len(p))
				}
				for _, idx := range p {
					if idx < 0 || idx >= len(mesh.Vertices) {
						t.Fatalf("polygon %d index %d out of range", i, idx)
					}
				}
			}

			size := mesh.Bounds.Size()
			if size.MaxComponent() < 1.5 || size.MaxComponent() > 2.5 {
				t.Errorf("unexpected bounds size %v", size)
			}

			n, err := model.Normalize(mesh)
			if err != nil {
				t.Fatalf("Normalize failed: %v", err)
			}
			if got := n.Bounds.Size().MaxComponent(); got < 1.99 || got > 2.01 {
				t.Errorf("normalized extent = %f, want 2", got)
			}
		})
	}
}

func TestGenerateWeldsVertices(t *testing.T) {
	mesh, err := Generate("box", 8)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	// A closed surface shares each vertex between several triangles.
	if len(mesh.Vertices) >= len(mesh.Polygons)*3 {
		t.Errorf("expected welded vertices, got %d vertices for %d triangles",
			len(mesh.Vertices), len(mesh.Polygons))
	}
}

func TestGenerateErrors(t *testing.T) {
	if _, err := Generate("teapot", 16); !errors.Is(err, ErrUnknownShape) {
		t.Errorf("expected ErrUnknownShape, got %v", err)
	}
	if _, err := Generate("box", 2); !errors.Is(err, ErrCells) {
		t.Errorf("expected ErrCells for 2 cells, got %v", err)
	}
	if _, err := Generate("box", MaxCells+1); !errors.Is(err, ErrCells) {
		t.Errorf("expected ErrCells above max, got %v", err)
	}
}
