// Package shaders provides the GLSL sources for both render paths. The
// embedded copies are used unless a directory override is given.
package shaders

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

// File names, shared by the embedded set and on-disk overrides.
const (
	QuadVertexFile       = "quad.vert"
	RayTraceFragmentFile = "raytrace.frag"
	MeshVertexFile       = "mesh.vert"
	MeshFragmentFile     = "mesh.frag"
)

//go:embed *.vert *.frag
var embedded embed.FS

// Set holds the sources of both programs.
type Set struct {
	QuadVertex       string
	RayTraceFragment string
	MeshVertex       string
	MeshFragment     string
}

// Load reads a Set from fsys.
func Load(fsys fs.FS) (Set, error) {
	var s Set
	for _, f := range []struct {
		name string
		dst  *string
	}{
		{QuadVertexFile, &s.QuadVertex},
		{RayTraceFragmentFile, &s.RayTraceFragment},
		{MeshVertexFile, &s.MeshVertex},
		{MeshFragmentFile, &s.MeshFragment},
	} {
		data, err := fs.ReadFile(fsys, f.name)
		if err != nil {
			return Set{}, fmt.Errorf("reading shader %s: %w", f.name, err)
		}
		*f.dst = string(data)
	}
	return s, nil
}

// Embedded returns the compiled-in shaders.
func Embedded() Set {
	s, err := Load(embedded)
	if err != nil {
		panic(err)
	}
	return s
}

// FromDir loads shaders from dir, or returns the embedded set when dir is
// empty.
func FromDir(dir string) (Set, error) {
	if dir == "" {
		return Embedded(), nil
	}
	return Load(os.DirFS(dir))
}
