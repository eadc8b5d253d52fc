//go:build mage

package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

const shaderDir = "internal/engine/renderer/shaders"

type Build mg.Namespace

// All builds both binaries into bin/.
func (Build) All() error {
	mg.Deps(Build.Shaders)
	if err := os.MkdirAll("bin", 0755); err != nil {
		return err
	}
	for _, name := range []string{"raytracer", "sceneeditor"} {
		if _, err := executeCmd("go", withArgs("build", "-o", filepath.Join("bin", name), "./cmd/"+name), withStream()); err != nil {
			return err
		}
	}
	return nil
}

// Shaders validates the GLSL sources with glslangValidator.
func (Build) Shaders() error {
	files, err := filepath.Glob(filepath.Join(shaderDir, "*.vert"))
	if err != nil {
		return err
	}
	frags, err := filepath.Glob(filepath.Join(shaderDir, "*.frag"))
	if err != nil {
		return err
	}
	for _, f := range append(files, frags...) {
		if _, err := executeCmd("glslangValidator", withArgs(f), withStream()); err != nil {
			return err
		}
	}
	return nil
}

// Test runs the unit tests.
func Test() error {
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}
