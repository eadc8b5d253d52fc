//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Demo runs the ray tracing demo with debug logging and hot reload.
func (Run) Demo() error {
	_, err := executeCmd("go", withArgs("run", "./cmd/raytracer", "-hot-reload", "-debug"), withStream())
	return err
}

// Editor runs the scene editor.
func (Run) Editor() error {
	_, err := executeCmd("go", withArgs("run", "./cmd/sceneeditor"), withStream())
	return err
}
