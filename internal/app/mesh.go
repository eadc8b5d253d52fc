package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/raytrace-demo/internal/assets"
	"github.com/Faultbox/raytrace-demo/internal/config"
	"github.com/Faultbox/raytrace-demo/internal/engine/meshgen"
	"github.com/Faultbox/raytrace-demo/internal/engine/model"
	"github.com/Faultbox/raytrace-demo/internal/logger"
	"github.com/Faultbox/raytrace-demo/pkg/formats"
)

// MeshSource describes where a mesh came from.
type MeshSource struct {
	// Path is the resolved model file, empty for procedural meshes.
	Path  string
	Shape string
}

// String names the source for logs and titles.
func (s MeshSource) String() string {
	if s.Path != "" {
		return s.Path
	}
	return "procedural " + s.Shape
}

// LoadMesh reads the configured model, or generates the configured shape
// when no model is set, and normalizes it.
func LoadMesh(m *assets.Manager, cfg config.AssetsConfig) (*model.Normalized, MeshSource, error) {
	if cfg.Model == "" {
		src := MeshSource{Shape: cfg.Shape}
		mesh, err := meshgen.Generate(cfg.Shape, cfg.MeshCells)
		if err != nil {
			return nil, src, err
		}
		n, err := model.Normalize(mesh)
		return n, src, err
	}

	path, err := m.Resolve(cfg.Model)
	if err != nil {
		return nil, MeshSource{}, err
	}
	src := MeshSource{Path: path}
	n, err := loadOFF(m, path)
	return n, src, err
}

func loadOFF(m *assets.Manager, path string) (*model.Normalized, error) {
	data, err := m.Load(path)
	if err != nil {
		return nil, err
	}
	off, err := formats.ParseOFF(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	hits, misses := m.Cache().Stats()
	logger.Debug("model parsed",
		zap.String("path", path),
		zap.Int("vertices", len(off.Vertices)),
		zap.Int("faces", len(off.Faces)),
		zap.Int("triangles", off.TriangleCount()),
		zap.Int("cache_hits", hits),
		zap.Int("cache_misses", misses),
	)
	n, err := model.Normalize(model.FromOFF(off))
	if err != nil {
		return nil, fmt.Errorf("normalizing %s: %w", path, err)
	}
	return n, nil
}
