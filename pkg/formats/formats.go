// Package formats provides parsers for the mesh file formats the renderer
// can load.
package formats

// Note: OFF (Object File Format) is implemented in off.go
