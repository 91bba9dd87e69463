// Package path builds overlay paths and feeds them to the
// golang.org/x/image/vector rasterizer.
package path

import (
	"mapview/pkg/graphics"

	"golang.org/x/image/vector"
)

// ToVector adds p to rasterizer. Points are taken as pixel coordinates.
func ToVector(p *graphics.Path, rasterizer *vector.Rasterizer) {
	for _, seg := range p.Segments {
		switch seg.Op {
		case graphics.PathOpMoveTo:
			rasterizer.MoveTo(float32(seg.Point.X), float32(seg.Point.Y))
		case graphics.PathOpLineTo:
			rasterizer.LineTo(float32(seg.Point.X), float32(seg.Point.Y))
		case graphics.PathOpClose:
			rasterizer.ClosePath()
		}
	}
}

// Builder provides a fluent interface for building paths.
type Builder struct {
	path *graphics.Path
}

// NewBuilder creates a new path builder.
func NewBuilder() *Builder {
	return &Builder{path: graphics.NewPath()}
}

// MoveTo starts a new subpath.
func (b *Builder) MoveTo(x, y float64) *Builder {
	b.path.MoveTo(x, y)
	return b
}

// LineTo draws a line to the given point.
func (b *Builder) LineTo(x, y float64) *Builder {
	b.path.LineTo(x, y)
	return b
}

// Close closes the current subpath.
func (b *Builder) Close() *Builder {
	b.path.Close()
	return b
}

// Rect adds a rectangle to the path.
func (b *Builder) Rect(r graphics.Rect) *Builder {
	b.path.Rect(r)
	return b
}

// Build returns the constructed path.
func (b *Builder) Build() *graphics.Path {
	return b.path
}
