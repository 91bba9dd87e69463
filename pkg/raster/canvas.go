// Package raster renders map documents to RGBA images. Renderer is the
// render bridge used by the viewport controller.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"mapview/pkg/graphics"
	pathpkg "mapview/pkg/path"

	"golang.org/x/image/vector"
)

// Canvas represents a drawing surface for rasterization.
type Canvas struct {
	img    *image.RGBA
	width  int
	height int

	background color.Color
}

// NewCanvas creates a canvas with the given dimensions, cleared to the
// default background.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{background: DefaultBackground}
	c.Resize(width, height)
	return c
}

// Resize reallocates the pixel buffer when the dimensions change and
// clears it. Negative dimensions are treated as zero.
func (c *Canvas) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if c.img != nil && width == c.width && height == c.height {
		return
	}
	c.img = image.NewRGBA(image.Rect(0, 0, width, height))
	c.width = width
	c.height = height
	c.Clear()
}

// Image returns the underlying RGBA image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Clear fills the canvas with the background color.
func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{c.background}, image.Point{}, draw.Src)
}

// SetBackground sets the background color. A nil color clears to
// transparent.
func (c *Canvas) SetBackground(col color.Color) {
	if col == nil {
		col = color.Transparent
	}
	c.background = col
}

// Background returns the background color.
func (c *Canvas) Background() color.Color {
	return c.background
}

// Fill fills a path given in pixel coordinates with the non-zero rule.
func (c *Canvas) Fill(path *graphics.Path, col color.Color) {
	if path.IsEmpty() || c.width == 0 || c.height == 0 {
		return
	}
	r := vector.NewRasterizer(c.width, c.height)
	pathpkg.ToVector(path, r)
	r.Draw(c.img, c.img.Bounds(), &image.Uniform{col}, image.Point{})
}

// Stroke draws the outline of a path given in pixel coordinates. Each
// segment is extended by half the width at both ends, which squares off
// open ends and fills the corners of joins.
func (c *Canvas) Stroke(path *graphics.Path, col color.Color, width float64) {
	if path.IsEmpty() || !(width > 0) {
		return
	}
	c.Fill(strokeToPath(path, width/2), col)
}

// strokeToPath converts a stroke to a fillable path made of one quad per
// segment. All quads wind the same way, so their overlaps stay filled
// under the non-zero rule.
func strokeToPath(path *graphics.Path, halfWidth float64) *graphics.Path {
	result := graphics.NewPath()
	var current, start graphics.Point
	quad := func(a, b graphics.Point) {
		dx, dy := b.X-a.X, b.Y-a.Y
		length := math.Hypot(dx, dy)
		if length == 0 {
			return
		}
		// Unit direction and normal, scaled to half the width.
		tx, ty := dx/length*halfWidth, dy/length*halfWidth
		nx, ny := -ty, tx

		result.MoveTo(a.X-tx+nx, a.Y-ty+ny)
		result.LineTo(b.X+tx+nx, b.Y+ty+ny)
		result.LineTo(b.X+tx-nx, b.Y+ty-ny)
		result.LineTo(a.X-tx-nx, a.Y-ty-ny)
		result.Close()
	}

	for _, seg := range path.Segments {
		switch seg.Op {
		case graphics.PathOpMoveTo:
			current, start = seg.Point, seg.Point
		case graphics.PathOpLineTo:
			quad(current, seg.Point)
			current = seg.Point
		case graphics.PathOpClose:
			quad(current, start)
			current = start
		}
	}
	return result
}
