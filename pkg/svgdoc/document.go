// Package svgdoc loads vector maps from SVG files and draws them through a
// document-to-screen transform.
package svgdoc

import (
	"image/draw"
	"io"
	"os"
	"sync"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"mapview/pkg/graphics"
	"mapview/pkg/viewport"
)

// Document is a parsed SVG map.
type Document struct {
	name string
	icon *oksvg.SvgIcon

	// Guards icon.Transform while drawing.
	mu sync.Mutex
}

// Info contains document metadata.
type Info struct {
	Name         string
	Titles       []string
	Descriptions []string
	Paths        int
	ViewBox      graphics.Rect
}

// Open opens an SVG file and returns a Document. Every failure is a
// *viewport.DocumentLoadError.
func Open(path string, opts ...OpenOption) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &viewport.DocumentLoadError{Source: path, Err: err}
	}
	defer f.Close()
	return OpenReader(f, path, opts...)
}

// OpenReader parses an SVG document from r. name identifies the source
// in errors and metadata.
func OpenReader(r io.Reader, name string, opts ...OpenOption) (*Document, error) {
	o := NewOpenOptions(opts...)
	icon, err := oksvg.ReadIconStream(r, o.ErrorMode)
	if err != nil {
		return nil, &viewport.DocumentLoadError{Source: name, Err: err}
	}

	viewport.Logger().Debug("document loaded",
		"source", name,
		"paths", len(icon.SVGPaths),
		"viewBox", viewBox(icon))

	return &Document{name: name, icon: icon}, nil
}

// Name returns the source the document was read from.
func (d *Document) Name() string {
	return d.name
}

// ContentBounds returns the view box of the map in document units. A nil
// or closed document reports a *viewport.DocumentLoadError. Degenerate
// view boxes are returned unchanged.
func (d *Document) ContentBounds() (graphics.Rect, error) {
	if d == nil || d.icon == nil {
		return graphics.Rect{}, &viewport.DocumentLoadError{}
	}
	return viewBox(d.icon), nil
}

// Info returns document metadata.
func (d *Document) Info() Info {
	if d == nil || d.icon == nil {
		return Info{}
	}
	return Info{
		Name:         d.name,
		Titles:       d.icon.Titles,
		Descriptions: d.icon.Descriptions,
		Paths:        len(d.icon.SVGPaths),
		ViewBox:      viewBox(d.icon),
	}
}

// Draw renders the map onto dst with m as the document-to-screen
// transform. dst is not cleared first.
func (d *Document) Draw(dst draw.Image, m graphics.Matrix, opacity float64) {
	if d == nil {
		return
	}
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.icon == nil {
		return
	}
	scanner := rasterx.NewScannerGV(w, h, dst, b)
	dasher := rasterx.NewDasher(w, h, scanner)
	saved := d.icon.Transform
	d.icon.Transform = Matrix2D(m)
	d.icon.Draw(dasher, opacity)
	d.icon.Transform = saved
}

// Close releases the parsed document.
func (d *Document) Close() error {
	d.mu.Lock()
	d.icon = nil
	d.mu.Unlock()
	return nil
}

// Matrix2D converts m to the rasterx representation. Both use the
// x' = a*x + c*y + e, y' = b*x + d*y + f layout.
func Matrix2D(m graphics.Matrix) rasterx.Matrix2D {
	return rasterx.Matrix2D{A: m[0], B: m[1], C: m[2], D: m[3], E: m[4], F: m[5]}
}

func viewBox(icon *oksvg.SvgIcon) graphics.Rect {
	vb := icon.ViewBox
	return graphics.Rect{X: vb.X, Y: vb.Y, Width: vb.W, Height: vb.H}
}
