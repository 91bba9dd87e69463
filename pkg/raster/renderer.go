package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"mapview/pkg/graphics"
	pathpkg "mapview/pkg/path"
	"mapview/pkg/svgdoc"
	"mapview/pkg/viewport"
)

// Renderer draws a map document onto a Canvas through the view transform.
// It implements viewport.RenderBridge: redraw requests are queued and
// carried out by Flush, at most once per flush.
type Renderer struct {
	doc    *svgdoc.Document
	canvas *Canvas
	opts   RenderOptions
	queue  viewport.RedrawQueue
	frames int
}

var _ viewport.RenderBridge = (*Renderer)(nil)

// NewRenderer creates a renderer for doc with a width x height canvas.
// doc may be nil, in which case only the background is drawn.
func NewRenderer(doc *svgdoc.Document, width, height int, opts ...Option) (*Renderer, error) {
	o := NewRenderOptions(opts...)
	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("invalid render options: %w", err)
	}
	c := NewCanvas(width, height)
	c.SetBackground(o.Background)
	c.Clear()
	return &Renderer{
		doc:    doc,
		canvas: c,
		opts:   o,
	}, nil
}

// Options returns the render options.
func (r *Renderer) Options() RenderOptions {
	return r.opts
}

// Canvas returns the drawing surface.
func (r *Renderer) Canvas() *Canvas {
	return r.canvas
}

// Image returns the last drawn frame.
func (r *Renderer) Image() *image.RGBA {
	return r.canvas.Image()
}

// Frames returns the number of frames drawn.
func (r *Renderer) Frames() int {
	return r.frames
}

// Resize changes the canvas size in pixels.
func (r *Renderer) Resize(width, height int) {
	r.canvas.Resize(width, height)
}

// ContentBounds reports the document's bounds, or a
// *viewport.DocumentLoadError when no document is loaded.
func (r *Renderer) ContentBounds() (graphics.Rect, error) {
	return r.doc.ContentBounds()
}

// DrawContent clears the canvas and draws the document through m.
func (r *Renderer) DrawContent(m graphics.Matrix) {
	r.frames++
	r.canvas.Clear()
	if r.doc == nil {
		return
	}
	r.doc.Draw(r.canvas.Image(), m, r.opts.Opacity)

	if !r.opts.ShowBounds {
		return
	}
	bounds, err := r.doc.ContentBounds()
	if err != nil || bounds.IsEmpty() {
		return
	}
	outline := pathpkg.NewBuilder().Rect(bounds).Build().Transform(m)
	r.canvas.Stroke(outline, r.opts.BoundsColor, r.opts.BoundsWidth)
}

// RequestRedraw queues a redraw for the next Flush.
func (r *Renderer) RequestRedraw() {
	r.queue.RequestRedraw()
}

// Pending reports whether a redraw is queued.
func (r *Renderer) Pending() bool {
	return r.queue.Pending()
}

// Flush draws one frame with the state's current transform if a redraw
// is queued. It reports whether a frame was drawn.
func (r *Renderer) Flush(s *viewport.State) bool {
	return r.queue.Flush(func() {
		r.DrawContent(s.Transform())
	})
}

// WritePNG encodes the current frame as PNG.
func (r *Renderer) WritePNG(w io.Writer) error {
	if err := png.Encode(w, r.canvas.Image()); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// SavePNG writes the current frame to a PNG file.
func (r *Renderer) SavePNG(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := r.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
