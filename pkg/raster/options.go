package raster

import (
	"fmt"
	"image/color"
)

// RenderOptions configures how a frame is drawn.
type RenderOptions struct {
	// Background is painted before the map.
	// Default: #F0F2F5
	Background color.Color

	// Opacity of the map layer, in [0, 1].
	// Default: 1
	Opacity float64

	// ShowBounds strokes the document's content bounds over the map.
	// Default: false
	ShowBounds bool

	// BoundsColor is the outline colour.
	// Default: crimson
	BoundsColor color.Color

	// BoundsWidth is the outline width in pixels.
	// Default: 2
	BoundsWidth float64
}

// DefaultRenderOptions returns render options with sensible defaults.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Background:  DefaultBackground,
		Opacity:     1,
		BoundsColor: DefaultBoundsColor,
		BoundsWidth: 2,
	}
}

// WithBackground returns options with the specified background color.
func WithBackground(c color.Color) RenderOptions {
	opts := DefaultRenderOptions()
	opts.Background = c
	return opts
}

// WithBounds returns options with the bounds outline enabled.
func WithBounds() RenderOptions {
	opts := DefaultRenderOptions()
	opts.ShowBounds = true
	return opts
}

// Option is a functional option for configuring RenderOptions.
type Option func(*RenderOptions)

// Background sets the background color.
func Background(c color.Color) Option {
	return func(o *RenderOptions) {
		o.Background = c
	}
}

// Opacity sets the opacity of the map layer.
func Opacity(a float64) Option {
	return func(o *RenderOptions) {
		o.Opacity = a
	}
}

// ShowBounds enables the bounds outline.
func ShowBounds() Option {
	return func(o *RenderOptions) {
		o.ShowBounds = true
	}
}

// BoundsStyle sets the outline colour and width.
func BoundsStyle(c color.Color, width float64) Option {
	return func(o *RenderOptions) {
		o.BoundsColor = c
		o.BoundsWidth = width
	}
}

// NewRenderOptions creates options from functional options.
func NewRenderOptions(opts ...Option) RenderOptions {
	o := DefaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Apply applies functional options to existing options.
func (o *RenderOptions) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(o)
	}
}

// Validate checks the option values.
func (o RenderOptions) Validate() error {
	if !(o.Opacity >= 0 && o.Opacity <= 1) {
		return fmt.Errorf("opacity %g out of range [0, 1]", o.Opacity)
	}
	if o.ShowBounds && !(o.BoundsWidth > 0) {
		return fmt.Errorf("bounds width %g must be positive", o.BoundsWidth)
	}
	return nil
}
