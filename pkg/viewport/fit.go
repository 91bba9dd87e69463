// Package viewport maintains the transform that maps a map document onto
// the screen. It computes the initial fit, owns the current transform and
// turns pointer and wheel input into pan and zoom operations.
//
// Everything here runs synchronously on the caller's event goroutine; no
// operation blocks.
package viewport

import (
	"math"

	"mapview/pkg/graphics"
)

// Size is the viewport size in screen pixels.
type Size struct {
	Width, Height float64
}

// IsEmpty reports whether the viewport has no area yet.
func (s Size) IsEmpty() bool {
	return !(s.Width > 0 && s.Height > 0)
}

// Fit returns the transform that scales the document bounds into the
// viewport, centred, with margin applied to the limiting axis.
//
// The scale is applied in document space first and the result is then
// translated into the centred screen position.
//
// Fit fails when margin is outside (0, 1] and with *InvalidDocumentError
// when the bounds have no area. When the viewport has no area it returns
// the identity transform together with ErrViewportNotReady.
func Fit(bounds graphics.Rect, size Size, margin float64) (graphics.Matrix, error) {
	if err := checkMargin(margin); err != nil {
		return graphics.Identity(), err
	}
	if bounds.IsEmpty() {
		return graphics.Identity(), &InvalidDocumentError{Bounds: bounds}
	}
	if size.IsEmpty() {
		return graphics.Identity(), ErrViewportNotReady
	}

	scale := math.Min(size.Width/bounds.Width, size.Height/bounds.Height) * margin

	tx := (size.Width-bounds.Width*scale)/2 - bounds.X*scale
	ty := (size.Height-bounds.Height*scale)/2 - bounds.Y*scale

	return graphics.Compose(graphics.Scale(scale, scale), graphics.Translate(tx, ty)), nil
}
