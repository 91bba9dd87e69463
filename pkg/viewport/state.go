package viewport

import (
	"errors"
	"fmt"
	"math"

	"mapview/pkg/graphics"
)

// State owns the current document-to-screen transform and the viewport
// size. It is mutated only through Load, Fit, Resize, Pan and ZoomAt and
// is not safe for concurrent use: one event goroutine writes it and the
// renderer reads it between events.
type State struct {
	opts Options

	transform graphics.Matrix
	size      Size

	// Set once by Load.
	bounds    graphics.Rect
	hasBounds bool

	// Last successful fit, the reference for ZoomLevel.
	fitted     graphics.Matrix
	hasFit     bool
	fitPending bool
}

// NewState creates a state with the identity transform and an empty
// viewport.
func NewState(opts Options) (*State, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid view options: %w", err)
	}
	return &State{
		opts:      opts,
		transform: graphics.Identity(),
	}, nil
}

// Options returns the view options.
func (s *State) Options() Options {
	return s.opts
}

// Transform returns the current document-to-screen transform.
func (s *State) Transform() graphics.Matrix {
	return s.transform
}

// Size returns the current viewport size.
func (s *State) Size() Size {
	return s.size
}

// Bounds returns the document bounds recorded by Load.
func (s *State) Bounds() (graphics.Rect, bool) {
	return s.bounds, s.hasBounds
}

// FitPending reports whether a fit is waiting for the viewport to be
// laid out.
func (s *State) FitPending() bool {
	return s.fitPending
}

// Load records the content bounds reported by src and fits the document
// into the viewport.
//
// If src fails, the transform is left at identity (an empty canvas) and
// a *DocumentLoadError is returned. Degenerate bounds are recorded but
// the fit is skipped with an *InvalidDocumentError. A viewport without
// area defers the fit until Resize gives it one.
func (s *State) Load(src ContentSource) error {
	if s.hasBounds {
		return fmt.Errorf("document bounds already set to %v", s.bounds)
	}

	bounds, err := src.ContentBounds()
	if err != nil {
		var lerr *DocumentLoadError
		if !errors.As(err, &lerr) {
			err = &DocumentLoadError{Err: err}
		}
		s.transform = graphics.Identity()
		return err
	}

	s.bounds = bounds
	s.hasBounds = true
	return s.Fit()
}

// Fit replaces the current transform with the fit-to-screen transform.
// On *InvalidDocumentError the prior transform is kept. If the viewport
// has no area yet the fit is deferred and nil is returned.
func (s *State) Fit() error {
	if !s.hasBounds {
		return &DocumentLoadError{}
	}

	m, err := Fit(s.bounds, s.size, s.opts.Margin)
	switch {
	case errors.Is(err, ErrViewportNotReady):
		s.fitPending = true
		Logger().Debug("fit deferred until viewport is laid out", "bounds", s.bounds)
		return nil
	case err != nil:
		s.fitPending = false
		Logger().Warn("fit skipped", "error", err)
		return err
	}

	s.transform = m
	s.fitted = m
	s.hasFit = true
	s.fitPending = false
	return nil
}

// Resize records a new viewport size. The transform keeps its screen
// placement unless a deferred fit can now run.
func (s *State) Resize(size Size) {
	s.size = size
	if s.fitPending && !size.IsEmpty() {
		_ = s.Fit()
	}
}

// Pan shifts the document by (dx, dy) screen pixels. The translation is
// post-concatenated, so the current zoom is preserved exactly. Non-finite
// deltas are ignored.
func (s *State) Pan(dx, dy float64) {
	s.apply(graphics.Translate(dx, dy))
}

// ZoomAt scales the view by factor about the screen point pivot. The
// document point under pivot stays under pivot.
//
// Non-positive or non-finite factors and non-finite pivots are ignored.
func (s *State) ZoomAt(factor float64, pivot graphics.Point) {
	if !validFactor(factor) {
		Logger().Warn("zoom factor rejected", "factor", factor)
		return
	}
	s.apply(graphics.ScaleAt(factor, factor, pivot))
}

// apply post-concatenates step onto the current transform unless that
// would make it non-invertible or move it off the finite plane.
func (s *State) apply(step graphics.Matrix) {
	next := graphics.Compose(s.transform, step)
	if next.IsSingular() {
		Logger().Warn("transform update rejected", "error",
			&graphics.SingularTransformError{Matrix: next, Det: next.Determinant()})
		return
	}
	if !finite(next[4]) || !finite(next[5]) {
		Logger().Warn("transform update rejected", "transform", next)
		return
	}
	s.transform = next
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// DocumentToScreen maps a document point to screen space.
func (s *State) DocumentToScreen(p graphics.Point) graphics.Point {
	return s.transform.Apply(p)
}

// ScreenToDocument maps a screen point back to document space.
func (s *State) ScreenToDocument(p graphics.Point) (graphics.Point, error) {
	inv, err := s.transform.Invert()
	if err != nil {
		return graphics.Point{}, err
	}
	return inv.Apply(p), nil
}

// ZoomLevel returns the current scale relative to the fitted scale, or
// the absolute scale if the document has not been fitted.
func (s *State) ZoomLevel() float64 {
	if !s.hasFit {
		return s.transform.ScaleX()
	}
	return s.transform.ScaleX() / s.fitted.ScaleX()
}
