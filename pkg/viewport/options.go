package viewport

import (
	"fmt"
	"math"
)

// Default view parameters.
const (
	DefaultMargin        = 0.9
	DefaultZoomInFactor  = 1.1
	DefaultZoomOutFactor = 0.9
)

// Options configures fitting and zooming.
type Options struct {
	// Margin scales the fitted document so that blank space remains on
	// at least one axis. Must be in (0, 1].
	// Default: 0.9
	Margin float64

	// ZoomInFactor is applied for a wheel event with positive delta.
	// Default: 1.1
	ZoomInFactor float64

	// ZoomOutFactor is applied for every other wheel event. It is not the
	// reciprocal of ZoomInFactor, so an in/out cycle drifts the scale.
	// Default: 0.9
	ZoomOutFactor float64
}

// DefaultOptions returns options with the baseline parameters.
func DefaultOptions() Options {
	return Options{
		Margin:        DefaultMargin,
		ZoomInFactor:  DefaultZoomInFactor,
		ZoomOutFactor: DefaultZoomOutFactor,
	}
}

// Option is a functional option for configuring Options.
type Option func(*Options)

// Margin sets the fit margin.
func Margin(m float64) Option {
	return func(o *Options) {
		o.Margin = m
	}
}

// ZoomFactors sets the wheel zoom factors.
func ZoomFactors(in, out float64) Option {
	return func(o *Options) {
		o.ZoomInFactor = in
		o.ZoomOutFactor = out
	}
}

// NewOptions creates options from functional options.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Apply applies functional options to existing options.
func (o *Options) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(o)
	}
}

// Validate checks that the options keep every transform invertible and
// the fitted document inside the viewport.
func (o Options) Validate() error {
	if err := checkMargin(o.Margin); err != nil {
		return err
	}
	if !validFactor(o.ZoomInFactor) {
		return fmt.Errorf("zoom-in factor %g must be positive and finite", o.ZoomInFactor)
	}
	if !validFactor(o.ZoomOutFactor) {
		return fmt.Errorf("zoom-out factor %g must be positive and finite", o.ZoomOutFactor)
	}
	return nil
}

func checkMargin(m float64) error {
	if !(m > 0 && m <= 1) {
		return fmt.Errorf("margin %g out of range (0, 1]", m)
	}
	return nil
}

func validFactor(f float64) bool {
	return f > 0 && !math.IsInf(f, 0)
}
