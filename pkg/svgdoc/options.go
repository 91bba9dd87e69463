package svgdoc

import "github.com/srwiley/oksvg"

// OpenOptions configures how a map document is parsed.
type OpenOptions struct {
	// ErrorMode controls how SVG elements the parser does not support are
	// handled: skipped, logged, or reported as a load failure.
	// Default: oksvg.IgnoreErrorMode
	ErrorMode oksvg.ErrorMode
}

// DefaultOpenOptions returns lenient parse options.
func DefaultOpenOptions() OpenOptions {
	return OpenOptions{
		ErrorMode: oksvg.IgnoreErrorMode,
	}
}

// OpenOption is a functional option for configuring OpenOptions.
type OpenOption func(*OpenOptions)

// Strict fails the load on the first unsupported element.
func Strict() OpenOption {
	return func(o *OpenOptions) {
		o.ErrorMode = oksvg.StrictErrorMode
	}
}

// Warn logs unsupported elements and continues.
func Warn() OpenOption {
	return func(o *OpenOptions) {
		o.ErrorMode = oksvg.WarnErrorMode
	}
}

// NewOpenOptions creates options from functional options.
func NewOpenOptions(opts ...OpenOption) OpenOptions {
	o := DefaultOpenOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
