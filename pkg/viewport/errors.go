package viewport

import (
	"errors"
	"fmt"

	"mapview/pkg/graphics"
)

var (
	// ErrDocumentLoad is matched by every *DocumentLoadError.
	ErrDocumentLoad = errors.New("document load failed")

	// ErrInvalidDocument is matched by every *InvalidDocumentError.
	ErrInvalidDocument = errors.New("invalid document bounds")

	// ErrViewportNotReady is returned by Fit when the viewport has no area
	// yet. It is a deferral, not a failure: the caller keeps the identity
	// transform and fits again once the view is laid out.
	ErrViewportNotReady = errors.New("viewport not laid out")
)

// DocumentLoadError reports that no usable document could be obtained from
// the document source.
type DocumentLoadError struct {
	Source string
	Err    error
}

func (e *DocumentLoadError) Error() string {
	switch {
	case e.Source == "" && e.Err == nil:
		return "no document loaded"
	case e.Err == nil:
		return fmt.Sprintf("failed to load %s", e.Source)
	case e.Source == "":
		return fmt.Sprintf("failed to load document: %v", e.Err)
	}
	return fmt.Sprintf("failed to load %s: %v", e.Source, e.Err)
}

func (e *DocumentLoadError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrDocumentLoad) succeed.
func (e *DocumentLoadError) Is(target error) bool {
	return target == ErrDocumentLoad
}

// InvalidDocumentError reports degenerate content bounds.
type InvalidDocumentError struct {
	Bounds graphics.Rect
}

func (e *InvalidDocumentError) Error() string {
	return fmt.Sprintf("invalid document bounds %v: width and height must be positive", e.Bounds)
}

// Is makes errors.Is(err, ErrInvalidDocument) succeed.
func (e *InvalidDocumentError) Is(target error) bool {
	return target == ErrInvalidDocument
}
