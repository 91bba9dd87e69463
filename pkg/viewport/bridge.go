package viewport

import "mapview/pkg/graphics"

// ContentSource reports the extent of the loaded document in document
// space. It fails with *DocumentLoadError when no document is loaded.
type ContentSource interface {
	ContentBounds() (graphics.Rect, error)
}

// Drawer renders the document through a transform onto the current frame.
// It must not modify any viewport state.
type Drawer interface {
	DrawContent(m graphics.Matrix)
}

// Redrawer schedules a redraw. Requests are asynchronous and coalesced:
// several requests before the next frame produce one draw.
type Redrawer interface {
	RequestRedraw()
}

// RenderBridge is the rendering collaborator of the viewport.
type RenderBridge interface {
	ContentSource
	Drawer
	Redrawer
}

// RedrawFunc adapts a plain function to Redrawer.
type RedrawFunc func()

// RequestRedraw calls f.
func (f RedrawFunc) RequestRedraw() {
	f()
}

// RedrawQueue coalesces redraw requests for callers that drive their own
// frame loop. The zero value is ready to use.
type RedrawQueue struct {
	pending  bool
	requests int
}

// RequestRedraw marks a redraw as pending.
func (q *RedrawQueue) RequestRedraw() {
	q.pending = true
	q.requests++
}

// Pending reports whether a redraw has been requested since the last flush.
func (q *RedrawQueue) Pending() bool {
	return q.pending
}

// Requests returns the number of requests received since the last flush.
func (q *RedrawQueue) Requests() int {
	return q.requests
}

// Flush calls draw once if a redraw is pending and clears the request.
// It reports whether draw was called.
func (q *RedrawQueue) Flush(draw func()) bool {
	if !q.pending {
		return false
	}
	q.pending = false
	q.requests = 0
	draw()
	return true
}
