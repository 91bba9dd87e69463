package gui

import (
	"image"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"mapview/pkg/graphics"
	"mapview/pkg/raster"
	"mapview/pkg/svgdoc"
	"mapview/pkg/viewport"
)

// panStep is the keyboard pan distance in device-independent pixels.
const panStep = 40

// ViewStatus is reported to the status bar after every change.
type ViewStatus struct {
	Loaded bool
	Zoom   float64

	// Cursor is the document point under the pointer. Valid is false
	// while the pointer is outside the view.
	Cursor      graphics.Point
	CursorValid bool
}

// MapViewer is a widget that shows a map document with pan and zoom.
// Every fyne input callback is turned into one viewport event.
//
// The viewer's state is guarded by mu: fyne delivers input on the event
// goroutine and generates raster frames on the draw goroutine.
type MapViewer struct {
	widget.BaseWidget

	// OnStatus is called on the event goroutine after the view changes.
	OnStatus func(ViewStatus)

	mu         sync.Mutex
	viewOpts   viewport.Options
	renderOpts []raster.Option
	renderer   *raster.Renderer
	ctrl       *viewport.Controller
	queue      viewport.RedrawQueue
	size       viewport.Size
	cursor     graphics.Point
	hasCursor  bool

	raster *canvas.Raster
}

var (
	_ desktop.Mouseable = (*MapViewer)(nil)
	_ desktop.Hoverable = (*MapViewer)(nil)
	_ fyne.Scrollable   = (*MapViewer)(nil)
	_ fyne.Draggable    = (*MapViewer)(nil)
	_ fyne.Focusable    = (*MapViewer)(nil)
)

// NewMapViewer creates an empty viewer. Until a document is set only the
// background is drawn.
func NewMapViewer(viewOpts viewport.Options, renderOpts ...raster.Option) (*MapViewer, error) {
	if err := viewOpts.Validate(); err != nil {
		return nil, err
	}
	r, err := raster.NewRenderer(nil, 1, 1, renderOpts...)
	if err != nil {
		return nil, err
	}
	v := &MapViewer{
		viewOpts:   viewOpts,
		renderOpts: renderOpts,
		renderer:   r,
	}
	v.raster = canvas.NewRaster(v.draw)
	v.ExtendBaseWidget(v)
	return v, nil
}

// SetDocument replaces the displayed document and fits it into the view.
// The fit waits for the first layout when the view has no size yet. A
// nil document clears the view.
//
// The returned error is the load or fit error; the view then shows the
// background only, or keeps the previous transform for invalid bounds.
func (v *MapViewer) SetDocument(doc *svgdoc.Document) error {
	v.mu.Lock()
	err := v.setDocumentLocked(doc)
	v.queue.RequestRedraw()
	v.mu.Unlock()

	v.flush()
	return err
}

func (v *MapViewer) setDocumentLocked(doc *svgdoc.Document) error {
	r, err := raster.NewRenderer(doc, 1, 1, v.renderOpts...)
	if err != nil {
		return err
	}
	state, err := viewport.NewState(v.viewOpts)
	if err != nil {
		return err
	}
	v.renderer = r
	v.ctrl = nil
	if doc == nil {
		return nil
	}

	v.ctrl = viewport.NewController(state, &v.queue)
	v.ctrl.Handle(viewport.Resize{Size: v.size})
	return state.Load(r)
}

// Transform returns the current document-to-screen transform in
// device-independent pixels.
func (v *MapViewer) Transform() graphics.Matrix {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.ctrl == nil {
		return graphics.Identity()
	}
	return v.ctrl.State().Transform()
}

// Status returns the current view status.
func (v *MapViewer) Status() ViewStatus {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.statusLocked()
}

func (v *MapViewer) statusLocked() ViewStatus {
	if v.ctrl == nil {
		return ViewStatus{}
	}
	s := ViewStatus{Loaded: true, Zoom: v.ctrl.State().ZoomLevel()}
	if v.hasCursor {
		if p, err := v.ctrl.State().ScreenToDocument(v.cursor); err == nil {
			s.Cursor, s.CursorValid = p, true
		}
	}
	return s
}

// ZoomIn zooms in one step about the centre of the view.
func (v *MapViewer) ZoomIn() {
	v.update(func(c *viewport.Controller) { c.ZoomStep(true) })
}

// ZoomOut zooms out one step about the centre of the view.
func (v *MapViewer) ZoomOut() {
	v.update(func(c *viewport.Controller) { c.ZoomStep(false) })
}

// Fit fits the whole document into the view again.
func (v *MapViewer) Fit() error {
	var err error
	v.update(func(c *viewport.Controller) { err = c.Fit() })
	return err
}

// Resize lays out the widget and reports the new size to the controller.
func (v *MapViewer) Resize(size fyne.Size) {
	v.BaseWidget.Resize(size)
	v.mu.Lock()
	v.size = viewport.Size{Width: float64(size.Width), Height: float64(size.Height)}
	v.mu.Unlock()
	v.handle(viewport.Resize{Size: viewport.Size{Width: float64(size.Width), Height: float64(size.Height)}})
}

// CreateRenderer creates the renderer for this widget.
func (v *MapViewer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.raster)
}

// MinSize keeps the map visible in small layouts.
func (v *MapViewer) MinSize() fyne.Size {
	return fyne.NewSize(200, 200)
}

// MouseDown starts a pan with the primary button and takes keyboard focus.
func (v *MapViewer) MouseDown(ev *desktop.MouseEvent) {
	if c := fyne.CurrentApp().Driver().CanvasForObject(v); c != nil {
		c.Focus(v)
	}
	v.handle(viewport.PointerDown{Button: button(ev.Button), Position: point(ev.Position)})
}

// MouseUp ends a pan.
func (v *MapViewer) MouseUp(ev *desktop.MouseEvent) {
	v.handle(viewport.PointerUp{Position: point(ev.Position)})
}

// MouseIn tracks the cursor for the status bar.
func (v *MapViewer) MouseIn(ev *desktop.MouseEvent) {
	v.MouseMoved(ev)
}

// MouseMoved pans while dragging and tracks the cursor.
func (v *MapViewer) MouseMoved(ev *desktop.MouseEvent) {
	v.mu.Lock()
	v.cursor, v.hasCursor = point(ev.Position), true
	v.mu.Unlock()
	v.handle(viewport.PointerMove{Position: point(ev.Position)})
	v.notify()
}

// MouseOut ends any pan.
func (v *MapViewer) MouseOut() {
	v.mu.Lock()
	v.hasCursor = false
	v.mu.Unlock()
	v.handle(viewport.PointerLeave{})
	v.notify()
}

// Dragged reports pointer motion during a drag. Fyne may deliver the same
// motion through MouseMoved as well; the second copy has a zero delta.
func (v *MapViewer) Dragged(ev *fyne.DragEvent) {
	v.handle(viewport.PointerMove{Position: point(ev.Position)})
}

// DragEnd ends a pan when the release is not delivered as MouseUp.
func (v *MapViewer) DragEnd() {
	v.handle(viewport.PointerLeave{})
}

// Scrolled zooms about the pointer. Horizontal scrolling is ignored.
func (v *MapViewer) Scrolled(ev *fyne.ScrollEvent) {
	if ev.Scrolled.DY == 0 {
		return
	}
	v.handle(viewport.Wheel{Position: point(ev.Position), Delta: float64(ev.Scrolled.DY)})
}

// FocusGained implements fyne.Focusable.
func (v *MapViewer) FocusGained() {}

// FocusLost implements fyne.Focusable.
func (v *MapViewer) FocusLost() {}

// TypedRune zooms with '+' and '-'.
func (v *MapViewer) TypedRune(r rune) {
	switch r {
	case '+', '=':
		v.ZoomIn()
	case '-':
		v.ZoomOut()
	}
}

// TypedKey fits with Space or Home and pans with the arrow keys.
func (v *MapViewer) TypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeySpace, fyne.KeyHome:
		_ = v.Fit()
	case fyne.KeyLeft:
		v.update(func(c *viewport.Controller) { c.Pan(panStep, 0) })
	case fyne.KeyRight:
		v.update(func(c *viewport.Controller) { c.Pan(-panStep, 0) })
	case fyne.KeyUp:
		v.update(func(c *viewport.Controller) { c.Pan(0, panStep) })
	case fyne.KeyDown:
		v.update(func(c *viewport.Controller) { c.Pan(0, -panStep) })
	}
}

func (v *MapViewer) handle(ev viewport.Event) {
	v.update(func(c *viewport.Controller) { c.Handle(ev) })
}

// update runs fn under the lock and refreshes the raster if fn requested
// a redraw. Without a document fn is not called.
func (v *MapViewer) update(fn func(c *viewport.Controller)) {
	v.mu.Lock()
	if v.ctrl != nil {
		fn(v.ctrl)
	}
	v.mu.Unlock()
	v.flush()
}

// flush refreshes the raster once for all redraws requested since the
// last flush. fyne draws the frame later on its own goroutine.
func (v *MapViewer) flush() {
	v.mu.Lock()
	redraw := v.queue.Flush(func() {})
	v.mu.Unlock()
	if redraw {
		v.raster.Refresh()
		v.notify()
	}
}

func (v *MapViewer) notify() {
	if v.OnStatus == nil {
		return
	}
	v.OnStatus(v.Status())
}

// draw generates a frame of w x h device pixels. The view transform is
// in device-independent pixels, so the device scale is composed after it.
func (v *MapViewer) draw(w, h int) image.Image {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.renderer.Resize(w, h)
	m := graphics.Identity()
	if v.ctrl != nil && !v.size.IsEmpty() {
		m = graphics.Compose(v.ctrl.State().Transform(),
			graphics.Scale(float64(w)/v.size.Width, float64(h)/v.size.Height))
	}
	v.renderer.DrawContent(m)
	return v.renderer.Image()
}

func point(p fyne.Position) graphics.Point {
	return graphics.Pt(float64(p.X), float64(p.Y))
}

func button(b desktop.MouseButton) viewport.Button {
	switch b {
	case desktop.MouseButtonPrimary:
		return viewport.ButtonPrimary
	case desktop.MouseButtonSecondary:
		return viewport.ButtonSecondary
	case desktop.MouseButtonTertiary:
		return viewport.ButtonTertiary
	}
	return 0
}
