package gui

import (
	"fmt"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Toolbar provides the open and zoom controls.
type Toolbar struct {
	container *fyne.Container

	// Callbacks
	OnOpen    func()
	OnZoomIn  func()
	OnZoomOut func()
	OnFit     func()

	zoomInBtn  *widget.Button
	zoomOutBtn *widget.Button
	fitBtn     *widget.Button
}

// NewToolbar creates a new toolbar. The view controls start disabled.
func NewToolbar() *Toolbar {
	t := &Toolbar{}
	t.build()
	t.Disable()
	return t
}

func (t *Toolbar) build() {
	openBtn := widget.NewButtonWithIcon("Open", theme.FolderOpenIcon(), func() {
		if t.OnOpen != nil {
			t.OnOpen()
		}
	})

	t.zoomOutBtn = widget.NewButtonWithIcon("", theme.ZoomOutIcon(), func() {
		if t.OnZoomOut != nil {
			t.OnZoomOut()
		}
	})

	t.zoomInBtn = widget.NewButtonWithIcon("", theme.ZoomInIcon(), func() {
		if t.OnZoomIn != nil {
			t.OnZoomIn()
		}
	})

	t.fitBtn = widget.NewButtonWithIcon("Fit", theme.ZoomFitIcon(), func() {
		if t.OnFit != nil {
			t.OnFit()
		}
	})

	t.container = container.NewHBox(
		openBtn,
		widget.NewSeparator(),
		t.zoomOutBtn,
		t.zoomInBtn,
		widget.NewSeparator(),
		t.fitBtn,
	)
}

// Container returns the toolbar container.
func (t *Toolbar) Container() *fyne.Container {
	return t.container
}

// Enable enables the view controls.
func (t *Toolbar) Enable() {
	t.zoomInBtn.Enable()
	t.zoomOutBtn.Enable()
	t.fitBtn.Enable()
}

// Disable disables the view controls.
func (t *Toolbar) Disable() {
	t.zoomInBtn.Disable()
	t.zoomOutBtn.Disable()
	t.fitBtn.Disable()
}

// StatusBar shows the document name, the cursor position in document
// coordinates and the zoom level.
type StatusBar struct {
	container   *fyne.Container
	label       *widget.Label
	cursorLabel *widget.Label
	zoomLabel   *widget.Label
}

// NewStatusBar creates a new status bar.
func NewStatusBar() *StatusBar {
	s := &StatusBar{
		label:       widget.NewLabel("No map loaded"),
		cursorLabel: widget.NewLabel(""),
		zoomLabel:   widget.NewLabel(""),
	}

	s.container = container.NewHBox(
		s.label,
		widget.NewSeparator(),
		s.cursorLabel,
		widget.NewSeparator(),
		s.zoomLabel,
	)

	return s
}

// Container returns the status bar container.
func (s *StatusBar) Container() *fyne.Container {
	return s.container
}

// SetStatus sets the status message.
func (s *StatusBar) SetStatus(msg string) {
	s.label.SetText(msg)
}

// Update shows a view status.
func (s *StatusBar) Update(st ViewStatus) {
	if !st.Loaded {
		s.cursorLabel.SetText("")
		s.zoomLabel.SetText("")
		return
	}
	s.zoomLabel.SetText(fmt.Sprintf("%d%%", int(math.Round(st.Zoom*100))))
	if st.CursorValid {
		s.cursorLabel.SetText(fmt.Sprintf("x %.1f  y %.1f", st.Cursor.X, st.Cursor.Y))
	} else {
		s.cursorLabel.SetText("")
	}
}

// Text returns the labels' current text, in display order.
func (s *StatusBar) Text() (status, cursor, zoom string) {
	return s.label.Text, s.cursorLabel.Text, s.zoomLabel.Text
}
