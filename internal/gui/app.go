// Package gui provides a native desktop map viewer using Fyne.
package gui

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"

	"mapview/pkg/raster"
	"mapview/pkg/svgdoc"
	"mapview/pkg/viewport"
)

const windowTitle = "Map Viewer"

// Config holds the viewer settings chosen on the command line.
type Config struct {
	View   viewport.Options
	Render []raster.Option
	Open   []svgdoc.OpenOption
}

// App represents the map viewer application.
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	cfg        Config
	document   *svgdoc.Document

	viewer  *MapViewer
	toolbar *Toolbar
	status  *StatusBar
}

// NewApp creates a new map viewer application.
func NewApp(cfg Config) (*App, error) {
	a := app.NewWithID("io.mapview.viewer")
	a.Settings().SetTheme(theme.LightTheme())
	return newApp(a, cfg)
}

func newApp(fyneApp fyne.App, cfg Config) (*App, error) {
	viewer, err := NewMapViewer(cfg.View, cfg.Render...)
	if err != nil {
		return nil, err
	}
	a := &App{
		fyneApp: fyneApp,
		cfg:     cfg,
		viewer:  viewer,
		toolbar: NewToolbar(),
		status:  NewStatusBar(),
	}
	a.mainWindow = fyneApp.NewWindow(windowTitle)
	a.mainWindow.Resize(fyne.NewSize(1000, 700))
	a.buildUI()
	return a, nil
}

// Run starts the application.
func (a *App) Run() {
	a.mainWindow.ShowAndRun()
	a.closeDocument()
}

// RunWithFile starts the application with a file already loaded. The
// fit is applied once the window has been laid out.
func (a *App) RunWithFile(path string) {
	if err := a.loadFile(path); err != nil {
		dialog.ShowError(err, a.mainWindow)
	}
	a.Run()
}

// buildUI constructs the user interface.
func (a *App) buildUI() {
	a.toolbar.OnOpen = a.openFile
	a.toolbar.OnZoomIn = a.viewer.ZoomIn
	a.toolbar.OnZoomOut = a.viewer.ZoomOut
	a.toolbar.OnFit = a.fit
	a.viewer.OnStatus = a.status.Update

	content := container.NewBorder(
		container.NewPadded(a.toolbar.Container()), // Top
		a.status.Container(),                       // Bottom
		nil,                                        // Left
		nil,                                        // Right
		a.viewer,                                   // Center
	)
	a.mainWindow.SetContent(content)

	// Keys typed while the map is not focused still drive the view.
	a.mainWindow.Canvas().SetOnTypedKey(a.viewer.TypedKey)
	a.mainWindow.Canvas().SetOnTypedRune(a.viewer.TypedRune)
}

func (a *App) fit() {
	if err := a.viewer.Fit(); err != nil {
		dialog.ShowError(err, a.mainWindow)
	}
}

// openFile shows a file dialog and loads the selected map.
func (a *App) openFile() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.mainWindow)
			return
		}
		if reader == nil {
			return // Cancelled
		}
		defer reader.Close()

		path := reader.URI().Path()
		if err := a.loadFile(path); err != nil {
			dialog.ShowError(err, a.mainWindow)
		}
	}, a.mainWindow)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".svg"}))
	d.Show()
}

// loadFile opens a map and shows it. On a load error the view is left
// empty; a map with degenerate bounds is still shown, untransformed.
func (a *App) loadFile(path string) error {
	doc, err := svgdoc.Open(path, a.cfg.Open...)
	if err != nil {
		a.showDocument(nil, "")
		return err
	}

	a.showDocument(doc, path)
	if err := a.viewer.SetDocument(doc); err != nil {
		return fmt.Errorf("cannot fit %s: %w", filepath.Base(path), err)
	}
	return nil
}

func (a *App) showDocument(doc *svgdoc.Document, path string) {
	a.closeDocument()
	a.document = doc
	if doc == nil {
		_ = a.viewer.SetDocument(nil)
		a.mainWindow.SetTitle(windowTitle)
		a.status.SetStatus("No map loaded")
		a.status.Update(ViewStatus{})
		a.toolbar.Disable()
		return
	}
	a.mainWindow.SetTitle(fmt.Sprintf("%s - %s", windowTitle, path))
	a.status.SetStatus(doc.Name())
	a.toolbar.Enable()
}

func (a *App) closeDocument() {
	if a.document != nil {
		a.document.Close()
		a.document = nil
	}
}
