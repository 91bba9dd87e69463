package cli

import (
	"github.com/spf13/pflag"

	"mapview/pkg/raster"
	"mapview/pkg/svgdoc"
	"mapview/pkg/viewport"
)

// ViewFlags holds the view settings shared by the render and view
// commands.
type ViewFlags struct {
	Margin     float64
	ZoomIn     float64
	ZoomOut    float64
	Background string
	Bounds     bool
	Strict     bool
}

// Register adds the flags to fs.
func (f *ViewFlags) Register(fs *pflag.FlagSet) {
	fs.Float64Var(&f.Margin, "margin", viewport.DefaultMargin, "fit margin in (0, 1]")
	fs.Float64Var(&f.ZoomIn, "zoom-in", viewport.DefaultZoomInFactor, "zoom factor per wheel step in")
	fs.Float64Var(&f.ZoomOut, "zoom-out", viewport.DefaultZoomOutFactor, "zoom factor per wheel step out")
	fs.StringVar(&f.Background, "background", raster.Hex(raster.DefaultBackground), "background colour")
	fs.BoolVar(&f.Bounds, "bounds", false, "outline the content bounds")
	fs.BoolVar(&f.Strict, "strict", false, "fail on unsupported SVG elements")
}

// ViewOptions returns the viewport options. They are validated by
// viewport.NewState.
func (f ViewFlags) ViewOptions() viewport.Options {
	return viewport.NewOptions(
		viewport.Margin(f.Margin),
		viewport.ZoomFactors(f.ZoomIn, f.ZoomOut),
	)
}

// RenderOptions returns the render options, or an error for an invalid
// background colour.
func (f ViewFlags) RenderOptions() ([]raster.Option, error) {
	bg, err := raster.ParseColor(f.Background)
	if err != nil {
		return nil, err
	}
	opts := []raster.Option{raster.Background(bg)}
	if f.Bounds {
		opts = append(opts, raster.ShowBounds())
	}
	return opts, nil
}

// OpenOptions returns the document open options.
func (f ViewFlags) OpenOptions() []svgdoc.OpenOption {
	if f.Strict {
		return []svgdoc.OpenOption{svgdoc.Strict()}
	}
	return nil
}
