package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"mapview/pkg/raster"
	"mapview/pkg/svgdoc"
	"mapview/pkg/viewport"
)

type renderFlags struct {
	ViewFlags
	output        string
	width, height int
	gestures      string
}

func newRenderCmd() *cobra.Command {
	var f renderFlags

	cmd := &cobra.Command{
		Use:   "render <map.svg>",
		Short: "Render the map to a PNG image",
		Long: `Fit the map into a viewport, optionally replay a gesture script
against it, and write the resulting frame as PNG.

Gesture scripts use one command per line or ';' separated:
  down BUTTON X Y     press a button (1 primary, 2 secondary, 3 tertiary)
  move X Y            move the pointer
  up X Y              release the button
  leave               pointer leaves the view
  wheel X Y DELTA     one wheel step (DELTA > 0 zooms in)
  resize W H          resize the view
  fit                 fit the map again
Prefix the value with '@' to read the script from a file.

Examples:
  mapview render map.svg -o map.png
  mapview render map.svg -o pan.png --gestures "down 1 500 350; move 600 350; up 600 350"
  mapview render map.svg -o zoom.png --gestures @zoom.txt --bounds`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], f)
		},
	}

	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output PNG file (required)")
	cmd.Flags().IntVar(&f.width, "width", 1000, "viewport width in pixels")
	cmd.Flags().IntVar(&f.height, "height", 700, "viewport height in pixels")
	cmd.Flags().StringVar(&f.gestures, "gestures", "", "gesture script, or @file")
	f.Register(cmd.Flags())
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func runRender(cmd *cobra.Command, source string, f renderFlags) error {
	if f.width <= 0 || f.height <= 0 || f.width > MaxFrameSize || f.height > MaxFrameSize {
		return fmt.Errorf("invalid viewport size %dx%d", f.width, f.height)
	}
	renderOpts, err := f.RenderOptions()
	if err != nil {
		return err
	}
	var steps []Step
	if f.gestures != "" {
		if steps, err = LoadScript(f.gestures); err != nil {
			return err
		}
	}

	state, err := viewport.NewState(f.ViewOptions())
	if err != nil {
		return err
	}

	doc, err := svgdoc.Open(source, f.OpenOptions()...)
	if err != nil {
		return err
	}
	defer doc.Close()

	r, err := raster.NewRenderer(doc, f.width, f.height, renderOpts...)
	if err != nil {
		return err
	}

	ctrl := viewport.NewController(state, r)
	ctrl.Handle(viewport.Resize{Size: viewport.Size{Width: float64(f.width), Height: float64(f.height)}})
	if err := state.Load(r); err != nil {
		return err
	}

	for _, s := range steps {
		if ev, ok := s.Event.(viewport.Resize); ok {
			r.Resize(int(ev.Size.Width), int(ev.Size.Height))
		}
	}
	RunScript(ctrl, steps)

	if !r.Flush(state) {
		r.DrawContent(state.Transform())
	}
	if err := r.SavePNG(f.output); err != nil {
		return err
	}

	viewport.Logger().Debug("frame rendered", "frames", r.Frames(), "transform", state.Transform())
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d, zoom %.0f%%)\n",
		f.output, r.Canvas().Width(), r.Canvas().Height(), state.ZoomLevel()*100)
	return nil
}
