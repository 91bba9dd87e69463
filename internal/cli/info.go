package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"mapview/pkg/graphics"
	"mapview/pkg/svgdoc"
	"mapview/pkg/viewport"
)

// MapInfo is the structured output of the info command.
type MapInfo struct {
	Source       string      `json:"source"`
	Titles       []string    `json:"titles,omitempty"`
	Descriptions []string    `json:"descriptions,omitempty"`
	Paths        int         `json:"paths"`
	Bounds       [4]float64  `json:"bounds"`
	Viewport     [2]float64  `json:"viewport"`
	Fit          *[6]float64 `json:"fit,omitempty"`
	Screen       *[4]float64 `json:"screen,omitempty"`
	FitError     string      `json:"fit_error,omitempty"`
}

func newInfoCmd() *cobra.Command {
	var (
		width, height float64
		margin        float64
		outputJSON    bool
		strict        bool
	)

	cmd := &cobra.Command{
		Use:   "info <map.svg>",
		Short: "Show map bounds and the fitted transform",
		Long: `Load a map and report its content bounds, metadata and the transform
that fits it into a viewport of the given size.

Examples:
  mapview info map.svg
  mapview info map.svg --width 800 --height 600 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := viewport.NewOptions(viewport.Margin(margin)).Validate(); err != nil {
				return err
			}
			var opts []svgdoc.OpenOption
			if strict {
				opts = append(opts, svgdoc.Strict())
			}
			doc, err := svgdoc.Open(args[0], opts...)
			if err != nil {
				return err
			}
			defer doc.Close()

			info := mapInfo(doc, viewport.Size{Width: width, Height: height}, margin)
			if outputJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}
			printInfo(cmd.OutOrStdout(), info)
			return nil
		},
	}

	cmd.Flags().Float64Var(&width, "width", 1000, "viewport width in pixels")
	cmd.Flags().Float64Var(&height, "height", 700, "viewport height in pixels")
	cmd.Flags().Float64Var(&margin, "margin", viewport.DefaultMargin, "fit margin in (0, 1]")
	cmd.Flags().BoolVar(&outputJSON, "json", false, "output as JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on unsupported SVG elements")
	return cmd
}

func mapInfo(doc *svgdoc.Document, size viewport.Size, margin float64) MapInfo {
	di := doc.Info()
	b := di.ViewBox
	info := MapInfo{
		Source:       di.Name,
		Titles:       di.Titles,
		Descriptions: di.Descriptions,
		Paths:        di.Paths,
		Bounds:       [4]float64{b.X, b.Y, b.Width, b.Height},
		Viewport:     [2]float64{size.Width, size.Height},
	}

	m, err := viewport.Fit(b, size, margin)
	switch {
	case errors.Is(err, viewport.ErrViewportNotReady):
		info.FitError = "viewport has no area"
	case err != nil:
		info.FitError = err.Error()
	default:
		fit := [6]float64(m)
		info.Fit = &fit
		s := b.Transform(m)
		info.Screen = &[4]float64{s.X, s.Y, s.Width, s.Height}
	}
	return info
}

func printInfo(w io.Writer, info MapInfo) {
	fmt.Fprintf(w, "Source:   %s\n", info.Source)
	if len(info.Titles) > 0 {
		fmt.Fprintf(w, "Title:    %s\n", strings.Join(info.Titles, "; "))
	}
	if len(info.Descriptions) > 0 {
		fmt.Fprintf(w, "Desc:     %s\n", strings.Join(info.Descriptions, "; "))
	}
	fmt.Fprintf(w, "Paths:    %d\n", info.Paths)
	b := info.Bounds
	fmt.Fprintf(w, "Bounds:   %v\n", graphics.Rect{X: b[0], Y: b[1], Width: b[2], Height: b[3]})
	fmt.Fprintf(w, "Viewport: %gx%g\n", info.Viewport[0], info.Viewport[1])
	if info.Fit == nil {
		fmt.Fprintf(w, "Fit:      none (%s)\n", info.FitError)
		return
	}
	m := graphics.Matrix(*info.Fit)
	fmt.Fprintf(w, "Fit:      scale %.6g, offset (%.6g, %.6g)\n", m.ScaleX(), m[4], m[5])
	s := info.Screen
	fmt.Fprintf(w, "Screen:   [%.6g %.6g %.6g %.6g]\n", s[0], s[1], s[2], s[3])
}
