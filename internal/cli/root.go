// Package cli implements the mapview command tree shared by the GUI and
// headless binaries.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"mapview/pkg/viewport"
)

// Version is reported by --version.
var Version = "0.1.0"

// NewRootCmd builds the root command with the info and render
// subcommands plus any extra commands, such as the GUI's view command.
func NewRootCmd(extra ...*cobra.Command) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "mapview",
		Short: "Pan and zoom viewer for vector maps",
		Long: `A viewer for SVG vector maps. The map is fitted to the window on load
and can be panned by dragging and zoomed with the mouse wheel.

Examples:
  mapview info map.svg                               # Show bounds and fitted transform
  mapview render map.svg -o map.png                  # Render the fitted map
  mapview render map.svg -o z.png --gestures "wheel 500 350 1; wheel 500 350 1"`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd.ErrOrStderr(), verbose)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(newInfoCmd(), newRenderCmd())
	root.AddCommand(extra...)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute(extra ...*cobra.Command) {
	if err := NewRootCmd(extra...).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	viewport.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
