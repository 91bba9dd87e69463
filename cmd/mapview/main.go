// Command mapview is the desktop map viewer. Besides the headless info and
// render commands it adds view, which opens the map in a window.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"mapview/internal/cli"
	"mapview/internal/gui"
)

func init() {
	// Fyne fails to start when the locale is unset or plain "C".
	if lang := os.Getenv("LANG"); lang == "" || lang == "C" {
		os.Setenv("LANG", "en_US.UTF-8")
	}
}

func main() {
	cli.Execute(newViewCmd())
}

func newViewCmd() *cobra.Command {
	var f cli.ViewFlags

	cmd := &cobra.Command{
		Use:   "view [map.svg]",
		Short: "Open the map viewer window",
		Long: `Open a window showing the map fitted to the window.

Drag with the primary button to pan, use the mouse wheel to zoom about the
pointer. '+' and '-' zoom about the centre, Space or Home fits the map
again and the arrow keys pan.

Examples:
  mapview view map.svg
  mapview view map.svg --bounds --background "#ffffff"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderOpts, err := f.RenderOptions()
			if err != nil {
				return err
			}
			app, err := gui.NewApp(gui.Config{
				View:   f.ViewOptions(),
				Render: renderOpts,
				Open:   f.OpenOptions(),
			})
			if err != nil {
				return err
			}
			if len(args) == 1 {
				app.RunWithFile(args[0])
			} else {
				app.Run()
			}
			return nil
		},
	}
	f.Register(cmd.Flags())
	return cmd
}
