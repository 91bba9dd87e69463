// Command mapview-cli is the headless build of mapview, without GUI
// dependencies.
package main

import "mapview/internal/cli"

func main() {
	cli.Execute()
}
