// twisty - command line tool for scrambling and turning N×N×N puzzle cubes.
package main

import (
	"github.com/SeamusWaldron/twisty/internal/cli"
)

func main() {
	cli.Execute()
}
