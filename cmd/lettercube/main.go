// lettercube - CLI application for building and drilling blindfold lettering schemes.
package main

import (
	"github.com/SeamusWaldron/lettercube/internal/cli"
)

func main() {
	cli.Execute()
}
