// Command fluid computes fluid sizing expressions, resolves responsive
// values and renders design-token files into CSS custom properties.
package main

import (
	"fmt"
	"os"

	"github.com/zoobzio/capitan"
)

func main() {
	err := newRootCmd().Execute()
	capitan.Shutdown()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
