// Command paramctl inspects plugin parameter sets.
package main

import (
	"os"

	"github.com/justyntemme/vst3param/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
