package main

import (
	"os"
)

// Set through -ldflags at build time.
var (
	version   = "v1.0.0"
	commit    = ""
	treeState = ""
	date      = ""
	builtBy   = ""
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
