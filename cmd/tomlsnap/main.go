package main

import (
	"os"
)

var (
	Version = "dev" // Overridden by ldflags
)

func main() {
	if err := newRootCommand(Version).Execute(); err != nil {
		os.Exit(1)
	}
}
