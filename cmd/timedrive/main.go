// Command timedrive is a reference driver for the timerunner module: it
// loads a timeline description (YAML config plus flag overrides), runs it
// frame by frame through the dispatcher, and prints the Ended events it
// observes. It exists to exercise the core end to end, not as a product
// in its own right.
package main

import (
	"errors"
	"os"

	"fortio.org/log"
)

func main() {
	os.Exit(mainE())
}

func mainE() int {
	loader := NewLoader()
	cfg, err := loader.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, ErrHelpRequested) {
			return 0
		}
		log.Errf("timedrive: %v", err)
		return 1
	}

	if err := Run(cfg); err != nil {
		log.Errf("timedrive: %v", err)
		return 1
	}
	return 0
}
