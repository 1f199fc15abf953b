package main

import (
	"fmt"
	"os"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run keeps deferred cleanup (database, timers) ahead of os.Exit.
func run() error {
	return newRootCommand().Execute()
}
