package main

import (
	"fmt"
	"os"
)

func main() {
	registry, err := newActionRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to prepare actions: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCmd(registry).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
