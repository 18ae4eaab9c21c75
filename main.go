package main

import (
	"fmt"
	"os"

	"pageprobe/presentation/terminal"
)

func main() {
	inspector, err := terminal.NewInspector()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer inspector.Close()

	if err := inspector.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
