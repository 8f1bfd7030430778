package main

import (
	"fmt"
	"os"

	"github.com/testassets/testassets/cmd"
	"github.com/testassets/testassets/singlelinewriter"
)

// Version is set at build time via -ldflags "-X main.Version=...".
var Version = "0.0.0-dev"

func main() {
	ui := singlelinewriter.New(os.Stdout)
	defer ui.Close()

	root := cmd.NewRoot(ui, Version)

	if err := root.Execute(); err != nil {
		ui.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
