// Package main implements the swoop command line tool.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/swoop/cmd/swoop/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
