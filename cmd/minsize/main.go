// Package main provides the minsize CLI for measuring layout trees.
//
// Usage:
//
//	minsize measure [--axis height|width|both] FILE...   Print minimum sizes
//	minsize tree FILE                                     Print a per-node report
//	minsize check FILE...                                 Validate tree documents
//	minsize bound MIN VALUE MAX                           Clamp a value
//
// Examples:
//
//	minsize measure toolbar.yaml
//	minsize measure --axis both --clamp-empty dialogs/*.yaml
//	minsize tree --plain window.json
//	minsize bound 0 15 10
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/grindlemire/go-minsize/internal/debug"
)

const version = "0.1.0"

func main() {
	if err := execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// execute runs one command and closes the debug log whether or not it failed.
func execute(args []string, out, errOut io.Writer) error {
	cmd := newRootCmd(out, errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if closeErr := debug.Close(); err == nil {
		err = closeErr
	}
	return err
}
