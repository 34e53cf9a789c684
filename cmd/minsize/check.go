package main

import (
	"fmt"
	"runtime"

	"github.com/grindlemire/go-minsize/internal/debug"
	"github.com/grindlemire/go-minsize/internal/document"
	"github.com/grindlemire/go-minsize/internal/layout"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newCheckCmd(a *app) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Validate tree documents without measuring",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(args, verbose)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also report files that pass")
	return cmd
}

// runCheck loads and validates every file concurrently, then reports in
// argument order.
func (a *app) runCheck(paths []string, verbose bool) error {
	results := make([]error, len(paths))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			results[i] = checkFile(path)
			return nil
		})
	}
	g.Wait()

	var errorCount int
	for i, err := range results {
		if err != nil {
			fmt.Fprintf(a.errOut, "%v\n", err)
			errorCount++
			continue
		}
		if verbose {
			fmt.Fprintf(a.out, "%s: ok\n", paths[i])
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}
	return nil
}

// checkFile parses and validates a single tree document.
func checkFile(path string) error {
	root, err := document.Load(path)
	if err != nil {
		return err
	}
	if err := layout.Validate(root); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	debug.Log("checked %s", path)
	return nil
}
