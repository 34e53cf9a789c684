package main

import (
	"github.com/grindlemire/go-minsize/internal/debug"
	"github.com/grindlemire/go-minsize/internal/document"
	"github.com/grindlemire/go-minsize/internal/report"
	"github.com/spf13/cobra"
)

func newTreeCmd(a *app) *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "tree FILE",
		Short: "Print every node of a tree with its minimum width and height",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := document.Load(args[0])
			if err != nil {
				return err
			}
			debug.Log("loaded tree %s (root %s)", args[0], root.Name)
			return report.Render(a.out, root, a.measurer, report.Options{Plain: plain})
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "disable colors")
	return cmd
}
