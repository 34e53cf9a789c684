package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grindlemire/go-minsize/internal/debug"
	"github.com/grindlemire/go-minsize/internal/document"
	"github.com/grindlemire/go-minsize/internal/layout"
	"github.com/spf13/cobra"
)

func newMeasureCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "measure FILE...",
		Short: "Print the minimum height and/or width of each tree",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			axes, err := parseAxes(a.cfg.Axis)
			if err != nil {
				return err
			}
			for _, path := range args {
				if err := a.measureFile(path, axes); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().String("axis", "height", "axis to measure: height, width or both")
	a.bind("axis", cmd.Flags().Lookup("axis"))
	return cmd
}

// parseAxes turns the axis setting into the axes to print, width first.
func parseAxes(s string) ([]layout.Axis, error) {
	if strings.EqualFold(strings.TrimSpace(s), "both") {
		return []layout.Axis{layout.Horizontal, layout.Vertical}, nil
	}
	axis, err := layout.ParseAxis(s)
	if err != nil {
		return nil, err
	}
	return []layout.Axis{axis}, nil
}

func (a *app) measureFile(path string, axes []layout.Axis) error {
	root, err := document.Load(path)
	if err != nil {
		return err
	}
	debug.Log("loaded tree %s (root %s)", path, root.Name)

	parts := make([]string, 0, len(axes))
	for _, axis := range axes {
		v, err := a.measurer.Measure(root, axis)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		parts = append(parts, axis.String()+"="+strconv.FormatFloat(v, 'f', -1, 64))
	}
	_, err = fmt.Fprintf(a.out, "%s: %s\n", path, strings.Join(parts, " "))
	return err
}
